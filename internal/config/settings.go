package config

import (
	"go.uber.org/zap"

	"github.com/sm64pc/sm64config/internal/configfile"
)

// Settings holds every persisted runtime option.
// Key bindings are keyboard scancodes.
type Settings struct {
	Fullscreen bool `yaml:"fullscreen" json:"fullscreen"`

	KeyA          uint32 `yaml:"key_a" json:"key_a"`
	KeyB          uint32 `yaml:"key_b" json:"key_b"`
	KeyStart      uint32 `yaml:"key_start" json:"key_start"`
	KeyR          uint32 `yaml:"key_r" json:"key_r"`
	KeyZ          uint32 `yaml:"key_z" json:"key_z"`
	KeyCUp        uint32 `yaml:"key_cup" json:"key_cup"`
	KeyCDown      uint32 `yaml:"key_cdown" json:"key_cdown"`
	KeyCLeft      uint32 `yaml:"key_cleft" json:"key_cleft"`
	KeyCRight     uint32 `yaml:"key_cright" json:"key_cright"`
	KeyStickUp    uint32 `yaml:"key_stickup" json:"key_stickup"`
	KeyStickDown  uint32 `yaml:"key_stickdown" json:"key_stickdown"`
	KeyStickLeft  uint32 `yaml:"key_stickleft" json:"key_stickleft"`
	KeyStickRight uint32 `yaml:"key_stickright" json:"key_stickright"`
}

// Defaults returns Settings with the built-in default values.
func Defaults() *Settings {
	return &Settings{
		Fullscreen:    false,
		KeyA:          0x26,
		KeyB:          0x33,
		KeyStart:      0x39,
		KeyR:          0x36,
		KeyZ:          0x25,
		KeyCUp:        0x148,
		KeyCDown:      0x150,
		KeyCLeft:      0x14B,
		KeyCRight:     0x14D,
		KeyStickUp:    0x11,
		KeyStickDown:  0x1F,
		KeyStickLeft:  0x1E,
		KeyStickRight: 0x20,
	}
}

// Registry binds each field of s to its option name.
// The order here is the line order of the saved file.
func (s *Settings) Registry() *configfile.Registry {
	return configfile.MustNewRegistry(
		configfile.Bool("fullscreen", &s.Fullscreen),
		configfile.UInt("key_a", &s.KeyA),
		configfile.UInt("key_b", &s.KeyB),
		configfile.UInt("key_start", &s.KeyStart),
		configfile.UInt("key_r", &s.KeyR),
		configfile.UInt("key_z", &s.KeyZ),
		configfile.UInt("key_cup", &s.KeyCUp),
		configfile.UInt("key_cdown", &s.KeyCDown),
		configfile.UInt("key_cleft", &s.KeyCLeft),
		configfile.UInt("key_cright", &s.KeyCRight),
		configfile.UInt("key_stickup", &s.KeyStickUp),
		configfile.UInt("key_stickdown", &s.KeyStickDown),
		configfile.UInt("key_stickleft", &s.KeyStickLeft),
		configfile.UInt("key_stickright", &s.KeyStickRight),
	)
}

// NewStore creates a store that reads into and writes from s.
func NewStore(s *Settings, paths configfile.Paths, filename string, logger *zap.Logger) *configfile.Store {
	if filename == "" {
		filename = FileName
	}
	return configfile.NewStore(s.Registry(), paths, filename, logger)
}

// Load creates Settings with defaults and overlays the config file found via paths.
func Load(paths configfile.Paths, filename string, logger *zap.Logger) (*Settings, *configfile.LoadReport, error) {
	s := Defaults()
	report, err := NewStore(s, paths, filename, logger).Load()
	return s, report, err
}
