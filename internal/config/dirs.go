package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/sm64pc/sm64config/internal/configfile"
)

const (
	// AppName is the per-user directory name.
	AppName = "sm64pc"
	// FileName is the default config file name.
	FileName = "sm64config.txt"
)

// PreferredDir returns the OS-appropriate per-user data directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_DATA_HOME/sm64pc or $HOME/.local/share/sm64pc
//   - macOS: $HOME/Library/Application Support/sm64pc
//   - Windows: %APPDATA%\sm64pc
func PreferredDir() (string, error) {
	return preferredDirFor(runtime.GOOS, os.Getenv, os.UserHomeDir)
}

func preferredDirFor(goos string, getenv func(string) string, homeDir func() (string, error)) (string, error) {
	switch goos {
	case "windows":
		if appData := getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppName), nil
		}
		// Fallback to USERPROFILE\AppData\Roaming if APPDATA not set
		userProfile := getenv("USERPROFILE")
		if userProfile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (APPDATA and USERPROFILE not set)")
		}
		return filepath.Join(userProfile, "AppData", "Roaming", AppName), nil

	case "darwin":
		home, err := homeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support", AppName), nil

	default:
		// Linux and other Unix-like systems: Use XDG_DATA_HOME or $HOME/.local/share
		if xdgDataHome := getenv("XDG_DATA_HOME"); xdgDataHome != "" {
			return filepath.Join(xdgDataHome, AppName), nil
		}
		home, err := homeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(home, ".local", "share", AppName), nil
	}
}

// BaseDir returns the directory consulted for reads when the preferred
// directory does not exist: the current working directory.
func BaseDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("cannot determine working directory: %w", err)
	}
	return dir, nil
}

// DefaultPaths resolves both directories for the running platform.
func DefaultPaths() (configfile.Paths, error) {
	return ResolvePaths(PreferredDir, BaseDir)
}

// ResolvePaths builds Paths from an injected pair of directory lookups.
// A failed preferred lookup is reported as a directory-unavailable error.
func ResolvePaths(preferred, base func() (string, error)) (configfile.Paths, error) {
	prefDir, err := preferred()
	if err != nil {
		return configfile.Paths{}, configfile.NewDirUnavailableError("", err)
	}
	baseDir, err := base()
	if err != nil {
		return configfile.Paths{}, fmt.Errorf("failed to get base directory: %w", err)
	}
	return configfile.Paths{PreferredDir: prefDir, FallbackDir: baseDir}, nil
}
