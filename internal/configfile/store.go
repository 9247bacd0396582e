package configfile

import (
	"go.uber.org/zap"

	"github.com/sm64pc/sm64config/internal/logging"
)

// Store loads and saves one registry to one file name.
// A Store is not safe for concurrent use; there is exactly one writer.
type Store struct {
	registry *Registry
	paths    Paths
	filename string
	log      *zap.Logger
}

// NewStore creates a Store. A nil logger uses the package logger from internal/logging.
func NewStore(registry *Registry, paths Paths, filename string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Store{
		registry: registry,
		paths:    paths,
		filename: filename,
		log:      logger,
	}
}

// Registry returns the registry the store reads into and writes from.
func (s *Store) Registry() *Registry {
	return s.registry
}

// Paths returns the directories the store works with.
func (s *Store) Paths() Paths {
	return s.paths
}

// Filename returns the bare file name, without directory.
func (s *Store) Filename() string {
	return s.filename
}
