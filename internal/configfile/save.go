package configfile

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"go.uber.org/zap"
)

// FilePerm is the mode of written config files.
const FilePerm os.FileMode = 0o644

// WriteTo writes one "name value" line per option, in registry order.
func (r *Registry) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64
	for _, opt := range r.options {
		n, err := bw.WriteString(opt.Line() + "\n")
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, bw.Flush()
}

// Save writes every option's current value to the file in the preferred
// directory and returns its path. The preferred directory is created if
// missing; failure to do so is an ErrTypeDirUnavailable error. Any other
// failure is an ErrTypeWrite error and leaves an existing file untouched.
func (s *Store) Save() (string, error) {
	path, err := s.paths.ResolveForWrite(s.filename)
	if err != nil {
		s.log.Error("Couldn't get config path", zap.String("dir", s.paths.PreferredDir), zap.Error(err))
		return "", err
	}

	s.log.Info("Saving configuration", zap.String("path", path))

	var buf bytes.Buffer
	if _, err := s.registry.WriteTo(&buf); err != nil {
		return path, NewWriteError("failed to render config", path, err)
	}

	// Write to temporary file first (atomic write)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, buf.Bytes(), FilePerm); err != nil {
		s.log.Error("Failed to write config file", zap.String("path", tmpPath), zap.Error(err))
		return path, NewWriteError("failed to write temporary config file", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		s.log.Error("Failed to save config file", zap.String("path", path), zap.Error(err))
		return path, NewWriteError("failed to save config file", path, err)
	}

	return path, nil
}
