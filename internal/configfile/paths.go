package configfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// DirPerm is the mode used when creating the preferred directory (rwxrwxr-x).
const DirPerm fs.FileMode = 0o775

// Paths holds the two directories a Store works with.
type Paths struct {
	// PreferredDir is the per-user directory that is read from when present
	// and always written to.
	PreferredDir string
	// FallbackDir is consulted for reads only while PreferredDir is missing.
	FallbackDir string
}

// ReadLocation is the outcome of ResolveForRead.
type ReadLocation struct {
	Dir              string // Directory that was consulted for the file
	Path             string // Full path of the file (set even when not found)
	Found            bool   // Whether the file exists at Path
	PreferredMissing bool   // Whether PreferredDir did not exist
}

// dirExists mirrors an opendir probe: only "does not exist" counts as absent.
func dirExists(dir string) bool {
	if dir == "" {
		return false
	}
	_, err := os.Stat(dir)
	return !errors.Is(err, fs.ErrNotExist)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ResolveForRead decides where filename should be read from.
//
// If PreferredDir exists, only PreferredDir/filename is considered. The
// fallback directory is consulted only when PreferredDir is missing entirely.
func (p Paths) ResolveForRead(filename string) ReadLocation {
	loc := ReadLocation{Dir: p.PreferredDir}
	if !dirExists(p.PreferredDir) {
		loc.PreferredMissing = true
		loc.Dir = p.FallbackDir
	}
	loc.Path = filepath.Join(loc.Dir, filename)
	loc.Found = fileExists(loc.Path)
	return loc
}

// ResolveForWrite returns PreferredDir/filename, creating PreferredDir first
// when it does not exist. Writes never fall back to FallbackDir.
func (p Paths) ResolveForWrite(filename string) (string, error) {
	if p.PreferredDir == "" {
		return "", NewDirUnavailableError(p.PreferredDir, errors.New("no preferred directory configured"))
	}

	info, err := os.Stat(p.PreferredDir)
	switch {
	case err == nil && !info.IsDir():
		return "", NewDirUnavailableError(p.PreferredDir, errors.New("not a directory"))
	case err != nil:
		if err := os.MkdirAll(p.PreferredDir, DirPerm); err != nil {
			return "", NewDirUnavailableError(p.PreferredDir, err)
		}
	}
	return filepath.Join(p.PreferredDir, filename), nil
}
