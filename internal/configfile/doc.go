// Package configfile loads and saves named runtime options to a plain text file.
//
// The file holds one option per line, a name and a value separated by whitespace:
//
//	fullscreen false
//	key_a 38
//	key_b 51
//
// Anything after the second word on a line is ignored. There are no comments,
// no quoting and no header.
//
// # Options
//
// Options are declared once in an ordered Registry. Each Option binds a name to
// a Slot pointing at caller-owned storage:
//
//	var s struct {
//	    Fullscreen bool
//	    KeyA       uint32
//	}
//	registry := configfile.MustNewRegistry(
//	    configfile.Bool("fullscreen", &s.Fullscreen),
//	    configfile.UInt("key_a", &s.KeyA),
//	)
//
// The registry order is the order lines are written in.
//
// # File Location
//
// A Store reads from the preferred (per-user) directory when that directory
// exists. Only when the preferred directory is missing altogether is the
// fallback directory consulted. Writes always go to the preferred directory,
// which is created on demand:
//
//	store := configfile.NewStore(registry, configfile.Paths{
//	    PreferredDir: prefDir,
//	    FallbackDir:  cwd,
//	}, "sm64config.txt", nil)
//
//	report, err := store.Load()
//	if configfile.IsDirUnavailable(err) {
//	    os.Exit(2)
//	}
//
// When no file is found, Load writes the current values to the preferred
// directory instead and reports Created.
//
// # Malformed Input
//
// Load never fails because of file content. Lines with a missing value,
// unknown names and values that do not parse are collected as Issues in the
// LoadReport and the affected options keep their prior values.
package configfile
