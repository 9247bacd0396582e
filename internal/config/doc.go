// Package config defines the persisted runtime settings of the game and where
// they live on disk.
//
// Settings replaces a set of free-standing globals with one struct. Its
// Registry method binds every field to the name used in the config file, in
// a fixed order, so that the generic configfile package can load and save it.
//
// # Configuration File Location
//
// The config file is read from and written to a per-user data directory:
//   - Linux: $XDG_DATA_HOME/sm64pc/sm64config.txt or $HOME/.local/share/sm64pc/sm64config.txt
//   - macOS: $HOME/Library/Application Support/sm64pc/sm64config.txt
//   - Windows: %APPDATA%\sm64pc\sm64config.txt
//
// While that directory does not exist, a sm64config.txt in the working
// directory is read instead. Saving always creates the per-user directory.
//
// # Usage Example
//
//	paths, err := config.DefaultPaths()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	settings, report, err := config.Load(paths, config.FileName, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, issue := range report.Issues {
//	    fmt.Println(issue)
//	}
//
//	settings.Fullscreen = true
//	if _, err := config.NewStore(settings, paths, "", nil).Save(); err != nil {
//	    log.Fatal(err)
//	}
package config
