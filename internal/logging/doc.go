// Package logging provides structured logging for sm64config.
//
// This package wraps a package-level zap logger. Components that want their
// own logger (for example configfile.Store in tests) accept a *zap.Logger and
// fall back to GetLogger when given nil.
//
// # Log Levels
//
//   - Debug: every option applied from a file, ignored boolean values
//   - Info: directory not found, loading from X, saving to X, file created
//   - Warn: unknown options, lines without a value, unparsable numbers
//   - Error: config directory or file could not be written
//
// # Configuration
//
// Initialize logging once at startup:
//
//	if err := logging.Initialize("info"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// An empty level reads SM64CONFIG_LOG_LEVEL; if that is empty too, or the
// level is "off", a no-op logger is installed.
//
// # Output Format
//
// Logs are written to stderr in console format so that command output on
// stdout stays clean:
//
//	2025-11-25T10:30:45.123-0800  INFO  Loading configuration  {"path": "/home/u/.local/share/sm64pc/sm64config.txt"}
package logging
