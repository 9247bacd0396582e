// Sm64config loads, shows and edits the sm64pc runtime options file.
//
// The options file (sm64config.txt) lives in the per-user data directory
// and holds one "name value" pair per line. When that directory does not
// exist yet, a file in the working directory is read instead.
//
// Usage:
//
//	sm64config [command] [flags]
//
// Running without arguments loads the configuration, creating it with
// default values on first run. See 'sm64config --help' for available commands.
package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sm64pc/sm64config/internal/configfile"
	"github.com/sm64pc/sm64config/internal/logging"
	"github.com/sm64pc/sm64config/internal/version"
)

// Global flags
var (
	fileName    string
	dirOverride string
	fallbackDir string
	logLevel    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit status. A config directory
// that cannot be created exits with ENOENT.
func exitCode(err error) int {
	if configfile.IsDirUnavailable(err) {
		return int(syscall.ENOENT)
	}
	return 1
}

var rootCmd = &cobra.Command{
	Use:   "sm64config",
	Short: "SM64 PC port configuration utility",
	Long: `Load, inspect and edit the sm64pc options file.

The file is stored in the per-user data directory ($XDG_DATA_HOME/sm64pc on
Linux). If that directory does not exist, sm64config.txt in the working
directory is read instead. Saving always writes to the per-user directory.

If no command is specified, the configuration is loaded (and created with
default values when missing).`,
	Version:       version.Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Initialize(logLevel); err != nil {
			return err
		}
		logging.Info("sm64config starting", zap.String("version", version.Full()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoad(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&fileName, "file", "f", "sm64config.txt", "Config file name")
	rootCmd.PersistentFlags().StringVar(&dirOverride, "dir", "", "Per-user config directory (default: platform data dir)")
	rootCmd.PersistentFlags().StringVar(&fallbackDir, "fallback-dir", "", "Directory read when the config directory is missing (default: working dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error, off); empty reads "+logging.LogLevelEnvVar)

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sm64config %s (commit: %s)\n", version.Version, version.Commit)
	},
}
