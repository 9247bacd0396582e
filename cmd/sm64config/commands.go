package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sm64pc/sm64config/internal/config"
	"github.com/sm64pc/sm64config/internal/configfile"
	"github.com/sm64pc/sm64config/internal/logging"
	"github.com/sm64pc/sm64config/internal/ui"
)

var outputFormat string

func init() {
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(editCmd)

	showCmd.Flags().StringVar(&outputFormat, "format", "table", "Output format (table, yaml, json)")
}

// resolvePaths returns the preferred and fallback directories, honouring flag overrides.
func resolvePaths() (configfile.Paths, error) {
	preferred := config.PreferredDir
	if dirOverride != "" {
		preferred = func() (string, error) { return dirOverride, nil }
	}
	base := config.BaseDir
	if fallbackDir != "" {
		base = func() (string, error) { return fallbackDir, nil }
	}
	return config.ResolvePaths(preferred, base)
}

// loadSettings resolves paths and loads the config file over the defaults.
func loadSettings() (*config.Settings, *configfile.Store, *configfile.LoadReport, error) {
	paths, err := resolvePaths()
	if err != nil {
		return nil, nil, nil, err
	}

	settings := config.Defaults()
	store := config.NewStore(settings, paths, fileName, logging.GetLogger())
	report, err := store.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	return settings, store, report, nil
}

// loadCmd loads the configuration, creating it when missing
var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the configuration (creating it with defaults if missing)",
	Long: `Load the options file and report where it was read from.

If the per-user directory does not exist, the working directory is checked.
If no file is found at all, the default values are written to the per-user
directory. Lines with unknown options or unreadable values are skipped and
listed.`,
	Example: `  # Load from the platform data directory
  sm64config load

  # Load from a custom directory
  sm64config load --dir ./portable`,
	RunE: runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	paths, err := resolvePaths()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.NewHeader("Configuration", cmd.CommandPath(),
		ui.Param{Key: "Config dir", Value: paths.PreferredDir},
		ui.Param{Key: "Fallback dir", Value: paths.FallbackDir},
		ui.Param{Key: "File", Value: fileName},
	).Render())

	_, _, report, err := loadSettings()
	if err != nil {
		fmt.Fprintln(out, ui.NewFailureResult("Load failed", err).Render())
		return err
	}

	fmt.Fprintln(out, reportResult(report).Render())
	return nil
}

// reportResult turns a load report into a result box
func reportResult(report *configfile.LoadReport) *ui.Result {
	if report.Created {
		return ui.NewSuccessResult("Created default configuration",
			ui.Param{Key: "Path", Value: report.Path})
	}

	source := "config dir"
	if report.UsedFallback {
		source = "fallback dir"
	}
	details := []ui.Param{
		{Key: "Path", Value: report.Path},
		{Key: "Source", Value: source},
		{Key: "Options set", Value: fmt.Sprintf("%d", len(report.Applied))},
	}

	if len(report.Issues) == 0 {
		return ui.NewSuccessResult("Configuration loaded", details...)
	}

	result := ui.NewWarningResult("Configuration loaded with skipped lines", details...)
	for _, issue := range report.Issues {
		result.AddNote(issue.String())
	}
	return result
}

// saveCmd rewrites the file with the current values
var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Rewrite the configuration file with the current values",
	Long: `Load the configuration and write it back to the per-user directory.

This normalises the file: every known option is written once, in the fixed
order, and unknown or malformed lines are dropped. A file read from the
working directory is copied to the per-user directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, _, err := loadSettings()
		if err != nil {
			return err
		}
		path, err := store.Save()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.NewSuccessResult("Configuration saved",
			ui.Param{Key: "Path", Value: path}).Render())
		return nil
	},
}

// resetCmd writes the default values
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Overwrite the configuration file with default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := resolvePaths()
		if err != nil {
			return err
		}
		path, err := config.NewStore(config.Defaults(), paths, fileName, logging.GetLogger()).Save()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.NewSuccessResult("Defaults restored",
			ui.Param{Key: "Path", Value: path}).Render())
		return nil
	},
}

// showCmd prints every option value
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show all option values",
	Example: `  # Table view
  sm64config show

  # YAML for scripting
  sm64config show --format yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, store, _, err := loadSettings()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch outputFormat {
		case "yaml":
			data, err := yaml.Marshal(settings)
			if err != nil {
				return fmt.Errorf("failed to marshal YAML: %w", err)
			}
			fmt.Fprint(out, string(data))
		case "json":
			data, err := json.MarshalIndent(settings, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(out, string(data))
		case "table":
			fmt.Fprintln(out, ui.RenderOptions(store.Registry(), ui.GetTerminalWidth()))
		default:
			return fmt.Errorf("unknown format %q (want table, yaml or json)", outputFormat)
		}
		return nil
	},
}

// getCmd prints one option value
var getCmd = &cobra.Command{
	Use:   "get <option>",
	Short: "Print the value of one option",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, _, err := loadSettings()
		if err != nil {
			return err
		}
		opt, ok := store.Registry().Find(args[0])
		if !ok {
			return configfile.NewUnknownOptionError(args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), opt.Format())
		return nil
	},
}

// setCmd changes options and saves
var setCmd = &cobra.Command{
	Use:   "set <option> <value> [<option> <value>...]",
	Short: "Set option values and save",
	Long: `Set one or more options and save the file.

Values are checked before anything is written: booleans must be 'true' or
'false', key bindings must be unsigned decimal scancodes.`,
	Example: `  # Start in fullscreen
  sm64config set fullscreen true

  # Rebind A and B
  sm64config set key_a 44 key_b 45`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 || len(args)%2 != 0 {
			return errors.New("expected <option> <value> pairs")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, _, err := loadSettings()
		if err != nil {
			return err
		}

		result := ui.NewSuccessResult("Configuration saved")
		for i := 0; i < len(args); i += 2 {
			if err := store.Registry().Set(args[i], args[i+1]); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.NewFailureResult("Invalid option", err).Render())
				return err
			}
			opt, _ := store.Registry().Find(args[i])
			result.AddDetail(opt.Name, opt.Format())
		}

		path, err := store.Save()
		if err != nil {
			return err
		}
		result.AddDetail("Path", path)
		fmt.Fprintln(cmd.OutOrStdout(), result.Render())
		return nil
	},
}

// pathCmd shows where the file is read from and written to
var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show where the configuration is read from and written to",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := resolvePaths()
		if err != nil {
			return err
		}
		loc := paths.ResolveForRead(fileName)

		readFrom := loc.Path
		if !loc.Found {
			readFrom = "(none, defaults will be created)"
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Config dir:   %s\n", paths.PreferredDir)
		fmt.Fprintf(out, "Fallback dir: %s\n", paths.FallbackDir)
		fmt.Fprintf(out, "Read from:    %s\n", readFrom)
		fmt.Fprintf(out, "Write to:     %s\n", filepath.Join(paths.PreferredDir, fileName))
		return nil
	},
}

// editCmd launches the interactive editor
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit options interactively",
	Long: `Launch an interactive editor for all options.

Use the arrow keys to move, enter or space to toggle a boolean or edit a
number, 's' to save and 'q' to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !ui.IsInteractive() {
			return errors.New("edit requires an interactive terminal; use 'sm64config set' instead")
		}

		_, store, _, err := loadSettings()
		if err != nil {
			return err
		}

		final, err := tea.NewProgram(ui.NewEditorModel(store.Registry(), store.Save)).Run()
		if err != nil {
			return fmt.Errorf("editor failed: %w", err)
		}

		if m, ok := final.(ui.EditorModel); ok && m.Dirty {
			fmt.Fprintln(cmd.OutOrStdout(), ui.NewWarningResult("Unsaved changes discarded").Render())
		}
		return nil
	},
}
