// Package ui provides terminal rendering for sm64config commands.
//
// It contains lipgloss-styled building blocks shared by the CLI (a command
// banner, result boxes, and an option table) and a bubbletea model for
// editing options interactively.
//
// # Components
//
// Header renders the banner shown before a command runs:
//
//	fmt.Println(ui.NewHeader("Configuration", "sm64config load",
//	    ui.Param{Key: "Config dir", Value: paths.PreferredDir},
//	).Render())
//
// Result renders the outcome, with skipped lines as notes and
// troubleshooting tips derived from configfile errors:
//
//	fmt.Println(ui.NewFailureResult("Save failed", err).Render())
//
// EditorModel lets the user toggle booleans and type numbers:
//
//	p := tea.NewProgram(ui.NewEditorModel(registry, store.Save))
//	final, err := p.Run()
//
// # Terminal Width
//
// Components adapt to the terminal width reported by golang.org/x/term,
// clamped between MinTerminalWidth and MaxContentWidth.
package ui
