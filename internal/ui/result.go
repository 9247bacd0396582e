package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sm64pc/sm64config/internal/configfile"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

// Result represents a result box (success, failure, or warning)
type Result struct {
	Type            ResultType // Success, failure, or warning
	Title           string     // e.g., "Configuration loaded"
	Details         []Param    // Key-value details, in display order
	Notes           []string   // Bullet lines, e.g. skipped config lines
	Error           error      // Error (for failure results)
	Troubleshooting []string   // Troubleshooting tips (for failure results)
	Width           int        // Terminal width
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details ...Param) *Result {
	return &Result{Type: ResultSuccess, Title: title, Details: details, Width: GetTerminalWidth()}
}

// NewWarningResult creates a warning result box
func NewWarningResult(title string, details ...Param) *Result {
	return &Result{Type: ResultWarning, Title: title, Details: details, Width: GetTerminalWidth()}
}

// NewFailureResult creates a failure result box with tips derived from err
func NewFailureResult(title string, err error) *Result {
	return &Result{
		Type:            ResultFailure,
		Title:           title,
		Error:           err,
		Troubleshooting: TroubleshootingFor(err),
		Width:           GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail appends a detail key-value pair
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Param{Key: key, Value: value})
	return r
}

// AddNote appends a bullet line
func (r *Result) AddNote(note string) *Result {
	r.Notes = append(r.Notes, note)
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := clampWidth(r.Width)

	var (
		title  string
		border lipgloss.Color
	)
	switch r.Type {
	case ResultFailure:
		title = ErrorTitleStyle.Render(fmt.Sprintf("   %s  FAILED  ─  %s", FailureMarker, r.Title))
		border = ErrorColor
	case ResultWarning:
		title = WarningTitleStyle.Render(fmt.Sprintf("   %s  WARNING  ─  %s", WarningMarker, r.Title))
		border = WarningColor
	default:
		title = SuccessTitleStyle.Render(fmt.Sprintf("   %s  SUCCESS  ─  %s", SuccessMarker, r.Title))
		border = SuccessColor
	}

	lines := []string{"", title, ""}

	for _, d := range r.Details {
		lines = append(lines, ResultKeyStyle.Render("   "+d.Key+":")+" "+ResultValueStyle.Render(d.Value))
	}
	if len(r.Details) > 0 {
		lines = append(lines, "")
	}

	for _, note := range r.Notes {
		lines = append(lines, IssueStyle.Render("   • "+note))
	}
	if len(r.Notes) > 0 {
		lines = append(lines, "")
	}

	if r.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render("   Error: "+r.Error.Error()), "")
	}

	if len(r.Troubleshooting) > 0 {
		tips := []string{lipgloss.NewStyle().Foreground(MutedColor).Bold(true).Render("Troubleshooting:"), ""}
		for _, tip := range r.Troubleshooting {
			tips = append(tips, lipgloss.NewStyle().Foreground(MutedColor).Render("  • "+tip))
		}
		lines = append(lines, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(MutedColor).
			Width(max(width-12, 40)).
			Padding(0, 1).
			MarginLeft(3).
			Render(strings.Join(tips, "\n")), "")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(border).
		Width(width-2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}

// TroubleshootingFor returns user-facing advice for a load or save error
func TroubleshootingFor(err error) []string {
	switch {
	case configfile.IsDirUnavailable(err):
		return []string{
			"The per-user data directory could not be created",
			"Check that your home directory is writable",
			"Set XDG_DATA_HOME (or use --dir) to point at a writable location",
		}
	case configfile.IsWriteError(err):
		return []string{
			"The config file could not be written",
			"Check permissions on the config directory and file",
			"Make sure the disk is not full",
		}
	case configfile.IsUnknownOption(err):
		return []string{"Run 'sm64config show' to list valid option names"}
	case configfile.IsInvalidValue(err):
		return []string{
			"Booleans must be exactly 'true' or 'false'",
			"Key bindings are unsigned decimal scancodes",
		}
	default:
		return nil
	}
}
