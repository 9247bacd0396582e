package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sm64pc/sm64config/internal/configfile"
)

// RenderOptions renders every option of reg as a name / kind / value table
func RenderOptions(reg *configfile.Registry, width int) string {
	width = clampWidth(width)

	rows := make([]string, 0, reg.Len())
	for _, opt := range reg.Options() {
		rows = append(rows, renderOptionRow(opt, false))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(width-2).
		Padding(0, 1).
		Render(strings.Join(rows, "\n"))
}

func renderOptionRow(opt configfile.Option, selected bool) string {
	name := OptionNameStyle.Render(opt.Name)
	value := OptionValueStyle.Render(opt.Format())
	if selected {
		name = SelectedStyle.Width(18).Render(opt.Name)
		value = SelectedStyle.Render(opt.Format())
	}
	return name + " " + OptionKindStyle.Render(opt.Kind().String()) + " " + value
}
