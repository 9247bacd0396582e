package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sm64pc/sm64config/internal/configfile"
)

// editorKeyMap defines key bindings for the option editor
type editorKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Edit   key.Binding
	Save   key.Binding
	Quit   key.Binding
	Cancel key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Edit, k.Save, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Edit},
		{k.Save, k.Quit, k.Cancel},
	}
}

func newEditorKeyMap() editorKeyMap {
	return editorKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter/space", "toggle/edit"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel edit"),
		),
	}
}

// SaveFunc persists the registry and returns the written path.
type SaveFunc func() (string, error)

// EditorModel edits the options of a registry in place.
// Bools toggle; numbers are typed into a text field and decoded on enter.
type EditorModel struct {
	options []configfile.Option
	cursor  int
	editing bool
	input   textinput.Model

	save      SaveFunc
	status    string
	statusErr bool

	// Dirty is true while there are changes that have not been saved.
	Dirty bool
	// Saved is true once at least one save succeeded.
	Saved bool

	keys  editorKeyMap
	help  help.Model
	Width int
}

// NewEditorModel creates an editor over reg. save is called on the save key.
func NewEditorModel(reg *configfile.Registry, save SaveFunc) EditorModel {
	input := textinput.New()
	input.CharLimit = 32
	input.Width = 20
	input.Prompt = ""

	return EditorModel{
		options: reg.Options(),
		input:   input,
		save:    save,
		keys:    newEditorKeyMap(),
		help:    help.New(),
		Width:   GetTerminalWidth(),
	}
}

// Init initializes the editor
func (m EditorModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses and window resizes
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m EditorModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Edit):
		if len(m.options) == 0 {
			return m, nil
		}
		opt := m.options[m.cursor]
		if opt.Kind() == configfile.KindBool {
			next := "true"
			if opt.Format() == "true" {
				next = "false"
			}
			return m.apply(opt, next), nil
		}
		m.editing = true
		m.input.SetValue(opt.Format())
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Save):
		path, err := m.save()
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.Dirty = false
		m.Saved = true
		m.setStatus("Saved to "+path, false)

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m EditorModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.input.Blur()
		m.setStatus("", false)
		return m, nil

	case "enter":
		opt := m.options[m.cursor]
		m.editing = false
		m.input.Blur()
		return m.apply(opt, strings.TrimSpace(m.input.Value())), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// apply decodes text into opt and records the outcome in the status line.
func (m EditorModel) apply(opt configfile.Option, text string) EditorModel {
	if err := opt.Decode(text); err != nil {
		m.setStatus(err.Error(), true)
		return m
	}
	m.Dirty = true
	m.setStatus(fmt.Sprintf("%s = %s", opt.Name, opt.Format()), false)
	return m
}

func (m *EditorModel) setStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
}

// Status returns the current status line text
func (m EditorModel) Status() string {
	return m.status
}

// View renders the editor
func (m EditorModel) View() string {
	var b strings.Builder

	b.WriteString(HeaderTitleStyle.Render("SM64 OPTIONS"))
	if m.Dirty {
		b.WriteString(lipgloss.NewStyle().Foreground(WarningColor).Render("  (modified)"))
	}
	b.WriteString("\n\n")

	for i, opt := range m.options {
		selected := i == m.cursor
		marker := "  "
		if selected {
			marker = SelectedStyle.Render(CursorMarker) + " "
		}
		b.WriteString("  " + marker)
		if selected && m.editing {
			b.WriteString(SelectedStyle.Width(18).Render(opt.Name) + " " +
				OptionKindStyle.Render(opt.Kind().String()) + " " + m.input.View())
		} else {
			b.WriteString(renderOptionRow(opt, selected))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		style := lipgloss.NewStyle().Foreground(SuccessColor)
		if m.statusErr {
			style = ErrorMessageStyle
		}
		b.WriteString("  " + style.Render(m.status) + "\n\n")
	}
	b.WriteString("  " + m.help.View(m.keys) + "\n")

	return b.String()
}
