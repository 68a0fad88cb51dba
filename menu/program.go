package menu

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"termselect/models"
	"termselect/render"
)

var helpStyle = lipgloss.NewStyle().MarginTop(1)

// Program runs a menu inside a bubbletea program, for applications that
// already own the screen. It reacts to the same keys as Run. Ctrl+C ends
// the program with state Aborted instead of exiting the process.
type Program struct {
	v         models.Variant
	keys      KeyMap
	help      help.Model
	state     State
	confirmed bool
	// ShowHelp adds a key help line below the options.
	ShowHelp bool
}

// NewProgram wraps v. Use Menu.Program or MultiMenu.Program to reuse a
// validated menu.
func NewProgram(v models.Variant, keys KeyMap) Program {
	return Program{v: v, keys: keys, help: help.New(), state: Running, ShowHelp: true}
}

func (m Program) Init() tea.Cmd {
	return nil
}

func (m Program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if m.state != Running {
			return m, nil
		}
		switch apply(m.v, m.keys, tea.Key(msg)).act {
		case actConfirm:
			m.state, m.confirmed = Done, true
			return m, tea.Quit
		case actCancel:
			m.state = Done
			return m, tea.Quit
		case actAbort:
			m.state = Aborted
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Program) View() string {
	if m.state != Running {
		return ""
	}
	var s strings.Builder
	s.WriteString(render.Frame(m.v))
	if m.ShowHelp {
		s.WriteString(helpStyle.Render(m.help.View(m.keys)))
		s.WriteString("\n")
	}
	return s.String()
}

// State reports whether the program is still running or how it ended.
func (m Program) State() State { return m.state }

// Confirmed reports whether the user pressed Enter.
func (m Program) Confirmed() bool { return m.confirmed }

// Variant returns the menu being driven.
func (m Program) Variant() models.Variant { return m.v }
