// Package menu implements the main menu mode.
package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"

	"github.com/Ajay0548/SGC-PRO/internal/mode"
	"github.com/Ajay0548/SGC-PRO/internal/ui/styles"
)

type item struct {
	label  string
	target mode.AppMode
	quit   bool
}

var items = []item{
	{label: "Add student", target: mode.ModeAddStudent},
	{label: "Add / edit marks", target: mode.ModeMarks},
	{label: "Report for a student", target: mode.ModeReportOne},
	{label: "Report for all students", target: mode.ModeReportAll},
	{label: "Export reports", target: mode.ModeExport},
	{label: "Exit", quit: true},
}

// Model is the main menu controller.
type Model struct {
	services mode.Services
	cursor   int
	width    int
	height   int
}

// New creates the menu mode.
func New(services mode.Services) Model {
	return Model{services: services}
}

// Init implements mode.Controller.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements mode.Controller. Digits jump straight to an entry;
// arrows and j/k move the cursor.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := keyMsg.String(); key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case "enter":
		return m, m.choose(m.cursor)
	case "q", "ctrl+c":
		return m, tea.Quit
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '0'+byte(len(items)) {
			idx := int(key[0] - '1')
			m.cursor = idx
			return m, m.choose(idx)
		}
	}
	return m, nil
}

func (m Model) choose(idx int) tea.Cmd {
	it := items[idx]
	if it.quit {
		return tea.Quit
	}
	return mode.Switch(it.target)
}

// View implements mode.Controller.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Student Grade Calculator"))
	b.WriteString("\n")
	if m.services.Config.UI.ShowCount {
		b.WriteString(styles.Subtle.Render(fmt.Sprintf("%d student(s) registered", m.services.Registry.Len())))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, it := range items {
		line := fmt.Sprintf("%d. %s", i+1, it.label)
		if i == m.cursor {
			line = styles.MenuSelected.Render("> " + line)
		} else {
			line = styles.MenuItem.Render(line)
		}
		if m.width > 0 {
			line = truncate.String(line, uint(m.width)) //nolint:gosec // G115: width is a terminal dimension
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Subtle.Render("1-6 choose · enter confirm · q quit"))
	return b.String()
}

// SetSize implements mode.Controller.
func (m Model) SetSize(width, height int) mode.Controller {
	m.width = width
	m.height = height
	return m
}
