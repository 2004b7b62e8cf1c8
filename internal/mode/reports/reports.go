// Package reports implements the report viewing modes: a single
// student's report or all reports in registry order, in a scrollable
// viewport.
package reports

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ajay0548/SGC-PRO/internal/mode"
	"github.com/Ajay0548/SGC-PRO/internal/report"
	"github.com/Ajay0548/SGC-PRO/internal/ui/styles"
)

// Scope selects what the mode shows.
type Scope int

const (
	// ScopeOne prompts for a student id and shows that report.
	ScopeOne Scope = iota
	// ScopeAll shows every report in registry order.
	ScopeAll
)

type step int

const (
	stepPick step = iota
	stepView
)

// Model is the report viewing controller.
type Model struct {
	services mode.Services
	scope    Scope
	step     step
	input    textinput.Model
	viewport viewport.Model
	errMsg   string
	width    int
	height   int
}

// New creates a report mode. ScopeAll skips straight to the viewer.
func New(services mode.Services, scope Scope) Model {
	in := textinput.New()
	in.Placeholder = "student id"
	in.CharLimit = 64
	in.Focus()

	m := Model{
		services: services,
		scope:    scope,
		input:    in,
		viewport: viewport.New(0, 0),
	}
	if scope == ScopeAll {
		m.step = stepView
		m.viewport.SetContent(m.allReports())
	}
	return m
}

// Init implements mode.Controller.
func (m Model) Init() tea.Cmd {
	if m.step == stepPick {
		return textinput.Blink
	}
	return nil
}

// Update implements mode.Controller.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, mode.Back()
		case "q":
			if m.step == stepView {
				return m, mode.Back()
			}
		case "enter":
			if m.step == stepPick {
				return m.pick()
			}
		}
	}

	var cmd tea.Cmd
	if m.step == stepPick {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m Model) pick() (mode.Controller, tea.Cmd) {
	id := strings.TrimSpace(m.input.Value())
	s, err := m.services.Registry.Get(id)
	if err != nil {
		m.errMsg = "Student not found."
		m.input.Reset()
		return m, nil
	}
	m.step = stepView
	m.errMsg = ""
	m.viewport.SetContent(report.FormatStyled(s))
	return m, nil
}

func (m Model) allReports() string {
	students := m.services.Registry.Students()
	if len(students) == 0 {
		return "No students available."
	}
	parts := make([]string, 0, len(students))
	for _, s := range students {
		parts = append(parts, report.FormatStyled(s))
	}
	return strings.Join(parts, "\n"+strings.Repeat("-", 37)+"\n")
}

// View implements mode.Controller.
func (m Model) View() string {
	var b strings.Builder
	if m.scope == ScopeOne {
		b.WriteString(styles.Title.Render("Student report"))
	} else {
		b.WriteString(styles.Title.Render("All reports"))
	}
	b.WriteString("\n\n")

	if m.step == stepPick {
		students := m.services.Registry.Students()
		if len(students) == 0 {
			b.WriteString("No students found. Add a student first.\n")
		} else {
			b.WriteString("Available students:\n")
			for _, s := range students {
				b.WriteString(fmt.Sprintf("  %s -> %s\n", s.ID(), s.Name()))
			}
			b.WriteString("\n")
			b.WriteString(styles.PromptLabel.Render("Student ID: "))
			b.WriteString(m.input.View())
			b.WriteString("\n")
		}
		if m.errMsg != "" {
			b.WriteString("\n")
			b.WriteString(styles.ErrorText.Render(m.errMsg))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Subtle.Render("esc back"))
	return b.String()
}

// SetSize implements mode.Controller.
func (m Model) SetSize(width, height int) mode.Controller {
	m.width = width
	m.height = height
	m.viewport.Width = width
	// Leave room for the title and footer around the viewport.
	m.viewport.Height = max(1, height-5)
	return m
}
