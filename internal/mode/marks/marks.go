// Package marks implements the add/edit-marks mode: pick a student,
// then enter subject/mark pairs until a blank subject ends the loop.
package marks

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ajay0548/SGC-PRO/internal/mode"
	"github.com/Ajay0548/SGC-PRO/internal/registry"
	"github.com/Ajay0548/SGC-PRO/internal/ui/styles"
)

type step int

const (
	stepStudent step = iota
	stepSubject
	stepMark
)

// Model is the marks entry controller.
type Model struct {
	services mode.Services
	step     step
	student  *registry.Student
	input    textinput.Model
	subject  string
	errMsg   string
	saved    int
	width    int
	height   int
}

// New creates the marks mode at the student-selection step.
func New(services mode.Services) Model {
	in := textinput.New()
	in.Placeholder = "student id"
	in.CharLimit = 64
	in.Focus()

	return Model{services: services, input: in}
}

// Init implements mode.Controller.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements mode.Controller.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m.finish()
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// finish leaves the mode, reporting how many marks were saved.
func (m Model) finish() (mode.Controller, tea.Cmd) {
	if m.saved > 0 {
		toast := fmt.Sprintf("Saved %d mark(s) for %s", m.saved, m.student.Name())
		return m, tea.Batch(mode.Toast(toast, mode.ToastSuccess), mode.Back())
	}
	return m, mode.Back()
}

func (m Model) submit() (mode.Controller, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch m.step {
	case stepStudent:
		s, err := m.services.Registry.Get(value)
		if err != nil {
			m.errMsg = "Student not found."
			m.input.Reset()
			return m, nil
		}
		m.student = s
		m.step = stepSubject
		m.errMsg = ""
		m.input.Reset()
		m.input.Placeholder = "subject (blank to finish)"
		return m, nil

	case stepSubject:
		// A blank subject is the stop sentinel for the entry loop.
		if value == "" {
			return m.finish()
		}
		m.subject = value
		m.step = stepMark
		m.errMsg = ""
		m.input.Reset()
		m.input.Placeholder = "mark (0-100)"
		return m, nil

	default: // stepMark
		mark, err := strconv.ParseFloat(value, 64)
		if err != nil {
			m.errMsg = "Invalid number. Try again."
			m.input.Reset()
			return m, nil
		}
		if mark < 0 || mark > 100 {
			m.errMsg = "Mark must be between 0 and 100."
			m.input.Reset()
			return m, nil
		}
		if err := m.services.Registry.SetMark(m.student.ID(), m.subject, mark); err != nil {
			m.errMsg = err.Error()
			m.input.Reset()
			return m, nil
		}
		m.errMsg = ""
		m.saved++
		m.step = stepSubject
		m.input.Reset()
		m.input.Placeholder = "subject (blank to finish)"
		return m, nil
	}
}

// View implements mode.Controller.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Add / edit marks"))
	b.WriteString("\n\n")

	switch m.step {
	case stepStudent:
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

	case stepSubject:
		fmt.Fprintf(&b, "Student: %s (%s)\n\n", m.student.Name(), m.student.ID())
		b.WriteString(styles.PromptLabel.Render("Subject: "))
		b.WriteString(m.input.View())
		b.WriteString("\n")

	default: // stepMark
		fmt.Fprintf(&b, "Student: %s (%s)\n\n", m.student.Name(), m.student.ID())
		b.WriteString(styles.PromptLabel.Render(fmt.Sprintf("Mark for %s (0-100): ", m.subject)))
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorText.Render(m.errMsg))
		b.WriteString("\n")
	}
	if m.saved > 0 {
		b.WriteString("\n")
		b.WriteString(styles.SuccessText.Render(fmt.Sprintf("%d mark(s) saved", m.saved)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Subtle.Render("enter confirm · esc back"))
	return b.String()
}

// SetSize implements mode.Controller.
func (m Model) SetSize(width, height int) mode.Controller {
	m.width = width
	m.height = height
	return m
}
