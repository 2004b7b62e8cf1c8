// Package addstudent implements the add-student form mode.
package addstudent

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ajay0548/SGC-PRO/internal/mode"
	"github.com/Ajay0548/SGC-PRO/internal/registry"
	"github.com/Ajay0548/SGC-PRO/internal/ui/styles"
)

type step int

const (
	stepID step = iota
	stepName
)

// Model is the add-student form controller.
type Model struct {
	services  mode.Services
	step      step
	idInput   textinput.Model
	nameInput textinput.Model
	errMsg    string
	width     int
	height    int
}

// New creates the add-student mode with focus on the id field.
func New(services mode.Services) Model {
	id := textinput.New()
	id.Placeholder = "student id"
	id.CharLimit = 64
	id.Focus()

	name := textinput.New()
	name.Placeholder = "student name (blank = Unknown)"
	name.CharLimit = 128

	return Model{
		services:  services,
		idInput:   id,
		nameInput: name,
	}
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
			return m, mode.Back()
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	switch m.step {
	case stepID:
		m.idInput, cmd = m.idInput.Update(msg)
	case stepName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	}
	return m, cmd
}

// submit advances the form: the id step validates before moving on so
// a duplicate is caught before the user types a name; the name step
// performs the add.
func (m Model) submit() (mode.Controller, tea.Cmd) {
	switch m.step {
	case stepID:
		id := strings.TrimSpace(m.idInput.Value())
		if id == "" {
			m.errMsg = "ID cannot be empty."
			return m, nil
		}
		if _, err := m.services.Registry.Get(id); err == nil {
			m.errMsg = fmt.Sprintf("Student ID %q already exists.", id)
			return m, nil
		}
		m.errMsg = ""
		m.step = stepName
		m.idInput.Blur()
		return m, m.nameInput.Focus()

	default: // stepName
		id := strings.TrimSpace(m.idInput.Value())
		s, err := m.services.Registry.Add(id, m.nameInput.Value())
		if err != nil {
			// Racing adds are impossible in a single-user shell, but the
			// registry stays the source of truth for validation.
			m.errMsg = errorMessage(err)
			return m, nil
		}
		toast := fmt.Sprintf("Student added: %s - %s", s.ID(), s.Name())
		return m, tea.Batch(mode.Toast(toast, mode.ToastSuccess), mode.Back())
	}
}

func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, registry.ErrEmptyID):
		return "ID cannot be empty."
	case errors.Is(err, registry.ErrDuplicateID):
		return "Student ID already exists."
	default:
		return err.Error()
	}
}

// View implements mode.Controller.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Add student"))
	b.WriteString("\n\n")

	b.WriteString(styles.PromptLabel.Render("ID: "))
	b.WriteString(m.idInput.View())
	b.WriteString("\n")
	if m.step >= stepName {
		b.WriteString(styles.PromptLabel.Render("Name: "))
		b.WriteString(m.nameInput.View())
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorText.Render(m.errMsg))
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
