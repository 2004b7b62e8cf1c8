// Package toaster provides a transient notification widget.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Ajay0548/SGC-PRO/internal/ui/styles"
)

// Style determines the visual appearance of the toast.
type Style int

const (
	// StyleSuccess shows ✅ with the success border color.
	StyleSuccess Style = iota
	// StyleError shows ❌ with the error border color.
	StyleError
	// StyleInfo shows ℹ️ with the subtle border color.
	StyleInfo
)

// Model holds the toaster state.
type Model struct {
	message string
	style   Style
	visible bool
}

// New creates an empty, hidden toaster.
func New() Model {
	return Model{}
}

// Show displays a toast with the given message and style.
func (m Model) Show(message string, style Style) Model {
	m.message = message
	m.style = style
	m.visible = true
	return m
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Visible returns whether the toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// View renders the toast box, empty when hidden.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}

	box := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	var content string
	switch m.style {
	case StyleError:
		box = box.BorderForeground(styles.ErrorColor)
		content = "❌ " + m.message
	case StyleInfo:
		box = box.BorderForeground(styles.SubtleColor)
		content = "ℹ️ " + m.message
	default: // StyleSuccess
		box = box.BorderForeground(styles.SuccessColor)
		content = "✅ " + m.message
	}

	return box.Render(content)
}

// DismissMsg signals that the toast should be dismissed.
type DismissMsg struct{}

// ScheduleDismiss returns a command that dismisses the toast after d.
func ScheduleDismiss(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return DismissMsg{}
	})
}
