// Package mode defines the mode controller interface, shared services,
// and the messages modes use to talk to the app shell.
package mode

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ajay0548/SGC-PRO/internal/config"
	"github.com/Ajay0548/SGC-PRO/internal/registry"
)

// AppMode identifies the current application mode.
type AppMode int

const (
	ModeMenu AppMode = iota
	ModeAddStudent
	ModeMarks
	ModeReportOne
	ModeReportAll
	ModeExport
)

// Controller defines the interface all modes implement.
type Controller interface {
	// Init returns initial commands for the mode.
	Init() tea.Cmd

	// Update handles messages and returns the updated controller and
	// follow-up commands.
	Update(msg tea.Msg) (Controller, tea.Cmd)

	// View renders the mode's UI.
	View() string

	// SetSize handles terminal resize events.
	SetSize(width, height int) Controller
}

// Services contains shared dependencies injected into mode controllers.
type Services struct {
	Registry   *registry.Registry
	Config     *config.Config
	ConfigPath string
}

// SwitchMsg asks the app shell to switch to another mode.
type SwitchMsg struct {
	Mode AppMode
}

// BackMsg asks the app shell to return to the menu.
type BackMsg struct{}

// ToastStatus classifies a toast request.
type ToastStatus int

const (
	ToastSuccess ToastStatus = iota
	ToastError
	ToastInfo
)

// ToastMsg asks the app shell to show a transient notification.
type ToastMsg struct {
	Message string
	Status  ToastStatus
}

// Switch returns a command that emits a SwitchMsg.
func Switch(m AppMode) tea.Cmd {
	return func() tea.Msg { return SwitchMsg{Mode: m} }
}

// Back returns a command that emits a BackMsg.
func Back() tea.Cmd {
	return func() tea.Msg { return BackMsg{} }
}

// Toast returns a command that emits a ToastMsg.
func Toast(message string, status ToastStatus) tea.Cmd {
	return func() tea.Msg { return ToastMsg{Message: message, Status: status} }
}
