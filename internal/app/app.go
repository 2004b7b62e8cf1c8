// Package app composes the mode controllers, the toaster, and the
// registry event listener into the root Bubble Tea model.
package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Ajay0548/SGC-PRO/internal/config"
	"github.com/Ajay0548/SGC-PRO/internal/log"
	"github.com/Ajay0548/SGC-PRO/internal/mode"
	"github.com/Ajay0548/SGC-PRO/internal/mode/addstudent"
	"github.com/Ajay0548/SGC-PRO/internal/mode/exportpick"
	"github.com/Ajay0548/SGC-PRO/internal/mode/marks"
	"github.com/Ajay0548/SGC-PRO/internal/mode/menu"
	"github.com/Ajay0548/SGC-PRO/internal/mode/reports"
	"github.com/Ajay0548/SGC-PRO/internal/pubsub"
	"github.com/Ajay0548/SGC-PRO/internal/registry"
	"github.com/Ajay0548/SGC-PRO/internal/ui/toaster"
)

const toastDuration = 3 * time.Second

// Model is the root application model.
type Model struct {
	services mode.Services
	current  mode.AppMode
	active   mode.Controller
	toaster  toaster.Model
	listener *pubsub.ContinuousListener[registry.StudentEvent]
	cancel   context.CancelFunc
	width    int
	height   int
}

// New creates the root model around a registry and config.
func New(reg *registry.Registry, cfg *config.Config, configPath string) Model {
	services := mode.Services{
		Registry:   reg,
		Config:     cfg,
		ConfigPath: configPath,
	}

	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		services: services,
		current:  mode.ModeMenu,
		active:   menu.New(services),
		toaster:  toaster.New(),
		listener: pubsub.NewContinuousListener(ctx, reg.Broker()),
		cancel:   cancel,
	}
}

// Close releases the registry subscription.
func (m *Model) Close() error {
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.active.Init(), m.listener.Listen())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.active = m.active.SetSize(msg.Width, msg.Height)
		return m, nil

	case pubsub.Event[registry.StudentEvent]:
		// Registry changed; the re-render picks up new counts. Re-arm
		// the listener for the next event.
		log.Debug(log.CatUI, "registry event", "type", msg.Type, "student", msg.Payload.StudentID)
		return m, m.listener.Listen()

	case mode.SwitchMsg:
		return m.switchMode(msg.Mode)

	case mode.BackMsg:
		return m.switchMode(mode.ModeMenu)

	case mode.ToastMsg:
		var style toaster.Style
		switch msg.Status {
		case mode.ToastError:
			style = toaster.StyleError
		case mode.ToastInfo:
			style = toaster.StyleInfo
		default:
			style = toaster.StyleSuccess
		}
		m.toaster = m.toaster.Show(msg.Message, style)
		return m, toaster.ScheduleDismiss(toastDuration)

	case toaster.DismissMsg:
		m.toaster = m.toaster.Hide()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.active, cmd = m.active.Update(msg)
	return m, cmd
}

// switchMode swaps in a freshly constructed controller for the target
// mode. Modes carry no state across visits; the registry is the only
// thing that persists.
func (m Model) switchMode(target mode.AppMode) (tea.Model, tea.Cmd) {
	m.current = target
	switch target {
	case mode.ModeAddStudent:
		m.active = addstudent.New(m.services)
	case mode.ModeMarks:
		m.active = marks.New(m.services)
	case mode.ModeReportOne:
		m.active = reports.New(m.services, reports.ScopeOne)
	case mode.ModeReportAll:
		m.active = reports.New(m.services, reports.ScopeAll)
	case mode.ModeExport:
		m.active = exportpick.New(m.services)
	default:
		m.active = menu.New(m.services)
	}
	m.active = m.active.SetSize(m.width, m.height)
	return m, m.active.Init()
}

// View implements tea.Model.
func (m Model) View() string {
	view := m.active.View()
	if m.toaster.Visible() {
		view = lipgloss.JoinVertical(lipgloss.Left, view, "", m.toaster.View())
	}
	return view
}
