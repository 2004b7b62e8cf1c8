package reports

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ajay0548/SGC-PRO/internal/config"
	"github.com/Ajay0548/SGC-PRO/internal/mode"
	"github.com/Ajay0548/SGC-PRO/internal/registry"
	"github.com/Ajay0548/SGC-PRO/internal/testutil"
)

func newTestMode(t *testing.T, reg *registry.Registry, scope Scope) mode.Controller {
	t.Helper()
	cfg := config.Defaults()
	var ctrl mode.Controller = New(mode.Services{Registry: reg, Config: &cfg}, scope)
	return ctrl.SetSize(80, 24)
}

func typeString(ctrl mode.Controller, s string) mode.Controller {
	for _, r := range s {
		ctrl, _ = ctrl.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return ctrl
}

func TestScopeOne_PickShowsReport(t *testing.T) {
	ctrl := newTestMode(t, testutil.TwoStudentClass(t), ScopeOne)

	view := ansi.Strip(ctrl.View())
	assert.Contains(t, view, "Available students:")
	assert.Contains(t, view, "s1 -> Ana")

	ctrl = typeString(ctrl, "s1")
	ctrl, _ = ctrl.Update(tea.KeyMsg{Type: tea.KeyEnter})

	view = ansi.Strip(ctrl.View())
	assert.Contains(t, view, "Report for: Ana (ID: s1)")
	assert.Contains(t, view, "Grade: A+")
}

func TestScopeOne_NotFoundReprompts(t *testing.T) {
	ctrl := newTestMode(t, testutil.TwoStudentClass(t), ScopeOne)

	ctrl = typeString(ctrl, "zz")
	ctrl, cmd := ctrl.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Contains(t, ansi.Strip(ctrl.View()), "Student not found.")
}

func TestScopeOne_EmptyRegistry(t *testing.T) {
	ctrl := newTestMode(t, registry.New(), ScopeOne)

	assert.Contains(t, ansi.Strip(ctrl.View()), "No students found. Add a student first.")
}

func TestScopeAll_ShowsEveryReportInOrder(t *testing.T) {
	ctrl := newTestMode(t, testutil.TwoStudentClass(t), ScopeAll)

	view := ansi.Strip(ctrl.View())
	assert.Contains(t, view, "Report for: Ana (ID: s1)")
	assert.Contains(t, view, "Report for: Leo (ID: s2)")
}

func TestScopeAll_EmptyRegistry(t *testing.T) {
	ctrl := newTestMode(t, registry.New(), ScopeAll)

	assert.Contains(t, ansi.Strip(ctrl.View()), "No students available.")
}

func TestEsc_GoesBack(t *testing.T) {
	ctrl := newTestMode(t, testutil.TwoStudentClass(t), ScopeAll)

	_, cmd := ctrl.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, mode.BackMsg{}, cmd())
}

func TestQ_GoesBackOnlyInViewer(t *testing.T) {
	// In the viewer, q leaves.
	ctrl := newTestMode(t, testutil.TwoStudentClass(t), ScopeAll)
	_, cmd := ctrl.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, mode.BackMsg{}, cmd())

	// At the pick step, q is just text for the id field.
	ctrl = newTestMode(t, testutil.TwoStudentClass(t), ScopeOne)
	ctrl, _ = ctrl.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.Contains(t, ansi.Strip(ctrl.View()), "Student ID:")
}
