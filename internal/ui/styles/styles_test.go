package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestApply_OverridesValidHex(t *testing.T) {
	defer Apply(DefaultTheme())

	Apply(Theme{Highlight: "#FF0000"})

	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF0000"}, HighlightColor)
}

func TestApply_IgnoresInvalidHex(t *testing.T) {
	defer Apply(DefaultTheme())
	Apply(DefaultTheme())
	before := SubtleColor

	Apply(Theme{Subtle: "notacolor"})

	assert.Equal(t, before, SubtleColor)
}

func TestGradeLine(t *testing.T) {
	assert.Equal(t, ErrorColor, GradeLine("F").GetForeground())
	assert.Equal(t, SuccessColor, GradeLine("A+").GetForeground())
	assert.Equal(t, SuccessColor, GradeLine("D").GetForeground())
}
