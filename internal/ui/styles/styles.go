// Package styles contains Lip Gloss style definitions shared across
// the UI.
package styles

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the color tokens that can be overridden from config.
type Theme struct {
	Highlight string
	Subtle    string
	Error     string
	Success   string
}

// DefaultTheme returns the built-in color set.
func DefaultTheme() Theme {
	return Theme{
		Highlight: "#7D56F4",
		Subtle:    "#6B7280",
		Error:     "#EF4444",
		Success:   "#10B981",
	}
}

// Color variables, rebuilt by Apply.
var (
	HighlightColor = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}
	SubtleColor    = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	ErrorColor     = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#EF4444"}
	SuccessColor   = lipgloss.AdaptiveColor{Light: "#10B981", Dark: "#10B981"}
)

// Style variables, rebuilt by Apply.
var (
	Title        lipgloss.Style
	MenuItem     lipgloss.Style
	MenuSelected lipgloss.Style
	Subtle       lipgloss.Style
	ErrorText    lipgloss.Style
	SuccessText  lipgloss.Style
	PromptLabel  lipgloss.Style
	ReportHeader lipgloss.Style
	Pane         lipgloss.Style
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func init() {
	rebuild()
}

// Apply installs a theme, ignoring tokens that are not valid hex
// colors, and rebuilds all style objects.
func Apply(t Theme) {
	set := func(dst *lipgloss.AdaptiveColor, hex string) {
		if hexColorRe.MatchString(hex) {
			*dst = lipgloss.AdaptiveColor{Light: hex, Dark: hex}
		}
	}
	set(&HighlightColor, t.Highlight)
	set(&SubtleColor, t.Subtle)
	set(&ErrorColor, t.Error)
	set(&SuccessColor, t.Success)
	rebuild()
}

func rebuild() {
	Title = lipgloss.NewStyle().Bold(true).Foreground(HighlightColor)
	MenuItem = lipgloss.NewStyle().PaddingLeft(2)
	MenuSelected = lipgloss.NewStyle().PaddingLeft(0).Bold(true).Foreground(HighlightColor)
	Subtle = lipgloss.NewStyle().Foreground(SubtleColor)
	ErrorText = lipgloss.NewStyle().Foreground(ErrorColor)
	SuccessText = lipgloss.NewStyle().Foreground(SuccessColor)
	PromptLabel = lipgloss.NewStyle().Bold(true)
	ReportHeader = lipgloss.NewStyle().Bold(true).Foreground(HighlightColor)
	Pane = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(SubtleColor).Padding(0, 1)
}

// GradeLine returns the style for a grade summary line: failing grades
// render in the error color, everything else in the success color.
func GradeLine(grade string) lipgloss.Style {
	if grade == "F" {
		return lipgloss.NewStyle().Bold(true).Foreground(ErrorColor)
	}
	return lipgloss.NewStyle().Bold(true).Foreground(SuccessColor)
}
