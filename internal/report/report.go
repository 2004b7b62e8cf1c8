// Package report renders student reports as aligned text.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Ajay0548/SGC-PRO/internal/registry"
	"github.com/Ajay0548/SGC-PRO/internal/ui/styles"
)

const (
	minSubjectWidth = 20
	markWidth       = 8
)

// Format renders one student's report as plain text: a header line,
// then either a "no marks" line or a subject/mark table in insertion
// order followed by total, average, and letter grade. Pure function of
// the student's current state.
func Format(s *registry.Student) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Report for: %s (ID: %s)\n", s.Name(), s.ID())

	if s.MarkCount() == 0 {
		b.WriteString("No marks recorded.\n")
		return b.String()
	}

	// Subject column grows to fit the longest name; width is measured
	// in display cells so wide runes stay aligned.
	subjectWidth := minSubjectWidth
	for _, subj := range s.Subjects() {
		if w := runewidth.StringWidth(subj); w > subjectWidth {
			subjectWidth = w
		}
	}
	rule := strings.Repeat("-", subjectWidth+1+markWidth)

	fmt.Fprintf(&b, "%s %*s\n", runewidth.FillRight("Subject", subjectWidth), markWidth, "Mark")
	b.WriteString(rule + "\n")
	for _, subj := range s.Subjects() {
		mark, _ := s.Mark(subj)
		fmt.Fprintf(&b, "%s %*.2f\n", runewidth.FillRight(subj, subjectWidth), markWidth, mark)
	}
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Total: %.2f\n", s.Total())
	fmt.Fprintf(&b, "Average: %.2f\n", s.Average())
	fmt.Fprintf(&b, "Grade: %s\n", s.Grade())
	return b.String()
}

// FormatAll renders every student's report in registry order,
// separated by a rule line. Returns a placeholder line when the
// registry is empty.
func FormatAll(reg *registry.Registry) string {
	students := reg.Students()
	if len(students) == 0 {
		return "No students available.\n"
	}

	var b strings.Builder
	for i, s := range students {
		if i > 0 {
			b.WriteString(strings.Repeat("-", 37) + "\n")
		}
		b.WriteString(Format(s))
	}
	return b.String()
}

// FormatStyled renders a student report with the grade line colored
// for display inside the TUI. The tabular body is unchanged.
func FormatStyled(s *registry.Student) string {
	plain := Format(s)
	lines := strings.Split(strings.TrimRight(plain, "\n"), "\n")

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "Report for:"):
			lines[i] = styles.ReportHeader.Render(line)
		case strings.HasPrefix(line, "Grade:"):
			lines[i] = styles.GradeLine(s.Grade()).Render(line)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
