package report

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ajay0548/SGC-PRO/internal/registry"
	"github.com/Ajay0548/SGC-PRO/internal/testutil"
)

func TestFormat_Golden(t *testing.T) {
	reg := testutil.TwoStudentClass(t)
	s, err := reg.Get("s1")
	require.NoError(t, err)

	teatest.RequireEqualOutput(t, []byte(Format(s)))
}

func TestFormat_NoMarks(t *testing.T) {
	s := registry.NewStudent("s9", "Mia")

	out := Format(s)
	assert.Contains(t, out, "Report for: Mia (ID: s9)")
	assert.Contains(t, out, "No marks recorded.")
	assert.NotContains(t, out, "Total:")
}

func TestFormat_MarkOrderFollowsInsertion(t *testing.T) {
	s := registry.NewStudent("s1", "Ana")
	require.NoError(t, s.SetMark("Zoology", 70))
	require.NoError(t, s.SetMark("Art", 80))

	out := Format(s)
	assert.Less(t, strings.Index(out, "Zoology"), strings.Index(out, "Art"))
}

func TestFormat_WideSubjectGrowsColumn(t *testing.T) {
	s := registry.NewStudent("s1", "Ana")
	require.NoError(t, s.SetMark("A Subject Name Longer Than Twenty", 55))

	out := Format(s)
	assert.Contains(t, out, "A Subject Name Longer Than Twenty")
	assert.Contains(t, out, "55.00")
}

func TestFormatAll_Empty(t *testing.T) {
	assert.Equal(t, "No students available.\n", FormatAll(registry.New()))
}

func TestFormatAll_RegistryOrderWithSeparators(t *testing.T) {
	reg := testutil.TwoStudentClass(t)

	out := FormatAll(reg)
	assert.Less(t, strings.Index(out, "Ana"), strings.Index(out, "Leo"))
	assert.Contains(t, out, strings.Repeat("-", 37))
	assert.Contains(t, out, "Grade: A+")
	assert.Contains(t, out, "Grade: F")
}

func TestFormatStyled_SameTextAsPlain(t *testing.T) {
	reg := testutil.TwoStudentClass(t)
	s, err := reg.Get("s2")
	require.NoError(t, err)

	styled := ansi.Strip(FormatStyled(s))
	plain := strings.TrimRight(Format(s), "\n")
	assert.Equal(t, plain, styled)
}
