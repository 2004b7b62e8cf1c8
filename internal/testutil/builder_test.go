package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_BuildsStudentsInOrder(t *testing.T) {
	reg := NewBuilder(t).
		WithStudent("a", "Alpha").
		WithMark("Math", 50).
		WithStudent("b", "Beta").
		Build()

	students := reg.Students()
	require.Len(t, students, 2)
	assert.Equal(t, "a", students[0].ID())
	assert.Equal(t, "b", students[1].ID())

	mark, ok := students[0].Mark("Math")
	require.True(t, ok)
	assert.InDelta(t, 50, mark, 1e-9)
	assert.Equal(t, 0, students[1].MarkCount())
}

func TestTwoStudentClass(t *testing.T) {
	reg := TwoStudentClass(t)

	require.Equal(t, 2, reg.Len())
	ana, err := reg.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, "A+", ana.Grade())

	leo, err := reg.Get("s2")
	require.NoError(t, err)
	assert.Equal(t, "F", leo.Grade())
	assert.Equal(t, []string{"Math", "Sci"}, reg.AllSubjects())
}
