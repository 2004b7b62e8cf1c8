// Package testutil provides helpers for building preloaded registries
// in tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Ajay0548/SGC-PRO/internal/registry"
)

// markData holds one subject/mark pair to be recorded.
type markData struct {
	subject string
	value   float64
}

// studentData holds one student to be inserted with their marks.
type studentData struct {
	id    string
	name  string
	marks []markData
}

// Builder accumulates students and marks and inserts them in order.
type Builder struct {
	t        *testing.T
	students []studentData
}

// NewBuilder creates a registry builder for a test.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{t: t}
}

// WithStudent adds a student. Marks attach to the most recently added
// student via WithMark.
func (b *Builder) WithStudent(id, name string) *Builder {
	b.students = append(b.students, studentData{id: id, name: name})
	return b
}

// WithMark records a mark for the most recently added student.
func (b *Builder) WithMark(subject string, value float64) *Builder {
	require.NotEmpty(b.t, b.students, "WithMark requires a prior WithStudent")
	last := &b.students[len(b.students)-1]
	last.marks = append(last.marks, markData{subject: subject, value: value})
	return b
}

// Build creates the registry and inserts all accumulated data,
// failing the test on any registry error.
func (b *Builder) Build() *registry.Registry {
	b.t.Helper()
	reg := registry.New()
	for _, sd := range b.students {
		_, err := reg.Add(sd.id, sd.name)
		require.NoError(b.t, err)
		for _, md := range sd.marks {
			require.NoError(b.t, reg.SetMark(sd.id, md.subject, md.value))
		}
	}
	return reg
}
