package testutil

import (
	"testing"

	"github.com/Ajay0548/SGC-PRO/internal/registry"
)

// TwoStudentClass returns the canonical two-student fixture: Ana with
// Math/Sci marks averaging 90, Leo with a single failing Math mark.
func TwoStudentClass(t *testing.T) *registry.Registry {
	t.Helper()
	return NewBuilder(t).
		WithStudent("s1", "Ana").
		WithMark("Math", 95).
		WithMark("Sci", 85).
		WithStudent("s2", "Leo").
		WithMark("Math", 40).
		Build()
}

// EmptyRegistry returns a registry with no students.
func EmptyRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	return registry.New()
}
