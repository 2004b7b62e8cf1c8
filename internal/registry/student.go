package registry

import (
	"fmt"
	"strings"
)

// Student holds one student's identifier, display name, and marks.
// Marks preserve subject insertion order; the first time a subject is
// seen it is appended, later writes overwrite in place. Order matters
// downstream: the report formatter and the exporters both iterate
// subjects in this order.
type Student struct {
	id       string
	name     string
	subjects []string
	marks    map[string]float64
}

// NewStudent creates a student with no marks. The caller (the Registry)
// is responsible for id validation; a blank name falls back to "Unknown".
func NewStudent(id, name string) *Student {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Unknown"
	}
	return &Student{
		id:    id,
		name:  name,
		marks: make(map[string]float64),
	}
}

// ID returns the student's immutable identifier.
func (s *Student) ID() string { return s.id }

// Name returns the student's display name.
func (s *Student) Name() string { return s.name }

// SetMark records a mark for a subject, overwriting any previous value.
// The subject must be non-blank after trimming and the mark must be
// within [0, 100] inclusive.
func (s *Student) SetMark(subject string, mark float64) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return ErrEmptySubject
	}
	if mark < 0 || mark > 100 {
		return fmt.Errorf("%w: %v is outside [0, 100]", ErrMarkOutOfRange, mark)
	}
	if _, seen := s.marks[subject]; !seen {
		s.subjects = append(s.subjects, subject)
	}
	s.marks[subject] = mark
	return nil
}

// Subjects returns the subject names in insertion order.
func (s *Student) Subjects() []string {
	out := make([]string, len(s.subjects))
	copy(out, s.subjects)
	return out
}

// Mark returns the mark for a subject and whether one is recorded.
func (s *Student) Mark(subject string) (float64, bool) {
	m, ok := s.marks[subject]
	return m, ok
}

// MarkCount returns the number of recorded marks.
func (s *Student) MarkCount() int { return len(s.marks) }

// Total returns the sum of all marks, 0 when none are recorded.
func (s *Student) Total() float64 {
	var t float64
	for _, m := range s.marks {
		t += m
	}
	return t
}

// Average returns the arithmetic mean of all marks, defined as 0 when
// no marks are recorded.
func (s *Student) Average() float64 {
	if len(s.marks) == 0 {
		return 0
	}
	return s.Total() / float64(len(s.marks))
}

// Grade returns the letter grade for the student's current average.
func (s *Student) Grade() string {
	return ToLetterGrade(s.Average())
}
