// Package registry holds the in-memory student registry: student
// records, per-subject marks, and the letter-grade table.
package registry

import (
	"fmt"
	"strings"

	"github.com/Ajay0548/SGC-PRO/internal/log"
	"github.com/Ajay0548/SGC-PRO/internal/pubsub"
)

// StudentEvent is published on the registry broker whenever a student
// is added or a mark changes.
type StudentEvent struct {
	StudentID string
	Subject   string // empty for add events
}

// Registry is an ordered collection of students keyed by id.
// Insertion order is preserved for iteration; it drives report-all
// order and export row order. Not safe for concurrent use; all
// mutation happens on the UI loop.
type Registry struct {
	order    []string
	students map[string]*Student
	broker   *pubsub.Broker[StudentEvent]
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		students: make(map[string]*Student),
		broker:   pubsub.NewBroker[StudentEvent](),
	}
}

// Broker exposes the registry's event broker for subscribers.
func (r *Registry) Broker() *pubsub.Broker[StudentEvent] {
	return r.broker
}

// Add creates and inserts a new student. The id must be non-blank
// after trimming and unique; a blank name defaults to "Unknown".
// A failed Add never mutates existing records.
func (r *Registry) Add(id, name string) (*Student, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyID
	}
	if _, exists := r.students[id]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}

	s := NewStudent(id, name)
	r.students[id] = s
	r.order = append(r.order, id)

	log.Debug(log.CatRegistry, "student added", "id", id, "name", s.Name())
	r.broker.Publish(pubsub.CreatedEvent, StudentEvent{StudentID: id})
	return s, nil
}

// Get returns the student with the given id.
func (r *Registry) Get(id string) (*Student, error) {
	s, ok := r.students[strings.TrimSpace(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return s, nil
}

// SetMark records a mark for a student, publishing an update event on
// success.
func (r *Registry) SetMark(id, subject string, mark float64) error {
	s, err := r.Get(id)
	if err != nil {
		return err
	}
	if err := s.SetMark(subject, mark); err != nil {
		return err
	}

	log.Debug(log.CatRegistry, "mark set", "id", id, "subject", subject, "mark", mark)
	r.broker.Publish(pubsub.UpdatedEvent, StudentEvent{StudentID: id, Subject: subject})
	return nil
}

// Students returns all students in insertion order.
func (r *Registry) Students() []*Student {
	out := make([]*Student, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.students[id])
	}
	return out
}

// Len returns the number of registered students.
func (r *Registry) Len() int { return len(r.order) }

// AllSubjects returns the union of subject names across all students,
// each subject once, ordered by first occurrence in registry iteration
// order. This ordering is a compatibility contract for the exporters.
func (r *Registry) AllSubjects() []string {
	var subjects []string
	seen := make(map[string]struct{})
	for _, id := range r.order {
		for _, subj := range r.students[id].Subjects() {
			if _, ok := seen[subj]; ok {
				continue
			}
			seen[subj] = struct{}{}
			subjects = append(subjects, subj)
		}
	}
	return subjects
}
