package registry

import "errors"

// Registry errors. Callers match with errors.Is.
var (
	ErrEmptyID        = errors.New("student id cannot be empty")
	ErrDuplicateID    = errors.New("student id already exists")
	ErrNotFound       = errors.New("student not found")
	ErrEmptySubject   = errors.New("subject cannot be empty")
	ErrMarkOutOfRange = errors.New("mark out of range")
)
