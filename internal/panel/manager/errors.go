package manager

import (
	"errors"
	"strings"
)

var (
	ErrInvalidState = errors.New("manager: operation not allowed in current state")
	ErrNotFound     = errors.New("manager: record not in collection")
	ErrUnknownField = errors.New("manager: unknown field")
)

type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists the draft fields that stop a save. No request is
// made while it is returned.
type ValidationError struct {
	Label  string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + " " + f.Message
	}
	return "invalid " + e.Label + ": " + strings.Join(parts, ", ")
}
