package contact

import (
	"errors"
	"fmt"
)

var ErrInvalidTransition = errors.New("invalid status transition")

type Status string

const (
	StatusNew     Status = "new"
	StatusRead    Status = "read"
	StatusReplied Status = "replied"
)

// next lists the single forward step allowed from each status.
// Nothing leads back to StatusNew.
var next = map[Status]Status{
	StatusNew:  StatusRead,
	StatusRead: StatusReplied,
}

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusRead, StatusReplied:
		return true
	}
	return false
}

// Next returns the status that follows s, if any.
func (s Status) Next() (Status, bool) {
	n, ok := next[s]
	return n, ok
}

// Transition checks that moving from one status to another is a legal step.
func Transition(from, to Status) error {
	if !to.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, to)
	}
	if n, ok := from.Next(); !ok || n != to {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}
