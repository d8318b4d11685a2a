package core

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingPrecondition indicates that a subsystem was started before
	// one of its hard dependencies was established.
	ErrMissingPrecondition = errors.New("missing precondition")
	ErrNotFound            = errors.New("not found")
)

// DuplicateIDError is returned when a create or register call reuses an id
// that is already taken within its namespace. Overwriting silently would
// corrupt registry identity, so this is always fatal to the calling
// operation.
type DuplicateIDError struct {
	Kind string
	ID   string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("%s id %q is already registered", e.Kind, e.ID)
}

// IsDuplicateID reports whether err is a DuplicateIDError.
func IsDuplicateID(err error) bool {
	var dup *DuplicateIDError
	return errors.As(err, &dup)
}
