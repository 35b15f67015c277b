package tools

import (
	"errors"
	"fmt"
)

// ErrNilLocations is returned when a NodeOverrides is constructed from a nil
// location slice. An empty override set is valid; a missing one is a caller
// bug.
var ErrNilLocations = errors.New("override locations must not be nil")

// UnknownTypeError reports a stored tool type ID that no longer resolves to
// a registered type. This typically means the type was removed or renamed
// after the override referencing it was saved.
type UnknownTypeError struct {
	ID string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown tool type %q", e.ID)
}
