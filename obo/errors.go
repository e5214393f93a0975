package obo

import (
	"errors"
	"fmt"
)

// Common model errors.
var (
	// ErrDuplicateTerm is returned when a term collection already holds a
	// term with the same (prefix, identifier) pair.
	ErrDuplicateTerm = errors.New("duplicate term")

	// ErrTermNotFound is returned by second-pass edge operations when the
	// addressed term is not in the collection.
	ErrTermNotFound = errors.New("term not found")
)

// UnknownRelationError reports a relation hint that could not be resolved
// to any known typedef and is not itself a well-formed reference.
type UnknownRelationError struct {
	Hint any
	Err  error
}

func (e *UnknownRelationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unknown relation %v: %v", e.Hint, e.Err)
	}
	return fmt.Sprintf("unknown relation %v", e.Hint)
}

func (e *UnknownRelationError) Unwrap() error {
	return e.Err
}
