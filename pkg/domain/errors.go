package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyTrace is returned when an operation needs at least one interaction.
var ErrEmptyTrace = errors.New("trace has no interactions")

// ErrResultNotFound is returned when a stored result ID cannot be found.
var ErrResultNotFound = errors.New("result not found")

// ResolutionError reports a failure while resolving an interaction spec.
// It is fatal to the enclosing run: no further steps execute.
type ResolutionError struct {
	// Index is the position of the failing spec in the run sequence.
	Index int
	// Stage is the side being resolved ("inputs" or "outputs").
	Stage string
	Err   error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolving spec at position %d (%s): %v", e.Index, e.Stage, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// ExtractionError reports a failure to resolve an addressing path against a
// trace. Checks catch it and convert it into an Error-status result.
type ExtractionError struct {
	Path   string
	Reason string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %q: %s", e.Path, e.Reason)
}

// GenerationError reports a failure of the generation collaborator: either
// the transport call itself, or a response that does not conform to the
// required schema. It is a machinery failure, never a verdict on the system
// under test.
type GenerationError struct {
	// Op is the failing phase: "transport" or "schema".
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation %s failure: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
