package quizgen

import (
	"errors"
	"fmt"
)

// ErrNoJSON indicates no parseable JSON object was found in a model
// response after all recovery attempts.
var ErrNoJSON = errors.New("no JSON object found in model response")

// StageError wraps a failure with the pipeline stage and unit it
// occurred in.
type StageError struct {
	Stage string // "generator", "critic", "validate", "save"
	Unit  Unit
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed for %s: %v", e.Stage, e.Unit.Key(), e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
