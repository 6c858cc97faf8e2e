package recipe

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat is returned for a recipe format other than JSON or
	// YAML.
	ErrUnknownFormat = errors.New("recipe: unknown format")
	// ErrUnknownOp is matched by a *StepError naming an unsupported op.
	ErrUnknownOp = errors.New("unknown op")
	// ErrUnknownOption is returned for an unsupported regex option name.
	ErrUnknownOption = errors.New("recipe: unknown option")
	// ErrMissingField is matched by a *StepError for a step lacking a field
	// its op requires.
	ErrMissingField = errors.New("missing field")
	// ErrUnexpectedField is matched by a *StepError for a step carrying a
	// field its op does not take.
	ErrUnexpectedField = errors.New("unexpected field")
	// ErrBadQuantifier is matched by a *StepError for an invalid quantifier.
	ErrBadQuantifier = errors.New("bad quantifier")
)

// StepError reports the step a recipe failed at.
type StepError struct {
	// Path locates the step, e.g. "steps[2].steps[0]".
	Path string
	// Op is the step's op, possibly empty.
	Op  string
	Err error
}

func (e *StepError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("recipe: %s: %v", e.Path, e.Err)
	}

	return fmt.Sprintf("recipe: %s (%s): %v", e.Path, e.Op, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
