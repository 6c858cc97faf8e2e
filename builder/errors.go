package builder

import (
	"errors"
	"fmt"
)

var (
	// ErrUnbalancedGroup is matched by every *UnbalancedGroupError.
	ErrUnbalancedGroup = errors.New("regextoolbox: group ended but never started")
	// ErrUnterminatedGroup is matched by every *UnterminatedGroupError.
	ErrUnterminatedGroup = errors.New("regextoolbox: group started but never ended")
)

// UnbalancedGroupError is recorded when EndGroup is called with no open
// group. The pattern is left exactly as it was before the call.
type UnbalancedGroupError struct {
	// Pattern is the pattern text at the time of the call.
	Pattern string
}

func (e *UnbalancedGroupError) Error() string {
	return "regextoolbox: cannot call EndGroup until a group has been started with StartGroup"
}

// Unwrap returns ErrUnbalancedGroup.
func (e *UnbalancedGroupError) Unwrap() error { return ErrUnbalancedGroup }

// UnterminatedGroupError is returned by Build and BuildPattern while groups
// are still open. The builder keeps its state, so the missing EndGroup calls
// can be made and the build retried.
type UnterminatedGroupError struct {
	// Pattern is the pattern text built so far.
	Pattern string
	// Count is the number of groups still open.
	Count int
}

func (e *UnterminatedGroupError) Error() string {
	if e.Count == 1 {
		return "regextoolbox: a group has been started but not ended"
	}

	return fmt.Sprintf("regextoolbox: %d groups have been started but not ended", e.Count)
}

// Unwrap returns ErrUnterminatedGroup.
func (e *UnterminatedGroupError) Unwrap() error { return ErrUnterminatedGroup }
