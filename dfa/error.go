package dfa

import (
	"errors"
	"fmt"
)

// ErrTooComplex indicates subset construction exceeded a configured
// limit (Config.MaxStates or Config.DeterminizationLimit).
var ErrTooComplex = errors.New("dfa: pattern set too complex")

// BuildError wraps a subset-construction failure with the limit that was
// exceeded.
type BuildError struct {
	Limit string
	Value int
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("dfa: %v (%s=%d)", e.Err, e.Limit, e.Value)
}

func (e *BuildError) Unwrap() error { return e.Err }
