package nfa

import (
	"errors"
	"fmt"
)

// ErrCompilation is a sentinel wrapped by CompileError, mirroring
// coregx/nfa's error.go taxonomy (sentinel + context-carrying wrapper).
var ErrCompilation = errors.New("NFA compilation failed")

// CompileError wraps a Thompson-construction failure with the tag of the
// pattern that failed to compile.
type CompileError struct {
	Tag Tag
	Err error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("nfa: compiling %s pattern %q (id=%d): %v", e.Tag.Kind, e.Tag.Name, e.Tag.ID, e.Err)
}

// Unwrap exposes both ErrCompilation and the underlying cause to
// errors.Is/errors.As.
func (e *CompileError) Unwrap() []error { return []error{ErrCompilation, e.Err} }
