package lexer

import "fmt"

// IoError wraps a non-EOF error surfaced by the underlying
// ioreader.ByteReader. It is surfaced at the NextToken call that
// observed it and leaves the lexer in a terminal error state.
type IoError struct {
	Err error
}

func (e *IoError) Error() string { return fmt.Sprintf("lexer: i/o error: %v", e.Err) }

func (e *IoError) Unwrap() error { return e.Err }
