package ast

import (
	"errors"
	"fmt"
)

// Sentinel errors for the dialect parser's error taxonomy. Wrap these
// with errors.Is/errors.As via *ParseError.
var (
	// ErrBadPattern covers every structural defect in a pattern: unbalanced
	// brackets or parens, empty alternation branches, {N,M} with M<N, and
	// unknown escapes.
	ErrBadPattern = errors.New("bad pattern")

	// ErrNonASCII indicates a literal byte or character-class byte outside
	// the ASCII range [0,127].
	ErrNonASCII = errors.New("non-ASCII byte in pattern")
)

// ParseError reports a parse failure with the offending pattern and the
// byte offset the parser had reached when it gave up.
type ParseError struct {
	Pattern string
	Pos     int
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ast: %v at offset %d in pattern %q", e.Err, e.Pos, e.Pattern)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (p *parser) errorf(err error, format string, args ...any) error {
	return &ParseError{
		Pattern: p.src,
		Pos:     p.pos,
		Err:     fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...)),
	}
}
