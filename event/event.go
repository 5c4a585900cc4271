// Package event groups a lexer's token stream into events with a thin
// state machine over the grammar `event := timestamp? msg_token*
// end_of_line?`.
package event

import (
	"io"

	"github.com/logsurgeon/logsurgeon-go/lexer"
	"github.com/logsurgeon/logsurgeon-go/token"
)

// Event is one grouped log record: an optional leading timestamp and
// the body tokens (Variable/StaticText/StaticTextWithNewline) up to and
// including the line that closed it.
type Event struct {
	Timestamp *token.Token
	Body      []token.Token
}

// Reader pulls tokens from a *lexer.Lexer and groups them into Events.
// A new event starts on a Timestamp token, or on the first
// non-timestamp token at stream start or after the previous event
// closed; it closes on a StaticTextWithNewline token, on the next
// Timestamp token, or at end-of-stream.
type Reader struct {
	lex     *lexer.Lexer
	pending *token.Token // a token already read from lex but not yet placed into an Event
	done    bool
}

// NewReader wraps lex.
func NewReader(lex *lexer.Lexer) *Reader {
	return &Reader{lex: lex}
}

// NextEvent returns the next Event, or io.EOF once the underlying lexer
// is exhausted, or the lexer's own error (e.g. *lexer.IoError).
func (r *Reader) NextEvent() (Event, error) {
	if r.done {
		return Event{}, io.EOF
	}

	var ev Event
	tok, err := r.next()
	if err == io.EOF {
		r.done = true
		return Event{}, io.EOF
	}
	if err != nil {
		return Event{}, err
	}

	if tok.Kind == token.KindTimestamp {
		t := tok
		ev.Timestamp = &t
	} else {
		ev.Body = append(ev.Body, tok)
		if tok.Kind == token.KindStaticTextWithNewline {
			return ev, nil
		}
	}

	for {
		tok, err := r.next()
		if err == io.EOF {
			r.done = true
			return ev, nil
		}
		if err != nil {
			return Event{}, err
		}
		if tok.Kind == token.KindTimestamp {
			r.pending = &tok
			return ev, nil
		}
		ev.Body = append(ev.Body, tok)
		if tok.Kind == token.KindStaticTextWithNewline {
			return ev, nil
		}
	}
}

func (r *Reader) next() (token.Token, error) {
	if r.pending != nil {
		t := *r.pending
		r.pending = nil
		return t, nil
	}
	return r.lex.NextToken()
}
