// Package logsurgeon is a library for high-throughput parsing of
// unstructured log streams into typed tokens and log-event records,
// driven by a user-supplied schema of delimiters, timestamp patterns,
// and variable patterns.
//
// Basic usage:
//
//	s, err := logsurgeon.NewSchema([]byte(" \t\r\n:,"),
//	    []schema.PatternSource{{ID: 0, Pattern: `\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`}},
//	    []schema.PatternSource{{ID: 0, Name: "loglevel", Pattern: `(INFO|DEBUG|WARN|ERROR)`}},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r, err := logsurgeon.NewFileReader(s, "app.log")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//	for {
//	    ev, err := r.NextEvent()
//	    if err == io.EOF {
//	        break
//	    }
//	    ...
//	}
//
// The engine underneath — regex AST, Thompson NFA construction, unified
// DFA, delimiter-aware lexer, event grouping — lives in the ast, nfa,
// dfa, lexer, and event packages; this package wires them together for
// the common case of "I have a schema and a byte source, give me
// events."
package logsurgeon

import (
	"github.com/logsurgeon/logsurgeon-go/event"
	"github.com/logsurgeon/logsurgeon-go/ioreader"
	"github.com/logsurgeon/logsurgeon-go/lexer"
	"github.com/logsurgeon/logsurgeon-go/schema"
)

// NewSchema compiles delims/timestamps/variables into a *schema.Schema,
// forwarding to schema.New. Re-exported here so the common path needs
// only the root package import.
func NewSchema(delims []byte, timestamps, variables []schema.PatternSource, opts ...schema.Option) (*schema.Schema, error) {
	return schema.New(delims, timestamps, variables, opts...)
}

// MustNewSchema is NewSchema but panics on error, for package-level
// schema variables in tests and examples.
func MustNewSchema(delims []byte, timestamps, variables []schema.PatternSource, opts ...schema.Option) *schema.Schema {
	s, err := NewSchema(delims, timestamps, variables, opts...)
	if err != nil {
		panic("logsurgeon: NewSchema: " + err.Error())
	}
	return s
}

// EventReader pairs a lexer.Lexer with an event.Reader over one byte
// source, plus (when the source owns a resource) a Close method.
type EventReader struct {
	*event.Reader
	closer func() error
}

// Close releases the underlying byte source, if it owns one (e.g. an
// open file). Sources that don't need closing make this a no-op.
func (r *EventReader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer()
}

// NewReader builds an EventReader over an arbitrary ioreader.ByteReader
// using s's compiled DFA.
func NewReader(s *schema.Schema, src ioreader.ByteReader) *EventReader {
	return &EventReader{Reader: event.NewReader(lexer.New(s, src))}
}

// NewFileReader opens path and builds an EventReader over it. The
// caller must call Close when done.
func NewFileReader(s *schema.Schema, path string) (*EventReader, error) {
	f, err := ioreader.NewFile(path)
	if err != nil {
		return nil, err
	}
	return &EventReader{Reader: event.NewReader(lexer.New(s, f)), closer: f.Close}, nil
}

// NewBytesReader builds an EventReader over an in-memory byte slice.
func NewBytesReader(s *schema.Schema, data []byte) *EventReader {
	return NewReader(s, ioreader.NewBytes(data))
}
