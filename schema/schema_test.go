package schema

import (
	"errors"
	"testing"

	"github.com/logsurgeon/logsurgeon-go/ast"
	"github.com/logsurgeon/logsurgeon-go/dfa"
)

func TestNewEmptySchema(t *testing.T) {
	s, err := New(nil, nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.DFA() == nil {
		t.Fatal("expected a non-nil DFA even for an empty schema")
	}
	if _, ok := s.DFA().Simulate(s.DFA().Start, []byte("anything")); ok {
		t.Error("empty schema should never match")
	}
}

func TestNewCompilesInPriorityOrder(t *testing.T) {
	// The timestamp pattern "hello" has priority 0; the variable "word"
	// has priority 1. Both fully match "hello", so the timestamp must win.
	s, err := New(
		[]byte(" "),
		[]PatternSource{{ID: 0, Pattern: "hello"}},
		[]PatternSource{{ID: 0, Name: "word", Pattern: "[a-z]+"}},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m, ok := s.DFA().Simulate(s.DFA().Start, []byte("hello"))
	if !ok {
		t.Fatal("expected a match")
	}
	isTS, _, _ := s.TagInfo(m.Tag)
	if !isTS {
		t.Error("expected the timestamp pattern to win priority over the variable")
	}
}

func TestNewDelimiterAlwaysIncludesNewline(t *testing.T) {
	s, err := New([]byte(","), nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !s.Delimiters.Contains('\n') {
		t.Error("expected newline to always be a delimiter")
	}
	if !s.Delimiters.Contains(',') {
		t.Error("expected declared delimiter to be retained")
	}
}

func TestNewBadTimestampPattern(t *testing.T) {
	_, err := New(nil, []PatternSource{{ID: 0, Pattern: "(unterminated"}}, nil)
	if err == nil {
		t.Fatal("expected an error for an unparsable timestamp pattern")
	}
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CompileError, got %T", err)
	}
	if ce.Field != "timestamp" {
		t.Errorf("got Field=%q, want timestamp", ce.Field)
	}
	if !errors.Is(err, ast.ErrBadPattern) {
		t.Error("expected error chain to include ast.ErrBadPattern")
	}
}

func TestNewBadVariablePattern(t *testing.T) {
	_, err := New(nil, nil, []PatternSource{{ID: 0, Name: "x", Pattern: "[a-z"}})
	if err == nil {
		t.Fatal("expected an error for an unparsable variable pattern")
	}
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CompileError, got %T", err)
	}
	if ce.Field != "variable" || ce.Name != "x" {
		t.Errorf("got Field=%q Name=%q, want variable/x", ce.Field, ce.Name)
	}
}

func TestOverlapsDelimitersWarnsButAllowsByDefault(t *testing.T) {
	// "a b" as a literal pattern contains a space, which is also a
	// declared delimiter: this variable can never fully match a
	// delimiter-bounded segment, but compilation should still succeed.
	s, err := New([]byte(" "), nil, []PatternSource{{ID: 0, Name: "phrase", Pattern: "a b"}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s == nil {
		t.Fatal("expected non-nil schema")
	}
}

func TestOverlapsDelimitersRejectedWhenRequested(t *testing.T) {
	_, err := New([]byte(" "), nil,
		[]PatternSource{{ID: 0, Name: "phrase", Pattern: "a b"}},
		WithUnmatchablePatternRejection(),
	)
	if !errors.Is(err, ErrUnmatchableVariable) {
		t.Fatalf("expected ErrUnmatchableVariable, got %v", err)
	}
}

func TestTagInfo(t *testing.T) {
	s, err := New(
		[]byte(" "),
		[]PatternSource{{ID: 7, Pattern: "ts"}},
		[]PatternSource{{ID: 3, Name: "var", Pattern: "vv"}},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	m, ok := s.DFA().Simulate(s.DFA().Start, []byte("ts"))
	if !ok {
		t.Fatal("expected timestamp pattern to match")
	}
	isTS, id, name := s.TagInfo(m.Tag)
	if !isTS || id != 7 || name != "" {
		t.Errorf("got isTimestamp=%v id=%d name=%q, want true/7/\"\"", isTS, id, name)
	}

	m, ok = s.DFA().Simulate(s.DFA().Start, []byte("vv"))
	if !ok {
		t.Fatal("expected variable pattern to match")
	}
	isTS, id, name = s.TagInfo(m.Tag)
	if isTS || id != 3 || name != "var" {
		t.Errorf("got isTimestamp=%v id=%d name=%q, want false/3/var", isTS, id, name)
	}
}

func TestWithDFAConfigPropagates(t *testing.T) {
	cfg := dfa.Config{MinimizeDFA: false, DeterminizationLimit: 1}
	_, err := New(nil, nil, []PatternSource{{ID: 0, Name: "v", Pattern: "[a-z]+"}}, WithDFAConfig(cfg))
	if err == nil {
		t.Fatal("expected ErrTooComplex with a DeterminizationLimit of 1")
	}
}
