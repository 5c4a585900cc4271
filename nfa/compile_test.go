package nfa

import (
	"testing"

	"github.com/logsurgeon/logsurgeon-go/ast"
)

// runNFA performs a tiny backtracking simulation directly over the
// ε-NFA states, independent of package dfa, so compile_test.go exercises
// Thompson construction in isolation.
func runNFA(n *NFA, input []byte) bool {
	visited := map[StateID]bool{}
	var step func(id StateID, pos int) bool
	step = func(id StateID, pos int) bool {
		key := id
		if visited[key] {
			return false
		}
		visited[key] = true
		defer delete(visited, key)

		st := n.State(id)
		switch st.Kind {
		case KindMatch:
			return pos == len(input)
		case KindEpsilon:
			return step(st.Next, pos)
		case KindSplit:
			return step(st.Left, pos) || step(st.Right, pos)
		case KindByte:
			if pos < len(input) && st.Set.Contains(input[pos]) {
				visited = map[StateID]bool{}
				return step(st.Next, pos+1)
			}
			return false
		}
		return false
	}
	return step(n.Start, 0)
}

func TestCompileLiteral(t *testing.T) {
	node, err := ast.Parse("abc")
	if err != nil {
		t.Fatalf("ast.Parse: %v", err)
	}
	n, err := Compile(node, Tag{Kind: TagVariable, ID: 0})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !runNFA(n, []byte("abc")) {
		t.Error("expected match on \"abc\"")
	}
	if runNFA(n, []byte("abd")) {
		t.Error("expected no match on \"abd\"")
	}
}

func TestCompileAlternation(t *testing.T) {
	node, err := ast.Parse("foo|bar|baz")
	if err != nil {
		t.Fatalf("ast.Parse: %v", err)
	}
	n, err := Compile(node, Tag{Kind: TagVariable, ID: 0})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	for _, s := range []string{"foo", "bar", "baz"} {
		if !runNFA(n, []byte(s)) {
			t.Errorf("expected match on %q", s)
		}
	}
	if runNFA(n, []byte("qux")) {
		t.Error("expected no match on \"qux\"")
	}
}

func TestCompileRepeat(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"a{2,4}", "a", false},
		{"a{2,4}", "aa", true},
		{"a{2,4}", "aaaa", true},
		{"a{2,4}", "aaaaa", false},
		{"a*", "", true},
		{"a*", "aaaa", true},
		{"a+", "", false},
		{"a+", "a", true},
		{"a?", "", true},
		{"a?", "a", true},
		{"a?", "aa", false},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			node, err := ast.Parse(tt.pattern)
			if err != nil {
				t.Fatalf("ast.Parse: %v", err)
			}
			n, err := Compile(node, Tag{Kind: TagVariable, ID: 0})
			if err != nil {
				t.Fatalf("Compile: %v", err)
			}
			if got := runNFA(n, []byte(tt.input)); got != tt.want {
				t.Errorf("match(%q, %q) = %v, want %v", tt.pattern, tt.input, got, tt.want)
			}
		})
	}
}

func TestCompileCharClass(t *testing.T) {
	node, err := ast.Parse(`\d+`)
	if err != nil {
		t.Fatalf("ast.Parse: %v", err)
	}
	n, err := Compile(node, Tag{Kind: TagVariable, ID: 0})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !runNFA(n, []byte("12345")) {
		t.Error("expected match on \"12345\"")
	}
	if runNFA(n, []byte("12a45")) {
		t.Error("expected no match on \"12a45\"")
	}
}

func TestBuilderValidation(t *testing.T) {
	b := NewBuilder()
	byteState := b.AddByte(ByteSet{}, InvalidState)
	if _, err := b.Build(byteState, byteState, Tag{}); err == nil {
		t.Error("expected error building from a non-Match accept state")
	}
}
