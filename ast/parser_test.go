package ast

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{"literal", "abc", false},
		{"alternation", "foo|bar|baz", false},
		{"char class", "[a-z0-9]", false},
		{"negated class", "[^a-z]", false},
		{"star", "a*", false},
		{"plus", "a+", false},
		{"optional", "a?", false},
		{"exact repeat", "a{3}", false},
		{"range repeat", "a{2,5}", false},
		{"group", "(ab)+", false},
		{"any byte", "a.b", false},
		{"digit class", `\d+`, false},
		{"word class", `\w+`, false},
		{"space class", `\s*`, false},
		{"escaped meta", `a\.b`, false},
		{"hex escape", `\x41`, false},
		{"nested group alt", "(foo|bar)baz", false},

		{"unbalanced paren", "(ab", true},
		{"unbalanced bracket", "[a-z", true},
		{"empty alt branch", "a||b", true},
		{"bad repeat range", "a{5,2}", true},
		{"unknown escape", `\q`, true},
		{"non-ascii literal", "caf\xc3\xa9", true},
		{"bare metachar", "*", true},
		{"empty pattern", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Parse(tt.pattern)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.pattern, err, tt.wantErr)
			}
			if tt.wantErr {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Errorf("Parse(%q) error is not *ParseError: %v", tt.pattern, err)
				}
				return
			}
			if n == nil {
				t.Errorf("Parse(%q) returned nil node", tt.pattern)
			}
		})
	}
}

func TestParseRepeatBounds(t *testing.T) {
	n, err := Parse("a{2,5}")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.Kind != KindRepeat || n.Min != 2 || n.Max != 5 {
		t.Fatalf("got Kind=%v Min=%d Max=%d, want Repeat{2,5}", n.Kind, n.Min, n.Max)
	}
}

func TestParseUnboundedRepeat(t *testing.T) {
	n, err := Parse("a*")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.Kind != KindRepeat || n.Min != 0 || n.Max != Unbounded {
		t.Fatalf("got Kind=%v Min=%d Max=%d, want Repeat{0,Unbounded}", n.Kind, n.Min, n.Max)
	}
}

func TestParseCharClassNegation(t *testing.T) {
	n, err := Parse("[^abc]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.Kind != KindCharClass || !n.Negated {
		t.Fatalf("got Kind=%v Negated=%v, want negated CharClass", n.Kind, n.Negated)
	}
}

func TestErrorSentinels(t *testing.T) {
	_, err := Parse("(unterminated")
	if !errors.Is(err, ErrBadPattern) {
		t.Errorf("expected ErrBadPattern, got %v", err)
	}

	_, err = Parse("caf\xc3\xa9")
	if !errors.Is(err, ErrNonASCII) {
		t.Errorf("expected ErrNonASCII, got %v", err)
	}

	_, err = Parse(`\xFF`)
	if !errors.Is(err, ErrNonASCII) {
		t.Errorf("expected ErrNonASCII for \\xFF, got %v", err)
	}

	_, err = Parse(`\x7F`)
	if err != nil {
		t.Errorf("\\x7F is the last valid ASCII byte, got error: %v", err)
	}
}
