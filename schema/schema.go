// Package schema builds the immutable, compiled Schema value: a
// delimiter set plus one unified DFA built from every timestamp and
// variable pattern the caller declares, in priority order. schema.New
// is schema-file-format agnostic — decoding a document into
// PatternSource values is schemaload's job, layered on top.
package schema

import (
	"github.com/logsurgeon/logsurgeon-go/ast"
	"github.com/logsurgeon/logsurgeon-go/dfa"
	"github.com/logsurgeon/logsurgeon-go/internal/diag"
	"github.com/logsurgeon/logsurgeon-go/internal/simd"
	"github.com/logsurgeon/logsurgeon-go/nfa"
)

// PatternSource is one caller-declared pattern awaiting compilation.
// Name is unused (empty) for timestamp sources.
type PatternSource struct {
	ID      int
	Name    string
	Pattern string
}

// Schema is the immutable, compiled value a lexer is built from.
// Multiple lexers may share one Schema by reference; it holds no
// per-stream state.
type Schema struct {
	Delimiters DelimSet
	Timestamps []PatternSource
	Variables  []PatternSource
	dfa        *dfa.DFA
}

// DFA exposes the unified automaton for package lexer; schema is the
// only package that constructs one.
func (s *Schema) DFA() *dfa.DFA { return s.dfa }

// TagInfo resolves a winning nfa.Tag back to the schema-level identity
// the lexer needs to build a Token: whether it is a timestamp, its
// declared ID, and (for variables) its name.
func (s *Schema) TagInfo(tag nfa.Tag) (isTimestamp bool, id int, name string) {
	if tag.Kind == nfa.TagTimestamp {
		return true, tag.ID, ""
	}
	return false, tag.ID, tag.Name
}

type options struct {
	verbose               bool
	dfaConfig             dfa.Config
	rejectUnmatchableVars bool
}

// Option configures schema.New. With no options, New uses silent
// diagnostics, dfa.DefaultConfig() (minimization on), and no rejection
// of delimiter-overlapping variable patterns.
type Option func(*options)

// WithVerboseDiagnostics routes schema-compile-time diagnostics (such
// as the delimiter-overlap warning below) through internal/diag at
// Info/Warn level instead of staying silent.
func WithVerboseDiagnostics() Option {
	return func(o *options) { o.verbose = true }
}

// WithDFAConfig overrides the subset-construction/minimization limits
// dfa.Build runs under. Default: dfa.DefaultConfig().
func WithDFAConfig(cfg dfa.Config) Option {
	return func(o *options) { o.dfaConfig = cfg }
}

// WithUnmatchablePatternRejection rejects, at compile time, any variable
// pattern with a byte-consuming step that accepts a declared delimiter
// byte (see overlapsDelimiters). Matches that need such a byte can never
// happen, since segments end at delimiters; branches of the pattern that
// avoid delimiter bytes still match, and such patterns are rejected too.
// Off by default, which only warns.
func WithUnmatchablePatternRejection() Option {
	return func(o *options) { o.rejectUnmatchableVars = true }
}

// New compiles delims, timestamps, and variables into a Schema.
// Timestamps take priority 0..len(timestamps)-1; variables continue
// from there, both in declaration order. An empty schema (no
// timestamps, no variables) is valid: every segment classifies as
// StaticText.
func New(delims []byte, timestamps, variables []PatternSource, opts ...Option) (*Schema, error) {
	o := options{dfaConfig: dfa.DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	diag.SetVerbose(o.verbose)
	diag.ReportCapabilities(simd.DetectCapabilities())

	delimSet := newDelimSet(delims)

	var nfas []*nfa.NFA
	priority := 0
	for _, ts := range timestamps {
		n, err := compileOne(ts, nfa.TagTimestamp, priority)
		if err != nil {
			return nil, &CompileError{Field: "timestamp", ID: ts.ID, Name: ts.Name, Pattern: ts.Pattern, Err: err}
		}
		nfas = append(nfas, n)
		priority++
	}
	for _, v := range variables {
		n, err := compileOne(v, nfa.TagVariable, priority)
		if err != nil {
			return nil, &CompileError{Field: "variable", ID: v.ID, Name: v.Name, Pattern: v.Pattern, Err: err}
		}
		if overlapsDelimiters(n, delimSet) {
			diag.Warn("variable %q (pattern %q) can consume a declared delimiter byte; matches that need it will never occur within a segment", v.Name, v.Pattern)
			if o.rejectUnmatchableVars {
				return nil, &CompileError{Field: "variable", ID: v.ID, Name: v.Name, Pattern: v.Pattern, Err: ErrUnmatchableVariable}
			}
		}
		nfas = append(nfas, n)
		priority++
	}

	d, err := dfa.Build(nfas, o.dfaConfig)
	if err != nil {
		return nil, err
	}

	return &Schema{Delimiters: delimSet, Timestamps: timestamps, Variables: variables, dfa: d}, nil
}

func compileOne(src PatternSource, kind nfa.TagKind, priority int) (*nfa.NFA, error) {
	node, err := ast.Parse(src.Pattern)
	if err != nil {
		return nil, err
	}
	return nfa.Compile(node, nfa.Tag{Kind: kind, ID: src.ID, Name: src.Name, Priority: priority})
}

// overlapsDelimiters reports whether any byte-consuming NFA state's set
// intersects delims — an approximation of "this pattern's language can
// match a delimiter byte" sufficient for a diagnostic: it flags any
// pattern that could ever attempt to consume a delimiter, even along a
// branch that isn't always taken.
func overlapsDelimiters(n *nfa.NFA, delims DelimSet) bool {
	for _, st := range n.States {
		if st.Kind != nfa.KindByte {
			continue
		}
		for b := 0; b < 128; b++ {
			if st.Set.Contains(byte(b)) && delims.Contains(byte(b)) {
				return true
			}
		}
	}
	return false
}
