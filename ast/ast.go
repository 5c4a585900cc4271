// Package ast defines the abstract syntax tree produced by the schema
// dialect parser and consumed by the NFA builder.
//
// The tree is intentionally small: the dialect supports concatenation,
// alternation, bounded/unbounded repetition, grouping, byte literals, and
// byte character classes. There are no capture groups, no lookaround, and
// no Unicode classes — every byte in the tree is an ASCII byte (0-127).
package ast

import "fmt"

// Kind identifies the type of an AST node.
type Kind uint8

const (
	// KindLiteral matches a single fixed byte.
	KindLiteral Kind = iota
	// KindAnyByte matches any ASCII byte except '\n' (the '.' metacharacter).
	KindAnyByte
	// KindCharClass matches any byte in (or, if Negated, not in) a set.
	KindCharClass
	// KindConcat matches its children in sequence.
	KindConcat
	// KindAlt matches exactly one of its children.
	KindAlt
	// KindRepeat matches its single child between Min and Max times.
	KindRepeat
	// KindGroup wraps a single child; grouping affects only precedence.
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindAnyByte:
		return "AnyByte"
	case KindCharClass:
		return "CharClass"
	case KindConcat:
		return "Concat"
	case KindAlt:
		return "Alt"
	case KindRepeat:
		return "Repeat"
	case KindGroup:
		return "Group"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Unbounded is the value of Repeat.Max when a quantifier has no upper
// bound (`*`, `+`, `{N,}`).
const Unbounded = -1

// Node is a single node in the pattern AST. Which fields are meaningful
// depends on Kind, mirroring a tagged-union shape in a flat struct.
type Node struct {
	Kind Kind

	// KindLiteral
	Byte byte

	// KindCharClass
	Class   ByteSet
	Negated bool

	// KindConcat, KindAlt
	Children []*Node

	// KindRepeat, KindGroup
	Child *Node

	// KindRepeat
	Min, Max int
}

// Literal creates a KindLiteral node matching b exactly.
func Literal(b byte) *Node { return &Node{Kind: KindLiteral, Byte: b} }

// AnyByte creates a KindAnyByte node.
func AnyByte() *Node { return &Node{Kind: KindAnyByte} }

// CharClass creates a KindCharClass node. set must be non-empty.
func CharClass(set ByteSet, negated bool) *Node {
	return &Node{Kind: KindCharClass, Class: set, Negated: negated}
}

// Concat creates a KindConcat node. children must have at least one element.
func Concat(children ...*Node) *Node {
	return &Node{Kind: KindConcat, Children: children}
}

// Alt creates a KindAlt node. children must have at least one element.
func Alt(children ...*Node) *Node {
	return &Node{Kind: KindAlt, Children: children}
}

// Repeat creates a KindRepeat node. max == Unbounded means no upper bound.
func Repeat(child *Node, min, max int) *Node {
	return &Node{Kind: KindRepeat, Child: child, Min: min, Max: max}
}

// Group creates a KindGroup node wrapping child.
func Group(child *Node) *Node {
	return &Node{Kind: KindGroup, Child: child}
}

// Walk calls visit for n and every descendant, depth-first, pre-order.
func Walk(n *Node, visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	switch n.Kind {
	case KindConcat, KindAlt:
		for _, c := range n.Children {
			Walk(c, visit)
		}
	case KindRepeat, KindGroup:
		Walk(n.Child, visit)
	}
}

// String returns a debug representation of the node, not a round-trippable
// pattern source.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Kind {
	case KindLiteral:
		return fmt.Sprintf("Literal(%q)", n.Byte)
	case KindAnyByte:
		return "AnyByte"
	case KindCharClass:
		return fmt.Sprintf("CharClass(negated=%v, n=%d)", n.Negated, n.Class.Count())
	case KindConcat:
		return fmt.Sprintf("Concat(%d)", len(n.Children))
	case KindAlt:
		return fmt.Sprintf("Alt(%d)", len(n.Children))
	case KindRepeat:
		return fmt.Sprintf("Repeat(%d,%d)", n.Min, n.Max)
	case KindGroup:
		return "Group"
	default:
		return "<?>"
	}
}
