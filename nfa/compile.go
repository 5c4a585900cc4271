package nfa

import (
	"fmt"

	"github.com/logsurgeon/logsurgeon-go/ast"
)

// frag is a fragment of a larger NFA under construction: a start state
// and the list of dangling out-edges still waiting for a target. This is
// the classic Thompson-construction fragment representation; a
// PikeVM-oriented compiler can skip it by compiling directly into its
// arena, but building rule-by-rule and patching fragments together
// keeps each AST node's translation local and easy to verify.
type frag struct {
	start StateID
	// outs holds (state, which) pairs identifying a dangling edge: either
	// a Byte/Epsilon state's Next, or a Split's Left/Right.
	outs []dangling
}

type outKind uint8

const (
	outNext outKind = iota
	outLeft
	outRight
)

type dangling struct {
	state StateID
	kind  outKind
}

func (b *Builder) patchAll(outs []dangling, target StateID) error {
	for _, o := range outs {
		switch o.kind {
		case outNext:
			if err := b.Patch(o.state, target); err != nil {
				return err
			}
		case outLeft:
			s := b.states[o.state]
			if err := b.PatchSplit(o.state, target, s.Right); err != nil {
				return err
			}
		case outRight:
			s := b.states[o.state]
			if err := b.PatchSplit(o.state, s.Left, target); err != nil {
				return err
			}
		}
	}
	return nil
}

// Compile performs Thompson construction over an AST node, producing an
// NFA tagged with tag, one AST node kind at a time.
func Compile(n *ast.Node, tag Tag) (*NFA, error) {
	b := NewBuilder()
	f, err := b.compileNode(n)
	if err != nil {
		return nil, &CompileError{Tag: tag, Err: err}
	}
	accept := b.AddMatch()
	if err := b.patchAll(f.outs, accept); err != nil {
		return nil, &CompileError{Tag: tag, Err: err}
	}
	result, err := b.Build(f.start, accept, tag)
	if err != nil {
		return nil, &CompileError{Tag: tag, Err: err}
	}
	return result, nil
}

func (b *Builder) compileNode(n *ast.Node) (frag, error) {
	switch n.Kind {
	case ast.KindLiteral:
		return b.compileByteSet(fromAST(singleton(n.Byte))), nil
	case ast.KindAnyByte:
		return b.compileByteSet(fromAST(ast.AnyByteExceptNewline())), nil
	case ast.KindCharClass:
		set := n.Class
		if n.Negated {
			set = set.Negate()
		}
		return b.compileByteSet(fromAST(set)), nil
	case ast.KindGroup:
		return b.compileNode(n.Child)
	case ast.KindConcat:
		return b.compileConcat(n.Children)
	case ast.KindAlt:
		return b.compileAlt(n.Children)
	case ast.KindRepeat:
		return b.compileRepeat(n)
	default:
		return frag{}, fmt.Errorf("nfa: unknown AST node kind %v", n.Kind)
	}
}

func singleton(b byte) ast.ByteSet {
	var s ast.ByteSet
	s.Add(b)
	return s
}

// fromAST converts an ast.ByteSet into the package-local ByteSet so that
// package nfa has no runtime (not just import-time) entanglement with ast
// beyond this single conversion point.
func fromAST(s ast.ByteSet) ByteSet {
	var out ByteSet
	for i := 0; i < 128; i++ {
		if s.Contains(byte(i)) {
			var bit ByteSet
			if i < 64 {
				bit.Lo = 1 << uint(i)
			} else {
				bit.Hi = 1 << uint(i-64)
			}
			out.Lo |= bit.Lo
			out.Hi |= bit.Hi
		}
	}
	return out
}

func (b *Builder) compileByteSet(set ByteSet) frag {
	id := b.AddByte(set, InvalidState)
	return frag{start: id, outs: []dangling{{state: id, kind: outNext}}}
}

func (b *Builder) compileConcat(children []*ast.Node) (frag, error) {
	first, err := b.compileNode(children[0])
	if err != nil {
		return frag{}, err
	}
	result := first
	for _, c := range children[1:] {
		next, err := b.compileNode(c)
		if err != nil {
			return frag{}, err
		}
		if err := b.patchAll(result.outs, next.start); err != nil {
			return frag{}, err
		}
		result.outs = next.outs
	}
	return result, nil
}

func (b *Builder) compileAlt(children []*ast.Node) (frag, error) {
	if len(children) == 1 {
		return b.compileNode(children[0])
	}
	// Build as a right-leaning chain of binary splits so that branch
	// order (and therefore which branch a priority tie favors upstream,
	// at the schema/DFA level) follows declaration order.
	first, err := b.compileNode(children[0])
	if err != nil {
		return frag{}, err
	}
	rest, err := b.compileAlt(children[1:])
	if err != nil {
		return frag{}, err
	}
	split := b.AddSplit(first.start, rest.start)
	outs := append(append([]dangling{}, first.outs...), rest.outs...)
	return frag{start: split, outs: outs}, nil
}

// compileRepeat unrolls bounded and unbounded repetition: a{N} is pure
// concatenation of N copies; a{N,M} appends M-N epsilon-skippable
// copies; a* / a+ / a{N,} append a Kleene loop.
func (b *Builder) compileRepeat(n *ast.Node) (frag, error) {
	var copies []frag
	for i := 0; i < n.Min; i++ {
		f, err := b.compileNode(n.Child)
		if err != nil {
			return frag{}, err
		}
		copies = append(copies, f)
	}

	if n.Max == ast.Unbounded {
		loop, err := b.compileKleeneTail(n.Child)
		if err != nil {
			return frag{}, err
		}
		copies = append(copies, loop)
	} else {
		for i := n.Min; i < n.Max; i++ {
			f, err := b.compileNode(n.Child)
			if err != nil {
				return frag{}, err
			}
			opt, err := b.makeOptional(f)
			if err != nil {
				return frag{}, err
			}
			copies = append(copies, opt)
		}
	}

	if len(copies) == 0 {
		// {0,0}: matches only the empty string. Represent as a single
		// epsilon fragment.
		id := b.AddEpsilon(InvalidState)
		return frag{start: id, outs: []dangling{{state: id, kind: outNext}}}, nil
	}

	result := copies[0]
	for _, next := range copies[1:] {
		if err := b.patchAll(result.outs, next.start); err != nil {
			return frag{}, err
		}
		result.outs = next.outs
	}
	return result, nil
}

// makeOptional wraps an already-compiled fragment f so that it may be
// skipped entirely: split --> {f.start, skip}; f's outs and the skip
// branch both dangle out of the wrapper.
func (b *Builder) makeOptional(f frag) (frag, error) {
	split := b.AddSplit(f.start, InvalidState)
	outs := append(append([]dangling{}, f.outs...), dangling{state: split, kind: outRight})
	return frag{start: split, outs: outs}, nil
}

// compileKleeneTail builds the `a*` loop shape: a new split state
// epsilon-branches to child.start (loop body) and to
// the fragment's single dangling out-edge (zero-iterations exit); the
// child's own out-edges loop back to the split.
func (b *Builder) compileKleeneTail(child *ast.Node) (frag, error) {
	split := b.AddSplit(InvalidState, InvalidState)
	f, err := b.compileNode(child)
	if err != nil {
		return frag{}, err
	}
	if err := b.PatchSplit(split, f.start, InvalidState); err != nil {
		return frag{}, err
	}
	if err := b.patchAll(f.outs, split); err != nil {
		return frag{}, err
	}
	return frag{start: split, outs: []dangling{{state: split, kind: outRight}}}, nil
}
