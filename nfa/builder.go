package nfa

import "fmt"

// Builder constructs an NFA incrementally, fixing up forward references
// with Patch/PatchSplit. This is the same incremental-arena shape as
// coregx/nfa's Builder (AddByteRange/AddSplit/AddEpsilon/AddMatch/Patch),
// trimmed to the four state kinds this spec's Thompson construction
// needs.
type Builder struct {
	states []State
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{states: make([]State, 0, 16)}
}

// AddByte adds a state that consumes a byte in set and moves to next.
// Pass InvalidState for next and Patch it in later if the target isn't
// known yet.
func (b *Builder) AddByte(set ByteSet, next StateID) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{Kind: KindByte, Set: set, Next: next})
	return id
}

// AddSplit adds an epsilon-split state branching to left and right.
func (b *Builder) AddSplit(left, right StateID) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{Kind: KindSplit, Left: left, Right: right})
	return id
}

// AddEpsilon adds a single-target epsilon state.
func (b *Builder) AddEpsilon(next StateID) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{Kind: KindEpsilon, Next: next})
	return id
}

// AddMatch adds the (unique) accepting state.
func (b *Builder) AddMatch() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{Kind: KindMatch})
	return id
}

// Patch rewrites the Next field of a Byte/Epsilon state. Used to close
// forward references created while compiling Concat/Repeat chains.
func (b *Builder) Patch(id, target StateID) error {
	if int(id) >= len(b.states) {
		return fmt.Errorf("nfa: patch: state %d out of bounds", id)
	}
	s := &b.states[id]
	switch s.Kind {
	case KindByte, KindEpsilon:
		s.Next = target
		return nil
	default:
		return fmt.Errorf("nfa: patch: cannot patch state of kind %s", s.Kind)
	}
}

// PatchSplit rewrites the Left/Right fields of a Split state.
func (b *Builder) PatchSplit(id StateID, left, right StateID) error {
	if int(id) >= len(b.states) {
		return fmt.Errorf("nfa: patchSplit: state %d out of bounds", id)
	}
	s := &b.states[id]
	if s.Kind != KindSplit {
		return fmt.Errorf("nfa: patchSplit: state %d is not a Split", id)
	}
	s.Left, s.Right = left, right
	return nil
}

// Len returns the number of states added so far.
func (b *Builder) Len() int { return len(b.states) }

// Build finalizes the NFA with the given start/accept states and tag.
func (b *Builder) Build(start, accept StateID, tag Tag) (*NFA, error) {
	if int(start) >= len(b.states) {
		return nil, fmt.Errorf("nfa: start state %d out of bounds", start)
	}
	if int(accept) >= len(b.states) || b.states[accept].Kind != KindMatch {
		return nil, fmt.Errorf("nfa: accept state %d is not a Match state", accept)
	}
	return &NFA{States: b.states, Start: start, Accept: accept, Tag: tag}, nil
}
