// Package dfa builds a single deterministic automaton out of the union
// of every NFA a schema compiles (package nfa), via subset construction,
// and exposes the byte-stepping simulator the lexer drives.
//
// This plays the role coregx/dfa/lazy plays for coregx — a DFA built
// from an NFA — generalized from "one pattern, built lazily on demand"
// to "N tagged patterns, built eagerly up front": the lexer needs every
// schema pattern merged into one automaton ahead of time so it can
// classify a whole segment against the full pattern set in a single
// pass, not grow the DFA while scanning.
package dfa

import "github.com/logsurgeon/logsurgeon-go/nfa"

// StateID addresses a state in the unified DFA.
type StateID uint32

// State is one DFA state: a dense transition row over ASCII (0..127)
// and the priority-ordered list of pattern tags accepted here.
type State struct {
	Trans  [128]StateID
	Accept []nfa.Tag
}

// DFA is the unified, schema-wide automaton.
type DFA struct {
	States []State
	Start  StateID
	// Dead is the distinguished sink state: every byte from Dead
	// transitions back to Dead, and its Accept is always empty.
	Dead StateID
}

// IsDead reports whether s is the DFA's dead/trap state.
func (d *DFA) IsDead(s StateID) bool { return s == d.Dead }

// Step advances one byte from state s. The second return value is false
// iff the transition lands on (or the byte is outside ASCII and
// therefore forced into) the dead state.
func (d *DFA) Step(s StateID, b byte) (StateID, bool) {
	if b >= 128 {
		return d.Dead, false
	}
	next := d.States[s].Trans[b]
	return next, next != d.Dead
}

// Match is the result of a successful Simulate call: the number of bytes
// consumed and the tag of the highest-priority pattern accepting at that
// position.
type Match struct {
	Len int
	Tag nfa.Tag
}

// Simulate runs the DFA forward from start over data on a
// longest-match-with-priority-tie-break contract: it remembers the
// most recent accepting position and returns it once it reaches the
// dead state or the end of data. ok is false if no prefix of data
// (including the empty prefix) was ever accepting.
func (d *DFA) Simulate(start StateID, data []byte) (m Match, ok bool) {
	state := start
	if accept := d.States[state].Accept; len(accept) > 0 {
		m, ok = Match{Len: 0, Tag: accept[0]}, true
	}
	for i := 0; i < len(data); i++ {
		b := data[i]
		if b >= 128 {
			break
		}
		next := d.States[state].Trans[b]
		if next == d.Dead {
			break
		}
		state = next
		if accept := d.States[state].Accept; len(accept) > 0 {
			m, ok = Match{Len: i + 1, Tag: accept[0]}, true
		}
	}
	return m, ok
}
