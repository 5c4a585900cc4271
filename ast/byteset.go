package ast

// ByteSet is a membership set over the ASCII range (0-127), represented
// as two 64-bit words. It is the set type used by CharClass nodes and
// shared with the NFA builder for byte-range transitions.
//
// This plays the role coregx/nfa's ByteClasses plays for its DFA alphabet
// reduction, scaled down: our schema patterns are ASCII-only, so a flat
// 128-bit bitset is both simpler and fast enough — there is no need for
// the equivalence-class compression a general Unicode-aware engine needs.
type ByteSet struct {
	lo uint64 // bytes 0-63
	hi uint64 // bytes 64-127
}

// NewByteSet returns an empty ByteSet.
func NewByteSet() ByteSet { return ByteSet{} }

// Add inserts b into the set. b must be < 128; callers must validate ASCII
// range before calling (see ErrNonASCII).
func (s *ByteSet) Add(b byte) {
	if b < 64 {
		s.lo |= 1 << uint(b)
	} else if b < 128 {
		s.hi |= 1 << uint(b-64)
	}
}

// AddRange inserts every byte in [lo, hi] (inclusive).
func (s *ByteSet) AddRange(lo, hi byte) {
	for b := int(lo); b <= int(hi); b++ {
		s.Add(byte(b))
	}
}

// Contains reports whether b is in the set.
func (s ByteSet) Contains(b byte) bool {
	if b < 64 {
		return s.lo&(1<<uint(b)) != 0
	}
	if b < 128 {
		return s.hi&(1<<uint(b-64)) != 0
	}
	return false
}

// Union returns the union of s and other.
func (s ByteSet) Union(other ByteSet) ByteSet {
	return ByteSet{lo: s.lo | other.lo, hi: s.hi | other.hi}
}

// Negate returns the complement of s within the ASCII range [0,127].
func (s ByteSet) Negate() ByteSet {
	return ByteSet{lo: ^s.lo, hi: ^s.hi}
}

// Count returns the number of bytes in the set.
func (s ByteSet) Count() int {
	return popcount64(s.lo) + popcount64(s.hi)
}

// Empty reports whether the set has no members.
func (s ByteSet) Empty() bool {
	return s.lo == 0 && s.hi == 0
}

func popcount64(x uint64) int {
	n := 0
	for x != 0 {
		x &= x - 1
		n++
	}
	return n
}

// DigitClass returns the ByteSet for `\d` ([0-9]).
func DigitClass() ByteSet {
	var s ByteSet
	s.AddRange('0', '9')
	return s
}

// WordClass returns the ByteSet for `\w` ([0-9A-Za-z_]).
func WordClass() ByteSet {
	var s ByteSet
	s.AddRange('0', '9')
	s.AddRange('A', 'Z')
	s.AddRange('a', 'z')
	s.Add('_')
	return s
}

// SpaceClass returns the ByteSet for `\s` ([ \t\n\r\f\v]).
func SpaceClass() ByteSet {
	var s ByteSet
	s.Add(' ')
	s.Add('\t')
	s.Add('\n')
	s.Add('\r')
	s.Add('\f')
	s.Add('\v')
	return s
}

// AnyByteExceptNewline returns the ByteSet for `.` (any ASCII byte but '\n').
func AnyByteExceptNewline() ByteSet {
	var s ByteSet
	s.AddRange(0, 127)
	s.Remove('\n')
	return s
}

// Remove deletes b from the set, if present.
func (s *ByteSet) Remove(b byte) {
	if b < 64 {
		s.lo &^= 1 << uint(b)
	} else if b < 128 {
		s.hi &^= 1 << uint(b-64)
	}
}

// Diff returns the set of bytes in s that are not in other.
func (s ByteSet) Diff(other ByteSet) ByteSet {
	return ByteSet{lo: s.lo &^ other.lo, hi: s.hi &^ other.hi}
}
