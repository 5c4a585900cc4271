// Package sparseset provides the sparse-set data structure used by the
// DFA builder to track which (NFA index, NFA state) pairs have already
// been visited while computing an epsilon closure.
//
// This is a direct adaptation of coregx/internal/sparse: O(1) insert,
// membership test, and O(1) clear, at the cost of a dense array sized to
// the known universe (here: the total state count across every NFA the
// schema compiles). DFA subset construction recomputes closures
// thousands of times per compile, so the O(1) Clear (no walking/zeroing
// the sparse array) matters.
package sparseset

// Set is a set of uint32 values in [0, capacity) with O(1) insert,
// membership, and clear.
type Set struct {
	sparse []uint32
	dense  []uint32
}

// New creates a Set over the universe [0, capacity).
func New(capacity int) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds v to the set. Insert is a no-op if v is already present.
func (s *Set) Insert(v uint32) {
	if s.Contains(v) {
		return
	}
	idx := uint32(len(s.dense))
	s.dense = append(s.dense, v)
	s.sparse[v] = idx
}

// Contains reports whether v is a member.
func (s *Set) Contains(v uint32) bool {
	if int(v) >= len(s.sparse) {
		return false
	}
	idx := s.sparse[v]
	return int(idx) < len(s.dense) && s.dense[idx] == v
}

// Clear empties the set in O(1).
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of elements currently in the set.
func (s *Set) Len() int { return len(s.dense) }

// Values returns the set's members in insertion order. The returned
// slice is only valid until the next mutating call.
func (s *Set) Values() []uint32 { return s.dense }
