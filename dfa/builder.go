package dfa

import (
	"encoding/binary"
	"sort"

	"github.com/logsurgeon/logsurgeon-go/internal/sparseset"
	"github.com/logsurgeon/logsurgeon-go/nfa"
)

// ref identifies one state within the flattened arena of every input
// NFA's states: which NFA (by index in the Build call's slice) and which
// state within that NFA.
type ref struct {
	pattern int
	state   nfa.StateID
}

// arena flattens N independently-addressed NFA state spaces into one
// contiguous uint32 space so a single sparseset.Set can track visited
// states across all of them during epsilon-closure computation — the
// same technique coregx's Lazy DFA builder uses a single nfa.StateID
// space for, generalized here to a union of several NFAs.
type arena struct {
	nfas      []*nfa.NFA
	offsets   []int
	flatToRef []ref
}

func newArena(nfas []*nfa.NFA) *arena {
	offsets := make([]int, len(nfas))
	total := 0
	for i, n := range nfas {
		offsets[i] = total
		total += len(n.States)
	}
	flatToRef := make([]ref, total)
	for i, n := range nfas {
		for s := range n.States {
			flatToRef[offsets[i]+s] = ref{pattern: i, state: nfa.StateID(s)}
		}
	}
	return &arena{nfas: nfas, offsets: offsets, flatToRef: flatToRef}
}

func (a *arena) flat(pattern int, s nfa.StateID) uint32 {
	return uint32(a.offsets[pattern]) + uint32(s)
}

func (a *arena) total() int { return len(a.flatToRef) }

// Build performs subset construction over the union of nfas, seeding the
// work list with the epsilon closure of each NFA's own start state —
// equivalent to, and avoiding materializing, a synthetic union start.
// Where several patterns accept at the same position, the one with the
// lowest Tag.Priority wins.
func Build(nfas []*nfa.NFA, cfg Config) (*DFA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(nfas) == 0 {
		// An empty schema is valid. A DFA with only the dead state
		// never accepts; every segment becomes StaticText.
		return &DFA{States: []State{{}}, Start: 0, Dead: 0}, nil
	}

	ar := newArena(nfas)
	b := &builder{arena: ar, visited: sparseset.New(ar.total()), cfg: cfg}

	states := make([]State, 1) // index 0: dead state, empty accept, zero-value transitions all point back to 0.
	subsets := [][]uint32{nil}
	keyToID := map[string]StateID{}

	var seeds []uint32
	for i, n := range nfas {
		seeds = append(seeds, ar.flat(i, n.Start))
	}
	startSubset, err := b.closure(seeds)
	if err != nil {
		return nil, err
	}
	startID := StateID(len(states))
	states = append(states, State{})
	subsets = append(subsets, startSubset)
	keyToID[subsetKey(startSubset)] = startID

	queue := []StateID{startID}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		subset := subsets[cur]
		states[cur].Accept = acceptsOf(ar, subset)

		for byteVal := 0; byteVal < 128; byteVal++ {
			seeds := b.move(subset, byte(byteVal))
			if len(seeds) == 0 {
				states[cur].Trans[byteVal] = 0
				continue
			}
			next, err := b.closure(seeds)
			if err != nil {
				return nil, err
			}
			if len(next) == 0 {
				states[cur].Trans[byteVal] = 0
				continue
			}
			k := subsetKey(next)
			id, ok := keyToID[k]
			if !ok {
				id = StateID(len(states))
				if cfg.MaxStates > 0 && int(id) > cfg.MaxStates {
					return nil, &BuildError{Limit: "MaxStates", Value: cfg.MaxStates, Err: ErrTooComplex}
				}
				states = append(states, State{})
				subsets = append(subsets, next)
				keyToID[k] = id
				queue = append(queue, id)
			}
			states[cur].Trans[byteVal] = id
		}
	}

	d := &DFA{States: states, Start: startID, Dead: 0}
	if cfg.MinimizeDFA {
		d = minimize(d)
	}
	return d, nil
}

type builder struct {
	arena   *arena
	visited *sparseset.Set
	cfg     Config
}

// closure computes the epsilon closure of seeds: every state reachable
// from seeds by following only Epsilon/Split edges, plus the seeds
// themselves, as a sorted slice of flat ids (sorted so subsetKey is
// stable regardless of traversal order).
func (b *builder) closure(seeds []uint32) ([]uint32, error) {
	b.visited.Clear()
	stack := append([]uint32(nil), seeds...)
	for _, s := range seeds {
		b.visited.Insert(s)
	}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		r := b.arena.flatToRef[v]
		st := b.arena.nfas[r.pattern].States[r.state]
		switch st.Kind {
		case nfa.KindEpsilon:
			f := b.arena.flat(r.pattern, st.Next)
			if !b.visited.Contains(f) {
				b.visited.Insert(f)
				stack = append(stack, f)
			}
		case nfa.KindSplit:
			for _, target := range [2]nfa.StateID{st.Left, st.Right} {
				f := b.arena.flat(r.pattern, target)
				if !b.visited.Contains(f) {
					b.visited.Insert(f)
					stack = append(stack, f)
				}
			}
		}
	}
	if b.cfg.DeterminizationLimit > 0 && b.visited.Len() > b.cfg.DeterminizationLimit {
		return nil, &BuildError{Limit: "DeterminizationLimit", Value: b.cfg.DeterminizationLimit, Err: ErrTooComplex}
	}
	vals := append([]uint32(nil), b.visited.Values()...)
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
	return vals, nil
}

// move returns, for every flat id in subset whose NFA state consumes b,
// the target state's flat id. The caller runs closure over the result.
func (b *builder) move(subset []uint32, byteVal byte) []uint32 {
	var seeds []uint32
	for _, v := range subset {
		r := b.arena.flatToRef[v]
		st := b.arena.nfas[r.pattern].States[r.state]
		if st.Kind == nfa.KindByte && st.Set.Contains(byteVal) {
			seeds = append(seeds, b.arena.flat(r.pattern, st.Next))
		}
	}
	return seeds
}

// acceptsOf returns the priority-sorted tags of every NFA whose accept
// state is present in subset.
func acceptsOf(ar *arena, subset []uint32) []nfa.Tag {
	var tags []nfa.Tag
	for _, v := range subset {
		r := ar.flatToRef[v]
		n := ar.nfas[r.pattern]
		if r.state == n.Accept {
			tags = append(tags, n.Tag)
		}
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Priority < tags[j].Priority })
	return tags
}

// subsetKey canonicalizes a sorted flat-id slice into a map key.
func subsetKey(vals []uint32) string {
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:], v)
	}
	return string(buf)
}
