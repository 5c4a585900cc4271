package dfa

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/logsurgeon/logsurgeon-go/nfa"
)

// minimize collapses behaviorally-equivalent states using partition
// refinement: the initial partition groups states by accept-tag-list
// equality (the priority tie-break needs the *full* ordered tag list to
// match, not merely "both accept"), then repeatedly splits any class
// whose members transition to different classes on the same byte, until
// the partition stops changing.
//
// This is the fixed-point (Moore's algorithm) formulation of the
// equivalence a proper Hopcroft's-algorithm worklist would also compute;
// it is less asymptotically efficient but far simpler to get right, and
// DFA state counts here are bounded by schema size rather than by input
// size, so the difference is not performance-relevant.
func minimize(d *DFA) *DFA {
	n := len(d.States)
	if n <= 1 {
		return d
	}

	classOf := make([]int, n)
	sigToClass := map[string]int{}
	for i, s := range d.States {
		sig := acceptSig(s.Accept)
		c, ok := sigToClass[sig]
		if !ok {
			c = len(sigToClass)
			sigToClass[sig] = c
		}
		classOf[i] = c
	}

	for {
		newClassOf := refine(d, classOf)
		if reflect.DeepEqual(newClassOf, classOf) {
			break
		}
		classOf = newClassOf
	}

	return rebuild(d, classOf)
}

func acceptSig(tags []nfa.Tag) string {
	var b strings.Builder
	for _, t := range tags {
		fmt.Fprintf(&b, "%d:%d;", t.Kind, t.ID)
	}
	return b.String()
}

// refine computes one round of partition splitting: two states keep the
// same class only if they were already in the same class and every byte
// transition leads to the same next-class.
func refine(d *DFA, classOf []int) []int {
	n := len(d.States)
	sigOf := make([]string, n)
	for i := 0; i < n; i++ {
		var b strings.Builder
		fmt.Fprintf(&b, "%d|", classOf[i])
		for byteVal := 0; byteVal < 128; byteVal++ {
			fmt.Fprintf(&b, "%d,", classOf[d.States[i].Trans[byteVal]])
		}
		sigOf[i] = b.String()
	}
	assigned := map[string]int{}
	newClassOf := make([]int, n)
	for i := 0; i < n; i++ {
		c, ok := assigned[sigOf[i]]
		if !ok {
			c = len(assigned)
			assigned[sigOf[i]] = c
		}
		newClassOf[i] = c
	}
	return newClassOf
}

// rebuild constructs the minimized DFA: one state per equivalence class,
// using the first original state in each class as that class's
// representative for its accept list and transitions.
func rebuild(d *DFA, classOf []int) *DFA {
	numClasses := 0
	for _, c := range classOf {
		if c+1 > numClasses {
			numClasses = c + 1
		}
	}
	newStates := make([]State, numClasses)
	seen := make([]bool, numClasses)
	for i, c := range classOf {
		if seen[c] {
			continue
		}
		seen[c] = true
		newStates[c].Accept = d.States[i].Accept
		for byteVal := 0; byteVal < 128; byteVal++ {
			newStates[c].Trans[byteVal] = StateID(classOf[d.States[i].Trans[byteVal]])
		}
	}
	return &DFA{
		States: newStates,
		Start:  StateID(classOf[d.Start]),
		Dead:   StateID(classOf[d.Dead]),
	}
}
