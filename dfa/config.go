package dfa

import "fmt"

// Config controls subset-construction and minimization behavior.
// Shaped after coregx/meta's Config/DefaultConfig/Validate trio.
type Config struct {
	// MinimizeDFA runs partition refinement (Moore's fixed-point form,
	// see minimize) after subset construction. Default: true.
	MinimizeDFA bool

	// MaxStates caps the number of DFA states subset construction may
	// produce. Zero means unlimited. Default: 100000.
	MaxStates int

	// DeterminizationLimit caps the number of NFA states any single DFA
	// state's subset may contain, guarding against exponential blowup
	// from patterns like (a*)*b. Zero means unlimited. Default: 4096.
	DeterminizationLimit int
}

// DefaultConfig returns sensible defaults for schema-scale pattern sets.
func DefaultConfig() Config {
	return Config{
		MinimizeDFA:          true,
		MaxStates:            100000,
		DeterminizationLimit: 4096,
	}
}

// Validate checks that Config's fields are in sane ranges.
func (c Config) Validate() error {
	if c.MaxStates < 0 {
		return fmt.Errorf("dfa: MaxStates must be >= 0, got %d", c.MaxStates)
	}
	if c.DeterminizationLimit < 0 {
		return fmt.Errorf("dfa: DeterminizationLimit must be >= 0, got %d", c.DeterminizationLimit)
	}
	return nil
}
