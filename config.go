package rematch

import (
	"errors"

	"github.com/coregx/rematch/nfa"
)

// Config controls pattern compilation.
//
// Example:
//
//	config := rematch.DefaultConfig()
//	config.NoPrefilter = true // always run the pure automaton scan
//	re, err := rematch.CompileWithConfig(`foo|bar`, config)
type Config struct {
	// MaxStates caps the automaton size. Character class expansion is the
	// only state multiplier in this syntax, so the default is generous.
	// 0 means nfa.DefaultMaxStates.
	MaxStates int

	// NoPrefilter disables literal prefiltering; every Search runs the
	// per-position automaton scan. Results are identical either way — the
	// knob exists for testing and for callers that prefer predictable
	// memory use over literal acceleration.
	NoPrefilter bool
}

// DefaultConfig returns the default compilation configuration.
func DefaultConfig() Config {
	return Config{MaxStates: nfa.DefaultMaxStates}
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if c.MaxStates < 0 {
		return errors.New("rematch: MaxStates must be non-negative")
	}
	return nil
}
