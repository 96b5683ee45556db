package nfa

import (
	"fmt"
	"sync"
)

// StateID addresses a state inside an NFA's arena.
//
// States refer to each other by ID rather than by pointer: quantifiers create
// epsilon cycles, and index-based edges make the cyclic graph trivially
// shareable read-only across concurrent searches.
type StateID uint32

// InvalidState marks an absent transition target.
const InvalidState StateID = 0xFFFFFFFF

// State is one node of the automaton: an accept flag, at most one outgoing
// symbol edge, and an ordered list of epsilon successors. Several states may
// independently carry an edge on the same symbol; that is the nondeterminism,
// not a defect. States are mutated only through the Builder; once the NFA is
// built they are read-only.
type State struct {
	accept   bool
	b        byte // symbol edge label, meaningful when byteNext != InvalidState
	byteNext StateID
	epsilon  []StateID
}

// Accept reports whether this is the accepting state.
func (s *State) Accept() bool {
	return s.accept
}

// ByteEdge returns the symbol edge (label, target). ok is false when the
// state has no symbol edge.
func (s *State) ByteEdge() (c byte, next StateID, ok bool) {
	if s.byteNext == InvalidState {
		return 0, InvalidState, false
	}
	return s.b, s.byteNext, true
}

// Epsilon returns the epsilon successors in insertion order.
// The slice aliases internal storage and must not be modified.
func (s *State) Epsilon() []StateID {
	return s.epsilon
}

// String returns a human-readable representation of the state.
func (s *State) String() string {
	switch {
	case s.accept:
		return "State(accept)"
	case s.byteNext != InvalidState:
		return fmt.Sprintf("State(%q -> %d)", s.b, s.byteNext)
	default:
		return fmt.Sprintf("State(eps -> %v)", s.epsilon)
	}
}

// NFA is a compiled automaton: an arena of states plus the distinguished
// start state. Exactly one state accepts. An NFA is immutable after Build and
// safe for concurrent Match/Search calls; per-search scratch lives in a pool.
type NFA struct {
	states []State
	start  StateID

	pool sync.Pool // *simState
}

// Start returns the start state ID.
func (n *NFA) Start() StateID {
	return n.start
}

// State returns the state with the given ID, or nil if the ID is invalid.
func (n *NFA) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// Len returns the number of states in the arena.
func (n *NFA) Len() int {
	return len(n.states)
}

// String returns a human-readable summary of the NFA.
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, start: %d}", len(n.states), n.start)
}
