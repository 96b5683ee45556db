package nfa

// Builder constructs NFA state arenas incrementally. The Compiler drives it
// while wiring Thompson fragments; Build freezes the arena into an immutable
// NFA after validating it.
type Builder struct {
	states []State
}

// NewBuilder creates a builder with default capacity.
func NewBuilder() *Builder {
	return &Builder{states: make([]State, 0, 16)}
}

// AddState appends an inert state (no edges, not accepting) and returns its ID.
func (b *Builder) AddState() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{byteNext: InvalidState})
	return id
}

// SetByteEdge gives from a symbol edge on c to to, replacing any existing one.
// A state carries at most one symbol edge; nondeterminism on a symbol arises
// from multiple states, never from one.
func (b *Builder) SetByteEdge(from StateID, c byte, to StateID) {
	s := &b.states[from]
	s.b = c
	s.byteNext = to
}

// AddEpsilonEdge appends an epsilon edge from from to to.
func (b *Builder) AddEpsilonEdge(from, to StateID) {
	s := &b.states[from]
	s.epsilon = append(s.epsilon, to)
}

// SetAccept sets or clears the accept flag on a state. Combinators clear the
// flag of an embedded fragment's end so the finished automaton keeps exactly
// one accepting state.
func (b *Builder) SetAccept(id StateID, accept bool) {
	b.states[id].accept = accept
}

// Len returns the current number of states.
func (b *Builder) Len() int {
	return len(b.states)
}

// Validate checks that start and every edge target are in range and that the
// arena has exactly one accepting state.
func (b *Builder) Validate(start StateID) error {
	if int(start) >= len(b.states) {
		return &BuildError{Msg: "start state out of bounds", State: start}
	}
	accepts := 0
	for i := range b.states {
		s := &b.states[i]
		if s.accept {
			accepts++
		}
		if s.byteNext != InvalidState && int(s.byteNext) >= len(b.states) {
			return &BuildError{Msg: "symbol edge target out of bounds", State: StateID(i)}
		}
		for _, e := range s.epsilon {
			if int(e) >= len(b.states) {
				return &BuildError{Msg: "epsilon edge target out of bounds", State: StateID(i)}
			}
		}
	}
	if accepts != 1 {
		return &BuildError{Msg: "automaton must have exactly one accepting state", State: InvalidState}
	}
	return nil
}

// Build validates the arena and returns the finished immutable NFA.
func (b *Builder) Build(start StateID) (*NFA, error) {
	if err := b.Validate(start); err != nil {
		return nil, err
	}
	n := &NFA{states: b.states, start: start}
	n.pool.New = func() any { return n.newSimState() }
	return n, nil
}
