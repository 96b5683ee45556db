package nfa

import "github.com/coregx/rematch/internal/sparse"

// simState is the reusable per-search scratch: the current and next active
// state sets plus the closure frontier. The compiled NFA itself is read-only,
// so each concurrent search borrows its own simState from the pool.
type simState struct {
	current  *sparse.Set
	next     *sparse.Set
	frontier []StateID
}

func (n *NFA) newSimState() *simState {
	return &simState{
		current:  sparse.NewSet(len(n.states)),
		next:     sparse.NewSet(len(n.states)),
		frontier: make([]StateID, 0, len(n.states)),
	}
}

func (n *NFA) getSimState() *simState {
	return n.pool.Get().(*simState)
}

func (n *NFA) putSimState(s *simState) {
	n.pool.Put(s)
}

// closure expands set in place to the smallest superset closed under epsilon
// edges. The traversal is iterative with an explicit frontier; the membership
// test guards against revisiting, which is what terminates the epsilon cycles
// that `*` and `+` deliberately introduce.
func (n *NFA) closure(set *sparse.Set, s *simState) {
	s.frontier = s.frontier[:0]
	for _, v := range set.Values() {
		s.frontier = append(s.frontier, StateID(v))
	}
	for len(s.frontier) > 0 {
		id := s.frontier[len(s.frontier)-1]
		s.frontier = s.frontier[:len(s.frontier)-1]
		for _, e := range n.states[id].epsilon {
			if set.Insert(uint32(e)) {
				s.frontier = append(s.frontier, e)
			}
		}
	}
}

// move fills s.next with the states reachable from s.current by a symbol edge
// on exactly b. No epsilon edges are followed; the caller applies closure
// before the next step or any acceptance test. Reports whether any state was
// reached.
func (n *NFA) move(s *simState, b byte) bool {
	s.next.Clear()
	for _, v := range s.current.Values() {
		st := &n.states[v]
		if st.byteNext != InvalidState && st.b == b {
			s.next.Insert(uint32(st.byteNext))
		}
	}
	return s.next.Len() > 0
}

// startSet resets s.current to the epsilon-closure of the start state.
func (n *NFA) startSet(s *simState) {
	s.current.Clear()
	s.current.Insert(uint32(n.start))
	n.closure(s.current, s)
}

func (s *simState) swap() {
	s.current, s.next = s.next, s.current
}

func (n *NFA) anyAccept(set *sparse.Set) bool {
	for _, v := range set.Values() {
		if n.states[v].accept {
			return true
		}
	}
	return false
}

// FullMatch reports whether the automaton accepts word in its entirety.
// The scan fails fast as soon as a symbol yields no transitions.
func (n *NFA) FullMatch(word []byte) bool {
	s := n.getSimState()
	defer n.putSimState(s)

	n.startSet(s)
	for i := 0; i < len(word); i++ {
		if !n.move(s, word[i]) {
			return false
		}
		n.closure(s.next, s)
		s.swap()
	}
	return n.anyAccept(s.current)
}

// MatchAt returns the end offset of the longest match starting exactly at
// position at. Acceptance is recorded before any symbol is consumed (the
// zero-length candidate) and after every successfully stepped symbol; the
// scan stops extending once a symbol yields no transitions, and the largest
// recorded end wins.
func (n *NFA) MatchAt(word []byte, at int) (end int, ok bool) {
	s := n.getSimState()
	defer n.putSimState(s)

	n.startSet(s)
	if n.anyAccept(s.current) {
		end, ok = at, true
	}
	for q := at; q < len(word); q++ {
		if !n.move(s, word[q]) {
			break
		}
		n.closure(s.next, s)
		s.swap()
		if n.anyAccept(s.current) {
			end, ok = q+1, true
		}
	}
	return end, ok
}

// Search scans candidate start positions left to right and returns the span
// of the longest match at the first position that matches at all. A shorter
// match at an earlier position beats a longer match at a later one; the
// policy is leftmost-longest per start position, not globally.
func (n *NFA) Search(word []byte) (start, end int, ok bool) {
	return n.SearchAt(word, 0)
}

// SearchAt is Search restricted to candidate start positions >= at.
// An empty word matches, with the empty span, iff the closure of the start
// state already contains the accepting state.
func (n *NFA) SearchAt(word []byte, at int) (start, end int, ok bool) {
	if at < 0 {
		at = 0
	}
	if len(word) == 0 {
		if at > 0 {
			return 0, 0, false
		}
		s := n.getSimState()
		defer n.putSimState(s)
		n.startSet(s)
		if n.anyAccept(s.current) {
			return 0, 0, true
		}
		return 0, 0, false
	}
	for p := at; p < len(word); p++ {
		if e, matched := n.MatchAt(word, p); matched {
			return p, e, true
		}
	}
	return 0, 0, false
}
