package rematch

// Match is the immutable result of a successful Match or Search call: a
// half-open span [Start, End) over the searched word, plus a reference to the
// word itself so the matched text can be recovered.
//
// The word is stored by reference, not copied; callers that mutate the
// original buffer after searching should copy the match text first.
type Match struct {
	start    int
	end      int
	haystack []byte
}

// NewMatch creates a Match over haystack with the half-open span [start, end).
func NewMatch(start, end int, haystack []byte) *Match {
	return &Match{start: start, end: end, haystack: haystack}
}

// Start returns the inclusive start offset of the match.
func (m *Match) Start() int {
	return m.start
}

// End returns the exclusive end offset of the match.
func (m *Match) End() int {
	return m.end
}

// Span returns the (start, end) offsets as a pair.
func (m *Match) Span() (start, end int) {
	return m.start, m.end
}

// Len returns the length of the match.
func (m *Match) Len() int {
	return m.end - m.start
}

// IsEmpty reports whether the match has zero length. Patterns like `a*` can
// match without consuming input.
func (m *Match) IsEmpty() bool {
	return m.start == m.end
}

// Bytes returns the matched bytes as a view into the searched word.
func (m *Match) Bytes() []byte {
	if m.start < 0 || m.end > len(m.haystack) || m.start > m.end {
		return nil
	}
	return m.haystack[m.start:m.end]
}

// String returns the matched text.
func (m *Match) String() string {
	return string(m.Bytes())
}
