// Package prefilter locates candidate match start positions ahead of full
// automaton verification.
//
// A prefilter is built from the literal prefixes extracted by the literal
// package. Every match of the pattern begins with one of those prefixes, so
// scanning for the prefixes with an Aho-Corasick automaton finds, in one
// pass, the earliest position where a match can possibly start. The search
// engine verifies each candidate with the NFA — unless the prefix set is
// complete, in which case the candidate is the match.
package prefilter

import (
	"bytes"
	"sort"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/rematch/literal"
)

// Prefilter reports candidate start positions for a pattern's matches.
type Prefilter interface {
	// Find returns the earliest candidate position at or after start, or -1
	// if none exists. A candidate only means a required prefix literal
	// begins there; the caller must verify with the full automaton unless
	// IsComplete reports true.
	Find(haystack []byte, start int) int

	// IsComplete reports whether a candidate is already a full match: the
	// literal set is the pattern's entire language, so no automaton
	// verification is needed.
	IsComplete() bool

	// LongestAt returns the length of the longest set literal occurring at
	// pos, or -1 if none does. Meaningful only when IsComplete reports
	// true; the caller uses it to pick the longest match at the winning
	// start position.
	LongestAt(haystack []byte, pos int) int
}

// FromSeq builds a prefilter from an extracted literal sequence.
// It returns nil when the sequence provides no usable acceleration: an
// unknown or empty set, a set containing the empty string (which occurs
// everywhere), or an automaton build failure.
func FromSeq(seq *literal.Seq) Prefilter {
	if seq == nil || !seq.Usable() {
		return nil
	}

	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}

	// Longest first, so LongestAt can stop at the first hit.
	lits := append([][]byte{}, seq.Literals()...)
	sort.SliceStable(lits, func(i, j int) bool { return len(lits[i]) > len(lits[j]) })

	return &acPrefilter{
		auto:     auto,
		lits:     lits,
		complete: seq.IsComplete(),
	}
}

// acPrefilter drives a multi-literal Aho-Corasick automaton.
type acPrefilter struct {
	auto     *ahocorasick.Automaton
	lits     [][]byte
	complete bool
}

func (p *acPrefilter) Find(haystack []byte, start int) int {
	if start < 0 {
		start = 0
	}
	if start >= len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	// The automaton reports the occurrence with the earliest END, which is
	// not always the earliest start: a longer literal can begin before
	// m.Start yet end at or after m.End (for {b, abc} in "abc", b at [1,2)
	// fires before abc at [0,3)). Every occurrence at or after start ends at
	// or after m.End, so an earlier-starting one satisfies
	// pos >= m.End - len(longest literal); probe exactly that window.
	lo := m.End - len(p.lits[0])
	if lo < start {
		lo = start
	}
	for pos := lo; pos < m.Start; pos++ {
		if p.LongestAt(haystack, pos) > 0 {
			return pos
		}
	}
	return m.Start
}

func (p *acPrefilter) IsComplete() bool {
	return p.complete
}

func (p *acPrefilter) LongestAt(haystack []byte, pos int) int {
	if pos < 0 || pos > len(haystack) {
		return -1
	}
	for _, lit := range p.lits {
		if bytes.HasPrefix(haystack[pos:], lit) {
			return len(lit)
		}
	}
	return -1
}
