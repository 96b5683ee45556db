// Package literal extracts literal prefixes from compiled pattern token
// sequences.
//
// A prefix sequence answers "every match of this pattern begins with one of
// these byte strings at its start position". The prefilter package turns a
// usable sequence into a fast candidate-position scan, leaving the automaton
// to verify only at candidates.
package literal

import (
	"bytes"
	"fmt"
	"sort"
)

// Seq is a set of literal prefixes extracted from a pattern.
//
// When Complete reports true the literals are not merely prefixes but the
// pattern's entire language: the pattern matches exactly the strings in the
// set. An empty, unknown or empty-string-containing sequence provides no
// acceleration; Usable reports that distinction.
type Seq struct {
	lits     [][]byte
	complete bool
}

func newSeq(lits [][]byte, complete bool) *Seq {
	sort.Slice(lits, func(i, j int) bool { return bytes.Compare(lits[i], lits[j]) < 0 })
	return &Seq{lits: lits, complete: complete}
}

// Len returns the number of literals.
func (s *Seq) Len() int {
	return len(s.lits)
}

// Get returns the i-th literal in sorted order.
func (s *Seq) Get(i int) []byte {
	return s.lits[i]
}

// Literals returns all literals in sorted order.
// The slice aliases internal storage and must not be modified.
func (s *Seq) Literals() [][]byte {
	return s.lits
}

// IsEmpty reports whether the sequence holds no literals.
func (s *Seq) IsEmpty() bool {
	return len(s.lits) == 0
}

// IsComplete reports whether the literals are the pattern's whole language.
func (s *Seq) IsComplete() bool {
	return s.complete
}

// HasEmpty reports whether the empty string is among the literals. An empty
// literal occurs at every position, so such a sequence cannot prefilter.
func (s *Seq) HasEmpty() bool {
	for _, l := range s.lits {
		if len(l) == 0 {
			return true
		}
	}
	return false
}

// Usable reports whether the sequence can drive a prefilter: at least one
// literal, none of them empty.
func (s *Seq) Usable() bool {
	return !s.IsEmpty() && !s.HasEmpty()
}

// String returns a human-readable representation of the sequence.
func (s *Seq) String() string {
	return fmt.Sprintf("Seq{lits: %q, complete: %v}", s.lits, s.complete)
}
