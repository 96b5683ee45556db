// Package rematch implements a small regular-expression engine built on
// Thompson's construction and NFA simulation.
//
// The accepted syntax is deliberately small and NOT Perl-compatible:
//
//	literals    any character matches itself; `.` is an ordinary literal,
//	            not a wildcard
//	grouping    ( )
//	union       |
//	quantifiers * + ?  (unary postfix, applied to the preceding atom)
//	classes     [abc], [a-z], [a-zA-Z0-9_] with `-` ranges
//	escapes     \d \w \s shorthand classes; \ before any metacharacter
//	            yields that literal character
//
// There are no anchors, capture groups or back-references.
//
// Match is whole-string: the automaton must accept the entire word. Search
// finds the first start position with any match and returns the longest match
// at that position — a shorter match at an earlier position beats a longer
// match at a later one.
//
// Basic usage:
//
//	re, err := rematch.Compile(`[0-9]+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m := re.SearchString("abc123xyz")
//	fmt.Println(m.Span()) // 3 6
//	fmt.Println(m)        // "123"
//
// A compiled Regex is immutable and safe for concurrent use.
package rematch

import (
	"github.com/coregx/rematch/literal"
	"github.com/coregx/rematch/nfa"
	"github.com/coregx/rematch/prefilter"
	"github.com/coregx/rematch/syntax"
)

// ErrInvalidPattern is returned (wrapped) by Compile for unbalanced grouping,
// dangling operators and unterminated escapes or classes. Test for it with
// errors.Is.
var ErrInvalidPattern = syntax.ErrInvalidPattern

// Regex is a compiled pattern: the Thompson NFA plus an optional literal
// prefilter. Safe for concurrent Match/Search calls.
type Regex struct {
	nfa       *nfa.NFA
	prefilter prefilter.Prefilter
	pattern   string
}

// Compile compiles a pattern with the default configuration.
//
// Example:
//
//	re, err := rematch.Compile(`(ab)+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with a custom configuration.
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	postfix, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}

	compiler := nfa.NewCompiler(nfa.CompilerConfig{MaxStates: config.MaxStates})
	n, err := compiler.CompilePostfix(pattern, postfix)
	if err != nil {
		return nil, err
	}

	var pf prefilter.Prefilter
	if !config.NoPrefilter {
		pf = prefilter.FromSeq(literal.Extract(postfix))
	}

	return &Regex{nfa: n, prefilter: pf, pattern: pattern}, nil
}

// MustCompile compiles a pattern and panics if it fails. Useful for patterns
// known to be valid at compile time.
//
// Example:
//
//	var digits = rematch.MustCompile(`[0-9]+`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("rematch: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// String returns the source text the pattern was compiled from.
func (r *Regex) String() string {
	return r.pattern
}

// Match reports whether the automaton accepts word in its entirety.
// On success the span is always [0, len(word)); nil means no match — a
// well-formed pattern that does not occur is not an error.
func (r *Regex) Match(word []byte) *Match {
	if !r.nfa.FullMatch(word) {
		return nil
	}
	return NewMatch(0, len(word), word)
}

// MatchString is Match for strings.
func (r *Regex) MatchString(word string) *Match {
	return r.Match([]byte(word))
}

// Search returns the longest match at the first start position that matches
// at all, or nil if the pattern occurs nowhere in word. An empty word
// matches, with the empty span, iff the pattern accepts the empty string.
func (r *Regex) Search(word []byte) *Match {
	return r.searchAt(word, 0)
}

// SearchString is Search for strings.
func (r *Regex) SearchString(word string) *Match {
	return r.Search([]byte(word))
}

// searchAt runs Search restricted to start positions >= at, dispatching to
// the prefilter when one was built. A prefilter exists only for patterns that
// cannot match the empty string, so the candidate loop never has to handle
// zero-length matches.
func (r *Regex) searchAt(word []byte, at int) *Match {
	if pf := r.prefilter; pf != nil {
		for p := pf.Find(word, at); p != -1; p = pf.Find(word, p+1) {
			if pf.IsComplete() {
				if n := pf.LongestAt(word, p); n >= 0 {
					return NewMatch(p, p+n, word)
				}
				continue
			}
			if end, ok := r.nfa.MatchAt(word, p); ok {
				return NewMatch(p, end, word)
			}
		}
		return nil
	}

	start, end, ok := r.nfa.SearchAt(word, at)
	if !ok {
		return nil
	}
	return NewMatch(start, end, word)
}

// SearchAll returns successive non-overlapping matches of the pattern in
// word, each found with Search semantics from the end of the previous one.
// An empty match advances the scan by one to guarantee progress. If n > 0, at
// most n matches are returned; n <= 0 means all.
//
// Example:
//
//	re := rematch.MustCompile(`[0-9]+`)
//	for _, m := range re.SearchAll([]byte("a1b22c333"), -1) {
//	    fmt.Println(m.Span())
//	}
//	// 1 2
//	// 3 5
//	// 6 9
func (r *Regex) SearchAll(word []byte, n int) []*Match {
	if n == 0 {
		return nil
	}

	var matches []*Match
	pos := 0
	for pos <= len(word) {
		m := r.searchAt(word, pos)
		if m == nil {
			break
		}
		matches = append(matches, m)
		if n > 0 && len(matches) >= n {
			break
		}
		if m.End() > pos {
			pos = m.End()
		} else {
			pos++
		}
	}
	return matches
}

// SearchAllString is SearchAll for strings.
func (r *Regex) SearchAllString(word string, n int) []*Match {
	return r.SearchAll([]byte(word), n)
}

// Count returns the number of non-overlapping matches of the pattern in word.
func (r *Regex) Count(word []byte) int {
	return len(r.SearchAll(word, -1))
}

// QuoteMeta escapes every metacharacter in s; the result is a pattern
// matching exactly the literal text. `.` needs no escaping in this syntax
// but is escaped anyway, which is harmless and keeps the output portable.
func QuoteMeta(s string) string {
	const special = `\` + syntax.Metacharacters

	n := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+n)
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			buf = append(buf, '\\')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}

func isSpecial(c byte, special string) bool {
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}
