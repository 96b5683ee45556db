package literal

import "github.com/coregx/rematch/syntax"

// Config bounds extraction so alternation-heavy patterns cannot blow up the
// prefix set.
type Config struct {
	// MaxLiterals caps the number of prefixes tracked at any point.
	MaxLiterals int

	// MaxLiteralLen caps individual prefix length; longer prefixes are
	// truncated, which keeps them valid prefixes but forfeits completeness.
	MaxLiteralLen int
}

// DefaultConfig returns the default extraction limits.
func DefaultConfig() Config {
	return Config{
		MaxLiterals:   32,
		MaxLiteralLen: 16,
	}
}

// Extractor derives literal prefix sequences from postfix token sequences.
type Extractor struct {
	config Config
}

// New creates an extractor with the given configuration.
func New(config Config) *Extractor {
	if config.MaxLiterals == 0 {
		config.MaxLiterals = DefaultConfig().MaxLiterals
	}
	if config.MaxLiteralLen == 0 {
		config.MaxLiteralLen = DefaultConfig().MaxLiteralLen
	}
	return &Extractor{config: config}
}

// Extract runs extraction with the default configuration.
func Extract(postfix []syntax.Token) *Seq {
	return New(DefaultConfig()).Extract(postfix)
}

// frame is the abstract value computed per fragment during the postfix walk.
//
// Invariant: when known, every match of the fragment begins, at its start
// position, with one of lits; when additionally exact, lits is the
// fragment's entire (finite) language. known=false means no information,
// which poisons everything built on top of it except a concatenation that
// already has an exact head.
type frame struct {
	known bool
	exact bool
	lits  [][]byte
}

func unknown() frame {
	return frame{}
}

// emptyOnly is the frame for fragments that may match the empty string
// without a trackable literal set: the empty string is the only safe prefix.
func emptyOnly() frame {
	return frame{known: true, exact: false, lits: [][]byte{{}}}
}

// Extract evaluates the postfix sequence with a stack of frames, mirroring
// the NFA compiler's fragment stack. Malformed input (operator underflow)
// yields an unusable sequence rather than an error: extraction is purely an
// optimization and runs only on sequences the compiler has already accepted.
func (e *Extractor) Extract(postfix []syntax.Token) *Seq {
	var stack []frame
	pop := func() (frame, bool) {
		if len(stack) == 0 {
			return frame{}, false
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, true
	}

	for _, tok := range postfix {
		switch tok.Kind {
		case syntax.KindLiteral:
			stack = append(stack, frame{known: true, exact: true, lits: [][]byte{{tok.Ch}}})
		case syntax.KindStar:
			if _, ok := pop(); !ok {
				return newSeq(nil, false)
			}
			stack = append(stack, emptyOnly())
		case syntax.KindPlus:
			f, ok := pop()
			if !ok {
				return newSeq(nil, false)
			}
			stack = append(stack, e.plus(f))
		case syntax.KindQuest:
			f, ok := pop()
			if !ok {
				return newSeq(nil, false)
			}
			stack = append(stack, e.quest(f))
		case syntax.KindConcat, syntax.KindUnion:
			right, ok := pop()
			if !ok {
				return newSeq(nil, false)
			}
			left, ok := pop()
			if !ok {
				return newSeq(nil, false)
			}
			if tok.Kind == syntax.KindConcat {
				stack = append(stack, e.concat(left, right))
			} else {
				stack = append(stack, e.union(left, right))
			}
		default:
			return newSeq(nil, false)
		}
	}

	switch len(stack) {
	case 0:
		// Empty pattern: matches exactly the empty string.
		return newSeq([][]byte{{}}, true)
	case 1:
		top := stack[0]
		if !top.known {
			return newSeq(nil, false)
		}
		return newSeq(top.lits, top.exact)
	default:
		return newSeq(nil, false)
	}
}

func (e *Extractor) plus(f frame) frame {
	if !f.known {
		return unknown()
	}
	// One mandatory pass through f, so f's prefixes still apply.
	return frame{known: true, exact: false, lits: f.lits}
}

func (e *Extractor) quest(f frame) frame {
	if !f.known {
		return emptyOnly()
	}
	lits := append(append([][]byte{}, f.lits...), []byte{})
	if len(lits) > e.config.MaxLiterals {
		return emptyOnly()
	}
	// f? matches exactly f's language plus the empty string.
	return frame{known: true, exact: f.exact, lits: lits}
}

func (e *Extractor) concat(left, right frame) frame {
	if !left.known {
		return unknown()
	}
	if !left.exact || !right.known {
		// The head already constrains every match start; anything after an
		// inexact head cannot refine the prefixes.
		return frame{known: true, exact: false, lits: left.lits}
	}

	cross := make([][]byte, 0, len(left.lits)*len(right.lits))
	truncated := false
	for _, l := range left.lits {
		for _, r := range right.lits {
			lit := make([]byte, 0, len(l)+len(r))
			lit = append(append(lit, l...), r...)
			if len(lit) > e.config.MaxLiteralLen {
				lit = lit[:e.config.MaxLiteralLen]
				truncated = true
			}
			cross = append(cross, lit)
		}
	}
	cross = dedupe(cross)
	if len(cross) > e.config.MaxLiterals {
		return frame{known: true, exact: false, lits: left.lits}
	}
	return frame{known: true, exact: right.exact && !truncated, lits: cross}
}

func (e *Extractor) union(left, right frame) frame {
	if !left.known || !right.known {
		// Prefixes must cover every branch; dropping one is unsound.
		return unknown()
	}
	merged := dedupe(append(append([][]byte{}, left.lits...), right.lits...))
	if len(merged) > e.config.MaxLiterals {
		return unknown()
	}
	return frame{known: true, exact: left.exact && right.exact, lits: merged}
}

func dedupe(lits [][]byte) [][]byte {
	seen := make(map[string]struct{}, len(lits))
	out := lits[:0]
	for _, l := range lits {
		if _, dup := seen[string(l)]; dup {
			continue
		}
		seen[string(l)] = struct{}{}
		out = append(out, l)
	}
	return out
}
