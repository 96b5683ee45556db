package syntax

import "fmt"

// Tokenize pre-processes a raw pattern into an explicit token stream: escapes
// and character classes are expanded in place and implicit concatenation is
// made explicit, so the only remaining structure is operators, grouping and
// literals.
//
// Tokenize fails on a trailing escape marker or an unterminated character
// class; the returned error unwraps to ErrInvalidPattern.
func Tokenize(pattern string) ([]Token, error) {
	t := &tokenizer{pattern: pattern}
	if err := t.run(); err != nil {
		return nil, err
	}
	return t.out, nil
}

type tokenizer struct {
	pattern string
	pos     int
	out     []Token
}

func (t *tokenizer) errorf(pos int, format string, args ...any) error {
	return &Error{Pattern: t.pattern, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// emit appends tokens, inserting an explicit concatenation operator whenever
// the previous token can end an operand and the incoming one can start one.
// Expansions pass through the same path, which is what keeps a class emitted
// after a literal correctly concatenated while the union inside the class
// expansion stays concat-free.
func (t *tokenizer) emit(toks ...Token) {
	for _, tok := range toks {
		if startsOperand(tok.Kind) && len(t.out) > 0 && endsOperand(t.out[len(t.out)-1].Kind) {
			t.out = append(t.out, Operator(KindConcat))
		}
		t.out = append(t.out, tok)
	}
}

func (t *tokenizer) run() error {
	for t.pos < len(t.pattern) {
		c := t.pattern[t.pos]
		switch c {
		case '\\':
			if t.pos+1 >= len(t.pattern) {
				return t.errorf(t.pos, "trailing escape")
			}
			t.emit(ExpandEscape(t.pattern[t.pos+1])...)
			t.pos += 2
		case '[':
			items, next, err := t.classBody(t.pos + 1)
			if err != nil {
				return err
			}
			t.emit(ClassTokens(items)...)
			t.pos = next
		case '(':
			t.emit(Operator(KindLParen))
			t.pos++
		case ')':
			t.emit(Operator(KindRParen))
			t.pos++
		case '|':
			t.emit(Operator(KindUnion))
			t.pos++
		case '*':
			t.emit(Operator(KindStar))
			t.pos++
		case '+':
			t.emit(Operator(KindPlus))
			t.pos++
		case '?':
			t.emit(Operator(KindQuest))
			t.pos++
		default:
			// Everything else is a literal, `.` included.
			t.emit(Literal(c))
			t.pos++
		}
	}
	return nil
}

// classBody scans the body of a character class starting just past the `[`,
// returning the collected items and the position just past the closing `]`.
//
// Escapes are honored inside the class. A shorthand alias contributes its raw
// items rather than its parenthesized expansion, so its characters merge into
// the surrounding class set.
func (t *tokenizer) classBody(start int) (items []ClassItem, next int, err error) {
	i := start
	for i < len(t.pattern) {
		c := t.pattern[i]
		switch {
		case c == ']':
			return items, i + 1, nil
		case c == '\\':
			if i+1 >= len(t.pattern) {
				return nil, 0, t.errorf(i, "trailing escape in character class")
			}
			e := t.pattern[i+1]
			if alias, ok := aliasItems(e); ok {
				items = append(items, alias...)
			} else {
				items = append(items, ClassItem{Lo: e, Hi: e})
			}
			i += 2
		case i+2 < len(t.pattern) && t.pattern[i+1] == '-' && t.pattern[i+2] != ']':
			items = append(items, ClassItem{Lo: c, Hi: t.pattern[i+2]})
			i += 3
		default:
			items = append(items, ClassItem{Lo: c, Hi: c})
			i++
		}
	}
	return nil, 0, t.errorf(start-1, "missing closing bracket")
}
