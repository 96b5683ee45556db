package syntax

import "fmt"

// Kind identifies the variant of a token.
//
// Literal tokens carry their character in Token.Ch; every other kind is a
// structural operator or grouping marker. Because a literal is a distinct
// variant rather than a specially-marked character, an escaped metacharacter
// (`\+`, `\(`, ...) stays unambiguously literal through postfix conversion and
// NFA construction.
type Kind uint8

const (
	// KindLiteral is a single input character, including escaped
	// metacharacters and characters produced by class expansion.
	KindLiteral Kind = iota

	// KindConcat is the explicit concatenation operator inserted by the
	// tokenizer between adjacent operands.
	KindConcat

	// KindUnion is the alternation operator `|`.
	KindUnion

	// KindStar is the zero-or-more quantifier `*`.
	KindStar

	// KindPlus is the one-or-more quantifier `+`.
	KindPlus

	// KindQuest is the zero-or-one quantifier `?`.
	KindQuest

	// KindLParen and KindRParen are grouping markers. They delimit operator
	// scope during postfix conversion and never reach the NFA builder.
	KindLParen
	KindRParen
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindConcat:
		return "concat"
	case KindUnion:
		return "|"
	case KindStar:
		return "*"
	case KindPlus:
		return "+"
	case KindQuest:
		return "?"
	case KindLParen:
		return "("
	case KindRParen:
		return ")"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// IsQuantifier reports whether the kind is a unary postfix quantifier.
func (k Kind) IsQuantifier() bool {
	return k == KindStar || k == KindPlus || k == KindQuest
}

// Token is one element of the pre-processed pattern stream.
type Token struct {
	Kind Kind
	Ch   byte // valid only for KindLiteral
}

// Literal returns a literal token for c.
func Literal(c byte) Token {
	return Token{Kind: KindLiteral, Ch: c}
}

// Operator returns an operator or grouping token of the given kind.
func Operator(k Kind) Token {
	return Token{Kind: k}
}

// String returns a human-readable representation of the token.
func (t Token) String() string {
	if t.Kind == KindLiteral {
		return fmt.Sprintf("%q", t.Ch)
	}
	return t.Kind.String()
}

// startsOperand reports whether a token of kind k can begin an operand.
// Used by the tokenizer to decide where explicit concatenation goes.
func startsOperand(k Kind) bool {
	return k == KindLiteral || k == KindLParen
}

// endsOperand reports whether a token of kind k can end an operand.
func endsOperand(k Kind) bool {
	return k == KindLiteral || k == KindRParen || k.IsQuantifier()
}
