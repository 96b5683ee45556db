package syntax

// Operator precedence, low to high: union, concatenation, quantifiers.
// All three quantifiers share one level; they are strictly unary postfix, so
// no associativity question arises. Grouping markers carry no precedence;
// they delimit scope on the operator stack.
func precedence(k Kind) int {
	switch k {
	case KindUnion:
		return 0
	case KindConcat:
		return 1
	default:
		return 2
	}
}

// ToPostfix rewrites a token stream into postfix order with the classic
// shunting-yard algorithm. Literal tokens pass straight through; an operator
// first pops every stacked operator of greater or equal precedence (stopping
// at an open paren); `)` pops until its matching `(`, and both markers are
// discarded. The result is a flat sequence with no grouping, ready for one
// left-to-right stack evaluation.
//
// Unbalanced grouping in either direction is reported as an *Error unwrapping
// to ErrInvalidPattern.
func ToPostfix(pattern string, tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	var stack []Token

	for _, tok := range tokens {
		switch tok.Kind {
		case KindLiteral:
			out = append(out, tok)
		case KindLParen:
			stack = append(stack, tok)
		case KindRParen:
			for {
				if len(stack) == 0 {
					return nil, &Error{Pattern: pattern, Pos: -1, Msg: "unbalanced closing parenthesis"}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == KindLParen {
					break
				}
				out = append(out, top)
			}
		default:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind == KindLParen || precedence(top.Kind) < precedence(tok.Kind) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == KindLParen {
			return nil, &Error{Pattern: pattern, Pos: -1, Msg: "missing closing parenthesis"}
		}
		out = append(out, top)
	}
	return out, nil
}

// Parse runs the full front end: Tokenize followed by ToPostfix.
func Parse(pattern string) ([]Token, error) {
	tokens, err := Tokenize(pattern)
	if err != nil {
		return nil, err
	}
	return ToPostfix(pattern, tokens)
}
