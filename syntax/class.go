package syntax

// ClassItem is one element of a character class body: a single character when
// Lo == Hi, otherwise the inclusive range [Lo, Hi].
type ClassItem struct {
	Lo, Hi byte
}

// ClassTokens builds the canonical token expansion of a character class: a
// parenthesized union of every distinct member character in ascending order.
//
// Deduplication and sorting make the expansion a function of the effective
// character set rather than its spelling, so `[a-c]` and `[cba]` compile to
// structurally identical automata. An empty item list yields the empty union
// `()`, whose automaton has no literal transitions and never consumes a
// symbol.
func ClassTokens(items []ClassItem) []Token {
	var member [256]bool
	n := 0
	for _, it := range items {
		for c := int(it.Lo); c <= int(it.Hi); c++ {
			if !member[c] {
				member[c] = true
				n++
			}
		}
	}

	out := make([]Token, 0, 2*n+1)
	out = append(out, Operator(KindLParen))
	first := true
	for c := 0; c < 256; c++ {
		if !member[c] {
			continue
		}
		if !first {
			out = append(out, Operator(KindUnion))
		}
		out = append(out, Literal(byte(c)))
		first = false
	}
	return append(out, Operator(KindRParen))
}
