package syntax

// Metacharacters are the characters with structural meaning in a pattern.
// Escaping any of them yields a literal token for that exact character.
// Note `.` is in this set only for symmetry with common regex dialects: the
// engine already treats an unescaped `.` as an ordinary literal.
const Metacharacters = `.-+*?()[]|`

// aliasItems returns the class items behind the \d, \w and \s shorthand
// aliases. ok is false for any other character.
func aliasItems(c byte) (items []ClassItem, ok bool) {
	switch c {
	case 'd':
		return []ClassItem{{'0', '9'}}, true
	case 'w':
		return []ClassItem{{'a', 'z'}, {'A', 'Z'}, {'0', '9'}, {'_', '_'}}, true
	case 's':
		return []ClassItem{
			{' ', ' '}, {'\t', '\t'}, {'\n', '\n'},
			{'\r', '\r'}, {'\f', '\f'}, {'\v', '\v'},
		}, true
	}
	return nil, false
}

// ExpandEscape maps the character following an escape marker to its token
// expansion. Shorthand classes expand through the class builder; everything
// else, metacharacter or not, collapses to a single literal token. The
// expansion is a pure function of c; the tokenizer is responsible for
// rejecting a trailing escape marker.
func ExpandEscape(c byte) []Token {
	if items, ok := aliasItems(c); ok {
		return ClassTokens(items)
	}
	return []Token{Literal(c)}
}
