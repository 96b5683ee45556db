package syntax

import (
	"errors"
	"testing"
)

func TestToPostfix(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"", ""},
		{"a", `'a'`},
		{"ab", `'a' 'b' concat`},
		{"abc", `'a' 'b' concat 'c' concat`},
		{"a|b", `'a' 'b' |`},

		// Concatenation binds tighter than union.
		{"a|bc", `'a' 'b' 'c' concat |`},
		{"ab|c", `'a' 'b' concat 'c' |`},

		// Quantifiers bind tighter than concatenation.
		{"ab*", `'a' 'b' * concat`},
		{"a*b", `'a' * 'b' concat`},
		{"a|b*", `'a' 'b' * |`},

		// Grouping overrides precedence.
		{"(a|b)c", `'a' 'b' | 'c' concat`},
		{"a(b|c)", `'a' 'b' 'c' | concat`},
		{"(ab)+", `'a' 'b' concat +`},
		{"(ab)+c", `'a' 'b' concat + 'c' concat`},
		{"((a))", `'a'`},
		{"()", ""},

		{"a+b?", `'a' + 'b' ? concat`},
		{"[ab]c", `'a' 'b' | 'c' concat`},
		{"a|b|c", `'a' 'b' | 'c' |`},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			toks, err := Tokenize(tt.pattern)
			if err != nil {
				t.Fatalf("Tokenize(%q): %v", tt.pattern, err)
			}
			postfix, err := ToPostfix(tt.pattern, toks)
			if err != nil {
				t.Fatalf("ToPostfix(%q): %v", tt.pattern, err)
			}
			if got := fmtTokens(postfix); got != tt.want {
				t.Errorf("ToPostfix(%q) = %s, want %s", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestToPostfix_UnbalancedParens(t *testing.T) {
	tests := []string{
		"(",
		"(a",
		"((a)",
		"a)",
		")a",
		"a)b",
		"(a))",
	}

	for _, pattern := range tests {
		t.Run(pattern, func(t *testing.T) {
			_, err := Parse(pattern)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", pattern)
			}
			if !errors.Is(err, ErrInvalidPattern) {
				t.Errorf("error %v does not unwrap to ErrInvalidPattern", err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	// Parse is Tokenize + ToPostfix; one end-to-end case with every feature.
	postfix, err := Parse(`(\d|x)+\.`)
	if err != nil {
		t.Fatal(err)
	}
	want := `'0' '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' | 'x' | + '.' concat`
	if got := fmtTokens(postfix); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
