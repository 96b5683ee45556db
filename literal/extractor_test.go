package literal

import (
	"reflect"
	"testing"

	"github.com/coregx/rematch/syntax"
)

func extract(t *testing.T, pattern string) *Seq {
	t.Helper()
	postfix, err := syntax.Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q): %v", pattern, err)
	}
	return Extract(postfix)
}

func litStrings(s *Seq) []string {
	out := make([]string, s.Len())
	for i := range out {
		out[i] = string(s.Get(i))
	}
	return out
}

func TestExtract(t *testing.T) {
	tests := []struct {
		pattern  string
		want     []string // sorted order
		complete bool
		usable   bool
	}{
		// Finite languages extract completely.
		{"foo", []string{"foo"}, true, true},
		{"foo|bar", []string{"bar", "foo"}, true, true},
		{"[ab]c", []string{"ac", "bc"}, true, true},
		{"(a|b)(c|d)", []string{"ac", "ad", "bc", "bd"}, true, true},
		{`\d`, []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}, true, true},
		{"ab?", []string{"a", "ab"}, true, true},

		// Quantifiers forfeit completeness but may keep usable prefixes.
		{"a+", []string{"a"}, false, true},
		{"(ab)+", []string{"ab"}, false, true},
		{"(ab|cd)e*", []string{"ab", "cd"}, false, true},
		{"abc*", []string{"ab"}, false, true},
		{"foo.*", []string{"foo"}, false, true},

		// An inexact head still pins the match start.
		{"a+b", []string{"a"}, false, true},
		{"(a|b)+x", []string{"a", "b"}, false, true},

		// Patterns that may match the empty string cannot prefilter.
		{"a*", []string{""}, false, false},
		{"a*b", []string{""}, false, false},
		{"a?", []string{"", "a"}, true, false},
		{"(a|b)*", []string{""}, false, false},
		{"", []string{""}, true, false},
		{"()", []string{""}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			seq := extract(t, tt.pattern)
			if got := litStrings(seq); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("literals = %q, want %q", got, tt.want)
			}
			if seq.IsComplete() != tt.complete {
				t.Errorf("IsComplete = %v, want %v", seq.IsComplete(), tt.complete)
			}
			if seq.Usable() != tt.usable {
				t.Errorf("Usable = %v, want %v", seq.Usable(), tt.usable)
			}
		})
	}
}

func TestExtract_UnionNeverDropsABranch(t *testing.T) {
	// A prefix set must cover every branch of a union; when one branch is
	// untrackable the whole union is unknown, not partially covered.
	seq := extract(t, "foo|x*")
	if seq.Usable() {
		t.Errorf("Extract(foo|x*) = %v, want unusable", seq)
	}
}

func TestExtract_LiteralOverflow(t *testing.T) {
	// The cross product doubles per factor and passes MaxLiterals on the
	// last concat; the head's prefixes survive as an inexact set.
	e := New(Config{MaxLiterals: 4, MaxLiteralLen: 16})
	postfix, err := syntax.Parse("(a|b)(c|d)(e|f)")
	if err != nil {
		t.Fatal(err)
	}
	seq := e.Extract(postfix)
	if seq.IsComplete() {
		t.Error("overflowed extraction still claims completeness")
	}
	if !seq.Usable() {
		t.Errorf("seq = %v, want usable head prefixes", seq)
	}
	for _, l := range seq.Literals() {
		if len(l) == 0 {
			t.Fatalf("overflowed extraction produced an empty literal: %v", seq)
		}
	}
}

func TestExtract_LengthTruncation(t *testing.T) {
	e := New(Config{MaxLiterals: 32, MaxLiteralLen: 4})
	postfix, err := syntax.Parse("abcdefgh")
	if err != nil {
		t.Fatal(err)
	}
	seq := e.Extract(postfix)
	want := []string{"abcd"}
	if got := litStrings(seq); !reflect.DeepEqual(got, want) {
		t.Errorf("literals = %q, want %q", got, want)
	}
	// A truncated literal is still a valid prefix but no longer the whole
	// language.
	if seq.IsComplete() {
		t.Error("truncated extraction still claims completeness")
	}
	if !seq.Usable() {
		t.Error("truncated extraction not usable")
	}
}

func TestExtract_ClassOverflow(t *testing.T) {
	// \w has 63 members, past the default MaxLiterals.
	seq := extract(t, `\w`)
	if seq.Usable() {
		t.Errorf("Extract(\\w) = %v, want unusable", seq)
	}
}
