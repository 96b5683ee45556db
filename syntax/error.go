// Package syntax turns raw pattern text into the postfix token sequence
// consumed by the NFA compiler.
//
// The pipeline has two stages. Tokenize expands escapes and character classes
// and inserts explicit concatenation operators; ToPostfix applies the
// shunting-yard rewrite so the result can be evaluated with a single
// left-to-right stack pass. Parse runs both.
package syntax

import (
	"errors"
	"fmt"
)

// ErrInvalidPattern is the sentinel for every pattern compilation failure:
// unbalanced grouping, a dangling operator, an unterminated class or escape.
// Errors returned from this package and from the NFA compiler unwrap to it.
var ErrInvalidPattern = errors.New("invalid pattern")

// Error describes where and why a pattern failed to compile.
// Pos is a byte offset into Pattern, or -1 when no single position applies
// (for example an unclosed group detected at end of input).
type Error struct {
	Pattern string
	Pos     int
	Msg     string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("syntax: %s at offset %d in %q", e.Msg, e.Pos, e.Pattern)
	}
	return fmt.Sprintf("syntax: %s in %q", e.Msg, e.Pattern)
}

// Unwrap returns ErrInvalidPattern so callers can test with errors.Is.
func (e *Error) Unwrap() error {
	return ErrInvalidPattern
}
