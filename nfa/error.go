// Package nfa builds Thompson NFAs from postfix token sequences and runs them
// by epsilon-closure simulation.
//
// The Compiler evaluates a postfix sequence produced by the syntax package
// into an arena of states; the resulting NFA answers whole-string matches and
// leftmost substring searches without ever mutating the compiled graph.
package nfa

import (
	"errors"
	"fmt"
)

// ErrTooComplex indicates compilation exceeded the configured state budget.
var ErrTooComplex = errors.New("pattern too complex")

// CompileError wraps an NFA compilation failure with the offending pattern.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("nfa: compiling %q: %v", e.Pattern, e.Err)
	}
	return fmt.Sprintf("nfa: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// BuildError reports a malformed state graph handed to Builder.Build.
type BuildError struct {
	Msg   string
	State StateID
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.State != InvalidState {
		return fmt.Sprintf("nfa: build error at state %d: %s", e.State, e.Msg)
	}
	return fmt.Sprintf("nfa: build error: %s", e.Msg)
}
