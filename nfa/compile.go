package nfa

import (
	"fmt"

	"github.com/coregx/rematch/syntax"
)

// DefaultMaxStates bounds the arena size during compilation. Character class
// expansion is the only multiplier in this syntax, so the default is generous.
const DefaultMaxStates = 10000

// CompilerConfig configures NFA compilation.
type CompilerConfig struct {
	// MaxStates caps the number of states; 0 means DefaultMaxStates.
	MaxStates int
}

// Compiler compiles postfix token sequences into Thompson NFAs.
type Compiler struct {
	config  CompilerConfig
	builder *Builder
	pattern string
}

// NewCompiler creates a compiler with the given configuration.
func NewCompiler(config CompilerConfig) *Compiler {
	if config.MaxStates == 0 {
		config.MaxStates = DefaultMaxStates
	}
	return &Compiler{config: config}
}

// NewDefaultCompiler creates a compiler with default configuration.
func NewDefaultCompiler() *Compiler {
	return NewCompiler(CompilerConfig{})
}

// Compile parses a pattern and compiles it into an NFA.
func (c *Compiler) Compile(pattern string) (*NFA, error) {
	postfix, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return c.CompilePostfix(pattern, postfix)
}

// frag is an under-construction automaton piece. While unembedded, its end
// state is the fragment's sole accepting state with no outgoing edges; a
// combinator that embeds the fragment wires the end and clears its accept
// flag, so the enclosing fragment's end becomes the only acceptor again.
type frag struct {
	start, end StateID
}

// CompilePostfix evaluates a postfix token sequence with a fragment stack,
// building one Thompson fragment per token. An empty sequence compiles to the
// trivial epsilon fragment that matches only the empty string.
//
// An operator that finds too few operands on the stack reports a
// CompileError unwrapping to syntax.ErrInvalidPattern.
func (c *Compiler) CompilePostfix(pattern string, postfix []syntax.Token) (*NFA, error) {
	c.builder = NewBuilder()
	c.pattern = pattern

	var stack []frag
	pop := func() (frag, bool) {
		if len(stack) == 0 {
			return frag{}, false
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, true
	}
	underflow := func(tok syntax.Token) error {
		return &CompileError{
			Pattern: pattern,
			Err:     fmt.Errorf("operator %s lacks an operand: %w", tok.Kind, syntax.ErrInvalidPattern),
		}
	}

	for _, tok := range postfix {
		switch tok.Kind {
		case syntax.KindLiteral:
			stack = append(stack, c.literal(tok.Ch))
		case syntax.KindStar, syntax.KindPlus, syntax.KindQuest:
			f, ok := pop()
			if !ok {
				return nil, underflow(tok)
			}
			switch tok.Kind {
			case syntax.KindStar:
				stack = append(stack, c.star(f))
			case syntax.KindPlus:
				stack = append(stack, c.plus(f))
			default:
				stack = append(stack, c.quest(f))
			}
		case syntax.KindConcat, syntax.KindUnion:
			right, ok := pop()
			if !ok {
				return nil, underflow(tok)
			}
			left, ok := pop()
			if !ok {
				return nil, underflow(tok)
			}
			if tok.Kind == syntax.KindConcat {
				stack = append(stack, c.concat(left, right))
			} else {
				stack = append(stack, c.union(left, right))
			}
		default:
			// Grouping markers never survive postfix conversion.
			return nil, &CompileError{
				Pattern: pattern,
				Err:     fmt.Errorf("unexpected %s token: %w", tok.Kind, syntax.ErrInvalidPattern),
			}
		}

		if c.builder.Len() > c.config.MaxStates {
			return nil, &CompileError{Pattern: pattern, Err: ErrTooComplex}
		}
	}

	var top frag
	switch len(stack) {
	case 0:
		top = c.epsilon()
	case 1:
		top = stack[0]
	default:
		return nil, &CompileError{
			Pattern: pattern,
			Err:     fmt.Errorf("dangling operand: %w", syntax.ErrInvalidPattern),
		}
	}

	n, err := c.builder.Build(top.start)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	return n, nil
}

// literal builds the two-state fragment start --c--> end.
func (c *Compiler) literal(ch byte) frag {
	start := c.builder.AddState()
	end := c.builder.AddState()
	c.builder.SetByteEdge(start, ch, end)
	c.builder.SetAccept(end, true)
	return frag{start, end}
}

// epsilon builds the fragment matching only the empty string.
func (c *Compiler) epsilon() frag {
	start := c.builder.AddState()
	end := c.builder.AddState()
	c.builder.AddEpsilonEdge(start, end)
	c.builder.SetAccept(end, true)
	return frag{start, end}
}

// star wraps f in a zero-or-more loop: the new start may skip f entirely, and
// f's end loops back for repetition or exits.
func (c *Compiler) star(f frag) frag {
	start := c.builder.AddState()
	end := c.builder.AddState()
	c.builder.AddEpsilonEdge(start, f.start)
	c.builder.AddEpsilonEdge(start, end)
	c.builder.AddEpsilonEdge(f.end, f.start)
	c.builder.AddEpsilonEdge(f.end, end)
	c.builder.SetAccept(f.end, false)
	c.builder.SetAccept(end, true)
	return frag{start, end}
}

// plus is star without the skip edge: at least one pass through f.
func (c *Compiler) plus(f frag) frag {
	start := c.builder.AddState()
	end := c.builder.AddState()
	c.builder.AddEpsilonEdge(start, f.start)
	c.builder.AddEpsilonEdge(f.end, f.start)
	c.builder.AddEpsilonEdge(f.end, end)
	c.builder.SetAccept(f.end, false)
	c.builder.SetAccept(end, true)
	return frag{start, end}
}

// quest allows zero or one pass through f; no back edge.
func (c *Compiler) quest(f frag) frag {
	start := c.builder.AddState()
	end := c.builder.AddState()
	c.builder.AddEpsilonEdge(start, f.start)
	c.builder.AddEpsilonEdge(start, end)
	c.builder.AddEpsilonEdge(f.end, end)
	c.builder.SetAccept(f.end, false)
	c.builder.SetAccept(end, true)
	return frag{start, end}
}

// concat chains left into right without allocating new states.
func (c *Compiler) concat(left, right frag) frag {
	c.builder.AddEpsilonEdge(left.end, right.start)
	c.builder.SetAccept(left.end, false)
	return frag{left.start, right.end}
}

// union gives both branches a common start and a common end.
func (c *Compiler) union(left, right frag) frag {
	start := c.builder.AddState()
	end := c.builder.AddState()
	c.builder.AddEpsilonEdge(start, left.start)
	c.builder.AddEpsilonEdge(start, right.start)
	c.builder.AddEpsilonEdge(left.end, end)
	c.builder.AddEpsilonEdge(right.end, end)
	c.builder.SetAccept(left.end, false)
	c.builder.SetAccept(right.end, false)
	c.builder.SetAccept(end, true)
	return frag{start, end}
}
