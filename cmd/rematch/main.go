// Command rematch compiles a pattern and reports where it occurs in each
// input string.
//
// Usage:
//
//	rematch PATTERN [STRING ...]
//
// With no strings on the command line, input lines are read from stdin. For
// each input the first match is printed as `match [start,end) "text"`, or
// `no match`.
//
// Exit status: 0 if any input matched, 1 if none did, 64 for a malformed
// pattern (the historical harness convention for usage errors).
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/coregx/rematch"
)

const (
	exitMatch   = 0
	exitNoMatch = 1
	exitUsage   = 64
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, in io.Reader, out, errw io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errw, "usage: rematch PATTERN [STRING ...]")
		return exitUsage
	}

	re, err := rematch.Compile(args[0])
	if err != nil {
		fmt.Fprintf(errw, "rematch: %v\n", err)
		return exitUsage
	}

	matched := false
	report := func(input string) {
		if m := re.SearchString(input); m != nil {
			matched = true
			fmt.Fprintf(out, "match [%d,%d) %q\n", m.Start(), m.End(), m.String())
		} else {
			fmt.Fprintln(out, "no match")
		}
	}

	if inputs := args[1:]; len(inputs) > 0 {
		for _, input := range inputs {
			report(input)
		}
	} else {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			report(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(errw, "rematch: reading input: %v\n", err)
			return exitUsage
		}
	}

	if matched {
		return exitMatch
	}
	return exitNoMatch
}
