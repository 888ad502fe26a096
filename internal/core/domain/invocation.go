package domain

import (
	"strconv"
	"strings"
)

// Invocation is a single delegated program run.
type Invocation struct {
	Program string
	Args    []string
}

// String quotes the program and every argument, e.g. "cargo" "build" "--release".
func (i Invocation) String() string {
	parts := make([]string, 0, len(i.Args)+1)
	parts = append(parts, strconv.Quote(i.Program))
	for _, arg := range i.Args {
		parts = append(parts, strconv.Quote(arg))
	}
	return strings.Join(parts, " ")
}

// Trace is the line emitted to stderr before the invocation runs.
func (i Invocation) Trace() string {
	return "Running: " + i.String()
}
