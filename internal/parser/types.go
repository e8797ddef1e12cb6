package parser

import (
	"fmt"
	"strings"
)

// Test is a single parsed test: an owned name plus the raw body text with
// every line terminator preserved. Immutable once produced.
type Test struct {
	Name string
	Body string
}

// rawLine is one body line borrowed from the input buffer: the text and the
// terminator that followed it, kept separate so the original bytes can be
// reassembled exactly.
type rawLine struct {
	text string
	term string
}

// rawTest is the borrowed form of a parsed test. Its fields alias the input
// buffer and must not outlive it; owned performs the single explicit copy at
// the pipeline boundary.
type rawTest struct {
	name string
	body []rawLine
}

// owned copies the borrowed test into an owned Test, concatenating the body
// lines with their original terminators.
func (t rawTest) owned() Test {
	var b strings.Builder
	for _, line := range t.body {
		b.WriteString(line.text)
		b.WriteString(line.term)
	}
	return Test{
		Name: strings.Clone(t.name),
		Body: b.String(),
	}
}

// ParseError reports a syntax violation in a test file. Path is empty when
// parsing raw text that did not come from a file.
type ParseError struct {
	Path string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}
