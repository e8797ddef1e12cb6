package parser

import (
	"fmt"
	"os"
	"strings"
)

// ParseFile reads a test file from disk and parses every test block in it,
// in declaration order.
func ParseFile(path string) ([]Test, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test file %q: %w", path, err)
	}
	return parseTests(path, string(data))
}

// Parse parses every test block out of raw text, in declaration order.
func Parse(input string) ([]Test, error) {
	return parseTests("", input)
}

func parseTests(path, input string) ([]Test, error) {
	p := &parser{path: path, input: input, line: 1}
	p.skipMultispace()

	var tests []Test
	for !p.eof() {
		raw, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		tests = append(tests, raw.owned())
		p.skipMultispace()
	}
	return tests, nil
}

// parser is a cursor over the input text. All parse methods advance pos and
// keep line current for diagnostics.
type parser struct {
	path  string
	input string
	pos   int
	line  int // 1-based
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) rest() string {
	return p.input[p.pos:]
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Path: p.path, Line: p.line, Msg: fmt.Sprintf(format, args...)}
}

// expect consumes the exact literal lit or fails. lit must not contain a
// line ending.
func (p *parser) expect(lit string) error {
	if !strings.HasPrefix(p.rest(), lit) {
		return p.errorf("expected %q", lit)
	}
	p.pos += len(lit)
	return nil
}

// skipMultispace consumes any run of spaces, tabs, and line endings.
func (p *parser) skipMultispace() {
	for !p.eof() {
		switch p.input[p.pos] {
		case ' ', '\t', '\r':
			p.pos++
		case '\n':
			p.pos++
			p.line++
		default:
			return
		}
	}
}

// skipSpaces consumes spaces and tabs only.
func (p *parser) skipSpaces() {
	for !p.eof() && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

// lineEnding consumes "\n" or "\r\n" and returns the consumed terminator.
func (p *parser) lineEnding() (string, error) {
	rest := p.rest()
	switch {
	case strings.HasPrefix(rest, "\r\n"):
		p.pos += 2
		p.line++
		return "\r\n", nil
	case strings.HasPrefix(rest, "\n"):
		p.pos++
		p.line++
		return "\n", nil
	default:
		return "", p.errorf("expected line ending")
	}
}

func isNameChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// testName consumes a run of [A-Za-z0-9_] characters, at least one.
func (p *parser) testName() (string, error) {
	start := p.pos
	for !p.eof() && isNameChar(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf("expected test name")
	}
	return p.input[start:p.pos], nil
}

// parseTest parses one "@test name { ... }" block starting at the cursor.
func (p *parser) parseTest() (rawTest, error) {
	if err := p.expect("@test "); err != nil {
		return rawTest{}, err
	}
	name, err := p.testName()
	if err != nil {
		return rawTest{}, err
	}
	if err := p.expect(" {"); err != nil {
		return rawTest{}, err
	}
	if _, err := p.lineEnding(); err != nil {
		return rawTest{}, err
	}

	body, err := p.testBody(name)
	if err != nil {
		return rawTest{}, err
	}
	return rawTest{name: name, body: body}, nil
}

// testBody accumulates body lines until the closing delimiter line. The body
// must hold at least one line, and no body line may begin with the closing
// delimiter character.
func (p *parser) testBody(name string) ([]rawLine, error) {
	var body []rawLine
	for {
		if p.eof() {
			return nil, p.errorf("test %q is missing its closing %q", name, "}")
		}
		if p.input[p.pos] == '}' {
			if len(body) == 0 {
				return nil, p.errorf("test %q has an empty body", name)
			}
			p.pos++
			if _, err := p.lineEnding(); err != nil {
				return nil, p.errorf("invalid body line: a line may not begin with %q", "}")
			}
			break
		}
		line, err := p.bodyLine()
		if err != nil {
			return nil, err
		}
		body = append(body, line)
	}
	return body, nil
}

// bodyLine consumes one line of body text together with its terminator.
func (p *parser) bodyLine() (rawLine, error) {
	start := p.pos
	for !p.eof() && p.input[p.pos] != '\n' && p.input[p.pos] != '\r' {
		p.pos++
	}
	text := p.input[start:p.pos]
	term, err := p.lineEnding()
	if err != nil {
		return rawLine{}, err
	}
	return rawLine{text: text, term: term}, nil
}
