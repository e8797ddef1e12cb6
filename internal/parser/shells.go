package parser

// The "@shells(...)" decorator names the shells a test should run under.
// The sub-grammar is recognized here but not yet consumed by block parsing
// or job generation; generated scripts are bash-only for now.

// maxShells caps how many shells one decorator may name.
const maxShells = 4

// knownShells are the shell names the decorator accepts.
var knownShells = []string{"bash", "fish", "zsh", "tcsh"}

// parseShellsDecorator parses a complete "@shells(shell[, shell]*)"
// decorator from the start of input.
func parseShellsDecorator(input string) ([]string, error) {
	p := &parser{input: input, line: 1}
	return p.shellsDecorator()
}

// shellsDecorator consumes the decorator at the cursor: between one and four
// known shell names, comma-separated with optional spaces, in parentheses.
func (p *parser) shellsDecorator() ([]string, error) {
	if err := p.expect("@shells("); err != nil {
		return nil, err
	}

	var shells []string
	for {
		sh, err := p.shellName()
		if err != nil {
			return nil, err
		}
		shells = append(shells, sh)
		if len(shells) == maxShells {
			break
		}
		if p.eof() || p.input[p.pos] != ',' {
			break
		}
		p.pos++
		p.skipSpaces()
	}

	if err := p.expect(")"); err != nil {
		return nil, err
	}
	return shells, nil
}

// shellName consumes one of the known shell names.
func (p *parser) shellName() (string, error) {
	for _, sh := range knownShells {
		if err := p.expect(sh); err == nil {
			return sh, nil
		}
	}
	return "", p.errorf("expected one of bash, fish, zsh, or tcsh")
}
