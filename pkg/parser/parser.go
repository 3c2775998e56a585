package parser

import (
	"fmt"
	"ippcode/pkg/lexer"
	"strings"
)

type Parser struct {
	source  string        // preprocessed source, header included
	order   int           // order of the instruction being parsed
	program []Instruction // instructions parsed so far
}

// NewParser creates a new parser instance over a preprocessed source
func NewParser(source string) *Parser {
	return &Parser{
		source:  source,
		order:   0,
		program: make([]Instruction, 0),
	}
}

// Parse checks the header and turns every following line into an
// Instruction. The first failure stops the parse and is returned as *Error.
func (p *Parser) Parse() ([]Instruction, error) {
	lines, err := lexer.CheckHeader(p.source)
	if err != nil {
		return nil, p.headerError(err)
	}

	for _, text := range lines {
		line := lexer.Tokenize(strings.TrimSpace(text))
		if len(line.Fields) == 0 {
			continue
		}

		p.order++
		instr, err := p.parseLine(line)
		if err != nil {
			return nil, err
		}
		p.program = append(p.program, instr)
	}

	return p.program, nil
}

// parseLine validates a single line against the instruction table
func (p *Parser) parseLine(line lexer.Line) (Instruction, error) {
	if n := countOpcodes(line); n > 1 {
		return Instruction{}, p.syntaxError(line, "", fmt.Errorf("%w (%d found)", ErrAmbiguousLine, n))
	}

	desc, ok := Lookup(line.Opcode())
	if !ok {
		return Instruction{}, p.opcodeError(line)
	}

	raw := line.Operands()
	if len(raw) != desc.Arity() {
		err := fmt.Errorf("%w: %s takes %d, got %d", ErrArgCount, desc.Opcode, desc.Arity(), len(raw))
		return Instruction{}, p.syntaxError(line, "", err)
	}

	// recognize every operand before comparing any with the signature
	operands := make([]lexer.Operand, 0, len(raw))
	for _, tok := range raw {
		operand, err := lexer.Recognize(tok)
		if err != nil {
			return Instruction{}, p.syntaxError(line, tok, err)
		}
		operands = append(operands, operand)
	}

	for i, operand := range operands {
		if expected := desc.Arg(i); !expected.Accepts(operand.Category) {
			err := fmt.Errorf("%w %q: expected %s, found %s", ErrArgType, operand.Text, expected, operand.Category)
			return Instruction{}, p.syntaxError(line, operand.Text, err)
		}
	}

	return Instruction{
		Order:    p.order,
		Opcode:   desc.Opcode,
		Operands: operands,
	}, nil
}

// countOpcodes counts the fields of a line that name an opcode
func countOpcodes(line lexer.Line) int {
	n := 0
	for _, field := range line.Fields {
		if IsOpcode(field) {
			n++
		}
	}

	return n
}
