package codegen

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"ippcode/pkg/lexer"
	"ippcode/pkg/parser"
	"strings"
)

// Language is the value of the language attribute on the root element
const Language = "IPPcode24"

const indent = "  "

type program struct {
	XMLName      xml.Name      `xml:"program"`
	Language     string        `xml:"language,attr"`
	Instructions []instruction `xml:"instruction"`
}

type instruction struct {
	Order  int        `xml:"order,attr"`
	Opcode string     `xml:"opcode,attr"`
	Args   []argument // arg1, arg2, arg3, named through XMLName
}

type argument struct {
	XMLName xml.Name
	Type    string `xml:"type,attr"`
	Value   string `xml:",chardata"`
}

// Generate writes the XML document for a parsed program to w.
// Nothing is written unless the whole document could be built.
func Generate(w io.Writer, instructions []parser.Instruction) error {
	doc := program{
		Language:     Language,
		Instructions: make([]instruction, 0, len(instructions)),
	}

	for _, instr := range instructions {
		el, err := newInstruction(instr)
		if err != nil {
			return err
		}
		doc.Instructions = append(doc.Instructions, el)
	}

	body, err := xml.MarshalIndent(doc, "", indent)
	if err != nil {
		return fmt.Errorf("marshal program: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(body)
	buf.WriteByte('\n')

	_, err = buf.WriteTo(w)
	return err
}

func newInstruction(instr parser.Instruction) (instruction, error) {
	el := instruction{
		Order:  instr.Order,
		Opcode: strings.ToUpper(instr.Opcode),
		Args:   make([]argument, 0, len(instr.Operands)),
	}

	for i, op := range instr.Operands {
		typ, err := typeName(op.Category)
		if err != nil {
			return el, &Error{Order: instr.Order, Position: i + 1, Operand: op.Text, Err: err}
		}
		el.Args = append(el.Args, argument{
			XMLName: xml.Name{Local: fmt.Sprintf("arg%d", i+1)},
			Type:    typ,
			Value:   op.Value(),
		})
	}

	return el, nil
}

// typeName returns the type attribute for a recognized operand.
// Only concrete categories have one: symb is a signature category and never
// describes an operand.
func typeName(c lexer.Category) (string, error) {
	if !c.IsConcrete() {
		return "", fmt.Errorf("%w %s", ErrNoTypeName, c)
	}

	return c.String(), nil
}
