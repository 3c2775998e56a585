package parser

import (
	"ippcode/pkg/lexer"
	"slices"
	"sort"
	"strings"
)

// Descriptor is the signature of one opcode: the categories of its operands, in order
type Descriptor struct {
	Opcode string
	args   []lexer.Category
}

// Arity returns the number of operands the opcode takes
func (d Descriptor) Arity() int {
	return len(d.args)
}

// Arg returns the category expected at operand position i (0-based)
func (d Descriptor) Arg(i int) lexer.Category {
	return d.args[i]
}

// Args returns a copy of the expected categories
func (d Descriptor) Args() []lexer.Category {
	return slices.Clone(d.args)
}

func op(name string, args ...lexer.Category) Descriptor {
	return Descriptor{Opcode: name, args: args}
}

const (
	tVar   = lexer.Var
	tSymb  = lexer.Symb
	tLabel = lexer.Label
	tType  = lexer.Type
)

// The instruction set, keyed by upper-case opcode
var instructionTable = newInstructionTable(
	// frames, calls
	op("MOVE", tVar, tSymb),
	op("CREATEFRAME"),
	op("PUSHFRAME"),
	op("POPFRAME"),
	op("DEFVAR", tVar),
	op("CALL", tLabel),
	op("RETURN"),

	// data stack
	op("PUSHS", tSymb),
	op("POPS", tVar),

	// arithmetic, relational, boolean, conversions
	op("ADD", tVar, tSymb, tSymb),
	op("SUB", tVar, tSymb, tSymb),
	op("MUL", tVar, tSymb, tSymb),
	op("IDIV", tVar, tSymb, tSymb),
	op("LT", tVar, tSymb, tSymb),
	op("GT", tVar, tSymb, tSymb),
	op("EQ", tVar, tSymb, tSymb),
	op("AND", tVar, tSymb, tSymb),
	op("OR", tVar, tSymb, tSymb),
	op("NOT", tVar, tSymb),
	op("INT2CHAR", tVar, tSymb),
	op("STRI2INT", tVar, tSymb, tSymb),

	// input, output
	op("READ", tVar, tType),
	op("WRITE", tSymb),

	// strings
	op("CONCAT", tVar, tSymb, tSymb),
	op("STRLEN", tVar, tSymb),
	op("GETCHAR", tVar, tSymb, tSymb),
	op("SETCHAR", tVar, tSymb, tSymb),

	// types
	op("TYPE", tVar, tSymb),

	// flow control
	op("LABEL", tLabel),
	op("JUMP", tLabel),
	op("JUMPIFEQ", tLabel, tSymb, tSymb),
	op("JUMPIFNEQ", tLabel, tSymb, tSymb),
	op("EXIT", tSymb),

	// debugging
	op("DPRINT", tSymb),
	op("BREAK"),
)

func newInstructionTable(descriptors ...Descriptor) map[string]Descriptor {
	table := make(map[string]Descriptor, len(descriptors))
	for _, d := range descriptors {
		if _, dup := table[d.Opcode]; dup {
			panic("parser: duplicate opcode " + d.Opcode)
		}
		table[d.Opcode] = d
	}

	return table
}

// Lookup returns the descriptor of an opcode, matched case-insensitively
func Lookup(name string) (Descriptor, bool) {
	d, ok := instructionTable[strings.ToUpper(name)]
	return d, ok
}

// IsOpcode checks if a token names a known opcode
func IsOpcode(name string) bool {
	_, ok := Lookup(name)
	return ok
}

// Opcodes returns every known opcode in sorted order
func Opcodes() []string {
	names := make([]string, 0, len(instructionTable))
	for name := range instructionTable {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
