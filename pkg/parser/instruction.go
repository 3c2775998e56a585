package parser

import (
	"fmt"
	"ippcode/pkg/lexer"
	"strings"
)

// Instruction is one validated source line
type Instruction struct {
	Order    int // 1-based position in the program
	Opcode   string
	Operands []lexer.Operand // exactly as many as the opcode's arity
}

// String returns a string representation of the instruction
func (i Instruction) String() string {
	args := make([]string, 0, len(i.Operands))
	for _, op := range i.Operands {
		args = append(args, op.String())
	}

	return fmt.Sprintf("%d: (%s, %s)", i.Order, i.Opcode, strings.Join(args, ", "))
}
