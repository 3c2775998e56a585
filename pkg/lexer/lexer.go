package lexer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyInput      = errors.New("empty input")
	ErrBadHeader       = errors.New("wrong header")
	ErrInvalidVariable = errors.New("invalid variable name")
	ErrInvalidInteger  = errors.New("invalid integer literal")
	ErrInvalidBool     = errors.New("invalid boolean literal")
	ErrInvalidNil      = errors.New("invalid nil literal")
)

// Errors reported for a malformed body after a literal prefix
var malformed = map[Category]error{
	Int:  ErrInvalidInteger,
	Bool: ErrInvalidBool,
	Nil:  ErrInvalidNil,
}

// Line is one preprocessed source line split into whitespace separated fields
type Line struct {
	Text   string   // normalized line text
	Fields []string // opcode followed by raw operands
}

// Tokenize splits a line on whitespace
func Tokenize(text string) Line {
	return Line{
		Text:   text,
		Fields: strings.Fields(text),
	}
}

// Opcode returns the first field upper-cased, or "" for an empty line
func (l Line) Opcode() string {
	if len(l.Fields) == 0 {
		return ""
	}

	return strings.ToUpper(l.Fields[0])
}

// Operands returns every field after the opcode. Nothing is truncated,
// so a line with too many operands keeps all of them.
func (l Line) Operands() []string {
	if len(l.Fields) < 2 {
		return nil
	}

	return l.Fields[1:]
}

// Recognize classifies a raw operand token by its lexical shape.
//
// A token carrying a frame or type prefix must have a well-formed body,
// otherwise an error wrapping one of the ErrInvalid* values is returned.
// A token matching no shape at all is not an error here: it comes back with
// the Invalid category and is rejected once compared with a signature.
func Recognize(text string) (Operand, error) {
	op := Operand{Text: text, Category: Invalid}

	for _, prefix := range framePrefixes {
		if name, ok := strings.CutPrefix(text, prefix); ok {
			if !Var.Matches(name) {
				return op, fmt.Errorf("%w %q", ErrInvalidVariable, text)
			}
			op.Category = Var
			return op, nil
		}
	}

	for _, c := range literalOrder {
		if body, ok := strings.CutPrefix(text, c.Prefix()); ok {
			if !c.Matches(body) {
				return op, fmt.Errorf("%w %q", malformed[c], text)
			}
			op.Category = c
			return op, nil
		}
	}

	// int, bool and string also have the shape of a label, so check them first
	if Type.Matches(text) {
		op.Category = Type
	} else if Label.Matches(text) {
		op.Category = Label
	}

	return op, nil
}
