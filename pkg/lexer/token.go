package lexer

import (
	"fmt"
	"strings"
)

// Category is the semantic type of an operand.
type Category int

const (
	Invalid Category = iota // token that matches no operand shape

	Var    // GF@x, LF@x, TF@x
	Int    // int@42
	Bool   // bool@true
	String // string@text
	Nil    // nil@nil
	Label  // bare symbol used as a label or jump target
	Type   // int, bool, string
	Symb   // any value: Var, Int, Bool, String or Nil
)

var categoryNames = map[Category]string{
	Invalid: "invalid",
	Var:     "var",
	Int:     "int",
	Bool:    "bool",
	String:  "string",
	Nil:     "nil",
	Label:   "label",
	Type:    "type",
	Symb:    "symb",
}

// String returns the external name of the category, as used in the XML type attribute
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(c))
}

// Prefix returns the type prefix written in front of a literal of this category.
// Variables keep their frame prefix as part of the name, so they have none.
func (c Category) Prefix() string {
	switch c {
	case Int, Bool, String, Nil:
		return c.String() + "@"
	case Invalid, Var, Label, Type, Symb:
		return ""
	default:
		panic(fmt.Sprintf("lexer: unhandled category %v", c))
	}
}

// IsValue reports whether an operand of this category can stand where a symb is expected
func (c Category) IsValue() bool {
	switch c {
	case Var, Int, Bool, String, Nil:
		return true
	case Invalid, Label, Type, Symb:
		return false
	default:
		panic(fmt.Sprintf("lexer: unhandled category %v", c))
	}
}

// IsConcrete reports whether the category can be assigned to a recognized operand.
// Symb only ever appears in instruction signatures.
func (c Category) IsConcrete() bool {
	switch c {
	case Var, Int, Bool, String, Nil, Label, Type:
		return true
	case Invalid, Symb:
		return false
	default:
		panic(fmt.Sprintf("lexer: unhandled category %v", c))
	}
}

// Accepts reports whether an operand recognized as got satisfies an expected category c
func (c Category) Accepts(got Category) bool {
	switch c {
	case Symb:
		return got.IsValue()
	case Var, Int, Bool, String, Nil, Label, Type:
		return got == c
	case Invalid:
		return false
	default:
		panic(fmt.Sprintf("lexer: unhandled category %v", c))
	}
}

// Operand is a single raw operand token together with its recognized category
type Operand struct {
	Text     string   // token exactly as written in source
	Category Category // recognized category, Invalid when nothing matched
}

// Value returns the operand text with its literal type prefix removed.
// Frame prefixes of variables are kept.
func (o Operand) Value() string {
	return strings.TrimPrefix(o.Text, o.Category.Prefix())
}

// String returns a string representation of the Operand
func (o Operand) String() string {
	return fmt.Sprintf("{%s %q}", o.Category, o.Text)
}
