package codegen

import (
	"errors"
	"fmt"
)

var ErrNoTypeName = errors.New("no type attribute for category")

// Error reports an operand that cannot be rendered
type Error struct {
	Order    int    // instruction order
	Position int    // 1-based operand position
	Operand  string // operand text
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("instruction %d arg%d %q: %v", e.Order, e.Position, e.Operand, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
