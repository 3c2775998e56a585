package parser

import (
	"errors"
	"fmt"
	"ippcode/pkg/color"
	"ippcode/pkg/lexer"
)

// Process exit codes for each kind of failure
const (
	ExitHeader = 21
	ExitOpcode = 22
	ExitSyntax = 23
)

type ErrorKind int

const (
	HeaderError ErrorKind = iota + 1 // missing input or wrong first line
	OpcodeError                      // first token is not an opcode
	SyntaxError                      // anything else wrong with a line
)

var (
	ErrAmbiguousLine = errors.New("more than one opcode on line")
	ErrUnknownOpcode = errors.New("unknown opcode")
	ErrArgCount      = errors.New("wrong argument count")
	ErrArgType       = errors.New("wrong argument type")
)

// String returns a string representation of the ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case HeaderError:
		return "header error"
	case OpcodeError:
		return "opcode error"
	case SyntaxError:
		return "syntax error"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(k))
	}
}

// ExitCode returns the process exit code for the kind
func (k ErrorKind) ExitCode() int {
	switch k {
	case HeaderError:
		return ExitHeader
	case OpcodeError:
		return ExitOpcode
	default:
		return ExitSyntax
	}
}

// Error is the failure that stopped a parse
type Error struct {
	Kind  ErrorKind
	Order int    // order of the instruction being parsed, 0 for header errors
	Line  string // offending source line
	Token string // offending token, if a single one is to blame
	Err   error
}

func (e *Error) Error() string {
	if e.Order == 0 {
		return e.Err.Error()
	}

	return fmt.Sprintf("instruction %d: %v in %q", e.Order, e.Err, e.Line)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Diagnostic renders the error for a human, with the source line and the
// offending token highlighted
func (e *Error) Diagnostic() string {
	msg := color.RedText(e.Err.Error())
	if e.Order == 0 {
		return msg
	}

	msg += " at " + color.YellowText(fmt.Sprintf("instruction %d", e.Order))
	line := color.Code(e.Line)
	if e.Token != "" {
		line = color.Highlight(e.Line, e.Token)
	}

	return msg + "\n" + line
}

func (p *Parser) headerError(err error) error {
	return &Error{Kind: HeaderError, Err: err}
}

func (p *Parser) opcodeError(line lexer.Line) error {
	return &Error{
		Kind:  OpcodeError,
		Order: p.order,
		Line:  line.Text,
		Token: line.Fields[0],
		Err:   fmt.Errorf("%w %q", ErrUnknownOpcode, line.Fields[0]),
	}
}

func (p *Parser) syntaxError(line lexer.Line, token string, err error) error {
	return &Error{
		Kind:  SyntaxError,
		Order: p.order,
		Line:  line.Text,
		Token: token,
		Err:   err,
	}
}
