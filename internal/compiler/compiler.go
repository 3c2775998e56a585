package compiler

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"ippcode/pkg/codegen"
	"ippcode/pkg/color"
	"ippcode/pkg/lexer"
	"ippcode/pkg/parser"

	"github.com/charmbracelet/log"
)

// Exit codes not owned by the parser
const (
	ExitOK       = 0
	ExitInput    = 11 // input could not be read
	ExitInternal = 99
)

var ErrReadInput = errors.New("cannot read input")

type Compiler struct {
	Input       io.Reader // IPPcode24 source
	Output      io.Writer // receives the XML document
	Diagnostics io.Writer // receives human readable errors, may be nil
}

// Compile reads the whole source, translates it and writes the document.
// On failure nothing is written to Output and the returned error carries
// the exit code, see ExitCode.
func (c *Compiler) Compile() error {
	lines, err := readLines(c.Input)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	log.Debug("Read source", "lines", len(lines))

	source := lexer.Preprocess(lines)

	instructions, err := parser.NewParser(source).Parse()
	if err != nil {
		c.report(err)
		return err
	}
	log.Debug("Parsed program", "instructions", len(instructions))
	for _, instr := range instructions {
		log.Debug("Instruction", "instr", instr)
	}

	var doc bytes.Buffer
	if err := codegen.Generate(&doc, instructions); err != nil {
		return fmt.Errorf("xml generation failed: %w", err)
	}

	if _, err := doc.WriteTo(c.Output); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

// report prints a parse error for the user
func (c *Compiler) report(err error) {
	var perr *parser.Error
	if c.Diagnostics == nil || !errors.As(err, &perr) {
		return
	}

	fmt.Fprintln(c.Diagnostics, color.BoldText(color.BrightRedText("=== "+perr.Kind.String()+" ===")))
	fmt.Fprintln(c.Diagnostics, perr.Diagnostic())
}

// ExitCode maps an error returned by Compile to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var perr *parser.Error
	if errors.As(err, &perr) {
		return perr.Kind.ExitCode()
	}
	if errors.Is(err, ErrReadInput) {
		return ExitInput
	}

	return ExitInternal
}

// readLines reads r to the end, keeping line terminators
func readLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string

	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
