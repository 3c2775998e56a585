package compiler_test

import (
	"bytes"
	"encoding/xml"
	"errors"
	"ippcode/internal/compiler"
	"ippcode/pkg/color"
	"ippcode/pkg/lexer"
	"ippcode/pkg/parser"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

var _ = Describe("Compiler", func() {
	var (
		out     *bytes.Buffer
		diag    *bytes.Buffer
		c       *compiler.Compiler
		colored bool
	)

	compile := func(source string) error {
		c.Input = strings.NewReader(source)
		return c.Compile()
	}

	BeforeEach(func() {
		out = new(bytes.Buffer)
		diag = new(bytes.Buffer)
		c = &compiler.Compiler{Output: out, Diagnostics: diag}
		colored = color.IsColorEnabled()
		color.EnableColor(false)
	})

	AfterEach(func() {
		color.EnableColor(colored)
	})

	It("should translate a single move", func() {
		Expect(compile(".IPPcode24\nMOVE GF@x int@5\n")).To(Succeed())
		Expect(out.String()).To(Equal(`<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode24">
  <instruction order="1" opcode="MOVE">
    <arg1 type="var">GF@x</arg1>
    <arg2 type="int">5</arg2>
  </instruction>
</program>
`))
		Expect(diag.Len()).To(BeZero())
	})

	It("should number instructions contiguously across comments and blank lines", func() {
		source := "\n# leading comment\n\n.IPPcode24   # header\n\nDEFVAR GF@counter\n   \n# loop\nLABEL loop\n\nADD GF@counter GF@counter int@1 # inc\nJUMPIFNEQ loop GF@counter int@10\n"
		Expect(compile(source)).To(Succeed())

		var doc struct {
			Instructions []struct {
				Order  int    `xml:"order,attr"`
				Opcode string `xml:"opcode,attr"`
			} `xml:"instruction"`
		}
		Expect(xml.Unmarshal(out.Bytes(), &doc)).To(Succeed())
		Expect(doc.Instructions).To(HaveLen(4))
		for i, instr := range doc.Instructions {
			Expect(instr.Order).To(Equal(i + 1))
		}
		Expect(doc.Instructions[3].Opcode).To(Equal("JUMPIFNEQ"))
	})

	It("should translate labels and jumps", func() {
		Expect(compile(".IPPcode24\nLABEL loop\nJUMP loop\n")).To(Succeed())
		Expect(out.String()).To(ContainSubstring(`<instruction order="1" opcode="LABEL">`))
		Expect(out.String()).To(ContainSubstring(`<instruction order="2" opcode="JUMP">`))
		Expect(strings.Count(out.String(), `<arg1 type="label">loop</arg1>`)).To(Equal(2))
	})

	It("should accept input without a trailing newline", func() {
		Expect(compile(".IPPcode24\nBREAK")).To(Succeed())
		Expect(out.String()).To(ContainSubstring(`opcode="BREAK"`))
	})

	DescribeTable("should fail with the exit code of the error kind",
		func(source string, code int, expected error) {
			err := compile(source)
			Expect(err).To(HaveOccurred())
			Expect(err).To(MatchError(expected))
			Expect(compiler.ExitCode(err)).To(Equal(code))
			Expect(out.Len()).To(BeZero(), "no XML on failure")
			Expect(diag.String()).NotTo(BeEmpty())
		},
		Entry("empty input", "", parser.ExitHeader, lexer.ErrEmptyInput),
		Entry("only comments", "# nothing\n\n", parser.ExitHeader, lexer.ErrEmptyInput),
		Entry("missing header", "MOVE GF@x int@5\n", parser.ExitHeader, lexer.ErrBadHeader),
		Entry("unknown opcode", ".IPPcode24\nMOV GF@x int@5\n", parser.ExitOpcode, parser.ErrUnknownOpcode),
		Entry("zero arity with operand", ".IPPcode24\nCREATEFRAME extra\n", parser.ExitSyntax, parser.ErrArgCount),
		Entry("malformed integer", ".IPPcode24\nPUSHS int@abc\n", parser.ExitSyntax, lexer.ErrInvalidInteger),
		Entry("wrong operand type", ".IPPcode24\nDEFVAR int@1\n", parser.ExitSyntax, parser.ErrArgType),
		Entry("two opcodes on a line", ".IPPcode24\nWRITE GF@x BREAK\n", parser.ExitSyntax, parser.ErrAmbiguousLine),
		Entry("error after valid lines", ".IPPcode24\nBREAK\nBREAK\nPOPS bool@true\n", parser.ExitSyntax, parser.ErrArgType),
	)

	It("should name the offending line in the diagnostic", func() {
		Expect(compile(".IPPcode24\nBREAK\nPUSHS int@abc\n")).NotTo(Succeed())
		Expect(diag.String()).To(ContainSubstring("syntax error"))
		Expect(diag.String()).To(ContainSubstring("instruction 2"))
		Expect(diag.String()).To(ContainSubstring("PUSHS int@abc"))
	})

	It("should report unreadable input", func() {
		c.Input = failingReader{}
		err := c.Compile()
		Expect(err).To(MatchError(compiler.ErrReadInput))
		Expect(compiler.ExitCode(err)).To(Equal(compiler.ExitInput))
		Expect(out.Len()).To(BeZero())
	})

	It("should work without a diagnostics writer", func() {
		c.Diagnostics = nil
		err := compile(".IPPcode23\n")
		Expect(compiler.ExitCode(err)).To(Equal(parser.ExitHeader))
	})

	It("should map other errors to the internal exit code", func() {
		Expect(compiler.ExitCode(nil)).To(Equal(compiler.ExitOK))
		Expect(compiler.ExitCode(errors.New("boom"))).To(Equal(compiler.ExitInternal))
	})
})
