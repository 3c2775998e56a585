package main

import (
	"ippcode/internal/compiler"

	"github.com/spf13/cobra"
)

const exitUsage = 2

// usageError marks a bad command line, as opposed to a bad program
type usageError struct {
	err error
}

func (e usageError) Error() string {
	return e.err.Error()
}

func (e usageError) Unwrap() error {
	return e.err
}

func newRootCommand(options *compiler.Compiler) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [options] < source",
		Short: "Script for parsing IPPcode24 to XML.",
		Long: `Script for parsing IPPcode24 to XML.

Parse reads an IPPcode24 program from standard input, checks the header,
the opcode and the operands of every instruction, and writes the program
as an XML document to standard output.

Exit codes:
  21  missing or wrong header
  22  unknown opcode
  23  any other lexical or syntax error`,

		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return usageError{err}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return options.Compile()
		},
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	return cmd
}
