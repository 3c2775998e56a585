package main

import (
	"bufio"
	"errors"
	"ippcode/internal/compiler"
	"ippcode/internal/logger"
	"ippcode/pkg/color"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// Main entry point for the IPPcode24 parser.
func main() {
	stdout := bufio.NewWriter(os.Stdout)
	atexit.Register(func() {
		if err := stdout.Flush(); err != nil {
			log.Error("Failed to write output", "error", err)
		}
	})

	logger.Init(os.Stderr, false, !color.IsColorEnabled())

	options := compiler.Compiler{
		Input:       os.Stdin,
		Output:      stdout,
		Diagnostics: os.Stderr,
	}

	root := newRootCommand(&options)
	root.SetOut(stdout)
	root.SetErr(os.Stderr)

	atexit.Exit(run(root))
}

// run executes the command and returns the process exit code
func run(root *cobra.Command) int {
	err := root.Execute()

	var uerr usageError
	if errors.As(err, &uerr) {
		root.PrintErrln("Error:", uerr.err)
		root.PrintErr(root.UsageString())
		return exitUsage
	}

	code := compiler.ExitCode(err)
	switch code {
	case compiler.ExitOK:
	case compiler.ExitInput, compiler.ExitInternal:
		log.Error("Translation failed", "error", err)
	default:
		// already reported by the compiler
		log.Debug("Translation failed", "error", err, "code", code)
	}

	return code
}
