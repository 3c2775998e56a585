package color

import (
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Red    = "\033[31m"
	Yellow = "\033[33m"
	Gray   = "\033[90m"

	BrightRed = "\033[91m"
)

// Diagnostics go to stderr, so colour follows whether stderr is a terminal
var colorEnabled = isTerminal(os.Stderr)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func EnableColor(enable bool) {
	colorEnabled = enable
}

func IsColorEnabled() bool {
	return colorEnabled
}

func Colorize(color, text string) string {
	if !colorEnabled {
		return text
	}
	return color + text + Reset
}

func RedText(text string) string {
	return Colorize(Red, text)
}

func BrightRedText(text string) string {
	return Colorize(BrightRed, text)
}

func YellowText(text string) string {
	return Colorize(Yellow, text)
}

func GrayText(text string) string {
	return Colorize(Gray, text)
}

func BoldText(text string) string {
	return Colorize(Bold, text)
}

// Highlight marks every occurrence of highlight within text
func Highlight(text, highlight string) string {
	if !colorEnabled || highlight == "" {
		return text
	}
	return strings.ReplaceAll(text, highlight, YellowText(highlight))
}

func Code(code string) string {
	if !colorEnabled {
		return code
	}
	return GrayText(code)
}
