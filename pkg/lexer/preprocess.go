package lexer

import (
	"fmt"
	"strings"
)

// Header is the marker every program must start with
const Header = ".IPPcode24"

// Preprocess strips comments and surrounding whitespace from each raw line,
// drops every line left empty and joins the rest with a single newline.
func Preprocess(lines []string) string {
	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		line, _, _ = strings.Cut(line, "#")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}

// CheckHeader verifies that the first line of a preprocessed source is the
// program header and returns the lines that follow it.
func CheckHeader(source string) ([]string, error) {
	lines := strings.Split(source, "\n")

	first := strings.TrimSpace(lines[0])
	if first == "" {
		return nil, ErrEmptyInput
	}
	if first != Header {
		return nil, fmt.Errorf("%w %q", ErrBadHeader, first)
	}

	return lines[1:], nil
}
