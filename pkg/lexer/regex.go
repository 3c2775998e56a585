package lexer

import (
	"regexp"
)

// Shape of an identifier: variable names after the frame prefix, labels and jump targets
var identifierRegex = regexp.MustCompile(`^[a-zA-Z_$&%*!?-][\p{L}\p{N}_$&%*!?-]*$`)

// Operand body patterns, i.e. what may follow the prefix of each category.
// A body is accepted when any pattern of its category matches.
var bodyRegexes = map[Category][]*regexp.Regexp{
	Var: {identifierRegex},
	Int: {
		regexp.MustCompile(`^[+-]?[0-9]+$`),       // decimal
		regexp.MustCompile(`^0[oO][0-7]+$`),       // octal
		regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`), // hexadecimal
	},
	Bool:   {regexp.MustCompile(`^(true|false)$`)},
	String: {regexp.MustCompile(`(?s)^.*$`)},
	Nil:    {regexp.MustCompile(`^nil$`)},
	Label:  {identifierRegex},
	Type:   {regexp.MustCompile(`^(int|bool|string)$`)},
}

// Frame prefixes of variable operands
var framePrefixes = []string{"GF@", "LF@", "TF@"}

// Prefixed literal categories in the order they are tried
var literalOrder = []Category{Int, Bool, String, Nil}

// Matches reports whether body is a well-formed operand body of category c
func (c Category) Matches(body string) bool {
	for _, r := range bodyRegexes[c] {
		if r.MatchString(body) {
			return true
		}
	}

	return false
}
