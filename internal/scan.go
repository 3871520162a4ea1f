package internal

import (
	"strconv"
	"strings"
)

// isSeparator reports whether a rune separates tokens on a definition line.
func isSeparator(r rune) bool {
	return r == ',' || r == '=' || r == ' ' || r == '\t' || r == '\r'
}

// Fields splits a definition-file line on commas, equals signs, and
// whitespace, returning the non-empty tokens.
func Fields(line string) []string {
	return strings.FieldsFunc(line, isSeparator)
}

// Skip reports whether a line is blank or a comment. Lines whose first
// non-whitespace content is '#' or '//' are comments.
func Skip(line string) bool {
	line = strings.TrimSpace(line)
	return len(line) == 0 || line[0] == '#' || strings.HasPrefix(line, "//")
}

// ParseUint converts a decimal or 0x-prefixed hex string to a value.
// An empty string is 0.
func ParseUint(s string) (value uint64, err error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return
	}

	base := 10
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	value, err = strconv.ParseUint(s, base, 64)
	if err != nil {
		err = ErrNumber(s)
	}

	return
}
