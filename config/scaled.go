package config

import (
	"strings"

	"github.com/ezrec/sfgen/internal"
)

// ParseScaled converts a size or address string to a 64-bit value.
// Verilog-style underscores are stripped, a 0x prefix selects hex, and a
// trailing K, M, or G letter scales by the matching power of two. An
// empty string is 0. Any other trailing character fails with ErrSuffix.
func ParseScaled(s string) (value uint64, err error) {
	var b strings.Builder
	for _, r := range s {
		if r != '_' && r != ' ' && r != '\t' {
			b.WriteRune(r)
		}
	}
	str := b.String()

	if len(str) == 0 {
		return
	}

	var multiplier uint64
	last := str[len(str)-1]
	switch {
	case last >= '0' && last <= '9',
		last >= 'a' && last <= 'f',
		last >= 'A' && last <= 'F':
		multiplier = 1
	case last == 'K':
		multiplier = 1 << 10
	case last == 'M':
		multiplier = 1 << 20
	case last == 'G':
		multiplier = 1 << 30
	default:
		err = ErrSuffix(s)
		return
	}

	if multiplier > 1 {
		str = str[:len(str)-1]
	}

	value, err = internal.ParseUint(str)
	if err != nil {
		return
	}

	value *= multiplier

	return
}
