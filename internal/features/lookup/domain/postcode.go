package domain

import (
	"strings"
	"unicode"
)

// NormalizePostcode uppercases a postcode and strips every whitespace rune,
// so "SW1A 1AA", "sw1a1aa" and " sw1a 1aa " all compare equal. Normalized
// values are only compared, never stored or returned.
func NormalizePostcode(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, raw)
}
