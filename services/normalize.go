package services

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// markStripper decomposes characters and drops the combining marks, so that
// "Bogotá" and "Bogota" canonicalize to the same string.
var markStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

var punctReplacer = strings.NewReplacer(",", "", ".", "")

// Normalize canonicalizes a string for option comparison: diacritics stripped,
// commas and periods removed, whitespace collapsed, uppercased. The rendered
// option text never exactly matches the business value, so both sides of every
// comparison go through this. Idempotent.
func Normalize(s string) string {
	stripped, _, err := transform.String(markStripper, s)
	if err != nil {
		stripped = s
	}
	stripped = punctReplacer.Replace(stripped)
	return strings.ToUpper(strings.Join(strings.Fields(stripped), " "))
}
