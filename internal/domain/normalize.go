package domain

import (
	"strings"
	"unicode"
)

// NormalizeTerm prepares a lookup term for key derivation and comparison:
//   - trims leading/trailing whitespace
//   - compresses internal whitespace runs into single spaces
//
// Casing is preserved here; the cache key deriver lowercases on its own so
// providers still receive the term as the user typed it.
func NormalizeTerm(term string) string {
	fields := strings.Fields(term)
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields, " ")
}

// IsPhrase reports whether the term contains whitespace, meaning it is a
// multi-word phrase and not eligible for audio enrichment.
func IsPhrase(term string) bool {
	return strings.ContainsFunc(term, unicode.IsSpace)
}
