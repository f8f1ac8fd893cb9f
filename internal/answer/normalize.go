package answer

import "strings"

// Normalize canonicalizes a textual answer for comparison.
//
// Normalization rules:
// - Leading and trailing whitespace is trimmed
// - Comparison is case-insensitive (the result is lower-cased)
//
// It must be applied to both the candidate's value and every acceptable
// alternative before they are compared.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// accepts reports whether the normalized value is a member of the
// normalized acceptable set.
func accepts(acceptable []string, value string) bool {
	v := Normalize(value)
	for _, a := range acceptable {
		if Normalize(a) == v {
			return true
		}
	}
	return false
}
