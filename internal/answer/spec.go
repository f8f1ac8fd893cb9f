package answer

import (
	"fmt"
	"regexp"
)

// Kind discriminates the forms an answer key can take.
type Kind string

const (
	KindNone       Kind = ""
	KindMultiBlank Kind = "blanks"
	KindPattern    Kind = "pattern"
	KindParts      Kind = "parts"
	KindAnyOf      Kind = "any_of"
	KindExact      Kind = "exact"
)

// PartSeparator splits a single-string response to a multi-part answer.
// An acceptable answer that itself contains the separator only matches a
// pre-split list response.
const PartSeparator = "|"

// Spec is an answer key. Exactly one form is populated, selected by Kind.
// The zero value grades every response as incorrect.
type Spec struct {
	kind     Kind
	expected string
	anyOf    []string
	sets     [][]string // per-blank or per-part acceptable answers
	pattern  string
	re       *regexp.Regexp
}

// Exact returns a key matching one expected string.
func Exact(expected string) Spec {
	return Spec{kind: KindExact, expected: expected}
}

// AnyOf returns a key matching any of the acceptable strings.
func AnyOf(acceptable ...string) Spec {
	return Spec{kind: KindAnyOf, anyOf: copyStrings(acceptable)}
}

// Parts returns a key for a multi-part answer graded as a unit; each
// argument holds the acceptable answers for one part.
func Parts(sets ...[]string) Spec {
	return Spec{kind: KindParts, sets: copySets(sets)}
}

// Blanks returns a key for a multi-blank item graded per blank; each
// argument holds the acceptable answers for one blank.
func Blanks(sets ...[]string) Spec {
	return Spec{kind: KindMultiBlank, sets: copySets(sets)}
}

// Pattern returns a key matching a case-insensitive regular expression.
func Pattern(expr string) (Spec, error) {
	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return Spec{}, fmt.Errorf("compile answer pattern %q: %w", expr, err)
	}
	return Spec{kind: KindPattern, pattern: expr, re: re}, nil
}

// MustPattern is like Pattern but panics if expr does not compile.
func MustPattern(expr string) Spec {
	s, err := Pattern(expr)
	if err != nil {
		panic(err)
	}
	return s
}

// Kind returns the form of the key.
func (s Spec) Kind() Kind { return s.kind }

// BlankCount returns the number of independently graded blanks, or 0 for
// keys that are not multi-blank.
func (s Spec) BlankCount() int {
	if s.kind != KindMultiBlank {
		return 0
	}
	return len(s.sets)
}

// PartCount returns the number of parts of a multi-part key.
func (s Spec) PartCount() int {
	if s.kind != KindParts {
		return 0
	}
	return len(s.sets)
}

// Expression returns the source of a pattern key.
func (s Spec) Expression() string { return s.pattern }

// Alternatives returns the acceptable strings of an exact or any-of key,
// or nil for other forms.
func (s Spec) Alternatives() []string {
	switch s.kind {
	case KindExact:
		return []string{s.expected}
	case KindAnyOf:
		return copyStrings(s.anyOf)
	default:
		return nil
	}
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copySets(in [][]string) [][]string {
	out := make([][]string, len(in))
	for i, set := range in {
		out[i] = copyStrings(set)
	}
	return out
}
