package answer

import "strings"

// Result is the outcome of matching one response against one key.
type Result struct {
	Correct bool
	Credit  int // blanks matched; multi-blank keys only
	Blanks  int // blank count; multi-blank keys only
}

// Match grades a response against a key. It never fails: absent responses,
// responses of the wrong shape and malformed keys all grade as incorrect.
func Match(spec Spec, r Response) Result {
	switch spec.kind {
	case KindMultiBlank:
		return matchBlanks(spec.sets, r)
	case KindPattern:
		if spec.re == nil {
			return Result{}
		}
		return Result{Correct: spec.re.MatchString(strings.TrimSpace(r.Text()))}
	case KindParts:
		return Result{Correct: matchParts(spec.sets, r)}
	case KindAnyOf:
		return Result{Correct: accepts(spec.anyOf, r.Text())}
	case KindExact:
		return Result{Correct: Normalize(r.Text()) == Normalize(spec.expected)}
	default:
		return Result{}
	}
}

// matchBlanks grades each blank independently. A response that is not a
// list of the right length earns no credit at all.
func matchBlanks(sets [][]string, r Response) Result {
	res := Result{Blanks: len(sets)}
	if !r.list || len(r.parts) != len(sets) {
		return res
	}
	for i, set := range sets {
		if accepts(set, r.parts[i]) {
			res.Credit++
		}
	}
	res.Correct = res.Credit == len(sets)
	return res
}

// matchParts requires every part to match; there is no partial credit.
func matchParts(sets [][]string, r Response) bool {
	parts := splitParts(r)
	if len(parts) != len(sets) {
		return false
	}
	for i, set := range sets {
		if !accepts(set, parts[i]) {
			return false
		}
	}
	return true
}

// splitParts returns the list as submitted, or splits a string response on
// PartSeparator.
func splitParts(r Response) []string {
	if r.list {
		return r.parts
	}
	raw := strings.Split(r.text, PartSeparator)
	for i := range raw {
		raw[i] = strings.TrimSpace(raw[i])
	}
	return raw
}

// Canonical renders one correct answer for display: the expected string,
// the first acceptable alternative, or the first alternative of every blank
// or part joined with " | ". Pattern keys render as the expression.
func Canonical(spec Spec) string {
	switch spec.kind {
	case KindMultiBlank, KindParts:
		firsts := make([]string, len(spec.sets))
		for i, set := range spec.sets {
			if len(set) > 0 {
				firsts[i] = set[0]
			}
		}
		return strings.Join(firsts, " | ")
	case KindPattern:
		return "/" + spec.pattern + "/i"
	case KindAnyOf:
		if len(spec.anyOf) == 0 {
			return ""
		}
		return spec.anyOf[0]
	case KindExact:
		return spec.expected
	default:
		return ""
	}
}
