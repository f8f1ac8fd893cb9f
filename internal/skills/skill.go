package skills

import "math"

// Skill is a competency category used as an aggregation bucket.
type Skill string

const (
	Grammar      Skill = "Grammar"
	UseOfEnglish Skill = "Use of English"
	Vocabulary   Skill = "Vocabulary"
	Reading      Skill = "Reading"
	Listening    Skill = "Listening"
	Writing      Skill = "Writing"
)

// PrimarySkills returns the skills averaged into the overall percentage,
// in display order. Writing is not primary; it only adjusts the result.
func PrimarySkills() []Skill {
	return []Skill{
		Grammar,
		UseOfEnglish,
		Vocabulary,
		Reading,
		Listening,
	}
}

// AllSkills returns every known skill in display order.
func AllSkills() []Skill {
	return append(PrimarySkills(), Writing)
}

// Known reports whether s is one of the built-in skills.
func Known(s Skill) bool {
	for _, k := range AllSkills() {
		if k == s {
			return true
		}
	}
	return false
}

// Score is the aggregated result for one skill.
type Score struct {
	Skill   Skill `json:"skill"`
	Correct int   `json:"correct"`
	Total   int   `json:"total"`
	Percent int   `json:"percent"`
}

// Percent returns round(correct/total × 100), or 0 when total is 0.
func Percent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
