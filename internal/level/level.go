// Package level converts per-skill percentages into one CEFR band.
package level

import (
	"math"

	"github.com/abhisek/placement/internal/skills"
)

// Level is a CEFR proficiency label.
type Level string

const (
	A1 Level = "A1"
	A2 Level = "A2"
	B1 Level = "B1"
	B2 Level = "B2"
	C1 Level = "C1"
	C2 Level = "C2"
)

// Band is an inclusive integer-percent range mapped to a level.
type Band struct {
	Level Level
	Min   int
	Max   int
}

// DefaultBands returns the six contiguous bands covering 0–100, lowest first.
func DefaultBands() []Band {
	return []Band{
		{Level: A1, Min: 0, Max: 29},
		{Level: A2, Min: 30, Max: 44},
		{Level: B1, Min: 45, Max: 59},
		{Level: B2, Min: 60, Max: 74},
		{Level: C1, Min: 75, Max: 89},
		{Level: C2, Min: 90, Max: 100},
	}
}

// ForPercent returns the level whose band contains pct, falling back to
// the lowest band's level.
func ForPercent(bands []Band, pct int) Level {
	for _, b := range bands {
		if pct >= b.Min && pct <= b.Max {
			return b.Level
		}
	}
	if len(bands) > 0 {
		return bands[0].Level
	}
	return A1
}

// Estimate is the outcome of banding a skill breakdown.
type Estimate struct {
	OverallPercent    int   `json:"overall_percent"`
	BasePercent       int   `json:"base_percent"`
	WritingAdjustment int   `json:"writing_adjustment"`
	Level             Level `json:"level"`
}

// Estimator averages primary skills, applies the writing adjustment and
// bands the result.
type Estimator struct {
	Primary []skills.Skill
	Bands   []Band
}

// DefaultEstimator returns an estimator over skills.PrimarySkills and DefaultBands.
func DefaultEstimator() Estimator {
	return Estimator{
		Primary: skills.PrimarySkills(),
		Bands:   DefaultBands(),
	}
}

// Estimate bands a breakdown. Primary skills with no assessed units are
// left out of the mean; with none present the base is 0.
func (e Estimator) Estimate(b skills.Breakdown) Estimate {
	sum, n := 0, 0
	for _, skill := range e.Primary {
		if s, ok := b.Lookup(skill); ok && s.Total > 0 {
			sum += s.Percent
			n++
		}
	}

	base := 0
	if n > 0 {
		base = int(math.Round(float64(sum) / float64(n)))
	}

	adj := 0
	if w, ok := b.Lookup(skills.Writing); ok && w.Total > 0 {
		adj = WritingAdjustment(w.Percent)
	}

	overall := clamp(base+adj, 0, 100)
	return Estimate{
		OverallPercent:    overall,
		BasePercent:       base,
		WritingAdjustment: adj,
		Level:             ForPercent(e.Bands, overall),
	}
}

// WritingAdjustment returns the overall-percent adjustment for a writing
// percentage: ≥80 +3, [60,80) +1, <40 −3, otherwise 0.
func WritingAdjustment(pct int) int {
	switch {
	case pct >= 80:
		return 3
	case pct >= 60:
		return 1
	case pct < 40:
		return -3
	default:
		return 0
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
