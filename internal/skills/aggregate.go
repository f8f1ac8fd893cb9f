// Package skills folds per-item credit into per-skill unit totals and
// percentages.
package skills

// Aggregator accumulates credit per skill. The zero value is ready to use.
// It is meant to live for a single evaluation.
type Aggregator struct {
	order  []Skill
	totals map[Skill]*Score
}

// Add records total units for skill, correct of which were earned.
func (a *Aggregator) Add(skill Skill, correct, total int) {
	if a.totals == nil {
		a.totals = make(map[Skill]*Score)
	}
	s, ok := a.totals[skill]
	if !ok {
		s = &Score{Skill: skill}
		a.totals[skill] = s
		a.order = append(a.order, skill)
	}
	s.Correct += correct
	s.Total += total
}

// Breakdown returns the per-skill scores in first-added order with
// percentages filled in.
func (a *Aggregator) Breakdown() Breakdown {
	out := make(Breakdown, len(a.order))
	for i, skill := range a.order {
		s := *a.totals[skill]
		s.Percent = Percent(s.Correct, s.Total)
		out[i] = s
	}
	return out
}

// Breakdown is an ordered list of skill scores.
type Breakdown []Score

// Lookup returns the score for skill, if it was aggregated.
func (b Breakdown) Lookup(skill Skill) (Score, bool) {
	for _, s := range b {
		if s.Skill == skill {
			return s, true
		}
	}
	return Score{}, false
}

// Assessed reports whether skill was aggregated with at least one unit.
func (b Breakdown) Assessed(skill Skill) bool {
	s, ok := b.Lookup(skill)
	return ok && s.Total > 0
}

// Percents returns skill → percent pairs, e.g. for charting.
func (b Breakdown) Percents() map[Skill]int {
	out := make(map[Skill]int, len(b))
	for _, s := range b {
		out[s.Skill] = s.Percent
	}
	return out
}
