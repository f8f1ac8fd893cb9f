package evaluation

import (
	"github.com/abhisek/placement/internal/answer"
	"github.com/abhisek/placement/internal/questionset"
)

// recordMistake captures a missed item with a readable rendering of the
// submitted value and one canonical correct answer.
func recordMistake(sec questionset.Section, item questionset.Item, r answer.Response) Mistake {
	return Mistake{
		Section:   sec.Title,
		Skill:     item.Skill,
		ItemID:    item.ID,
		LevelHint: item.LevelHint,
		Prompt:    item.Prompt,
		Your:      r.Render(),
		Correct:   answer.Canonical(item.Answer),
	}
}
