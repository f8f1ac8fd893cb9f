package evaluation

import (
	"github.com/abhisek/placement/internal/answer"
	"github.com/abhisek/placement/internal/level"
	"github.com/abhisek/placement/internal/remediation"
	"github.com/abhisek/placement/internal/skills"
	"github.com/abhisek/placement/internal/writing"
)

// Answers maps item IDs to the candidate's responses.
type Answers map[string]answer.Response

// Mistake records one incorrectly answered item for display or export.
type Mistake struct {
	Section   string       `json:"section"`
	Skill     skills.Skill `json:"skill"`
	ItemID    string       `json:"item_id"`
	LevelHint string       `json:"level_hint"`
	Prompt    string       `json:"prompt"`
	Your      string       `json:"your"`
	Correct   string       `json:"correct"`
}

// WritingResult is the heuristic outcome for one writing item.
type WritingResult struct {
	ItemID   string            `json:"item_id"`
	Section  string            `json:"section"`
	Analysis writing.Analysis  `json:"analysis"`
	Band     string            `json:"band"`
	Topic    remediation.Topic `json:"topic"`
}

// Result is the outcome of one evaluation. Each call builds a new one.
type Result struct {
	Skills            skills.Breakdown             `json:"skills"`
	OverallPercent    int                          `json:"overall_percent"`
	BasePercent       int                          `json:"base_percent"`
	WritingAdjustment int                          `json:"writing_adjustment"`
	PredictedLevel    level.Level                  `json:"predicted_level"`
	ReviewFrequency   remediation.Frequency        `json:"review_frequency"`
	Recommendations   []remediation.Recommendation `json:"recommendations"`
	Mistakes          []Mistake                    `json:"mistakes"`
	Writing           []WritingResult              `json:"writing"`
	Unanswered        []string                     `json:"unanswered"`
	Items             int                          `json:"items"`
	CorrectItems      int                          `json:"correct_items"`
}

// NoIssues reports whether no remediation topic was credited.
func (r *Result) NoIssues() bool {
	return r.ReviewFrequency.Len() == 0
}
