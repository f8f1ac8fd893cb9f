// Package evaluation grades a candidate's answers against a question set
// and folds the outcome into per-skill scores, a predicted level and
// ranked remediation.
package evaluation

import (
	"github.com/abhisek/placement/internal/answer"
	"github.com/abhisek/placement/internal/level"
	"github.com/abhisek/placement/internal/questionset"
	"github.com/abhisek/placement/internal/remediation"
	"github.com/abhisek/placement/internal/skills"
	"github.com/abhisek/placement/internal/writing"
)

// Engine evaluates answer snapshots. It holds no per-run state and is
// safe for concurrent use.
type Engine struct {
	topN      int
	library   remediation.Library
	estimator level.Estimator
}

// Option configures an Engine.
type Option func(*Engine)

// WithTopN sets how many remediation topics are recommended.
// Non-positive values keep remediation.DefaultTopN.
func WithTopN(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.topN = n
		}
	}
}

// WithLibrary replaces the built-in prescription library. A question set's
// own prescriptions are still layered over it.
func WithLibrary(lib remediation.Library) Option {
	return func(e *Engine) {
		e.library = lib
	}
}

// WithEstimator replaces the default level estimator.
func WithEstimator(est level.Estimator) Option {
	return func(e *Engine) {
		e.estimator = est
	}
}

// New creates an Engine with default settings adjusted by opts.
func New(opts ...Option) *Engine {
	e := &Engine{
		topN:      remediation.DefaultTopN,
		library:   remediation.DefaultLibrary(),
		estimator: level.DefaultEstimator(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate grades answers against set with default settings.
func Evaluate(set *questionset.Set, answers Answers) *Result {
	return New().Evaluate(set, answers)
}

// Evaluate grades every item of set. Missing or malformed answers grade as
// incorrect; it never fails.
func (e *Engine) Evaluate(set *questionset.Set, answers Answers) *Result {
	res := &Result{}
	if set == nil {
		res.PredictedLevel = level.ForPercent(e.estimator.Bands, 0)
		return res
	}

	var agg skills.Aggregator
	var freq remediation.Frequency

	for _, sec := range set.Sections {
		for _, item := range sec.Items {
			r := answers[item.ID]
			res.Items++
			if r.Blank() {
				res.Unanswered = append(res.Unanswered, item.ID)
			}

			if item.IsWriting() {
				wr := scoreWriting(sec, item, r)
				agg.Add(item.Skill, wr.Analysis.Score, item.Units())
				freq.Credit(wr.Topic)
				res.Writing = append(res.Writing, wr)
				continue
			}

			m := answer.Match(item.Answer, r)
			credit := 0
			if item.Type == questionset.MultiBlank {
				credit = m.Credit
			} else if m.Correct {
				credit = 1
			}
			agg.Add(item.Skill, credit, item.Units())

			if m.Correct {
				res.CorrectItems++
				continue
			}
			freq.Credit(item.ReviewTags...)
			res.Mistakes = append(res.Mistakes, recordMistake(sec, item, r))
		}
	}

	res.Skills = agg.Breakdown()
	est := e.estimator.Estimate(res.Skills)
	res.OverallPercent = est.OverallPercent
	res.BasePercent = est.BasePercent
	res.WritingAdjustment = est.WritingAdjustment
	res.PredictedLevel = est.Level
	res.ReviewFrequency = freq
	res.Recommendations = freq.Top(e.topN, set.Library(e.library))
	return res
}

func scoreWriting(sec questionset.Section, item questionset.Item, r answer.Response) WritingResult {
	a := writing.Analyze(r.Text())
	band := writing.BandFor(a.Score)
	return WritingResult{
		ItemID:   item.ID,
		Section:  sec.Title,
		Analysis: a,
		Band:     band.Level,
		Topic:    band.Topic,
	}
}
