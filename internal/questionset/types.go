package questionset

import (
	"github.com/abhisek/placement/internal/answer"
	"github.com/abhisek/placement/internal/remediation"
	"github.com/abhisek/placement/internal/skills"
	"github.com/abhisek/placement/internal/writing"
)

// Type is the declared kind of a question item.
type Type string

const (
	SingleChoice    Type = "single_choice"
	OpenText        Type = "open_text"
	MultiBlank      Type = "multi_blank"
	PatternMatch    Type = "pattern_match"
	ListeningPrompt Type = "listening_prompt"
	ExtendedWriting Type = "extended_writing"
)

// AllTypes returns every item type in declaration order.
func AllTypes() []Type {
	return []Type{
		SingleChoice,
		OpenText,
		MultiBlank,
		PatternMatch,
		ListeningPrompt,
		ExtendedWriting,
	}
}

var allowedKinds = map[Type][]answer.Kind{
	SingleChoice:    {answer.KindExact, answer.KindAnyOf},
	OpenText:        {answer.KindExact, answer.KindAnyOf, answer.KindParts, answer.KindPattern},
	ListeningPrompt: {answer.KindExact, answer.KindAnyOf, answer.KindParts, answer.KindPattern},
	PatternMatch:    {answer.KindPattern},
	MultiBlank:      {answer.KindMultiBlank},
	ExtendedWriting: {answer.KindNone},
}

// Valid reports whether t is a known item type.
func (t Type) Valid() bool {
	_, ok := allowedKinds[t]
	return ok
}

// Allows reports whether an answer spec of kind k may key an item of type t.
func (t Type) Allows(k answer.Kind) bool {
	for _, a := range allowedKinds[t] {
		if a == k {
			return true
		}
	}
	return false
}

// AllowedKinds returns the answer kinds accepted for t.
func (t Type) AllowedKinds() []answer.Kind {
	return append([]answer.Kind(nil), allowedKinds[t]...)
}

// Item is one assessable unit.
type Item struct {
	ID         string
	Type       Type
	Skill      skills.Skill
	LevelHint  string
	Prompt     string
	Passage    string
	TTSText    string
	Options    []string
	Answer     answer.Spec
	ReviewTags []remediation.Topic
	BlankCount int
}

// IsWriting reports whether the item is scored by the writing heuristic.
func (it Item) IsWriting() bool {
	return it.Type == ExtendedWriting
}

// Units returns how many scoring units the item contributes to its skill.
func (it Item) Units() int {
	switch {
	case it.IsWriting():
		return writing.MaxScore
	case it.Type == MultiBlank:
		return it.Answer.BlankCount()
	}
	return 1
}

// Section groups items under a display title.
type Section struct {
	ID    string
	Title string
	Items []Item
}

// Set is a complete, validated question set. It is immutable once loaded.
type Set struct {
	Version     string
	Title       string
	Sections    []Section
	Remediation map[remediation.Topic]string
}

// ItemCount returns the number of items across all sections.
func (s *Set) ItemCount() int {
	n := 0
	for _, sec := range s.Sections {
		n += len(sec.Items)
	}
	return n
}

// Item returns the item with the given ID.
func (s *Set) Item(id string) (Item, bool) {
	for _, sec := range s.Sections {
		for _, it := range sec.Items {
			if it.ID == id {
				return it, true
			}
		}
	}
	return Item{}, false
}

// Library returns base with the set's own prescriptions layered over it.
func (s *Set) Library(base remediation.Library) remediation.Library {
	if len(s.Remediation) == 0 {
		return base
	}
	return base.Merge(s.Remediation)
}

// FallbackTags returns, in first-seen order, every review tag that lib
// resolves only to the generic prescription.
func (s *Set) FallbackTags(lib remediation.Library) []remediation.Topic {
	seen := make(map[remediation.Topic]bool)
	var out []remediation.Topic
	for _, sec := range s.Sections {
		for _, it := range sec.Items {
			for _, tag := range it.ReviewTags {
				if seen[tag] {
					continue
				}
				seen[tag] = true
				if !lib.Has(tag) {
					out = append(out, tag)
				}
			}
		}
	}
	return out
}
