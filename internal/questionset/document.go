package questionset

import (
	"errors"
	"fmt"

	"github.com/abhisek/placement/internal/answer"
	"github.com/abhisek/placement/internal/remediation"
	"github.com/abhisek/placement/internal/skills"
)

// document is the on-disk shape of a question set.
type document struct {
	Version     string            `json:"version" validate:"required"`
	Title       string            `json:"title"`
	Remediation map[string]string `json:"remediation" validate:"dive,keys,required,endkeys,required"`
	Sections    []sectionDoc      `json:"sections" validate:"required,min=1,dive"`
}

type sectionDoc struct {
	ID    string    `json:"id" validate:"required"`
	Title string    `json:"title" validate:"required"`
	Items []itemDoc `json:"items" validate:"required,min=1,dive"`
}

type itemDoc struct {
	ID         string     `json:"id" validate:"required"`
	Type       string     `json:"type" validate:"required,item_type"`
	Skill      string     `json:"skill" validate:"required"`
	LevelHint  string     `json:"level_hint"`
	Prompt     string     `json:"prompt"`
	Passage    string     `json:"passage"`
	TTSText    string     `json:"tts_text"`
	Options    []string   `json:"options" validate:"omitempty,min=2"`
	Answer     *answerDoc `json:"answer"`
	ReviewTags []string   `json:"review_tags" validate:"dive,required"`
	BlankCount int        `json:"blank_count" validate:"gte=0"`
}

// answerDoc carries exactly one answer form, selected by its key.
type answerDoc struct {
	Exact   *string    `json:"exact"`
	AnyOf   []string   `json:"any_of"`
	Parts   [][]string `json:"parts"`
	Pattern *string    `json:"pattern"`
	Blanks  [][]string `json:"blanks"`
}

// spec converts the document form into a tagged answer spec.
func (a *answerDoc) spec() (answer.Spec, error) {
	if a == nil {
		return answer.Spec{}, nil
	}

	var keys []string
	if a.Exact != nil {
		keys = append(keys, "exact")
	}
	if a.AnyOf != nil {
		keys = append(keys, "any_of")
	}
	if a.Parts != nil {
		keys = append(keys, "parts")
	}
	if a.Pattern != nil {
		keys = append(keys, "pattern")
	}
	if a.Blanks != nil {
		keys = append(keys, "blanks")
	}
	switch len(keys) {
	case 0:
		return answer.Spec{}, errors.New("answer has no form (want one of exact, any_of, parts, pattern, blanks)")
	case 1:
	default:
		return answer.Spec{}, fmt.Errorf("answer has %d forms %v, want exactly one", len(keys), keys)
	}

	switch {
	case a.Exact != nil:
		return answer.Exact(*a.Exact), nil
	case a.AnyOf != nil:
		return answer.AnyOf(a.AnyOf...), nil
	case a.Parts != nil:
		return answer.Parts(a.Parts...), nil
	case a.Pattern != nil:
		return answer.Pattern(*a.Pattern)
	default:
		return answer.Blanks(a.Blanks...), nil
	}
}

// build converts a checked document into a Set. Items whose answer could
// not be built keep the zero spec; callers only build after validation.
func (d *document) build() *Set {
	set := &Set{
		Version:  d.Version,
		Title:    d.Title,
		Sections: make([]Section, len(d.Sections)),
	}
	if len(d.Remediation) > 0 {
		set.Remediation = make(map[remediation.Topic]string, len(d.Remediation))
		for topic, p := range d.Remediation {
			set.Remediation[remediation.Topic(topic)] = p
		}
	}

	for i, sd := range d.Sections {
		sec := Section{ID: sd.ID, Title: sd.Title, Items: make([]Item, len(sd.Items))}
		for j, id := range sd.Items {
			spec, _ := id.Answer.spec()
			it := Item{
				ID:         id.ID,
				Type:       Type(id.Type),
				Skill:      skills.Skill(id.Skill),
				LevelHint:  id.LevelHint,
				Prompt:     id.Prompt,
				Passage:    id.Passage,
				TTSText:    id.TTSText,
				Options:    append([]string(nil), id.Options...),
				Answer:     spec,
				BlankCount: id.BlankCount,
			}
			if it.Type == MultiBlank && it.BlankCount == 0 {
				it.BlankCount = spec.BlankCount()
			}
			for _, tag := range id.ReviewTags {
				it.ReviewTags = append(it.ReviewTags, remediation.Topic(tag))
			}
			sec.Items[j] = it
		}
		set.Sections[i] = sec
	}
	return set
}
