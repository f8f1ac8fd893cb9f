// Package report renders evaluation results for people and other tools.
package report

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/abhisek/placement/internal/answer"
	"github.com/abhisek/placement/internal/evaluation"
	"github.com/abhisek/placement/internal/questionset"
	"github.com/abhisek/placement/internal/remediation"
)

// namespace is the UUID namespace of report IDs.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/abhisek/placement/report"))

// Report is an evaluation result with the context needed to present it.
type Report struct {
	ID         string             `json:"id"`
	Candidate  string             `json:"candidate,omitempty"`
	SetTitle   string             `json:"set_title,omitempty"`
	SetVersion string             `json:"set_version"`
	Result     *evaluation.Result `json:"result"`
	// Summary is the no-issues message when nothing needs review.
	Summary string `json:"summary,omitempty"`
}

// New builds a report. The ID is derived from the question set identity,
// the candidate and the answers, so identical inputs get identical IDs.
func New(set *questionset.Set, sub *questionset.Submission, res *evaluation.Result) *Report {
	r := &Report{Result: res}
	if set != nil {
		r.SetTitle = set.Title
		r.SetVersion = set.Version
	}
	var answers map[string]answer.Response
	if sub != nil {
		r.Candidate = sub.Candidate
		answers = sub.Answers
	}
	if res != nil && res.NoIssues() {
		r.Summary = remediation.NoIssuesMessage
	}
	r.ID = reportID(r.SetTitle, r.SetVersion, r.Candidate, answers)
	return r
}

func reportID(title, version, candidate string, answers map[string]answer.Response) string {
	// Map keys marshal in sorted order.
	name, err := json.Marshal(struct {
		Title     string                     `json:"title"`
		Version   string                     `json:"version"`
		Candidate string                     `json:"candidate"`
		Answers   map[string]answer.Response `json:"answers"`
	}{title, version, candidate, answers})
	if err != nil {
		return uuid.NewSHA1(namespace, []byte(title+"\x00"+version+"\x00"+candidate)).String()
	}
	return uuid.NewSHA1(namespace, name).String()
}
