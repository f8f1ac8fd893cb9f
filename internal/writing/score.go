// Package writing scores free-text writing responses with a coarse,
// deterministic heuristic. It is a proxy for competence, not a grammar checker.
package writing

import (
	"regexp"
	"strings"

	"github.com/abhisek/placement/internal/remediation"
)

// MaxScore is the highest score a writing response can earn.
const MaxScore = 6

const (
	minWords       = 110
	longWords      = 140
	minConnectives = 2
	minTenses      = 3
)

var connectives = []string{
	"however", "therefore", "moreover", "in addition", "although",
	"whereas", "despite", "furthermore", "consequently", "on the other hand",
}

// Each marker carries its trailing space so "is" does not match "isn't".
var tenseMarkers = []string{
	"have ", "had ", "will ", "would ", "was ", "were ", "am ", "is ", "are ",
}

var sentenceBoundary = regexp.MustCompile(`[.!?]\s+\p{Lu}`)

// Analysis holds the individual signals behind a writing score.
type Analysis struct {
	Words       int      `json:"words"`
	Connectives []string `json:"connectives"`
	Tenses      []string `json:"tenses"`
	Segmented   bool     `json:"segmented"`
	Score       int      `json:"score"`
}

// Analyze extracts every scoring signal from text and computes the score.
// Markers are matched as substrings of the lower-cased text, each counted once.
func Analyze(text string) Analysis {
	lower := strings.ToLower(text)

	a := Analysis{
		Words:       len(strings.Fields(text)),
		Connectives: present(lower, connectives),
		Tenses:      present(lower, tenseMarkers),
		Segmented:   sentenceBoundary.MatchString(text),
	}

	score := 0
	if a.Words >= minWords {
		score += 2
	}
	if a.Words >= longWords {
		score++
	}
	if len(a.Connectives) >= minConnectives {
		score++
	}
	if len(a.Tenses) >= minTenses {
		score++
	}
	if a.Segmented {
		score++
	}
	a.Score = min(score, MaxScore)
	return a
}

// Score returns the heuristic writing score of text in [0, MaxScore].
func Score(text string) int {
	return Analyze(text).Score
}

func present(text string, markers []string) []string {
	var hits []string
	for _, m := range markers {
		if strings.Contains(text, m) {
			hits = append(hits, m)
		}
	}
	return hits
}

// Band is a writing proficiency band with the remediation topic it credits.
type Band struct {
	Level string
	Topic remediation.Topic
}

var bands = [...]Band{
	{Level: "B1", Topic: remediation.TopicWritingCoherence},
	{Level: "B2", Topic: remediation.TopicWritingRange},
	{Level: "C1", Topic: remediation.TopicWritingRegister},
	{Level: "C2", Topic: remediation.TopicWritingPrecision},
}

// BandFor maps a writing score to its band: ≤2 B1, 3–4 B2, 5 C1, 6 C2.
func BandFor(score int) Band {
	switch {
	case score <= 2:
		return bands[0]
	case score <= 4:
		return bands[1]
	case score == 5:
		return bands[2]
	default:
		return bands[3]
	}
}
