package remediation

import (
	"encoding/json"
	"sort"
)

// DefaultTopN is how many topics a ranking returns when no limit is configured.
const DefaultTopN = 18

// Recommendation is a ranked remediation topic resolved to its prescription.
type Recommendation struct {
	Topic        Topic  `json:"topic"`
	Count        int    `json:"count"`
	Prescription string `json:"prescription"`
}

// TopicCount is one entry of a Frequency.
type TopicCount struct {
	Topic Topic `json:"topic"`
	Count int   `json:"count"`
}

// Frequency tallies how often each topic was implicated, remembering the
// order in which topics were first credited.
type Frequency struct {
	order  []Topic
	counts map[Topic]int
}

// Credit increments the count of every given topic by one.
func (f *Frequency) Credit(topics ...Topic) {
	if f.counts == nil {
		f.counts = make(map[Topic]int)
	}
	for _, t := range topics {
		if _, seen := f.counts[t]; !seen {
			f.order = append(f.order, t)
		}
		f.counts[t]++
	}
}

// Count returns how many times a topic was credited.
func (f Frequency) Count(t Topic) int {
	return f.counts[t]
}

// Len returns the number of distinct topics credited.
func (f Frequency) Len() int {
	return len(f.order)
}

// Total returns the sum of all counts.
func (f Frequency) Total() int {
	n := 0
	for _, c := range f.counts {
		n += c
	}
	return n
}

// Entries returns every topic with its count in first-credited order.
func (f Frequency) Entries() []TopicCount {
	out := make([]TopicCount, len(f.order))
	for i, t := range f.order {
		out[i] = TopicCount{Topic: t, Count: f.counts[t]}
	}
	return out
}

// Top returns up to n topics ordered by descending count. Ties keep
// first-credited order. A non-positive n means DefaultTopN.
func (f Frequency) Top(n int, lib Library) []Recommendation {
	if n <= 0 {
		n = DefaultTopN
	}

	entries := f.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > n {
		entries = entries[:n]
	}

	recs := make([]Recommendation, len(entries))
	for i, e := range entries {
		recs[i] = Recommendation{
			Topic:        e.Topic,
			Count:        e.Count,
			Prescription: lib.Prescription(e.Topic),
		}
	}
	return recs
}

// MarshalJSON encodes the tally as an ordered list of topic counts.
func (f Frequency) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Entries())
}
