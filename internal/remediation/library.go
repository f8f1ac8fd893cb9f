package remediation

import "sort"

// Topic identifies a remediation micro-topic, e.g. "B1: dependent prepositions".
type Topic string

// GenericPrescription is returned for topics missing from a library.
const GenericPrescription = "Targeted practice for this micro-topic."

// NoIssuesMessage is shown when an evaluation credited no topic at all.
const NoIssuesMessage = "Excellent performance. Maintain your level with periodic reading/listening and targeted writing practice."

// Library maps topics to practice prescriptions. Lookups are total:
// unknown topics resolve to GenericPrescription.
type Library struct {
	entries map[Topic]string
}

// NewLibrary builds a library from a topic → prescription table.
func NewLibrary(entries map[Topic]string) Library {
	cp := make(map[Topic]string, len(entries))
	for t, p := range entries {
		cp[t] = p
	}
	return Library{entries: cp}
}

// DefaultLibrary returns the built-in prescription library.
func DefaultLibrary() Library {
	return NewLibrary(seedPrescriptions)
}

// Prescription returns the practice prescription for a topic.
func (l Library) Prescription(t Topic) string {
	if p, ok := l.entries[t]; ok && p != "" {
		return p
	}
	return GenericPrescription
}

// Has reports whether the library holds a specific prescription for t.
func (l Library) Has(t Topic) bool {
	p, ok := l.entries[t]
	return ok && p != ""
}

// Merge returns a new library with overrides layered over l.
func (l Library) Merge(overrides map[Topic]string) Library {
	merged := make(map[Topic]string, len(l.entries)+len(overrides))
	for t, p := range l.entries {
		merged[t] = p
	}
	for t, p := range overrides {
		merged[t] = p
	}
	return Library{entries: merged}
}

// Topics returns every topic in the library, sorted.
func (l Library) Topics() []Topic {
	out := make([]Topic, 0, len(l.entries))
	for t := range l.entries {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of topics in the library.
func (l Library) Len() int { return len(l.entries) }
