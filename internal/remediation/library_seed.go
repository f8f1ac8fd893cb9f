package remediation

// Writing-band topics. Every writing response credits exactly one of these.
const (
	TopicWritingCoherence Topic = "B1: paragraphing and basic coherence"
	TopicWritingRange     Topic = "B2: range of tenses & linking devices"
	TopicWritingRegister  Topic = "C1: register control and cohesion"
	TopicWritingPrecision Topic = "C2: precision and nuance in argumentation"
)

// seedPrescriptions is the built-in library: 22 topics from A1 to C2.
var seedPrescriptions = map[Topic]string{
	// Grammar
	"A1: family vocabulary in subject position": "Revise basic family nouns and subject pronouns (my/your/his/her). 10 quick sentences describing relatives.",
	"A1: 'be' + noun":                           "Short drills with 'be' (am/is/are) + noun/adjective. Focus on contractions and word order.",
	"A2: Present Simple 3rd person -s":          "Conjugation grid; 20 sentences adding -s/-es; contrast with I/you forms.",
	"B1: Past Simple vs Present Perfect":        "Signal words (yesterday/ago vs since/for/already). 15 contrast items + short timeline task.",
	"B2: Passive voice (past simple)":           "Transform 20 active→passive sentences; include by-agent and time adverbials.",
	"C1: Mixed conditionals (3rd + 2nd)":        "Build chains: past cause → present result. Write 10 mixed examples from prompts.",
	"C2: Inversion after negative adverbials":   "Inversion starter set: Never/Rarely/Hardly/Only then/etc. Rewrite 12 sentences.",

	// Vocabulary
	"A1: basic adjectives of weather": "Mini-picture prompts; choose an adjective; expand with 'It’s... today.'",
	"B1: adjectives of character":     "Collocate adjectives with nouns (reliable colleague, trustworthy friend). Make 10 collocations.",
	"C1: academic verbs / nuance":     "Verb families (mitigate/alleviate). Build paraphrases in context; 12 sentence rewrites.",

	// Use of English
	"B1: dependent prepositions":    "Gap-fill with prepositions (look for, fed up with). 25 items + error-correction.",
	"B1: fixed expressions":         "Chunks list: 'fed up with', 'in charge of', 'on time'. Make mini-dialogues.",
	"B2: word formation (suffixes)": "Suffix tables: -tion/-ment/-ity. Convert base→noun in 30 items.",
	"C1: collocations":              "Verb–noun banks (commit a crime, pose a threat). Write 10 original sentences.",

	// Listening
	"A2: specific information (times)":          "Listening for times. Practise: opening hours, timetables; answer with numbers.",
	"B2: announcements — extracting key detail": "Noting delay durations/platforms. Do 10 short audios; write key figures.",

	// Reading
	"B1: identify main idea":   "Skim strategies; topic sentence recognition. Summarise paragraphs in 1 line.",
	"C1: cause–effect inference": "Connectors: although/therefore/however. Infer unintended outcomes from short texts.",

	// Writing
	TopicWritingCoherence: "PEE (Point–Evidence–Explanation). Write 2×140-word narratives with clear paragraphs.",
	TopicWritingRange:     "Vary tenses; use linking (however, therefore). Rewrite to increase variety.",
	TopicWritingRegister:  "Reduce repetition; use referencing devices. Edit for cohesive flow.",
	TopicWritingPrecision: "Strengthen hedging and stance (arguably, ostensibly). Mini-essay polishing.",
}
