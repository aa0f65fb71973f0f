package domain

// SentenceComponent is one word or phrase of a sentence tagged with a
// grammatical role. Components come straight from the LLM reply and are
// immutable after construction; Position is LLM-supplied and may be off.
type SentenceComponent struct {
	Type        string            `json:"type"`
	Value       string            `json:"value"`
	Position    int               `json:"position"`
	Translation *string           `json:"translation,omitempty"`
	Details     map[string]string `json:"details,omitempty"`
}

// SentenceAnalysis is the breakdown of a single sentence.
// Components may be empty when the LLM reply could not be parsed
// (degraded success, not an error).
type SentenceAnalysis struct {
	Sentence            string              `json:"sentence"`
	SentenceTranslation *string             `json:"sentence_translation,omitempty"`
	Components          []SentenceComponent `json:"components"`
}

// TextAnalysis is the top-level result for one analyzed text.
// Sentences follow source order, one entry per valid sentence segment.
type TextAnalysis struct {
	OriginalText string             `json:"original_text"`
	Sentences    []SentenceAnalysis `json:"sentences"`

	// Summary is reserved for aggregate statistics.
	Summary map[string]any `json:"summary,omitempty"`
}
