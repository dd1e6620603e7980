package models

// CEFR band names in ordinal order, A1 (easiest) through C2.
var CEFRBands = []string{"A1", "A2", "B1", "B2", "C1", "C2"}

// CEFRWordGroups buckets the rated vocabulary of a text into the three
// broad CEFR tiers. Each word appears exactly once per group, lowercased
// and sorted, so output is deterministic.
type CEFRWordGroups struct {
	Basic       []string `json:"basic"`       // A1-A2
	Independent []string `json:"independent"` // B1-B2
	Proficient  []string `json:"proficient"`  // C1-C2
}

// ReadabilityIndices groups the classic readability formula outputs.
type ReadabilityIndices struct {
	FleschKincaid       float64 `json:"fleschKincaid"`
	GunningFog          float64 `json:"gunningFog"`
	AvgSyllablesPerWord float64 `json:"avgSyllablesPerWord"`
}

// Metrics is the human-facing measurement map for one analyzed text.
// It is built once per analysis and read-only afterwards; the result
// composer and the feature vector share the same underlying pass.
type Metrics struct {
	WordCount          int                `json:"wordCount"`
	SentenceCount      int                `json:"sentenceCount"`
	ParagraphCount     int                `json:"paragraphCount"`
	AvgSentenceLength  float64            `json:"avgSentenceLength"`
	VocabularyRichness float64            `json:"vocabularyRichness"` // TTR * 100
	DifficultWordRatio float64            `json:"difficultWordRatio"` // percent
	StructureCohesion  float64            `json:"structureCohesion"`
	DifficultWords     []string           `json:"difficultWords"`
	CEFRDistribution   map[string]int     `json:"cefrDistribution"`
	AdvancedWordCount  int                `json:"advancedWordCount"`
	CEFRWordGroups     CEFRWordGroups     `json:"cefrWordGroups"`
	AdvancedWords      []string           `json:"advancedWords"`
	Readability        ReadabilityIndices `json:"readability"`
}

// FeatureSet pairs the numeric vector fed to a classifier with the
// display metrics derived from the same analyzer pass.
type FeatureSet struct {
	Vector  []float64 `json:"vector"`
	Metrics Metrics   `json:"metrics"`
}
