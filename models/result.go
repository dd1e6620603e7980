package models

// Issue is a flagged phrase with a suggested replacement. Matching is a
// plain substring lookup against a small fixed table, not a grammar
// engine.
type Issue struct {
	Original   string `json:"original"`
	Suggestion string `json:"suggestion"`
	Category   string `json:"category"`
}

// ProficiencyMetrics is the display sub-map attached to a proficiency
// result.
type ProficiencyMetrics struct {
	VocabularyRichness float64            `json:"vocabularyRichness"`
	SentenceComplexity float64            `json:"sentenceComplexity"`
	GrammarAccuracy    float64            `json:"grammarAccuracy"`
	StructureCohesion  float64            `json:"structureCohesion"`
	CEFRDistribution   map[string]int     `json:"cefrDistribution"`
	AdvancedWords      []string           `json:"advancedWords"`
	Readability        ReadabilityIndices `json:"readability"`
}

// ProficiencyResult is the full report for a student-proficiency
// classification. Constructed fresh per request, never mutated after
// return.
type ProficiencyResult struct {
	Proficiency  string             `json:"proficiency"`
	Feedback     string             `json:"feedback"`
	Metrics      ProficiencyMetrics `json:"metrics"`
	Issues       []Issue            `json:"issues"`
	NatScore     float64            `json:"natScore"`
	LearningBand string             `json:"learningBand"`
	PhilIRILevel string             `json:"philIriLevel"`
}

// ComplexityResult is the full report for a text-complexity
// classification.
type ComplexityResult struct {
	Level                string             `json:"level"`
	Score                float64            `json:"score"`
	Reasoning            string             `json:"reasoning"`
	ReadabilityScore     float64            `json:"readabilityScore"`
	WordCount            int                `json:"wordCount"`
	Keywords             []string           `json:"keywords"`
	FixationDuration     float64            `json:"fixationDuration"`
	RegressionIndex      float64            `json:"regressionIndex"`
	EstimatedReadingTime float64            `json:"estimatedReadingTime"`
	AvgSentenceLength    float64            `json:"avgSentenceLength"`
	DifficultWordRatio   float64            `json:"difficultWordRatio"`
	HighlightedSegments  []string           `json:"highlightedSegments"`
	Readability          ReadabilityIndices `json:"readability"`
}

// EvaluationMetrics holds offline evaluation numbers for one trained
// model, read from the metrics store. It reports on training runs and
// has no bearing on live prediction.
type EvaluationMetrics struct {
	Accuracy  string   `json:"accuracy"`
	F1        float64  `json:"f1"`
	Precision float64  `json:"precision"`
	Recall    float64  `json:"recall"`
	Labels    []string `json:"labels"`
	Matrix    [][]int  `json:"matrix"`
	Available bool     `json:"available"`
}
