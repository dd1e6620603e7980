// Package report turns raw classifier output and metrics into the final
// structured reports handed to callers.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/ecorpuz/textgauge/models"
	"github.com/ecorpuz/textgauge/pkg/classifier"
)

// phraseSuggestions is a fixed substring-to-replacement table for the
// flagged-issue stubs. This is deliberately naive pattern matching, a
// placeholder for a real grammar engine, and should be read as such.
var phraseSuggestions = []models.Issue{
	{Original: "very good", Suggestion: "excellent", Category: "VOCABULARY"},
	{Original: "very big", Suggestion: "enormous", Category: "VOCABULARY"},
	{Original: "very small", Suggestion: "tiny", Category: "VOCABULARY"},
	{Original: "a lot of", Suggestion: "many", Category: "STYLE"},
	{Original: "in order to", Suggestion: "to", Category: "CONCISENESS"},
	{Original: "due to the fact that", Suggestion: "because", Category: "CONCISENESS"},
}

// proficiencyBands maps each label to its pedagogical tier and its
// calibrated display-score range.
var proficiencyBands = map[string]struct {
	learningBand string
	philIRI      string
	minScore     float64
	maxScore     float64
}{
	classifier.LabelIndependent:   {"Enhancement", "Independent", 80, 99},
	classifier.LabelInstructional: {"Consolidation", "Instructional", 50, 79},
	classifier.LabelFrustration:   {"Intervention", "Frustration", 0, 49},
}

// FindIssues scans text for the fixed phrase table, case-insensitively.
func FindIssues(text string) []models.Issue {
	lower := strings.ToLower(text)
	issues := []models.Issue{}
	for _, issue := range phraseSuggestions {
		if strings.Contains(lower, issue.Original) {
			issues = append(issues, issue)
		}
	}
	return issues
}

// ComposeProficiency builds the proficiency report from a prediction and
// the metrics of the same analysis pass.
func ComposeProficiency(pred classifier.Prediction, m models.Metrics, text string) models.ProficiencyResult {
	band, ok := proficiencyBands[pred.Label]
	if !ok {
		band = proficiencyBands[classifier.LabelFrustration]
	}

	// The display score lives inside the label's own sub-range so a
	// trained-model label never contradicts its number.
	natScore := math.Min(band.maxScore, math.Max(band.minScore, pred.Score))

	boost := math.Min(15, float64(m.AdvancedWordCount)*2)

	return models.ProficiencyResult{
		Proficiency: pred.Label,
		Feedback:    proficiencyFeedback(pred.Label, m.AdvancedWordCount),
		Metrics: models.ProficiencyMetrics{
			VocabularyRichness: round2(math.Min(100, m.VocabularyRichness+boost)),
			SentenceComplexity: round2(m.AvgSentenceLength * 2),
			// Grammar scoring belongs to the separate rule-based checker;
			// this field is a fixed placeholder until that integration.
			GrammarAccuracy:   85.0,
			StructureCohesion: round2(m.StructureCohesion),
			CEFRDistribution:  m.CEFRDistribution,
			AdvancedWords:     m.AdvancedWords,
			Readability:       m.Readability,
		},
		Issues:       FindIssues(text),
		NatScore:     math.Min(99, round2(natScore)),
		LearningBand: band.learningBand,
		PhilIRILevel: band.philIRI,
	}
}

// ComposeComplexity builds the complexity report.
func ComposeComplexity(pred classifier.Prediction, m models.Metrics) models.ComplexityResult {
	score := math.Min(100, round2(pred.Score))

	keywords := m.DifficultWords
	if len(keywords) > 5 {
		keywords = keywords[:5]
	}

	return models.ComplexityResult{
		Level: pred.Label,
		Score: score,
		Reasoning: fmt.Sprintf("Classified as %s based on linguistic analysis (L:%.1f, D:%.1f%%).",
			pred.Label, m.AvgSentenceLength, m.DifficultWordRatio),
		ReadabilityScore:     math.Max(0, round2(100-pred.Score)),
		WordCount:            m.WordCount,
		Keywords:             keywords,
		FixationDuration:     math.Min(90, round1(30+pred.Score*0.5)),
		RegressionIndex:      math.Min(50, round1(10+m.DifficultWordRatio*2)),
		EstimatedReadingTime: round2(float64(m.WordCount) / 150),
		AvgSentenceLength:    round2(m.AvgSentenceLength),
		DifficultWordRatio:   round2(m.DifficultWordRatio),
		HighlightedSegments:  m.DifficultWords,
		Readability:          m.Readability,
	}
}

func proficiencyFeedback(label string, advancedCount int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rated as %s. ", label)

	switch label {
	case classifier.LabelIndependent:
		b.WriteString("The writing shows strong control of vocabulary and sentence structure. ")
	case classifier.LabelInstructional:
		b.WriteString("The writing is developing well; guided practice will strengthen structure and word choice. ")
	default:
		b.WriteString("The writing needs focused support with vocabulary and sentence construction. ")
	}

	if advancedCount > 0 {
		fmt.Fprintf(&b, "Detected %d CEFR Advanced (C1/C2) words. ", advancedCount)
	}
	return b.String()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
