// Package features assembles the fixed-order numeric vector consumed by
// the classifiers, together with the human-facing metrics map. Both are
// derived from one linguistic-analyzer pass so they cannot disagree.
package features

import (
	"math"

	"github.com/ecorpuz/textgauge/models"
	"github.com/ecorpuz/textgauge/pkg/analytics"
	"github.com/ecorpuz/textgauge/pkg/cefr"
	"github.com/ecorpuz/textgauge/pkg/readability"
)

// VectorDim is the feature-vector width. It is a contract shared with
// every trained model: changing the dimension or the order below
// invalidates all persisted models and requires retraining.
const VectorDim = 37

// FeatureNames documents the vector layout, index for index. Keep in
// lockstep with Build.
var FeatureNames = [VectorDim]string{
	"word_count",
	"sentence_count",
	"avg_sentence_length",
	"type_token_ratio",
	"difficult_word_ratio",
	"clause_density",
	"advanced_ratio",
	"structure_cohesion",
	"flesch_kincaid",
	"gunning_fog",
	"avg_syllables_per_word",
	"verb_ratio",
	"noun_ratio",
	"adj_ratio",
	"adv_ratio",
	"pron_ratio",
	"conj_ratio",
	"punctuation_density",
	"stopword_ratio",
	"avg_word_length",
	"sentence_length_stddev",
	"transition_word_ratio",
	"pos_lexical_diversity",
	"logic_connective_ratio",
	"paragraph_sentence_ratio",
	"avg_dependency_distance",
	"cefr_a1_ratio",
	"cefr_a2_ratio",
	"cefr_b1_ratio",
	"cefr_b2_ratio",
	"cefr_c1_ratio",
	"cefr_c2_ratio",
	"advanced_word_count",
	"x_sentlen_advanced",
	"x_ttr_wordlen",
	"x_fk_difficult",
	"x_clause_stopword",
}

// Build derives the feature vector and display metrics from an analyzed
// document and its CEFR profile. Deterministic: the same doc and profile
// always produce the same output. paragraphCount comes from the
// pre-normalization text, since normalization flattens line structure.
func Build(doc *models.Doc, profile cefr.Profile, paragraphCount int) models.FeatureSet {
	words := doc.Words()
	wordCount := len(words)
	sentenceCount := len(doc.Sentences)
	tokenCount := len(doc.Tokens)

	var posCounts = map[models.POS]int{}
	stopwords := 0
	contentTokens := 0
	contentLemmas := map[string]struct{}{}
	transitions := 0
	connectives := 0
	for _, tok := range doc.Tokens {
		posCounts[tok.Pos]++
		if tok.IsStopword {
			stopwords++
		}
		if !tok.IsAlpha {
			continue
		}
		switch tok.Pos {
		case models.PosNoun, models.PosVerb, models.PosAdj, models.PosAdv:
			contentTokens++
			contentLemmas[tok.Lemma] = struct{}{}
		}
		if analytics.IsTransitionWord(tok.Text) {
			transitions++
		}
		if analytics.IsLogicConnective(tok.Text) {
			connectives++
		}
	}

	avgSentenceLength := ratio(float64(wordCount), float64(sentenceCount))
	ttr := readability.TypeTokenRatio(words)
	difficultWords := readability.DifficultWords(words)
	diffRatio := ratio(float64(len(difficultWords)), float64(wordCount)) * 100
	clauseDensity := ratio(float64(posCounts[models.PosVerb]), float64(sentenceCount))
	advancedRatio := ratio(float64(profile.AdvancedCount), float64(wordCount))
	structureScore := readability.StructureCohesion(clauseDensity, avgSentenceLength)

	syllables := readability.TotalSyllables(words)
	fk := readability.FleschKincaidGrade(wordCount, sentenceCount, syllables)
	fog := readability.GunningFog(wordCount, sentenceCount, len(difficultWords))
	avgSyllables := ratio(float64(syllables), float64(wordCount))
	avgWordLength := readability.AvgWordLength(words)
	stddev := readability.SentenceLengthStdDev(doc)

	vector := make([]float64, 0, VectorDim)
	vector = append(vector,
		float64(wordCount),
		float64(sentenceCount),
		avgSentenceLength,
		ttr,
		diffRatio,
		clauseDensity,
		advancedRatio,
		structureScore,
		fk,
		fog,
		avgSyllables,
		ratio(float64(posCounts[models.PosVerb]), float64(wordCount)),
		ratio(float64(posCounts[models.PosNoun]), float64(wordCount)),
		ratio(float64(posCounts[models.PosAdj]), float64(wordCount)),
		ratio(float64(posCounts[models.PosAdv]), float64(wordCount)),
		ratio(float64(posCounts[models.PosPron]), float64(wordCount)),
		ratio(float64(posCounts[models.PosConj]), float64(wordCount)),
		ratio(float64(posCounts[models.PosPunct]), float64(tokenCount)),
		ratio(float64(stopwords), float64(wordCount)),
		avgWordLength,
		stddev,
		ratio(float64(transitions), float64(wordCount)),
		ratio(float64(len(contentLemmas)), float64(contentTokens)),
		ratio(float64(connectives), float64(wordCount)),
		ratio(float64(paragraphCount), float64(sentenceCount)),
		avgDependencyDistance(doc),
	)
	for _, band := range models.CEFRBands {
		vector = append(vector, ratio(float64(profile.Distribution[band]), float64(wordCount)))
	}
	vector = append(vector,
		float64(profile.AdvancedCount),
		avgSentenceLength*advancedRatio,
		ttr*avgWordLength,
		fk*diffRatio,
		clauseDensity*ratio(float64(stopwords), float64(wordCount)),
	)

	metrics := models.Metrics{
		WordCount:          wordCount,
		SentenceCount:      sentenceCount,
		ParagraphCount:     paragraphCount,
		AvgSentenceLength:  avgSentenceLength,
		VocabularyRichness: ttr * 100,
		DifficultWordRatio: diffRatio,
		StructureCohesion:  structureScore,
		DifficultWords:     difficultWords,
		CEFRDistribution:   profile.Distribution,
		AdvancedWordCount:  profile.AdvancedCount,
		CEFRWordGroups:     profile.Groups,
		AdvancedWords:      profile.Groups.Proficient,
		Readability: models.ReadabilityIndices{
			FleschKincaid:       fk,
			GunningFog:          fog,
			AvgSyllablesPerWord: avgSyllables,
		},
	}

	return models.FeatureSet{Vector: vector, Metrics: metrics}
}

// avgDependencyDistance averages |token index - head index| over
// non-punctuation tokens that are not their own head. With the
// analyzer's verb-rooted head links this measures how far words sit from
// their sentence core.
func avgDependencyDistance(doc *models.Doc) float64 {
	total := 0.0
	count := 0
	for i, tok := range doc.Tokens {
		if tok.IsPunct || tok.Head == i {
			continue
		}
		total += math.Abs(float64(i - tok.Head))
		count++
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// ratio returns num/den, or 0 when den is 0. Empty input is a valid
// state throughout the pipeline, never a division fault.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
