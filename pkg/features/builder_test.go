package features

import (
	"math"
	"reflect"
	"testing"

	"github.com/ecorpuz/textgauge/models"
	"github.com/ecorpuz/textgauge/pkg/cefr"
)

func emptyProfile() cefr.Profile {
	dist := map[string]int{}
	for _, band := range models.CEFRBands {
		dist[band] = 0
	}
	return cefr.Profile{Distribution: dist}
}

func simpleDoc() *models.Doc {
	// "The cat sat ." / "It ran ."
	tokens := []models.Token{
		{Text: "The", Lemma: "the", Pos: models.PosOther, IsAlpha: true, IsStopword: true, Head: 2},
		{Text: "cat", Lemma: "cat", Pos: models.PosNoun, IsAlpha: true, Head: 2},
		{Text: "sat", Lemma: "sat", Pos: models.PosVerb, IsAlpha: true, Head: 2},
		{Text: ".", Lemma: ".", Pos: models.PosPunct, IsPunct: true, Head: 2},
		{Text: "It", Lemma: "it", Pos: models.PosPron, IsAlpha: true, IsStopword: true, Head: 5},
		{Text: "ran", Lemma: "ran", Pos: models.PosVerb, IsAlpha: true, Head: 5},
		{Text: ".", Lemma: ".", Pos: models.PosPunct, IsPunct: true, Head: 5},
	}
	return &models.Doc{
		Tokens: tokens,
		Sentences: []models.Sentence{
			{Start: 0, End: 4},
			{Start: 4, End: 7},
		},
	}
}

func featureIndex(t *testing.T, name string) int {
	t.Helper()
	for i, n := range FeatureNames {
		if n == name {
			return i
		}
	}
	t.Fatalf("unknown feature name %q", name)
	return -1
}

func TestBuildVectorWidth(t *testing.T) {
	set := Build(simpleDoc(), emptyProfile(), 1)
	if len(set.Vector) != VectorDim {
		t.Fatalf("vector width = %d, want %d", len(set.Vector), VectorDim)
	}
	if len(FeatureNames) != VectorDim {
		t.Fatalf("feature names = %d, want %d", len(FeatureNames), VectorDim)
	}
}

func TestBuildEmptyDocIsAllZero(t *testing.T) {
	set := Build(&models.Doc{}, emptyProfile(), 0)

	if len(set.Vector) != VectorDim {
		t.Fatalf("vector width = %d, want %d", len(set.Vector), VectorDim)
	}
	for i, v := range set.Vector {
		if v != 0 {
			t.Errorf("vector[%d] (%s) = %f, want 0", i, FeatureNames[i], v)
		}
	}
	if set.Metrics.WordCount != 0 || set.Metrics.SentenceCount != 0 {
		t.Errorf("metrics counts = %d/%d, want 0/0", set.Metrics.WordCount, set.Metrics.SentenceCount)
	}
}

func TestBuildBasicCounts(t *testing.T) {
	set := Build(simpleDoc(), emptyProfile(), 1)

	if got := set.Vector[featureIndex(t, "word_count")]; got != 5 {
		t.Errorf("word_count = %f, want 5", got)
	}
	if got := set.Vector[featureIndex(t, "sentence_count")]; got != 2 {
		t.Errorf("sentence_count = %f, want 2", got)
	}
	if got := set.Vector[featureIndex(t, "avg_sentence_length")]; math.Abs(got-2.5) > 1e-9 {
		t.Errorf("avg_sentence_length = %f, want 2.5", got)
	}
	// Two verbs over two sentences.
	if got := set.Vector[featureIndex(t, "clause_density")]; math.Abs(got-1) > 1e-9 {
		t.Errorf("clause_density = %f, want 1", got)
	}
	// Two punctuation tokens over seven tokens.
	if got := set.Vector[featureIndex(t, "punctuation_density")]; math.Abs(got-2.0/7.0) > 1e-9 {
		t.Errorf("punctuation_density = %f, want %f", got, 2.0/7.0)
	}
	// Two stopwords over five words.
	if got := set.Vector[featureIndex(t, "stopword_ratio")]; math.Abs(got-0.4) > 1e-9 {
		t.Errorf("stopword_ratio = %f, want 0.4", got)
	}
	// No difficult words in a five-short-word doc.
	if got := set.Vector[featureIndex(t, "difficult_word_ratio")]; got != 0 {
		t.Errorf("difficult_word_ratio = %f, want 0", got)
	}
}

func TestBuildCEFRFeatures(t *testing.T) {
	profile := emptyProfile()
	profile.Distribution["A1"] = 2
	profile.Distribution["C2"] = 1
	profile.AdvancedCount = 1
	profile.RatedCount = 3

	set := Build(simpleDoc(), profile, 1)

	if got := set.Vector[featureIndex(t, "cefr_a1_ratio")]; math.Abs(got-0.4) > 1e-9 {
		t.Errorf("cefr_a1_ratio = %f, want 0.4", got)
	}
	if got := set.Vector[featureIndex(t, "cefr_c2_ratio")]; math.Abs(got-0.2) > 1e-9 {
		t.Errorf("cefr_c2_ratio = %f, want 0.2", got)
	}
	if got := set.Vector[featureIndex(t, "advanced_word_count")]; got != 1 {
		t.Errorf("advanced_word_count = %f, want 1", got)
	}
	if set.Metrics.AdvancedWordCount != 1 {
		t.Errorf("metrics advanced count = %d, want 1", set.Metrics.AdvancedWordCount)
	}
}

func TestBuildDeterministic(t *testing.T) {
	first := Build(simpleDoc(), emptyProfile(), 1)
	second := Build(simpleDoc(), emptyProfile(), 1)

	if !reflect.DeepEqual(first.Vector, second.Vector) {
		t.Error("same input produced different vectors")
	}
}
