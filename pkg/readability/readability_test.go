package readability

import (
	"math"
	"reflect"
	"testing"

	"github.com/ecorpuz/textgauge/models"
)

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"", 0},
		{"cat", 1},
		{"table", 2},
		{"little", 2},
		{"make", 1},
		{"apple", 2},
		{"banana", 3},
		{"the", 1},
		{"rhythm", 1},
		{"xyz", 1},
		{"Elephant", 3},
		{"ubiquitous", 4},
	}

	for _, tt := range tests {
		if got := CountSyllables(tt.word); got != tt.want {
			t.Errorf("CountSyllables(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestTypeTokenRatio(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  float64
	}{
		{"empty", nil, 0},
		{"all repeats", []string{"the", "the", "the"}, 1.0 / 3.0},
		{"all unique", []string{"one", "two", "three"}, 1},
		{"case insensitive", []string{"Cat", "cat"}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TypeTokenRatio(tt.words)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("TypeTokenRatio(%v) = %f, want %f", tt.words, got, tt.want)
			}
		})
	}
}

func TestDifficultWords(t *testing.T) {
	words := []string{"cat", "extraordinary", "mat", "fundamental", "dog"}
	got := DifficultWords(words)
	want := []string{"extraordinary", "fundamental"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DifficultWords() = %v, want %v", got, want)
	}

	// Exactly nine characters is not difficult; ten is.
	if IsDifficult("ninechars") {
		t.Error("IsDifficult(\"ninechars\") = true, want false")
	}
	if !IsDifficult("tencharsxx") {
		t.Error("IsDifficult(\"tencharsxx\") = false, want true")
	}
}

func TestFleschKincaidGrade(t *testing.T) {
	// Zero counts never fault and never go negative.
	if got := FleschKincaidGrade(0, 0, 0); got != 0 {
		t.Errorf("FleschKincaidGrade(0,0,0) = %f, want 0", got)
	}
	if got := FleschKincaidGrade(3, 1, 3); got < 0 {
		t.Errorf("FleschKincaidGrade(3,1,3) = %f, want >= 0", got)
	}

	// 20 words, 1 sentence, 40 syllables:
	// 0.39*20 + 11.8*2 - 15.59 = 15.81
	got := FleschKincaidGrade(20, 1, 40)
	if math.Abs(got-15.81) > 1e-9 {
		t.Errorf("FleschKincaidGrade(20,1,40) = %f, want 15.81", got)
	}
}

func TestGunningFog(t *testing.T) {
	if got := GunningFog(0, 0, 0); got != 0 {
		t.Errorf("GunningFog(0,0,0) = %f, want 0", got)
	}

	// 10 words, 2 sentences, 1 difficult:
	// 0.4*(5 + 10) = 6
	got := GunningFog(10, 2, 1)
	if math.Abs(got-6) > 1e-9 {
		t.Errorf("GunningFog(10,2,1) = %f, want 6", got)
	}
}

func TestStructureCohesion(t *testing.T) {
	// 1.5*10 + 8*2 = 31
	got := StructureCohesion(1.5, 8)
	if math.Abs(got-31) > 1e-9 {
		t.Errorf("StructureCohesion(1.5, 8) = %f, want 31", got)
	}

	// Capped at 100.
	if got := StructureCohesion(20, 50); got != 100 {
		t.Errorf("StructureCohesion(20, 50) = %f, want 100", got)
	}
}

func TestSentenceLengthStdDev(t *testing.T) {
	empty := &models.Doc{}
	if got := SentenceLengthStdDev(empty); got != 0 {
		t.Errorf("SentenceLengthStdDev(empty) = %f, want 0", got)
	}

	// Two sentences of 2 and 4 alphabetic words: mean 3, stddev 1.
	doc := &models.Doc{
		Tokens: []models.Token{
			{Text: "one", IsAlpha: true},
			{Text: "two", IsAlpha: true},
			{Text: "a", IsAlpha: true},
			{Text: "b", IsAlpha: true},
			{Text: "c", IsAlpha: true},
			{Text: "d", IsAlpha: true},
		},
		Sentences: []models.Sentence{
			{Start: 0, End: 2},
			{Start: 2, End: 6},
		},
	}
	got := SentenceLengthStdDev(doc)
	if math.Abs(got-1) > 1e-9 {
		t.Errorf("SentenceLengthStdDev() = %f, want 1", got)
	}
}

func TestAvgWordLength(t *testing.T) {
	if got := AvgWordLength(nil); got != 0 {
		t.Errorf("AvgWordLength(nil) = %f, want 0", got)
	}
	got := AvgWordLength([]string{"ab", "abcd"})
	if math.Abs(got-3) > 1e-9 {
		t.Errorf("AvgWordLength() = %f, want 3", got)
	}
}

func TestTotalSyllables(t *testing.T) {
	got := TotalSyllables([]string{"cat", "table", "banana"})
	if got != 6 {
		t.Errorf("TotalSyllables() = %d, want 6", got)
	}
}
