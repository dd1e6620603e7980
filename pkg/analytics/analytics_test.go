package analytics

import (
	"reflect"
	"testing"
)

func TestIsStopword(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"the", true},
		{"The", true},
		{"BECAUSE", true},
		{"cat", false},
		{"ubiquitous", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsStopword(tt.word); got != tt.want {
			t.Errorf("IsStopword(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestIsTransitionWord(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"however", true},
		{"Therefore", true},
		{"FURTHERMORE", true},
		{"cat", false},
		{"and", false},
	}

	for _, tt := range tests {
		if got := IsTransitionWord(tt.word); got != tt.want {
			t.Errorf("IsTransitionWord(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestIsLogicConnective(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"because", true},
		{"Although", true},
		{"unless", true},
		{"happy", false},
	}

	for _, tt := range tests {
		if got := IsLogicConnective(tt.word); got != tt.want {
			t.Errorf("IsLogicConnective(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestWordFrequency(t *testing.T) {
	text := "The cat chased the cat. A dog watched, the dog barked!"
	got := WordFrequency(text)

	want := map[string]int{
		"cat":     2,
		"chased":  1,
		"dog":     2,
		"watched": 1,
		"barked":  1,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WordFrequency() = %v, want %v", got, want)
	}
}

func TestWordFrequencyEmptyAndStopwordsOnly(t *testing.T) {
	if got := WordFrequency(""); len(got) != 0 {
		t.Errorf("WordFrequency(\"\") = %v, want empty map", got)
	}
	if got := WordFrequency("the a an and of"); len(got) != 0 {
		t.Errorf("WordFrequency(stopwords only) = %v, want empty map", got)
	}
}

func TestTopNWords(t *testing.T) {
	frequencies := map[string]int{
		"zebra":  3,
		"apple":  3,
		"mango":  5,
		"cherry": 1,
	}

	got := TopNWords(frequencies, 3)
	want := []string{"mango", "apple", "zebra"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopNWords() = %v, want %v", got, want)
	}
}

func TestTopNWordsFewerThanN(t *testing.T) {
	got := TopNWords(map[string]int{"only": 1}, 10)
	if len(got) != 1 || got[0] != "only" {
		t.Errorf("TopNWords() = %v, want [only]", got)
	}
}
