// Package readability implements the lexical and readability metrics of
// the pipeline: syllable counting, type-token ratio, difficult-word
// detection, and the classic grade-level formulas.
package readability

import (
	"math"
	"strings"

	"github.com/ecorpuz/textgauge/models"
)

// difficultWordLength is the surface-length cutoff above which a word
// counts as difficult. A plain length heuristic, not a syllable-based
// standard measure.
const difficultWordLength = 9

// CountSyllables estimates the syllables of a single word by counting
// transitions into vowel groups (aeiouy), subtracting one for a silent
// trailing "e", and flooring at one syllable for any non-empty word.
// Known to be imprecise for words like "united" or "queue"; the
// imprecision is accepted rather than corrected so scores stay stable.
func CountSyllables(word string) int {
	word = strings.ToLower(word)
	if word == "" {
		return 0
	}

	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}

	// Trailing "e" is usually silent, except in "-le" endings (table,
	// little) where it carries the final syllable.
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

// TypeTokenRatio is the share of unique lowercased forms among the given
// alphabetic tokens. Zero for an empty slice.
func TypeTokenRatio(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	types := make(map[string]struct{}, len(words))
	for _, w := range words {
		types[strings.ToLower(w)] = struct{}{}
	}
	return float64(len(types)) / float64(len(words))
}

// IsDifficult reports whether a word exceeds the length cutoff.
func IsDifficult(word string) bool {
	return len(word) > difficultWordLength
}

// DifficultWords returns the words exceeding the length cutoff, in input
// order.
func DifficultWords(words []string) []string {
	var difficult []string
	for _, w := range words {
		if IsDifficult(w) {
			difficult = append(difficult, w)
		}
	}
	return difficult
}

// FleschKincaidGrade computes the Flesch-Kincaid grade level, floored at
// zero. Zero counts yield zero, never a division fault.
func FleschKincaidGrade(wordCount, sentenceCount, syllableCount int) float64 {
	if wordCount == 0 || sentenceCount == 0 {
		return 0
	}
	grade := 0.39*(float64(wordCount)/float64(sentenceCount)) +
		11.8*(float64(syllableCount)/float64(wordCount)) - 15.59
	return math.Max(0, grade)
}

// GunningFog computes the Gunning-Fog proxy, floored at zero.
func GunningFog(wordCount, sentenceCount, difficultCount int) float64 {
	if wordCount == 0 || sentenceCount == 0 {
		return 0
	}
	fog := 0.4 * (float64(wordCount)/float64(sentenceCount) +
		100*float64(difficultCount)/float64(wordCount))
	return math.Max(0, fog)
}

// StructureCohesion scores sentence structure from clause density and
// average sentence length, capped at 100.
func StructureCohesion(clauseDensity, avgSentenceLength float64) float64 {
	return math.Min(100, clauseDensity*10+avgSentenceLength*2)
}

// SentenceLengthStdDev is the population standard deviation of per-
// sentence alphabetic word counts. Zero when there are no sentences.
func SentenceLengthStdDev(doc *models.Doc) float64 {
	n := len(doc.Sentences)
	if n == 0 {
		return 0
	}

	lengths := make([]float64, n)
	var sum float64
	for i, s := range doc.Sentences {
		count := 0
		for _, t := range doc.SentenceTokens(s) {
			if t.IsAlpha {
				count++
			}
		}
		lengths[i] = float64(count)
		sum += lengths[i]
	}

	mean := sum / float64(n)
	var variance float64
	for _, l := range lengths {
		variance += (l - mean) * (l - mean)
	}
	return math.Sqrt(variance / float64(n))
}

// AvgWordLength is the mean character length of the given words, zero
// for none.
func AvgWordLength(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += len([]rune(w))
	}
	return float64(total) / float64(len(words))
}

// TotalSyllables sums the syllable estimates for all given words.
func TotalSyllables(words []string) int {
	total := 0
	for _, w := range words {
		total += CountSyllables(w)
	}
	return total
}
