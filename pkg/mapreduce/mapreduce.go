// Package mapreduce aggregates per-text word statistics across a batch
// corpus: each worker maps one text to a frequency map, and the results
// are reduced into corpus-wide totals.
package mapreduce

import "github.com/ecorpuz/textgauge/pkg/analytics"

// Map generates a content-word frequency map for a single text.
func Map(content string) map[string]int {
	return analytics.WordFrequency(content)
}

// Reduce aggregates a slice of word frequency maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}

	return finalResults
}
