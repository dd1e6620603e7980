package manifest

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ecorpuz/textgauge/pkg/mapreduce"
	"github.com/ecorpuz/textgauge/pkg/storage"
)

// RowResult represents the outcome of extracting features from one
// corpus row. This is passed in from the batch command to avoid
// circular dependencies.
type RowResult struct {
	Row           int
	Label         string
	Error         error
	WordCount     int
	SentenceCount int
	Truncated     bool
	WordCounts    map[string]int
}

// GenerateSummary creates a summary manifest file with aggregated
// results under outputDir. It accepts all row results, aggregate
// keywords, and a storage instance. Returns the path to the generated
// manifest file and any error.
func GenerateSummary(results []RowResult, aggregateKeywords map[string]int, s *storage.Storage, outputDir string) (string, error) {
	manifest := SummaryManifest{
		GeneratedAt:       time.Now().Format(time.RFC3339),
		TotalRows:         len(results),
		AggregateKeywords: mapreduce.TopKeywords(aggregateKeywords, 25),
		LabelCounts:       make(map[string]int),
	}

	// Process each result
	for _, result := range results {
		summary := RowSummary{
			Row: result.Row,
		}

		if result.Error != nil {
			// Error case
			manifest.Failed++
			summary.Status = "error"
			summary.ErrorMessage = result.Error.Error()
		} else {
			// Success case
			manifest.Successful++
			summary.Status = "success"
			summary.Label = result.Label
			summary.WordCount = result.WordCount
			summary.SentenceCount = result.SentenceCount
			summary.Truncated = result.Truncated
			manifest.LabelCounts[result.Label]++

			// Add top keywords for this row
			if result.WordCounts != nil {
				summary.TopKeywords = mapreduce.TopKeywords(result.WordCounts, 10)
			}
		}

		manifest.Results = append(manifest.Results, summary)
	}

	// Save manifest to file
	manifestPath := filepath.Join(outputDir, fmt.Sprintf("summary-%s.json", time.Now().Format("2006-01-02")))
	manifestData, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshalling manifest: %w", err)
	}

	if err := s.SaveFile(manifestPath, manifestData); err != nil {
		return "", fmt.Errorf("error saving manifest: %w", err)
	}

	return manifestPath, nil
}
