// Package batch implements the `batch` CLI command: extract feature
// vectors and labels from a CSV corpus of scored student texts, the
// dataset that model training consumes.
package batch

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ecorpuz/textgauge/internal/common"
	"github.com/ecorpuz/textgauge/models"
	"github.com/ecorpuz/textgauge/pkg/caching"
	"github.com/ecorpuz/textgauge/pkg/features"
	"github.com/ecorpuz/textgauge/pkg/manifest"
	"github.com/ecorpuz/textgauge/pkg/mapreduce"
	"github.com/ecorpuz/textgauge/pkg/pipeline"
	"github.com/ecorpuz/textgauge/pkg/storage"
)

// Flags for the batch command.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "corpus", Required: true, Usage: "CSV corpus file with text and score columns"},
		&cli.StringFlag{Name: "text-column", Value: "full_text", Usage: "name of the text column"},
		&cli.StringFlag{Name: "score-column", Value: "score", Usage: "name of the numeric score column"},
		&cli.StringFlag{Name: "output-dir", Value: "results", Usage: "directory for the extracted dataset and summary"},
		&cli.StringFlag{Name: "language", Value: "english", Usage: "corpus language"},
		&cli.IntFlag{Name: "workers", Value: 4, Usage: "number of concurrent extraction workers"},
		&cli.StringFlag{Name: "cache-dir", Value: ".textgauge-cache", Usage: "feature cache directory"},
		&cli.BoolFlag{Name: "force-extract", Usage: "ignore the feature cache and re-extract"},
		&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "path to config file"},
		&cli.StringFlag{Name: "lexicon", Usage: "path to the CEFR lexicon database"},
		&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
	}
}

// Action runs feature extraction over the whole corpus.
func Action(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}
	if c.String("lexicon") != "" {
		config.LexiconPath = c.String("lexicon")
	}
	if c.IsSet("workers") || config.WorkerCount == 0 {
		config.WorkerCount = c.Int("workers")
	}

	raw, err := os.ReadFile(c.String("corpus"))
	if err != nil {
		logger.Error("failed to read corpus", "error", err)
		os.Exit(2)
	}
	corpusHash := common.ContentHash(raw)

	s := &storage.Storage{}
	datasetPath := filepath.Join(c.String("output-dir"), fmt.Sprintf("dataset-%s.json", time.Now().Format("2006-01-02")))

	cache, err := caching.NewCache(c.String("cache-dir"), 7*24*time.Hour)
	if err != nil {
		logger.Error("failed to initialize feature cache", "error", err)
		os.Exit(2)
	}

	// An unchanged corpus reuses the previous extraction.
	if !c.Bool("force-extract") {
		if data, ok := cache.Get(corpusHash); ok {
			logger.Info("Feature cache hit, skipping extraction", "corpus_hash", corpusHash)
			if err := s.SaveFile(datasetPath, data); err != nil {
				return fmt.Errorf("failed to write cached dataset: %w", err)
			}
			fmt.Printf("Cache hit for corpus %s\nDataset: %s\n", c.String("corpus"), datasetPath)
			return nil
		}
	}

	jobList, err := readCorpus(raw, c.String("text-column"), c.String("score-column"))
	if err != nil {
		logger.Error("failed to parse corpus", "error", err)
		os.Exit(2)
	}
	if len(jobList) == 0 {
		fmt.Fprintln(os.Stderr, "Error: corpus has no data rows")
		os.Exit(1)
	}

	engine, err := pipeline.NewFromConfig(config, logger)
	if err != nil {
		logger.Error("failed to build pipeline engine", "error", err)
		os.Exit(2)
	}

	allResults, finalWordCounts := run(logger, engine, jobList, config.WorkerCount, c.String("language"))

	dataset := Dataset{
		GeneratedAt:  time.Now().Format(time.RFC3339),
		SourceHash:   corpusHash,
		Dim:          features.VectorDim,
		FeatureNames: features.FeatureNames[:],
		Rows:         len(allResults),
	}

	rowSummaries := make([]manifest.RowResult, 0, len(allResults))
	for _, result := range allResults {
		rowSummaries = append(rowSummaries, manifest.RowResult{
			Row:           result.Row,
			Label:         result.Label,
			Error:         result.Error,
			WordCount:     result.WordCount,
			SentenceCount: result.SentenceCount,
			Truncated:     result.Truncated,
			WordCounts:    result.WordCounts,
		})
		if result.Error != nil {
			dataset.Skipped++
			continue
		}
		dataset.Vectors = append(dataset.Vectors, result.Vector)
		dataset.Labels = append(dataset.Labels, result.Label)
	}

	datasetData, err := json.MarshalIndent(dataset, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshalling dataset: %w", err)
	}
	if err := s.SaveFile(datasetPath, datasetData); err != nil {
		return fmt.Errorf("error saving dataset: %w", err)
	}
	if err := cache.Set(corpusHash, datasetData); err != nil {
		logger.Warn("Failed to cache extracted dataset", "error", err)
	}

	manifestPath, err := manifest.GenerateSummary(rowSummaries, finalWordCounts, s, c.String("output-dir"))
	if err != nil {
		logger.Warn("Failed to generate summary manifest", "error", err)
	}

	stats := Stats{
		TotalRows:        len(allResults),
		Successful:       len(dataset.Labels),
		Skipped:          dataset.Skipped,
		TotalTimeSeconds: time.Since(startTime).Seconds(),
		TopKeywords:      mapreduce.TopKeywords(finalWordCounts, 25),
	}

	fmt.Printf("Extracted %d/%d rows (%d skipped)\nDataset: %s\nSummary: %s\n",
		stats.Successful, stats.TotalRows, stats.Skipped, datasetPath, manifestPath)
	if len(stats.TopKeywords) > 0 {
		fmt.Printf("Top keywords: %s\n", strings.Join(stats.TopKeywords[:min(10, len(stats.TopKeywords))], ", "))
	}

	if stats.Successful == 0 {
		os.Exit(2)
	}
	if stats.Skipped > 0 {
		os.Exit(1)
	}
	return nil
}

// readCorpus parses the CSV corpus into jobs, resolving the text and
// score columns by header name. Rows with broken quoting, a malformed
// score, or a missing text cell are kept as rejected jobs so the run
// reports them as skipped rather than silently shifting row numbers.
func readCorpus(raw []byte, textColumn, scoreColumn string) ([]Job, error) {
	reader := csv.NewReader(strings.NewReader(string(raw)))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus header: %w", err)
	}

	textIdx, scoreIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case strings.ToLower(textColumn):
			textIdx = i
		case strings.ToLower(scoreColumn):
			scoreIdx = i
		}
	}
	if textIdx < 0 {
		return nil, fmt.Errorf("corpus has no %q column", textColumn)
	}
	if scoreIdx < 0 {
		return nil, fmt.Errorf("corpus has no %q column", scoreColumn)
	}

	var jobs []Job
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv.Reader keeps going after a ParseError, so a bad row
			// becomes a rejected job instead of truncating the corpus.
			row++
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				jobs = append(jobs, Job{Row: row, Err: fmt.Errorf("row %d is not valid CSV: %w", row, err)})
				continue
			}
			return jobs, fmt.Errorf("failed to read corpus row %d: %w", row, err)
		}
		row++
		job := Job{Row: row}
		if textIdx >= len(record) || strings.TrimSpace(record[textIdx]) == "" {
			job.Err = fmt.Errorf("row %d has no %s value", row, textColumn)
			jobs = append(jobs, job)
			continue
		}
		job.Text = record[textIdx]
		if scoreIdx >= len(record) {
			job.Err = fmt.Errorf("row %d has no %s value", row, scoreColumn)
			jobs = append(jobs, job)
			continue
		}
		score, parseErr := strconv.ParseFloat(strings.TrimSpace(record[scoreIdx]), 64)
		if parseErr != nil {
			job.Err = fmt.Errorf("row %d has malformed score %q", row, record[scoreIdx])
			jobs = append(jobs, job)
			continue
		}
		job.Score = score
		jobs = append(jobs, job)
	}
	return jobs, nil
}
