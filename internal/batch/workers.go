package batch

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/ecorpuz/textgauge/internal/common"
	"github.com/ecorpuz/textgauge/pkg/classifier"
	"github.com/ecorpuz/textgauge/pkg/mapreduce"
	"github.com/ecorpuz/textgauge/pkg/pipeline"
)

// maxTextRunes caps each corpus row before analysis. Rows past the cap
// are cut back to the last whole word and flagged as truncated.
const maxTextRunes = 10000

// scoreLabel maps a human-assigned corpus score to a proficiency
// label. Scores of four and up read independently, three reads with
// instruction, anything lower is at frustration level.
func scoreLabel(score float64) string {
	switch {
	case score >= 4:
		return classifier.LabelIndependent
	case score >= 3:
		return classifier.LabelInstructional
	default:
		return classifier.LabelFrustration
	}
}

func run(logger *slog.Logger, engine *pipeline.Engine, jobList []Job, workerCount int, language string) ([]Result, map[string]int) {
	logger.Info("Starting concurrent extraction phase", "row_count", len(jobList), "workers", workerCount)
	var wg sync.WaitGroup
	jobs := make(chan Job, len(jobList))
	results := make(chan Result, len(jobList))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(w, logger, engine, language, &wg, jobs, results)
	}

	for _, job := range jobList {
		jobs <- job
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All extraction workers finished")

	allResults := make([]Result, 0, len(jobList))
	for result := range results {
		allResults = append(allResults, result)
	}
	sort.Slice(allResults, func(i, j int) bool {
		return allResults[i].Row < allResults[j].Row
	})

	logger.Info("Starting MapReduce phase")
	intermediateResults := []map[string]int{}
	for _, result := range allResults {
		if result.WordCounts != nil {
			intermediateResults = append(intermediateResults, result.WordCounts)
		}
	}
	finalWordCounts := mapreduce.Reduce(intermediateResults)

	return allResults, finalWordCounts
}

func worker(id int, logger *slog.Logger, engine *pipeline.Engine, language string, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		result := Result{Row: job.Row}

		if job.Err != nil {
			logger.Error("Skipping rejected row", "worker_id", id, "row", job.Row, "error", job.Err)
			result.Error = job.Err
			results <- result
			continue
		}

		text := common.Truncate(job.Text, maxTextRunes)
		result.Truncated = len(text) < len(job.Text)

		set, _, err := engine.ExtractFeatures(text, language)
		if err != nil {
			logger.Error("Error extracting features", "worker_id", id, "row", job.Row, "error", err)
			result.Error = err
			results <- result
			continue
		}

		result.Label = scoreLabel(job.Score)
		result.Vector = set.Vector
		result.WordCount = set.Metrics.WordCount
		result.SentenceCount = set.Metrics.SentenceCount
		result.WordCounts = mapreduce.Map(text)
		results <- result
		logger.Info("Worker finished processing", "worker_id", id, "row", job.Row, "label", result.Label)
	}
}
