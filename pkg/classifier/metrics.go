package classifier

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ecorpuz/textgauge/models"
)

// MetricsStoreName is the JSON file, under the models directory, that
// the offline training scripts write evaluation results into, keyed by
// model name.
const MetricsStoreName = "evaluation_metrics.json"

// PerformanceMetrics reads this adapter's offline evaluation numbers
// from the metrics store at storePath. These report on past training
// runs only; they say nothing about live predictions. A missing store
// or key yields the documented "not available" placeholder, never an
// error.
func (a *Adapter) PerformanceMetrics(storePath string) models.EvaluationMetrics {
	placeholder := models.EvaluationMetrics{
		Accuracy: "not available",
		Labels:   a.labels,
	}

	data, err := os.ReadFile(storePath)
	if err != nil {
		if !os.IsNotExist(err) {
			a.logger.Warn("failed to read metrics store", "path", storePath, "error", err)
		}
		return placeholder
	}

	var store map[string]models.EvaluationMetrics
	if err := json.Unmarshal(data, &store); err != nil {
		a.logger.Warn("failed to parse metrics store", "path", storePath, "error", err)
		return placeholder
	}

	metrics, ok := store[a.name]
	if !ok {
		return placeholder
	}
	metrics.Available = true
	if len(metrics.Labels) == 0 {
		metrics.Labels = a.labels
	}
	return metrics
}

// SaveMetrics merges one model's evaluation metrics into the store,
// preserving entries for other models. The evaluation command's import
// path calls this after offline training runs.
func SaveMetrics(storePath, modelKey string, metrics models.EvaluationMetrics) error {
	store := map[string]models.EvaluationMetrics{}
	if data, err := os.ReadFile(storePath); err == nil {
		// A corrupt store is overwritten rather than appended to.
		_ = json.Unmarshal(data, &store)
	}

	store[modelKey] = metrics

	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metrics store: %w", err)
	}
	if err := os.WriteFile(storePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write metrics store: %w", err)
	}
	return nil
}
