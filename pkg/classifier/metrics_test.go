package classifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ecorpuz/textgauge/models"
)

func TestPerformanceMetricsMissingStore(t *testing.T) {
	adapter := NewProficiencyAdapter(testLogger())

	metrics := adapter.PerformanceMetrics(filepath.Join(t.TempDir(), "nope.json"))
	if metrics.Available {
		t.Error("Available = true for missing store")
	}
	if metrics.Accuracy != "not available" {
		t.Errorf("Accuracy = %q, want \"not available\"", metrics.Accuracy)
	}
	if len(metrics.Labels) != 3 {
		t.Errorf("Labels = %v, want the adapter's three labels", metrics.Labels)
	}
}

func TestPerformanceMetricsCorruptStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	adapter := NewComplexityAdapter(testLogger())
	metrics := adapter.PerformanceMetrics(path)
	if metrics.Available {
		t.Error("Available = true for corrupt store")
	}
}

func TestSaveAndReadMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	saved := models.EvaluationMetrics{
		Accuracy:  "0.91",
		F1:        0.89,
		Precision: 0.90,
		Recall:    0.88,
		Labels:    []string{LabelIndependent, LabelInstructional, LabelFrustration},
		Matrix:    [][]int{{10, 1, 0}, {2, 8, 1}, {0, 1, 9}},
	}
	if err := SaveMetrics(path, "proficiency", saved); err != nil {
		t.Fatalf("SaveMetrics() error = %v", err)
	}

	adapter := NewProficiencyAdapter(testLogger())
	got := adapter.PerformanceMetrics(path)
	if !got.Available {
		t.Fatal("Available = false after save")
	}
	if got.Accuracy != "0.91" || got.F1 != 0.89 {
		t.Errorf("read back %+v, want accuracy 0.91 f1 0.89", got)
	}
}

func TestSaveMetricsMergesModels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	if err := SaveMetrics(path, "proficiency", models.EvaluationMetrics{Accuracy: "0.91"}); err != nil {
		t.Fatal(err)
	}
	if err := SaveMetrics(path, "complexity", models.EvaluationMetrics{Accuracy: "0.84"}); err != nil {
		t.Fatal(err)
	}

	proficiency := NewProficiencyAdapter(testLogger()).PerformanceMetrics(path)
	complexity := NewComplexityAdapter(testLogger()).PerformanceMetrics(path)

	if proficiency.Accuracy != "0.91" {
		t.Errorf("proficiency accuracy = %q, want 0.91 (overwritten by second save?)", proficiency.Accuracy)
	}
	if complexity.Accuracy != "0.84" {
		t.Errorf("complexity accuracy = %q, want 0.84", complexity.Accuracy)
	}
}
