package classifier

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ecorpuz/textgauge/models"
)

// Predictor maps a feature vector to a label. The trained variant is
// selected at load time; when no model file exists the adapter itself
// scores heuristically and no Predictor is involved.
type Predictor interface {
	PredictVector(vector []float64) (string, error)
	// Dim is the input width the predictor was trained on.
	Dim() int
}

// scalerParams is a fitted standard scaler: x' = (x - mean) / scale.
type scalerParams struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

func (s scalerParams) transform(vector []float64) []float64 {
	scaled := make([]float64, len(vector))
	for i, v := range vector {
		div := s.Scale[i]
		if div == 0 {
			div = 1
		}
		scaled[i] = (v - s.Mean[i]) / div
	}
	return scaled
}

// classWeights is one one-vs-rest decision function.
type classWeights struct {
	Label   string    `json:"label"`
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

// modelFile is the on-disk trained model format: a linear one-vs-rest
// SVM plus its fitted scaler, exported by the offline training scripts.
type modelFile struct {
	Name    string         `json:"name"`
	Dim     int            `json:"dim"`
	Labels  []string       `json:"labels"`
	Classes []classWeights `json:"classes"`
	Scaler  scalerParams   `json:"scaler"`
}

// trainedPredictor scores the scaled vector against every class and
// picks the highest decision value.
type trainedPredictor struct {
	model modelFile
}

func loadTrainedPredictor(path string) (*trainedPredictor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var model modelFile
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("failed to parse model file: %w", err)
	}

	if model.Dim <= 0 || len(model.Classes) == 0 {
		return nil, fmt.Errorf("model file %s has no classes or dimension", path)
	}
	if len(model.Scaler.Mean) != model.Dim || len(model.Scaler.Scale) != model.Dim {
		return nil, fmt.Errorf("model file %s scaler width does not match dim %d", path, model.Dim)
	}
	for _, c := range model.Classes {
		if len(c.Weights) != model.Dim {
			return nil, fmt.Errorf("model file %s class %q weight width does not match dim %d", path, c.Label, model.Dim)
		}
	}

	return &trainedPredictor{model: model}, nil
}

func (p *trainedPredictor) Dim() int {
	return p.model.Dim
}

// PredictVector scales the vector and returns the argmax class label.
// A width mismatch is a configuration fault (stale model file or a
// feature-extraction regression) and is reported as such, never papered
// over.
func (p *trainedPredictor) PredictVector(vector []float64) (string, error) {
	if len(vector) != p.model.Dim {
		return "", fmt.Errorf("%w: model %q expects %d features, got %d",
			models.ErrDimensionMismatch, p.model.Name, p.model.Dim, len(vector))
	}

	scaled := p.model.Scaler.transform(vector)

	best := ""
	bestScore := 0.0
	for i, class := range p.model.Classes {
		score := class.Bias
		for j, w := range class.Weights {
			score += w * scaled[j]
		}
		if i == 0 || score > bestScore {
			best = class.Label
			bestScore = score
		}
	}
	return best, nil
}
