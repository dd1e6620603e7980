// Package classifier wraps the two statistical models (student
// proficiency, text complexity) behind one adapter contract with a
// deterministic heuristic fallback for when no trained model is present.
package classifier

import (
	"log/slog"
	"math"
	"os"

	"github.com/ecorpuz/textgauge/models"
)

// Proficiency labels, Phil-IRI three-band scheme. An earlier four-band
// scheme (Beginning/Developing/Proficient/Advanced) was superseded and
// is intentionally not supported.
const (
	LabelIndependent   = "Independent"
	LabelInstructional = "Instructional"
	LabelFrustration   = "Frustration"
)

// Complexity labels.
const (
	LabelLiteral     = "Literal"
	LabelInferential = "Inferential"
	LabelEvaluative  = "Evaluative"
)

// Prediction is the raw classifier output, before the result composer
// turns it into a report.
type Prediction struct {
	Label string
	// Score is the heuristic score, computed whether or not a trained
	// model produced the label; the composer uses it for calibrated
	// display scores.
	Score float64
	// Trained is true when the label came from a loaded model rather
	// than the heuristic thresholds.
	Trained bool
}

// heuristic is a deterministic fallback scorer: a weighted formula over
// the metrics map plus fixed score-to-label thresholds.
type heuristic struct {
	score  func(m models.Metrics) float64
	bucket func(score float64) string
}

// Adapter wraps one model slot. Constructed empty (heuristic-only);
// Load may attach a trained predictor. Once loaded it stays loaded for
// the process lifetime and is safe for concurrent Predict calls.
type Adapter struct {
	name      string
	labels    []string
	heuristic heuristic
	logger    *slog.Logger
	predictor Predictor
}

// NewProficiencyAdapter builds the student-proficiency adapter.
// Heuristic: vocabularyRichness*0.4 + structureCohesion*0.6 + a CEFR
// boost capped at 15; >=80 Independent, >=50 Instructional, else
// Frustration.
func NewProficiencyAdapter(logger *slog.Logger) *Adapter {
	return &Adapter{
		name:   "proficiency",
		labels: []string{LabelIndependent, LabelInstructional, LabelFrustration},
		logger: logger,
		heuristic: heuristic{
			score: func(m models.Metrics) float64 {
				boost := 0.0
				if m.AdvancedWordCount > 0 {
					boost = math.Min(15, float64(m.AdvancedWordCount)*2)
				}
				return m.VocabularyRichness*0.4 + m.StructureCohesion*0.6 + boost
			},
			bucket: func(score float64) string {
				switch {
				case score >= 80:
					return LabelIndependent
				case score >= 50:
					return LabelInstructional
				default:
					return LabelFrustration
				}
			},
		},
	}
}

// NewComplexityAdapter builds the text-complexity adapter. Heuristic:
// avgSentenceLength*3 + difficultWordRatio*4 + advancedWordCount*3;
// <40 Literal, <75 Inferential, else Evaluative.
func NewComplexityAdapter(logger *slog.Logger) *Adapter {
	return &Adapter{
		name:   "complexity",
		labels: []string{LabelLiteral, LabelInferential, LabelEvaluative},
		logger: logger,
		heuristic: heuristic{
			score: func(m models.Metrics) float64 {
				return m.AvgSentenceLength*3 + m.DifficultWordRatio*4 + float64(m.AdvancedWordCount)*3
			},
			bucket: func(score float64) string {
				switch {
				case score < 40:
					return LabelLiteral
				case score < 75:
					return LabelInferential
				default:
					return LabelEvaluative
				}
			},
		},
	}
}

// Name returns the adapter's model key ("proficiency" or "complexity").
func (a *Adapter) Name() string {
	return a.name
}

// Labels returns the configured label set in rank order.
func (a *Adapter) Labels() []string {
	return a.labels
}

// Loaded reports whether a trained model is attached.
func (a *Adapter) Loaded() bool {
	return a.predictor != nil
}

// Load attaches a trained model from path. A missing file is the
// documented default, not an error: it returns false and the adapter
// keeps scoring heuristically. A present-but-unreadable file also
// returns false, logged at warning level. Load never panics or throws.
func (a *Adapter) Load(path string) bool {
	predictor, err := loadTrainedPredictor(path)
	if err != nil {
		if os.IsNotExist(err) {
			a.logger.Info("no trained model, using heuristics", "model", a.name, "path", path)
		} else {
			a.logger.Warn("failed to load trained model, using heuristics", "model", a.name, "path", path, "error", err)
		}
		return false
	}

	a.predictor = predictor
	a.logger.Info("trained model loaded", "model", a.name, "path", path, "dim", predictor.Dim())
	return true
}

// Predict classifies one feature set. With a trained model the label
// comes from the scaled-vector prediction; otherwise from the heuristic
// thresholds. The heuristic score is computed either way. The only
// error condition is a feature-width mismatch against a loaded model,
// which wraps models.ErrDimensionMismatch.
func (a *Adapter) Predict(features models.FeatureSet) (Prediction, error) {
	score := a.heuristic.score(features.Metrics)

	if a.predictor != nil {
		label, err := a.predictor.PredictVector(features.Vector)
		if err != nil {
			return Prediction{}, err
		}
		return Prediction{Label: label, Score: score, Trained: true}, nil
	}

	return Prediction{Label: a.heuristic.bucket(score), Score: score}, nil
}
