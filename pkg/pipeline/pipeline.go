// Package pipeline wires the analysis components into one engine:
// normalize, analyze, profile, build features, classify, compose. The
// engine is constructed once at startup and injected everywhere, so
// tests can substitute fakes for the analyzer, lexicon, and detector.
package pipeline

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/ecorpuz/textgauge/models"
	"github.com/ecorpuz/textgauge/pkg/cefr"
	"github.com/ecorpuz/textgauge/pkg/classifier"
	"github.com/ecorpuz/textgauge/pkg/features"
	"github.com/ecorpuz/textgauge/pkg/langdetect"
	"github.com/ecorpuz/textgauge/pkg/nlp"
	"github.com/ecorpuz/textgauge/pkg/report"
	"github.com/ecorpuz/textgauge/pkg/textnorm"
)

// Trained model file names under the models directory.
const (
	ProficiencyModelFile = "proficiency_model.json"
	ComplexityModelFile  = "complexity_model.json"
)

// LanguageDetector resolves the input language when the caller does not
// force one.
type LanguageDetector interface {
	Detect(text string) string
}

// Engine holds the long-lived, read-only pipeline state: the analyzer,
// the lexicon-backed profiler, the language detector, and both
// classifier adapters. Every analysis call is stateless per request and
// safe to run concurrently.
type Engine struct {
	analyzer    nlp.Analyzer
	profiler    *cefr.Profiler
	detector    LanguageDetector
	Proficiency *classifier.Adapter
	Complexity  *classifier.Adapter
	logger      *slog.Logger
	modelsDir   string
}

// New assembles an engine from explicit dependencies. Nothing is loaded
// from disk; use NewFromConfig for the production wiring.
func New(analyzer nlp.Analyzer, lexicon cefr.Lexicon, detector LanguageDetector, logger *slog.Logger) *Engine {
	return &Engine{
		analyzer:    analyzer,
		profiler:    cefr.NewProfiler(lexicon),
		detector:    detector,
		Proficiency: classifier.NewProficiencyAdapter(logger),
		Complexity:  classifier.NewComplexityAdapter(logger),
		logger:      logger,
	}
}

// NewFromConfig builds the production engine: prose analyzer, SQLite (or
// seed) lexicon, lingua detector, and trained models if their files
// exist. Missing model files leave the adapters in heuristic mode,
// which is the documented default, not an error.
func NewFromConfig(config *models.Config, logger *slog.Logger) (*Engine, error) {
	var lexicon cefr.Lexicon
	if config.LexiconPath != "" {
		sqlLexicon, err := cefr.OpenSQLiteLexicon(config.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open CEFR lexicon: %w", err)
		}
		logger.Info("CEFR lexicon loaded", "path", config.LexiconPath, "words", sqlLexicon.Size())
		lexicon = sqlLexicon
	} else {
		logger.Info("no lexicon configured, using embedded seed lexicon")
		lexicon = cefr.SeedLexicon()
	}

	engine := New(nlp.NewProseAnalyzer(), lexicon, langdetect.NewDetector(), logger)
	engine.modelsDir = config.ModelsDir

	if config.ModelsDir != "" {
		engine.Proficiency.Load(filepath.Join(config.ModelsDir, ProficiencyModelFile))
		engine.Complexity.Load(filepath.Join(config.ModelsDir, ComplexityModelFile))
	}

	return engine, nil
}

// MetricsStorePath is where the offline evaluation metrics live.
func (e *Engine) MetricsStorePath() string {
	return filepath.Join(e.modelsDir, classifier.MetricsStoreName)
}

// ResolveLanguage applies the caller override or falls back to
// detection.
func (e *Engine) ResolveLanguage(text, language string) string {
	if normalized := langdetect.Normalize(language); normalized != "" {
		return normalized
	}
	if e.detector != nil {
		return e.detector.Detect(text)
	}
	return langdetect.English
}

// ExtractFeatures runs the full feature-extraction pass: normalize,
// analyze, CEFR-profile, build the 37-feature vector plus metrics.
// Returns the resolved language alongside. Empty text is a valid input
// yielding zero counts; an analyzer failure is fatal and wraps
// models.ErrAnalyzerUnavailable so it can never be mistaken for a
// legitimately simple text.
func (e *Engine) ExtractFeatures(text, language string) (models.FeatureSet, string, error) {
	normalized := textnorm.Normalize(text)
	resolved := e.ResolveLanguage(normalized, language)

	doc, err := e.analyzer.Analyze(normalized)
	if err != nil {
		return models.FeatureSet{}, resolved, fmt.Errorf("feature extraction failed: %w", err)
	}

	profile := e.profiler.Profile(doc, resolved == langdetect.English)
	set := features.Build(doc, profile, textnorm.CountParagraphs(text))
	return set, resolved, nil
}

// AnalyzeProficiency produces the student-proficiency report for one
// text.
func (e *Engine) AnalyzeProficiency(text, language string) (models.ProficiencyResult, error) {
	set, resolved, err := e.ExtractFeatures(text, language)
	if err != nil {
		return models.ProficiencyResult{}, err
	}

	pred, err := e.Proficiency.Predict(set)
	if err != nil {
		return models.ProficiencyResult{}, err
	}

	e.logger.Debug("proficiency prediction",
		"label", pred.Label, "score", pred.Score, "trained", pred.Trained, "language", resolved)
	return report.ComposeProficiency(pred, set.Metrics, text), nil
}

// AnalyzeComplexity produces the text-complexity report for one text.
func (e *Engine) AnalyzeComplexity(text, language string) (models.ComplexityResult, error) {
	set, resolved, err := e.ExtractFeatures(text, language)
	if err != nil {
		return models.ComplexityResult{}, err
	}

	pred, err := e.Complexity.Predict(set)
	if err != nil {
		return models.ComplexityResult{}, err
	}

	e.logger.Debug("complexity prediction",
		"label", pred.Label, "score", pred.Score, "trained", pred.Trained, "language", resolved)
	return report.ComposeComplexity(pred, set.Metrics), nil
}
