package models

import "errors"

// Failure kinds of the analysis pipeline. Callers branch on these with
// errors.Is instead of parsing messages.
var (
	// ErrAnalyzerUnavailable means the linguistic analyzer could not be
	// initialized or ran into an internal failure. Fatal for any call
	// that needs token-level analysis; never degraded to a zero vector.
	ErrAnalyzerUnavailable = errors.New("linguistic analyzer unavailable")

	// ErrModelNotLoaded means a classifier has no trained model. This is
	// the documented default state, not a failure; prediction falls back
	// to the heuristic scorer.
	ErrModelNotLoaded = errors.New("trained model not loaded")

	// ErrDimensionMismatch means a loaded model expects a different
	// feature-vector width than the extractor produced. Stale model file
	// or feature regression; fatal configuration error.
	ErrDimensionMismatch = errors.New("feature dimension mismatch")

	// ErrMalformedInput means the input text could not be processed at
	// all (for example invalid HTML handed to the ingester).
	ErrMalformedInput = errors.New("malformed input")
)
