// Package langdetect decides whether input text is English or
// Filipino/Tagalog. The CEFR profiler is English-only, so this gate
// decides whether vocabulary profiling runs at all.
package langdetect

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

const (
	English  = "english"
	Filipino = "filipino"
)

// Detector wraps a lingua language detector restricted to the two
// languages the pipeline handles. Construction is expensive (language
// models load eagerly); build once at startup and share.
type Detector struct {
	detector lingua.LanguageDetector
}

func NewDetector() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.English, lingua.Tagalog).
			WithPreloadedLanguageModels().
			Build(),
	}
}

// Detect returns English or Filipino for the given text. Empty or
// undecidable input defaults to English, which keeps the richer
// (CEFR-profiled) path as the common case.
func (d *Detector) Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return English
	}

	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return English
	}
	if lang == lingua.Tagalog {
		return Filipino
	}
	return English
}

// Normalize canonicalizes a caller-provided language name. Unrecognized
// values fall through to empty, meaning "auto-detect".
func Normalize(language string) string {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "english", "en":
		return English
	case "filipino", "tagalog", "fil", "tl":
		return Filipino
	default:
		return ""
	}
}
