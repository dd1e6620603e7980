// Package cefr rates English vocabulary against the CEFR scale (A1-C2)
// and aggregates per-word ratings into text-level distributions.
package cefr

import (
	"fmt"
	"strings"

	"github.com/ecorpuz/textgauge/pkg/db"
)

// Lexicon answers word-level lookups. Rate returns a continuous level in
// [1,6] and true, or false for words the lexicon does not know. Unknown
// words are excluded from every aggregate, never defaulted to A1.
type Lexicon interface {
	Rate(word string) (float64, bool)
}

// MapLexicon is an in-memory Lexicon. Used for tests and as the
// embedded-seed fallback when no lexicon database is configured.
type MapLexicon map[string]float64

func (m MapLexicon) Rate(word string) (float64, bool) {
	level, ok := m[strings.ToLower(word)]
	return level, ok
}

// SQLiteLexicon serves ratings from the lexicon database, fully loaded
// into memory at construction. Read-only afterwards, safe for concurrent
// use.
type SQLiteLexicon struct {
	levels map[string]float64
}

// OpenSQLiteLexicon opens the database at path and loads all word
// levels. An empty lexicon is an error: it means the database was never
// seeded and every lookup would silently miss.
func OpenSQLiteLexicon(path string) (*SQLiteLexicon, error) {
	database, err := db.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon: %w", err)
	}
	defer database.Close()

	levels, err := database.WordLevels()
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon: %w", err)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("lexicon database %s is empty; import a wordlist first", path)
	}

	return &SQLiteLexicon{levels: levels}, nil
}

func (l *SQLiteLexicon) Rate(word string) (float64, bool) {
	level, ok := l.levels[strings.ToLower(word)]
	return level, ok
}

// Size returns the number of known words.
func (l *SQLiteLexicon) Size() int {
	return len(l.levels)
}
