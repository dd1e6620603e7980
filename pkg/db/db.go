// Package db manages the SQLite database backing the CEFR lexicon.
package db

import (
	"bufio"
	"database/sql"
	"fmt"
	"io"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"
)

const DefaultDBName = "cefr-lexicon.db"

type DB struct {
	*sql.DB
	path string
}

// Open opens or creates the lexicon database at the given path and
// ensures the schema exists.
func Open(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{
		DB:   sqlDB,
		path: dbPath,
	}

	if err := db.ensureSchemaExists(); err != nil {
		_ = db.Close() // Close error less important than schema error
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// ensureSchemaExists checks if the schema exists and initializes it if not
func (db *DB) ensureSchemaExists() error {
	var tableName string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='cefr_words'").Scan(&tableName)

	if err == sql.ErrNoRows {
		return db.InitSchema()
	}

	if err != nil {
		return fmt.Errorf("failed to check schema: %w", err)
	}

	return nil
}

// Path returns the database file path
func (db *DB) Path() string {
	return db.path
}

// InitSchema initializes the database schema
func (db *DB) InitSchema() error {
	_, err := db.Exec(schema)
	return err
}

// WordLevels loads the entire lexicon into memory. The table is small
// (tens of thousands of rows) and the pipeline queries it on every
// content word, so one up-front read beats per-word statements.
func (db *DB) WordLevels() (map[string]float64, error) {
	rows, err := db.Query("SELECT word, level FROM cefr_words")
	if err != nil {
		return nil, fmt.Errorf("failed to query lexicon: %w", err)
	}
	defer rows.Close()

	levels := make(map[string]float64)
	for rows.Next() {
		var word string
		var level float64
		if err := rows.Scan(&word, &level); err != nil {
			return nil, fmt.Errorf("failed to scan lexicon row: %w", err)
		}
		levels[strings.ToLower(word)] = level
	}
	return levels, rows.Err()
}

// ImportWordlist bulk-loads a "word<TAB>level" file into the lexicon,
// recording provenance. Blank lines and lines starting with '#' are
// skipped; malformed lines abort the import so a half-loaded lexicon
// never goes unnoticed.
func (db *DB) ImportWordlist(name string, r io.Reader) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO cefr_words (word, level) VALUES (?, ?)")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	count := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			return 0, fmt.Errorf("malformed wordlist line %q", line)
		}
		level, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil || level < 1 || level > 6 {
			return 0, fmt.Errorf("invalid level in wordlist line %q", line)
		}

		if _, err := stmt.Exec(strings.ToLower(parts[0]), level); err != nil {
			return 0, fmt.Errorf("failed to insert word: %w", err)
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to read wordlist: %w", err)
	}

	if _, err := tx.Exec("INSERT INTO lexicon_sources (name, word_count) VALUES (?, ?)", name, count); err != nil {
		return 0, fmt.Errorf("failed to record lexicon source: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}
	return count, nil
}
