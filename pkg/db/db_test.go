package db

import (
	"path/filepath"
	"strings"
	"testing"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "lexicon.db")
	database, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return database
}

func TestImportWordlist(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	wordlist := strings.NewReader("# CEFR-J sample\ncat\t1.0\nTable\t1.5\nanalyze\t3.2\n\nubiquitous\t5.8\n")
	count, err := database.ImportWordlist("cefr-j-sample", wordlist)
	if err != nil {
		t.Fatalf("ImportWordlist() error = %v", err)
	}
	if count != 4 {
		t.Errorf("ImportWordlist() count = %d, want 4", count)
	}

	levels, err := database.WordLevels()
	if err != nil {
		t.Fatalf("WordLevels() error = %v", err)
	}
	if len(levels) != 4 {
		t.Errorf("WordLevels() size = %d, want 4", len(levels))
	}

	// Words are lowercased on import
	if got := levels["table"]; got != 1.5 {
		t.Errorf(`levels["table"] = %v, want 1.5`, got)
	}
	if _, ok := levels["Table"]; ok {
		t.Error("lexicon should not keep original-case entries")
	}
}

func TestImportWordlist_MalformedLine(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	_, err := database.ImportWordlist("bad", strings.NewReader("cat\t1.0\nno-level-here\n"))
	if err == nil {
		t.Fatal("ImportWordlist() expected error for malformed line")
	}

	// Aborted import must not leave partial rows behind
	levels, err := database.WordLevels()
	if err != nil {
		t.Fatalf("WordLevels() error = %v", err)
	}
	if len(levels) != 0 {
		t.Errorf("WordLevels() size = %d after failed import, want 0", len(levels))
	}
}

func TestImportWordlist_LevelOutOfRange(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	_, err := database.ImportWordlist("bad", strings.NewReader("cat\t7.5\n"))
	if err == nil {
		t.Fatal("ImportWordlist() expected error for out-of-range level")
	}
}

func TestImportWordlist_ReplacesExisting(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	if _, err := database.ImportWordlist("v1", strings.NewReader("cat\t1.0\n")); err != nil {
		t.Fatalf("first import error = %v", err)
	}
	if _, err := database.ImportWordlist("v2", strings.NewReader("cat\t2.0\n")); err != nil {
		t.Fatalf("second import error = %v", err)
	}

	levels, err := database.WordLevels()
	if err != nil {
		t.Fatalf("WordLevels() error = %v", err)
	}
	if got := levels["cat"]; got != 2.0 {
		t.Errorf(`levels["cat"] = %v, want 2.0 (later import wins)`, got)
	}
}
