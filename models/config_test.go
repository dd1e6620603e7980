package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "no-such-config.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v, want zero config for missing file", err)
	}
	if config.ModelsDir != "" || config.LexiconPath != "" || config.WorkerCount != 0 {
		t.Errorf("missing file yielded non-zero config: %+v", config)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "models_dir: models\nlexicon_path: cefr.db\nlanguage: english\nworker_count: 8\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if config.ModelsDir != "models" {
		t.Errorf("ModelsDir = %q, want models", config.ModelsDir)
	}
	if config.LexiconPath != "cefr.db" {
		t.Errorf("LexiconPath = %q, want cefr.db", config.LexiconPath)
	}
	if config.Language != "english" {
		t.Errorf("Language = %q, want english", config.Language)
	}
	if config.WorkerCount != 8 {
		t.Errorf("WorkerCount = %d, want 8", config.WorkerCount)
	}
}

func TestLoadConfigRejectsNegativeWorkers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("worker_count: -2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() error = nil for negative worker_count")
	}
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("models_dir: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() error = nil for malformed YAML")
	}
}
