// Package models defines the shared data structures of the analysis
// pipeline: tokens, metrics, results, and runtime configuration.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration. Values may come from a YAML file,
// CLI flags, or both; flags win.
type Config struct {
	// ModelsDir is where trained model files and the evaluation metrics
	// store live. A missing directory just means heuristic-only mode.
	ModelsDir string `yaml:"models_dir"`
	// LexiconPath points at the CEFR word-level SQLite database. Empty
	// means the embedded seed lexicon.
	LexiconPath string `yaml:"lexicon_path"`
	// Language forces the input language ("english" or "filipino").
	// Empty means auto-detect.
	Language string `yaml:"language"`
	// WorkerCount is the batch-extraction pool size.
	WorkerCount int `yaml:"worker_count"`
}

// LoadConfig reads a YAML config file. A missing file is not an error;
// it yields the zero config so flag defaults apply.
func LoadConfig(path string) (*Config, error) {
	config := &Config{}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.WorkerCount < 0 {
		return nil, fmt.Errorf("worker_count must be >= 0, got %d", config.WorkerCount)
	}

	return config, nil
}
