// Package evaluate implements the `evaluation` CLI command: report the
// offline evaluation metrics stored alongside the trained models.
package evaluate

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/ecorpuz/textgauge/models"
	"github.com/ecorpuz/textgauge/pkg/classifier"
	"github.com/ecorpuz/textgauge/pkg/pipeline"
)

// Flags for the evaluation command.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "path to config file"},
		&cli.StringFlag{Name: "models-dir", Usage: "directory holding trained model files"},
		&cli.StringFlag{Name: "import", Usage: "merge metrics from a training-run JSON file into the store before reporting"},
		&cli.StringFlag{Name: "format", Value: "json", Usage: "output format: json or yaml"},
		&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
	}
}

// output is the evaluation report shape.
type output struct {
	Proficiency  models.EvaluationMetrics `json:"proficiency" yaml:"proficiency"`
	Complexity   models.EvaluationMetrics `json:"complexity" yaml:"complexity"`
	ModelsLoaded map[string]bool          `json:"models_loaded" yaml:"models_loaded"`
}

// Action prints both models' stored evaluation metrics.
func Action(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if c.String("models-dir") != "" {
		config.ModelsDir = c.String("models-dir")
	}

	engine, err := pipeline.NewFromConfig(config, logger)
	if err != nil {
		return err
	}

	storePath := engine.MetricsStorePath()
	if path := c.String("import"); path != "" {
		imported, err := importMetrics(storePath, path)
		if err != nil {
			return err
		}
		logger.Info("imported evaluation metrics", "path", path, "models", imported)
	}
	result := output{
		Proficiency: engine.Proficiency.PerformanceMetrics(storePath),
		Complexity:  engine.Complexity.PerformanceMetrics(storePath),
		ModelsLoaded: map[string]bool{
			engine.Proficiency.Name(): engine.Proficiency.Loaded(),
			engine.Complexity.Name():  engine.Complexity.Loaded(),
		},
	}

	var data []byte
	if c.String("format") == "yaml" {
		data, err = yaml.Marshal(result)
	} else {
		data, err = json.MarshalIndent(result, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal evaluation report: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// importMetrics merges a training run's metrics file, keyed by model
// name, into the store. Returns how many models were recorded.
func importMetrics(storePath, sourcePath string) (int, error) {
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return 0, fmt.Errorf("failed to read metrics file: %w", err)
	}
	var incoming map[string]models.EvaluationMetrics
	if err := json.Unmarshal(data, &incoming); err != nil {
		return 0, fmt.Errorf("failed to parse metrics file: %w", err)
	}
	for name, metrics := range incoming {
		if err := classifier.SaveMetrics(storePath, name, metrics); err != nil {
			return 0, fmt.Errorf("failed to record metrics for %s: %w", name, err)
		}
	}
	return len(incoming), nil
}
