// Package analyze implements the `analyze` CLI command: run the full
// pipeline over a single text and print the classification report.
package analyze

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/ecorpuz/textgauge/internal/common"
	"github.com/ecorpuz/textgauge/models"
	"github.com/ecorpuz/textgauge/pkg/ingest"
	"github.com/ecorpuz/textgauge/pkg/pipeline"
)

// Flags for the analyze command.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "text", Usage: "text to analyze (reads stdin when neither --text nor --file is given)"},
		&cli.StringFlag{Name: "file", Usage: "read the text from a file"},
		&cli.BoolFlag{Name: "html", Usage: "treat the input as HTML and extract the main content first"},
		&cli.StringFlag{Name: "language", Usage: "force input language (english|filipino); default auto-detect"},
		&cli.StringFlag{Name: "analysis", Value: "both", Usage: "which report to produce: proficiency, complexity, or both"},
		&cli.StringFlag{Name: "format", Value: "json", Usage: "output format: json or yaml"},
		&cli.StringFlag{Name: "title", Usage: "submission title; derived from the first line when omitted"},
		&cli.StringFlag{Name: "fields", Usage: "comma-separated report fields to include (default all)"},
		&cli.BoolFlag{Name: "terse", Usage: "abbreviate field names in the output"},
		&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "path to config file"},
		&cli.StringFlag{Name: "models-dir", Usage: "directory holding trained model files"},
		&cli.StringFlag{Name: "lexicon", Usage: "path to the CEFR lexicon database"},
		&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
	}
}

// Action runs one analysis.
func Action(c *cli.Context) error {
	logger := newLogger(c.Bool("quiet"))

	config, err := loadConfig(c)
	if err != nil {
		return err
	}

	engine, err := pipeline.NewFromConfig(config, logger)
	if err != nil {
		return err
	}

	text, err := readInput(c)
	if err != nil {
		return err
	}

	if c.Bool("html") {
		text, err = ingest.FromHTML(text)
		if err != nil {
			return fmt.Errorf("failed to extract text from HTML: %w", err)
		}
		logger.Info("extracted text from HTML", "chars", len(text))
	}

	fields, terse := c.String("fields"), c.Bool("terse")
	shape := func(result any) any {
		if fields == "" && !terse {
			return result
		}
		return common.FilterResultFields(result, fields, terse)
	}

	output := map[string]any{"title": ingest.Title(text, c.String("title"))}
	language := c.String("language")
	if language == "" {
		language = config.Language
	}

	switch c.String("analysis") {
	case "proficiency":
		result, err := engine.AnalyzeProficiency(text, language)
		if err != nil {
			return err
		}
		output["proficiency"] = shape(result)
	case "complexity":
		result, err := engine.AnalyzeComplexity(text, language)
		if err != nil {
			return err
		}
		output["complexity"] = shape(result)
	case "both":
		proficiency, err := engine.AnalyzeProficiency(text, language)
		if err != nil {
			return err
		}
		complexity, err := engine.AnalyzeComplexity(text, language)
		if err != nil {
			return err
		}
		output["proficiency"] = shape(proficiency)
		output["complexity"] = shape(complexity)
	default:
		return fmt.Errorf("unknown analysis %q (want proficiency, complexity, or both)", c.String("analysis"))
	}

	return printOutput(output, c.String("format"))
}

func newLogger(quiet bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if quiet {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

func loadConfig(c *cli.Context) (*models.Config, error) {
	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if c.String("models-dir") != "" {
		config.ModelsDir = c.String("models-dir")
	}
	if c.String("lexicon") != "" {
		config.LexiconPath = c.String("lexicon")
	}
	return config, nil
}

func readInput(c *cli.Context) (string, error) {
	if text := c.String("text"); text != "" {
		return text, nil
	}
	if path := c.String("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func printOutput(output any, format string) error {
	switch format {
	case "yaml":
		yamlBytes, err := yaml.Marshal(output)
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Print(string(yamlBytes))
	default:
		jsonBytes, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Println(string(jsonBytes))
	}
	return nil
}
