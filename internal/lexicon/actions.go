// Package lexicon implements the `lexicon` CLI command group for
// managing the SQLite CEFR lexicon: importing wordlists and checking
// what is loaded.
package lexicon

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/ecorpuz/textgauge/pkg/db"
)

// ImportFlags for the lexicon import subcommand.
func ImportFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "wordlist", Required: true, Usage: "tab-separated word/level file to import"},
		&cli.StringFlag{Name: "lexicon", Value: db.DefaultDBName, Usage: "path to the CEFR lexicon database"},
		&cli.StringFlag{Name: "name", Usage: "source name recorded with the import (defaults to the file name)"},
		&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
	}
}

// ImportAction bulk-loads a wordlist into the lexicon database.
func ImportAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	wordlistPath := c.String("wordlist")
	sourceName := c.String("name")
	if sourceName == "" {
		sourceName = filepath.Base(wordlistPath)
	}

	file, err := os.Open(wordlistPath)
	if err != nil {
		return fmt.Errorf("failed to open wordlist: %w", err)
	}
	defer file.Close()

	database, err := db.Open(c.String("lexicon"))
	if err != nil {
		return fmt.Errorf("failed to open lexicon database: %w", err)
	}
	defer database.Close()

	count, err := database.ImportWordlist(sourceName, file)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	logger.Info("wordlist imported", "source", sourceName, "words", count, "lexicon", database.Path())
	fmt.Printf("Imported %d words from %s into %s\n", count, sourceName, database.Path())
	return nil
}

// StatsFlags for the lexicon stats subcommand.
func StatsFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "lexicon", Value: db.DefaultDBName, Usage: "path to the CEFR lexicon database"},
	}
}

// StatsAction prints how many words the lexicon holds per CEFR band.
func StatsAction(c *cli.Context) error {
	database, err := db.Open(c.String("lexicon"))
	if err != nil {
		return fmt.Errorf("failed to open lexicon database: %w", err)
	}
	defer database.Close()

	levels, err := database.WordLevels()
	if err != nil {
		return fmt.Errorf("failed to load lexicon: %w", err)
	}

	bands := make([]int, 6)
	for _, level := range levels {
		idx := int(level+0.5) - 1
		if idx < 0 {
			idx = 0
		}
		if idx > 5 {
			idx = 5
		}
		bands[idx]++
	}

	fmt.Printf("Lexicon: %s (%d words)\n", database.Path(), len(levels))
	for i, name := range []string{"A1", "A2", "B1", "B2", "C1", "C2"} {
		fmt.Printf("  %s: %d\n", name, bands[i])
	}
	return nil
}
