package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ecorpuz/textgauge/internal/analyze"
	"github.com/ecorpuz/textgauge/internal/batch"
	"github.com/ecorpuz/textgauge/internal/evaluate"
	"github.com/ecorpuz/textgauge/internal/lexicon"
	"github.com/ecorpuz/textgauge/pkg/help"
)

func main() {
	app := &cli.App{
		Name:  "textgauge",
		Usage: "reading proficiency and text complexity analysis for student texts",
		Commands: []*cli.Command{
			{
				Name:   "analyze",
				Usage:  "analyze a single text and print proficiency and complexity reports",
				Flags:  analyze.Flags(),
				Action: analyze.Action,
			},
			{
				Name:   "batch",
				Usage:  "extract feature vectors and labels from a scored CSV corpus",
				Flags:  batch.Flags(),
				Action: batch.Action,
			},
			{
				Name:   "evaluation",
				Usage:  "print stored offline evaluation metrics for both models",
				Flags:  evaluate.Flags(),
				Action: evaluate.Action,
			},
			{
				Name:  "lexicon",
				Usage: "manage the CEFR lexicon database",
				Subcommands: []*cli.Command{
					{
						Name:   "import",
						Usage:  "bulk-load a tab-separated wordlist",
						Flags:  lexicon.ImportFlags(),
						Action: lexicon.ImportAction,
					},
					{
						Name:   "stats",
						Usage:  "show word counts per CEFR band",
						Flags:  lexicon.StatsFlags(),
						Action: lexicon.StatsAction,
					},
				},
			},
			{
				Name:  "coldstart",
				Usage: "print the quick-start reference",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
