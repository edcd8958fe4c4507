// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/deckconvert/internal/catalog"
	"github.com/pdiddy/deckconvert/internal/deck"
	"github.com/pdiddy/deckconvert/internal/report"
	"github.com/pdiddy/deckconvert/internal/workbook"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.txt> <output.xlsx>",
	Short: "Convert a flashcard export to an xlsx workbook",
	Long: `Convert reads a tab-separated flashcard export, restores line breaks in
each answer, and writes the result as a two-sheet xlsx workbook. Rejected
records (no tab separator, or no answer) are reported on stderr as they are
found and land on the errors sheet.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath, outputPath := args[0], args[1]
		cfg := loadConfig()

		if cmd.Flags().Changed("separator") {
			cfg.Deck.Separator, _ = cmd.Flags().GetString("separator")
		}
		if cmd.Flags().Changed("sentinel") {
			cfg.Deck.Sentinel, _ = cmd.Flags().GetString("sentinel")
		}

		f, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("opening export: %w", err)
		}
		defer f.Close()

		result, err := deck.Parse(f, cfg.Deck, os.Stderr)
		if err != nil {
			return err
		}

		if err := workbook.Write(outputPath, result.Cards, result.Rejected, cfg.Workbook); err != nil {
			return err
		}

		summary := result.Summary()
		fmt.Printf("Converted cards: %d\n", summary.Accepted)
		fmt.Printf("Rejected records: %d\n", summary.Rejected)
		fmt.Printf("Workbook written: %s\n", outputPath)

		if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
			r := report.New(inputPath, outputPath, cfg.Deck.Separator, result.Cards, result.Rejected)
			if err := report.Write(reportPath, r); err != nil {
				return err
			}
			fmt.Printf("Report written: %s\n", reportPath)
		}

		if useCatalog, _ := cmd.Flags().GetBool("catalog"); useCatalog {
			store, err := catalog.Open(cfg.Catalog.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			runSummary, err := store.RecordRun(cmd.Context(), inputPath, outputPath, result.Cards, summary.Rejected)
			if err != nil {
				return err
			}
			fmt.Printf("Cataloged: %d new, %d already known\n", runSummary.New, runSummary.Duplicates)
		}

		return nil
	},
}

func init() {
	convertCmd.Flags().String("separator", "\n", "separator joining restored sentences in an answer")
	convertCmd.Flags().String("sentinel", "", "literal line value to skip (overrides config)")
	convertCmd.Flags().String("report", "", "write a YAML conversion report to this path")
	convertCmd.Flags().Bool("catalog", false, "record converted cards in the card catalog")

	rootCmd.AddCommand(convertCmd)
}
