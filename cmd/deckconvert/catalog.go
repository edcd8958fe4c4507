// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/deckconvert/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the card catalog",
	Long: `Catalog inspects the SQLite database of previously converted cards.
Cards are recorded there when convert runs with --catalog.`,
}

var catalogStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print catalog counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := catalog.Open(loadConfig().Catalog.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		stats, err := store.Stats(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Cards: %d\n", stats.Cards)
		fmt.Printf("Runs:  %d\n", stats.Runs)
		if stats.LastRun != "" {
			fmt.Printf("Last run: %s\n", stats.LastRun)
		}
		return nil
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cataloged cards",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := catalog.Open(loadConfig().Catalog.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		entries, err := store.List(cmd.Context(), limit)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%s\t%s\t(%s)\n", e.Question, e.Answer, e.Source)
		}
		return nil
	},
}

func init() {
	catalogListCmd.Flags().Int("limit", 20, "maximum number of cards to list (0 for all)")

	catalogCmd.AddCommand(catalogStatsCmd)
	catalogCmd.AddCommand(catalogListCmd)
	rootCmd.AddCommand(catalogCmd)
}
