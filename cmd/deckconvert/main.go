// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the deckconvert CLI.
// See docs/ARCHITECTURE for the pipeline layout.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/deckconvert/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the deckconvert CLI.
var rootCmd = &cobra.Command{
	Use:   "deckconvert",
	Short: "Convert Anki text exports to StudySmarter xlsx workbooks",
	Long: `deckconvert reads a tab-separated flashcard export, restores the line
breaks that Anki's plain-text export flattens out of multi-line answers, and
writes a two-sheet xlsx workbook: valid cards in StudySmarter import format,
rejected records on a separate errors sheet.

The restoration heuristic re-inserts sentence boundaries from capitalization
patterns; see the restore subcommand to run it standalone.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./deckconvert.yaml or ~/.config/deckconvert/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("deckconvert")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "deckconvert"))
		}
	}

	defaults := types.DefaultConfig()
	viper.SetDefault("deck.separator", defaults.Deck.Separator)
	viper.SetDefault("deck.sentinel", defaults.Deck.Sentinel)
	viper.SetDefault("deck.comment_prefix", defaults.Deck.CommentPrefix)
	viper.SetDefault("workbook.cards_sheet", defaults.Workbook.CardsSheet)
	viper.SetDefault("workbook.errors_sheet", defaults.Workbook.ErrorsSheet)
	viper.SetDefault("catalog.path", defaults.Catalog.Path)

	viper.SetEnvPrefix("DECKCONVERT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig materializes the effective configuration from viper.
func loadConfig() types.Config {
	return types.Config{
		Deck: types.DeckConfig{
			Separator:     viper.GetString("deck.separator"),
			Sentinel:      viper.GetString("deck.sentinel"),
			CommentPrefix: viper.GetString("deck.comment_prefix"),
		},
		Workbook: types.WorkbookConfig{
			CardsSheet:  viper.GetString("workbook.cards_sheet"),
			ErrorsSheet: viper.GetString("workbook.errors_sheet"),
		},
		Catalog: types.CatalogConfig{
			Path: viper.GetString("catalog.path"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
