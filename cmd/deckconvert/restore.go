// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/deckconvert/internal/restore"
)

var restoreCmd = &cobra.Command{
	Use:   "restore [file]",
	Short: "Run the separator restoration heuristic on raw text",
	Long: `Restore applies the line-break restoration heuristic to a text file, or to
stdin when no file is given, and prints the result. Useful for inspecting
what the heuristic does to an answer before converting a whole export.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening input: %w", err)
			}
			defer f.Close()
			in = f
		}

		text, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		separator, _ := cmd.Flags().GetString("separator")
		fmt.Println(restore.Restore(string(text), separator))
		return nil
	},
}

func init() {
	restoreCmd.Flags().String("separator", "\n", "separator joining restored sentences")

	rootCmd.AddCommand(restoreCmd)
}
