// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workbook writes accepted cards and rejected records to a
// two-sheet xlsx file in StudySmarter import format.
package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/deckconvert/pkg/types"
)

// cardsHeader is the fixed column layout StudySmarter expects for card
// imports. Only the first three columns are filled; the remaining answer
// slots, tags, tips, and explanation stay empty.
var cardsHeader = []string{
	"Question",
	"Answer A",
	"Answer is correct (TRUE if yes, FALSE if no)",
	"Answer B", "Answer is correct",
	"Answer C", "Answer is correct",
	"Answer D", "Answer is correct",
	"Answer E", "Answer is correct",
	"Answer F", "Answer is correct",
	"Tags", "Tips", "Explanation",
}

// correctMarker flags Answer A as the correct answer on every card.
const correctMarker = "TRUE"

// Write creates an xlsx workbook at path with the accepted cards on one
// sheet and the rejected questions on another. Row order follows input
// order on both sheets.
func Write(path string, cards []types.Card, rejected []types.Rejection, cfg types.WorkbookConfig) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", cfg.CardsSheet); err != nil {
		return fmt.Errorf("naming cards sheet: %w", err)
	}
	if err := writeRow(f, cfg.CardsSheet, 1, toCells(cardsHeader)); err != nil {
		return err
	}
	for i, card := range cards {
		row := []any{card.Question, card.Answer, correctMarker}
		if err := writeRow(f, cfg.CardsSheet, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(cfg.ErrorsSheet); err != nil {
		return fmt.Errorf("creating errors sheet: %w", err)
	}
	if err := writeRow(f, cfg.ErrorsSheet, 1, []any{"Question"}); err != nil {
		return err
	}
	for i, rej := range rejected {
		if err := writeRow(f, cfg.ErrorsSheet, i+2, []any{rej.Question}); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("addressing row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("writing row %d on %s: %w", row, sheet, err)
	}
	return nil
}

func toCells(values []string) []any {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
