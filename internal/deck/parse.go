// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package deck parses tab-separated flashcard exports into accepted cards
// and rejected records, restoring lost line breaks in each answer.
package deck

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/deckconvert/internal/restore"
	"github.com/pdiddy/deckconvert/pkg/types"
)

// maxLineSize bounds a single export line. Image-occlusion answers can run
// very long after flattening.
const maxLineSize = 1 << 20

// ParseResult holds the outcome of parsing one export file.
type ParseResult struct {
	Cards    []types.Card
	Rejected []types.Rejection
}

// Summary returns the accepted and rejected counts.
func (r ParseResult) Summary() Summary {
	return Summary{Accepted: len(r.Cards), Rejected: len(r.Rejected)}
}

// Summary holds record counts from a parse run.
type Summary struct {
	Accepted int
	Rejected int
}

// Total returns the number of records processed.
func (s Summary) Total() int {
	return s.Accepted + s.Rejected
}

// HasRejections reports whether any records were rejected.
func (s Summary) HasRejections() bool {
	return s.Rejected > 0
}

// Parse reads a flashcard export line by line. Blank lines, comment lines,
// and sentinel lines are skipped. A line without a tab, or with nothing
// after the first tab, is rejected; everything else becomes a card whose
// answer is run through the separator restoration engine. Rejections are
// reported to w as they occur, with 1-based line numbers.
func Parse(r io.Reader, cfg types.DeckConfig, w io.Writer) (ParseResult, error) {
	var result ParseResult

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || line == cfg.Sentinel {
			continue
		}
		if cfg.CommentPrefix != "" && strings.HasPrefix(line, cfg.CommentPrefix) {
			continue
		}

		question, answer, found := strings.Cut(line, "\t")
		if !found {
			result.Rejected = append(result.Rejected, types.Rejection{
				Line:     lineNo,
				Question: line,
				Reason:   types.RejectNoTab,
			})
			fmt.Fprintf(w, "[line %d] no tab separator, rejected: %s\n", lineNo, line)
			continue
		}

		question = strings.TrimSpace(question)
		answer = strings.TrimSpace(answer)
		if answer == "" {
			result.Rejected = append(result.Rejected, types.Rejection{
				Line:     lineNo,
				Question: question,
				Reason:   types.RejectEmptyAnswer,
			})
			fmt.Fprintf(w, "[line %d] answer missing for question: %s\n", lineNo, question)
			continue
		}

		result.Cards = append(result.Cards, types.Card{
			Question: question,
			Answer:   restore.Restore(answer, cfg.Separator),
		})
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("reading export: %w", err)
	}

	return result, nil
}
