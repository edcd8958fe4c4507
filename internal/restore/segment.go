// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package restore reconstructs lost line breaks in flashcard answer text.
// Anki's plain-text export flattens multi-line answers into a single line;
// the original sentence boundaries survive only as capitalization patterns.
// segment.go holds the case-transition segmenter that re-inserts breaks.
package restore

import (
	"strings"
	"unicode"
)

// breakRune is the internal break character the segmenter inserts. The
// joiner later rewrites it to the caller's separator.
const breakRune = '\n'

// forbiddenPredecessors lists the characters after which an uppercase run is
// assumed to be correctly delimited already, so no break is inserted before
// it. Covers quotes, opening brackets, slashes, hyphens, sentence-internal
// punctuation, and the plain space.
const forbiddenPredecessors = `"([{/-,.:; `

// maxBreakRunLen is the longest uppercase run still treated as the start of
// a capitalized word. Longer runs are taken to be acronyms ("USA", "DNA")
// and never attract a break. The threshold and the forbidden set above are
// tuned against German-language flashcard exports; this is not a general
// sentence-boundary detector.
const maxBreakRunLen = 2

// segmentStep classifies the token starting at position i and returns the
// cursor past the consumed runes together with the runes to emit for it.
// A non-uppercase rune is copied verbatim. An uppercase run is copied whole;
// a break is prepended only when the run starts mid-text after an ordinary
// character and is short enough to read as a capitalized word.
func segmentStep(text []rune, i int) (int, []rune) {
	if !unicode.IsUpper(text[i]) {
		return i + 1, text[i : i+1]
	}

	j := i
	for j < len(text) && unicode.IsUpper(text[j]) {
		j++
	}
	run := text[i:j]

	if i == 0 || strings.ContainsRune(forbiddenPredecessors, text[i-1]) {
		return j, run
	}
	if len(run) > maxBreakRunLen {
		return j, run
	}

	emit := make([]rune, 0, len(run)+1)
	emit = append(emit, breakRune)
	emit = append(emit, run...)
	return j, emit
}

// Segment scans text left to right and inserts a break character before
// each uppercase run that likely started a new line in the original answer.
// The input must not contain pre-existing line breaks; Restore normalizes
// them away first. Segment is total: any string in, a string out, and every
// non-break character of the input survives unchanged.
func Segment(text string) string {
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text) + len(text)/8)

	for i := 0; i < len(runes); {
		next, emit := segmentStep(runes, i)
		for _, r := range emit {
			b.WriteRune(r)
		}
		i = next
	}
	return b.String()
}
