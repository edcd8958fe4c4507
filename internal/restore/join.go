// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package restore

import (
	"regexp"
	"strings"
	"unicode"
)

// terminalPunctuation marks sentence-end characters. A terminal mark counts
// as a boundary only when whitespace follows it.
const terminalPunctuation = ".!?"

// breakRunRe matches one or more consecutive break characters.
var breakRunRe = regexp.MustCompile(`[\r\n]+`)

// Join re-renders segmenter output as trimmed sentences joined by separator.
// The text is split after every terminal punctuation mark followed by
// whitespace, keeping the mark attached to the preceding sentence. Empty
// candidates are dropped; the surviving sentences keep their left-to-right
// order. Break characters surviving inside a sentence (inserted by the
// segmenter at a boundary without punctuation) are rewritten to the
// separator, so the result carries no raw line breaks of its own.
func Join(text, separator string) string {
	runes := []rune(text)
	var sentences []string

	appendCandidate := func(candidate string) {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			return
		}
		candidate = breakRunRe.ReplaceAllLiteralString(candidate, separator)
		sentences = append(sentences, candidate)
	}

	start := 0
	for i := 0; i < len(runes); {
		if strings.ContainsRune(terminalPunctuation, runes[i]) &&
			i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			appendCandidate(string(runes[start : i+1]))
			i++
			for i < len(runes) && unicode.IsSpace(runes[i]) {
				i++
			}
			start = i
			continue
		}
		i++
	}
	appendCandidate(string(runes[start:]))

	return strings.Join(sentences, separator)
}
