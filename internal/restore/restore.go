// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package restore

// Restore runs the full separator restoration pipeline on answer text:
// collapse any existing line breaks to spaces, re-insert likely break points
// with the case-transition segmenter, then re-split on terminal punctuation
// and join the sentences with separator.
//
// Restore is a pure function over its inputs. It never fails, holds no
// state, and is safe to call from any number of goroutines.
func Restore(text, separator string) string {
	flat := breakRunRe.ReplaceAllLiteralString(text, " ")
	return Join(Segment(flat), separator)
}
