// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/deckconvert/pkg/types"
)

func TestReportRoundTrip(t *testing.T) {
	cards := []types.Card{{Question: "Frage", Answer: "antwort"}}
	rejected := []types.Rejection{
		{Line: 4, Question: "ohne tab", Reason: types.RejectNoTab},
	}

	r := New("deck.txt", "deck.xlsx", "\n", cards, rejected)
	assert.Equal(t, 1, r.Summary.Accepted)
	assert.Equal(t, 1, r.Summary.Rejected)
	assert.False(t, r.Summary.Timestamp.IsZero())

	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, Write(path, r))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "deck.txt", got.Input)
	assert.Equal(t, "deck.xlsx", got.Output)
	assert.Equal(t, "\n", got.Separator)
	require.Len(t, got.Rejected, 1)
	assert.Equal(t, 4, got.Rejected[0].Line)
	assert.Equal(t, types.RejectNoTab, got.Rejected[0].Reason)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading report")
}

func TestReadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, writeTestFile(path, "input: [unclosed"))

	_, err := Read(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing report")
}

func writeTestFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
