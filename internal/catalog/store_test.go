// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/deckconvert/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordRunAndStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	cards := []types.Card{
		{Question: "Frage eins", Answer: "antwort eins"},
		{Question: "Frage zwei", Answer: "antwort zwei"},
	}
	summary, err := s.RecordRun(ctx, "deck.txt", "deck.xlsx", cards, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.New)
	assert.Equal(t, 0, summary.Duplicates)
	assert.Equal(t, 2, summary.Total())

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Cards)
	assert.Equal(t, 1, stats.Runs)
	assert.NotEmpty(t, stats.LastRun)
}

func TestRecordRunDetectsDuplicates(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := []types.Card{{Question: "Frage", Answer: "alte antwort"}}
	_, err := s.RecordRun(ctx, "v1.txt", "v1.xlsx", first, 0)
	require.NoError(t, err)

	second := []types.Card{
		{Question: "Frage", Answer: "neue antwort"},
		{Question: "Neue Frage", Answer: "antwort"},
	}
	summary, err := s.RecordRun(ctx, "v2.txt", "v2.xlsx", second, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.New)
	assert.Equal(t, 1, summary.Duplicates)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Cards, "duplicate question must not add a card")
	assert.Equal(t, 2, stats.Runs)

	entries, err := s.List(ctx, 0)
	require.NoError(t, err)
	answers := make(map[string]string)
	for _, e := range entries {
		answers[e.Question] = e.Answer
	}
	assert.Equal(t, "neue antwort", answers["Frage"], "re-import refreshes the answer")
}

func TestListLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	cards := []types.Card{
		{Question: "a", Answer: "1"},
		{Question: "b", Answer: "2"},
		{Question: "c", Answer: "3"},
	}
	_, err := s.RecordRun(ctx, "deck.txt", "deck.xlsx", cards, 0)
	require.NoError(t, err)

	entries, err := s.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	all, err := s.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for _, e := range all {
		assert.Equal(t, "deck.txt", e.Source)
		assert.NotEmpty(t, e.ImportedAt)
	}
}

func TestStatsEmptyCatalog(t *testing.T) {
	s := openTestStore(t)

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Cards)
	assert.Zero(t, stats.Runs)
	assert.Empty(t, stats.LastRun)
}
