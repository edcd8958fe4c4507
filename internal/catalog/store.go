// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists converted cards in a SQLite database so repeated
// conversions of overlapping exports can be tracked and deduplicated.
package catalog

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/deckconvert/pkg/types"
)

// Store manages the card catalog database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the catalog database at path and ensures the schema
// exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS cards (
			id TEXT PRIMARY KEY,
			question TEXT NOT NULL,
			answer TEXT NOT NULL,
			source TEXT,
			imported_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT,
			output TEXT,
			accepted INTEGER,
			rejected INTEGER,
			ran_at TEXT
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// cardID keys a card by its question text, so re-importing the same
// question updates the stored answer instead of duplicating the card.
func cardID(question string) string {
	sum := sha256.Sum256([]byte(question))
	return hex.EncodeToString(sum[:])
}

// RunSummary holds counts from one recorded conversion run.
type RunSummary struct {
	New        int
	Duplicates int
}

// Total returns the number of cards recorded in the run.
func (r RunSummary) Total() int {
	return r.New + r.Duplicates
}

// RecordRun stores the cards from one conversion run and appends a row to
// the run history. Cards whose question is already cataloged count as
// duplicates and have their answer refreshed.
func (s *Store) RecordRun(ctx context.Context, source, output string, cards []types.Card, rejected int) (RunSummary, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RunSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	var summary RunSummary

	for _, card := range cards {
		id := cardID(card.Question)

		var exists int
		err := tx.QueryRowContext(ctx,
			`SELECT count(*) FROM cards WHERE id = ?`, id).Scan(&exists)
		if err != nil {
			return RunSummary{}, fmt.Errorf("checking card %s: %w", id, err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO cards (id, question, answer, source, imported_at)
			 VALUES (?, ?, ?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET answer = excluded.answer, source = excluded.source`,
			id, card.Question, card.Answer, source, now)
		if err != nil {
			return RunSummary{}, fmt.Errorf("storing card %s: %w", id, err)
		}

		if exists > 0 {
			summary.Duplicates++
		} else {
			summary.New++
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (source, output, accepted, rejected, ran_at) VALUES (?, ?, ?, ?, ?)`,
		source, output, len(cards), rejected, now)
	if err != nil {
		return RunSummary{}, fmt.Errorf("recording run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return RunSummary{}, fmt.Errorf("committing run: %w", err)
	}
	return summary, nil
}

// Stats holds catalog-wide counts.
type Stats struct {
	Cards   int
	Runs    int
	LastRun string
}

// Stats returns the number of cataloged cards, the number of recorded runs,
// and the timestamp of the most recent run (empty if none).
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM cards`).Scan(&st.Cards); err != nil {
		return Stats{}, fmt.Errorf("counting cards: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM runs`).Scan(&st.Runs); err != nil {
		return Stats{}, fmt.Errorf("counting runs: %w", err)
	}
	if st.Runs > 0 {
		err := s.db.QueryRowContext(ctx,
			`SELECT ran_at FROM runs ORDER BY id DESC LIMIT 1`).Scan(&st.LastRun)
		if err != nil {
			return Stats{}, fmt.Errorf("reading last run: %w", err)
		}
	}
	return st, nil
}

// Entry is one cataloged card with provenance.
type Entry struct {
	Question   string
	Answer     string
	Source     string
	ImportedAt string
}

// List returns up to limit cataloged cards, most recently imported first.
// A limit of zero or less returns all cards.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT question, answer, source, imported_at FROM cards
		ORDER BY imported_at DESC, question`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing cards: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Question, &e.Answer, &e.Source, &e.ImportedAt); err != nil {
			return nil, fmt.Errorf("scanning card: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cards: %w", err)
	}
	return entries, nil
}
