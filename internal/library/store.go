// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library persists generated decks in a SQLite index with
// full-text search over slide content.
package library

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/deckgen/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "decks.db"
)

// Store manages the deck library SQLite database.
type Store struct {
	db         *sql.DB
	decksDir   string
	libraryDir string
	maxResults int
}

// NewStore opens or creates the library database at
// libraryDir/index/decks.db, creating the schema if needed.
func NewStore(cfg types.LibraryConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.LibraryDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		decksDir:   cfg.DecksDir,
		libraryDir: cfg.LibraryDir,
		maxResults: maxResults,
	}

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
		`CREATE TABLE IF NOT EXISTS decks (
			id TEXT PRIMARY KEY,
			title TEXT,
			presenter TEXT,
			date TEXT,
			density TEXT,
			slide_count INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS slides (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			deck_id TEXT NOT NULL REFERENCES decks(id),
			idx INTEGER NOT NULL,
			kind TEXT NOT NULL,
			heading TEXT,
			continuation INTEGER,
			content TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_slides_deck_id ON slides(deck_id)`,
		`CREATE TABLE IF NOT EXISTS indexing_status (
			deck_id TEXT PRIMARY KEY,
			file_mod_time TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='slides_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE slides_fts USING fts5(content, content=slides, content_rowid=rowid)`,
			`CREATE TRIGGER slides_ai AFTER INSERT ON slides BEGIN
				INSERT INTO slides_fts(rowid, content) VALUES (new.rowid, new.content);
			END`,
			`CREATE TRIGGER slides_ad AFTER DELETE ON slides BEGIN
				INSERT INTO slides_fts(slides_fts, rowid, content) VALUES('delete', old.rowid, old.content);
			END`,
			`CREATE TRIGGER slides_au AFTER UPDATE ON slides BEGIN
				INSERT INTO slides_fts(slides_fts, rowid, content) VALUES('delete', old.rowid, old.content);
				INSERT INTO slides_fts(rowid, content) VALUES (new.rowid, new.content);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IngestSummary holds counts from a library indexing run.
type IngestSummary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of deck files processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// Ingest scans decksDir for deck-spec YAML files and populates the
// database, detecting new, changed, and unchanged files by modification
// time for incremental updates.
func (s *Store) Ingest(ctx context.Context, w io.Writer) (IngestSummary, error) {
	entries, err := os.ReadDir(s.decksDir)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("reading decks directory %s: %w", s.decksDir, err)
	}

	var summary IngestSummary

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || (!strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml")) {
			continue
		}

		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		deckID := strings.TrimSuffix(strings.TrimSuffix(name, ".yml"), ".yaml")
		filePath := filepath.Join(s.decksDir, name)

		info, err := entry.Info()
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", deckID, err)
			summary.Failed++
			continue
		}
		modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

		var storedModTime string
		err = s.db.QueryRowContext(ctx,
			`SELECT file_mod_time FROM indexing_status WHERE deck_id = ?`, deckID,
		).Scan(&storedModTime)

		if err == nil && storedModTime == modTime {
			fmt.Fprintf(w, "skipped %s\n", deckID)
			summary.Skipped++
			continue
		}

		isUpdate := err == nil

		data, err := os.ReadFile(filePath)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", deckID, err)
			summary.Failed++
			continue
		}

		var deck types.Deck
		if err := yaml.Unmarshal(data, &deck); err != nil {
			fmt.Fprintf(w, "failed  %s: parse error: %v\n", deckID, err)
			summary.Failed++
			continue
		}

		if err := s.ingestDeck(ctx, deckID, &deck, modTime, isUpdate); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", deckID, err)
			summary.Failed++
			continue
		}

		if isUpdate {
			fmt.Fprintf(w, "updated %s (%d slides)\n", deckID, len(deck.Slides))
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexed %s (%d slides)\n", deckID, len(deck.Slides))
			summary.Indexed++
		}
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)

	return summary, nil
}

func (s *Store) ingestDeck(ctx context.Context, deckID string, deck *types.Deck, modTime string, isUpdate bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if isUpdate {
		if _, err := tx.ExecContext(ctx, `DELETE FROM slides WHERE deck_id = ?`, deckID); err != nil {
			return fmt.Errorf("deleting old slides: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO decks (id, title, presenter, date, density, slide_count)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title=excluded.title, presenter=excluded.presenter, date=excluded.date,
			density=excluded.density, slide_count=excluded.slide_count`,
		deckID, deck.Title, deck.Presenter, deck.Date, deck.Density, len(deck.Slides),
	)
	if err != nil {
		return fmt.Errorf("upserting deck: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO slides (deck_id, idx, kind, heading, continuation, content)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, slide := range deck.Slides {
		_, err := stmt.ExecContext(ctx,
			deckID, i, string(slide.Kind), slide.Heading, slide.Continuation, slideText(slide),
		)
		if err != nil {
			return fmt.Errorf("inserting slide %d: %w", i, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO indexing_status (deck_id, file_mod_time) VALUES (?, ?)
		 ON CONFLICT(deck_id) DO UPDATE SET file_mod_time=excluded.file_mod_time`,
		deckID, modTime,
	)
	if err != nil {
		return fmt.Errorf("updating indexing status: %w", err)
	}

	return tx.Commit()
}

// slideText flattens a slide's heading and elements into one searchable
// text blob for the FTS index.
func slideText(slide types.SlideSpec) string {
	var parts []string
	if slide.Heading != "" {
		parts = append(parts, slide.Heading)
	}
	for _, el := range slide.Elements {
		if el.IsList() {
			parts = append(parts, el.Items...)
		} else if el.Text != "" {
			parts = append(parts, el.Text)
		}
	}
	return strings.Join(parts, "\n")
}
