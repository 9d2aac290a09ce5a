// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pdiddy/deckgen/pkg/types"
)

// SearchOptions narrows a full-text query over the slide index.
type SearchOptions struct {
	Query string
	// Kind restricts results to one slide kind when non-empty.
	Kind string
	// MaxResults caps the result count; 0 means the store default.
	MaxResults int
}

// SearchResult is one slide matched by a library search.
type SearchResult struct {
	DeckID    string          `json:"deck_id" yaml:"deck_id"`
	DeckTitle string          `json:"deck_title" yaml:"deck_title"`
	Index     int             `json:"index" yaml:"index"`
	Kind      types.SlideKind `json:"kind" yaml:"kind"`
	Heading   string          `json:"heading,omitempty" yaml:"heading,omitempty"`
	Snippet   string          `json:"snippet" yaml:"snippet"`
}

// Search runs an FTS5 match over indexed slide content, best matches
// first.
func (s *Store) Search(ctx context.Context, opts SearchOptions) ([]SearchResult, error) {
	query := strings.TrimSpace(opts.Query)
	if query == "" {
		return nil, fmt.Errorf("empty search query")
	}

	limit := opts.MaxResults
	if limit <= 0 {
		limit = s.maxResults
	}

	sqlQuery := `
		SELECT s.deck_id, d.title, s.idx, s.kind, s.heading,
		       snippet(slides_fts, 0, '', '', '...', 32)
		FROM slides_fts
		JOIN slides s ON s.rowid = slides_fts.rowid
		JOIN decks d ON d.id = s.deck_id
		WHERE slides_fts MATCH ?`
	args := []any{ftsQuote(query)}

	if opts.Kind != "" {
		sqlQuery += ` AND s.kind = ?`
		args = append(args, opts.Kind)
	}

	sqlQuery += ` ORDER BY rank LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("querying slide index: %w", err)
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var r SearchResult
		var heading sql.NullString
		if err := rows.Scan(&r.DeckID, &r.DeckTitle, &r.Index, &r.Kind, &heading, &r.Snippet); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		r.Heading = heading.String
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating results: %w", err)
	}

	return results, nil
}

// ftsQuote wraps each term in double quotes so punctuation in user
// queries cannot break FTS5 syntax.
func ftsQuote(query string) string {
	terms := strings.Fields(query)
	for i, t := range terms {
		terms[i] = `"` + strings.ReplaceAll(t, `"`, `""`) + `"`
	}
	return strings.Join(terms, " ")
}

// ListDecks returns summary rows for every indexed deck, ordered by id.
func (s *Store) ListDecks(ctx context.Context) ([]DeckSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, presenter, date, density, slide_count FROM decks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying decks: %w", err)
	}
	defer rows.Close()

	var decks []DeckSummary
	for rows.Next() {
		var d DeckSummary
		var title, presenter, date, density sql.NullString
		if err := rows.Scan(&d.ID, &title, &presenter, &date, &density, &d.SlideCount); err != nil {
			return nil, fmt.Errorf("scanning deck: %w", err)
		}
		d.Title = title.String
		d.Presenter = presenter.String
		d.Date = date.String
		d.Density = density.String
		decks = append(decks, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating decks: %w", err)
	}

	return decks, nil
}

// DeckSummary is one row of the deck catalog.
type DeckSummary struct {
	ID         string `json:"id" yaml:"id"`
	Title      string `json:"title,omitempty" yaml:"title,omitempty"`
	Presenter  string `json:"presenter,omitempty" yaml:"presenter,omitempty"`
	Date       string `json:"date,omitempty" yaml:"date,omitempty"`
	Density    string `json:"density,omitempty" yaml:"density,omitempty"`
	SlideCount int    `json:"slide_count" yaml:"slide_count"`
}
