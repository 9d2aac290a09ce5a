// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/deckgen/pkg/types"
)

// ExportFormat selects the serialization for deck export.
type ExportFormat string

const (
	ExportYAML ExportFormat = "yaml"
	ExportJSON ExportFormat = "json"
)

// ParseExportFormat validates a format name; the empty string means
// YAML.
func ParseExportFormat(name string) (ExportFormat, error) {
	switch name {
	case "", "yaml", "yml":
		return ExportYAML, nil
	case "json":
		return ExportJSON, nil
	default:
		return "", fmt.Errorf("unknown export format %q (expected yaml or json)", name)
	}
}

// LoadDeck reads a deck-spec file from the decks directory by id.
func (s *Store) LoadDeck(deckID string) (*types.Deck, error) {
	path := filepath.Join(s.decksDir, deckID+".yaml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		path = filepath.Join(s.decksDir, deckID+".yml")
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading deck %s: %w", deckID, err)
	}

	var deck types.Deck
	if err := yaml.Unmarshal(data, &deck); err != nil {
		return nil, fmt.Errorf("parsing deck %s: %w", deckID, err)
	}
	return &deck, nil
}

// SaveDeck writes a deck-spec YAML file into the decks directory and
// returns the path written.
func (s *Store) SaveDeck(deckID string, deck *types.Deck) (string, error) {
	if err := os.MkdirAll(s.decksDir, 0o755); err != nil {
		return "", fmt.Errorf("creating decks directory: %w", err)
	}

	data, err := yaml.Marshal(deck)
	if err != nil {
		return "", fmt.Errorf("marshaling deck: %w", err)
	}

	path := filepath.Join(s.decksDir, deckID+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing deck file: %w", err)
	}
	return path, nil
}

// ExportLibrary writes every indexed deck into a single export file
// under the index directory and returns the path written.
func (s *Store) ExportLibrary(ctx context.Context, format ExportFormat) (string, error) {
	summaries, err := s.ListDecks(ctx)
	if err != nil {
		return "", err
	}

	decks := make([]types.Deck, 0, len(summaries))
	for _, sum := range summaries {
		deck, err := s.LoadDeck(sum.ID)
		if err != nil {
			return "", err
		}
		decks = append(decks, *deck)
	}

	var data []byte
	switch format {
	case ExportJSON:
		data, err = json.MarshalIndent(decks, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	default:
		data, err = yaml.Marshal(decks)
	}
	if err != nil {
		return "", fmt.Errorf("marshaling library export: %w", err)
	}

	path := filepath.Join(s.libraryDir, "index", "export."+string(format))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing library export: %w", err)
	}
	return path, nil
}

// Export serializes a deck from the decks directory into the requested
// format.
func (s *Store) Export(deckID string, format ExportFormat) ([]byte, error) {
	deck, err := s.LoadDeck(deckID)
	if err != nil {
		return nil, err
	}

	switch format {
	case ExportJSON:
		data, err := json.MarshalIndent(deck, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling deck: %w", err)
		}
		return append(data, '\n'), nil
	default:
		data, err := yaml.Marshal(deck)
		if err != nil {
			return nil, fmt.Errorf("marshaling deck: %w", err)
		}
		return data, nil
	}
}
