// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package input loads pipeline inputs from files: raw text or Markdown
// for generation, CSV tables, and presentation data for validation.
// Missing or unreadable files are fatal to the caller; the content
// itself is consumed, never mutated.
package input

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/deckgen/pkg/types"
)

// ReadText reads a raw text or Markdown file into a string.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input file: %w", err)
	}
	return string(data), nil
}

// ReadCSV turns a CSV file into a DocumentTree: one section named after
// the file, one bullet per record pairing headers with values. The
// header row is taken from the first record.
func ReadCSV(path string) (*types.DocumentTree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening CSV file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}

	tree := &types.DocumentTree{}
	if len(records) == 0 {
		return tree, nil
	}

	headers := records[0]
	var items []string
	for _, rec := range records[1:] {
		var parts []string
		for i, val := range rec {
			val = strings.TrimSpace(val)
			if val == "" {
				continue
			}
			if i < len(headers) && strings.TrimSpace(headers[i]) != "" {
				parts = append(parts, fmt.Sprintf("%s: %s", strings.TrimSpace(headers[i]), val))
			} else {
				parts = append(parts, val)
			}
		}
		if len(parts) > 0 {
			items = append(items, strings.Join(parts, ", "))
		}
	}

	section := types.Section{Heading: fileStem(path)}
	if len(items) > 0 {
		section.Blocks = append(section.Blocks, types.BulletList(items...))
	}
	tree.Sections = append(tree.Sections, section)
	return tree, nil
}

// LoadPresentation reads presentation data for validation from a JSON
// or YAML file, chosen by extension (JSON unless .yaml/.yml).
func LoadPresentation(path string) (*types.Presentation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading presentation file: %w", err)
	}

	var p types.Presentation
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parsing presentation YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parsing presentation JSON: %w", err)
		}
	}
	return &p, nil
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
