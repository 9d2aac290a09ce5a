// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parser turns raw text into an ordered DocumentTree. Two
// variants share one output type, selected by the detected format.
// Parsing never fails on degenerate input: empty text yields an empty
// tree, and an unterminated code fence runs to end of input.
package parser

import (
	"fmt"

	"github.com/pdiddy/deckgen/internal/detect"
	"github.com/pdiddy/deckgen/pkg/types"
)

// Parse consumes raw text under the chosen format and produces a
// DocumentTree. The input is never mutated.
func Parse(raw string, f detect.Format) (*types.DocumentTree, error) {
	switch f {
	case detect.Markdown:
		return parseMarkdown(raw), nil
	case detect.PlainText:
		return parsePlainText(raw), nil
	default:
		return nil, fmt.Errorf("unresolved format %q", f)
	}
}
