// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package detect classifies raw input text as plain text or Markdown.
// Detection is best-effort: ambiguous input falls back to plain text,
// which is the more permissive grammar.
package detect

import (
	"fmt"
	"regexp"
	"strings"
)

// Format is the parsing strategy chosen for a piece of raw input.
type Format string

const (
	PlainText Format = "text"
	Markdown  Format = "markdown"

	// Auto asks the detector to decide.
	Auto Format = "auto"
)

// DefaultWindow is the number of leading non-empty lines inspected.
const DefaultWindow = 10

var (
	headingMarker = regexp.MustCompile(`^#{1,6}\s+\S`)
	listMarker    = regexp.MustCompile(`^\s*(?:[-*+]|\d+\.)\s+\S`)
)

// Detect classifies text by scanning the first window non-empty lines
// for a Markdown heading or list marker. A window of zero or less uses
// DefaultWindow. Detect never fails.
func Detect(text string, window int) Format {
	if window <= 0 {
		window = DefaultWindow
	}

	seen := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if headingMarker.MatchString(line) || listMarker.MatchString(line) {
			return Markdown
		}
		seen++
		if seen >= window {
			break
		}
	}
	return PlainText
}

// Resolve turns a caller-supplied format hint into a definite Format.
// Hints "text" and "markdown" pass through unchanged; "auto" (or empty)
// runs detection. Any other hint is an error.
func Resolve(hint string, text string, window int) (Format, error) {
	switch Format(hint) {
	case PlainText:
		return PlainText, nil
	case Markdown:
		return Markdown, nil
	case Auto, "":
		return Detect(text, window), nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, markdown, or auto)", hint)
	}
}
