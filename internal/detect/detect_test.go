// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package detect

import (
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Format
	}{
		{"empty", "", PlainText},
		{"prose", "Quarterly results were strong.\nRevenue grew again.", PlainText},
		{"atx heading", "# Quarterly Results\n\nRevenue grew.", Markdown},
		{"deep heading", "### Notes\nSome notes.", Markdown},
		{"bullet list", "- first point\n- second point", Markdown},
		{"plus bullet", "+ first point", Markdown},
		{"numbered list", "1. first step\n2. second step", Markdown},
		{"indented bullet", "  - nested point", Markdown},
		{"hash without space", "#hashtag is not a heading", PlainText},
		{"dash without space", "-dashed-word stays prose", PlainText},
		{"marker after blank lines", "\n\n\n- still detected", Markdown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.text, DefaultWindow); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectWindowLimit(t *testing.T) {
	// Marker appears on the 11th non-empty line, past the default window.
	lines := make([]string, 0, 11)
	for i := 0; i < 10; i++ {
		lines = append(lines, "plain prose line")
	}
	lines = append(lines, "# late heading")
	text := strings.Join(lines, "\n")

	if got := Detect(text, DefaultWindow); got != PlainText {
		t.Errorf("Detect past window = %q, want %q", got, PlainText)
	}
	if got := Detect(text, 11); got != Markdown {
		t.Errorf("Detect with window 11 = %q, want %q", got, Markdown)
	}
	if got := Detect(text, 0); got != PlainText {
		t.Errorf("Detect with window 0 should use the default, got %q", got)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		hint    string
		text    string
		want    Format
		wantErr bool
	}{
		{"explicit text", "text", "# looks like markdown", PlainText, false},
		{"explicit markdown", "markdown", "plain prose", Markdown, false},
		{"auto detects markdown", "auto", "## Section", Markdown, false},
		{"empty hint detects", "", "plain prose", PlainText, false},
		{"unknown hint", "csv", "anything", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.hint, tt.text, DefaultWindow)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Resolve(%q) expected error", tt.hint)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) unexpected error: %v", tt.hint, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.hint, got, tt.want)
			}
		})
	}
}
