// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/pdiddy/deckgen/pkg/types"
)

var (
	bulletItem   = regexp.MustCompile(`^\s*[-*•]\s+(.+)$`)
	numberedItem = regexp.MustCompile(`^\s*\d+[.)]\s+(.+)$`)

	// numberedHeading matches hierarchical section numbers: "1", "1.1",
	// "2.3.1", optionally followed by a title with no lowercase prose.
	numberedHeading = regexp.MustCompile(`^\d+(?:\.\d+)*\.?(?:\s+.*)?$`)
)

// maxTitleLen bounds the title heuristic: a first heading-like line
// longer than this opens a section instead.
const maxTitleLen = 60

// parsePlainText builds a DocumentTree from unstructured text. A line is
// a section heading when it is entirely upper-case letters, digits, and
// punctuation, or carries a hierarchical number with no lowercase prose.
// The first heading-like line becomes the document title only when it is
// short, isolated by a blank line, and followed by at least one more
// heading later. The heuristic is deterministic but intentionally lossy.
func parsePlainText(raw string) *types.DocumentTree {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	tree := &types.DocumentTree{}
	titleLine := detectTitleLine(lines)

	var cur *types.Section

	flushSection := func() {
		if cur != nil {
			tree.Sections = append(tree.Sections, *cur)
			cur = nil
		}
	}

	var block *types.ContentBlock

	flushBlock := func() {
		if block == nil {
			return
		}
		if cur == nil {
			cur = &types.Section{}
		}
		cur.Blocks = append(cur.Blocks, *block)
		block = nil
	}

	for i, line := range lines {
		if i == titleLine {
			tree.Title = strings.TrimSpace(line)
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flushBlock()
			continue
		}

		if m := bulletItem.FindStringSubmatch(line); m != nil {
			if block == nil || block.Kind != types.BlockBulletList {
				flushBlock()
				b := types.BulletList()
				block = &b
			}
			block.Items = append(block.Items, strings.TrimSpace(m[1]))
			continue
		}

		if m := numberedItem.FindStringSubmatch(line); m != nil {
			if isHeadingLine(trimmed) {
				flushBlock()
				flushSection()
				cur = &types.Section{Heading: trimmed}
				continue
			}
			if block == nil || block.Kind != types.BlockNumberedList {
				flushBlock()
				b := types.NumberedList()
				block = &b
			}
			block.Items = append(block.Items, strings.TrimSpace(m[1]))
			continue
		}

		if isHeadingLine(trimmed) {
			flushBlock()
			flushSection()
			cur = &types.Section{Heading: trimmed}
			continue
		}

		// Paragraph text; continuation lines join with single spaces.
		if block == nil || block.Kind != types.BlockParagraph {
			flushBlock()
			b := types.Paragraph(trimmed)
			block = &b
			continue
		}
		block.Text += " " + trimmed
	}
	flushBlock()
	flushSection()

	return tree
}

// detectTitleLine returns the index of the line to treat as the document
// title, or -1. The first significant line qualifies when it is
// heading-like, short, followed by a blank line, and another
// heading-like line appears later in the input. List items never count
// as the later heading even when fully upper-case.
func detectTitleLine(lines []string) int {
	first := -1
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			first = i
			break
		}
	}
	if first < 0 {
		return -1
	}

	t := strings.TrimSpace(lines[first])
	if !isHeadingLine(t) || len(t) > maxTitleLen {
		return -1
	}
	if first+1 >= len(lines) || strings.TrimSpace(lines[first+1]) != "" {
		return -1
	}
	for _, line := range lines[first+1:] {
		trimmed := strings.TrimSpace(line)
		if bulletItem.MatchString(trimmed) || numberedItem.MatchString(trimmed) {
			continue
		}
		if isHeadingLine(trimmed) {
			return first
		}
	}
	return -1
}

// isHeadingLine reports whether a trimmed line looks like a section
// heading: all upper-case (no lowercase letters, at least one letter or
// digit), or a hierarchical number with no lowercase prose.
func isHeadingLine(line string) bool {
	if line == "" {
		return false
	}
	if numberedHeading.MatchString(line) && !containsLower(line) {
		return true
	}
	hasAlnum := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			hasAlnum = true
		}
	}
	return hasAlnum
}

func containsLower(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}
