// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mapper partitions a DocumentTree into slide-sized SlideSpecs
// under a density profile's bullet and character budgets. The mapper
// never drops, duplicates, or reorders content: it only splits lists at
// budget boundaries and paragraphs at whitespace boundaries. Output is
// byte-identical across runs for identical inputs.
package mapper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/deckgen/pkg/types"
)

// summaryHeading matches closing-section headings that get Summary kind.
var summaryHeading = regexp.MustCompile(`(?i)\b(summary|conclusion|conclusions|wrap-up|takeaways|recap|closing)\b`)

// Map emits the ordered SlideSpec sequence for a tree under a profile.
// Presenter and date pass through to the title slide unchanged.
func Map(tree *types.DocumentTree, profile types.DensityProfile, presenter, date string) []types.SlideSpec {
	if profile.MaxBullets <= 0 {
		profile.MaxBullets = types.DensityMedium.MaxBullets
	}
	if profile.MaxChars <= 0 {
		profile.MaxChars = types.DensityMedium.MaxChars
	}

	var slides []types.SlideSpec

	if tree.Title != "" {
		slides = append(slides, types.SlideSpec{
			Kind:      types.SlideTitle,
			Heading:   tree.Title,
			Presenter: presenter,
			Date:      date,
		})
	}

	for i, sec := range tree.Sections {
		isLast := i == len(tree.Sections)-1
		slides = append(slides, mapSection(sec, profile, isLast)...)
	}

	return slides
}

// mapSection produces the slides for one section: a transition slide
// (for named, non-empty sections) followed by greedily packed content
// slides. Slides within the section carry increasing continuation
// indices starting at 0.
func mapSection(sec types.Section, profile types.DensityProfile, isLast bool) []types.SlideSpec {
	flat := sec.FlatBlocks()
	if len(flat) == 0 {
		return nil
	}

	contentKind := types.SlideContent
	if isLast && summaryHeading.MatchString(sec.Heading) {
		contentKind = types.SlideSummary
	}

	var slides []types.SlideSpec
	if sec.Heading != "" {
		slides = append(slides, types.SlideSpec{
			Kind:    types.SlideSectionTransition,
			Heading: sec.Heading,
		})
	}

	cont := 0
	var cur *types.SlideSpec
	var bulletsUsed, charsUsed int

	start := func(kind types.SlideKind) {
		cur = &types.SlideSpec{Kind: kind, Heading: sec.Heading, Continuation: cont}
		cont++
		bulletsUsed, charsUsed = 0, 0
	}

	flush := func() {
		if cur != nil && len(cur.Elements) > 0 {
			slides = append(slides, *cur)
		}
		cur = nil
	}

	for _, block := range flat {
		switch {
		case block.Kind == types.BlockCode:
			// Code blocks are never split and always occupy their own slide.
			flush()
			start(types.SlideCode)
			cur.Elements = append(cur.Elements, block)
			flush()

		case block.IsList():
			items := block.Items
			for len(items) > 0 {
				if cur == nil {
					start(contentKind)
				}
				remaining := profile.MaxBullets - bulletsUsed
				switch {
				case len(items) <= remaining:
					cur.Elements = append(cur.Elements, listChunk(block, items))
					bulletsUsed += len(items)
					items = nil
				case len(items) <= profile.MaxBullets:
					// Fits whole on a fresh slide; do not split.
					flush()
				case remaining > 0:
					// Longer than any slide: split at the budget boundary.
					cur.Elements = append(cur.Elements, listChunk(block, items[:remaining]))
					items = items[remaining:]
					flush()
				default:
					flush()
				}
			}

		default:
			for _, piece := range splitParagraph(block.Text, profile.MaxChars) {
				if cur != nil && len(cur.Elements) > 0 && charsUsed+len(piece) > profile.MaxChars {
					flush()
				}
				if cur == nil {
					start(contentKind)
				}
				cur.Elements = append(cur.Elements, types.Paragraph(piece))
				charsUsed += len(piece)
			}
		}
	}
	flush()

	assertPartition(flat, slides)
	return slides
}

// listChunk copies a list block with a subset of its items, preserving
// the list kind.
func listChunk(block types.ContentBlock, items []string) types.ContentBlock {
	out := make([]string, len(items))
	copy(out, items)
	return types.ContentBlock{Kind: block.Kind, Items: out}
}

// splitParagraph splits text into pieces of at most limit characters at
// whitespace boundaries, never mid-word. A single word longer than the
// limit is emitted intact.
func splitParagraph(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}
	var out []string
	var b strings.Builder
	for _, w := range strings.Fields(text) {
		if b.Len() > 0 && b.Len()+1+len(w) > limit {
			out = append(out, b.String())
			b.Reset()
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
	}
	if b.Len() > 0 {
		out = append(out, b.String())
	}
	return out
}

// assertPartition panics when the emitted slides do not reconstruct the
// section's block sequence. A violation is a programming error, not an
// input condition.
func assertPartition(flat []types.ContentBlock, slides []types.SlideSpec) {
	want := tokenStream(flat)
	var emitted []types.ContentBlock
	for _, s := range slides {
		emitted = append(emitted, s.Elements...)
	}
	got := tokenStream(emitted)

	if len(want) != len(got) {
		panic(fmt.Sprintf("mapper: partition lost or duplicated content (%d tokens in, %d out)", len(want), len(got)))
	}
	for i := range want {
		if want[i] != got[i] {
			panic(fmt.Sprintf("mapper: partition reordered content at token %d: %q != %q", i, want[i], got[i]))
		}
	}
}

// tokenStream flattens blocks to an order-sensitive token sequence:
// list items and code bodies verbatim, paragraphs word by word.
func tokenStream(blocks []types.ContentBlock) []string {
	var tokens []string
	for _, b := range blocks {
		switch {
		case b.IsList():
			tokens = append(tokens, b.Items...)
		case b.Kind == types.BlockCode:
			tokens = append(tokens, b.Text)
		default:
			tokens = append(tokens, strings.Fields(b.Text)...)
		}
	}
	return tokens
}
