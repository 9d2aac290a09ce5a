// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mapper

import (
	"fmt"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/deckgen/internal/detect"
	"github.com/pdiddy/deckgen/internal/parser"
	"github.com/pdiddy/deckgen/pkg/types"
)

func contentSlides(slides []types.SlideSpec) []types.SlideSpec {
	var out []types.SlideSpec
	for _, s := range slides {
		if s.Kind == types.SlideContent || s.Kind == types.SlideSummary || s.Kind == types.SlideCode {
			out = append(out, s)
		}
	}
	return out
}

func TestMapTitleSlide(t *testing.T) {
	tree := &types.DocumentTree{
		Title: "Launch Plan",
		Sections: []types.Section{
			{Heading: "Scope", Blocks: []types.ContentBlock{types.Paragraph("All regions.")}},
		},
	}

	slides := Map(tree, types.DensityMedium, "Ana", "2026-08-28")
	require.NotEmpty(t, slides)
	assert.Equal(t, types.SlideTitle, slides[0].Kind)
	assert.Equal(t, "Launch Plan", slides[0].Heading)
	assert.Equal(t, "Ana", slides[0].Presenter)
	assert.Equal(t, "2026-08-28", slides[0].Date)
}

func TestMapEmptyTree(t *testing.T) {
	slides := Map(&types.DocumentTree{}, types.DensityLow, "", "")
	assert.Empty(t, slides)
}

func TestMapSkipsEmptySections(t *testing.T) {
	tree := &types.DocumentTree{
		Sections: []types.Section{
			{Heading: "Empty"},
			{Heading: "Full", Blocks: []types.ContentBlock{types.Paragraph("text")}},
		},
	}
	slides := Map(tree, types.DensityMedium, "", "")
	require.Len(t, slides, 2)
	assert.Equal(t, types.SlideSectionTransition, slides[0].Kind)
	assert.Equal(t, "Full", slides[0].Heading)
}

func TestMapUntitledSectionHasNoTransition(t *testing.T) {
	tree := &types.DocumentTree{
		Sections: []types.Section{
			{Blocks: []types.ContentBlock{types.Paragraph("lead-in")}},
		},
	}
	slides := Map(tree, types.DensityMedium, "", "")
	require.Len(t, slides, 1)
	assert.Equal(t, types.SlideContent, slides[0].Kind)
}

func TestMapMarkdownListSplit(t *testing.T) {
	lines := []string{"## Topics", ""}
	for i := 1; i <= 10; i++ {
		lines = append(lines, fmt.Sprintf("- item %d", i))
	}
	tree, err := parser.Parse(strings.Join(lines, "\n"), detect.Markdown)
	require.NoError(t, err)

	slides := Map(tree, types.DensityLow, "", "")

	require.Len(t, slides, 4)
	assert.Equal(t, types.SlideSectionTransition, slides[0].Kind)

	content := contentSlides(slides)
	require.Len(t, content, 3)

	var counts []int
	var items []string
	for i, s := range content {
		assert.Equal(t, types.SlideContent, s.Kind)
		assert.Equal(t, i, s.Continuation)
		n := 0
		for _, el := range s.Elements {
			n += el.ItemCount()
			items = append(items, el.Items...)
		}
		counts = append(counts, n)
	}
	assert.Equal(t, []int{4, 4, 2}, counts)

	for i, item := range items {
		assert.Equal(t, fmt.Sprintf("item %d", i+1), item)
	}
}

func TestMapListFittingFreshSlideIsNotSplit(t *testing.T) {
	// Budget 4, one item already used: a 3-item list moves whole to the
	// next slide instead of splitting 3 into 3+0.
	tree := &types.DocumentTree{
		Sections: []types.Section{{
			Heading: "Mixed",
			Blocks: []types.ContentBlock{
				types.BulletList("a", "b"),
				types.BulletList("c", "d", "e"),
			},
		}},
	}

	slides := Map(tree, types.DensityLow, "", "")
	content := contentSlides(slides)
	require.Len(t, content, 2)
	assert.Equal(t, []string{"a", "b"}, content[0].Elements[0].Items)
	assert.Equal(t, []string{"c", "d", "e"}, content[1].Elements[0].Items)
	assert.Equal(t, 0, content[0].Continuation)
	assert.Equal(t, 1, content[1].Continuation)
}

func TestMapCodeBlockOwnSlide(t *testing.T) {
	tree := &types.DocumentTree{
		Sections: []types.Section{{
			Heading: "Demo",
			Blocks: []types.ContentBlock{
				types.Paragraph("Before the snippet."),
				types.CodeBlock("print(42)", "python"),
				types.Paragraph("After the snippet."),
			},
		}},
	}

	slides := Map(tree, types.DensityMedium, "", "")
	content := contentSlides(slides)
	require.Len(t, content, 3)

	assert.Equal(t, types.SlideContent, content[0].Kind)
	assert.Equal(t, types.SlideCode, content[1].Kind)
	assert.Equal(t, types.SlideContent, content[2].Kind)

	assert.Equal(t, []int{0, 1, 2}, []int{
		content[0].Continuation, content[1].Continuation, content[2].Continuation,
	})
	require.Len(t, content[1].Elements, 1)
	assert.Equal(t, "print(42)", content[1].Elements[0].Text)
	assert.Equal(t, "python", content[1].Elements[0].Language)
}

func TestMapSummaryKind(t *testing.T) {
	blocks := []types.ContentBlock{types.Paragraph("Wrap it up.")}

	t.Run("last section with summary heading", func(t *testing.T) {
		tree := &types.DocumentTree{Sections: []types.Section{
			{Heading: "Body", Blocks: blocks},
			{Heading: "Conclusion", Blocks: blocks},
		}}
		slides := Map(tree, types.DensityMedium, "", "")
		last := slides[len(slides)-1]
		assert.Equal(t, types.SlideSummary, last.Kind)
	})

	t.Run("summary heading not last stays content", func(t *testing.T) {
		tree := &types.DocumentTree{Sections: []types.Section{
			{Heading: "Summary", Blocks: blocks},
			{Heading: "Appendix", Blocks: blocks},
		}}
		slides := Map(tree, types.DensityMedium, "", "")
		for _, s := range slides {
			assert.NotEqual(t, types.SlideSummary, s.Kind)
		}
	})
}

func TestMapParagraphSplitAtWhitespace(t *testing.T) {
	word := "word"
	var words []string
	for i := 0; i < 100; i++ {
		words = append(words, word)
	}
	long := strings.Join(words, " ")

	tree := &types.DocumentTree{
		Sections: []types.Section{{Heading: "Long", Blocks: []types.ContentBlock{types.Paragraph(long)}}},
	}

	slides := Map(tree, types.DensityLow, "", "")
	var rebuilt []string
	for _, s := range contentSlides(slides) {
		for _, el := range s.Elements {
			assert.LessOrEqual(t, len(el.Text), types.DensityLow.MaxChars)
			assert.False(t, strings.HasPrefix(el.Text, " "))
			assert.False(t, strings.HasSuffix(el.Text, " "))
			rebuilt = append(rebuilt, strings.Fields(el.Text)...)
		}
	}
	assert.Equal(t, words, rebuilt)
}

func TestMapDensityBounds(t *testing.T) {
	tree := &types.DocumentTree{
		Sections: []types.Section{{
			Heading: "Everything",
			Blocks: []types.ContentBlock{
				types.Paragraph(strings.Repeat("alpha beta gamma delta ", 40)),
				types.BulletList("one", "two", "three", "four", "five", "six", "seven"),
				types.NumberedList("first", "second", "third"),
			},
		}},
	}

	for _, profile := range []types.DensityProfile{types.DensityLow, types.DensityMedium, types.DensityHigh} {
		t.Run(profile.Name, func(t *testing.T) {
			for _, s := range contentSlides(Map(tree, profile, "", "")) {
				if s.Kind == types.SlideCode {
					continue
				}
				bullets := 0
				for _, el := range s.Elements {
					bullets += el.ItemCount()
					if !el.IsList() {
						assert.LessOrEqual(t, len(el.Text), profile.MaxChars)
					}
				}
				assert.LessOrEqual(t, bullets, profile.MaxBullets)
			}
		})
	}
}

func TestMapDeterminism(t *testing.T) {
	tree := &types.DocumentTree{
		Title: "Same In, Same Out",
		Sections: []types.Section{{
			Heading: "Body",
			Blocks: []types.ContentBlock{
				types.Paragraph(strings.Repeat("stable output ", 30)),
				types.BulletList("a", "b", "c", "d", "e"),
			},
		}},
	}

	first := Map(tree, types.DensityLow, "P", "2026-01-01")
	second := Map(tree, types.DensityLow, "P", "2026-01-01")
	assert.True(t, reflect.DeepEqual(first, second))
}

// TestMapPartitionRoundTrip feeds randomized trees through the mapper
// and checks that the emitted elements reconstruct each section's block
// sequence token for token.
func TestMapPartitionRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	profiles := []types.DensityProfile{types.DensityLow, types.DensityMedium, types.DensityHigh}

	for trial := 0; trial < 50; trial++ {
		var blocks []types.ContentBlock
		for b := 0; b < 1+rng.Intn(6); b++ {
			switch rng.Intn(3) {
			case 0:
				n := 1 + rng.Intn(12)
				items := make([]string, n)
				for i := range items {
					items[i] = fmt.Sprintf("t%d-b%d-i%d", trial, b, i)
				}
				blocks = append(blocks, types.BulletList(items...))
			case 1:
				n := 1 + rng.Intn(80)
				words := make([]string, n)
				for i := range words {
					words[i] = fmt.Sprintf("w%d", rng.Intn(1000))
				}
				blocks = append(blocks, types.Paragraph(strings.Join(words, " ")))
			default:
				blocks = append(blocks, types.CodeBlock(fmt.Sprintf("code %d %d", trial, b), ""))
			}
		}

		sec := types.Section{Heading: "S", Blocks: blocks}
		tree := &types.DocumentTree{Sections: []types.Section{sec}}
		profile := profiles[rng.Intn(len(profiles))]

		slides := Map(tree, profile, "", "")

		var emitted []types.ContentBlock
		for _, s := range slides {
			emitted = append(emitted, s.Elements...)
		}
		want := tokenStream(sec.FlatBlocks())
		got := tokenStream(emitted)
		if !reflect.DeepEqual(want, got) {
			t.Fatalf("trial %d (%s): partition mismatch\nwant %v\ngot  %v", trial, profile.Name, want, got)
		}
	}
}

func TestMapSubheadingBlocksFlatten(t *testing.T) {
	tree := &types.DocumentTree{
		Sections: []types.Section{{
			Heading: "Parent",
			Blocks:  []types.ContentBlock{types.Paragraph("own block")},
			Subheadings: []types.Subheading{
				{Text: "Child", Blocks: []types.ContentBlock{types.Paragraph("child block")}},
			},
		}},
	}

	slides := Map(tree, types.DensityMedium, "", "")
	content := contentSlides(slides)
	require.Len(t, content, 1)
	require.Len(t, content[0].Elements, 2)
	assert.Equal(t, "own block", content[0].Elements[0].Text)
	assert.Equal(t, "child block", content[0].Elements[1].Text)
}
