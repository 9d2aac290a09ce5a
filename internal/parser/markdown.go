// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parser

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/pdiddy/deckgen/pkg/types"
)

// parseMarkdown builds a DocumentTree from the goldmark CommonMark AST.
// A leading level-1 heading becomes the document title, level-2 headings
// open sections, and level-3+ headings become subheadings. Inline
// emphasis markers are preserved as literal markup: text is recovered
// from raw source segments, not from the resolved inline tree.
func parseMarkdown(raw string) *types.DocumentTree {
	src := []byte(raw)
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	tree := &types.DocumentTree{}
	var cur *types.Section
	var curSub *types.Subheading

	flush := func() {
		if cur != nil {
			tree.Sections = append(tree.Sections, *cur)
			cur = nil
			curSub = nil
		}
	}

	// Blocks before any section heading collect into an implicit
	// untitled section.
	appendBlock := func(b types.ContentBlock) {
		if cur == nil {
			cur = &types.Section{}
		}
		if curSub != nil {
			curSub.Blocks = append(curSub.Blocks, b)
		} else {
			cur.Blocks = append(cur.Blocks, b)
		}
	}

	first := true
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			heading := rawText(node, src)
			switch {
			case node.Level == 1 && first && tree.Title == "":
				tree.Title = heading
			case node.Level <= 2:
				flush()
				cur = &types.Section{Heading: heading}
			default:
				if cur == nil {
					cur = &types.Section{}
				}
				cur.Subheadings = append(cur.Subheadings, types.Subheading{Text: heading})
				curSub = &cur.Subheadings[len(cur.Subheadings)-1]
			}

		case *ast.FencedCodeBlock:
			var lang string
			if l := node.Language(src); l != nil {
				lang = string(l)
			}
			appendBlock(types.CodeBlock(rawCode(node, src), lang))

		case *ast.CodeBlock:
			appendBlock(types.CodeBlock(rawCode(node, src), ""))

		case *ast.List:
			items := listItems(node, src)
			if len(items) == 0 {
				break
			}
			if node.IsOrdered() {
				appendBlock(types.NumberedList(items...))
			} else {
				appendBlock(types.BulletList(items...))
			}

		case *ast.ThematicBreak:
			// No text content.

		default:
			if t := rawText(n, src); t != "" {
				appendBlock(types.Paragraph(t))
			}
		}
		first = false
	}
	flush()

	return tree
}

// rawText joins a block node's raw source lines with single spaces,
// recursing into containers that carry no lines of their own.
func rawText(n ast.Node, src []byte) string {
	var parts []string
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		if s := strings.TrimSpace(string(line.Value(src))); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if c.Type() != ast.TypeBlock {
				continue
			}
			if s := rawText(c, src); s != "" {
				parts = append(parts, s)
			}
		}
	}
	return strings.Join(parts, " ")
}

// rawCode returns a code block's body verbatim, preserving internal
// whitespace, without the trailing fence newline.
func rawCode(n ast.Node, src []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		b.Write(line.Value(src))
	}
	return strings.TrimRight(b.String(), "\n")
}

// listItems flattens a list node into item strings. Nested lists
// contribute their items in document order.
func listItems(list *ast.List, src []byte) []string {
	var items []string
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		var parts []string
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if nested, ok := c.(*ast.List); ok {
				items = appendOwn(items, parts)
				parts = nil
				items = append(items, listItems(nested, src)...)
				continue
			}
			if s := rawText(c, src); s != "" {
				parts = append(parts, s)
			}
		}
		items = appendOwn(items, parts)
	}
	return items
}

func appendOwn(items, parts []string) []string {
	if len(parts) == 0 {
		return items
	}
	return append(items, strings.Join(parts, " "))
}
