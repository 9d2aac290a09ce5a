// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for the deckgen pipeline:
// parsed document trees, slide specifications, validation issues, and
// stage configuration.
package types

// BlockKind tags a ContentBlock variant.
type BlockKind string

const (
	BlockParagraph    BlockKind = "paragraph"
	BlockBulletList   BlockKind = "bullet_list"
	BlockNumberedList BlockKind = "numbered_list"
	BlockCode         BlockKind = "code"
)

// ContentBlock is one typed unit of slide content. Exactly one of Text
// (paragraph, code) or Items (lists) is populated; Language is set only
// for code blocks that declared a fence language tag.
type ContentBlock struct {
	Kind     BlockKind `json:"kind" yaml:"kind"`
	Text     string    `json:"text,omitempty" yaml:"text,omitempty"`
	Items    []string  `json:"items,omitempty" yaml:"items,omitempty"`
	Language string    `json:"language,omitempty" yaml:"language,omitempty"`
}

// Paragraph builds a paragraph block.
func Paragraph(text string) ContentBlock {
	return ContentBlock{Kind: BlockParagraph, Text: text}
}

// BulletList builds a bullet list block.
func BulletList(items ...string) ContentBlock {
	return ContentBlock{Kind: BlockBulletList, Items: items}
}

// NumberedList builds a numbered list block.
func NumberedList(items ...string) ContentBlock {
	return ContentBlock{Kind: BlockNumberedList, Items: items}
}

// CodeBlock builds a code block with an optional language tag.
func CodeBlock(text, language string) ContentBlock {
	return ContentBlock{Kind: BlockCode, Text: text, Language: language}
}

// IsList reports whether the block is a bullet or numbered list.
func (b ContentBlock) IsList() bool {
	return b.Kind == BlockBulletList || b.Kind == BlockNumberedList
}

// ItemCount returns the number of list items, or zero for text blocks.
func (b ContentBlock) ItemCount() int {
	if !b.IsList() {
		return 0
	}
	return len(b.Items)
}

// Subheading is a sub-level heading inside a section, carrying its own
// run of content blocks.
type Subheading struct {
	Text   string         `json:"text" yaml:"text"`
	Blocks []ContentBlock `json:"blocks,omitempty" yaml:"blocks,omitempty"`
}

// Section is one top-level division of a parsed document. Block order is
// preserved verbatim from input order; blocks are never reordered or
// merged across sections.
type Section struct {
	Heading     string         `json:"heading" yaml:"heading"`
	Subheadings []Subheading   `json:"subheadings,omitempty" yaml:"subheadings,omitempty"`
	Blocks      []ContentBlock `json:"blocks,omitempty" yaml:"blocks,omitempty"`
}

// FlatBlocks returns the section's own blocks followed by each
// subheading's blocks, in document order. The density mapper partitions
// exactly this sequence.
func (s Section) FlatBlocks() []ContentBlock {
	out := make([]ContentBlock, 0, len(s.Blocks))
	out = append(out, s.Blocks...)
	for _, sub := range s.Subheadings {
		out = append(out, sub.Blocks...)
	}
	return out
}

// IsEmpty reports whether the section carries no content blocks at any level.
func (s Section) IsEmpty() bool {
	return len(s.FlatBlocks()) == 0
}

// DocumentTree is the structured representation of parsed input. A tree
// with zero sections is valid and yields at most a title slide.
type DocumentTree struct {
	Title    string    `json:"title,omitempty" yaml:"title,omitempty"`
	Sections []Section `json:"sections,omitempty" yaml:"sections,omitempty"`
}

// IsEmpty reports whether the tree has neither a title nor any sections.
func (t DocumentTree) IsEmpty() bool {
	return t.Title == "" && len(t.Sections) == 0
}
