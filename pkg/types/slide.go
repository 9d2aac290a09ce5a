// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SlideKind classifies a planned slide.
type SlideKind string

const (
	SlideTitle             SlideKind = "title"
	SlideContent           SlideKind = "content"
	SlideSectionTransition SlideKind = "section_transition"
	SlideSummary           SlideKind = "summary"
	SlideCode              SlideKind = "code"
)

// SlideSpec is one planned slide, ready for an external renderer. The
// renderer owns layout and style decisions and must preserve element
// order.
type SlideSpec struct {
	Kind    SlideKind `json:"kind" yaml:"kind"`
	Heading string    `json:"heading" yaml:"heading"`

	// Elements is an ordered slice of a section's blocks obeying the
	// active density profile's limits.
	Elements []ContentBlock `json:"elements,omitempty" yaml:"elements,omitempty"`

	// Continuation is 0 for a section's first content slide and
	// increments for each overflow slide derived from the same section.
	Continuation int `json:"continuation" yaml:"continuation"`

	// Presenter and Date are auxiliary title-slide fields; they are not
	// part of the element sequence.
	Presenter string `json:"presenter,omitempty" yaml:"presenter,omitempty"`
	Date      string `json:"date,omitempty" yaml:"date,omitempty"`
}

// Deck is a complete generated slide deck as written to deck-spec files
// and ingested by the library.
type Deck struct {
	Title     string      `json:"title,omitempty" yaml:"title,omitempty"`
	Presenter string      `json:"presenter,omitempty" yaml:"presenter,omitempty"`
	Date      string      `json:"date,omitempty" yaml:"date,omitempty"`
	Density   string      `json:"density" yaml:"density"`
	Slides    []SlideSpec `json:"slides" yaml:"slides"`
}
