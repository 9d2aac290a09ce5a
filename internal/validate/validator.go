// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate checks realized slide content for spelling, grammar,
// terminology, and capitalization problems, and renders the findings as
// text, JSON, or HTML reports. Validation is a pure function of its
// input: issues are generated fresh per run and the only state, the
// loaded dictionary, is read-only after construction.
package validate

import (
	"sort"

	"github.com/pdiddy/deckgen/pkg/types"
)

// Options configures a Validator.
type Options struct {
	// DictionaryPath points at an optional custom dictionary file.
	DictionaryPath string
}

// Validator holds the immutable dictionary snapshot for a validation
// run. Concurrent validations may share one Validator.
type Validator struct {
	dict *Dictionary
}

// New builds a Validator, loading the built-in dictionary and, when
// configured, the custom dictionary file. The file is read once here
// and closed before New returns.
func New(opts Options) (*Validator, error) {
	dict := newBuiltinDictionary()
	if opts.DictionaryPath != "" {
		if err := dict.LoadCustom(opts.DictionaryPath); err != nil {
			return nil, err
		}
	}
	return &Validator{dict: dict}, nil
}

// textRef is one text payload with its presentation location. Slide
// titles carry element index -1.
type textRef struct {
	loc  types.Location
	text string
}

// collectTexts flattens a presentation into ordered text payloads:
// each slide's title first, then its elements (bullet items become one
// payload per item, sharing the element index).
func collectTexts(p types.Presentation) []textRef {
	var refs []textRef
	for si, slide := range p.Slides {
		if slide.Title != "" {
			refs = append(refs, textRef{types.Location{Slide: si, Element: -1}, slide.Title})
		}
		for ei, el := range slide.Elements {
			for _, t := range el.Texts() {
				if t != "" {
					refs = append(refs, textRef{types.Location{Slide: si, Element: ei}, t})
				}
			}
		}
	}
	return refs
}

// Validate runs all four passes over the presentation and returns the
// issues ordered by (slide, element, issue type). A clean presentation
// validates to an empty list, never an error.
func (v *Validator) Validate(p types.Presentation) []types.ValidationIssue {
	refs := collectTexts(p)

	var issues []types.ValidationIssue
	issues = append(issues, v.checkSpelling(refs)...)
	issues = append(issues, checkGrammar(refs)...)
	issues = append(issues, checkTerminology(refs)...)
	issues = append(issues, checkCapitalization(p)...)

	sortIssues(issues)
	return issues
}

// typeRank fixes the issue-type ordering within one element.
var typeRank = map[types.IssueType]int{
	types.IssueSpelling:       0,
	types.IssueGrammar:        1,
	types.IssueTerminology:    2,
	types.IssueCapitalization: 3,
}

func sortIssues(issues []types.ValidationIssue) {
	sort.SliceStable(issues, func(i, j int) bool {
		a, b := issues[i], issues[j]
		if a.Location.Slide != b.Location.Slide {
			return a.Location.Slide < b.Location.Slide
		}
		if a.Location.Element != b.Location.Element {
			return a.Location.Element < b.Location.Element
		}
		return typeRank[a.Type] < typeRank[b.Type]
	})
}

// FromSlideSpecs adapts mapper output to the minimal presentation shape
// the validator accepts. Code blocks are not prose and are excluded.
func FromSlideSpecs(slides []types.SlideSpec) types.Presentation {
	var p types.Presentation
	for _, s := range slides {
		ps := types.PresentationSlide{Title: s.Heading}
		for _, el := range s.Elements {
			switch {
			case el.IsList():
				ps.Elements = append(ps.Elements, types.SlideElement{
					Type:  types.ElementBulletList,
					Items: el.Items,
				})
			case el.Kind == types.BlockCode:
				// skip
			default:
				ps.Elements = append(ps.Elements, types.SlideElement{
					Type: types.ElementText,
					Text: el.Text,
				})
			}
		}
		p.Slides = append(p.Slides, ps)
	}
	return p
}
