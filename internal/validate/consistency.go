// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/pdiddy/deckgen/pkg/types"
)

// termPattern extracts candidate terminology tokens (letters, hyphens).
var termPattern = regexp.MustCompile(`[A-Za-z][A-Za-z\-]*`)

// occurrence is one sighting of a term surface form.
type occurrence struct {
	loc   types.Location
	order int
}

// checkTerminology builds a normalized-term to surface-variant map over
// the whole structure. Candidate terms are single tokens and adjacent
// token pairs, so "web site" and "website" normalize to the same key.
// Any term with more than one surface variant is flagged at every
// occurrence of a non-dominant variant; the dominant variant is the
// most frequent, with ties broken by earliest appearance.
func checkTerminology(refs []textRef) []types.ValidationIssue {
	variants := make(map[string]map[string][]occurrence)
	order := 0

	add := func(key, surface string, loc types.Location) {
		if variants[key] == nil {
			variants[key] = make(map[string][]occurrence)
		}
		variants[key][surface] = append(variants[key][surface], occurrence{loc, order})
		order++
	}

	for _, ref := range refs {
		tokens := termPattern.FindAllString(ref.text, -1)
		for i, tok := range tokens {
			add(normalizeTerm(tok), tok, ref.loc)
			if i+1 < len(tokens) {
				pair := tok + " " + tokens[i+1]
				add(normalizeTerm(pair), pair, ref.loc)
			}
		}
	}

	keys := make([]string, 0, len(variants))
	for k := range variants {
		if len(variants[k]) > 1 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var issues []types.ValidationIssue
	flagged := make(map[string]bool)

	for _, key := range keys {
		surfaces := variants[key]
		dominant := dominantSurface(surfaces)
		for surface, occs := range surfaces {
			if surface == dominant {
				continue
			}
			for _, occ := range occs {
				dedupe := fmt.Sprintf("%s@%d/%d", key, occ.loc.Slide, occ.loc.Element)
				if flagged[dedupe] {
					continue
				}
				flagged[dedupe] = true
				issues = append(issues, types.ValidationIssue{
					Type:        types.IssueTerminology,
					Severity:    types.SeverityInfo,
					Location:    occ.loc,
					Message:     fmt.Sprintf("inconsistent term: %q vs dominant form %q", surface, dominant),
					Suggestions: []string{dominant},
				})
			}
		}
	}
	return issues
}

// normalizeTerm case-folds a surface form and strips separators, so
// "Web-Site", "web site", and "website" share one key.
func normalizeTerm(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, " ", "")
}

// dominantSurface picks the most frequent variant, ties to the earliest.
func dominantSurface(surfaces map[string][]occurrence) string {
	var best string
	bestCount, bestFirst := -1, -1
	for surface, occs := range surfaces {
		count, first := len(occs), occs[0].order
		if count > bestCount || (count == bestCount && first < bestFirst) {
			best, bestCount, bestFirst = surface, count, first
		}
	}
	return best
}

// Capitalization styles for slide titles.
const (
	styleTitleCase    = "title case"
	styleAllCaps      = "ALL CAPS"
	styleSentenceCase = "sentence case"
	styleMixed        = "mixed"
)

// checkCapitalization compares the capitalization style of slide titles
// pairwise. When one style holds a strict plurality, titles in any
// other style are flagged with a converted suggestion.
func checkCapitalization(p types.Presentation) []types.ValidationIssue {
	type titleRef struct {
		slide int
		text  string
		style string
	}

	var titles []titleRef
	counts := make(map[string]int)
	for si, slide := range p.Slides {
		if strings.TrimSpace(slide.Title) == "" {
			continue
		}
		style := titleStyle(slide.Title)
		titles = append(titles, titleRef{si, slide.Title, style})
		if style != styleMixed {
			counts[style]++
		}
	}

	dominant := dominantStyle(counts)
	if dominant == "" {
		return nil
	}

	var issues []types.ValidationIssue
	for _, t := range titles {
		if t.style == dominant {
			continue
		}
		issues = append(issues, types.ValidationIssue{
			Type:        types.IssueCapitalization,
			Severity:    types.SeverityInfo,
			Location:    types.Location{Slide: t.slide, Element: -1},
			Message:     fmt.Sprintf("inconsistent capitalization: %q is %s but most titles use %s", t.text, t.style, dominant),
			Suggestions: []string{convertStyle(t.text, dominant)},
		})
	}
	return issues
}

// dominantStyle returns the style with a strict plurality, or "".
func dominantStyle(counts map[string]int) string {
	var best string
	bestCount := 0
	tied := false
	for style, n := range counts {
		switch {
		case n > bestCount:
			best, bestCount, tied = style, n, false
		case n == bestCount:
			tied = true
		}
	}
	if tied || bestCount == 0 {
		return ""
	}
	return best
}

// titleStyle classifies a heading's capitalization.
func titleStyle(s string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return styleMixed
	}

	if !strings.ContainsFunc(s, unicode.IsLower) {
		return styleAllCaps
	}

	allCapitalized := true
	restLowercase := true
	for i, w := range words {
		first := firstLetter(w)
		if first == 0 {
			continue
		}
		if !unicode.IsUpper(first) {
			allCapitalized = false
			if i == 0 {
				return styleMixed
			}
		} else if i > 0 {
			restLowercase = false
		}
	}
	switch {
	case allCapitalized:
		// A single capitalized word satisfies both styles; calling it
		// title case keeps one-word headings from being flagged alone.
		return styleTitleCase
	case restLowercase:
		return styleSentenceCase
	default:
		return styleMixed
	}
}

func firstLetter(w string) rune {
	for _, r := range w {
		if unicode.IsLetter(r) {
			return r
		}
	}
	return 0
}

// convertStyle rewrites a title into the target capitalization style.
func convertStyle(s, style string) string {
	switch style {
	case styleAllCaps:
		return strings.ToUpper(s)
	case styleSentenceCase:
		words := strings.Fields(strings.ToLower(s))
		if len(words) == 0 {
			return s
		}
		words[0] = capitalize(words[0])
		return strings.Join(words, " ")
	default:
		words := strings.Fields(strings.ToLower(s))
		for i, w := range words {
			words[i] = capitalize(w)
		}
		return strings.Join(words, " ")
	}
}

func capitalize(w string) string {
	r := []rune(w)
	if len(r) == 0 {
		return w
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
