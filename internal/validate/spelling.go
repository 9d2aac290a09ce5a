// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/deckgen/pkg/types"
)

// wordPattern tokenizes prose into words, keeping inner apostrophes.
var wordPattern = regexp.MustCompile(`[a-zA-Z]+(?:'[a-zA-Z]+)?`)

const (
	// minSpellLen skips very short tokens that are rarely misspellings.
	minSpellLen = 3

	suggestDistance = 2
	suggestLimit    = 5
)

// checkSpelling flags tokens found in neither the built-in nor the
// custom dictionary. All-uppercase tokens are treated as acronyms and
// skipped.
func (v *Validator) checkSpelling(refs []textRef) []types.ValidationIssue {
	var issues []types.ValidationIssue
	seen := make(map[string]bool)

	for _, ref := range refs {
		for _, word := range wordPattern.FindAllString(ref.text, -1) {
			if len(word) < minSpellLen {
				continue
			}
			if word == strings.ToUpper(word) {
				continue
			}
			if v.dict.Contains(word) {
				continue
			}

			key := fmt.Sprintf("%d/%d/%s", ref.loc.Slide, ref.loc.Element, strings.ToLower(word))
			if seen[key] {
				continue
			}
			seen[key] = true

			issues = append(issues, types.ValidationIssue{
				Type:        types.IssueSpelling,
				Severity:    types.SeverityWarning,
				Location:    ref.loc,
				Message:     fmt.Sprintf("possible misspelling: %q", word),
				Suggestions: v.dict.Suggest(word, suggestDistance, suggestLimit),
			})
		}
	}
	return issues
}
