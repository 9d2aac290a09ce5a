// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"fmt"
	"strings"

	"github.com/pdiddy/deckgen/pkg/types"
)

// Elementary subject/verb disagreements detectable without a parser.
var disagreements = map[string]map[string]bool{
	"they": {"is": true, "was": true, "has": true},
	"we":   {"is": true, "was": true, "has": true},
	"you":  {"is": true, "was": true, "has": true},
	"he":   {"are": true, "were": true, "have": true},
	"she":  {"are": true, "were": true, "have": true},
	"it":   {"are": true, "were": true, "have": true},
}

// checkGrammar runs small pattern-based checks over each text payload:
// doubled words, article/vowel mismatches, and basic subject/verb
// disagreements.
func checkGrammar(refs []textRef) []types.ValidationIssue {
	var issues []types.ValidationIssue

	for _, ref := range refs {
		words := wordPattern.FindAllString(ref.text, -1)
		for i, word := range words {
			lower := strings.ToLower(word)

			if i > 0 && len(word) > 1 && lower == strings.ToLower(words[i-1]) {
				issues = append(issues, types.ValidationIssue{
					Type:        types.IssueGrammar,
					Severity:    types.SeverityWarning,
					Location:    ref.loc,
					Message:     fmt.Sprintf("repeated word: %q", word),
					Suggestions: []string{word},
				})
			}

			if i+1 < len(words) {
				next := strings.ToLower(words[i+1])
				switch {
				case lower == "a" && startsWithVowel(next):
					issues = append(issues, types.ValidationIssue{
						Type:        types.IssueGrammar,
						Severity:    types.SeverityWarning,
						Location:    ref.loc,
						Message:     fmt.Sprintf("use \"an\" before %q", words[i+1]),
						Suggestions: []string{"an " + words[i+1]},
					})
				case lower == "an" && !startsWithVowel(next) && !strings.HasPrefix(next, "h"):
					issues = append(issues, types.ValidationIssue{
						Type:        types.IssueGrammar,
						Severity:    types.SeverityWarning,
						Location:    ref.loc,
						Message:     fmt.Sprintf("use \"a\" before %q", words[i+1]),
						Suggestions: []string{"a " + words[i+1]},
					})
				case disagreements[lower][next]:
					issues = append(issues, types.ValidationIssue{
						Type:     types.IssueGrammar,
						Severity: types.SeverityWarning,
						Location: ref.loc,
						Message:  fmt.Sprintf("subject/verb disagreement: %q %q", words[i], words[i+1]),
					})
				}
			}
		}
	}
	return issues
}

func startsWithVowel(s string) bool {
	if s == "" {
		return false
	}
	switch s[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
