// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/pdiddy/deckgen/pkg/types"
)

// ReportFormat selects one of the three report renderings.
type ReportFormat string

const (
	ReportText ReportFormat = "text"
	ReportJSON ReportFormat = "json"
	ReportHTML ReportFormat = "html"
)

// ParseReportFormat resolves a format name, defaulting empty to text.
func ParseReportFormat(s string) (ReportFormat, error) {
	switch ReportFormat(s) {
	case ReportText, "":
		return ReportText, nil
	case ReportJSON:
		return ReportJSON, nil
	case ReportHTML:
		return ReportHTML, nil
	default:
		return "", fmt.Errorf("unknown report format %q (want text, json, or html)", s)
	}
}

// reportGroups fixes the presentation order of issue types in text and
// HTML reports.
var reportGroups = []struct {
	issueType types.IssueType
	label     string
}{
	{types.IssueSpelling, "Spelling"},
	{types.IssueGrammar, "Grammar"},
	{types.IssueTerminology, "Terminology Consistency"},
	{types.IssueCapitalization, "Capitalization Consistency"},
}

// Render produces a report in the requested format. It is a pure
// function of the issue list: the list is never mutated or reordered,
// and rendering the same list twice yields byte-identical output.
func Render(issues []types.ValidationIssue, format ReportFormat) (string, error) {
	switch format {
	case ReportJSON:
		return renderJSON(issues)
	case ReportHTML:
		return renderHTML(issues), nil
	case ReportText, "":
		return renderText(issues), nil
	default:
		return "", fmt.Errorf("unknown report format %q", format)
	}
}

func renderText(issues []types.ValidationIssue) string {
	var b strings.Builder
	b.WriteString("Content Validation Report\n")
	b.WriteString("=========================\n")

	if len(issues) == 0 {
		b.WriteString("No issues found.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Found %d issue(s).\n", len(issues))
	for _, group := range reportGroups {
		grouped := filterIssues(issues, group.issueType)
		if len(grouped) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s (%d):\n", group.label, len(grouped))
		for _, issue := range grouped {
			fmt.Fprintf(&b, "- [%s] %s: %s", issue.Severity, locationLabel(issue.Location), issue.Message)
			if len(issue.Suggestions) > 0 {
				fmt.Fprintf(&b, " (suggestions: %s)", strings.Join(issue.Suggestions, ", "))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderJSON(issues []types.ValidationIssue) (string, error) {
	list := issues
	if list == nil {
		list = []types.ValidationIssue{}
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling report: %w", err)
	}
	return string(data) + "\n", nil
}

func renderHTML(issues []types.ValidationIssue) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>Content Validation Report</title>\n<style>\n")
	b.WriteString("body { font-family: sans-serif; margin: 2em; }\n")
	b.WriteString("h2 { border-bottom: 1px solid #ccc; padding-bottom: 0.2em; }\n")
	b.WriteString(".severity { font-weight: bold; text-transform: uppercase; }\n")
	b.WriteString(".info .severity { color: #31708f; }\n")
	b.WriteString(".warning .severity { color: #8a6d3b; }\n")
	b.WriteString(".error .severity { color: #a94442; }\n")
	b.WriteString(".suggestions { color: #555; font-style: italic; }\n")
	b.WriteString("</style>\n</head>\n<body>\n")
	b.WriteString("<h1>Content Validation Report</h1>\n")

	if len(issues) == 0 {
		b.WriteString("<p>No issues found.</p>\n</body>\n</html>\n")
		return b.String()
	}

	fmt.Fprintf(&b, "<p>Found %d issue(s).</p>\n", len(issues))
	for _, group := range reportGroups {
		grouped := filterIssues(issues, group.issueType)
		if len(grouped) == 0 {
			continue
		}
		fmt.Fprintf(&b, "<h2>%s (%d)</h2>\n<ul>\n", html.EscapeString(group.label), len(grouped))
		for _, issue := range grouped {
			fmt.Fprintf(&b, "<li class=%q><span class=\"severity\">%s</span> %s: %s",
				issue.Severity, html.EscapeString(string(issue.Severity)),
				html.EscapeString(locationLabel(issue.Location)), html.EscapeString(issue.Message))
			if len(issue.Suggestions) > 0 {
				fmt.Fprintf(&b, " <span class=\"suggestions\">suggestions: %s</span>",
					html.EscapeString(strings.Join(issue.Suggestions, ", ")))
			}
			b.WriteString("</li>\n")
		}
		b.WriteString("</ul>\n")
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// filterIssues selects issues of one type, preserving relative order.
func filterIssues(issues []types.ValidationIssue, t types.IssueType) []types.ValidationIssue {
	var out []types.ValidationIssue
	for _, issue := range issues {
		if issue.Type == t {
			out = append(out, issue)
		}
	}
	return out
}

func locationLabel(loc types.Location) string {
	if loc.Element < 0 {
		return fmt.Sprintf("slide %d, title", loc.Slide)
	}
	return fmt.Sprintf("slide %d, element %d", loc.Slide, loc.Element)
}
