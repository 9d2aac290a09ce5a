// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v3"
)

// IssueType identifies which validation pass produced an issue.
type IssueType string

const (
	IssueSpelling       IssueType = "spelling"
	IssueGrammar        IssueType = "grammar"
	IssueTerminology    IssueType = "terminology_consistency"
	IssueCapitalization IssueType = "capitalization_consistency"
)

// Severity grades a validation issue.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Location pinpoints an issue inside a presentation. Element is -1 for
// issues on the slide title itself.
type Location struct {
	Slide   int `json:"slide_index" yaml:"slide_index"`
	Element int `json:"element_index" yaml:"element_index"`
}

// ValidationIssue is one detected content-quality problem. Issues are
// generated fresh per validation run and never persisted.
type ValidationIssue struct {
	Type        IssueType `json:"type" yaml:"type"`
	Severity    Severity  `json:"severity" yaml:"severity"`
	Location    Location  `json:"location" yaml:"location"`
	Message     string    `json:"message" yaml:"message"`
	Suggestions []string  `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// ElementType tags a presentation element in the minimal shape the
// validator depends on.
type ElementType string

const (
	ElementText       ElementType = "text"
	ElementBulletList ElementType = "bullet_list"
)

// SlideElement is one text-bearing element of a realized slide. On the
// wire its content field is either a string (text) or a list of strings
// (bullet_list).
type SlideElement struct {
	Type  ElementType
	Text  string
	Items []string
}

// elementWire is the serialized form of SlideElement.
type elementWire struct {
	Type    ElementType     `json:"type" yaml:"type"`
	Content json.RawMessage `json:"content" yaml:"-"`
}

// MarshalJSON writes the element with content as a string or item list.
func (e SlideElement) MarshalJSON() ([]byte, error) {
	var content any
	if e.Type == ElementBulletList {
		content = e.Items
	} else {
		content = e.Text
	}
	return json.Marshal(struct {
		Type    ElementType `json:"type"`
		Content any         `json:"content"`
	}{e.Type, content})
}

// UnmarshalJSON accepts content as either a string or a list of strings.
func (e *SlideElement) UnmarshalJSON(data []byte) error {
	var w elementWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	e.Type = w.Type
	e.Text = ""
	e.Items = nil
	if len(w.Content) == 0 {
		return nil
	}
	var s string
	if err := json.Unmarshal(w.Content, &s); err == nil {
		e.Text = s
		return nil
	}
	var items []string
	if err := json.Unmarshal(w.Content, &items); err == nil {
		e.Items = items
		return nil
	}
	return fmt.Errorf("element content must be a string or a list of strings")
}

// MarshalYAML mirrors the JSON wire shape.
func (e SlideElement) MarshalYAML() (any, error) {
	var content any
	if e.Type == ElementBulletList {
		content = e.Items
	} else {
		content = e.Text
	}
	return map[string]any{"type": string(e.Type), "content": content}, nil
}

// UnmarshalYAML accepts content as either a scalar or a sequence.
func (e *SlideElement) UnmarshalYAML(value *yaml.Node) error {
	var w struct {
		Type    ElementType `yaml:"type"`
		Content yaml.Node   `yaml:"content"`
	}
	if err := value.Decode(&w); err != nil {
		return err
	}
	e.Type = w.Type
	e.Text = ""
	e.Items = nil
	switch w.Content.Kind {
	case 0:
		return nil
	case yaml.ScalarNode:
		return w.Content.Decode(&e.Text)
	case yaml.SequenceNode:
		return w.Content.Decode(&e.Items)
	default:
		return fmt.Errorf("element content must be a string or a list of strings")
	}
}

// Texts returns the element's text payloads in order: the single text
// for text elements, or one entry per item for bullet lists.
func (e SlideElement) Texts() []string {
	if e.Type == ElementBulletList {
		return e.Items
	}
	return []string{e.Text}
}

// PresentationSlide is one realized slide as supplied by an external
// builder: a title plus ordered text-bearing elements.
type PresentationSlide struct {
	Title    string         `json:"title" yaml:"title"`
	Elements []SlideElement `json:"elements,omitempty" yaml:"elements,omitempty"`
}

// Presentation is the minimal slide/element structure the validator
// accepts. It does not require the full SlideSpec type.
type Presentation struct {
	Slides []PresentationSlide `json:"slides" yaml:"slides"`
}
