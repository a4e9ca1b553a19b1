// Package answers normalizes raw quiz answers into a canonical form.
//
// Clients submit answers in three shapes: a bare string, a {label,value}
// object, or an arbitrary object. The package folds them into a tagged
// union and exposes the two extraction operations the engine relies on:
// the canonical {label,value} view and the forced A/B/C choice.
package answers

import (
	"fmt"
	"strings"
)

// Kind discriminates the Answer union.
type Kind int

// Answer variants.
const (
	KindText Kind = iota
	KindLabeled
	KindRaw
)

// Answer is the tagged union over the accepted raw answer shapes.
type Answer struct {
	Kind  Kind
	Text  string
	Label string
	Value string
	Raw   any
}

// Labeled is the canonical {label,value} form of an answer.
type Labeled struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Choice is a forced A/B/C selection.
type Choice string

// Valid choices.
const (
	ChoiceA Choice = "A"
	ChoiceB Choice = "B"
	ChoiceC Choice = "C"
)

// Decode folds one raw JSON-decoded value into an Answer.
func Decode(raw any) Answer {
	switch v := raw.(type) {
	case string:
		return Answer{Kind: KindText, Text: v}
	case map[string]any:
		label, lok := v["label"].(string)
		value, vok := v["value"].(string)
		if lok || vok {
			return Answer{Kind: KindLabeled, Label: label, Value: value}
		}
		return Answer{Kind: KindRaw, Raw: v}
	default:
		return Answer{Kind: KindRaw, Raw: raw}
	}
}

// Normalize converts a map of raw answers keyed by question id into the
// canonical {label,value} form. Non-object values become the stringified
// label with an empty value.
func Normalize(raw map[string]any) map[string]Labeled {
	out := make(map[string]Labeled, len(raw))
	for id, v := range raw {
		a := Decode(v)
		switch a.Kind {
		case KindLabeled:
			out[id] = Labeled{Label: a.Label, Value: a.Value}
		case KindText:
			out[id] = Labeled{Label: a.Text}
		default:
			out[id] = Labeled{Label: stringify(a.Raw)}
		}
	}
	return out
}

// ChoiceOf extracts exactly one of A/B/C from an answer. The checks run in
// order: an explicit value field equal to A/B/C, the string value uppercased,
// then the text content's first character. The second result is false when
// nothing matches; callers must treat that distinctly from a valid choice
// and never default-substitute.
func ChoiceOf(a Answer) (Choice, bool) {
	if a.Kind == KindLabeled {
		if c, ok := parseChoice(a.Value); ok {
			return c, ok
		}
		return prefixChoice(a.Label)
	}
	if a.Kind == KindText {
		if c, ok := parseChoice(a.Text); ok {
			return c, ok
		}
		return prefixChoice(a.Text)
	}
	return "", false
}

// FreeText extracts the text content used for keyword matching and
// summarization: label preferred, else value, else the stringified raw.
func FreeText(a Answer) string {
	switch a.Kind {
	case KindLabeled:
		if a.Label != "" {
			return a.Label
		}
		return a.Value
	case KindText:
		return a.Text
	default:
		return stringify(a.Raw)
	}
}

func parseChoice(s string) (Choice, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return ChoiceA, true
	case "B":
		return ChoiceB, true
	case "C":
		return ChoiceC, true
	}
	return "", false
}

// prefixChoice matches texts of the form "A) ..." / "B. ..." / "C - ...".
func prefixChoice(s string) (Choice, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return parseChoice(s)
	}
	head := strings.ToUpper(s[:1])
	if head != "A" && head != "B" && head != "C" {
		return "", false
	}
	switch s[1] {
	case ')', '.', ':', '-', ' ':
		return Choice(head), true
	}
	return "", false
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
