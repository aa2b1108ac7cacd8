package domain

import "strings"

// Classification is the result of matching a stored value against a catalog.
type Classification struct {
	Kind  ClassKind
	Value string
}

// Classify decides whether value is one of the standard catalog entries or
// free text. Empty and placeholder values classify as Unset. Matching is
// exact; surrounding whitespace is not significant.
func Classify(value string, known []string) Classification {
	v := strings.TrimSpace(value)
	if v == "" || IsSentinel(v) {
		return Classification{Kind: Unset}
	}
	for _, k := range known {
		if k == v {
			return Classification{Kind: Known, Value: v}
		}
	}
	return Classification{Kind: Custom, Value: v}
}

// Choice is a single-choice answer with an "Other" escape hatch.
//
// Selected is empty when nothing was chosen. When Selected equals the
// group's Other marker, Other carries the user's free text.
type Choice struct {
	Selected string
	Other    string
}

// IsSet reports whether a choice has been made.
func (c Choice) IsSet() bool {
	return strings.TrimSpace(c.Selected) != "" && !IsSentinel(c.Selected)
}

// Resolve returns the value a document stores for this choice: the free
// text when the Other marker is selected, the selection otherwise, and ""
// when unset.
func (c Choice) Resolve(otherMarker string) string {
	if !c.IsSet() {
		return ""
	}
	if c.Selected == otherMarker {
		return strings.TrimSpace(c.Other)
	}
	return c.Selected
}

// ChoiceFromValue reverses Resolve using the same classification.
func ChoiceFromValue(value string, known []string, otherMarker string) Choice {
	cl := Classify(value, known)
	switch cl.Kind {
	case Known:
		return Choice{Selected: cl.Value}
	case Custom:
		return Choice{Selected: otherMarker, Other: cl.Value}
	default:
		return Choice{}
	}
}
