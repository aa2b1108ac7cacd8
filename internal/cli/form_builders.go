package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// dateInput returns a huh.Input for an optional date field with YYYY-MM-DD validation.
func dateInput(title, placeholder string, value *string) *huh.Input {
	if placeholder == "" {
		placeholder = "2025-06-30"
	}
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateOptionalDate)
}

// countInput returns a huh.Input for a non-negative head count.
func countInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("0").
		Value(value).
		Validate(validateNonNegativeInt)
}

func requiredInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Value(value).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("%s is required", strings.ToLower(title))
			}
			return nil
		})
}

// otherInput is the free-text companion of an "Other" choice. It is only
// read when the choice is the Other marker.
func otherInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Description("Only used when Other is selected").
		Value(value)
}

// choiceSelect offers placeholder (stored as "") followed by options. The
// current value is kept selectable even when the catalog no longer lists it.
func choiceSelect(title, placeholder string, options []string, value *string) *huh.Select[string] {
	opts := []huh.Option[string]{huh.NewOption(placeholder, "")}
	for _, o := range withCurrent(options, *value) {
		if o == placeholder {
			continue
		}
		opts = append(opts, huh.NewOption(o, o))
	}
	return huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(value)
}

// valueSelect offers options only; there is no empty choice.
func valueSelect(title string, options []string, value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(withCurrent(options, *value)...)...).
		Value(value)
}

func stringMultiSelect(title string, options []string, value *[]string) *huh.MultiSelect[string] {
	return huh.NewMultiSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Value(value)
}
