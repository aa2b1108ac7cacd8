package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/nafwizard/internal/wizard"
)

// FormatValidation renders schema errors and lenient-parse issues. A
// document with neither gets a single OK line.
func FormatValidation(errs []error, issues []string) string {
	if len(errs) == 0 && len(issues) == 0 {
		return StyleGreen.Render("✔ document is valid") + "\n"
	}

	var b strings.Builder
	if len(errs) > 0 {
		b.WriteString(StyleRed.Render(fmt.Sprintf("✖ %s", Plural(len(errs), "error", "errors"))) + "\n")
		for _, err := range errs {
			b.WriteString("  " + err.Error() + "\n")
		}
	}
	if len(issues) > 0 {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("⚠ %s", Plural(len(issues), "coerced value", "coerced values"))) + "\n")
		for _, is := range issues {
			b.WriteString("  " + is + "\n")
		}
	}
	return b.String()
}

// FormatWarnings renders restore warnings, one per line. Nothing is
// returned when there are none.
func FormatWarnings(warnings []wizard.Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	var b strings.Builder
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render("⚠ "+w.Field) + " " + w.Message + "\n")
	}
	return b.String()
}
