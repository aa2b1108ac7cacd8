package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// labelWidth is the column the value of a key/value line starts at.
const labelWidth = 12

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// KeyValue renders a dim label padded to a fixed column, then the value.
func KeyValue(label, value string) string {
	pad := labelWidth - lipgloss.Width(label)
	if pad < 1 {
		pad = 1
	}
	return Dim(label) + strings.Repeat(" ", pad) + value + "\n"
}

// FormatDate renders a calendar date, or a dim TBD when unknown.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return Dim("TBD")
	}
	return t.Format("2006-01-02")
}

// FormatBusinessDays renders a business-day count with its unit.
func FormatBusinessDays(n int) string {
	if n == 1 {
		return "1 business day"
	}
	return fmt.Sprintf("%d business days", n)
}

// Plural returns "1 thing" or "N things".
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
