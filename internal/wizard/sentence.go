// Package wizard converts between the structured form state and the
// exported wizard document.
package wizard

import "strings"

// JoinHuman joins items as English prose: "A", "A and B", "A, B, and C".
// Zero items give "".
func JoinHuman(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
}

// Sentence is leadIn followed by the joined items and a period, or "" when
// there are no items.
func Sentence(leadIn string, items []string) string {
	joined := JoinHuman(items)
	if joined == "" {
		return ""
	}
	return leadIn + joined + "."
}
