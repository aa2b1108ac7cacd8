// Package export packages a wizard document with its rendered reports into
// a ZIP archive and reads documents back from uploads.
package export

import (
	"regexp"
	"strings"
	"time"
)

const (
	FilePrefix    = "naf_report_"
	TimestampFmt  = "20060102_150405"
	ManifestName  = "manifest.json"
	fallbackTitle = "solution"
	maxTitleLen   = 30
)

var unsafeRun = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
var underscores = regexp.MustCompile(`_{2,}`)

// SanitizeTitle turns a title into a filename fragment: unsafe runs become
// "_", the result is trimmed of "_" and capped at 30 characters.
func SanitizeTitle(title string) string {
	t := unsafeRun.ReplaceAllString(strings.TrimSpace(title), "_")
	t = underscores.ReplaceAllString(t, "_")
	t = strings.Trim(t, "_")
	if t == "" {
		t = fallbackTitle
	}
	if len(t) > maxTitleLen {
		t = t[:maxTitleLen]
	}
	return t
}

// BaseName is the stem shared by every file of one export.
func BaseName(title string, at time.Time) string {
	return FilePrefix + SanitizeTitle(title) + "_" + at.Format(TimestampFmt)
}
