package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/nafwizard/internal/document"
	"github.com/alexanderramin/nafwizard/internal/domain"
	"github.com/alexanderramin/nafwizard/internal/formstate"
	"github.com/alexanderramin/nafwizard/internal/scheduler"
	"github.com/alexanderramin/nafwizard/internal/wizard"
)

var (
	// ErrNoContent indicates an export of a document that says nothing
	// beyond a fresh wizard's defaults.
	ErrNoContent = errors.New("nothing to export: document has no answers beyond the defaults")

	// ErrUnknownFormat indicates an unsupported report format.
	ErrUnknownFormat = errors.New("unknown report format")
)

// ReportFormat selects a rendering of a document.
type ReportFormat string

const (
	FormatMarkdown   ReportFormat = "md"
	FormatHighlights ReportFormat = "highlights"
	FormatHTML       ReportFormat = "html"
	FormatJSON       ReportFormat = "json"
)

// ParseReportFormat accepts the format names used by flags and query
// parameters.
func ParseReportFormat(s string) (ReportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "md", "markdown":
		return FormatMarkdown, nil
	case "highlights", "summary":
		return FormatHighlights, nil
	case "html", "gantt":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// RestoreResult is a document turned back into form state, in both the
// structured and the flat shape.
type RestoreResult struct {
	State    domain.FormState
	Snapshot formstate.Snapshot
	Warnings []wizard.Warning
}

// ImportResult is an uploaded document plus its restored form state.
type ImportResult struct {
	Document *document.Document
	// Issues are lenient-parse coercions; the document is still usable.
	Issues []string
	*RestoreResult
}

// ScheduleRequest is a standalone timeline calculation.
type ScheduleRequest struct {
	StartDate     string             `json:"start_date"`
	HolidayRegion string             `json:"holiday_region"`
	Milestones    []domain.Milestone `json:"milestones"`
}

// ScheduleResult is a scheduled plan with the holidays that fell inside it.
type ScheduleResult struct {
	Plan           scheduler.Plan
	Region         string
	Holidays       []scheduler.Holiday
	EstimateMonths float64
	ComputedAt     time.Time
}
