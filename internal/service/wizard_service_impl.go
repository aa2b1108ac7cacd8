package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/nafwizard/internal/calendar"
	"github.com/alexanderramin/nafwizard/internal/catalog"
	"github.com/alexanderramin/nafwizard/internal/document"
	"github.com/alexanderramin/nafwizard/internal/domain"
	"github.com/alexanderramin/nafwizard/internal/export"
	"github.com/alexanderramin/nafwizard/internal/formstate"
	"github.com/alexanderramin/nafwizard/internal/report"
	"github.com/alexanderramin/nafwizard/internal/scheduler"
	"github.com/alexanderramin/nafwizard/internal/wizard"
)

// WizardDeps wires a WizardService. Zero values fall back to the built-in
// catalog, two years of holidays and the system clock.
type WizardDeps struct {
	Catalog      *catalog.Catalog
	HolidayYears int
	Now          func() time.Time
}

type wizardService struct {
	catalog      *catalog.Catalog
	builder      *wizard.Builder
	restorer     *wizard.Restorer
	holidayYears int
	now          func() time.Time
	observer     UseCaseObserver
}

func NewWizardService(deps WizardDeps, observers ...UseCaseObserver) WizardService {
	cat := deps.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	years := deps.HolidayYears
	if years <= 0 {
		years = 2
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &wizardService{
		catalog: cat,
		builder: wizard.NewBuilder(
			wizard.WithClock(now),
			wizard.WithHolidays(calendar.Provider{YearsAhead: years}),
		),
		restorer:     wizard.NewRestorer(cat),
		holidayYears: years,
		now:          now,
		observer:     useCaseObserverOrNoop(observers),
	}
}

func (s *wizardService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func (s *wizardService) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *wizardService) Build(ctx context.Context, state domain.FormState) *document.Document {
	startedAt := time.Now().UTC()
	doc := s.builder.Build(state)
	s.observe(ctx, "build", startedAt, documentFields(doc), nil)
	return doc
}

func (s *wizardService) BuildSnapshot(ctx context.Context, snap formstate.Snapshot) *document.Document {
	startedAt := time.Now().UTC()
	doc := s.builder.Build(formstate.Decode(snap))
	fields := documentFields(doc)
	fields["snapshot_keys"] = len(snap)
	s.observe(ctx, "build-snapshot", startedAt, fields, nil)
	return doc
}

func (s *wizardService) Restore(ctx context.Context, doc *document.Document) *RestoreResult {
	startedAt := time.Now().UTC()
	state, warnings := s.restorer.Restore(doc)
	res := &RestoreResult{State: state, Snapshot: formstate.Encode(state), Warnings: warnings}
	s.observe(ctx, "restore", startedAt, map[string]any{"warnings": len(warnings)}, nil)
	return res
}

func (s *wizardService) Schedule(ctx context.Context, req ScheduleRequest) (res *ScheduleResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"region":     req.HolidayRegion,
		"milestones": len(req.Milestones),
	}
	defer func() { s.observe(ctx, "schedule", startedAt, fields, err) }()

	start := scheduler.DateOf(s.now())
	if req.StartDate != "" {
		start, err = scheduler.ParseDate(req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start date %q: %w", req.StartDate, err)
		}
	}
	region := domain.TrimmedOr(req.HolidayRegion, domain.DefaultHolidayRegion)
	var holidays scheduler.HolidaySet
	holidays, err = calendar.Holidays(region, start.Year(), s.holidayYears)
	if err != nil {
		return nil, err
	}

	plan := scheduler.Schedule(start, req.Milestones, holidays)
	res = &ScheduleResult{
		Plan:           plan,
		Region:         region,
		EstimateMonths: report.EstimateMonths(plan.TotalBusinessDays),
		ComputedAt:     startedAt,
	}
	if plan.ProjectedCompletion != nil {
		res.Holidays = holidays.Between(plan.Start, *plan.ProjectedCompletion)
	}
	fields["total_business_days"] = plan.TotalBusinessDays
	return res, nil
}

func (s *wizardService) Render(ctx context.Context, doc *document.Document, format ReportFormat) (out string, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"format": string(format)}
	defer func() {
		fields["bytes"] = len(out)
		s.observe(ctx, "render", startedAt, fields, err)
	}()

	switch format {
	case FormatMarkdown:
		return report.Markdown(doc, s.now())
	case FormatHighlights:
		return report.Highlights(doc), nil
	case FormatHTML:
		return report.GanttHTML(doc)
	case FormatJSON:
		var data []byte
		data, err = document.Marshal(doc)
		return string(data), err
	}
	return "", fmt.Errorf("%q: %w", format, ErrUnknownFormat)
}

func (s *wizardService) Export(ctx context.Context, doc *document.Document) (arc *export.Archive, err error) {
	startedAt := time.Now().UTC()
	fields := documentFields(doc)
	defer func() {
		if arc != nil {
			fields["archive"] = arc.Name
			fields["export_id"] = arc.Manifest.ExportID
		}
		s.observe(ctx, "export", startedAt, fields, err)
	}()

	if !wizard.HasAnyContent(doc) {
		return nil, ErrNoContent
	}
	return export.Package(doc, s.now())
}

func (s *wizardService) Import(ctx context.Context, name string, data []byte, force bool) (res *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"file": name, "force": force}
	defer func() { s.observe(ctx, "import", startedAt, fields, err) }()

	var (
		doc    *document.Document
		issues []string
	)
	doc, issues, err = export.ReadUpload(name, data, force)
	if err != nil {
		return nil, err
	}
	restored, warnings := s.restorer.Restore(doc)
	fields["issues"] = len(issues)
	fields["warnings"] = len(warnings)
	return &ImportResult{
		Document: doc,
		Issues:   issues,
		RestoreResult: &RestoreResult{
			State:    restored,
			Snapshot: formstate.Encode(restored),
			Warnings: warnings,
		},
	}, nil
}

func documentFields(doc *document.Document) map[string]any {
	if doc == nil {
		return map[string]any{}
	}
	return map[string]any{
		"title":               doc.Initiative.Title,
		"dependencies":        len(doc.Dependencies),
		"milestones":          len(doc.Timeline.Items),
		"total_business_days": doc.Timeline.TotalBusinessDays,
	}
}
