package wizard

import (
	"strings"
	"time"

	"github.com/alexanderramin/nafwizard/internal/catalog"
	"github.com/alexanderramin/nafwizard/internal/document"
	"github.com/alexanderramin/nafwizard/internal/domain"
	"github.com/alexanderramin/nafwizard/internal/scheduler"
)

// HolidayProvider supplies the holiday set for a timeline region.
type HolidayProvider interface {
	HolidaysFor(region string, start time.Time) scheduler.HolidaySet
}

// Builder turns form state into a wizard document. It is safe for
// concurrent use; Build never mutates its input.
type Builder struct {
	holidays HolidayProvider
	now      func() time.Time
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithClock sets the clock used when the timeline has no start date.
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) { b.now = now }
}

// WithHolidays sets the holiday source for timeline scheduling. Without
// one, only weekends are skipped.
func WithHolidays(p HolidayProvider) BuilderOption {
	return func(b *Builder) { b.holidays = p }
}

func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{now: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build produces a complete document. Every section is always present;
// missing answers become empty strings or documented defaults.
func (b *Builder) Build(s domain.FormState) *document.Document {
	return &document.Document{
		Initiative:    buildInitiative(s.Initiative),
		MyRole:        buildRole(s.Role),
		Stakeholders:  buildStakeholders(s.Stakeholders),
		Presentation:  buildPresentation(s.Presentation),
		Intent:        buildIntent(s.Intent),
		Observability: buildObservability(s.Observability),
		Orchestration: buildOrchestration(s.Orchestration),
		Collector:     buildCollector(s.Collector),
		Executor:      buildExecutor(s.Executor),
		Dependencies:  buildDependencies(s.Dependencies),
		Timeline:      b.buildTimeline(s.Timeline),
	}
}

func buildInitiative(in domain.Initiative) document.Initiative {
	return document.Initiative{
		Title:                         in.Title,
		Description:                   in.Description,
		Category:                      in.Category.Resolve(domain.OtherMarker),
		ProblemStatement:              in.ProblemStatement,
		ExpectedUse:                   in.ExpectedUse,
		ErrorConditions:               in.ErrorConditions,
		Assumptions:                   in.Assumptions,
		DeploymentStrategy:            in.DeploymentStrategy.Resolve(domain.OtherMarker),
		DeploymentStrategyDescription: in.DeploymentDescription,
		OutOfScope:                    in.OutOfScope,
		NoMoveForward:                 in.NoMoveForward,
		NoMoveForwardReasons:          domain.NonBlank(in.NoMoveForwardReasons),
		Author:                        in.Author,
	}
}

func buildRole(r domain.Role) document.MyRole {
	return document.MyRole{
		Who:       r.Who.Resolve(domain.OtherRoleMarker),
		Skills:    r.Skills.Resolve(domain.OtherRoleMarker),
		Developer: r.Developer.Resolve(domain.OtherRoleMarker),
	}
}

func buildStakeholders(s domain.Stakeholders) document.Stakeholders {
	choices := make(map[string]string, len(s.Choices))
	for category, v := range s.Choices {
		if domain.IsSentinel(v) {
			v = ""
		}
		choices[category] = v
	}
	return document.Stakeholders{Choices: choices, Other: strings.TrimSpace(s.Other)}
}

// selection is a group's canonical value list, never nil.
func selection(g domain.OptionGroup, def catalog.Group) []string {
	return g.Values(def.Options, def.SplitCustom)
}

func buildPresentation(p domain.Presentation) document.Presentation {
	users := selection(p.Users, catalog.PresentationUsers)
	interactions := selection(p.Interactions, catalog.PresentationInteractions)
	tools := selection(p.Tools, catalog.PresentationTools)
	auth := selection(p.Auth, catalog.PresentationAuth)
	return document.Presentation{
		Users:       Sentence(catalog.PresentationUsers.LeadIn, users),
		Interaction: Sentence(catalog.PresentationInteractions.LeadIn, interactions),
		Tools:       Sentence(catalog.PresentationTools.LeadIn, tools),
		Auth:        Sentence(catalog.PresentationAuth.LeadIn, auth),
		Selections: document.PresentationSelections{
			Users:        users,
			Interactions: interactions,
			Tools:        tools,
			Auth:         auth,
		},
	}
}

func buildIntent(in domain.Intent) document.Intent {
	dev := selection(in.Development, catalog.IntentDevelopment)
	prov := selection(in.Provided, catalog.IntentProvided)
	return document.Intent{
		Development: Sentence(catalog.IntentDevelopment.LeadIn, dev),
		Provided:    Sentence(catalog.IntentProvided.LeadIn, prov),
		Selections:  document.IntentSelections{Development: dev, Provided: prov},
	}
}

func buildObservability(o domain.Observability) document.Observability {
	methods := selection(o.Methods, catalog.ObservabilityMethods)
	tools := selection(o.Tools, catalog.ObservabilityTools)

	var additional string
	if text := strings.TrimSpace(o.AdditionalLogicText); o.AdditionalLogicEnabled && text != "" {
		additional = "Additional gating logic: " + text
	}
	return document.Observability{
		Methods:         Sentence(catalog.ObservabilityMethods.LeadIn, methods),
		GoNoGo:          strings.TrimSpace(o.GoNoGo),
		AdditionalLogic: additional,
		Tools:           Sentence(catalog.ObservabilityTools.LeadIn, tools),
		Selections: document.ObservabilitySelections{
			Methods:                methods,
			GoNoGoText:             o.GoNoGo,
			AdditionalLogicEnabled: o.AdditionalLogicEnabled,
			AdditionalLogicText:    o.AdditionalLogicText,
			Tools:                  tools,
		},
	}
}

func buildOrchestration(o domain.Orchestration) document.Orchestration {
	choice := strings.TrimSpace(o.Choice)
	if domain.IsSentinel(choice) {
		choice = ""
	}
	return document.Orchestration{
		Summary:    OrchestrationSummary(choice, o.Details),
		Selections: document.OrchestrationSelections{Choice: choice, Details: o.Details},
	}
}

// OrchestrationSummary is the narrative for an orchestration answer.
// Choices outside the current radio set are described generically.
func OrchestrationSummary(choice, details string) string {
	details = strings.TrimSpace(details)
	switch choice {
	case "":
		return ""
	case domain.OrchestrationNo:
		return "No Orchestration will be used in this project."
	case domain.OrchestrationInternal:
		return "Orchestration will be implemented internally using custom scripts and logic to coordinate end-to-end workflows."
	case domain.OrchestrationDetails:
		return "Orchestration will be utilized: " + domain.CoalesceStr(details, "TBD") + "."
	}
	if details != "" {
		return "Orchestration will be handled using " + choice + ": " + details
	}
	return "Orchestration will be handled using " + choice + "."
}

func buildCollector(c domain.Collector) document.Collector {
	methods := selection(c.Methods, catalog.CollectorMethods)
	auth := selection(c.Auth, catalog.CollectorAuth)
	handling := selection(c.Handling, catalog.CollectorHandling)
	norm := selection(c.Normalization, catalog.CollectorNormalization)
	tools := selection(c.Tools, catalog.CollectorTools)
	return document.Collector{
		Methods:       Sentence(catalog.CollectorMethods.LeadIn, methods),
		Auth:          Sentence(catalog.CollectorAuth.LeadIn, auth),
		Handling:      Sentence(catalog.CollectorHandling.LeadIn, handling),
		Normalization: Sentence(catalog.CollectorNormalization.LeadIn, norm),
		Scale:         scaleSentence(c.Devices, c.Metrics, c.Cadence),
		Tools:         Sentence(catalog.CollectorTools.LeadIn, tools),
		Selections: document.CollectorSelections{
			Methods:       methods,
			Auth:          auth,
			Handling:      handling,
			Normalization: norm,
			Devices:       c.Devices,
			MetricsPerSec: c.Metrics,
			Cadence:       c.Cadence,
			Tools:         tools,
		},
	}
}

func scaleSentence(devices, metrics, cadence string) string {
	var parts []string
	if v := strings.TrimSpace(devices); v != "" {
		parts = append(parts, "devices/scope: "+v)
	}
	if v := strings.TrimSpace(metrics); v != "" {
		parts = append(parts, "metrics: "+v)
	}
	if v := strings.TrimSpace(cadence); v != "" {
		parts = append(parts, "cadence: "+v)
	}
	if len(parts) == 0 {
		return ""
	}
	return "Scale considerations: " + strings.Join(parts, "; ") + "."
}

func buildExecutor(e domain.Executor) document.Executor {
	methods := selection(e.Methods, catalog.ExecutorMethods)
	return document.Executor{
		Methods:    Sentence(catalog.ExecutorMethods.LeadIn, methods),
		Selections: document.ExecutorSelections{Methods: methods},
	}
}

func (b *Builder) buildTimeline(tl domain.Timeline) document.Timeline {
	start := scheduler.DateOf(b.now())
	if tl.StartDate != nil && !tl.StartDate.IsZero() {
		start = scheduler.DateOf(*tl.StartDate)
	}
	region := domain.TrimmedOr(tl.HolidayRegion, domain.DefaultHolidayRegion)

	var holidays scheduler.HolidaySet
	if b.holidays != nil {
		holidays = b.holidays.HolidaysFor(region, start)
	}
	plan := scheduler.Schedule(start, tl.Milestones, holidays)

	items := make([]document.TimelineItem, 0, len(plan.Items))
	for _, it := range plan.Items {
		items = append(items, document.TimelineItem{
			Name:       it.Name,
			DurationBD: it.DurationBD,
			Start:      it.Start.Format(scheduler.DateLayout),
			End:        it.End.Format(scheduler.DateLayout),
			Notes:      it.Notes,
		})
	}
	var completion *string
	if plan.ProjectedCompletion != nil {
		s := plan.ProjectedCompletion.Format(scheduler.DateLayout)
		completion = &s
	}

	return document.Timeline{
		StartDate:           start.Format(scheduler.DateLayout),
		TotalBusinessDays:   plan.TotalBusinessDays,
		ProjectedCompletion: completion,
		BuildBuy:            domain.TrimmedOr(tl.BuildBuy, domain.DefaultBuildBuy),
		StaffCount:          domain.NonNegative(tl.StaffCount),
		ExternalStaffCount:  domain.NonNegative(tl.ExternalStaffCount),
		StaffingPlanMD:      tl.StaffingPlan,
		HolidayRegion:       region,
		Items:               items,
	}
}
