package testutil

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/alexanderramin/nafwizard/internal/catalog"
	"github.com/alexanderramin/nafwizard/internal/domain"
)

// FixedNow is the clock used by fixtures: Monday 2024-01-01, midday UTC.
var FixedNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// Clock returns a function reporting FixedNow.
func Clock() func() time.Time {
	return func() time.Time { return FixedNow }
}

// Date builds a midnight UTC date.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type FormStateOption func(*domain.FormState)

func WithTitle(title string) FormStateOption {
	return func(s *domain.FormState) {
		s.Initiative.Title = title
	}
}

func WithUsers(users ...string) FormStateOption {
	return func(s *domain.FormState) {
		s.Presentation.Users.Selected = users
	}
}

func WithInteractions(opts ...string) FormStateOption {
	return func(s *domain.FormState) {
		s.Presentation.Interactions.Selected = opts
	}
}

func WithCategory(c domain.Choice) FormStateOption {
	return func(s *domain.FormState) {
		s.Initiative.Category = c
	}
}

func WithDeployment(c domain.Choice) FormStateOption {
	return func(s *domain.FormState) {
		s.Initiative.DeploymentStrategy = c
	}
}

func WithStartDate(d time.Time) FormStateOption {
	return func(s *domain.FormState) {
		s.Timeline.StartDate = &d
	}
}

func WithMilestones(ms ...domain.Milestone) FormStateOption {
	return func(s *domain.FormState) {
		s.Timeline.Milestones = ms
	}
}

func WithDependencies(deps ...domain.DependencySelection) FormStateOption {
	return func(s *domain.FormState) {
		s.Dependencies = deps
	}
}

func WithOrchestration(choice, details string) FormStateOption {
	return func(s *domain.FormState) {
		s.Orchestration = domain.Orchestration{Choice: choice, Details: details}
	}
}

func WithHolidayRegion(region string) FormStateOption {
	return func(s *domain.FormState) {
		s.Timeline.HolidayRegion = region
	}
}

// NewTestFormState starts from an empty state (no defaults) and applies opts.
func NewTestFormState(opts ...FormStateOption) domain.FormState {
	s := domain.EmptyFormState()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// RandomFormState fills every section with random answers drawn from the
// built-in catalogs plus occasional free text. Dependencies use known keys
// only.
func RandomFormState(rng *rand.Rand, cat *catalog.Catalog) domain.FormState {
	s := domain.EmptyFormState()

	s.Initiative = domain.Initiative{
		Author:                maybeText(rng, "author"),
		Title:                 maybeText(rng, "title"),
		Description:           maybeText(rng, "description"),
		Category:              randomChoice(rng, cat.CategoryNames(), domain.OtherMarker),
		ProblemStatement:      maybeText(rng, "problem"),
		ExpectedUse:           maybeText(rng, "use"),
		ErrorConditions:       maybeText(rng, "errors"),
		Assumptions:           maybeText(rng, "assumptions"),
		DeploymentStrategy:    randomChoice(rng, cat.DeploymentNames(), domain.OtherMarker),
		DeploymentDescription: maybeText(rng, "rollout"),
		OutOfScope:            maybeText(rng, "scope"),
		NoMoveForward:         maybeText(rng, "risk"),
		NoMoveForwardReasons:  pick(rng, append([]string{domain.SentinelRisks}, catalog.RiskReasons...)),
	}
	s.Role = domain.Role{
		Who:       randomChoice(rng, catalog.RoleWho, domain.OtherRoleMarker),
		Skills:    randomChoice(rng, catalog.RoleSkills, domain.OtherRoleMarker),
		Developer: randomChoice(rng, catalog.RoleDeveloper, domain.OtherRoleMarker),
	}
	for _, sc := range cat.Stakeholders {
		if rng.Intn(2) == 0 && len(sc.Options) > 0 {
			s.Stakeholders.Choices[sc.Name] = sc.Options[rng.Intn(len(sc.Options))]
		}
	}
	s.Stakeholders.Other = maybeText(rng, "stakeholder")

	s.Presentation = domain.Presentation{
		Users:        randomGroup(rng, catalog.PresentationUsers),
		Interactions: randomGroup(rng, catalog.PresentationInteractions),
		Tools:        randomGroup(rng, catalog.PresentationTools),
		Auth:         randomGroup(rng, catalog.PresentationAuth),
	}
	s.Intent = domain.Intent{
		Development: randomGroup(rng, catalog.IntentDevelopment),
		Provided:    randomGroup(rng, catalog.IntentProvided),
	}
	s.Observability = domain.Observability{
		Methods:                randomGroup(rng, catalog.ObservabilityMethods),
		Tools:                  randomGroup(rng, catalog.ObservabilityTools),
		GoNoGo:                 maybeText(rng, "gate"),
		AdditionalLogicEnabled: rng.Intn(2) == 0,
		AdditionalLogicText:    maybeText(rng, "logic"),
	}
	orch := append([]string{"", domain.SentinelSelectOne}, catalog.OrchestrationOptions...)
	s.Orchestration = domain.Orchestration{Choice: orch[rng.Intn(len(orch))], Details: maybeText(rng, "details")}
	s.Collector = domain.Collector{
		Methods:       randomGroup(rng, catalog.CollectorMethods),
		Auth:          randomGroup(rng, catalog.CollectorAuth),
		Handling:      randomGroup(rng, catalog.CollectorHandling),
		Normalization: randomGroup(rng, catalog.CollectorNormalization),
		Tools:         randomGroup(rng, catalog.CollectorTools),
		Devices:       maybeText(rng, "500 devices"),
		Metrics:       maybeText(rng, "1k/s"),
		Cadence:       maybeText(rng, "5m"),
	}
	s.Executor = domain.Executor{Methods: randomGroup(rng, catalog.ExecutorMethods)}

	for _, key := range catalog.DependencyKeys() {
		if rng.Intn(3) == 0 {
			s.Dependencies = append(s.Dependencies, domain.DependencySelection{Key: key, Details: maybeText(rng, " details ")})
		}
	}

	if rng.Intn(4) > 0 {
		start := Date(2024, 1, 1).AddDate(0, 0, rng.Intn(700))
		s.Timeline.StartDate = &start
	}
	s.Timeline.BuildBuy = pickOne(rng, append([]string{""}, catalog.BuildBuyOptions...))
	s.Timeline.StaffCount = rng.Intn(8) - 1
	s.Timeline.ExternalStaffCount = rng.Intn(4)
	s.Timeline.StaffingPlan = maybeText(rng, "plan")
	s.Timeline.HolidayRegion = pickOne(rng, []string{"", "None", "United States", "Germany", "United Kingdom"})
	for i := 0; i < rng.Intn(7); i++ {
		m := domain.Milestone{DurationBD: rng.Intn(12) - 1, Notes: maybeText(rng, "note")}
		if rng.Intn(5) > 0 {
			m.Name = fmt.Sprintf(" Milestone %d ", i)
		}
		s.Timeline.Milestones = append(s.Timeline.Milestones, m)
	}
	return s
}

func maybeText(rng *rand.Rand, base string) string {
	if rng.Intn(3) == 0 {
		return ""
	}
	return fmt.Sprintf("%s %d", base, rng.Intn(1000))
}

func pick(rng *rand.Rand, options []string) []string {
	out := []string{}
	for _, o := range options {
		if rng.Intn(3) == 0 {
			out = append(out, o)
		}
	}
	return out
}

func pickOne(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

func randomChoice(rng *rand.Rand, known []string, otherMarker string) domain.Choice {
	switch rng.Intn(4) {
	case 0:
		return domain.Choice{}
	case 1:
		return domain.Choice{Selected: otherMarker, Other: maybeText(rng, "custom")}
	default:
		if len(known) == 0 {
			return domain.Choice{}
		}
		return domain.Choice{Selected: pickOne(rng, known)}
	}
}

func randomGroup(rng *rand.Rand, g catalog.Group) domain.OptionGroup {
	og := domain.OptionGroup{Selected: pick(rng, g.Options)}
	if rng.Intn(4) == 0 {
		og.Extra = []string{fmt.Sprintf("Legacy %d", rng.Intn(50))}
	}
	if g.HasCustom() && rng.Intn(3) == 0 {
		og.CustomEnabled = rng.Intn(4) > 0
		og.Custom = pickOne(rng, []string{"", "  Custom A ", "Custom A, Custom B", g.Options[0]})
	}
	return og
}
