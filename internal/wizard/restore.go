package wizard

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/alexanderramin/nafwizard/internal/catalog"
	"github.com/alexanderramin/nafwizard/internal/document"
	"github.com/alexanderramin/nafwizard/internal/domain"
	"github.com/alexanderramin/nafwizard/internal/scheduler"
)

// Warning describes something in a document that restore could not carry
// into the form state. Warnings never stop a restore.
type Warning struct {
	Field   string
	Message string
}

func (w Warning) String() string {
	return w.Field + ": " + w.Message
}

// Restorer turns a document back into form state.
type Restorer struct {
	catalog *catalog.Catalog
}

func NewRestorer(cat *catalog.Catalog) *Restorer {
	return &Restorer{catalog: cat}
}

// Restore reconstructs the form state a document was built from. Values
// outside the current catalogs are kept: single choices become "Other"
// answers and checkbox values land in the group's Extra list. Dependency
// names that are not known labels are reported and skipped.
func (r *Restorer) Restore(doc *document.Document) (domain.FormState, []Warning) {
	s := domain.EmptyFormState()
	if doc == nil {
		return s, nil
	}
	var warnings []Warning

	s.Initiative = r.restoreInitiative(doc.Initiative)
	s.Role = restoreRole(doc.MyRole)
	s.Stakeholders = restoreStakeholders(doc.Stakeholders)
	s.Presentation = restorePresentation(doc.Presentation.Selections)
	s.Intent = restoreIntent(doc.Intent.Selections)
	s.Observability = restoreObservability(doc.Observability)
	s.Orchestration = restoreOrchestration(doc.Orchestration.Selections)
	s.Collector = restoreCollector(doc.Collector.Selections)
	s.Executor = domain.Executor{
		Methods: domain.GroupFromValues(doc.Executor.Selections.Methods, catalog.ExecutorMethods.Options),
	}

	var depWarnings []Warning
	s.Dependencies, depWarnings = restoreDependencies(doc.Dependencies)
	warnings = append(warnings, depWarnings...)

	var tlWarnings []Warning
	s.Timeline, tlWarnings = restoreTimeline(doc.Timeline)
	warnings = append(warnings, tlWarnings...)

	return s, warnings
}

func (r *Restorer) restoreInitiative(in document.Initiative) domain.Initiative {
	return domain.Initiative{
		Author:                in.Author,
		Title:                 in.Title,
		Description:           in.Description,
		Category:              domain.ChoiceFromValue(in.Category, r.catalog.CategoryNames(), domain.OtherMarker),
		ProblemStatement:      in.ProblemStatement,
		ExpectedUse:           in.ExpectedUse,
		ErrorConditions:       in.ErrorConditions,
		Assumptions:           in.Assumptions,
		DeploymentStrategy:    domain.ChoiceFromValue(in.DeploymentStrategy, r.catalog.DeploymentNames(), domain.OtherMarker),
		DeploymentDescription: in.DeploymentStrategyDescription,
		OutOfScope:            in.OutOfScope,
		NoMoveForward:         in.NoMoveForward,
		NoMoveForwardReasons:  domain.NonBlank(in.NoMoveForwardReasons),
	}
}

func restoreRole(r document.MyRole) domain.Role {
	return domain.Role{
		Who:       domain.ChoiceFromValue(r.Who, catalog.RoleWho, domain.OtherRoleMarker),
		Skills:    domain.ChoiceFromValue(r.Skills, catalog.RoleSkills, domain.OtherRoleMarker),
		Developer: domain.ChoiceFromValue(r.Developer, catalog.RoleDeveloper, domain.OtherRoleMarker),
	}
}

// restoreStakeholders keeps category names verbatim, including names from
// older catalogs.
func restoreStakeholders(s document.Stakeholders) domain.Stakeholders {
	choices := make(map[string]string, len(s.Choices))
	maps.Copy(choices, s.Choices)
	return domain.Stakeholders{Choices: choices, Other: s.Other}
}

func restorePresentation(sel document.PresentationSelections) domain.Presentation {
	return domain.Presentation{
		Users:        domain.GroupFromValues(sel.Users, catalog.PresentationUsers.Options),
		Interactions: domain.GroupFromValues(sel.Interactions, catalog.PresentationInteractions.Options),
		Tools:        domain.GroupFromValues(sel.Tools, catalog.PresentationTools.Options),
		Auth:         domain.GroupFromValues(sel.Auth, catalog.PresentationAuth.Options),
	}
}

func restoreIntent(sel document.IntentSelections) domain.Intent {
	return domain.Intent{
		Development: domain.GroupFromValues(sel.Development, catalog.IntentDevelopment.Options),
		Provided:    domain.GroupFromValues(sel.Provided, catalog.IntentProvided.Options),
	}
}

func restoreObservability(o document.Observability) domain.Observability {
	sel := o.Selections
	return domain.Observability{
		Methods:                domain.GroupFromValues(sel.Methods, catalog.ObservabilityMethods.Options),
		Tools:                  domain.GroupFromValues(sel.Tools, catalog.ObservabilityTools.Options),
		GoNoGo:                 domain.CoalesceStr(sel.GoNoGoText, o.GoNoGo),
		AdditionalLogicEnabled: sel.AdditionalLogicEnabled,
		AdditionalLogicText:    sel.AdditionalLogicText,
	}
}

func restoreOrchestration(sel document.OrchestrationSelections) domain.Orchestration {
	choice := strings.TrimSpace(sel.Choice)
	if domain.IsSentinel(choice) {
		choice = ""
	}
	return domain.Orchestration{Choice: choice, Details: sel.Details}
}

func restoreCollector(sel document.CollectorSelections) domain.Collector {
	return domain.Collector{
		Methods:       domain.GroupFromValues(sel.Methods, catalog.CollectorMethods.Options),
		Auth:          domain.GroupFromValues(sel.Auth, catalog.CollectorAuth.Options),
		Handling:      domain.GroupFromValues(sel.Handling, catalog.CollectorHandling.Options),
		Normalization: domain.GroupFromValues(sel.Normalization, catalog.CollectorNormalization.Options),
		Tools:         domain.GroupFromValues(sel.Tools, catalog.CollectorTools.Options),
		Devices:       sel.Devices,
		Metrics:       sel.MetricsPerSec,
		Cadence:       sel.Cadence,
	}
}

// restoreDependencies maps display labels back to keys. Only the exact
// labels from the dependency table are recognised.
func restoreDependencies(deps []document.Dependency) ([]domain.DependencySelection, []Warning) {
	out := []domain.DependencySelection{}
	var warnings []Warning
	index := make(map[string]int)
	for i, d := range deps {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			continue
		}
		key, ok := catalog.DependencyKey(name)
		if !ok {
			warnings = append(warnings, Warning{
				Field:   fmt.Sprintf("dependencies[%d]", i),
				Message: fmt.Sprintf("unknown dependency %q not restored", name),
			})
			continue
		}
		sel := domain.DependencySelection{Key: key, Details: strings.TrimSpace(d.Details)}
		if j, dup := index[key]; dup {
			out[j] = sel
			continue
		}
		index[key] = len(out)
		out = append(out, sel)
	}
	return out, warnings
}

func restoreTimeline(tl document.Timeline) (domain.Timeline, []Warning) {
	var warnings []Warning
	out := domain.Timeline{
		BuildBuy:           domain.TrimmedOr(tl.BuildBuy, domain.DefaultBuildBuy),
		StaffCount:         domain.NonNegative(tl.StaffCount),
		ExternalStaffCount: domain.NonNegative(tl.ExternalStaffCount),
		StaffingPlan:       tl.StaffingPlanMD,
		HolidayRegion:      domain.TrimmedOr(tl.HolidayRegion, domain.DefaultHolidayRegion),
		Milestones:         make([]domain.Milestone, 0, len(tl.Items)),
	}

	if s := strings.TrimSpace(tl.StartDate); s != "" {
		if d, err := scheduler.ParseDate(s); err == nil {
			out.StartDate = ptrTime(d)
		} else {
			warnings = append(warnings, Warning{
				Field:   "timeline.start_date",
				Message: fmt.Sprintf("invalid date %q ignored", s),
			})
		}
	}

	for _, it := range tl.Items {
		out.Milestones = append(out.Milestones, domain.Milestone{
			Name:       strings.TrimSpace(it.Name),
			DurationBD: domain.NonNegative(it.DurationBD),
			Notes:      it.Notes,
		})
	}
	return out, warnings
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
