package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/nafwizard/internal/catalog"
	"github.com/alexanderramin/nafwizard/internal/domain"
	"github.com/alexanderramin/nafwizard/internal/formstate"
	"github.com/alexanderramin/nafwizard/internal/scheduler"
)

// groupAnswer is the editable part of one checkbox group. Extra values are
// not shown in the form and pass through unchanged.
type groupAnswer struct {
	selected []string
	custom   string
	extra    []string
}

// wizardAnswers holds one string, bool or slice per form field so that huh
// fields can bind to it. apply writes the answers back into a FormState.
type wizardAnswers struct {
	title, description, author     string
	category, categoryOther        string
	problem, expectedUse           string
	errorConditions, assumptions   string
	deployment, deploymentOther    string
	deploymentDescription          string
	outOfScope, noMoveForward      string
	reasons                        []string
	roleWho, roleWhoOther          string
	roleSkills, roleSkillsOther    string
	roleDeveloper, roleDevOther    string
	stakeholders                   map[string]*string
	stakeholderOther               string
	groups                         map[string]*groupAnswer
	goNoGo                         string
	additionalLogic                bool
	additionalLogicText            string
	orchestration, orchDetails     string
	devices, metrics, cadence      string
	dependencies                   []string
	dependencyDetails              map[string]*string
	startDate, buildBuy            string
	staffCount, externalStaffCount string
	staffingPlan, holidayRegion    string
	milestones                     string

	// base is the state the answers were read from; fields the form does
	// not edit are carried over from it.
	base domain.FormState
}

func newWizardAnswers(cat *catalog.Catalog, s domain.FormState) *wizardAnswers {
	in := s.Initiative
	a := &wizardAnswers{
		title:                 in.Title,
		description:           in.Description,
		author:                in.Author,
		category:              in.Category.Selected,
		categoryOther:         in.Category.Other,
		problem:               in.ProblemStatement,
		expectedUse:           in.ExpectedUse,
		errorConditions:       in.ErrorConditions,
		assumptions:           in.Assumptions,
		deployment:            in.DeploymentStrategy.Selected,
		deploymentOther:       in.DeploymentStrategy.Other,
		deploymentDescription: in.DeploymentDescription,
		outOfScope:            in.OutOfScope,
		noMoveForward:         in.NoMoveForward,
		reasons:               domain.NonBlank(in.NoMoveForwardReasons),
		roleWho:               s.Role.Who.Selected,
		roleWhoOther:          s.Role.Who.Other,
		roleSkills:            s.Role.Skills.Selected,
		roleSkillsOther:       s.Role.Skills.Other,
		roleDeveloper:         s.Role.Developer.Selected,
		roleDevOther:          s.Role.Developer.Other,
		stakeholders:          map[string]*string{},
		stakeholderOther:      s.Stakeholders.Other,
		groups:                map[string]*groupAnswer{},
		goNoGo:                s.Observability.GoNoGo,
		additionalLogic:       s.Observability.AdditionalLogicEnabled,
		additionalLogicText:   s.Observability.AdditionalLogicText,
		orchestration:         s.Orchestration.Choice,
		orchDetails:           s.Orchestration.Details,
		devices:               s.Collector.Devices,
		metrics:               s.Collector.Metrics,
		cadence:               s.Collector.Cadence,
		dependencyDetails:     map[string]*string{},
		buildBuy:              s.Timeline.BuildBuy,
		staffCount:            strconv.Itoa(s.Timeline.StaffCount),
		externalStaffCount:    strconv.Itoa(s.Timeline.ExternalStaffCount),
		staffingPlan:          s.Timeline.StaffingPlan,
		holidayRegion:         s.Timeline.HolidayRegion,
		milestones:            formatMilestones(s.Timeline.Milestones),
		base:                  s,
	}
	if domain.IsSentinel(a.orchestration) {
		a.orchestration = ""
	}
	if s.Timeline.StartDate != nil {
		a.startDate = s.Timeline.StartDate.Format(scheduler.DateLayout)
	}

	if cat != nil {
		for _, sc := range cat.Stakeholders {
			v := s.Stakeholders.Choices[sc.Name]
			a.stakeholders[sc.Name] = &v
		}
	}

	for _, g := range catalog.Groups() {
		og := formstate.GroupState(&s, g)
		ga := &groupAnswer{
			selected: append([]string(nil), og.Selected...),
			extra:    append([]string(nil), og.Extra...),
		}
		if og.CustomEnabled {
			ga.custom = og.Custom
		}
		a.groups[g.ID] = ga
	}

	for _, dep := range catalog.Dependencies {
		v := ""
		a.dependencyDetails[dep.Key] = &v
	}
	for _, sel := range s.Dependencies {
		if d, ok := a.dependencyDetails[sel.Key]; ok {
			a.dependencies = append(a.dependencies, sel.Key)
			*d = sel.Details
		}
	}
	return a
}

// apply returns the base state updated with every answer.
func (a *wizardAnswers) apply() domain.FormState {
	s := a.base

	s.Initiative = domain.Initiative{
		Author:                a.author,
		Title:                 a.title,
		Description:           a.description,
		Category:              domain.Choice{Selected: a.category, Other: a.categoryOther},
		ProblemStatement:      a.problem,
		ExpectedUse:           a.expectedUse,
		ErrorConditions:       a.errorConditions,
		Assumptions:           a.assumptions,
		DeploymentStrategy:    domain.Choice{Selected: a.deployment, Other: a.deploymentOther},
		DeploymentDescription: a.deploymentDescription,
		OutOfScope:            a.outOfScope,
		NoMoveForward:         a.noMoveForward,
		NoMoveForwardReasons:  append([]string{}, a.reasons...),
	}
	s.Role = domain.Role{
		Who:       domain.Choice{Selected: a.roleWho, Other: a.roleWhoOther},
		Skills:    domain.Choice{Selected: a.roleSkills, Other: a.roleSkillsOther},
		Developer: domain.Choice{Selected: a.roleDeveloper, Other: a.roleDevOther},
	}

	choices := make(map[string]string, len(a.base.Stakeholders.Choices))
	for k, v := range a.base.Stakeholders.Choices {
		choices[k] = v
	}
	for name, v := range a.stakeholders {
		if *v == "" {
			if prev := choices[name]; prev != "" && !domain.IsSentinel(prev) {
				delete(choices, name)
			}
			continue
		}
		choices[name] = *v
	}
	s.Stakeholders = domain.Stakeholders{Choices: choices, Other: a.stakeholderOther}

	for _, g := range catalog.Groups() {
		ga := a.groups[g.ID]
		*formstate.GroupState(&s, g) = domain.OptionGroup{
			Selected:      append([]string{}, ga.selected...),
			Extra:         append([]string{}, ga.extra...),
			CustomEnabled: g.HasCustom() && strings.TrimSpace(ga.custom) != "",
			Custom:        ga.custom,
		}
	}

	s.Observability.GoNoGo = a.goNoGo
	s.Observability.AdditionalLogicEnabled = a.additionalLogic
	s.Observability.AdditionalLogicText = a.additionalLogicText
	s.Orchestration = domain.Orchestration{Choice: a.orchestration, Details: a.orchDetails}
	s.Collector.Devices = a.devices
	s.Collector.Metrics = a.metrics
	s.Collector.Cadence = a.cadence

	picked := make(map[string]bool, len(a.dependencies))
	for _, k := range a.dependencies {
		picked[k] = true
	}
	deps := []domain.DependencySelection{}
	for _, dep := range catalog.Dependencies {
		if picked[dep.Key] {
			deps = append(deps, domain.DependencySelection{Key: dep.Key, Details: *a.dependencyDetails[dep.Key]})
		}
	}
	for _, sel := range a.base.Dependencies {
		if _, known := a.dependencyDetails[sel.Key]; !known {
			deps = append(deps, sel)
		}
	}
	s.Dependencies = deps

	s.Timeline.StartDate = nil
	if d, err := scheduler.ParseDate(strings.TrimSpace(a.startDate)); err == nil {
		s.Timeline.StartDate = &d
	}
	s.Timeline.BuildBuy = a.buildBuy
	s.Timeline.StaffCount = atoiOrZero(a.staffCount)
	s.Timeline.ExternalStaffCount = atoiOrZero(a.externalStaffCount)
	s.Timeline.StaffingPlan = a.staffingPlan
	s.Timeline.HolidayRegion = a.holidayRegion
	s.Timeline.Milestones, _ = parseMilestones(a.milestones)
	return s
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return domain.NonNegative(n)
}

// formatMilestone renders a milestone as name:days[:notes].
func formatMilestone(m domain.Milestone) string {
	if m.Notes == "" {
		return fmt.Sprintf("%s:%d", m.Name, m.DurationBD)
	}
	return fmt.Sprintf("%s:%d:%s", m.Name, m.DurationBD, m.Notes)
}

func formatMilestones(ms []domain.Milestone) string {
	lines := make([]string, 0, len(ms))
	for _, m := range ms {
		lines = append(lines, formatMilestone(m))
	}
	return strings.Join(lines, "\n")
}

// parseMilestone reads name:days[:notes]. The name is trimmed; notes are
// kept as written.
func parseMilestone(s string) (domain.Milestone, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) < 2 {
		return domain.Milestone{}, fmt.Errorf("milestone %q: want name:days[:notes]", s)
	}
	days, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return domain.Milestone{}, fmt.Errorf("milestone %q: duration must be a whole number of business days", s)
	}
	m := domain.Milestone{Name: strings.TrimSpace(parts[0]), DurationBD: days}
	if len(parts) == 3 {
		m.Notes = parts[2]
	}
	return m, nil
}

// parseMilestones reads one milestone per line, skipping blank lines. The
// milestones parsed before the first bad line are returned with the error.
func parseMilestones(text string) ([]domain.Milestone, error) {
	out := []domain.Milestone{}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m, err := parseMilestone(line)
		if err != nil {
			return out, err
		}
		out = append(out, m)
	}
	return out, nil
}
