package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/nafwizard/internal/calendar"
	"github.com/alexanderramin/nafwizard/internal/catalog"
	"github.com/alexanderramin/nafwizard/internal/cli/formatter"
	"github.com/alexanderramin/nafwizard/internal/domain"
	"github.com/alexanderramin/nafwizard/internal/scheduler"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// wizardHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func wizardHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[x] ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// newWizardForm lays the whole wizard out as one huh form, one group per
// section. Every field binds to a member of a.
func newWizardForm(cat *catalog.Catalog, a *wizardAnswers) *huh.Form {
	groups := []*huh.Group{
		huh.NewGroup(
			requiredInput("Initiative title", &a.title),
			huh.NewText().Title("Description").Value(&a.description),
			huh.NewInput().Title("Author").Value(&a.author),
			choiceSelect("Category", domain.SentinelCategory,
				catalog.WithOther(cat.CategoryNames(), domain.OtherMarker), &a.category),
			otherInput("Category (other)", &a.categoryOther),
			huh.NewText().Title("Problem statement").Value(&a.problem),
		).Title("Initiative"),
		huh.NewGroup(
			huh.NewText().Title("Expected use").Value(&a.expectedUse),
			huh.NewText().Title("Error conditions").Value(&a.errorConditions),
			huh.NewText().Title("Assumptions").Value(&a.assumptions),
			choiceSelect("Deployment strategy", domain.SentinelDeployment,
				catalog.WithOther(cat.DeploymentNames(), domain.OtherMarker), &a.deployment),
			otherInput("Deployment strategy (other)", &a.deploymentOther),
			huh.NewText().Title("Deployment description").Value(&a.deploymentDescription),
			huh.NewText().Title("Out of scope").Value(&a.outOfScope),
		).Title("Scope and rollout"),
		huh.NewGroup(
			huh.NewText().Title("What happens if we do not move forward?").Value(&a.noMoveForward),
			stringMultiSelect("Risks of not moving forward", withCurrent(catalog.RiskReasons, a.reasons...), &a.reasons),
		).Title("Risk"),
		huh.NewGroup(
			choiceSelect("Who are you?", domain.SentinelSelectOne,
				catalog.WithOther(catalog.RoleWho, domain.OtherRoleMarker), &a.roleWho),
			otherInput("Who are you? (other)", &a.roleWhoOther),
			choiceSelect("Your skills", domain.SentinelSelectOne,
				catalog.WithOther(catalog.RoleSkills, domain.OtherRoleMarker), &a.roleSkills),
			otherInput("Your skills (other)", &a.roleSkillsOther),
			choiceSelect("Who will build it?", domain.SentinelSelectOne,
				catalog.WithOther(catalog.RoleDeveloper, domain.OtherRoleMarker), &a.roleDeveloper),
			otherInput("Who will build it? (other)", &a.roleDevOther),
		).Title("My role"),
		stakeholderGroup(cat, a),
	}

	for _, g := range catalog.Groups() {
		groups = append(groups, checkboxGroup(g, a.groups[g.ID]))
	}

	groups = append(groups,
		huh.NewGroup(
			huh.NewText().Title("Go/No-Go criteria").Value(&a.goNoGo),
			huh.NewConfirm().Title("Additional gating logic?").Affirmative(domain.LogicYes).Negative(domain.LogicNo).Value(&a.additionalLogic),
			huh.NewText().Title("Additional logic").Value(&a.additionalLogicText),
			choiceSelect("Orchestration", domain.SentinelSelectOne, catalog.OrchestrationOptions, &a.orchestration),
			huh.NewText().Title("Orchestration details").Value(&a.orchDetails),
		).Title("Observability and orchestration"),
		huh.NewGroup(
			huh.NewInput().Title("Number of devices").Value(&a.devices),
			huh.NewInput().Title("Number of metrics").Value(&a.metrics),
			huh.NewInput().Title("Collection cadence").Value(&a.cadence),
		).Title("Collection scale"),
		dependencyGroup(a),
		huh.NewGroup(
			dateInput("Start date (YYYY-MM-DD, blank for today)", "", &a.startDate),
			valueSelect("Build or buy", catalog.BuildBuyOptions, &a.buildBuy),
			countInput("Staff count", &a.staffCount),
			countInput("External staff count", &a.externalStaffCount),
			huh.NewText().Title("Staffing plan (markdown)").Value(&a.staffingPlan),
			valueSelect("Holiday region", calendar.Regions(), &a.holidayRegion),
			huh.NewText().
				Title("Milestones").
				Description("One per line: name:business days[:notes]").
				Lines(8).
				Value(&a.milestones).
				Validate(validateMilestones),
		).Title("Timeline"),
	)

	return huh.NewForm(groups...).WithTheme(wizardHuhTheme())
}

func stakeholderGroup(cat *catalog.Catalog, a *wizardAnswers) *huh.Group {
	fields := make([]huh.Field, 0, len(cat.Stakeholders)+1)
	for _, sc := range cat.Stakeholders {
		v, ok := a.stakeholders[sc.Name]
		if !ok {
			continue
		}
		fields = append(fields, choiceSelect(sc.Name, domain.SentinelSelectOne, sc.Options, v))
	}
	fields = append(fields, huh.NewText().Title("Other stakeholders").Value(&a.stakeholderOther))
	return huh.NewGroup(fields...).Title("Stakeholders")
}

func checkboxGroup(g catalog.Group, ga *groupAnswer) *huh.Group {
	fields := []huh.Field{stringMultiSelect(g.Label, withCurrent(g.Options, ga.selected...), &ga.selected)}
	if g.HasCustom() {
		desc := "Leave blank to use only the ticked options"
		if g.SplitCustom {
			desc = "Comma-separated; leave blank to use only the ticked options"
		}
		fields = append(fields, huh.NewInput().Title(g.Label+" (custom)").Description(desc).Value(&ga.custom))
	}
	return huh.NewGroup(fields...).Title(g.Label)
}

func dependencyGroup(a *wizardAnswers) *huh.Group {
	options := make([]huh.Option[string], 0, len(catalog.Dependencies))
	for _, d := range catalog.Dependencies {
		options = append(options, huh.NewOption(d.Label, d.Key))
	}
	fields := []huh.Field{
		huh.NewMultiSelect[string]().Title("Dependencies").Options(options...).Value(&a.dependencies),
	}
	for _, d := range catalog.Dependencies {
		fields = append(fields, huh.NewInput().
			Title(d.Label+" details").
			Description(d.Help).
			Placeholder(d.DefaultDetails).
			Value(a.dependencyDetails[d.Key]))
	}
	return huh.NewGroup(fields...).Title("Dependencies")
}

// withCurrent appends values missing from options so a select never drops
// an answer it cannot display.
func withCurrent(options []string, current ...string) []string {
	out := append([]string(nil), options...)
	for _, c := range current {
		if c == "" || domain.IsSentinel(c) {
			continue
		}
		found := false
		for _, o := range out {
			if o == c {
				found = true
				break
			}
		}
		if !found {
			out = append(out, c)
		}
	}
	return out
}

// validateMilestones checks every non-blank line parses.
func validateMilestones(s string) error {
	_, err := parseMilestones(s)
	return err
}

// validateNonNegativeInt accepts empty or a non-negative integer.
func validateNonNegativeInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := scheduler.ParseDate(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}
