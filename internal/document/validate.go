package document

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/nafwizard/internal/calendar"
	"github.com/alexanderramin/nafwizard/internal/domain"
	"github.com/alexanderramin/nafwizard/internal/scheduler"
)

// Validate checks a document for problems a restore would silently paper
// over. It returns every problem found; an empty result means the document
// is consistent. Nothing here blocks a restore.
func Validate(doc *Document) []error {
	var errs []error

	errs = append(errs, validateInitiative(&doc.Initiative)...)
	errs = append(errs, validateRole(&doc.MyRole)...)
	errs = append(errs, validateOrchestration(&doc.Orchestration)...)
	errs = append(errs, validateDependencies(doc.Dependencies)...)
	errs = append(errs, validateTimeline(&doc.Timeline)...)

	return errs
}

func validateInitiative(in *Initiative) []error {
	var errs []error
	for field, v := range map[string]string{
		"initiative.category":            in.Category,
		"initiative.deployment_strategy": in.DeploymentStrategy,
	} {
		if domain.IsSentinel(v) {
			errs = append(errs, fmt.Errorf("%s: placeholder %q stored as a value", field, v))
		}
	}
	if slices.Contains(in.NoMoveForwardReasons, domain.SentinelRisks) {
		errs = append(errs, fmt.Errorf("initiative.no_move_forward_reasons: placeholder %q stored as a value", domain.SentinelRisks))
	}
	return sortErrors(errs)
}

func validateRole(r *MyRole) []error {
	var errs []error
	for _, f := range []struct{ name, value string }{
		{"my_role.who", r.Who},
		{"my_role.skills", r.Skills},
		{"my_role.developer", r.Developer},
	} {
		if domain.IsSentinel(f.value) {
			errs = append(errs, fmt.Errorf("%s: placeholder %q stored as a value", f.name, f.value))
		}
		if f.value == domain.OtherRoleMarker {
			errs = append(errs, fmt.Errorf("%s: %q stored instead of the free-text answer", f.name, f.value))
		}
	}
	return errs
}

func validateOrchestration(o *Orchestration) []error {
	if domain.IsSentinel(o.Selections.Choice) {
		return []error{fmt.Errorf("orchestration.selections.choice: placeholder %q stored as a value", o.Selections.Choice)}
	}
	return nil
}

func validateDependencies(deps []Dependency) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, d := range deps {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			errs = append(errs, fmt.Errorf("dependencies[%d].name is required", i))
			continue
		}
		if seen[name] {
			errs = append(errs, fmt.Errorf("dependencies[%d]: duplicate name %q", i, name))
		}
		seen[name] = true
	}
	return errs
}

func validateTimeline(tl *Timeline) []error {
	var errs []error

	if tl.StartDate != "" {
		if _, err := scheduler.ParseDate(tl.StartDate); err != nil {
			errs = append(errs, fmt.Errorf("timeline.start_date: invalid date format %q (expected YYYY-MM-DD)", tl.StartDate))
		}
	}
	if tl.StaffCount < 0 {
		errs = append(errs, fmt.Errorf("timeline.staff_count must be >= 0, got %d", tl.StaffCount))
	}
	if tl.ExternalStaffCount < 0 {
		errs = append(errs, fmt.Errorf("timeline.external_staff_count must be >= 0, got %d", tl.ExternalStaffCount))
	}
	if tl.HolidayRegion != "" && !slices.Contains(calendar.Regions(), tl.HolidayRegion) {
		errs = append(errs, fmt.Errorf("timeline.holiday_region: unknown region %q", tl.HolidayRegion))
	}

	total := 0
	var lastEnd string
	for i, item := range tl.Items {
		prefix := fmt.Sprintf("timeline.items[%d]", i)
		if item.DurationBD < 0 {
			errs = append(errs, fmt.Errorf("%s.duration_bd must be >= 0, got %d", prefix, item.DurationBD))
		}
		total += domain.NonNegative(item.DurationBD)

		start, startErr := scheduler.ParseDate(item.Start)
		end, endErr := scheduler.ParseDate(item.End)
		if item.Start != "" && startErr != nil {
			errs = append(errs, fmt.Errorf("%s.start: invalid date format %q", prefix, item.Start))
		}
		if item.End != "" && endErr != nil {
			errs = append(errs, fmt.Errorf("%s.end: invalid date format %q", prefix, item.End))
		}
		if startErr == nil && endErr == nil && end.Before(start) {
			errs = append(errs, fmt.Errorf("%s: end %s is before start %s", prefix, item.End, item.Start))
		}
		lastEnd = item.End
	}
	if len(tl.Items) > 0 && tl.TotalBusinessDays != total {
		errs = append(errs, fmt.Errorf("timeline.total_business_days is %d but items sum to %d", tl.TotalBusinessDays, total))
	}
	switch {
	case len(tl.Items) == 0 && tl.ProjectedCompletion != nil:
		errs = append(errs, fmt.Errorf("timeline.projected_completion set without items"))
	case len(tl.Items) > 0 && tl.ProjectedCompletion != nil && *tl.ProjectedCompletion != lastEnd:
		errs = append(errs, fmt.Errorf("timeline.projected_completion %q does not match last item end %q", *tl.ProjectedCompletion, lastEnd))
	}
	return errs
}

func sortErrors(errs []error) []error {
	slices.SortFunc(errs, func(a, b error) int { return strings.Compare(a.Error(), b.Error()) })
	return errs
}
