package scheduler

import (
	"strings"
	"time"

	"github.com/alexanderramin/nafwizard/internal/domain"
)

// ScheduledMilestone is a milestone placed on the calendar.
type ScheduledMilestone struct {
	Name       string
	DurationBD int
	Notes      string
	Start      time.Time
	End        time.Time
}

// Plan is the output of Schedule.
type Plan struct {
	Start             time.Time
	Items             []ScheduledMilestone
	TotalBusinessDays int
	// ProjectedCompletion is the end of the last item, nil when there are
	// no items.
	ProjectedCompletion *time.Time
}

// Schedule lays milestones end to end starting at start. Each item starts
// where the previous one ended. Rows with no name and no duration are
// skipped; a nameless row that has a duration is kept as "(Unnamed)".
// Negative durations count as zero.
func Schedule(start time.Time, milestones []domain.Milestone, holidays HolidaySet) Plan {
	plan := Plan{Start: DateOf(start), Items: []ScheduledMilestone{}}
	cursor := plan.Start

	for _, m := range milestones {
		name := strings.TrimSpace(m.Name)
		dur := domain.NonNegative(m.DurationBD)
		if name == "" && dur == 0 {
			continue
		}
		if name == "" {
			name = domain.UnnamedMilestone
		}
		end := AddBusinessDays(cursor, dur, holidays)
		plan.Items = append(plan.Items, ScheduledMilestone{
			Name:       name,
			DurationBD: dur,
			Notes:      m.Notes,
			Start:      cursor,
			End:        end,
		})
		plan.TotalBusinessDays += dur
		cursor = end
	}

	if n := len(plan.Items); n > 0 {
		end := plan.Items[n-1].End
		plan.ProjectedCompletion = &end
	}
	return plan
}
