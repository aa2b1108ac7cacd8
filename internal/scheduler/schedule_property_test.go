package scheduler

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/nafwizard/internal/domain"
	"github.com/stretchr/testify/assert"
)

// TestAddBusinessDays_Invariants property-tests the walk: the result is a
// business day (for n > 0), never before start, and exactly n business days
// lie between start and the result.
func TestAddBusinessDays_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 300; trial++ {
		start := day(2024, 1, 1).AddDate(0, 0, rng.Intn(730))
		n := rng.Intn(40)

		holidays := HolidaySet{}
		for i := 0; i < rng.Intn(6); i++ {
			holidays.Add(start.AddDate(0, 0, rng.Intn(60)), "")
		}

		end := AddBusinessDays(start, n, holidays)

		assert.False(t, end.Before(start), "trial %d: end before start", trial)
		assert.Equal(t, n, BusinessDaysBetween(start, end, holidays),
			"trial %d: business days between start and end", trial)
		if n > 0 {
			assert.True(t, IsBusinessDay(end, holidays), "trial %d: %s is not a business day", trial, end.Format(DateLayout))
		}
	}
}

// TestSchedule_Invariants checks contiguity and totals over random plans.
func TestSchedule_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		start := day(2025, 1, 1).AddDate(0, 0, rng.Intn(365))
		var milestones []domain.Milestone
		want := 0
		for i := 0; i < rng.Intn(8); i++ {
			m := domain.Milestone{DurationBD: rng.Intn(15)}
			if rng.Intn(4) > 0 {
				m.Name = "M" + string(rune('A'+i))
			}
			if m.Name != "" || m.DurationBD > 0 {
				want += m.DurationBD
			}
			milestones = append(milestones, m)
		}

		plan := Schedule(start, milestones, nil)

		assert.Equal(t, want, plan.TotalBusinessDays, "trial %d", trial)
		prev := plan.Start
		for i, item := range plan.Items {
			assert.Equal(t, prev, item.Start, "trial %d item %d: start must equal previous end", trial, i)
			assert.Equal(t, AddBusinessDays(item.Start, item.DurationBD, nil), item.End)
			prev = item.End
		}
		if len(plan.Items) == 0 {
			assert.Nil(t, plan.ProjectedCompletion)
		} else {
			assert.Equal(t, prev, *plan.ProjectedCompletion)
			assert.False(t, prev.Before(start))
		}
	}
}
