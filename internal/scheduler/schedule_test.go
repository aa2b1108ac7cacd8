package scheduler

import (
	"testing"

	"github.com/alexanderramin/nafwizard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_ChainsMilestones(t *testing.T) {
	plan := Schedule(day(2024, 1, 1), []domain.Milestone{
		{Name: "Planning", DurationBD: 5},
		{Name: "Design", DurationBD: 10, Notes: "HLD + LLD"},
	}, nil)

	require.Len(t, plan.Items, 2)
	assert.Equal(t, day(2024, 1, 1), plan.Items[0].Start)
	assert.Equal(t, day(2024, 1, 8), plan.Items[0].End)
	assert.Equal(t, day(2024, 1, 8), plan.Items[1].Start)
	assert.Equal(t, day(2024, 1, 22), plan.Items[1].End)
	assert.Equal(t, "HLD + LLD", plan.Items[1].Notes)
	assert.Equal(t, 15, plan.TotalBusinessDays)
	require.NotNil(t, plan.ProjectedCompletion)
	assert.Equal(t, day(2024, 1, 22), *plan.ProjectedCompletion)
}

func TestSchedule_SkipsBlankRows(t *testing.T) {
	plan := Schedule(day(2024, 1, 1), []domain.Milestone{
		{Name: "", DurationBD: 0},
		{Name: "  ", DurationBD: 0, Notes: "ignored"},
		{Name: "Kickoff", DurationBD: 0},
		{Name: "", DurationBD: 2},
	}, nil)

	require.Len(t, plan.Items, 2)
	assert.Equal(t, "Kickoff", plan.Items[0].Name)
	assert.Equal(t, plan.Items[0].Start, plan.Items[0].End)
	assert.Equal(t, domain.UnnamedMilestone, plan.Items[1].Name)
	assert.Equal(t, 2, plan.TotalBusinessDays)
}

func TestSchedule_NegativeDurationClamped(t *testing.T) {
	plan := Schedule(day(2024, 1, 1), []domain.Milestone{{Name: "Oops", DurationBD: -4}}, nil)
	require.Len(t, plan.Items, 1)
	assert.Equal(t, 0, plan.Items[0].DurationBD)
	assert.Equal(t, 0, plan.TotalBusinessDays)
}

func TestSchedule_Empty(t *testing.T) {
	plan := Schedule(day(2024, 1, 1), nil, nil)
	assert.Empty(t, plan.Items)
	assert.NotNil(t, plan.Items)
	assert.Nil(t, plan.ProjectedCompletion)
	assert.Zero(t, plan.TotalBusinessDays)
}

func TestSchedule_HolidayPushesLaterMilestones(t *testing.T) {
	holidays := NewHolidaySet(day(2024, 1, 15))
	plan := Schedule(day(2024, 1, 1), []domain.Milestone{
		{Name: "Planning", DurationBD: 5},
		{Name: "Design", DurationBD: 10},
	}, holidays)

	assert.Equal(t, day(2024, 1, 8), plan.Items[0].End)
	assert.Equal(t, day(2024, 1, 23), plan.Items[1].End)
}
