package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddBusinessDays_SkipsWeekend(t *testing.T) {
	got := AddBusinessDays(day(2024, 1, 1), 5, nil)
	assert.Equal(t, day(2024, 1, 8), got)
}

func TestAddBusinessDays_ZeroIsIdentity(t *testing.T) {
	start := day(2024, 1, 6) // Saturday
	assert.Equal(t, start, AddBusinessDays(start, 0, nil))
	assert.Equal(t, start, AddBusinessDays(start, -3, nil))
}

func TestAddBusinessDays_HolidayConsumesExtraDay(t *testing.T) {
	holidays := NewHolidaySet(day(2024, 1, 3))
	without := AddBusinessDays(day(2024, 1, 1), 5, nil)
	with := AddBusinessDays(day(2024, 1, 1), 5, holidays)

	assert.Equal(t, day(2024, 1, 8), without)
	assert.Equal(t, day(2024, 1, 9), with)
}

func TestAddBusinessDays_HolidayOnWeekendIsFree(t *testing.T) {
	holidays := NewHolidaySet(day(2024, 1, 6))
	assert.Equal(t, day(2024, 1, 8), AddBusinessDays(day(2024, 1, 1), 5, holidays))
}

func TestAddBusinessDays_StartFromWeekend(t *testing.T) {
	// Saturday + 1 business day lands on Monday.
	assert.Equal(t, day(2024, 1, 8), AddBusinessDays(day(2024, 1, 6), 1, nil))
}

func TestAddBusinessDays_TimeOfDayIgnored(t *testing.T) {
	start := time.Date(2024, 1, 1, 17, 45, 0, 0, time.FixedZone("EST", -5*3600))
	assert.Equal(t, day(2024, 1, 2), AddBusinessDays(start, 1, nil))
}

func TestBusinessDaysBetween(t *testing.T) {
	assert.Equal(t, 5, BusinessDaysBetween(day(2024, 1, 1), day(2024, 1, 8), nil))
	assert.Equal(t, 0, BusinessDaysBetween(day(2024, 1, 8), day(2024, 1, 1), nil))
	assert.Equal(t, 4, BusinessDaysBetween(day(2024, 1, 1), day(2024, 1, 8), NewHolidaySet(day(2024, 1, 2))))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, day(2024, 2, 29), got)

	got, err = ParseDate("2024-03-01T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, day(2024, 3, 1), got)

	_, err = ParseDate("03/01/2024")
	assert.Error(t, err)
}

func TestHolidaySet(t *testing.T) {
	var empty HolidaySet
	assert.False(t, empty.Contains(day(2024, 12, 25)))

	hs := HolidaySet{}
	hs.Add(time.Date(2024, 12, 25, 9, 0, 0, 0, time.UTC), "Christmas Day")
	hs.Add(day(2024, 12, 25), "")
	hs.Add(day(2024, 1, 1), "New Year's Day")

	assert.True(t, hs.Contains(day(2024, 12, 25)))
	assert.Equal(t, "Christmas Day", hs.Name(day(2024, 12, 25)))

	sorted := hs.Sorted()
	require.Len(t, sorted, 2)
	assert.Equal(t, day(2024, 1, 1), sorted[0].Date)

	between := hs.Between(day(2024, 6, 1), day(2024, 12, 31))
	require.Len(t, between, 1)
	assert.Equal(t, "Christmas Day", between[0].Name)
}
