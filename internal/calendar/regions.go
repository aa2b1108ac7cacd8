// Package calendar provides public holiday calendars for the regions the
// timeline editor offers. The sets are national holidays only; regional
// and state observances are not modelled.
package calendar

import (
	"fmt"
	"time"

	"github.com/alexanderramin/nafwizard/internal/scheduler"
)

// Region names as shown in the timeline editor.
const (
	RegionNone          = "None"
	RegionUnitedStates  = "United States"
	RegionCanada        = "Canada"
	RegionUnitedKingdom = "United Kingdom"
	RegionGermany       = "Germany"
	RegionIndia         = "India"
	RegionAustralia     = "Australia"
)

// Regions lists the selectable regions in display order.
func Regions() []string {
	return []string{
		RegionNone,
		RegionUnitedStates,
		RegionCanada,
		RegionUnitedKingdom,
		RegionGermany,
		RegionIndia,
		RegionAustralia,
	}
}

var calendars = map[string][]rule{
	RegionUnitedStates: {
		{name: "New Year's Day", date: fixed(time.January, 1), observed: nearestWeekday},
		{name: "Martin Luther King Jr. Day", date: nthWeekday(time.January, time.Monday, 3)},
		{name: "Washington's Birthday", date: nthWeekday(time.February, time.Monday, 3)},
		{name: "Memorial Day", date: lastWeekday(time.May, time.Monday)},
		{name: "Juneteenth National Independence Day", date: fixedFrom(time.June, 19, 2021), observed: nearestWeekday},
		{name: "Independence Day", date: fixed(time.July, 4), observed: nearestWeekday},
		{name: "Labor Day", date: nthWeekday(time.September, time.Monday, 1)},
		{name: "Columbus Day", date: nthWeekday(time.October, time.Monday, 2)},
		{name: "Veterans Day", date: fixed(time.November, 11), observed: nearestWeekday},
		{name: "Thanksgiving", date: nthWeekday(time.November, time.Thursday, 4)},
		{name: "Christmas Day", date: fixed(time.December, 25), observed: nearestWeekday},
	},
	RegionCanada: {
		{name: "New Year's Day", date: fixed(time.January, 1), observed: nextMonday},
		{name: "Good Friday", date: easterOffset(-2)},
		{name: "Victoria Day", date: weekdayBefore(time.May, 25, time.Monday)},
		{name: "Canada Day", date: fixed(time.July, 1), observed: nextMonday},
		{name: "Labour Day", date: nthWeekday(time.September, time.Monday, 1)},
		{name: "Thanksgiving", date: nthWeekday(time.October, time.Monday, 2)},
		{name: "Christmas Day", date: fixed(time.December, 25), observed: nextMonday},
	},
	RegionUnitedKingdom: {
		{name: "New Year's Day", date: fixed(time.January, 1), observed: nextMonday},
		{name: "Good Friday", date: easterOffset(-2)},
		{name: "Easter Monday", date: easterOffset(1)},
		{name: "May Day", date: nthWeekday(time.May, time.Monday, 1)},
		{name: "Spring Bank Holiday", date: lastWeekday(time.May, time.Monday)},
		{name: "Late Summer Bank Holiday", date: lastWeekday(time.August, time.Monday)},
		{name: "Christmas Day", date: fixed(time.December, 25), observed: nextMonday},
		{name: "Boxing Day", date: fixed(time.December, 26), observed: nextMonday},
	},
	RegionGermany: {
		{name: "Neujahr", date: fixed(time.January, 1)},
		{name: "Karfreitag", date: easterOffset(-2)},
		{name: "Ostermontag", date: easterOffset(1)},
		{name: "Erster Mai", date: fixed(time.May, 1)},
		{name: "Christi Himmelfahrt", date: easterOffset(39)},
		{name: "Pfingstmontag", date: easterOffset(50)},
		{name: "Tag der Deutschen Einheit", date: fixed(time.October, 3)},
		{name: "Erster Weihnachtstag", date: fixed(time.December, 25)},
		{name: "Zweiter Weihnachtstag", date: fixed(time.December, 26)},
	},
	RegionIndia: {
		{name: "Republic Day", date: fixed(time.January, 26)},
		{name: "Independence Day", date: fixed(time.August, 15)},
		{name: "Gandhi Jayanti", date: fixed(time.October, 2)},
	},
	RegionAustralia: {
		{name: "New Year's Day", date: fixed(time.January, 1), observed: nextMonday},
		{name: "Australia Day", date: fixed(time.January, 26), observed: nextMonday},
		{name: "Good Friday", date: easterOffset(-2)},
		{name: "Easter Monday", date: easterOffset(1)},
		{name: "ANZAC Day", date: fixed(time.April, 25)},
		{name: "Christmas Day", date: fixed(time.December, 25), observed: nextMonday},
		{name: "Boxing Day", date: fixed(time.December, 26), observed: nextMonday},
	},
}

// Holidays returns the holiday set for region covering startYear through
// startYear+yearsAhead inclusive. "None" and "" give an empty set.
func Holidays(region string, startYear, yearsAhead int) (scheduler.HolidaySet, error) {
	set := scheduler.HolidaySet{}
	if region == "" || region == RegionNone {
		return set, nil
	}
	rules, ok := calendars[region]
	if !ok {
		return set, fmt.Errorf("%w: %q", ErrUnknownRegion, region)
	}
	if yearsAhead < 0 {
		yearsAhead = 0
	}
	for year := startYear; year <= startYear+yearsAhead; year++ {
		for _, r := range rules {
			d, ok := r.date(year)
			if !ok {
				continue
			}
			set.Add(d, r.name)
			if obs := r.observed.apply(d); !obs.Equal(d) {
				set.Add(obs, r.name+" (observed)")
			}
		}
	}
	fixBoxingDayClash(set, region, startYear, yearsAhead)
	return set, nil
}

// fixBoxingDayClash handles UK/AU weekends where Christmas and Boxing Day
// would be observed on the same Monday; the second one moves to Tuesday 28th
// or 27th.
func fixBoxingDayClash(set scheduler.HolidaySet, region string, startYear, yearsAhead int) {
	if region != RegionUnitedKingdom && region != RegionAustralia {
		return
	}
	for year := startYear; year <= startYear+yearsAhead; year++ {
		xmas := date(year, time.December, 25)
		switch xmas.Weekday() {
		case time.Saturday:
			set.Add(date(year, time.December, 28), "Boxing Day (observed)")
		case time.Sunday:
			set.Add(date(year, time.December, 27), "Christmas Day (observed)")
		}
	}
}

// HolidaysOrEmpty is Holidays with unknown regions mapped to an empty set.
func HolidaysOrEmpty(region string, startYear, yearsAhead int) scheduler.HolidaySet {
	set, err := Holidays(region, startYear, yearsAhead)
	if err != nil {
		return scheduler.HolidaySet{}
	}
	return set
}

// Provider adapts the package to the builder's holiday lookup.
type Provider struct {
	// YearsAhead is how many years past the start year to cover.
	YearsAhead int
}

// HolidaysFor implements wizard.HolidayProvider. Unknown regions yield an
// empty set so the timeline still schedules.
func (p Provider) HolidaysFor(region string, start time.Time) scheduler.HolidaySet {
	return HolidaysOrEmpty(region, start.Year(), p.YearsAhead)
}
