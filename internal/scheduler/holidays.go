package scheduler

import (
	"sort"
	"time"
)

// HolidaySet is a set of non-working dates with an optional name for each.
// The zero value (nil) is an empty set.
type HolidaySet map[time.Time]string

// NewHolidaySet builds a set from bare dates.
func NewHolidaySet(dates ...time.Time) HolidaySet {
	hs := make(HolidaySet, len(dates))
	for _, d := range dates {
		hs.Add(d, "")
	}
	return hs
}

// Add marks d as a holiday. An existing name is kept when name is empty.
func (hs HolidaySet) Add(d time.Time, name string) {
	key := DateOf(d)
	if prev, ok := hs[key]; ok && name == "" {
		name = prev
	}
	hs[key] = name
}

// Contains reports whether d is a holiday. Safe on a nil set.
func (hs HolidaySet) Contains(d time.Time) bool {
	if hs == nil {
		return false
	}
	_, ok := hs[DateOf(d)]
	return ok
}

// Name returns the holiday name for d, or "".
func (hs HolidaySet) Name(d time.Time) string {
	return hs[DateOf(d)]
}

// Merge copies every entry of other into hs.
func (hs HolidaySet) Merge(other HolidaySet) {
	for d, name := range other {
		hs.Add(d, name)
	}
}

// Holiday is one entry of a HolidaySet in listing form.
type Holiday struct {
	Date time.Time
	Name string
}

// Sorted lists the set in date order.
func (hs HolidaySet) Sorted() []Holiday {
	out := make([]Holiday, 0, len(hs))
	for d, name := range hs {
		out = append(out, Holiday{Date: d, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Between returns the holidays falling in [from, to], in date order.
func (hs HolidaySet) Between(from, to time.Time) []Holiday {
	from, to = DateOf(from), DateOf(to)
	var out []Holiday
	for _, h := range hs.Sorted() {
		if h.Date.Before(from) || h.Date.After(to) {
			continue
		}
		out = append(out, h)
	}
	return out
}
