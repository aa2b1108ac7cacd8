package calendar

import "time"

// rule yields the holiday date for a year. ok is false when the holiday
// does not occur that year.
type rule struct {
	name     string
	date     func(year int) (d time.Time, ok bool)
	observed observance
}

// observance moves a holiday that lands on a weekend.
type observance int

const (
	asIs observance = iota
	// nearestWeekday moves Saturday to Friday and Sunday to Monday (US federal).
	nearestWeekday
	// nextMonday moves Saturday and Sunday to the following Monday.
	nextMonday
)

func date(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func fixed(month time.Month, d int) func(int) (time.Time, bool) {
	return func(year int) (time.Time, bool) { return date(year, month, d), true }
}

func fixedFrom(month time.Month, d, firstYear int) func(int) (time.Time, bool) {
	return func(year int) (time.Time, bool) {
		if year < firstYear {
			return time.Time{}, false
		}
		return date(year, month, d), true
	}
}

// nthWeekday is the nth given weekday of month (n >= 1).
func nthWeekday(month time.Month, wd time.Weekday, n int) func(int) (time.Time, bool) {
	return func(year int) (time.Time, bool) {
		d := date(year, month, 1)
		offset := (int(wd) - int(d.Weekday()) + 7) % 7
		return d.AddDate(0, 0, offset+7*(n-1)), true
	}
}

// lastWeekday is the last given weekday of month.
func lastWeekday(month time.Month, wd time.Weekday) func(int) (time.Time, bool) {
	return func(year int) (time.Time, bool) {
		d := date(year, month+1, 1).AddDate(0, 0, -1)
		offset := (int(d.Weekday()) - int(wd) + 7) % 7
		return d.AddDate(0, 0, -offset), true
	}
}

// weekdayBefore is the last given weekday strictly before month/day.
func weekdayBefore(month time.Month, day int, wd time.Weekday) func(int) (time.Time, bool) {
	return func(year int) (time.Time, bool) {
		d := date(year, month, day).AddDate(0, 0, -1)
		offset := (int(d.Weekday()) - int(wd) + 7) % 7
		return d.AddDate(0, 0, -offset), true
	}
}

// easterOffset is Western Easter Sunday shifted by days.
func easterOffset(days int) func(int) (time.Time, bool) {
	return func(year int) (time.Time, bool) {
		return Easter(year).AddDate(0, 0, days), true
	}
}

// Easter returns Western Easter Sunday (anonymous Gregorian algorithm).
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return date(year, time.Month(month), day)
}

func (o observance) apply(d time.Time) time.Time {
	switch o {
	case nearestWeekday:
		switch d.Weekday() {
		case time.Saturday:
			return d.AddDate(0, 0, -1)
		case time.Sunday:
			return d.AddDate(0, 0, 1)
		}
	case nextMonday:
		switch d.Weekday() {
		case time.Saturday:
			return d.AddDate(0, 0, 2)
		case time.Sunday:
			return d.AddDate(0, 0, 1)
		}
	}
	return d
}
