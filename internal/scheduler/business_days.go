package scheduler

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// DateOf truncates t to midnight UTC of its calendar day. All scheduler
// arithmetic happens on these normalized values.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string. Full RFC 3339 timestamps are also
// accepted and truncated to their date.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}

// IsBusinessDay reports whether d is Monday to Friday and not a holiday.
func IsBusinessDay(d time.Time, holidays HolidaySet) bool {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return !holidays.Contains(d)
}

// AddBusinessDays walks forward from start one calendar day at a time until
// n business days have been consumed. Weekends and holidays are stepped over
// without counting. n <= 0 returns start unchanged.
func AddBusinessDays(start time.Time, n int, holidays HolidaySet) time.Time {
	d := DateOf(start)
	for n > 0 {
		d = d.AddDate(0, 0, 1)
		if IsBusinessDay(d, holidays) {
			n--
		}
	}
	return d
}

// BusinessDaysBetween counts business days in (from, to]. It returns 0 when
// to is not after from.
func BusinessDaysBetween(from, to time.Time, holidays HolidaySet) int {
	from, to = DateOf(from), DateOf(to)
	count := 0
	for d := from.AddDate(0, 0, 1); !d.After(to); d = d.AddDate(0, 0, 1) {
		if IsBusinessDay(d, holidays) {
			count++
		}
	}
	return count
}
