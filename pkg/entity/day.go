package entity

import (
	"time"
)

// DayLayout is the wire format of a calendar day.
const DayLayout = time.DateOnly

// Day is a user-local calendar date in YYYY-MM-DD form.
// It is never derived from a UTC date unless the user's timezone is UTC.
type Day string

func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return "", err
	}
	return Day(t.Format(DayLayout)), nil
}

// DayIn returns the calendar day of t as observed in loc.
func DayIn(t time.Time, loc *time.Location) Day {
	if loc == nil {
		loc = time.UTC
	}
	return Day(t.In(loc).Format(DayLayout))
}

// AddDays shifts the day by n calendar days. An unparsable day is returned unchanged.
func (d Day) AddDays(n int) Day {
	t, err := time.Parse(DayLayout, string(d))
	if err != nil {
		return d
	}
	return Day(t.AddDate(0, 0, n).Format(DayLayout))
}

// DaysUntil returns the number of calendar days from d to other (negative if other is earlier).
func (d Day) DaysUntil(other Day) int {
	a, errA := time.Parse(DayLayout, string(d))
	b, errB := time.Parse(DayLayout, string(other))
	if errA != nil || errB != nil {
		return 0
	}
	return int(b.Sub(a).Hours() / 24)
}

func (d Day) Before(other Day) bool {
	return d < other
}

func (d Day) After(other Day) bool {
	return d > other
}

func (d Day) String() string {
	return string(d)
}

// Time returns midnight UTC of the day for use as a DATE value. It is not an instant.
func (d Day) Time() time.Time {
	t, err := time.Parse(DayLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}
