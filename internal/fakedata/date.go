package fakedata

import (
	"fmt"
	"time"
)

// DateLayout is the human-readable layout used by Date.Formatted.
const DateLayout = "Jan 2, 2006"

// Date generates calendar values relative to the Faker's clock.
type Date struct{ f *Faker }

// Recent returns a date between daysAgo days ago and today, uniform over
// whole-day offsets.
func (d Date) Recent(daysAgo int) (time.Time, error) {
	if err := checkCount("date.recent", "daysAgo", daysAgo); err != nil {
		return time.Time{}, err
	}
	return d.f.today().AddDate(0, 0, -d.f.between(0, daysAgo)), nil
}

// Future returns a date between today and daysAhead days from now.
func (d Date) Future(daysAhead int) (time.Time, error) {
	if err := checkCount("date.future", "daysAhead", daysAhead); err != nil {
		return time.Time{}, err
	}
	return d.f.today().AddDate(0, 0, d.f.between(0, daysAhead)), nil
}

// Formatted renders t as "Mon D, YYYY". A nil t formats a recent date.
func (d Date) Formatted(t *time.Time) string {
	if t == nil {
		recent, _ := d.Recent(DefaultRecentDays)
		return recent.Format(DateLayout)
	}
	return t.Format(DateLayout)
}

// Time returns a clock time such as "9:05 AM".
func (d Date) Time() string {
	hour := d.f.between(1, 12)
	minute := d.f.between(0, 59)
	period := "AM"
	if index(d.f.src, 2) == 1 {
		period = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, period)
}
