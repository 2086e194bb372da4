package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Singapore is SGT, UTC+8 with no daylight saving.
var Singapore = time.FixedZone("SGT", 8*60*60)

// DefaultBallotDays is the cron day-of-week field for weekends.
const DefaultBallotDays = "SAT,SUN"

// Date returns midnight of t's civil date in loc.
func Date(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// AddDays moves a civil date by n calendar days.
func AddDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

// TargetDate is the civil date leadDays after now, read in loc.
func TargetDate(now time.Time, loc *time.Location, leadDays int) time.Time {
	return AddDays(Date(now, loc), leadDays)
}

// DayGate decides whether a moment falls on one of the configured weekdays.
type DayGate struct {
	days     string
	dow      uint64
	location *time.Location
}

// ParseDayGate builds a gate from a cron day-of-week field like "SAT,SUN" or "0,6".
func ParseDayGate(days string, loc *time.Location) (DayGate, error) {
	days = strings.TrimSpace(days)
	if days == "" {
		days = DefaultBallotDays
	}
	if strings.ContainsAny(days, " \t") {
		return DayGate{}, fmt.Errorf("invalid day field %q: must not contain spaces", days)
	}

	sched, err := cron.ParseStandard("0 0 * * " + days)
	if err != nil {
		return DayGate{}, fmt.Errorf("parse day field %q: %w", days, err)
	}
	spec, ok := sched.(*cron.SpecSchedule)
	if !ok {
		return DayGate{}, fmt.Errorf("invalid day field %q", days)
	}

	return DayGate{days: days, dow: spec.Dow, location: loc}, nil
}

// Allows reports whether t, read in the gate's zone, is a ballot day.
func (g DayGate) Allows(t time.Time) bool {
	if g.location != nil {
		t = t.In(g.location)
	}
	wd := t.Weekday()
	return g.dow&(1<<uint(wd)) != 0
}

func (g DayGate) String() string {
	return g.days
}
