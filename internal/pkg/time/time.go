// Package time holds the calendar-date helpers shared by the API and the client.
//
// Memo dates travel as dd/mm/yyyy strings. They are parsed into time.Time
// values only to compare or validate them; the string form is what gets
// stored and sent.
package time

import (
	"fmt"
	"time"
)

// DateLayout is the dd/mm/yyyy layout of memo dates.
const DateLayout = "02/01/2006"

// FormatDate renders the calendar date of t in loc.
func FormatDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DateLayout)
}

// ParseDate parses a dd/mm/yyyy string as midnight in loc.
// Dates that do not exist, such as 31/02/2026, are rejected.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// IsDate reports whether s is a valid dd/mm/yyyy date.
func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// StartOfDay truncates t to midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// LoadLocation resolves an IANA zone name. An empty name or "Local"
// yields the process local zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", name, err)
	}
	return loc, nil
}
