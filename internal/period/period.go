// Package period resolves aggregation windows (weekly, monthly, yearly)
// anchored to a reference instant. Every caller that needs a date range for
// a period label (expense filtering, stats, budget utilization) goes through
// Resolve so boundaries never disagree between views.
package period

import (
	"fmt"
	"time"
)

// Period is an aggregation window type.
type Period string

const (
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
	Yearly  Period = "yearly"
)

// Default is the period used when a request does not specify one.
const Default = Monthly

// Parse returns the Period for a query-string label. The empty string maps
// to Default; anything else unknown is an error.
func Parse(s string) (Period, error) {
	switch Period(s) {
	case "":
		return Default, nil
	case Weekly, Monthly, Yearly:
		return Period(s), nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// Valid reports whether p is one of the known period types.
func (p Period) Valid() bool {
	switch p {
	case Weekly, Monthly, Yearly:
		return true
	}
	return false
}

// Range is an inclusive date range. Start is the first instant of the first
// day and End the last nanosecond of the last day, so BETWEEN-style queries
// and Contains agree on boundaries.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the range, boundary-inclusive.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Resolve maps a period and a reference instant to its inclusive date range.
//
//   - Weekly: the Monday through Sunday week containing now. Weeks start on
//     Monday, so Sunday belongs to the week that began six days earlier.
//   - Monthly: first through last calendar day of now's month.
//   - Yearly: Jan 1 through Dec 31 of now's year.
func Resolve(p Period, now time.Time) Range {
	loc := now.Location()

	switch p {
	case Weekly:
		// Weekday() is Sunday-based; shift so Monday is offset 0.
		offset := (int(now.Weekday()) + 6) % 7
		start := time.Date(now.Year(), now.Month(), now.Day()-offset, 0, 0, 0, 0, loc)
		return Range{Start: start, End: endOfDay(start.AddDate(0, 0, 6))}
	case Yearly:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
		return Range{Start: start, End: endOfDay(time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, loc))}
	default: // Monthly
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return Range{Start: start, End: endOfDay(start.AddDate(0, 1, -1))}
	}
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}
