// File: calendar.go
// Title: Calendar Arithmetic
// Description: Gregorian calendar arithmetic and comparisons in a fixed zone.
//              Month and year shifts clamp to the last day of the target month.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package timex

import (
	"time"
)

// Calendar performs date arithmetic in one zone
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

// NewCalendar returns a calendar for loc (local time when nil)
func NewCalendar(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.Local
	}
	return &Calendar{loc: loc, now: time.Now}
}

// WithNow returns a copy whose notion of the current instant is now
func (c *Calendar) WithNow(now func() time.Time) *Calendar {
	clone := *c
	clone.now = now
	return &clone
}

// Location returns the calendar zone
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Date builds an instant from calendar fields; out-of-range fields normalize
// the way time.Date does. A nil loc means the calendar zone.
func (c *Calendar) Date(year int, month time.Month, day, hour, minute, second, nanosecond int, loc *time.Location) time.Time {
	if loc == nil {
		loc = c.loc
	}
	return time.Date(year, month, day, hour, minute, second, nanosecond, loc)
}

// AddDays moves t by n calendar days, keeping the wall clock
func (c *Calendar) AddDays(t time.Time, n int) time.Time {
	t = t.In(c.loc)
	return time.Date(t.Year(), t.Month(), t.Day()+n, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), c.loc)
}

// AddMonths moves t by n months, clamping the day to the target month
func (c *Calendar) AddMonths(t time.Time, n int) time.Time {
	t = t.In(c.loc)
	total := int(t.Month()) - 1 + n
	year := t.Year() + floorDiv(total, 12)
	month := time.Month(total - floorDiv(total, 12)*12 + 1)
	day := t.Day()
	if last := daysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), c.loc)
}

// AddYears moves t by n years; Feb 29 becomes Feb 28 in common years
func (c *Calendar) AddYears(t time.Time, n int) time.Time {
	return c.AddMonths(t, 12*n)
}

// Yesterday returns t one calendar day earlier
func (c *Calendar) Yesterday(t time.Time) time.Time {
	return c.AddDays(t, -1)
}

// Tomorrow returns t one calendar day later
func (c *Calendar) Tomorrow(t time.Time) time.Time {
	return c.AddDays(t, 1)
}

// IsSameDay reports whether a and b fall on the same calendar day
func (c *Calendar) IsSameDay(a, b time.Time) bool {
	a, b = a.In(c.loc), b.In(c.loc)
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// IsYesterday reports whether t falls on the day before today
func (c *Calendar) IsYesterday(t time.Time) bool {
	return c.IsSameDay(t, c.Yesterday(c.now()))
}

// IsTomorrow reports whether t falls on the day after today
func (c *Calendar) IsTomorrow(t time.Time) bool {
	return c.IsSameDay(t, c.Tomorrow(c.now()))
}

// IsBefore reports whether t lies before ref. Equal instants report inclusive.
func (c *Calendar) IsBefore(t, ref time.Time, inclusive bool) bool {
	if t.Equal(ref) {
		return inclusive
	}
	return t.Before(ref)
}

// IsFuture reports whether t lies after ref. Equal instants report inclusive.
func (c *Calendar) IsFuture(t, ref time.Time, inclusive bool) bool {
	if t.Equal(ref) {
		return inclusive
	}
	return t.After(ref)
}

// IsIn reports whether t lies between from and to
func (c *Calendar) IsIn(t, from, to time.Time, inclusive bool) bool {
	return c.IsFuture(t, from, inclusive) && c.IsBefore(t, to, inclusive)
}

// ComponentSet selects calendar fields for Components
type ComponentSet uint

const (
	ComponentEra ComponentSet = 1 << iota
	ComponentYear
	ComponentMonth
	ComponentDay
	ComponentHour
	ComponentMinute
	ComponentSecond
	ComponentNanosecond
	ComponentWeekday
	ComponentYearDay

	ComponentDate = ComponentYear | ComponentMonth | ComponentDay
	ComponentTime = ComponentHour | ComponentMinute | ComponentSecond
	ComponentAll  = ComponentEra | ComponentDate | ComponentTime | ComponentNanosecond | ComponentWeekday | ComponentYearDay
)

// Has reports whether every bit of other is set
func (s ComponentSet) Has(other ComponentSet) bool {
	return s&other == other
}

// Components holds the fields requested from Calendar.Components; fields
// that were not requested stay zero
type Components struct {
	Set        ComponentSet
	Era        int // 0 before the common era, 1 otherwise
	Year       int // year of era
	Month      time.Month
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
	Weekday    time.Weekday
	YearDay    int
}

// Components splits t into the fields in set, in the calendar zone
func (c *Calendar) Components(t time.Time, set ComponentSet) Components {
	t = t.In(c.loc)
	out := Components{Set: set}
	if set.Has(ComponentEra) {
		out.Era = 1
		if t.Year() <= 0 {
			out.Era = 0
		}
	}
	if set.Has(ComponentYear) {
		out.Year = eraYear(t.Year())
	}
	if set.Has(ComponentMonth) {
		out.Month = t.Month()
	}
	if set.Has(ComponentDay) {
		out.Day = t.Day()
	}
	if set.Has(ComponentHour) {
		out.Hour = t.Hour()
	}
	if set.Has(ComponentMinute) {
		out.Minute = t.Minute()
	}
	if set.Has(ComponentSecond) {
		out.Second = t.Second()
	}
	if set.Has(ComponentNanosecond) {
		out.Nanosecond = t.Nanosecond()
	}
	if set.Has(ComponentWeekday) {
		out.Weekday = t.Weekday()
	}
	if set.Has(ComponentYearDay) {
		out.YearDay = t.YearDay()
	}
	return out
}

// StartOfDay returns midnight of the day t falls on
func (c *Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc)
}

// DaysBetween counts calendar days from start to end; negative when end is
// earlier
func (c *Calendar) DaysBetween(start, end time.Time) int {
	s, e := start.In(c.loc), end.In(c.loc)
	sd := time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, time.UTC)
	ed := time.Date(e.Year(), e.Month(), e.Day(), 0, 0, 0, 0, time.UTC)
	return int(ed.Sub(sd).Hours() / 24)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
