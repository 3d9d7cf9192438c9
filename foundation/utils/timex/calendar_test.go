// File: calendar_test.go
// Title: Unit Tests for Calendar Arithmetic
// Description: Tests day, month and year shifts, relative-day checks,
//              comparisons, components and flexible input parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial test implementation

package timex

import (
	"testing"
	"time"

	mdwerror "github.com/msto63/sparrow/foundation/core/error"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestCalendarShifts(t *testing.T) {
	cal := NewCalendar(time.UTC)

	tests := []struct {
		name string
		got  time.Time
		want time.Time
	}{
		{"tomorrow across month", cal.Tomorrow(date(2024, 1, 31)), date(2024, 2, 1)},
		{"yesterday across year", cal.Yesterday(date(2024, 1, 1)), date(2023, 12, 31)},
		{"add days negative", cal.AddDays(date(2024, 3, 1), -1), date(2024, 2, 29)},
		{"month clamps in leap year", cal.AddMonths(date(2024, 1, 31), 1), date(2024, 2, 29)},
		{"month clamps in common year", cal.AddMonths(date(2023, 1, 31), 1), date(2023, 2, 28)},
		{"months backwards across year", cal.AddMonths(date(2024, 1, 15), -13), date(2022, 12, 15)},
		{"month before clamps", cal.AddMonths(date(2024, 3, 31), -1), date(2024, 2, 29)},
		{"leap day plus year", cal.AddYears(date(2024, 2, 29), 1), date(2025, 2, 28)},
		{"years backwards", cal.AddYears(date(2024, 6, 1), -4), date(2020, 6, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("got %v; want %v", tt.got, tt.want)
			}
		})
	}
}

func TestCalendarKeepsZone(t *testing.T) {
	zone := time.FixedZone("JST", 9*3600)
	cal := NewCalendar(zone)

	// 2024-01-31 20:00 UTC is already Feb 1 in Tokyo
	got := cal.AddMonths(time.Date(2024, 1, 31, 20, 0, 0, 0, time.UTC), 1)
	want := time.Date(2024, 3, 1, 5, 0, 0, 0, zone)
	if !got.Equal(want) {
		t.Errorf("AddMonths = %v; want %v", got, want)
	}
	if got.Location() != zone {
		t.Errorf("location = %v; want %v", got.Location(), zone)
	}
}

func TestCalendarRelativeDays(t *testing.T) {
	now := time.Date(2024, 5, 10, 23, 30, 0, 0, time.UTC)
	cal := NewCalendar(time.UTC).WithNow(func() time.Time { return now })

	if !cal.IsYesterday(date(2024, 5, 9)) {
		t.Error("May 9 should be yesterday")
	}
	if cal.IsYesterday(date(2024, 5, 10)) {
		t.Error("May 10 should not be yesterday")
	}
	if !cal.IsTomorrow(time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)) {
		t.Error("midnight May 11 should be tomorrow")
	}
	if cal.IsTomorrow(date(2024, 5, 12)) {
		t.Error("May 12 should not be tomorrow")
	}
}

func TestCalendarComparisons(t *testing.T) {
	cal := NewCalendar(time.UTC)
	a, b, c := date(2024, 1, 1), date(2024, 1, 2), date(2024, 1, 3)

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"before", cal.IsBefore(a, b, false), true},
		{"not before", cal.IsBefore(b, a, false), false},
		{"equal exclusive before", cal.IsBefore(a, a, false), false},
		{"equal inclusive before", cal.IsBefore(a, a, true), true},
		{"future", cal.IsFuture(b, a, false), true},
		{"equal exclusive future", cal.IsFuture(a, a, false), false},
		{"equal inclusive future", cal.IsFuture(a, a, true), true},
		{"in", cal.IsIn(b, a, c, false), true},
		{"edge exclusive", cal.IsIn(a, a, c, false), false},
		{"edge inclusive", cal.IsIn(c, a, c, true), true},
		{"outside", cal.IsIn(c, a, b, true), false},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v; want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestCalendarComponents(t *testing.T) {
	cal := NewCalendar(time.FixedZone("JST", 9*3600))
	in := time.Date(2024, 12, 31, 20, 15, 30, 42, time.UTC)

	got := cal.Components(in, ComponentDate|ComponentHour|ComponentWeekday)
	if got.Year != 2025 || got.Month != time.January || got.Day != 1 {
		t.Errorf("date = %d-%d-%d; want 2025-1-1", got.Year, got.Month, got.Day)
	}
	if got.Hour != 5 {
		t.Errorf("Hour = %d; want 5", got.Hour)
	}
	if got.Weekday != time.Wednesday {
		t.Errorf("Weekday = %v; want Wednesday", got.Weekday)
	}
	if got.Minute != 0 || got.Nanosecond != 0 {
		t.Errorf("unrequested fields should stay zero: %+v", got)
	}

	era := cal.Components(time.Date(-43, 3, 15, 0, 0, 0, 0, time.UTC), ComponentEra|ComponentYear)
	if era.Era != 0 || era.Year != 44 {
		t.Errorf("era components = %d/%d; want 0/44", era.Era, era.Year)
	}
}

func TestCalendarDate(t *testing.T) {
	cal := NewCalendar(time.UTC)
	got := cal.Date(2024, time.February, 30, 0, 0, 0, 0, nil)
	if want := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("Date normalizes to %v; want %v", got, want)
	}
	if d := cal.DaysBetween(date(2024, 1, 1), date(2024, 3, 1)); d != 60 {
		t.Errorf("DaysBetween = %d; want 60", d)
	}
	if d := cal.DaysBetween(date(2024, 3, 1), date(2024, 1, 1)); d != -60 {
		t.Errorf("DaysBetween reversed = %d; want -60", d)
	}
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2024-01-05", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"2024-01-05 09:30", time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC)},
		{"2024-01-05T09:30:00+09:00", time.Date(2024, 1, 5, 0, 30, 0, 0, time.UTC)},
		{"05.01.2024", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"20240105", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"@0", time.Unix(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseInput(tt.input, nil)
			if err != nil {
				t.Fatalf("ParseInput(%q) failed: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseInput(%q) = %v; want %v", tt.input, got, tt.want)
			}
		})
	}

	for _, bad := range []string{"", "yesterday-ish", "@abc"} {
		_, err := ParseInput(bad, nil)
		if err == nil {
			t.Errorf("ParseInput(%q) should fail", bad)
			continue
		}
		if mdwerror.GetCode(err) != mdwerror.CodeInvalidInput && mdwerror.GetCode(err) != mdwerror.CodeInvalidFormat {
			t.Errorf("ParseInput(%q) code = %v", bad, mdwerror.GetCode(err))
		}
	}
}

func TestParseShift(t *testing.T) {
	cal := NewCalendar(time.UTC)
	base := date(2024, 1, 31)

	tests := []struct {
		input string
		want  time.Time
	}{
		{"3d", date(2024, 2, 3)},
		{"-2w", date(2024, 1, 17)},
		{"+1 month", date(2024, 2, 29)},
		{"1mo", date(2024, 2, 29)},
		{"10 years", date(2034, 1, 31)},
		{"-1y", date(2023, 1, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s, err := ParseShift(tt.input)
			if err != nil {
				t.Fatalf("ParseShift(%q) failed: %v", tt.input, err)
			}
			if got := s.Apply(cal, base); !got.Equal(tt.want) {
				t.Errorf("%q applied = %v; want %v", tt.input, got, tt.want)
			}
		})
	}

	for _, bad := range []string{"", "d", "3 fortnights", "x3d"} {
		if _, err := ParseShift(bad); !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
			t.Errorf("ParseShift(%q) err = %v; want invalid format", bad, err)
		}
	}
}
