// File: input.go
// Title: Flexible Input Parsing
// Description: Reads instants and calendar shifts typed on the command line.
//              Instants are tried against a fixed list of common layouts;
//              shifts use business-friendly units.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2026-10-14 v0.2.0: Reduced to input parsing; added calendar shifts and coded errors

package timex

import (
	"strconv"
	"strings"
	"time"

	mdwerror "github.com/msto63/sparrow/foundation/core/error"
)

// Common input layouts, most specific first
var inputLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02.01.2006 15:04:05",
	"02.01.2006",
	"2.1.2006",
	"01/02/2006 15:04",
	"01/02/2006",
	"20060102150405",
	"20060102",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
}

// ParseInput reads an instant in one of the common layouts. Values without
// a zone are taken in loc (UTC when nil). "now" and unix seconds prefixed
// with "@" are accepted as well.
func ParseInput(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if loc == nil {
		loc = time.UTC
	}
	switch {
	case value == "":
		return time.Time{}, mdwerror.New("empty time string").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("timex.ParseInput")
	case strings.EqualFold(value, "now"):
		return time.Now().In(loc), nil
	case strings.HasPrefix(value, "@"):
		sec, err := strconv.ParseInt(value[1:], 10, 64)
		if err != nil {
			return time.Time{}, mdwerror.Wrap(err, "invalid unix timestamp").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("timex.ParseInput").
				WithDetail("value", value)
		}
		return time.Unix(sec, 0).In(loc), nil
	}

	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, mdwerror.New("unable to parse time string").
		WithCode(mdwerror.CodeInvalidFormat).
		WithOperation("timex.ParseInput").
		WithDetail("value", value)
}

// Unit is the unit of a calendar shift
type Unit int

const (
	UnitDay Unit = iota
	UnitWeek
	UnitMonth
	UnitYear
)

// Shift is a signed calendar offset such as "-3 days" or "+1m"
type Shift struct {
	Amount int
	Unit   Unit
}

var shiftUnits = map[string]Unit{
	"d": UnitDay, "day": UnitDay,
	"w": UnitWeek, "week": UnitWeek,
	"m": UnitMonth, "mo": UnitMonth, "month": UnitMonth,
	"y": UnitYear, "year": UnitYear,
}

// ParseShift reads "3d", "-2w", "+1 month" or "10 years"
func ParseShift(value string) (Shift, error) {
	s := strings.ToLower(strings.TrimSpace(value))
	end := 0
	for end < len(s) && (s[end] == '+' || s[end] == '-' || (s[end] >= '0' && s[end] <= '9')) {
		end++
	}
	amount, err := strconv.Atoi(s[:end])
	unitName := strings.TrimSpace(s[end:])
	if len(unitName) > 2 {
		unitName = strings.TrimSuffix(unitName, "s")
	}
	unit, ok := shiftUnits[unitName]
	if err != nil || !ok {
		return Shift{}, mdwerror.New("unable to parse calendar shift").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("timex.ParseShift").
			WithDetail("value", value)
	}
	return Shift{Amount: amount, Unit: unit}, nil
}

// Apply moves t by the shift in calendar c
func (s Shift) Apply(c *Calendar, t time.Time) time.Time {
	switch s.Unit {
	case UnitWeek:
		return c.AddDays(t, 7*s.Amount)
	case UnitMonth:
		return c.AddMonths(t, s.Amount)
	case UnitYear:
		return c.AddYears(t, s.Amount)
	}
	return c.AddDays(t, s.Amount)
}
