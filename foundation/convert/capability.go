// File: capability.go
// Title: Capability Interfaces
// Description: The services the conversion helper delegates to. Each has a
//              library-backed default; tests substitute deterministic fakes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package convert

import (
	"net/url"
	"time"

	"github.com/msto63/sparrow/foundation/core/i18n"
	"github.com/msto63/sparrow/foundation/utils/digestx"
	"github.com/msto63/sparrow/foundation/utils/numberx"
	"github.com/msto63/sparrow/foundation/utils/regexx"
	"github.com/msto63/sparrow/foundation/utils/timex"
)

// TextFormatter converts dates and numbers to and from text
type TextFormatter interface {
	FormatDate(t time.Time, d timex.Descriptor, ctx i18n.Context) string
	ParseDate(text string, d timex.Descriptor, ctx i18n.Context) (time.Time, bool)
	FormatNumber(v float64, pattern string, ctx i18n.Context) (string, bool)
	ParseNumber(text, pattern string, ctx i18n.Context) (float64, bool)
}

// IntegerFormatter is implemented by formatters that render integer kinds
// without converting them to float64
type IntegerFormatter interface {
	FormatInteger(v interface{}, pattern string, ctx i18n.Context) (string, bool)
}

// PatternMatcher evaluates regular expressions
type PatternMatcher interface {
	MatchExact(text, pattern string, opts ...regexx.Options) bool
	MatchAny(text, pattern string, opts ...regexx.Options) bool
	ExtractAll(text, pattern string, opts ...regexx.Options) []string
	ReplaceAll(text, pattern, replacement string) string
}

// EntityDetector finds links and phone numbers
type EntityDetector interface {
	Links(text string) []*url.URL
	PhoneNumbers(text string) []string
}

// CalendarArithmetic shifts and compares dates
type CalendarArithmetic interface {
	AddDays(t time.Time, n int) time.Time
	AddMonths(t time.Time, n int) time.Time
	AddYears(t time.Time, n int) time.Time
	IsYesterday(t time.Time) bool
	IsTomorrow(t time.Time) bool
	IsBefore(t, ref time.Time, inclusive bool) bool
	IsFuture(t, ref time.Time, inclusive bool) bool
	IsIn(t, from, to time.Time, inclusive bool) bool
	Components(t time.Time, set timex.ComponentSet) timex.Components
}

// DigestProvider hashes byte buffers
type DigestProvider interface {
	Sum(data []byte, a digestx.Algorithm) []byte
}

// StandardFormatter is the default TextFormatter over timex and numberx
type StandardFormatter struct {
	Dates   timex.Formatter
	Numbers numberx.Formatter
}

// FormatDate renders t under d
func (f StandardFormatter) FormatDate(t time.Time, d timex.Descriptor, ctx i18n.Context) string {
	return f.Dates.Format(t, d, ctx)
}

// ParseDate parses text under d
func (f StandardFormatter) ParseDate(text string, d timex.Descriptor, ctx i18n.Context) (time.Time, bool) {
	return f.Dates.Parse(text, d, ctx)
}

// FormatNumber renders v under pattern
func (f StandardFormatter) FormatNumber(v float64, pattern string, ctx i18n.Context) (string, bool) {
	return f.Numbers.Format(v, pattern, ctx)
}

// FormatInteger renders an integer kind under pattern
func (f StandardFormatter) FormatInteger(v interface{}, pattern string, ctx i18n.Context) (string, bool) {
	return f.Numbers.FormatInteger(v, pattern, ctx)
}

// ParseNumber parses text under pattern
func (f StandardFormatter) ParseNumber(text, pattern string, ctx i18n.Context) (float64, bool) {
	return f.Numbers.Parse(text, pattern, ctx)
}

var (
	_ TextFormatter      = StandardFormatter{}
	_ IntegerFormatter   = StandardFormatter{}
	_ PatternMatcher     = (*regexx.Matcher)(nil)
	_ CalendarArithmetic = (*timex.Calendar)(nil)
	_ DigestProvider     = digestx.Standard{}
)
