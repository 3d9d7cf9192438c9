// File: formatter.go
// Title: Date Formatter
// Description: Formats and parses dates under a descriptor and a locale
//              context. A Formatter carries no mutable state and is safe for
//              concurrent use.
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

	"github.com/msto63/sparrow/foundation/core/i18n"
)

// Formatter formats and parses dates. The zero value is ready to use.
type Formatter struct {
	// Now anchors two-digit year expansion; time.Now when nil
	Now func() time.Time
}

func (f Formatter) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

// Resolve returns the concrete pattern a descriptor stands for in ctx. A nil
// descriptor means DefaultStyles. The result is "" when nothing can be
// rendered, which formats as "" and never parses.
func (f Formatter) Resolve(d Descriptor, ctx i18n.Context) string {
	data := dataFor(ctx)
	switch v := d.(type) {
	case nil:
		return stylesPattern(DefaultStyles(), data)
	case Pattern:
		return string(v)
	case Template:
		return resolveTemplate(string(v), data)
	case Styles:
		return stylesPattern(v, data)
	}
	return ""
}

// Format renders t in the zone and locale of ctx
func (f Formatter) Format(t time.Time, d Descriptor, ctx i18n.Context) string {
	pattern := f.Resolve(d, ctx)
	if pattern == "" {
		return ""
	}
	return formatTokens(ctx.In(t), tokenize(pattern), dataFor(ctx))
}

// Parse reads text written in the form d describes. Fields missing from the
// pattern default to 2000-01-01 00:00:00 in the zone of ctx. The second
// result is false when the text does not fit the pattern exactly.
func (f Formatter) Parse(text string, d Descriptor, ctx i18n.Context) (time.Time, bool) {
	pattern := f.Resolve(d, ctx)
	if pattern == "" {
		return time.Time{}, false
	}
	return parseTokens(text, tokenize(pattern), dataFor(ctx), ctx.Location(), f.now())
}

func stylesPattern(s Styles, data *localeData) string {
	if !validStyle(s.Date) || !validStyle(s.Time) {
		return ""
	}
	date := data.datePatterns[s.Date]
	tm := data.timePatterns[s.Time]
	switch {
	case s.Date == StyleNone && s.Time == StyleNone:
		return ""
	case s.Time == StyleNone:
		return date
	case s.Date == StyleNone:
		return tm
	}
	return glue(data.glue[s.Date], date, tm)
}

func validStyle(s Style) bool {
	return s >= StyleNone && s <= StyleFull
}

var defaultFormatter Formatter

// Format renders t with the zero Formatter
func Format(t time.Time, d Descriptor, ctx i18n.Context) string {
	return defaultFormatter.Format(t, d, ctx)
}

// Parse parses text with the zero Formatter
func Parse(text string, d Descriptor, ctx i18n.Context) (time.Time, bool) {
	return defaultFormatter.Parse(text, d, ctx)
}

// Resolve resolves d with the zero Formatter
func Resolve(d Descriptor, ctx i18n.Context) string {
	return defaultFormatter.Resolve(d, ctx)
}
