// Package timex provides locale-aware date formatting and parsing plus
// Gregorian calendar arithmetic.
//
// Package: timex
// Title: Date Formatting and Calendar Utilities
// Description: Dates are rendered and parsed under a Descriptor: an explicit
//              Unicode date pattern ("yyyy-MM-dd HH:mm"), a pair of date/time
//              styles, or a template ("yMMMd") resolved to the locale's preferred
//              pattern. Formatting never fails; parsing reports (zero, false) when
//              text does not conform. A Calendar performs day/month/year shifts and
//              relative-day checks in a fixed zone.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2026-10-14 v0.2.0: Pattern engine, descriptors, templates and calendar
//
// Usage:
//   ctx := i18n.GMT()
//   s := timex.Format(t, timex.Pattern("yyyy-MM-dd'T'HH:mm:ssZZZZZ"), ctx)
//   d, ok := timex.Parse("2024-01-05", timex.Pattern("yyyy-MM-dd"), ctx)
//
//   ja, _ := i18n.NewContext("ja_JP", "Asia/Tokyo")
//   timex.Format(t, timex.Template("yMMMEd"), ja) // "2024年1月5日(金)"
//   timex.Format(t, timex.DefaultStyles(), ja)    // "2024/01/05 9:30:00"
//
// Pattern letters:
//   G era, y/Y/u year, Q/q quarter, M/L month, d day, D day of year,
//   E weekday, e/c local weekday, a AM/PM, h H k K hour, m minute,
//   s second, S fraction, z Z X x zone. Text in single quotes is literal,
//   '' is a quote.
package timex
