// Package numberx formats and parses numbers with positive-format decimal
// patterns rendered through the separators of a locale.
//
// Package: numberx
// Title: Locale-Aware Number Patterns
// Description: A pattern such as "#,##0.00", "0.0%" or "'No.' 000" fixes the
//              literal prefix and suffix, grouping, the minimum integer digits
//              and the fraction digit range. Digits and separators come from
//              golang.org/x/text for the locale of the context, so the same
//              pattern renders "1,234.50" in en_US and "1.234,50" in de_DE.
//              Only the positive subpattern is used; negative values get a
//              leading minus.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
//
// Usage:
//   s, ok := numberx.Format(1234.5, "#,##0.00", i18n.GMT())   // "1,234.50"
//   v, ok := numberx.Parse("12.5%", "0.0%", i18n.GMT())        // 0.125
package numberx
