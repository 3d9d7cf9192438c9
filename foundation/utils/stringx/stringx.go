// File: stringx.go
// Title: Core String Utility Functions
// Description: Blank checks, defaults and rune-safe truncation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-14 v0.2.0: Added LimitLength for input fields

package stringx

import (
	"unicode"
	"unicode/utf8"
)

// IsEmpty reports whether s has zero length
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank reports whether s is empty or only whitespace
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// FromBlankDefault returns defaultValue when s is blank
func FromBlankDefault(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}

// Truncate shortens s to maxLen runes, ending with ellipsis when shortened
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	runes := []rune(s)
	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-ellipsisLen]) + ellipsis
}

// LimitLength cuts s to limit runes once its length reaches limit. The second
// result reports whether s was shortened. A negative limit disables the check.
func LimitLength(s string, limit int) (string, bool) {
	if limit < 0 {
		return s, false
	}
	if utf8.RuneCountInString(s) < limit {
		return s, false
	}
	runes := []rune(s)
	if len(runes) == limit {
		return s, false
	}
	return string(runes[:limit]), true
}
