// File: substring.go
// Title: Clamped Substrings
// Description: Rune-indexed substring operations whose bounds are clamped to the
//              string instead of panicking.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package stringx

import (
	"unicode/utf16"
)

// Substring returns the runes in [from, to). Bounds are clamped to [0, len];
// an inverted range yields "".
func Substring(s string, from, to int) string {
	runes := []rune(s)
	from = clamp(from, 0, len(runes))
	to = clamp(to, 0, len(runes))
	if from >= to {
		return ""
	}
	return string(runes[from:to])
}

// SubstringClosed returns the runes in [from, through]
func SubstringClosed(s string, from, through int) string {
	return Substring(s, from, through+1)
}

// SubstringFrom returns the runes from index from to the end
func SubstringFrom(s string, from int) string {
	return Substring(s, from, len([]rune(s)))
}

// SubstringUpTo returns the runes before index to
func SubstringUpTo(s string, to int) string {
	return Substring(s, 0, to)
}

// SubstringUTF16 returns length UTF-16 code units starting at location, the
// indexing used by text ranges reported from UTF-16 based APIs. The range is
// clamped; a split surrogate pair decodes to U+FFFD.
func SubstringUTF16(s string, location, length int) string {
	units := utf16.Encode([]rune(s))
	from := clamp(location, 0, len(units))
	to := clamp(location+length, from, len(units))
	return string(utf16.Decode(units[from:to]))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
