// File: hex.go
// Title: Hexadecimal Scanning
// Description: Lenient hexadecimal scanning of leading digits.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package stringx

import (
	"math"
	"strings"
	"unicode"
)

// HexInt scans a hexadecimal unsigned integer from the start of s. Leading
// whitespace and an optional 0x/0X prefix are skipped, then the longest run of
// hex digits is consumed; trailing text is ignored. Values that overflow
// saturate at math.MaxUint32. It fails only when no digit is found.
func HexInt(s string) (uint32, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') && hexDigit(s[2]) >= 0 {
		s = s[2:]
	}

	var (
		value    uint64
		digits   int
		overflow bool
	)
	for i := 0; i < len(s); i++ {
		d := hexDigit(s[i])
		if d < 0 {
			break
		}
		digits++
		if overflow {
			continue
		}
		value = value<<4 | uint64(d)
		if value > math.MaxUint32 {
			overflow = true
		}
	}

	if digits == 0 {
		return 0, false
	}
	if overflow {
		return math.MaxUint32, true
	}
	return uint32(value), true
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}
