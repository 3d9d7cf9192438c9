// File: pattern.go
// Title: Decimal Pattern Compiler
// Description: Compiles a positive-format decimal pattern into its prefix,
//              suffix and digit constraints.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package numberx

import (
	"strings"
)

// pattern is a compiled decimal pattern
type pattern struct {
	prefix     string
	suffix     string
	minInt     int
	minFrac    int
	maxFrac    int
	grouping   bool
	multiplier float64
}

const (
	percentSign  = '%'
	permilleSign = '‰'
)

// compile reads the positive subpattern of p. It reports false when p has
// no digit placeholder.
func compile(p string) (pattern, bool) {
	out := pattern{multiplier: 1}
	var (
		prefix, suffix strings.Builder
		state          int // 0 prefix, 1 number, 2 suffix
		inFraction     bool
		zeros, digits  int
		quoted         bool
	)

	runes := []rune(p)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		literal := &prefix
		if state == 2 {
			literal = &suffix
		}

		if r == '\'' {
			if i+1 < len(runes) && runes[i+1] == '\'' {
				if state == 1 {
					state = 2
					literal = &suffix
				}
				literal.WriteRune('\'')
				i++
				continue
			}
			quoted = !quoted
			if state == 1 {
				state = 2
			}
			continue
		}
		if quoted {
			if state == 1 {
				state = 2
				literal = &suffix
			}
			literal.WriteRune(r)
			continue
		}
		if r == ';' {
			break
		}

		switch {
		case state < 2 && (r == '#' || r == '0' || (state == 1 && (r == ',' || r == '.'))):
			state = 1
			switch r {
			case '.':
				inFraction = true
			case ',':
				if !inFraction {
					out.grouping = true
				}
			case '0':
				if inFraction {
					out.minFrac++
					out.maxFrac++
				} else {
					zeros++
				}
				digits++
			case '#':
				if inFraction {
					out.maxFrac++
				}
				digits++
			}
		default:
			if state == 1 {
				state = 2
				literal = &suffix
			}
			switch r {
			case percentSign:
				out.multiplier = 100
			case permilleSign:
				out.multiplier = 1000
			}
			literal.WriteRune(r)
		}
	}

	if digits == 0 {
		return pattern{}, false
	}
	out.minInt = zeros
	if out.minInt == 0 {
		out.minInt = 1
	}
	out.prefix = prefix.String()
	out.suffix = suffix.String()
	return out, true
}
