// File: numberx.go
// Title: Number Formatting and Parsing
// Description: Formats and parses numbers under a decimal pattern and the
//              locale of a context.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Exact integer formatting

package numberx

import (
	"math"
	"math/bits"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/msto63/sparrow/foundation/core/i18n"
)

// DefaultPattern is used when a caller gives no pattern
const DefaultPattern = "#,##0.###"

// Formatter formats and parses numbers. The zero value is ready to use and
// safe for concurrent use.
type Formatter struct{}

// Format renders v under pattern p. It reports false when p has no digit
// placeholder or v is not finite.
func (Formatter) Format(v float64, p string, ctx i18n.Context) (string, bool) {
	if p == "" {
		p = DefaultPattern
	}
	pat, ok := compile(p)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return "", false
	}

	v *= pat.multiplier
	negative := v < 0 && roundAt(-v, pat.maxFrac) != 0
	return pat.render(math.Abs(v), negative, ctx), true
}

// FormatInteger renders an integer kind under pattern p without a float
// round trip, so values beyond 2^53 keep every digit. It reports false when
// v is not an integer kind or p has no digit placeholder.
func (f Formatter) FormatInteger(v interface{}, p string, ctx i18n.Context) (string, bool) {
	abs, negative, ok := magnitude(v)
	if !ok {
		return "", false
	}
	if p == "" {
		p = DefaultPattern
	}
	pat, ok := compile(p)
	if !ok {
		return "", false
	}
	if pat.multiplier != 1 {
		hi, lo := bits.Mul64(abs, uint64(pat.multiplier))
		if hi != 0 {
			n, _ := ToFloat(v)
			return f.Format(n, p, ctx)
		}
		abs = lo
	}
	return pat.render(abs, negative && abs != 0, ctx), true
}

// render prints the unsigned magnitude abs with the pattern's digit rules
// and literals
func (pat pattern) render(abs interface{}, negative bool, ctx i18n.Context) string {
	opts := []number.Option{
		number.MinIntegerDigits(pat.minInt),
		number.MinFractionDigits(pat.minFrac),
		number.MaxFractionDigits(pat.maxFrac),
	}
	if !pat.grouping {
		opts = append(opts, number.NoSeparator())
	}
	digits := message.NewPrinter(ctx.Tag()).Sprint(number.Decimal(abs, opts...))

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(pat.prefix)
	b.WriteString(digits)
	b.WriteString(pat.suffix)
	return b.String()
}

// Parse reads text written under pattern p. It reports false when the text
// does not carry the literal prefix and suffix or is not a number.
func (Formatter) Parse(text string, p string, ctx i18n.Context) (float64, bool) {
	if p == "" {
		p = DefaultPattern
	}
	pat, ok := compile(p)
	if !ok {
		return 0, false
	}

	s := strings.TrimSpace(text)
	negative := false
	if rest, ok := trimMinus(s); ok {
		negative, s = true, rest
	}
	if !strings.HasPrefix(s, pat.prefix) || !strings.HasSuffix(s, pat.suffix) || len(s) < len(pat.prefix)+len(pat.suffix) {
		return 0, false
	}
	s = s[len(pat.prefix) : len(s)-len(pat.suffix)]
	if rest, ok := trimMinus(s); ok && !negative {
		negative, s = true, rest
	}

	body, ok := normalize(s, symbolsFor(ctx.Tag()))
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(body, 64)
	if err != nil {
		return 0, false
	}
	v /= pat.multiplier
	if negative {
		v = -v
	}
	return v, true
}

func trimMinus(s string) (string, bool) {
	for _, minus := range []string{"-", "−"} {
		if strings.HasPrefix(s, minus) {
			return s[len(minus):], true
		}
	}
	return s, false
}

// normalize strips grouping and rewrites the decimal separator so that the
// result is an unsigned decimal literal
func normalize(s string, sym symbols) (string, bool) {
	if sym.group != "" {
		s = strings.ReplaceAll(s, sym.group, "")
		if isSpaceSeparator(sym.group) {
			s = strings.Map(func(r rune) rune {
				if unicode.IsSpace(r) {
					return -1
				}
				return r
			}, s)
		}
	}
	if sym.decimal != "." {
		if strings.Contains(s, ".") {
			return "", false
		}
		s = strings.Replace(s, sym.decimal, ".", 1)
	}

	digits, dots := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return "", false
		}
	}
	return s, digits > 0 && dots <= 1
}

func isSpaceSeparator(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func roundAt(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

var defaultFormatter Formatter

// Format renders v under pattern p with the locale of ctx
func Format(v float64, p string, ctx i18n.Context) (string, bool) {
	return defaultFormatter.Format(v, p, ctx)
}

// FormatInteger renders an integer kind under pattern p with the locale of ctx
func FormatInteger(v interface{}, p string, ctx i18n.Context) (string, bool) {
	return defaultFormatter.FormatInteger(v, p, ctx)
}

// Parse reads text under pattern p with the locale of ctx
func Parse(text string, p string, ctx i18n.Context) (float64, bool) {
	return defaultFormatter.Parse(text, p, ctx)
}

// ToFloat converts the built-in numeric kinds to float64
func ToFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// magnitude splits an integer kind into its absolute value and sign
func magnitude(v interface{}) (abs uint64, negative bool, ok bool) {
	switch n := v.(type) {
	case int:
		return signedMagnitude(int64(n))
	case int8:
		return signedMagnitude(int64(n))
	case int16:
		return signedMagnitude(int64(n))
	case int32:
		return signedMagnitude(int64(n))
	case int64:
		return signedMagnitude(n)
	case uint:
		return uint64(n), false, true
	case uint8:
		return uint64(n), false, true
	case uint16:
		return uint64(n), false, true
	case uint32:
		return uint64(n), false, true
	case uint64:
		return n, false, true
	}
	return 0, false, false
}

func signedMagnitude(n int64) (uint64, bool, bool) {
	if n < 0 {
		// -(n+1) stays in range for MinInt64
		return uint64(-(n + 1)) + 1, true, true
	}
	return uint64(n), false, true
}
