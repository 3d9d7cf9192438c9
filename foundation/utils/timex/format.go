// File: format.go
// Title: Pattern Rendering
// Description: Renders a time.Time through a tokenized date pattern using the
//              name tables of a locale.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package timex

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// formatTokens renders t, which must already be in the target zone
func formatTokens(t time.Time, tokens []token, d *localeData) string {
	n := namesFor(d)
	var b strings.Builder
	for _, tk := range tokens {
		if !tk.isField() {
			b.WriteString(tk.literal)
			continue
		}
		b.WriteString(formatField(t, tk, d, n))
	}
	return b.String()
}

func formatField(t time.Time, tk token, d *localeData, n *names) string {
	w := tk.width
	switch tk.letter {
	case 'G':
		era := 1
		if t.Year() <= 0 {
			era = 0
		}
		switch {
		case w == 4:
			return d.erasWide[era]
		case w >= 5:
			return firstRune(d.eras[era])
		}
		return d.eras[era]
	case 'y':
		return formatYear(eraYear(t.Year()), w)
	case 'Y':
		year, _ := t.ISOWeek()
		return formatYear(year, w)
	case 'u':
		return pad(t.Year(), w)
	case 'Q', 'q':
		q := (int(t.Month())-1)/3 + 1
		switch {
		case w <= 2:
			return pad(q, w)
		case w == 4:
			return n.quarters[1][q-1]
		case w >= 5:
			return strconv.Itoa(q)
		}
		return n.quarters[0][q-1]
	case 'M', 'L':
		if w <= 2 {
			return pad(int(t.Month()), w)
		}
		return n.month(t.Month(), widthOf(w))
	case 'd':
		return pad(t.Day(), w)
	case 'D':
		return pad(t.YearDay(), w)
	case 'E':
		if w == 6 {
			return n.weekday(t.Weekday(), widthAbbreviated)
		}
		return n.weekday(t.Weekday(), widthOf(w))
	case 'e', 'c':
		if w <= 2 {
			return pad(localWeekday(t.Weekday(), d), w)
		}
		return n.weekday(t.Weekday(), widthOf(w))
	case 'a':
		if t.Hour() < 12 {
			return d.am
		}
		return d.pm
	case 'h':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		return pad(h, w)
	case 'H':
		return pad(t.Hour(), w)
	case 'k':
		h := t.Hour()
		if h == 0 {
			h = 24
		}
		return pad(h, w)
	case 'K':
		return pad(t.Hour()%12, w)
	case 'm':
		return pad(t.Minute(), w)
	case 's':
		return pad(t.Second(), w)
	case 'S':
		return fraction(t.Nanosecond(), w)
	case 'z', 'Z', 'X', 'x', 'O':
		return formatZone(t, tk)
	}
	return strings.Repeat(string(tk.letter), w)
}

// eraYear maps proleptic years onto the 1-based year of their era
func eraYear(year int) int {
	if year <= 0 {
		return 1 - year
	}
	return year
}

func formatYear(year, width int) string {
	if width == 2 {
		return pad(year%100, 2)
	}
	return pad(year, width)
}

// localWeekday numbers the weekday from the locale's first day of the week
func localWeekday(wd time.Weekday, d *localeData) int {
	return (int(wd)-d.firstWeekday+7)%7 + 1
}

func pad(v, width int) string {
	if v < 0 {
		return "-" + pad(-v, width)
	}
	s := strconv.Itoa(v)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}

// fraction truncates nanoseconds to width digits
func fraction(nanos, width int) string {
	s := fmt.Sprintf("%09d", nanos)
	if width <= 9 {
		return s[:width]
	}
	return s + strings.Repeat("0", width-9)
}

func formatZone(t time.Time, tk token) string {
	name, offset := t.Zone()
	w := tk.width
	switch tk.letter {
	case 'z':
		if w >= 4 {
			return gmtFormat(offset, true)
		}
		if isZoneAbbreviation(name) {
			return name
		}
		return gmtFormat(offset, false)
	case 'Z':
		switch {
		case w == 4:
			return gmtFormat(offset, true)
		case w >= 5:
			return isoOffset(offset, true, true, false)
		}
		return isoOffset(offset, false, false, false)
	case 'O':
		return gmtFormat(offset, w >= 4)
	case 'X', 'x':
		utc := tk.letter == 'X'
		switch w {
		case 1:
			return isoOffset(offset, false, utc, true)
		case 2, 4:
			return isoOffset(offset, false, utc, false)
		}
		return isoOffset(offset, true, utc, false)
	}
	return ""
}

// isZoneAbbreviation reports whether a Go zone name is an alphabetic
// abbreviation rather than a numeric placeholder such as "+09"
func isZoneAbbreviation(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !(c >= 'A' && c <= 'Z') && !(c >= 'a' && c <= 'z') {
			return false
		}
	}
	return true
}

// gmtFormat writes the localized GMT form: "GMT", "GMT-8", "GMT+5:30" or, in
// long form, "GMT-08:00"
func gmtFormat(offset int, long bool) string {
	if offset == 0 {
		return "GMT"
	}
	sign, h, m := splitOffset(offset)
	if long {
		return fmt.Sprintf("GMT%c%02d:%02d", sign, h, m)
	}
	if m == 0 {
		return fmt.Sprintf("GMT%c%d", sign, h)
	}
	return fmt.Sprintf("GMT%c%d:%02d", sign, h, m)
}

// isoOffset writes ±HHMM, ±HH:MM or ±HH (hoursOnly drops zero minutes). With
// utcZ a zero offset is written as "Z".
func isoOffset(offset int, colon, utcZ, hoursOnly bool) string {
	if offset == 0 && utcZ {
		return "Z"
	}
	sign, h, m := splitOffset(offset)
	if hoursOnly && m == 0 {
		return fmt.Sprintf("%c%02d", sign, h)
	}
	if colon {
		return fmt.Sprintf("%c%02d:%02d", sign, h, m)
	}
	return fmt.Sprintf("%c%02d%02d", sign, h, m)
}

func splitOffset(offset int) (sign byte, hours, minutes int) {
	sign = '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return sign, offset / 3600, (offset % 3600) / 60
}
