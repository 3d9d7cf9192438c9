// File: parse.go
// Title: Pattern Parsing
// Description: Parses text against a tokenized date pattern. Parsing is
//              lenient about whitespace and letter case but the complete input
//              must be consumed and every field must be in range.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package timex

import (
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	defaultYear  = 2000
	pivotPast    = 80
	maxYearDigit = 9
)

// parsed collects the fields read from the input
type parsed struct {
	year, month, day     int
	hour, minute, second int
	nanos                int
	yearDay              int
	quarter              int
	hasYear, hasMonth    bool
	hasDay, hasYearDay   bool
	bc                   bool
	pm                   int // -1 unknown, 0 am, 1 pm
	twelveHour           bool
	offset               int
	hasOffset            bool
	zone                 *time.Location
}

type parser struct {
	text string
	pos  int
	d    *localeData
	n    *names
	loc  *time.Location
	now  time.Time
	f    parsed
}

func parseTokens(text string, tokens []token, d *localeData, loc *time.Location, now time.Time) (time.Time, bool) {
	p := &parser{text: text, d: d, n: namesFor(d), loc: loc, now: now}
	p.f.pm = -1
	for i, tk := range tokens {
		if !tk.isField() {
			if !p.literal(tk.literal) {
				return time.Time{}, false
			}
			continue
		}
		abutting := i+1 < len(tokens) && tokens[i+1].isField() && tokens[i+1].isNumeric()
		if !p.field(tk, abutting) {
			return time.Time{}, false
		}
	}
	if p.pos != len(p.text) {
		return time.Time{}, false
	}
	return p.f.resolve(loc)
}

// isSpace includes the no-break spaces some locales put before day periods
func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

func (p *parser) skipSpace() {
	for p.pos < len(p.text) {
		r, size := utf8.DecodeRuneInString(p.text[p.pos:])
		if !isSpace(r) {
			return
		}
		p.pos += size
	}
}

// literal matches lit; any whitespace run in lit matches any whitespace run
// (possibly empty) in the input
func (p *parser) literal(lit string) bool {
	for i := 0; i < len(lit); {
		r, size := utf8.DecodeRuneInString(lit[i:])
		if isSpace(r) {
			for i < len(lit) {
				r, size = utf8.DecodeRuneInString(lit[i:])
				if !isSpace(r) {
					break
				}
				i += size
			}
			p.skipSpace()
			continue
		}
		if p.pos >= len(p.text) {
			return false
		}
		got, gotSize := utf8.DecodeRuneInString(p.text[p.pos:])
		if got != r && !strings.EqualFold(string(got), string(r)) {
			return false
		}
		p.pos += gotSize
		i += size
	}
	return true
}

// number reads up to max ASCII digits and reports the value and digit count
func (p *parser) number(max int) (int, int) {
	v, count := 0, 0
	for p.pos < len(p.text) && count < max {
		c := p.text[p.pos]
		if c < '0' || c > '9' {
			break
		}
		v = v*10 + int(c-'0')
		p.pos++
		count++
	}
	return v, count
}

// choice matches the longest candidate at the current position, ignoring case
func (p *parser) choice(candidates []string) (int, bool) {
	best, bestLen := -1, 0
	rest := p.text[p.pos:]
	for i, c := range candidates {
		if c == "" || len(c) <= bestLen || len(c) > len(rest) {
			continue
		}
		if strings.EqualFold(rest[:len(c)], c) {
			best, bestLen = i, len(c)
		}
	}
	if best < 0 {
		return 0, false
	}
	p.pos += bestLen
	return best, true
}

func maxDigits(tk token, abutting bool) int {
	if abutting {
		return tk.width
	}
	switch tk.letter {
	case 'y', 'Y', 'u', 'S':
		return maxYearDigit
	case 'D':
		return 3
	}
	return 2
}

func (p *parser) field(tk token, abutting bool) bool {
	if tk.isNumeric() {
		return p.numericField(tk, maxDigits(tk, abutting))
	}
	switch tk.letter {
	case 'G':
		eras := []string{p.d.eras[0], p.d.eras[1], p.d.erasWide[0], p.d.erasWide[1]}
		i, ok := p.choice(eras)
		if !ok {
			return false
		}
		p.f.bc = i%2 == 0
		return true
	case 'M', 'L':
		i, ok := p.choice(monthCandidates(p.n))
		if !ok {
			return false
		}
		p.f.month, p.f.hasMonth = i%12+1, true
		return true
	case 'E', 'e', 'c':
		_, ok := p.choice(weekdayCandidates(p.n))
		return ok
	case 'Q', 'q':
		all := append(append([]string{}, p.n.quarters[0][:]...), p.n.quarters[1][:]...)
		i, ok := p.choice(all)
		if !ok {
			return false
		}
		p.f.quarter = i%4 + 1
		return true
	case 'a':
		i, ok := p.choice([]string{p.d.am, p.d.pm, "AM", "PM"})
		if !ok {
			return false
		}
		p.f.pm = i % 2
		return true
	case 'z', 'Z', 'X', 'x', 'O':
		return p.zone()
	}
	return p.literal(strings.Repeat(string(tk.letter), tk.width))
}

func (p *parser) numericField(tk token, max int) bool {
	v, count := p.number(max)
	if count == 0 {
		return false
	}
	switch tk.letter {
	case 'y', 'Y', 'u':
		if tk.width == 2 && count == 2 && tk.letter != 'u' {
			v = pivotYear(v, p.now)
		}
		p.f.year, p.f.hasYear = v, true
	case 'M', 'L':
		p.f.month, p.f.hasMonth = v, true
	case 'Q', 'q':
		p.f.quarter = v
	case 'd':
		p.f.day, p.f.hasDay = v, true
	case 'D':
		p.f.yearDay, p.f.hasYearDay = v, true
	case 'e', 'c':
		if v < 1 || v > 7 {
			return false
		}
	case 'h':
		if v < 1 || v > 12 {
			return false
		}
		p.f.hour, p.f.twelveHour = v%12, true
	case 'K':
		if v > 11 {
			return false
		}
		p.f.hour, p.f.twelveHour = v, true
	case 'H':
		p.f.hour = v
	case 'k':
		if v < 1 || v > 24 {
			return false
		}
		p.f.hour = v % 24
	case 'm':
		p.f.minute = v
	case 's':
		p.f.second = v
	case 'S':
		for i := count; i < 9; i++ {
			v *= 10
		}
		for i := count; i > 9; i-- {
			v /= 10
		}
		p.f.nanos = v
	}
	return true
}

// pivotYear expands a two-digit year into the window [now-80, now+20)
func pivotYear(v int, now time.Time) int {
	start := now.Year() - pivotPast
	year := start - start%100 + v
	if year < start {
		year += 100
	}
	return year
}

func monthCandidates(n *names) []string {
	out := make([]string, 0, 24)
	out = append(out, n.months[widthWide][:]...)
	out = append(out, n.months[widthAbbreviated][:]...)
	return out
}

func weekdayCandidates(n *names) []string {
	out := make([]string, 0, 14)
	out = append(out, n.weekdays[widthWide][:]...)
	out = append(out, n.weekdays[widthAbbreviated][:]...)
	return out
}

// zone accepts Z, GMT or UTC with an optional offset, a bare ISO offset, or
// one of the abbreviations of the context zone
func (p *parser) zone() bool {
	rest := p.text[p.pos:]
	if strings.HasPrefix(rest, "Z") {
		p.pos++
		p.f.offset, p.f.hasOffset = 0, true
		return true
	}
	for _, prefix := range []string{"GMT", "UTC"} {
		if len(rest) >= len(prefix) && strings.EqualFold(rest[:len(prefix)], prefix) {
			p.pos += len(prefix)
			p.f.offset, p.f.hasOffset = 0, true
			if p.pos < len(p.text) && (p.text[p.pos] == '+' || p.text[p.pos] == '-') {
				return p.offset()
			}
			return true
		}
	}
	if rest != "" && (rest[0] == '+' || rest[0] == '-') {
		return p.offset()
	}
	abbrs := zoneAbbreviations(p.loc, p.now)
	if _, ok := p.choice(abbrs); ok {
		p.f.zone = p.loc
		return true
	}
	return false
}

// offset reads ±H, ±HH, ±HHMM, ±HH:MM or ±H:MM
func (p *parser) offset() bool {
	sign := 1
	if p.text[p.pos] == '-' {
		sign = -1
	}
	p.pos++
	h, count := p.number(2)
	if count == 0 {
		return false
	}
	m := 0
	switch {
	case p.pos < len(p.text) && p.text[p.pos] == ':':
		p.pos++
		var mc int
		if m, mc = p.number(2); mc != 2 {
			return false
		}
	case count == 2:
		mm, mc := p.number(2)
		if mc == 1 {
			return false
		}
		m = mm
	}
	if h > 23 || m > 59 {
		return false
	}
	p.f.offset, p.f.hasOffset = sign*(h*3600+m*60), true
	return true
}

// zoneAbbreviations lists the names the zone uses across the current year,
// longest first
func zoneAbbreviations(loc *time.Location, now time.Time) []string {
	if loc == nil {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	for _, month := range []time.Month{time.January, time.July} {
		name, _ := time.Date(now.Year(), month, 1, 12, 0, 0, 0, loc).Zone()
		if isZoneAbbreviation(name) && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	sort.Slice(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}

func (f *parsed) resolve(loc *time.Location) (time.Time, bool) {
	year := defaultYear
	if f.hasYear {
		year = f.year
		if f.bc {
			year = 1 - year
		}
	}
	month, day := 1, 1
	if f.hasMonth {
		month = f.month
	} else if f.quarter > 0 {
		if f.quarter > 4 {
			return time.Time{}, false
		}
		month = (f.quarter-1)*3 + 1
	}
	if f.hasDay {
		day = f.day
	}
	if f.hasYearDay && !f.hasMonth && !f.hasDay {
		if f.yearDay < 1 || f.yearDay > daysInYear(year) {
			return time.Time{}, false
		}
		date := time.Date(year, time.January, f.yearDay, 0, 0, 0, 0, time.UTC)
		month, day = int(date.Month()), date.Day()
	}
	hour := f.hour
	if f.twelveHour && f.pm == 1 {
		hour += 12
	}
	if month < 1 || month > 12 || day < 1 || day > daysIn(year, time.Month(month)) {
		return time.Time{}, false
	}
	if hour > 23 || f.minute > 59 || f.second > 59 {
		return time.Time{}, false
	}

	switch {
	case f.zone != nil:
		loc = f.zone
	case f.hasOffset:
		loc = time.FixedZone("", f.offset)
	case loc == nil:
		loc = time.UTC
	}
	return time.Date(year, time.Month(month), day, hour, f.minute, f.second, f.nanos, loc), true
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func daysInYear(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}
