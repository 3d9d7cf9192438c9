// File: skeleton.go
// Title: Template Resolution
// Description: Turns a template (the set of fields a caller wants, such as
//              "yMMMd" or "jm") into the preferred pattern of a locale.
//              Field order, separators and the hour cycle come from the
//              locale; requested numeric widths are kept.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package timex

import (
	"strings"
)

// skeleton holds the requested width per canonical field letter
type skeleton map[byte]int

var (
	dateOrder = []byte("GyQMEdD")
	timeOrder = []byte("hHmsS")
	zoneOrder = []byte("zZOXx")
)

// canonical maps a template letter onto the letter used in format keys.
// Unsupported letters map to 0.
func canonical(c byte, d *localeData) byte {
	switch c {
	case 'G', 'y', 'Q', 'M', 'E', 'd', 'D', 'h', 'H', 'm', 's', 'S', 'z', 'Z', 'O', 'X', 'x':
		return c
	case 'Y', 'u':
		return 'y'
	case 'q':
		return 'Q'
	case 'L':
		return 'M'
	case 'c', 'e':
		return 'E'
	case 'k':
		return 'H'
	case 'K':
		return 'h'
	case 'j', 'J', 'C':
		return d.hourCycle
	case 'v', 'V':
		return 'z'
	case 'a':
		return 'a'
	}
	return 0
}

func parseSkeleton(template string, d *localeData) (skeleton, bool) {
	sk := skeleton{}
	for _, tk := range tokenize(template) {
		if !tk.isField() {
			continue
		}
		c := canonical(tk.letter, d)
		if c == 0 {
			return nil, false
		}
		if c == 'a' {
			continue
		}
		if tk.width > sk[c] {
			sk[c] = tk.width
		}
	}
	if sk['h'] > 0 && sk['H'] > 0 {
		delete(sk, 'h')
	}
	return sk, len(sk) > 0
}

// resolveTemplate returns the locale pattern for template, or "" when the
// template cannot be resolved
func resolveTemplate(template string, d *localeData) string {
	sk, ok := parseSkeleton(template, d)
	if !ok {
		return ""
	}

	date := sk.datePattern(d)
	tm := sk.timePattern(d)
	switch {
	case date == "":
		return tm
	case tm == "":
		return date
	}
	return glue(d.glue[sk.glueStyle()], date, tm)
}

func glue(format, date, tm string) string {
	out := strings.Replace(format, "{1}", date, 1)
	return strings.Replace(out, "{0}", tm, 1)
}

// glueStyle picks the date-time glue the way the date width suggests
func (sk skeleton) glueStyle() Style {
	switch m := sk['M']; {
	case m >= 4 && sk['E'] >= 4:
		return StyleFull
	case m >= 4:
		return StyleLong
	case m == 3:
		return StyleMedium
	}
	return StyleShort
}

func (sk skeleton) key(order []byte) string {
	var b strings.Builder
	for _, c := range order {
		w, ok := sk[c]
		if !ok {
			continue
		}
		switch c {
		case 'M':
			switch {
			case w >= 4:
				w = 4
			case w == 3:
			default:
				w = 1
			}
		case 'E':
			if w >= 4 {
				w = 4
			} else {
				w = 1
			}
		case 'Q':
			if w >= 4 {
				w = 4
			} else if w == 3 {
				w = 3
			} else {
				w = 1
			}
		default:
			w = 1
		}
		b.WriteString(strings.Repeat(string(c), w))
	}
	return b.String()
}

func (sk skeleton) datePattern(d *localeData) string {
	key := sk.key(dateOrder)
	if key == "" {
		return ""
	}
	candidates := []string{
		key,
		strings.Replace(key, "EEEE", "E", 1),
		strings.Replace(key, "MMMM", "MMM", 1),
		strings.Replace(strings.Replace(key, "EEEE", "E", 1), "MMMM", "MMM", 1),
	}
	for _, k := range candidates {
		if p, ok := d.format(k); ok {
			return sk.adjust(p)
		}
	}
	return sk.join(dateOrder)
}

func (sk skeleton) timePattern(d *localeData) string {
	key := sk.key(timeOrder[:4])
	var pattern string
	if key != "" {
		if p, ok := d.format(key); ok {
			pattern = sk.adjust(p)
		} else {
			pattern = sk.join(timeOrder[:4])
		}
	}
	if w := sk['S']; w > 0 {
		frac := "." + strings.Repeat("S", w)
		if i := strings.LastIndex(pattern, "ss"); i >= 0 {
			pattern = pattern[:i+2] + frac + pattern[i+2:]
		} else if pattern == "" {
			pattern = strings.Repeat("S", w)
		} else {
			pattern += frac
		}
	}
	if zone := sk.join(zoneOrder); zone != "" {
		if pattern == "" {
			return zone
		}
		pattern += " " + zone
	}
	return pattern
}

// join lists the requested fields in order, separated by spaces
func (sk skeleton) join(order []byte) string {
	var parts []string
	for _, c := range order {
		if w, ok := sk[c]; ok {
			parts = append(parts, strings.Repeat(string(c), w))
		}
	}
	return strings.Join(parts, " ")
}

// adjust widens fields of a locale pattern to the widths the template asked
// for, without switching between numeric and text forms
func (sk skeleton) adjust(pattern string) string {
	tokens := tokenize(pattern)
	for i, tk := range tokens {
		if !tk.isField() {
			continue
		}
		c := tk.letter
		switch c {
		case 'L':
			c = 'M'
		case 'c', 'e':
			c = 'E'
		case 'K':
			c = 'h'
		case 'k':
			c = 'H'
		}
		want, ok := sk[c]
		if !ok {
			continue
		}
		switch {
		case c == 'y':
			if want == 2 || tk.width == 1 && want > 2 {
				tokens[i].width = want
			}
		case tk.isNumeric() && want <= 2 && want > tk.width:
			tokens[i].width = want
		case !tk.isNumeric() && want >= 3 && want > tk.width:
			tokens[i].width = want
		}
	}
	return render(tokens)
}
