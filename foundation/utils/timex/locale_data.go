// File: locale_data.go
// Title: Locale Date Data
// Description: Style patterns, date-time glue, preferred hour cycle, day periods,
//              eras and template formats for the supported locales. Month and
//              weekday names come from the monday package (see names.go).
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial set: en, en-GB, ja, de, fr, es, zh

package timex

import (
	"github.com/goodsign/monday"
	"golang.org/x/text/language"

	"github.com/msto63/sparrow/foundation/core/i18n"
)

type localeData struct {
	tag    language.Tag
	monday monday.Locale
	parent *localeData

	// indexed by Style; StyleNone is unused
	datePatterns [5]string
	timePatterns [5]string
	glue         [5]string

	hourCycle    byte // 'h' or 'H'
	am, pm       string
	eras         [2]string // BC, AD abbreviated
	erasWide     [2]string
	firstWeekday int // 0 Sunday, 1 Monday

	formats map[string]string
}

func (d *localeData) format(key string) (string, bool) {
	for cur := d; cur != nil; cur = cur.parent {
		if p, ok := cur.formats[key]; ok {
			return p, true
		}
	}
	return "", false
}

var enUS = &localeData{
	tag:          language.AmericanEnglish,
	monday:       monday.LocaleEnUS,
	datePatterns: [5]string{"", "M/d/yy", "MMM d, y", "MMMM d, y", "EEEE, MMMM d, y"},
	timePatterns: [5]string{"", "h:mm a", "h:mm:ss a", "h:mm:ss a z", "h:mm:ss a zzzz"},
	glue:         [5]string{"", "{1}, {0}", "{1}, {0}", "{1} 'at' {0}", "{1} 'at' {0}"},
	hourCycle:    'h',
	am:           "AM",
	pm:           "PM",
	eras:         [2]string{"BC", "AD"},
	erasWide:     [2]string{"Before Christ", "Anno Domini"},
	firstWeekday: 0,
	formats: map[string]string{
		"d":          "d",
		"E":          "EEE",
		"EEEE":       "EEEE",
		"Ed":         "d E",
		"M":          "L",
		"MMM":        "LLL",
		"MMMM":       "LLLL",
		"Md":         "M/d",
		"MEd":        "E, M/d",
		"MMMd":       "MMM d",
		"MMMEd":      "E, MMM d",
		"MMMMd":      "MMMM d",
		"MMMMEEEEd":  "EEEE, MMMM d",
		"y":          "y",
		"yM":         "M/y",
		"yMd":        "M/d/y",
		"yMEd":       "E, M/d/y",
		"yMMM":       "MMM y",
		"yMMMd":      "MMM d, y",
		"yMMMEd":     "E, MMM d, y",
		"yMMMM":      "MMMM y",
		"yMMMMd":     "MMMM d, y",
		"yMMMMEEEEd": "EEEE, MMMM d, y",
		"yQQQ":       "QQQ y",
		"yQQQQ":      "QQQQ y",
		"Gy":         "y G",
		"GyMMMd":     "MMM d, y G",
		"h":          "h a",
		"H":          "HH",
		"hm":         "h:mm a",
		"Hm":         "HH:mm",
		"hms":        "h:mm:ss a",
		"Hms":        "HH:mm:ss",
		"ms":         "mm:ss",
	},
}

var enGB = &localeData{
	tag:          language.BritishEnglish,
	monday:       monday.LocaleEnGB,
	parent:       enUS,
	datePatterns: [5]string{"", "dd/MM/y", "d MMM y", "d MMMM y", "EEEE d MMMM y"},
	timePatterns: [5]string{"", "HH:mm", "HH:mm:ss", "HH:mm:ss z", "HH:mm:ss zzzz"},
	glue:         [5]string{"", "{1}, {0}", "{1}, {0}", "{1} 'at' {0}", "{1} 'at' {0}"},
	hourCycle:    'H',
	am:           "am",
	pm:           "pm",
	eras:         [2]string{"BC", "AD"},
	erasWide:     [2]string{"Before Christ", "Anno Domini"},
	firstWeekday: 1,
	formats: map[string]string{
		"Md":         "dd/MM",
		"MEd":        "E dd/MM",
		"MMMd":       "d MMM",
		"MMMEd":      "E d MMM",
		"MMMMd":      "d MMMM",
		"MMMMEEEEd":  "EEEE d MMMM",
		"yM":         "MM/y",
		"yMd":        "dd/MM/y",
		"yMEd":       "E, dd/MM/y",
		"yMMMd":      "d MMM y",
		"yMMMEd":     "E, d MMM y",
		"yMMMMd":     "d MMMM y",
		"yMMMMEEEEd": "EEEE d MMMM y",
	},
}

var ja = &localeData{
	tag:          language.Japanese,
	monday:       monday.LocaleJaJP,
	datePatterns: [5]string{"", "y/MM/dd", "y/MM/dd", "y年M月d日", "y年M月d日EEEE"},
	timePatterns: [5]string{"", "H:mm", "H:mm:ss", "H:mm:ss z", "H時mm分ss秒 zzzz"},
	glue:         [5]string{"", "{1} {0}", "{1} {0}", "{1} {0}", "{1} {0}"},
	hourCycle:    'H',
	am:           "午前",
	pm:           "午後",
	eras:         [2]string{"紀元前", "西暦"},
	erasWide:     [2]string{"紀元前", "西暦"},
	firstWeekday: 0,
	formats: map[string]string{
		"d":          "d日",
		"E":          "EEE",
		"EEEE":       "EEEE",
		"Ed":         "d日(EEE)",
		"M":          "M月",
		"MMM":        "M月",
		"MMMM":       "M月",
		"Md":         "M/d",
		"MEd":        "M/d(EEE)",
		"MMMd":       "M月d日",
		"MMMEd":      "M月d日(EEE)",
		"MMMMd":      "M月d日",
		"MMMMEEEEd":  "M月d日EEEE",
		"y":          "y年",
		"yM":         "y/M",
		"yMd":        "y/M/d",
		"yMEd":       "y/M/d(EEE)",
		"yMMM":       "y年M月",
		"yMMMd":      "y年M月d日",
		"yMMMEd":     "y年M月d日(EEE)",
		"yMMMM":      "y年M月",
		"yMMMMd":     "y年M月d日",
		"yMMMMEEEEd": "y年M月d日EEEE",
		"yQQQ":       "y/QQQ",
		"Gy":         "Gy年",
		"GyMMMd":     "Gy年M月d日",
		"h":          "aK時",
		"H":          "H時",
		"hm":         "aK:mm",
		"Hm":         "H:mm",
		"hms":        "aK:mm:ss",
		"Hms":        "H:mm:ss",
		"ms":         "mm:ss",
	},
}

var de = &localeData{
	tag:          language.German,
	monday:       monday.LocaleDeDE,
	datePatterns: [5]string{"", "dd.MM.yy", "dd.MM.y", "d. MMMM y", "EEEE, d. MMMM y"},
	timePatterns: [5]string{"", "HH:mm", "HH:mm:ss", "HH:mm:ss z", "HH:mm:ss zzzz"},
	glue:         [5]string{"", "{1}, {0}", "{1}, {0}", "{1} 'um' {0}", "{1} 'um' {0}"},
	hourCycle:    'H',
	am:           "AM",
	pm:           "PM",
	eras:         [2]string{"v. Chr.", "n. Chr."},
	erasWide:     [2]string{"v. Chr.", "n. Chr."},
	firstWeekday: 1,
	formats: map[string]string{
		"d":          "d",
		"E":          "EEE",
		"EEEE":       "EEEE",
		"Ed":         "EEE, d.",
		"M":          "L",
		"MMM":        "LLL",
		"MMMM":       "LLLL",
		"Md":         "d.M.",
		"MEd":        "EEE, d.M.",
		"MMMd":       "d. MMM",
		"MMMEd":      "EEE, d. MMM",
		"MMMMd":      "d. MMMM",
		"MMMMEEEEd":  "EEEE, d. MMMM",
		"y":          "y",
		"yM":         "M/y",
		"yMd":        "d.M.y",
		"yMEd":       "EEE, d.M.y",
		"yMMM":       "MMM y",
		"yMMMd":      "d. MMM y",
		"yMMMEd":     "EEE, d. MMM y",
		"yMMMM":      "MMMM y",
		"yMMMMd":     "d. MMMM y",
		"yMMMMEEEEd": "EEEE, d. MMMM y",
		"h":          "h 'Uhr' a",
		"H":          "HH 'Uhr'",
		"hm":         "h:mm a",
		"Hm":         "HH:mm",
		"hms":        "h:mm:ss a",
		"Hms":        "HH:mm:ss",
		"ms":         "mm:ss",
	},
}

var fr = &localeData{
	tag:          language.French,
	monday:       monday.LocaleFrFR,
	datePatterns: [5]string{"", "dd/MM/y", "d MMM y", "d MMMM y", "EEEE d MMMM y"},
	timePatterns: [5]string{"", "HH:mm", "HH:mm:ss", "HH:mm:ss z", "HH:mm:ss zzzz"},
	glue:         [5]string{"", "{1} {0}", "{1} {0}", "{1} 'à' {0}", "{1} 'à' {0}"},
	hourCycle:    'H',
	am:           "AM",
	pm:           "PM",
	eras:         [2]string{"av. J.-C.", "ap. J.-C."},
	erasWide:     [2]string{"avant Jésus-Christ", "après Jésus-Christ"},
	firstWeekday: 1,
	formats: map[string]string{
		"d":          "d",
		"E":          "E",
		"EEEE":       "EEEE",
		"Ed":         "E d",
		"M":          "L",
		"MMM":        "LLL",
		"MMMM":       "LLLL",
		"Md":         "dd/MM",
		"MEd":        "E dd/MM",
		"MMMd":       "d MMM",
		"MMMEd":      "E d MMM",
		"MMMMd":      "d MMMM",
		"MMMMEEEEd":  "EEEE d MMMM",
		"y":          "y",
		"yM":         "MM/y",
		"yMd":        "dd/MM/y",
		"yMEd":       "E dd/MM/y",
		"yMMM":       "MMM y",
		"yMMMd":      "d MMM y",
		"yMMMEd":     "E d MMM y",
		"yMMMM":      "MMMM y",
		"yMMMMd":     "d MMMM y",
		"yMMMMEEEEd": "EEEE d MMMM y",
		"h":          "h a",
		"H":          "HH 'h'",
		"hm":         "h:mm a",
		"Hm":         "HH:mm",
		"hms":        "h:mm:ss a",
		"Hms":        "HH:mm:ss",
		"ms":         "mm:ss",
	},
}

var es = &localeData{
	tag:          language.Spanish,
	monday:       monday.LocaleEsES,
	datePatterns: [5]string{"", "d/M/yy", "d MMM y", "d 'de' MMMM 'de' y", "EEEE, d 'de' MMMM 'de' y"},
	timePatterns: [5]string{"", "H:mm", "H:mm:ss", "H:mm:ss z", "H:mm:ss (zzzz)"},
	glue:         [5]string{"", "{1}, {0}", "{1}, {0}", "{1}, {0}", "{1}, {0}"},
	hourCycle:    'H',
	am:           "a. m.",
	pm:           "p. m.",
	eras:         [2]string{"a. C.", "d. C."},
	erasWide:     [2]string{"antes de Cristo", "después de Cristo"},
	firstWeekday: 1,
	formats: map[string]string{
		"d":          "d",
		"E":          "EEE",
		"EEEE":       "EEEE",
		"Ed":         "EEE d",
		"M":          "L",
		"MMM":        "LLL",
		"MMMM":       "LLLL",
		"Md":         "d/M",
		"MEd":        "EEE, d/M",
		"MMMd":       "d MMM",
		"MMMEd":      "EEE, d MMM",
		"MMMMd":      "d 'de' MMMM",
		"MMMMEEEEd":  "EEEE, d 'de' MMMM",
		"y":          "y",
		"yM":         "M/y",
		"yMd":        "d/M/y",
		"yMEd":       "EEE, d/M/y",
		"yMMM":       "MMM y",
		"yMMMd":      "d MMM y",
		"yMMMEd":     "EEE, d MMM y",
		"yMMMM":      "MMMM 'de' y",
		"yMMMMd":     "d 'de' MMMM 'de' y",
		"yMMMMEEEEd": "EEEE, d 'de' MMMM 'de' y",
		"h":          "h a",
		"H":          "H",
		"hm":         "h:mm a",
		"Hm":         "H:mm",
		"hms":        "h:mm:ss a",
		"Hms":        "H:mm:ss",
		"ms":         "mm:ss",
	},
}

var zh = &localeData{
	tag:          language.Chinese,
	monday:       monday.LocaleZhCN,
	datePatterns: [5]string{"", "y/M/d", "y年M月d日", "y年M月d日", "y年M月d日EEEE"},
	timePatterns: [5]string{"", "HH:mm", "HH:mm:ss", "z HH:mm:ss", "zzzz HH:mm:ss"},
	glue:         [5]string{"", "{1} {0}", "{1} {0}", "{1} {0}", "{1} {0}"},
	hourCycle:    'H',
	am:           "上午",
	pm:           "下午",
	eras:         [2]string{"公元前", "公元"},
	erasWide:     [2]string{"公元前", "公元"},
	firstWeekday: 1,
	formats: map[string]string{
		"d":          "d日",
		"E":          "EEE",
		"EEEE":       "EEEE",
		"Ed":         "d日EEE",
		"M":          "M月",
		"MMM":        "LLL",
		"MMMM":       "LLLL",
		"Md":         "M/d",
		"MEd":        "M/dEEE",
		"MMMd":       "M月d日",
		"MMMEd":      "M月d日EEE",
		"MMMMd":      "M月d日",
		"MMMMEEEEd":  "M月d日EEEE",
		"y":          "y年",
		"yM":         "y年M月",
		"yMd":        "y/M/d",
		"yMEd":       "y/M/dEEE",
		"yMMM":       "y年M月",
		"yMMMd":      "y年M月d日",
		"yMMMEd":     "y年M月d日EEE",
		"yMMMM":      "y年M月",
		"yMMMMd":     "y年M月d日",
		"yMMMMEEEEd": "y年M月d日EEEE",
		"h":          "ah时",
		"H":          "H时",
		"hm":         "ah:mm",
		"Hm":         "HH:mm",
		"hms":        "ah:mm:ss",
		"Hms":        "HH:mm:ss",
		"ms":         "mm:ss",
	},
}

var (
	supportedLocales = []*localeData{enUS, enGB, ja, de, fr, es, zh}
	localeMatcher    = newLocaleMatcher()
)

func newLocaleMatcher() language.Matcher {
	tags := make([]language.Tag, len(supportedLocales))
	for i, d := range supportedLocales {
		tags[i] = d.tag
	}
	return language.NewMatcher(tags)
}

// dataFor picks the closest supported locale for ctx, en-US when nothing is close
func dataFor(ctx i18n.Context) *localeData {
	if ctx.IsPOSIX() {
		return enUS
	}
	_, index, conf := localeMatcher.Match(ctx.Tag())
	if conf == language.No || index < 0 || index >= len(supportedLocales) {
		return enUS
	}
	return supportedLocales[index]
}
