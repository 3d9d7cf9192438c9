// File: symbols.go
// Title: Locale Number Symbols
// Description: Derives the grouping and decimal separators of a locale from
//              the x/text number formatter and caches them per tag.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package numberx

import (
	"sync"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type symbols struct {
	group   string
	decimal string
}

var symbolCache sync.Map // language.Tag -> symbols

// symbolsFor renders a probe value and reads the separators back out of it
func symbolsFor(tag language.Tag) symbols {
	if s, ok := symbolCache.Load(tag); ok {
		return s.(symbols)
	}
	probe := message.NewPrinter(tag).Sprint(number.Decimal(12345678.5, number.MinFractionDigits(1)))

	var runs []string
	var cur []rune
	for _, r := range probe {
		if unicode.IsDigit(r) {
			if len(cur) > 0 {
				runs = append(runs, string(cur))
				cur = cur[:0]
			}
			continue
		}
		cur = append(cur, r)
	}
	if len(cur) > 0 {
		runs = append(runs, string(cur))
	}

	s := symbols{decimal: "."}
	switch len(runs) {
	case 0:
	case 1:
		s.decimal = runs[0]
	default:
		s.group = runs[0]
		s.decimal = runs[len(runs)-1]
	}
	symbolCache.Store(tag, s)
	return s
}
