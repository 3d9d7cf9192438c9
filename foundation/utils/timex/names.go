// File: names.go
// Title: Localized Calendar Names
// Description: Month, weekday, quarter, day period and era names per locale.
//              Month and weekday names are taken from the monday package and
//              cached per locale on first use.
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
	"sync"
	"time"
	"unicode/utf8"

	"github.com/goodsign/monday"
)

type nameWidth int

const (
	widthAbbreviated nameWidth = iota
	widthWide
	widthNarrow
)

// names holds the resolved name tables of one locale
type names struct {
	months   [3][12]string // [width][month-1]
	weekdays [3][7]string  // [width][time.Weekday]
	quarters [2][4]string  // [abbreviated|wide][quarter-1]
}

var (
	namesMu    sync.Mutex
	namesCache = make(map[*localeData]*names)
)

func namesFor(d *localeData) *names {
	namesMu.Lock()
	defer namesMu.Unlock()
	if n, ok := namesCache[d]; ok {
		return n
	}
	n := buildNames(d)
	namesCache[d] = n
	return n
}

func buildNames(d *localeData) *names {
	n := &names{}
	for m := 0; m < 12; m++ {
		t := time.Date(2001, time.Month(m+1), 1, 12, 0, 0, 0, time.UTC)
		n.months[widthWide][m] = monday.Format(t, "January", d.monday)
		n.months[widthAbbreviated][m] = monday.Format(t, "Jan", d.monday)
		n.months[widthNarrow][m] = firstRune(n.months[widthWide][m])
	}
	// 2001-01-07 is a Sunday
	for wd := 0; wd < 7; wd++ {
		t := time.Date(2001, time.January, 7+wd, 12, 0, 0, 0, time.UTC)
		n.weekdays[widthWide][wd] = monday.Format(t, "Monday", d.monday)
		n.weekdays[widthAbbreviated][wd] = monday.Format(t, "Mon", d.monday)
		n.weekdays[widthNarrow][wd] = firstRune(n.weekdays[widthWide][wd])
	}
	n.quarters = quarterNames(d)
	if d == ja || d == zh {
		// numeric month names need no narrow form
		for m := 0; m < 12; m++ {
			n.months[widthNarrow][m] = fmt.Sprintf("%d", m+1)
		}
	}
	return n
}

func quarterNames(d *localeData) [2][4]string {
	var q [2][4]string
	for i := 0; i < 4; i++ {
		q[0][i] = fmt.Sprintf("Q%d", i+1)
	}
	root := d
	for root.parent != nil {
		root = root.parent
	}
	switch root {
	case enUS:
		q[1] = [4]string{"1st quarter", "2nd quarter", "3rd quarter", "4th quarter"}
	case ja:
		q[1] = [4]string{"第1四半期", "第2四半期", "第3四半期", "第4四半期"}
	case de:
		q[1] = [4]string{"1. Quartal", "2. Quartal", "3. Quartal", "4. Quartal"}
	case fr:
		q[0] = [4]string{"T1", "T2", "T3", "T4"}
		q[1] = [4]string{"1er trimestre", "2e trimestre", "3e trimestre", "4e trimestre"}
	case es:
		q[0] = [4]string{"T1", "T2", "T3", "T4"}
		q[1] = [4]string{"1.er trimestre", "2.º trimestre", "3.er trimestre", "4.º trimestre"}
	case zh:
		q[0] = [4]string{"1季度", "2季度", "3季度", "4季度"}
		q[1] = [4]string{"第一季度", "第二季度", "第三季度", "第四季度"}
	}
	return q
}

func (n *names) month(m time.Month, w nameWidth) string {
	return n.months[w][int(m)-1]
}

func (n *names) weekday(wd time.Weekday, w nameWidth) string {
	return n.weekdays[w][int(wd)]
}

func widthOf(count int) nameWidth {
	switch {
	case count == 4:
		return widthWide
	case count >= 5:
		return widthNarrow
	}
	return widthAbbreviated
}

func firstRune(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}
