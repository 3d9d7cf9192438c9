// File: descriptor.go
// Title: Format Descriptors
// Description: The three ways of describing a date rendering: explicit pattern,
//              style pair and template.
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

	mdwerror "github.com/msto63/sparrow/foundation/core/error"
)

// Descriptor selects how a value is rendered as text. It is one of Pattern,
// Styles or Template.
type Descriptor interface {
	descriptor()
}

// Pattern is an explicit Unicode date pattern applied literally
type Pattern string

// Template is a set of requested fields ("yMMMd", "jm") that is resolved to the
// locale's preferred pattern and field order
type Template string

// Styles is a pair of locale-conventional date and time styles
type Styles struct {
	Date Style
	Time Style
}

func (Pattern) descriptor()  {}
func (Template) descriptor() {}
func (Styles) descriptor()   {}

// Style is a locale-conventional length for a date or time component
type Style int

const (
	StyleNone Style = iota
	StyleShort
	StyleMedium
	StyleLong
	StyleFull
)

var styleNames = [...]string{"none", "short", "medium", "long", "full"}

// String returns the lower-case style name
func (s Style) String() string {
	if s < StyleNone || s > StyleFull {
		return "unknown"
	}
	return styleNames[s]
}

// ParseStyle parses a style name
func ParseStyle(name string) (Style, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range styleNames {
		if n == key {
			return Style(i), nil
		}
	}
	return StyleNone, mdwerror.New("unknown style").
		WithCode(mdwerror.CodeInvalidFormat).
		WithOperation("timex.ParseStyle").
		WithDetail("style", name)
}

// DefaultStyles returns the medium date and medium time pair used when a caller
// gives no descriptor
func DefaultStyles() Styles {
	return Styles{Date: StyleMedium, Time: StyleMedium}
}

// DateStyle returns a pair rendering only the date
func DateStyle(s Style) Styles {
	return Styles{Date: s, Time: StyleNone}
}

// TimeStyle returns a pair rendering only the time
func TimeStyle(s Style) Styles {
	return Styles{Date: StyleNone, Time: s}
}
