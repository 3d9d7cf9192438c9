// File: options.go
// Title: Match Options
// Description: Option bits shared by both engines.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package regexx

import (
	"strings"

	mdwerror "github.com/msto63/sparrow/foundation/core/error"
)

// Options modify how a pattern is compiled
type Options uint

const (
	// CaseInsensitive matches letters regardless of case
	CaseInsensitive Options = 1 << iota
	// AllowCommentsAndWhitespace ignores unescaped whitespace and #-comments
	AllowCommentsAndWhitespace
	// IgnoreMetacharacters treats the pattern as literal text
	IgnoreMetacharacters
	// DotMatchesLineSeparators lets . match newlines
	DotMatchesLineSeparators
	// AnchorsMatchLines makes ^ and $ match at line boundaries
	AnchorsMatchLines
)

// DefaultOptions apply when a caller passes no options
const DefaultOptions = AnchorsMatchLines

var optionNames = []struct {
	bit  Options
	name string
}{
	{CaseInsensitive, "i"},
	{AllowCommentsAndWhitespace, "x"},
	{IgnoreMetacharacters, "literal"},
	{DotMatchesLineSeparators, "s"},
	{AnchorsMatchLines, "m"},
}

// Has reports whether every bit of o is set
func (opts Options) Has(o Options) bool {
	return opts&o == o
}

// String lists the set options, e.g. "i|m"
func (opts Options) String() string {
	var parts []string
	for _, n := range optionNames {
		if opts.Has(n.bit) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// ParseOptions reads option names such as "i", "m", "s", "x" and "literal"
// separated by commas or bars. The empty string selects no options.
func ParseOptions(s string) (Options, error) {
	var opts Options
	for _, field := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '|' || r == ' ' }) {
		found := false
		for _, n := range optionNames {
			if strings.EqualFold(field, n.name) {
				opts |= n.bit
				found = true
				break
			}
		}
		if !found {
			return 0, mdwerror.New("unknown regex option").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("regexx.ParseOptions").
				WithDetail("option", field)
		}
	}
	return opts, nil
}

func combine(opts []Options) Options {
	if len(opts) == 0 {
		return DefaultOptions
	}
	var out Options
	for _, o := range opts {
		out |= o
	}
	return out
}
