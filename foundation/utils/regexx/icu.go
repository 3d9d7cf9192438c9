// File: icu.go
// Title: ICU-Style Engine
// Description: Engine backed by github.com/dlclark/regexp2. regexp2 reports
//              rune offsets; they are mapped back to byte offsets here.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package regexx

import (
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	mdwerror "github.com/msto63/sparrow/foundation/core/error"
)

// ICU compiles patterns with backtracking semantics. A positive MatchTimeout
// bounds each match; a match that times out counts as no match.
type ICU struct {
	MatchTimeout time.Duration
}

// Name returns "icu"
func (ICU) Name() string {
	return "icu"
}

// Compile compiles pattern with opts
func (e ICU) Compile(pattern string, opts Options) (Regexp, error) {
	if opts.Has(IgnoreMetacharacters) {
		pattern = regexp2.Escape(pattern)
	}
	re, err := regexp2.Compile(pattern, icuOptions(opts))
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid pattern").
			WithCode(mdwerror.CodeInvalidPattern).
			WithOperation("regexx.ICU.Compile").
			WithDetail("pattern", pattern)
	}
	if e.MatchTimeout > 0 {
		re.MatchTimeout = e.MatchTimeout
	}
	return &icuRegexp{re: re}, nil
}

func icuOptions(opts Options) regexp2.RegexOptions {
	var out regexp2.RegexOptions
	if opts.Has(CaseInsensitive) {
		out |= regexp2.IgnoreCase
	}
	if opts.Has(AllowCommentsAndWhitespace) && !opts.Has(IgnoreMetacharacters) {
		out |= regexp2.IgnorePatternWhitespace
	}
	if opts.Has(DotMatchesLineSeparators) {
		out |= regexp2.Singleline
	}
	if opts.Has(AnchorsMatchLines) {
		out |= regexp2.Multiline
	}
	return out
}

type icuRegexp struct {
	re *regexp2.Regexp
}

func (r *icuRegexp) FindAll(text string) []Match {
	var (
		matches []Match
		offsets []int
	)
	m, err := r.re.FindStringMatch(text)
	for err == nil && m != nil {
		if offsets == nil {
			offsets = runeOffsets(text)
		}
		groups := m.Groups()
		match := Match{Captures: make([]Capture, 0, len(groups))}
		for _, g := range groups {
			if len(g.Captures) == 0 {
				match.Captures = append(match.Captures, unmatched(g.Name))
				continue
			}
			start, end := offsets[g.Index], offsets[g.Index+g.Length]
			match.Captures = append(match.Captures, Capture{
				Name:    g.Name,
				Start:   start,
				End:     end,
				Text:    text[start:end],
				Matched: true,
			})
		}
		matches = append(matches, match)
		m, err = r.re.FindNextMatch(m)
	}
	return matches
}

func (r *icuRegexp) Replace(text, replacement string) string {
	out, err := r.re.Replace(text, replacement, -1, -1)
	if err != nil {
		return text
	}
	return out
}

// runeOffsets maps rune indexes of text to byte offsets; the final entry is
// len(text)
func runeOffsets(text string) []int {
	offsets := make([]int, 0, utf8.RuneCountInString(text)+1)
	for i := 0; i < len(text); {
		offsets = append(offsets, i)
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return append(offsets, len(text))
}
