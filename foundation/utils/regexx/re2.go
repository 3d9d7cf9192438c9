// File: re2.go
// Title: RE2 Engine
// Description: Engine backed by the standard library regexp package for
//              linear-time matching of untrusted patterns.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package regexx

import (
	"regexp"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/sparrow/foundation/core/error"
)

// RE2 compiles patterns with the standard library. RE2 has no free-spacing
// mode, so AllowCommentsAndWhitespace is rejected as an invalid pattern.
type RE2 struct{}

// Name returns "re2"
func (RE2) Name() string {
	return "re2"
}

// Compile compiles pattern with opts
func (RE2) Compile(pattern string, opts Options) (Regexp, error) {
	if opts.Has(IgnoreMetacharacters) {
		pattern = regexp.QuoteMeta(pattern)
	} else if opts.Has(AllowCommentsAndWhitespace) {
		return nil, mdwerror.New("free-spacing patterns are not supported by re2").
			WithCode(mdwerror.CodeInvalidPattern).
			WithOperation("regexx.RE2.Compile").
			WithDetail("pattern", pattern)
	}
	re, err := regexp.Compile(re2Flags(opts) + pattern)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid pattern").
			WithCode(mdwerror.CodeInvalidPattern).
			WithOperation("regexx.RE2.Compile").
			WithDetail("pattern", pattern)
	}
	return &re2Regexp{re: re}, nil
}

func re2Flags(opts Options) string {
	var flags strings.Builder
	if opts.Has(CaseInsensitive) {
		flags.WriteByte('i')
	}
	if opts.Has(DotMatchesLineSeparators) {
		flags.WriteByte('s')
	}
	if opts.Has(AnchorsMatchLines) {
		flags.WriteByte('m')
	}
	if flags.Len() == 0 {
		return ""
	}
	return "(?" + flags.String() + ")"
}

type re2Regexp struct {
	re *regexp.Regexp
}

func (r *re2Regexp) FindAll(text string) []Match {
	names := r.re.SubexpNames()
	all := r.re.FindAllStringSubmatchIndex(text, -1)
	matches := make([]Match, 0, len(all))
	for _, loc := range all {
		match := Match{Captures: make([]Capture, 0, len(loc)/2)}
		for g := 0; g*2 < len(loc); g++ {
			start, end := loc[2*g], loc[2*g+1]
			name := names[g]
			if name == "" {
				name = strconv.Itoa(g)
			}
			if start < 0 {
				match.Captures = append(match.Captures, unmatched(name))
				continue
			}
			match.Captures = append(match.Captures, Capture{
				Name:    name,
				Start:   start,
				End:     end,
				Text:    text[start:end],
				Matched: true,
			})
		}
		matches = append(matches, match)
	}
	return matches
}

func (r *re2Regexp) Replace(text, replacement string) string {
	return r.re.ReplaceAllString(text, replacement)
}
