// File: engine.go
// Title: Engine Abstraction
// Description: Engine compiles patterns into Regexp values; Match and Capture
//              describe results with byte offsets.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package regexx

// Engine compiles patterns
type Engine interface {
	// Name identifies the engine in configuration ("icu" or "re2")
	Name() string
	Compile(pattern string, opts Options) (Regexp, error)
}

// Regexp is a compiled pattern
type Regexp interface {
	// FindAll returns every non-overlapping match, left to right
	FindAll(text string) []Match
	// Replace substitutes every match; the result is text unchanged when
	// the engine fails during substitution
	Replace(text, replacement string) string
}

// Capture is one group of a match. Start and End are byte offsets; an
// unmatched group has Matched false and Start = End = -1.
type Capture struct {
	Name    string
	Start   int
	End     int
	Text    string
	Matched bool
}

// Match holds the whole match at index 0 followed by its groups in order
type Match struct {
	Captures []Capture
}

// Whole returns the text of the entire match
func (m Match) Whole() string {
	if len(m.Captures) == 0 {
		return ""
	}
	return m.Captures[0].Text
}

// Texts returns the whole match and every participating group, skipping
// groups that did not take part in the match
func (m Match) Texts() []string {
	out := make([]string, 0, len(m.Captures))
	for _, c := range m.Captures {
		if c.Matched {
			out = append(out, c.Text)
		}
	}
	return out
}

func unmatched(name string) Capture {
	return Capture{Name: name, Start: -1, End: -1}
}
