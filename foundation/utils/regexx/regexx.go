// File: regexx.go
// Title: Pattern Matcher
// Description: Matcher runs the match, extraction and substitution helpers
//              over an Engine. Every call compiles its own pattern, so a
//              Matcher is safe for concurrent use.
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

// PatternCache stores compiled patterns by key
type PatternCache interface {
	Get(key string) (Regexp, bool)
	Set(key string, re Regexp)
}

// Matcher applies patterns through an engine
type Matcher struct {
	engine Engine
	cache  PatternCache
}

// NewMatcher returns a matcher over engine (ICU when nil)
func NewMatcher(engine Engine) *Matcher {
	if engine == nil {
		engine = ICU{}
	}
	return &Matcher{engine: engine}
}

// EngineByName returns the engine configured as "icu" or "re2"
func EngineByName(name string, icu ICU) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "icu":
		return icu, nil
	case "re2":
		return RE2{}, nil
	}
	return nil, mdwerror.New("unknown regex engine").
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("regexx.EngineByName").
		WithDetail("engine", name)
}

// WithCache returns a matcher over the same engine that keeps compiled
// patterns in c. Compile errors are not cached.
func (m *Matcher) WithCache(c PatternCache) *Matcher {
	return &Matcher{engine: m.engine, cache: c}
}

// Engine returns the engine in use
func (m *Matcher) Engine() Engine {
	return m.engine
}

// Compile compiles pattern with the combined opts (DefaultOptions when none)
func (m *Matcher) Compile(pattern string, opts ...Options) (Regexp, error) {
	return m.compile(pattern, combine(opts))
}

func (m *Matcher) compile(pattern string, opts Options) (Regexp, error) {
	if m.cache == nil {
		return m.engine.Compile(pattern, opts)
	}
	key := m.engine.Name() + "\x00" + opts.String() + "\x00" + pattern
	if re, ok := m.cache.Get(key); ok {
		return re, nil
	}
	re, err := m.engine.Compile(pattern, opts)
	if err != nil {
		return nil, err
	}
	m.cache.Set(key, re)
	return re, nil
}

// anchor wraps pattern so that it must span the entire text. In free-spacing
// mode a trailing comment would swallow the closing parenthesis, so a
// newline ends it first.
func anchor(pattern string, opts Options) string {
	if opts.Has(IgnoreMetacharacters) {
		return pattern
	}
	if opts.Has(AllowCommentsAndWhitespace) {
		return `\A(?:` + pattern + "\n" + `)\z`
	}
	return `\A(?:` + pattern + `)\z`
}

// MatchExact reports whether the whole text is one match of pattern
func (m *Matcher) MatchExact(text, pattern string, opts ...Options) bool {
	o := combine(opts)
	if o.Has(IgnoreMetacharacters) {
		re, err := m.compile(pattern, o)
		if err != nil {
			return false
		}
		matches := re.FindAll(text)
		if len(matches) == 0 {
			return false
		}
		whole := matches[0].Captures[0]
		return whole.Start == 0 && whole.End == len(text)
	}
	// the wrapper group could balance a stray ")(" in pattern
	if _, err := m.compile(pattern, o); err != nil {
		return false
	}
	re, err := m.compile(anchor(pattern, o), o)
	if err != nil {
		return false
	}
	return len(re.FindAll(text)) > 0
}

// MatchAny reports whether pattern matches anywhere in text
func (m *Matcher) MatchAny(text, pattern string, opts ...Options) bool {
	re, err := m.Compile(pattern, opts...)
	if err != nil {
		return false
	}
	return len(re.FindAll(text)) > 0
}

// FindAll returns every match of pattern in text
func (m *Matcher) FindAll(text, pattern string, opts ...Options) []Match {
	re, err := m.Compile(pattern, opts...)
	if err != nil {
		return nil
	}
	return re.FindAll(text)
}

// ExtractAll lists, for every match, the whole match followed by the text of
// each participating group. The result is empty, never nil, when nothing
// matches.
func (m *Matcher) ExtractAll(text, pattern string, opts ...Options) []string {
	out := []string{}
	for _, match := range m.FindAll(text, pattern, opts...) {
		out = append(out, match.Texts()...)
	}
	return out
}

// ReplaceAll substitutes every match of pattern in text. The replacement may
// use $0..$n and ${name}. No match options apply; a malformed pattern
// returns text unchanged.
func (m *Matcher) ReplaceAll(text, pattern, replacement string) string {
	re, err := m.compile(pattern, 0)
	if err != nil {
		return text
	}
	return re.Replace(text, replacement)
}

var defaultMatcher = NewMatcher(ICU{})

// MatchExact reports whether the whole text is one match, using the ICU engine
func MatchExact(text, pattern string, opts ...Options) bool {
	return defaultMatcher.MatchExact(text, pattern, opts...)
}

// MatchAny reports whether pattern matches anywhere, using the ICU engine
func MatchAny(text, pattern string, opts ...Options) bool {
	return defaultMatcher.MatchAny(text, pattern, opts...)
}

// ExtractAll lists the captures of every match, using the ICU engine
func ExtractAll(text, pattern string, opts ...Options) []string {
	return defaultMatcher.ExtractAll(text, pattern, opts...)
}

// ReplaceAll substitutes every match, using the ICU engine
func ReplaceAll(text, pattern, replacement string) string {
	return defaultMatcher.ReplaceAll(text, pattern, replacement)
}
