// File: helper.go
// Title: Formatted Conversion Helper
// Description: Helper converts between text and dates or numbers under a
//              descriptor and a locale context, and exposes regex inspection,
//              entity detection, calendar arithmetic and digests through the
//              injected capabilities. A Helper holds no mutable state after
//              construction and is safe for concurrent use.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package convert

import (
	"encoding/hex"
	"fmt"
	"net/url"
	"time"

	"github.com/msto63/sparrow/foundation/core/i18n"
	mdwlog "github.com/msto63/sparrow/foundation/core/log"
	"github.com/msto63/sparrow/foundation/utils/detectx"
	"github.com/msto63/sparrow/foundation/utils/digestx"
	"github.com/msto63/sparrow/foundation/utils/numberx"
	"github.com/msto63/sparrow/foundation/utils/regexx"
	"github.com/msto63/sparrow/foundation/utils/timex"
)

// Kind selects the value type ParseValue produces
type Kind int

const (
	KindDate Kind = iota
	KindNumber
)

// String returns "date" or "number"
func (k Kind) String() string {
	switch k {
	case KindDate:
		return "date"
	case KindNumber:
		return "number"
	}
	return "unknown"
}

// Helper is the conversion facade
type Helper struct {
	ctx       i18n.Context
	ctxSet    bool
	formatter TextFormatter
	matcher   PatternMatcher
	detector  EntityDetector
	calendar  CalendarArithmetic
	digests   DigestProvider
	logger    *mdwlog.Logger
}

// Option configures a Helper
type Option func(*Helper)

// WithContext sets the locale context (default i18n.Current())
func WithContext(ctx i18n.Context) Option {
	return func(h *Helper) {
		h.ctx, h.ctxSet = ctx, true
	}
}

// WithFormatter replaces the date and number formatter
func WithFormatter(f TextFormatter) Option {
	return func(h *Helper) { h.formatter = f }
}

// WithMatcher replaces the regex matcher
func WithMatcher(m PatternMatcher) Option {
	return func(h *Helper) { h.matcher = m }
}

// WithDetector replaces the entity detector
func WithDetector(d EntityDetector) Option {
	return func(h *Helper) { h.detector = d }
}

// WithCalendar replaces the calendar
func WithCalendar(c CalendarArithmetic) Option {
	return func(h *Helper) { h.calendar = c }
}

// WithDigests replaces the digest provider
func WithDigests(d DigestProvider) Option {
	return func(h *Helper) { h.digests = d }
}

// WithLogger sets the logger used for debug traces of rejected inputs
func WithLogger(l *mdwlog.Logger) Option {
	return func(h *Helper) { h.logger = l }
}

// New builds a helper; capabilities not given default to the library-backed
// implementations for the context
func New(opts ...Option) *Helper {
	h := &Helper{}
	for _, opt := range opts {
		opt(h)
	}
	if !h.ctxSet {
		h.ctx = i18n.Current()
	}
	if h.formatter == nil {
		h.formatter = StandardFormatter{}
	}
	if h.matcher == nil {
		h.matcher = regexx.NewMatcher(regexx.ICU{})
	}
	if h.detector == nil {
		h.detector = detectx.New(h.ctx)
	}
	if h.calendar == nil {
		h.calendar = timex.NewCalendar(h.ctx.Location())
	}
	if h.digests == nil {
		h.digests = digestx.Standard{}
	}
	if h.logger == nil {
		h.logger = mdwlog.Discard()
	}
	h.logger = h.logger.WithName("convert")
	return h
}

// Context returns the locale context
func (h *Helper) Context() i18n.Context {
	return h.ctx
}

// Calendar returns the calendar capability
func (h *Helper) Calendar() CalendarArithmetic {
	return h.calendar
}

// FormatDate renders t under d; a nil descriptor means the default styles
func (h *Helper) FormatDate(t time.Time, d timex.Descriptor) string {
	return h.formatter.FormatDate(t, d, h.ctx)
}

// ParseDate parses text under d
func (h *Helper) ParseDate(text string, d timex.Descriptor) (time.Time, bool) {
	t, ok := h.formatter.ParseDate(text, d, h.ctx)
	if !ok {
		h.logger.Debug("date does not conform", mdwlog.Fields{"text": text, "descriptor": d})
	}
	return t, ok
}

// numberPattern maps a descriptor onto a number pattern. Templates describe
// date fields only and have no number form.
func numberPattern(d timex.Descriptor) (string, bool) {
	switch v := d.(type) {
	case nil, timex.Styles:
		return numberx.DefaultPattern, true
	case timex.Pattern:
		return string(v), true
	}
	return "", false
}

// FormatValue renders a time.Time or a built-in number under d. Anything
// else renders "".
func (h *Helper) FormatValue(v interface{}, d timex.Descriptor) string {
	if t, ok := v.(time.Time); ok {
		return h.FormatDate(t, d)
	}
	n, ok := numberx.ToFloat(v)
	if !ok {
		h.logger.Debug("value has no text form", mdwlog.Fields{"type": fmt.Sprintf("%T", v)})
		return ""
	}
	pattern, ok := numberPattern(d)
	if !ok {
		return ""
	}
	if f, ok := h.formatter.(IntegerFormatter); ok {
		if s, ok := f.FormatInteger(v, pattern, h.ctx); ok {
			return s
		}
	}
	s, _ := h.formatter.FormatNumber(n, pattern, h.ctx)
	return s
}

// ParseValue parses text as kind under d. Dates come back as time.Time,
// numbers as float64.
func (h *Helper) ParseValue(text string, d timex.Descriptor, kind Kind) (interface{}, bool) {
	switch kind {
	case KindDate:
		return h.ParseDate(text, d)
	case KindNumber:
		pattern, ok := numberPattern(d)
		if !ok {
			return nil, false
		}
		v, ok := h.formatter.ParseNumber(text, pattern, h.ctx)
		if !ok {
			h.logger.Debug("number does not conform", mdwlog.Fields{"text": text, "pattern": pattern})
			return nil, false
		}
		return v, true
	}
	return nil, false
}

// MatchExact reports whether the whole text is one match of pattern
func (h *Helper) MatchExact(text, pattern string, opts ...regexx.Options) bool {
	return h.matcher.MatchExact(text, pattern, opts...)
}

// MatchAny reports whether pattern matches anywhere in text
func (h *Helper) MatchAny(text, pattern string, opts ...regexx.Options) bool {
	return h.matcher.MatchAny(text, pattern, opts...)
}

// ExtractAll lists the whole match and participating groups of every match
func (h *Helper) ExtractAll(text, pattern string, opts ...regexx.Options) []string {
	return h.matcher.ExtractAll(text, pattern, opts...)
}

// ReplaceAll substitutes every match of pattern
func (h *Helper) ReplaceAll(text, pattern, replacement string) string {
	return h.matcher.ReplaceAll(text, pattern, replacement)
}

// DetectLinks finds links in text
func (h *Helper) DetectLinks(text string) []*url.URL {
	return h.detector.Links(text)
}

// DetectPhoneNumbers finds phone numbers in text
func (h *Helper) DetectPhoneNumbers(text string) []string {
	return h.detector.PhoneNumbers(text)
}

// Digest hashes data with a
func (h *Helper) Digest(data []byte, a digestx.Algorithm) []byte {
	return h.digests.Sum(data, a)
}

// DigestHex hashes data with a and returns lower-case hex
func (h *Helper) DigestHex(data []byte, a digestx.Algorithm) string {
	return hex.EncodeToString(h.digests.Sum(data, a))
}
