// File: context.go
// Title: Formatting Context
// Description: Immutable locale and time zone pair passed to locale-sensitive
//              conversions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package i18n

import (
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"

	mdwerror "github.com/msto63/sparrow/foundation/core/error"
)

// gmt is a fixed zone named like the platform's zero-offset zone
var gmt = time.FixedZone("GMT", 0)

// Context pairs a locale with a time zone. The zero value behaves as en_US in UTC.
type Context struct {
	identifier string
	tag        language.Tag
	location   *time.Location
}

// Current returns the device context: the environment's locale and time.Local
func Current() Context {
	return currentFrom(os.LookupEnv, time.Local)
}

func currentFrom(lookup func(string) (string, bool), loc *time.Location) Context {
	id, tag, err := ParseLocale(DeviceLocale(lookup))
	if err != nil {
		id, tag = DefaultLocale, language.AmericanEnglish
	}
	return Context{identifier: id, tag: tag, location: loc}
}

// GMT returns the locale-neutral context: en_US_POSIX in GMT
func GMT() Context {
	return Context{identifier: POSIXLocale, tag: language.AmericanEnglish, location: gmt}
}

// NewContext builds a context from a locale identifier and an IANA zone name.
// An empty identifier selects the device locale, an empty zone time.Local.
func NewContext(localeID, timezone string) (Context, error) {
	if strings.TrimSpace(localeID) == "" {
		localeID = DeviceLocale(os.LookupEnv)
	}
	id, tag, err := ParseLocale(localeID)
	if err != nil {
		return Context{}, err
	}

	loc, err := LoadLocation(timezone)
	if err != nil {
		return Context{}, err
	}
	return Context{identifier: id, tag: tag, location: loc}, nil
}

// LoadLocation resolves an IANA zone name. "" is time.Local; "GMT" and "UTC" are fixed.
func LoadLocation(name string) (*time.Location, error) {
	switch strings.TrimSpace(name) {
	case "", "Local":
		return time.Local, nil
	case "GMT":
		return gmt, nil
	case "UTC":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, mdwerror.Wrap(err, "unknown time zone").
			WithCode(mdwerror.CodeUnknownTimezone).
			WithOperation("i18n.LoadLocation").
			WithDetail("timezone", name)
	}
	return loc, nil
}

// WithLocation returns a copy of c in another zone
func (c Context) WithLocation(loc *time.Location) Context {
	c.location = loc
	return c
}

// Identifier returns the canonical locale identifier, e.g. "ja_JP"
func (c Context) Identifier() string {
	if c.identifier == "" {
		return DefaultLocale
	}
	return c.identifier
}

// Tag returns the BCP 47 tag of the locale
func (c Context) Tag() language.Tag {
	if c.tag == language.Und {
		return language.AmericanEnglish
	}
	return c.tag
}

// Location returns the time zone
func (c Context) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// IsPOSIX reports whether the locale is the fixed en_US_POSIX locale
func (c Context) IsPOSIX() bool {
	return c.identifier == POSIXLocale
}

// Region returns the two-letter region of the locale, inferring the likely
// region when the identifier has none (ja → JP).
func (c Context) Region() string {
	region, conf := c.Tag().Region()
	if conf == language.No {
		return "US"
	}
	return region.String()
}

// In converts t into the context's zone
func (c Context) In(t time.Time) time.Time {
	return t.In(c.Location())
}

// String returns identifier@zone
func (c Context) String() string {
	return c.Identifier() + "@" + c.Location().String()
}
