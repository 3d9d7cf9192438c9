// File: locale.go
// Title: Locale Identifiers
// Description: Parsing and normalization of locale identifiers in both the
//              underscore form (ja_JP, en_US_POSIX) and BCP 47 form (ja-JP), and
//              discovery of the device locale from the POSIX environment.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of locale detection
// - 2026-10-14 v0.2.0: x/text language tags, POSIX environment discovery

package i18n

import (
	"strings"

	"golang.org/x/text/language"

	mdwerror "github.com/msto63/sparrow/foundation/core/error"
	"github.com/msto63/sparrow/foundation/utils/stringx"
)

// POSIXLocale is the fixed, locale-neutral identifier used for machine-readable dates
const POSIXLocale = "en_US_POSIX"

// DefaultLocale is used when the environment names no locale
const DefaultLocale = "en_US"

// localeEnv lists the variables consulted for the device locale, by precedence
var localeEnv = []string{"LC_ALL", "LC_TIME", "LANG"}

// ParseLocale parses a locale identifier into a canonical identifier and tag.
// "C" and "POSIX" map to en_US_POSIX.
func ParseLocale(id string) (string, language.Tag, error) {
	raw := strings.TrimSpace(id)
	if i := strings.IndexAny(raw, ".@"); i >= 0 {
		raw = raw[:i]
	}

	switch strings.ToUpper(raw) {
	case "C", "POSIX", strings.ToUpper(POSIXLocale):
		return POSIXLocale, language.AmericanEnglish, nil
	}

	if stringx.IsBlank(raw) {
		return "", language.Und, mdwerror.New("locale identifier is empty").
			WithCode(mdwerror.CodeUnknownLocale).
			WithOperation("i18n.ParseLocale")
	}

	tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil {
		return "", language.Und, mdwerror.Wrap(err, "invalid locale identifier").
			WithCode(mdwerror.CodeUnknownLocale).
			WithOperation("i18n.ParseLocale").
			WithDetail("locale", id)
	}
	return Identifier(tag), tag, nil
}

// Identifier renders a tag in underscore form: language[_Script][_REGION]
func Identifier(tag language.Tag) string {
	base, script, region := tag.Raw()
	parts := []string{base.String()}
	if s := script.String(); s != "Zzzz" {
		parts = append(parts, s)
	}
	if r := region.String(); r != "ZZ" {
		parts = append(parts, r)
	}
	return strings.Join(parts, "_")
}

// NormalizeLocale returns the canonical identifier for id, or "" if it cannot be parsed
func NormalizeLocale(id string) string {
	canonical, _, err := ParseLocale(id)
	if err != nil {
		return ""
	}
	return canonical
}

// SplitLocale splits a locale into language and region parts
func SplitLocale(id string) (lang, region string) {
	_, tag, err := ParseLocale(id)
	if err != nil {
		return "", ""
	}
	base, _, r := tag.Raw()
	lang = base.String()
	if rs := r.String(); rs != "ZZ" {
		region = rs
	}
	return lang, region
}

// DeviceLocale returns the locale named by the first set variable among
// LC_ALL, LC_TIME and LANG, or DefaultLocale.
func DeviceLocale(lookup func(string) (string, bool)) string {
	for _, key := range localeEnv {
		value, ok := lookup(key)
		if !ok || stringx.IsBlank(value) {
			continue
		}
		if canonical := NormalizeLocale(value); canonical != "" {
			return canonical
		}
	}
	return DefaultLocale
}
