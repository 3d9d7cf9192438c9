// Package i18n provides formatting contexts and localized string tables.
//
// Package: i18n
// Title: sparrow Internationalization
// Description: A Context pairs a locale with a time zone and is passed to every
//              locale-sensitive conversion. Two canonical contexts exist: Current
//              (device locale and zone) and GMT (en_US_POSIX in GMT). Strings loads
//              translation tables from a resource bundle and falls back to the key.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial translation manager with TOML/YAML support
// - 2026-10-14 v0.2.0: Locale/zone contexts on x/text language, bundle-backed tables
//
// Usage:
//   ctx := i18n.GMT()
//   ctx, err := i18n.NewContext("ja_JP", "Asia/Tokyo")
//
//   strs := i18n.LoadStrings(b, "de", i18n.DefaultTable)
//   strs.Localized("hello") // "Hallo", or "hello" when untranslated
package i18n
