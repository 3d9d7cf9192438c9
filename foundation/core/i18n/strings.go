// File: strings.go
// Title: Localized String Tables
// Description: Loads translation tables from a resource bundle and resolves keys
//              through the requested localization, its base language and Base,
//              falling back to the key itself.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial translation manager reading a locales directory
// - 2026-10-14 v0.2.0: Tables read from <loc>.lproj inside a bundle

package i18n

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/sparrow/foundation/core/bundle"
	mdwerror "github.com/msto63/sparrow/foundation/core/error"
)

// DefaultTable is the table name used when none is given
const DefaultTable = "Localizable"

// TranslationData holds a decoded translation table
type TranslationData map[string]interface{}

// Strings resolves localized strings. A Strings with no tables returns every key unchanged.
type Strings struct {
	localization string
	tables       []TranslationData
}

// LoadStrings loads table from the bundle for localization, then for its base
// language and then Base. Missing or malformed tables are skipped.
func LoadStrings(b *bundle.Bundle, localization, table string) *Strings {
	s, _ := TryLoadStrings(b, localization, table)
	return s
}

// TryLoadStrings is LoadStrings that also reports the first malformed table
func TryLoadStrings(b *bundle.Bundle, localization, table string) (*Strings, error) {
	if table == "" {
		table = DefaultTable
	}
	s := &Strings{localization: localization}

	var firstErr error
	for _, loc := range fallbackChain(localization) {
		data, err := loadTable(b, loc, table)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		if data != nil {
			s.tables = append(s.tables, data)
		}
	}
	return s, firstErr
}

func fallbackChain(localization string) []string {
	var chain []string
	seen := map[string]bool{}
	add := func(loc string) {
		if loc != "" && !seen[loc] {
			seen[loc] = true
			chain = append(chain, loc)
		}
	}

	add(localization)
	if lang, _ := SplitLocale(localization); lang != "" {
		add(lang)
	}
	add(bundle.BaseLocalization)
	return chain
}

func loadTable(b *bundle.Bundle, loc, table string) (TranslationData, error) {
	for _, ext := range []string{"toml", "yaml", "yml"} {
		content, ok := b.Data(table, ext, bundle.Localization(loc))
		if !ok {
			continue
		}

		var data TranslationData
		var err error
		if ext == "toml" {
			err = toml.Unmarshal(content, &data)
		} else {
			err = yaml.Unmarshal(content, &data)
		}
		if err != nil {
			return nil, mdwerror.Wrap(err, "malformed translation table").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("i18n.LoadStrings").
				WithDetail("localization", loc).
				WithDetail("table", table+"."+ext)
		}
		return data, nil
	}
	return nil, nil
}

// Localization returns the requested localization
func (s *Strings) Localization() string {
	if s == nil {
		return ""
	}
	return s.localization
}

// Localized returns the translation for key, or key when no table has it
func (s *Strings) Localized(key string) string {
	if value, ok := s.Lookup(key); ok {
		return value
	}
	return key
}

// Lookup returns the translation for key and whether one was found.
// Keys are matched literally first, then as dot-separated paths into nested tables.
func (s *Strings) Lookup(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	for _, table := range s.tables {
		if value, ok := table[key]; ok {
			if str, ok := scalar(value); ok {
				return str, true
			}
		}
		if value, ok := nestedValue(table, key); ok {
			return value, true
		}
	}
	return "", false
}

func nestedValue(data map[string]interface{}, key string) (string, bool) {
	keys := strings.Split(key, ".")
	current := data

	for i, k := range keys {
		value, ok := current[k]
		if !ok {
			return "", false
		}
		if i == len(keys)-1 {
			return scalar(value)
		}
		switch next := value.(type) {
		case map[string]interface{}:
			current = next
		case TranslationData:
			current = next
		default:
			return "", false
		}
	}
	return "", false
}

func scalar(value interface{}) (string, bool) {
	switch v := value.(type) {
	case map[string]interface{}, TranslationData:
		return "", false
	case []interface{}:
		if len(v) == 0 {
			return "", false
		}
		return fmt.Sprintf("%v", v[0]), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}
