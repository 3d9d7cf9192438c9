// ============================================================================
// sparrow - Conversion Helpers
// ============================================================================
//
// Package:     field
// Description: Input length limiting for text inputs
// Author:      msto63
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package field

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/msto63/sparrow/foundation/utils/stringx"
)

// FilterLength truncates the input's value to limit runes once its length
// reaches limit and returns the resulting text. A nil input yields "". A
// negative limit leaves the value untouched.
func FilterLength(input *textinput.Model, limit int) string {
	if input == nil {
		return ""
	}
	text, cut := stringx.LimitLength(input.Value(), limit)
	if cut {
		input.SetValue(text)
	}
	return text
}

// Limit returns a copy of input that enforces limit on every keystroke via
// the bubbles character limit, and truncates the current value.
func Limit(input textinput.Model, limit int) textinput.Model {
	FilterLength(&input, limit)
	if limit >= 0 {
		input.CharLimit = limit
	}
	return input
}
