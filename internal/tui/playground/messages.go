// ============================================================================
// sparrow - Conversion Helpers
// ============================================================================
//
// Package:     playground
// Description: Message types for async evaluation in the playground
// Author:      msto63
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package playground

// Message types for tea.Cmd async operations

// regexResultMsg carries the outcome of one regex evaluation
type regexResultMsg struct {
	seq      int
	exact    bool
	contains bool
	captures []string
	replaced string
}

// detectResultMsg carries the entities found in the sample text
type detectResultMsg struct {
	seq    int
	links  []string
	phones []string
}
