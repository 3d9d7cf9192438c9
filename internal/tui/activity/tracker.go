// ============================================================================
// sparrow - Conversion Helpers
// ============================================================================
//
// Package:     activity
// Description: Posting activity messages from outside the event loop
// Author:      msto63
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package activity

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Sender delivers a message to a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Tracker reports operations to an activity Model from any goroutine. Posts
// are asynchronous; the count changes once the program processes them.
type Tracker struct {
	target Sender
}

// NewTracker creates a tracker posting to target.
func NewTracker(target Sender) *Tracker {
	return &Tracker{target: target}
}

// Begin posts a BeginMsg.
func (t *Tracker) Begin() {
	t.target.Send(BeginMsg{})
}

// End posts an EndMsg.
func (t *Tracker) End() {
	t.target.Send(EndMsg{})
}

// Reset posts a forced EndMsg that clears the count.
func (t *Tracker) Reset() {
	t.target.Send(EndMsg{Force: true})
}

// Do runs fn between Begin and End.
func (t *Tracker) Do(fn func()) {
	t.Begin()
	defer t.End()
	fn()
}
