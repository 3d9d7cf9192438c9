// ============================================================================
// sparrow - Conversion Helpers
// ============================================================================
//
// Package:     activity
// Description: Reference-counted activity indicator for Bubble Tea programs
// Author:      msto63
// Created:     2026-10-14
// License:     MIT
// ============================================================================

// Package activity counts outstanding background operations and renders a
// spinner while at least one of them is running.
//
// The count lives inside Model and is only changed by Model.Update, so it is
// owned by the Bubble Tea event loop. Goroutines outside the loop report work
// through a Tracker, which posts BeginMsg and EndMsg to the program.
package activity

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/sparrow/internal/tui"
)

// BeginMsg marks the start of one operation.
type BeginMsg struct{}

// EndMsg marks the end of one operation. Force resets the count to zero
// regardless of how many operations are still outstanding.
type EndMsg struct {
	Force bool
}

// CompletedMsg is emitted by a command wrapped with Track. Model.Update
// counts it as an EndMsg and then delivers Msg to the program.
type CompletedMsg struct {
	Msg tea.Msg
}

// Model is the activity indicator.
type Model struct {
	// Label is rendered next to the spinner.
	Label string

	count   int
	spinner spinner.Model
}

// New creates an idle indicator.
func New(label string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(tui.AccentColor())

	return Model{
		Label:   label,
		spinner: sp,
	}
}

// Init implements the Bubble Tea component contract. An idle indicator has
// nothing to schedule.
func (m Model) Init() tea.Cmd {
	if m.Active() {
		return m.spinner.Tick
	}
	return nil
}

// Count returns the number of outstanding operations.
func (m Model) Count() int {
	return m.count
}

// Active reports whether at least one operation is outstanding.
func (m Model) Active() bool {
	return m.count > 0
}

// Update applies activity messages and advances the spinner.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case BeginMsg:
		return m.begin()

	case EndMsg:
		m.end(msg.Force)
		return m, nil

	case CompletedMsg:
		m.end(false)
		if msg.Msg == nil {
			return m, nil
		}
		inner := msg.Msg
		return m, func() tea.Msg { return inner }

	case spinner.TickMsg:
		// Dropping ticks while idle stops the animation loop.
		if !m.Active() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) begin() (Model, tea.Cmd) {
	m.count++
	if m.count == 1 {
		return m, m.spinner.Tick
	}
	return m, nil
}

func (m *Model) end(force bool) {
	m.count--
	if m.count <= 0 || force {
		m.count = 0
	}
}

// View renders the spinner and label while active and nothing otherwise.
func (m Model) View() string {
	if !m.Active() {
		return ""
	}
	if m.Label == "" {
		return m.spinner.View()
	}
	return m.spinner.View() + " " + m.Label
}

// Begin is a command reporting the start of an operation.
func Begin() tea.Msg {
	return BeginMsg{}
}

// End is a command reporting the end of an operation.
func End() tea.Msg {
	return EndMsg{}
}

// Track wraps cmd so that the indicator counts it while it runs. The
// message produced by cmd is delivered after the count drops.
func Track(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return tea.Sequence(Begin, complete(cmd))
}

func complete(cmd tea.Cmd) tea.Cmd {
	return func() tea.Msg {
		return CompletedMsg{Msg: cmd()}
	}
}
