// ============================================================================
// sparrow - Conversion Helpers
// ============================================================================
//
// Package:     playground
// Description: Interactive regex and entity detection playground
// Author:      msto63
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package playground

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/sparrow/foundation/convert"
	mdwlog "github.com/msto63/sparrow/foundation/core/log"
	"github.com/msto63/sparrow/foundation/utils/stringx"
	"github.com/msto63/sparrow/internal/tui"
	"github.com/msto63/sparrow/internal/tui/activity"
	"github.com/msto63/sparrow/internal/tui/field"
	"github.com/msto63/sparrow/internal/tui/rows"
	"github.com/msto63/sparrow/internal/tui/screen"
)

// Input focus order on the regex tab
const (
	focusPattern = iota
	focusText
	focusReplacement
	focusCount
)

const helpText = "tab: next field • ctrl+t: switch tab • f1: help • esc: close • ctrl+c: quit"

// Config holds playground configuration
type Config struct {
	// InputLimit caps every input field, in runes.
	InputLimit int
	// Helper performs all conversions. Nil selects convert.New().
	Helper *convert.Helper
	// Logger receives debug output. Nil discards it.
	Logger *mdwlog.Logger
	// Pattern and Text seed the inputs.
	Pattern string
	Text    string
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{InputLimit: 256}
}

// Model is the main Bubbletea model for the playground
type Model struct {
	// State
	width  int
	height int
	focus  int
	seq    int

	// Screens
	root   *screen.View
	tabs   *screen.Tabs
	regex  *screen.View
	detect *screen.View
	help   *screen.Dialog

	// Components
	pattern     textinput.Model
	text        textinput.Model
	replacement textinput.Model
	activity    activity.Model

	// Results
	registry *rows.Registry
	results  []renderer
	exact    bool
	contains bool
	replaced string

	// Configuration
	limit  int
	helper *convert.Helper
	logger *mdwlog.Logger
}

// New creates a new playground model
func New(cfg Config) Model {
	if cfg.InputLimit <= 0 {
		cfg.InputLimit = DefaultConfig().InputLimit
	}
	if cfg.Helper == nil {
		cfg.Helper = convert.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = mdwlog.Discard()
	}

	regex := screen.NewView("Regex")
	detect := screen.NewView("Detect")
	tabs := screen.NewTabs("Playground", regex, detect)
	root := screen.NewView("sparrow")
	root.Present(tabs)

	m := Model{
		root:     root,
		tabs:     tabs,
		regex:    regex,
		detect:   detect,
		help:     screen.NewDialog("Help", helpText),
		activity: activity.New("evaluating"),
		registry: newRegistry(),
		limit:    cfg.InputLimit,
		helper:   cfg.Helper,
		logger:   cfg.Logger.WithName("playground"),
	}

	m.pattern = newInput("pattern", cfg.Pattern, cfg.InputLimit)
	m.text = newInput("text", cfg.Text, cfg.InputLimit)
	m.replacement = newInput("replacement", "", cfg.InputLimit)
	m.pattern.Focus()

	return m
}

func newInput(placeholder, value string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.SetValue(value)
	return field.Limit(ti, limit)
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		activity.Track(m.evaluate()),
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		inputWidth := msg.Width - 8
		m.pattern.Width = inputWidth
		m.text.Width = inputWidth
		m.replacement.Width = inputWidth

	case regexResultMsg:
		if msg.seq == m.seq {
			m.applyRegex(msg)
		}

	case detectResultMsg:
		if msg.seq == m.seq {
			m.applyDetect(msg)
		}
	}

	m.activity, cmd = m.activity.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyF1:
		if view, ok := m.tabs.Selected().(*screen.View); ok {
			view.Present(m.help)
		}
		return m, nil

	case tea.KeyEsc:
		if m.showingHelp() {
			m.regex.Dismiss()
			m.detect.Dismiss()
		}
		return m, nil

	case tea.KeyCtrlT:
		m.tabs.Next()
		m.setFocus(focusText)
		return m.reevaluate()

	case tea.KeyTab:
		if m.current() == m.regex {
			m.setFocus((m.focus + 1) % focusCount)
		}
		return m, nil
	}

	if m.showingHelp() {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusPattern:
		m.pattern, cmd = m.pattern.Update(msg)
	case focusText:
		m.text, cmd = m.text.Update(msg)
	case focusReplacement:
		m.replacement, cmd = m.replacement.Update(msg)
	}

	next, eval := m.reevaluate()
	return next, tea.Batch(cmd, eval)
}

// current returns the visible content screen, ignoring the help dialog
func (m Model) current() screen.Screen {
	return screen.Top(m.root, true)
}

func (m Model) showingHelp() bool {
	return screen.Top(m.root, false) == screen.Screen(m.help)
}

func (m *Model) setFocus(focus int) {
	if m.current() == m.detect {
		focus = focusText
	}
	m.focus = focus
	m.pattern.Blur()
	m.text.Blur()
	m.replacement.Blur()
	switch focus {
	case focusPattern:
		m.pattern.Focus()
	case focusText:
		m.text.Focus()
	case focusReplacement:
		m.replacement.Focus()
	}
}

// reevaluate enforces the input limit and schedules a fresh evaluation
func (m Model) reevaluate() (tea.Model, tea.Cmd) {
	field.FilterLength(&m.pattern, m.limit)
	field.FilterLength(&m.text, m.limit)
	field.FilterLength(&m.replacement, m.limit)

	m.seq++
	return m, activity.Track(m.evaluate())
}

// evaluate captures the current inputs in a command
func (m Model) evaluate() tea.Cmd {
	seq := m.seq
	helper := m.helper
	pattern := m.pattern.Value()
	text := m.text.Value()
	replacement := m.replacement.Value()

	if m.current() == m.detect {
		return func() tea.Msg {
			msg := detectResultMsg{seq: seq, phones: helper.DetectPhoneNumbers(text)}
			for _, link := range helper.DetectLinks(text) {
				msg.links = append(msg.links, link.String())
			}
			return msg
		}
	}

	return func() tea.Msg {
		msg := regexResultMsg{seq: seq}
		if pattern == "" {
			return msg
		}
		msg.exact = helper.MatchExact(text, pattern)
		msg.contains = helper.MatchAny(text, pattern)
		msg.captures = helper.ExtractAll(text, pattern)
		if replacement != "" {
			msg.replaced = helper.ReplaceAll(text, pattern, replacement)
		}
		return msg
	}
}

func (m *Model) recycle() {
	for _, row := range m.results {
		m.registry.Recycle(row)
	}
	m.results = m.results[:0]
}

func (m *Model) applyRegex(msg regexResultMsg) {
	m.recycle()
	m.exact = msg.exact
	m.contains = msg.contains
	m.replaced = msg.replaced
	for i, capture := range msg.captures {
		row := rows.Dequeue[*captureRow](m.registry, captureRowID)
		row.index = i
		row.text = capture
		m.results = append(m.results, row)
	}
	m.logger.Debug("regex evaluated", mdwlog.Fields{
		"seq":      msg.seq,
		"exact":    msg.exact,
		"captures": len(msg.captures),
	})
}

func (m *Model) applyDetect(msg detectResultMsg) {
	m.recycle()
	m.exact, m.contains, m.replaced = false, false, ""
	for _, link := range msg.links {
		m.results = append(m.results, m.entity("link", link))
	}
	for _, phone := range msg.phones {
		m.results = append(m.results, m.entity("phone", phone))
	}
	m.logger.Debug("entities detected", mdwlog.Fields{
		"seq":    msg.seq,
		"links":  len(msg.links),
		"phones": len(msg.phones),
	})
}

func (m *Model) entity(kind, value string) *entityRow {
	row := rows.Dequeue[*entityRow](m.registry, entityRowID)
	row.kind = kind
	row.value = value
	return row
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(tui.RenderTitle("sparrow playground"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.showingHelp() {
		b.WriteString(tui.FocusedBoxStyle.Render(m.help.Title + "\n\n" + m.help.Message))
		b.WriteString("\n")
		return b.String()
	}

	if m.current() == m.regex {
		b.WriteString(m.renderInput(m.pattern, m.focus == focusPattern))
		b.WriteString("\n")
	}
	b.WriteString(m.renderInput(m.text, m.focus == focusText))
	b.WriteString("\n")
	if m.current() == m.regex {
		b.WriteString(m.renderInput(m.replacement, m.focus == focusReplacement))
		b.WriteString("\n")
	}

	b.WriteString(m.renderResults())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(tui.RenderHelp(helpText))

	return b.String()
}

func (m Model) renderTabs() string {
	var parts []string
	for i, tab := range m.tabs.Tabs() {
		name := screen.Name(tab)
		if i == m.tabs.Index() {
			parts = append(parts, tui.ActiveTabStyle.Render(name))
		} else {
			parts = append(parts, tui.TabStyle.Render(name))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderInput(input textinput.Model, focused bool) string {
	style := tui.BoxStyle
	if focused {
		style = tui.FocusedBoxStyle
	}
	return style.Render(input.View())
}

func (m Model) renderResults() string {
	var b strings.Builder

	if m.current() == m.regex && m.pattern.Value() != "" {
		b.WriteString(fmt.Sprintf("exact %s  contains %s\n", yesNo(m.exact), yesNo(m.contains)))
		if m.replaced != "" {
			b.WriteString(tui.SubtitleStyle.Render("replaced ") + m.replaced + "\n")
		}
	}

	if len(m.results) == 0 {
		b.WriteString(tui.NoMatchStyle.Render("no results"))
		return b.String()
	}
	for _, row := range m.results {
		b.WriteString(row.Render(m.width))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderStatus() string {
	status := fmt.Sprintf("%s • %s • %d/%d", screen.Name(m.current()), m.helper.Context(),
		len([]rune(m.text.Value())), m.limit)
	if m.activity.Active() {
		status += " • " + m.activity.View()
	}
	return tui.RenderStatus(status)
}

func yesNo(v bool) string {
	if v {
		return tui.MatchStyle.Render("yes")
	}
	return tui.NoMatchStyle.Render("no")
}

// clip fits s into width runes. A non-positive width disables clipping.
func clip(s string, width int) string {
	if width <= 0 {
		return s
	}
	return stringx.Truncate(s, width, "~")
}

// Run starts the playground TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
