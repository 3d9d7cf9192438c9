package playground

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/sparrow/foundation/convert"
	"github.com/msto63/sparrow/foundation/core/i18n"
	"github.com/msto63/sparrow/internal/tui/screen"
)

func newTestModel(t *testing.T, cfg Config) Model {
	t.Helper()
	ctx, err := i18n.NewContext("en_US", "UTC")
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	cfg.Helper = convert.New(convert.WithContext(ctx))
	return New(cfg)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T; want Model", next)
	}
	return model, cmd
}

// settle runs the current evaluation synchronously and applies its result.
func settle(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, m.evaluate()())
	return m
}

func TestRegexEvaluation(t *testing.T) {
	m := newTestModel(t, Config{Pattern: `([a-z])(\d)`, Text: "a1b2"})
	m = settle(t, m)

	if m.exact {
		t.Error("exact should be false for a1b2")
	}
	if !m.contains {
		t.Error("contains should be true for a1b2")
	}

	var got []string
	for _, row := range m.results {
		got = append(got, row.(*captureRow).text)
	}
	want := []string{"a1", "a", "1", "b2", "b", "2"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("captures = %v; want %v", got, want)
	}

	if view := m.View(); !strings.Contains(view, "exact") {
		t.Errorf("View() misses the match summary:\n%s", view)
	}
}

func TestReplacement(t *testing.T) {
	m := newTestModel(t, Config{Pattern: "foo", Text: "foo bar foo"})
	m.replacement.SetValue("baz")
	m = settle(t, m)

	if m.replaced != "baz bar baz" {
		t.Errorf("replaced = %q; want %q", m.replaced, "baz bar baz")
	}
}

func TestTypingSchedulesEvaluation(t *testing.T) {
	m := newTestModel(t, Config{Pattern: "a", Text: "abc"})
	before := m.seq

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	if m.seq != before+1 {
		t.Errorf("seq = %d; want %d", m.seq, before+1)
	}
	if cmd == nil {
		t.Fatal("typing should schedule an evaluation")
	}
	if m.pattern.Value() != "ab" {
		t.Errorf("pattern = %q; want ab", m.pattern.Value())
	}
}

func TestStaleResultsIgnored(t *testing.T) {
	m := newTestModel(t, Config{Pattern: `\d`, Text: "1"})
	stale := m.evaluate()()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")})
	m, _ = update(t, m, stale)
	if len(m.results) != 0 {
		t.Errorf("stale result applied: %d rows", len(m.results))
	}
}

func TestInputLimit(t *testing.T) {
	m := newTestModel(t, Config{InputLimit: 5, Text: "abcdefgh"})
	if got := m.text.Value(); got != "abcde" {
		t.Errorf("text = %q; want abcde", got)
	}

	m.setFocus(focusText)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")})
	if got := m.text.Value(); len([]rune(got)) > 5 {
		t.Errorf("text grew past the limit: %q", got)
	}
}

func TestDetectTab(t *testing.T) {
	m := newTestModel(t, Config{Text: "visit https://example.com or call +1 650-253-0000"})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.current() != m.detect {
		t.Fatalf("current screen = %q; want Detect", screen.Name(m.current()))
	}
	if m.focus != focusText {
		t.Errorf("focus = %d; want text", m.focus)
	}

	m = settle(t, m)
	var kinds []string
	for _, row := range m.results {
		kinds = append(kinds, row.(*entityRow).kind)
	}
	if strings.Join(kinds, ",") != "link,phone" {
		t.Errorf("entities = %v; want [link phone]", kinds)
	}
}

func TestRowsAreRecycled(t *testing.T) {
	m := newTestModel(t, Config{Pattern: `\d`, Text: "123"})
	m = settle(t, m)
	m.text.SetValue("1")
	m.seq++
	m = settle(t, m)

	if got := m.registry.Pooled(captureRowID); got != 2 {
		t.Errorf("Pooled(capture) = %d; want 2", got)
	}
	if len(m.results) != 1 {
		t.Errorf("results = %d; want 1", len(m.results))
	}
}

func TestHelpDialog(t *testing.T) {
	m := newTestModel(t, Config{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF1})
	if !m.showingHelp() {
		t.Fatal("F1 should show the help dialog")
	}
	if !strings.Contains(m.View(), "switch tab") {
		t.Error("help view misses key bindings")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showingHelp() {
		t.Error("esc should close the help dialog")
	}
}
