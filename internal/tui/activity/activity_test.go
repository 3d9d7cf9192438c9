package activity

import (
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func apply(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestCounter(t *testing.T) {
	tests := []struct {
		name   string
		msgs   []tea.Msg
		count  int
		active bool
	}{
		{"idle", nil, 0, false},
		{"begin", []tea.Msg{BeginMsg{}}, 1, true},
		{"begin begin end", []tea.Msg{BeginMsg{}, BeginMsg{}, EndMsg{}}, 1, true},
		{"balanced", []tea.Msg{BeginMsg{}, EndMsg{}}, 0, false},
		{"extra ends clamp", []tea.Msg{BeginMsg{}, EndMsg{}, EndMsg{}, EndMsg{}}, 0, false},
		{"end before begin", []tea.Msg{EndMsg{}, BeginMsg{}}, 1, true},
		{"force", []tea.Msg{BeginMsg{}, BeginMsg{}, BeginMsg{}, EndMsg{Force: true}}, 0, false},
		{"completed", []tea.Msg{BeginMsg{}, BeginMsg{}, CompletedMsg{}}, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := apply(New("working"), tt.msgs...)
			if m.Count() != tt.count {
				t.Errorf("Count() = %d; want %d", m.Count(), tt.count)
			}
			if m.Active() != tt.active {
				t.Errorf("Active() = %v; want %v", m.Active(), tt.active)
			}
		})
	}
}

func TestBeginStartsSpinner(t *testing.T) {
	m := New("")
	m, cmd := m.Update(BeginMsg{})
	if cmd == nil {
		t.Fatal("first Begin should schedule a spinner tick")
	}
	if _, cmd = m.Update(BeginMsg{}); cmd != nil {
		t.Error("second Begin should not schedule another tick")
	}
}

func TestView(t *testing.T) {
	m := New("loading")
	if got := m.View(); got != "" {
		t.Errorf("idle View() = %q; want empty", got)
	}
	m = apply(m, BeginMsg{})
	if got := m.View(); got == "" {
		t.Error("active View() should not be empty")
	}
}

func TestCompletedDeliversInnerMessage(t *testing.T) {
	type resultMsg struct{ value string }

	m := apply(New(""), BeginMsg{})
	m, cmd := m.Update(CompletedMsg{Msg: resultMsg{"ok"}})
	if m.Active() {
		t.Error("Completed should end the operation")
	}
	if cmd == nil {
		t.Fatal("Completed should forward the inner message")
	}
	if got, ok := cmd().(resultMsg); !ok || got.value != "ok" {
		t.Errorf("forwarded %#v; want resultMsg{ok}", got)
	}
}

func TestTrack(t *testing.T) {
	if Track(nil) != nil {
		t.Error("Track(nil) should be nil")
	}

	wrapped := complete(func() tea.Msg { return "done" })
	msg, ok := wrapped().(CompletedMsg)
	if !ok {
		t.Fatalf("complete() produced %T; want CompletedMsg", msg)
	}
	if msg.Msg != "done" {
		t.Errorf("CompletedMsg.Msg = %v; want done", msg.Msg)
	}
}

type recorder struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *recorder) Send(msg tea.Msg) {
	r.mu.Lock()
	r.msgs = append(r.msgs, msg)
	r.mu.Unlock()
}

func TestTracker(t *testing.T) {
	rec := &recorder{}
	tracker := NewTracker(rec)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.Do(func() {})
		}()
	}
	wg.Wait()
	tracker.Begin()

	if len(rec.msgs) != 17 {
		t.Fatalf("recorded %d messages; want 17", len(rec.msgs))
	}

	// Each goroutine posts Begin before End, so replay never dips below zero.
	m := apply(New(""), rec.msgs...)
	if m.Count() != 1 {
		t.Errorf("Count() after replay = %d; want 1", m.Count())
	}

	tracker.Reset()
	m = apply(m, rec.msgs[len(rec.msgs)-1])
	if m.Active() {
		t.Error("Reset should clear the count")
	}
}
