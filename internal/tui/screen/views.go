// ============================================================================
// sparrow - Conversion Helpers
// ============================================================================
//
// Package:     screen
// Description: Concrete screens, stacks, tab containers and dialogs
// Author:      msto63
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package screen

// View is a plain named screen.
type View struct {
	Title string
	over  Screen
}

// NewView creates a view with the given title.
func NewView(title string) *View {
	return &View{Title: title}
}

// Presented implements Screen.
func (v *View) Presented() Screen { return v.over }

// Present shows s on top of v, replacing anything presented before.
func (v *View) Present(s Screen) { v.over = s }

// Dismiss removes whatever v presents.
func (v *View) Dismiss() { v.over = nil }

// Name returns the title.
func (v *View) Name() string { return v.Title }

func (v *View) isNil() bool { return v == nil }

// Stack is a navigation stack.
type Stack struct {
	View
	screens []Screen
}

// NewStack creates a stack holding screens, bottom first.
func NewStack(title string, screens ...Screen) *Stack {
	return &Stack{View: View{Title: title}, screens: screens}
}

// Screens implements Navigation.
func (s *Stack) Screens() []Screen { return s.screens }

// Push adds a screen on top.
func (s *Stack) Push(screen Screen) { s.screens = append(s.screens, screen) }

// Pop removes and returns the top screen. The root screen is never popped.
func (s *Stack) Pop() Screen {
	if len(s.screens) <= 1 {
		return nil
	}
	top := s.screens[len(s.screens)-1]
	s.screens = s.screens[:len(s.screens)-1]
	return top
}

func (s *Stack) isNil() bool { return s == nil }

// Tabs is a tab container.
type Tabs struct {
	View
	tabs  []Screen
	index int
}

// NewTabs creates a container with the first tab selected.
func NewTabs(title string, tabs ...Screen) *Tabs {
	return &Tabs{View: View{Title: title}, tabs: tabs}
}

// Selected implements TabContainer.
func (t *Tabs) Selected() Screen {
	if t.index < 0 || t.index >= len(t.tabs) {
		return nil
	}
	return t.tabs[t.index]
}

// Tabs returns all tabs in order.
func (t *Tabs) Tabs() []Screen { return t.tabs }

// Index returns the selected position.
func (t *Tabs) Index() int { return t.index }

// Select chooses tab i. Out-of-range indexes are ignored.
func (t *Tabs) Select(i int) bool {
	if i < 0 || i >= len(t.tabs) {
		return false
	}
	t.index = i
	return true
}

// Next selects the following tab, wrapping around.
func (t *Tabs) Next() {
	if len(t.tabs) == 0 {
		return
	}
	t.index = (t.index + 1) % len(t.tabs)
}

func (t *Tabs) isNil() bool { return t == nil }

// Dialog is an alert screen.
type Dialog struct {
	View
	Message string
}

// NewDialog creates an alert.
func NewDialog(title, message string) *Dialog {
	return &Dialog{View: View{Title: title}, Message: message}
}

// IsAlert implements Alert.
func (d *Dialog) IsAlert() bool { return true }

func (d *Dialog) isNil() bool { return d == nil }

// Name returns the title of s when it has one.
func Name(s Screen) string {
	if n, ok := s.(interface{ Name() string }); ok && !isNil(s) {
		return n.Name()
	}
	return ""
}
