// ============================================================================
// sparrow - Conversion Helpers
// ============================================================================
//
// Package:     screen
// Description: Screen hierarchy and top-most screen lookup
// Author:      msto63
// Created:     2026-10-14
// License:     MIT
// ============================================================================

// Package screen models a tree of presented screens and finds the one the
// user currently sees.
package screen

// Screen is anything that can present another screen on top of itself.
type Screen interface {
	// Presented returns the screen shown on top of this one, or nil.
	Presented() Screen
}

// Navigation is a stack of screens. The last one is visible.
type Navigation interface {
	Screen
	Screens() []Screen
}

// TabContainer shows one of several screens at a time.
type TabContainer interface {
	Screen
	Selected() Screen
}

// Alert is a transient dialog.
type Alert interface {
	Screen
	IsAlert() bool
}

// Top returns the top-most screen reachable from root by following the
// presented chain. A presented navigation stack resolves to its last
// screen and a presented tab container to its selected screen. With
// exceptAlert the walk stops before a presented alert. Top returns nil for a
// nil root or when a container has nothing to show.
func Top(root Screen, exceptAlert bool) Screen {
	current := root
	if isNil(current) {
		return nil
	}
	presented := current.Presented()

	for !isNil(presented) {
		if exceptAlert && isAlert(presented) {
			break
		}

		switch p := presented.(type) {
		case Navigation:
			current = last(p.Screens())
		case TabContainer:
			current = p.Selected()
		default:
			current = p
		}

		if isNil(current) {
			return nil
		}
		presented = current.Presented()
	}

	return current
}

func last(screens []Screen) Screen {
	if len(screens) == 0 {
		return nil
	}
	return screens[len(screens)-1]
}

func isAlert(s Screen) bool {
	a, ok := s.(Alert)
	return ok && a.IsAlert()
}

// isNil also catches typed nil pointers stored in the interface.
func isNil(s Screen) bool {
	if s == nil {
		return true
	}
	if n, ok := s.(interface{ isNil() bool }); ok {
		return n.isNil()
	}
	return false
}
