// ============================================================================
// sparrow - Conversion Helpers
// ============================================================================
//
// Package:     tui
// Description: Shared palette and lipgloss styles for the terminal tools
// Author:      msto63
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/sparrow/foundation/utils/colorx"
)

// Palette. Secondary tones are derived from the primary colors so that a
// single hex change restyles the whole UI.
var (
	primary   = mustColor("#7C3AED")
	secondary = mustColor("#10B981")
	accent    = mustColor("#F59E0B")
	failure   = mustColor("#EF4444")
	muted     = primary.WithSaturation(0.12).WithBrightness(0.5)
	surface   = primary.WithSaturation(0.3).WithBrightness(0.2)

	colorPrimary   = primary.Lipgloss()
	colorSecondary = secondary.Lipgloss()
	colorAccent    = accent.Lipgloss()
	colorError     = failure.Lipgloss()
	colorMuted     = muted.Lipgloss()
	colorBg        = surface.Lipgloss()
	colorFg        = lipgloss.Color("#F9FAFB")
)

func mustColor(hex string) colorx.Color {
	c, ok := colorx.FromHexString(hex, 1)
	if !ok {
		panic("tui: invalid palette color " + hex)
	}
	return c
}

// Styles
var (
	// Title styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	// Box styles
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	FocusedBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)

	// Result styles
	MatchStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	CaptureStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	NoMatchStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(colorError)

	// Status styles
	StatusBarStyle = lipgloss.NewStyle().
			Background(colorBg).
			Foreground(colorFg).
			Padding(0, 1)

	// Help style
	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	// Tab styles
	TabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(colorMuted)

	ActiveTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(colorPrimary).
			Bold(true).
			Underline(true)
)

// AccentColor returns the spinner/highlight color.
func AccentColor() lipgloss.Color {
	return colorAccent
}

// Helper functions
func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}

func RenderError(err string) string {
	return ErrorMessageStyle.Render("error: " + err)
}

func RenderHelp(help string) string {
	return HelpStyle.Render(help)
}

func RenderStatus(status string) string {
	return StatusBarStyle.Render(status)
}
