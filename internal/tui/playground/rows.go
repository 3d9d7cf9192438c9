// ============================================================================
// sparrow - Conversion Helpers
// ============================================================================
//
// Package:     playground
// Description: Result rows rendered by the playground
// Author:      msto63
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package playground

import (
	"fmt"

	"github.com/msto63/sparrow/internal/tui"
	"github.com/msto63/sparrow/internal/tui/rows"
)

const (
	captureRowID = "capture"
	entityRowID  = "entity"
)

// renderer is a row that can draw itself
type renderer interface {
	rows.Row
	Render(width int) string
}

// captureRow shows one extracted capture
type captureRow struct {
	index int
	text  string
}

func (r *captureRow) ReuseIdentifier() string { return captureRowID }

func (r *captureRow) PrepareForReuse() {
	r.index = 0
	r.text = ""
}

func (r *captureRow) Render(width int) string {
	label := fmt.Sprintf("%3d ", r.index)
	return tui.SubtitleStyle.Render(label) + tui.CaptureStyle.Render(clip(r.text, width-len(label)))
}

// entityRow shows one detected link or phone number
type entityRow struct {
	kind  string
	value string
}

func (r *entityRow) ReuseIdentifier() string { return entityRowID }

func (r *entityRow) PrepareForReuse() {
	r.kind = ""
	r.value = ""
}

func (r *entityRow) Render(width int) string {
	label := fmt.Sprintf("%-6s ", r.kind)
	return tui.SubtitleStyle.Render(label) + tui.MatchStyle.Render(clip(r.value, width-len(label)))
}

func newRegistry() *rows.Registry {
	registry := rows.NewRegistry()
	rows.Register(registry, func() *captureRow { return &captureRow{} })
	rows.Register(registry, func() *entityRow { return &entityRow{} })
	return registry
}
