// File: colorx_test.go
// Title: Unit Tests for Color Helpers
// Description: Tests hex parsing, RGB construction and HSB edits.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial test implementation

package colorx

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-6

func TestFromHexString(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"#ff8800", "#ff8800", true},
		{"ff8800", "#ff8800", true},
		{"0x00ff00", "#00ff00", true},
		{" #0000ff", "#0000ff", true},
		{"#fff", "#000fff", true},
		{"#12zz", "#000012", true},
		{"#", "", false},
		{"zz", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, ok := FromHexString(tt.input, 1)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, c.Hex())
			}
		})
	}
}

func TestFromRGB(t *testing.T) {
	c := FromRGB(255, 128, 0, 0.5)
	assert.InDelta(t, 1.0, c.R, delta)
	assert.InDelta(t, 128.0/255, c.G, delta)
	assert.InDelta(t, 0.0, c.B, delta)
	assert.InDelta(t, 0.5, c.A, delta)

	clamped := FromRGB(300, -5, 0, 2)
	r, g, b, a := clamped.RGBA255()
	assert.Equal(t, [4]uint8{255, 0, 0, 255}, [4]uint8{r, g, b, a})
}

func TestHSB(t *testing.T) {
	red := FromHex(0xff0000, 1)
	h, s, b := red.HSB()
	assert.InDelta(t, 0.0, h, delta)
	assert.InDelta(t, 1.0, s, delta)
	assert.InDelta(t, 1.0, b, delta)

	assert.Equal(t, "#00ff00", red.WithHue(1.0/3).Hex())
	assert.Equal(t, "#0000ff", red.WithHue(2.0/3).Hex())
	assert.Equal(t, "#ffffff", red.WithSaturation(0).Hex())
	assert.Equal(t, "#800000", red.WithBrightness(0.5).Hex())
	assert.Equal(t, "#ff000080", red.WithAlpha(0.5).HexWithAlpha())
}

func TestEditsKeepAlpha(t *testing.T) {
	c := FromHex(0x3366cc, 0.25)
	assert.InDelta(t, 0.25, c.WithHue(0.1).A, delta)
	assert.InDelta(t, 0.25, c.WithSaturation(0.1).A, delta)
	assert.InDelta(t, 0.25, c.WithBrightness(0.1).A, delta)
}

func TestHSBRoundTrip(t *testing.T) {
	c := FromHex(0x3366cc, 1)
	h, s, b := c.HSB()
	assert.Equal(t, c.Hex(), FromHSB(h, s, b, 1).Hex())
}

func TestLipgloss(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#ff8800"), FromHex(0xff8800, 1).Lipgloss())
}

func TestHueWraps(t *testing.T) {
	assert.Equal(t, "#ff0000", FromHSB(1, 1, 1, 1).Hex())
	assert.Equal(t, "#0000ff", FromHSB(-1.0/3, 1, 1, 1).Hex())
}
