// Package colorx builds RGBA colors from hex and RGB values and edits them
// in the HSB (hue, saturation, brightness) space.
//
// Package: colorx
// Title: Color Helpers
// Description: Conversions between RGB and HSB use
//              github.com/lucasb-eyer/go-colorful. All components, including
//              hue, are in the range 0...1. Colors render as "#rrggbb" for
//              use with lipgloss styles.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
package colorx

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/msto63/sparrow/foundation/utils/stringx"
)

// Color is an RGBA color with components in 0...1
type Color struct {
	R, G, B, A float64
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// FromHex builds a color from 0xRRGGBB
func FromHex(hex uint32, alpha float64) Color {
	return Color{
		R: float64((hex>>16)&0xff) / 255,
		G: float64((hex>>8)&0xff) / 255,
		B: float64(hex&0xff) / 255,
		A: clamp01(alpha),
	}
}

// FromRGB builds a color from 0...255 components; values outside the range
// are clamped
func FromRGB(r, g, b int, alpha float64) Color {
	component := func(v int) float64 {
		return clamp01(float64(v) / 255)
	}
	return Color{R: component(r), G: component(g), B: component(b), A: clamp01(alpha)}
}

// FromHexString reads "#ff8800", "ff8800" or "0xff8800". Scanning stops at
// the first non-hex character; it fails only when no digit is found.
func FromHexString(s string, alpha float64) (Color, bool) {
	v, ok := stringx.HexInt(strings.ReplaceAll(s, "#", ""))
	if !ok {
		return Color{}, false
	}
	return FromHex(v, alpha), true
}

// FromHSB builds a color from hue, saturation and brightness in 0...1. Hue
// wraps around, so 1 is red again.
func FromHSB(h, s, b, alpha float64) Color {
	hue := math.Mod(h, 1)
	if hue < 0 {
		hue++
	}
	return fromColorful(colorful.Hsv(hue*360, clamp01(s), clamp01(b)), alpha)
}

func fromColorful(c colorful.Color, alpha float64) Color {
	c = c.Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: clamp01(alpha)}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// HSB returns hue, saturation and brightness in 0...1
func (c Color) HSB() (h, s, b float64) {
	h, s, b = c.colorful().Hsv()
	return h / 360, s, b
}

// WithHue returns c with its hue replaced
func (c Color) WithHue(hue float64) Color {
	_, s, b := c.HSB()
	return FromHSB(hue, s, b, c.A)
}

// WithSaturation returns c with its saturation replaced
func (c Color) WithSaturation(saturation float64) Color {
	h, _, b := c.HSB()
	return FromHSB(h, saturation, b, c.A)
}

// WithBrightness returns c with its brightness replaced
func (c Color) WithBrightness(brightness float64) Color {
	h, s, _ := c.HSB()
	return FromHSB(h, s, brightness, c.A)
}

// WithAlpha returns c with its alpha replaced
func (c Color) WithAlpha(alpha float64) Color {
	c.A = clamp01(alpha)
	return c
}

// RGBA255 returns the components scaled to 0...255
func (c Color) RGBA255() (r, g, b, a uint8) {
	scale := func(v float64) uint8 {
		return uint8(math.Round(clamp01(v) * 255))
	}
	return scale(c.R), scale(c.G), scale(c.B), scale(c.A)
}

// Hex returns "#rrggbb"
func (c Color) Hex() string {
	return c.colorful().Clamped().Hex()
}

// HexWithAlpha returns "#rrggbbaa"
func (c Color) HexWithAlpha() string {
	_, _, _, a := c.RGBA255()
	return fmt.Sprintf("%s%02x", c.Hex(), a)
}

// Lipgloss returns the color for lipgloss styles; alpha is ignored
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// String returns the hex form with alpha
func (c Color) String() string {
	return c.HexWithAlpha()
}
