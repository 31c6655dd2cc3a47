// Package colour implements the colour model used throughout tintlint:
// typed sRGB, HSL, OKLCH and CIE Lab/LCH values, the conversions between
// them, WCAG relative luminance, alpha compositing and a CSS colour parser.
package colour

import (
	"fmt"
	"math"
)

// RGB represents a colour in 8-bit sRGB. It is the canonical interchange
// form; every other space converts to and from it.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// HSL represents a colour in the cylindrical HSL space.
// H is the hue in degrees [0, 360), S and L are percentages [0, 100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// String returns the HSL colour as a CSS string, e.g. "hsl(20, 100%, 50%)".
func (hsl HSL) String() string {
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)",
		formatFloat(hsl.H), formatFloat(hsl.S), formatFloat(hsl.L))
}

// NewHSL constructs an HSL value with the hue wrapped into [0, 360) and
// saturation and lightness clamped to [0, 100].
func NewHSL(h, s, l float64) HSL {
	return HSL{
		H: wrapHue(h),
		S: clampFloat(s, 0, 100),
		L: clampFloat(l, 0, 100),
	}
}

// OKLCH represents a colour in the perceptually uniform OKLCH space.
// L is lightness [0, 1], C is chroma [0, ~0.4] and H is the hue angle in
// degrees [0, 360). A fixed-size step in L produces a visually consistent
// lightness change regardless of hue or chroma.
type OKLCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// String returns the OKLCH colour as a CSS string, e.g. "oklch(0.628 0.258 29.2)".
func (ok OKLCH) String() string {
	return fmt.Sprintf("oklch(%.3f %.3f %.1f)", ok.L, ok.C, ok.H)
}

// Lab represents a colour in CIE Lab. L is lightness [0, 100]; A and B are
// the opponent axes, typically within ±160. Supported as a parse and
// conversion target only.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// String returns the Lab colour as a CSS string, e.g. "lab(53.2 80.1 67.2)".
func (lab Lab) String() string {
	return fmt.Sprintf("lab(%.1f %.1f %.1f)", lab.L, lab.A, lab.B)
}

// LCH is the cylindrical form of Lab: lightness [0, 100], chroma >= 0 and
// hue in degrees [0, 360).
type LCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// String returns the LCH colour as a CSS string, e.g. "lch(53.2 104.6 40.0)".
func (lch LCH) String() string {
	return fmt.Sprintf("lch(%.1f %.1f %.1f)", lch.L, lch.C, lch.H)
}

// wrapHue normalises a hue angle into [0, 360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// clampFloat restricts v to the range [lo, hi].
func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clamp01 clamps a value to the [0, 1] range.
func clamp01(v float64) float64 {
	return clampFloat(v, 0, 1)
}

// round8 quantises a [0, 1] channel value to 8 bits.
func round8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255.0))
}

// formatFloat renders a float without trailing zeros, matching how CSS
// colour values are usually written.
func formatFloat(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
