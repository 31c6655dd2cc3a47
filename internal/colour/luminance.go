package colour

import "math"

// Luminance calculates the relative luminance of a colour according to
// WCAG 2.x. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG22/#dfn-relative-luminance.
func Luminance(rgb RGB) float64 {
	r := gammaCorrect(float64(rgb.R) / 255.0)
	g := gammaCorrect(float64(rgb.G) / 255.0)
	b := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect linearises a single sRGB channel using the WCAG transfer
// function. The break point is 0.03928 as published in the guidelines.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// IsLight reports whether a colour reads as light, i.e. its relative
// luminance is at least 0.5. Used to pick readable overlay text.
func IsLight(rgb RGB) bool {
	return Luminance(rgb) >= 0.5
}
