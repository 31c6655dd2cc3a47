package colour

import "math"

// RGBToHSL converts an sRGB colour to HSL. Hue is in degrees [0, 360),
// saturation and lightness are percentages [0, 100]. Achromatic colours
// report a hue and saturation of 0.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0

	if delta == 0 {
		// Achromatic (grey).
		return HSL{H: 0, S: 0, L: l * 100}
	}

	var s float64
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h *= 60

	return HSL{H: wrapHue(h), S: s * 100, L: l * 100}
}

// HSLToRGB converts an HSL colour back to 8-bit sRGB. Saturation 0 maps to
// an achromatic grey independent of hue.
func HSLToRGB(hsl HSL) RGB {
	h := wrapHue(hsl.H)
	s := clampFloat(hsl.S, 0, 100) / 100.0
	l := clampFloat(hsl.L, 0, 100) / 100.0

	if s == 0 {
		v := round8(l)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: round8(hueToChannel(p, q, h+120)),
		G: round8(hueToChannel(p, q, h)),
		B: round8(hueToChannel(p, q, h-120)),
	}
}

// hueToChannel is a helper for HSL to RGB conversion. t is a hue offset in
// degrees and may be outside [0, 360).
func hueToChannel(p, q, t float64) float64 {
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}
