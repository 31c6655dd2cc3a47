package colour

import "math"

// RGBToOKLCH converts an sRGB colour to OKLCH. The chain is sRGB → linear
// sRGB → LMS → OKLab → polar OKLCH. Pure black maps to L≈0 and pure white
// to L≈1.
func RGBToOKLCH(rgb RGB) OKLCH {
	lr := srgbToLinear(float64(rgb.R) / 255.0)
	lg := srgbToLinear(float64(rgb.G) / 255.0)
	lb := srgbToLinear(float64(rgb.B) / 255.0)

	l, a, b := linearToOKLab(lr, lg, lb)

	c := math.Sqrt(a*a + b*b)
	h := math.Atan2(b, a) * (180.0 / math.Pi)
	if h < 0 {
		h += 360.0
	}

	return OKLCH{L: l, C: c, H: h}
}

// OKLCHToRGB converts an OKLCH colour back to 8-bit sRGB. Out-of-gamut
// results are clamped per channel in linear space; 8-bit quantisation is
// the only lossy step for in-gamut colours.
func OKLCHToRGB(ok OKLCH) RGB {
	hRad := ok.H * (math.Pi / 180.0)
	a := ok.C * math.Cos(hRad)
	b := ok.C * math.Sin(hRad)

	lr, lg, lb := oklabToLinear(ok.L, a, b)

	return RGB{
		R: round8(linearToSRGB(clamp01(lr))),
		G: round8(linearToSRGB(clamp01(lg))),
		B: round8(linearToSRGB(clamp01(lb))),
	}
}

// srgbToLinear converts a single sRGB component [0,1] to linear light.
func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// linearToSRGB converts a single linear component [0,1] back to sRGB.
func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

// linearToOKLab converts linear sRGB to OKLab via the LMS intermediate.
func linearToOKLab(r, g, b float64) (float64, float64, float64) {
	// M1: linear sRGB → LMS.
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	// M2: LMS' → OKLab.
	L := 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	A := 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	B := 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp

	return L, A, B
}

// oklabToLinear converts OKLab back to linear sRGB.
func oklabToLinear(L, a, b float64) (float64, float64, float64) {
	// Inverse M2: OKLab → LMS'.
	lp := L + 0.3963377774*a + 0.2158037573*b
	mp := L - 0.1055613458*a - 0.0638541728*b
	sp := L - 0.0894841775*a - 1.2914855480*b

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	// Inverse M1: LMS → linear sRGB.
	r := +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	bl := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return r, g, bl
}

// WithLightness returns a copy of the colour with the given OKLCH lightness,
// preserving the original hue and chroma. Lightness should be in [0, 1].
func WithLightness(rgb RGB, lightness float64) RGB {
	ok := RGBToOKLCH(rgb)
	ok.L = clamp01(lightness)
	return OKLCHToRGB(ok)
}
