package colour

import "math"

// D65 reference white in XYZ.
const (
	whiteX = 0.95047
	whiteY = 1.00000
	whiteZ = 1.08883
)

// RGBToLab converts an sRGB colour to CIE Lab using the D65 illuminant.
func RGBToLab(rgb RGB) Lab {
	lr := srgbToLinear(float64(rgb.R) / 255.0)
	lg := srgbToLinear(float64(rgb.G) / 255.0)
	lb := srgbToLinear(float64(rgb.B) / 255.0)

	// Linear sRGB → XYZ.
	x := 0.4124564*lr + 0.3575761*lg + 0.1804375*lb
	y := 0.2126729*lr + 0.7151522*lg + 0.0721750*lb
	z := 0.0193339*lr + 0.1191920*lg + 0.9503041*lb

	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// LabToRGB converts a CIE Lab colour back to 8-bit sRGB. Out-of-gamut
// results are clamped per channel.
func LabToRGB(lab Lab) RGB {
	fy := (lab.L + 16) / 116
	fx := fy + lab.A/500
	fz := fy - lab.B/200

	x := whiteX * labFInv(fx)
	y := whiteY * labFInv(fy)
	z := whiteZ * labFInv(fz)

	// XYZ → linear sRGB.
	r := +3.2404542*x - 1.5371385*y - 0.4985314*z
	g := -0.9692660*x + 1.8760108*y + 0.0415560*z
	b := +0.0556434*x - 0.2040259*y + 1.0572252*z

	return RGB{
		R: round8(linearToSRGB(clamp01(r))),
		G: round8(linearToSRGB(clamp01(g))),
		B: round8(linearToSRGB(clamp01(b))),
	}
}

// RGBToLCH converts an sRGB colour to the cylindrical form of Lab.
func RGBToLCH(rgb RGB) LCH {
	lab := RGBToLab(rgb)

	c := math.Sqrt(lab.A*lab.A + lab.B*lab.B)
	h := math.Atan2(lab.B, lab.A) * (180.0 / math.Pi)
	if h < 0 {
		h += 360
	}

	return LCH{L: lab.L, C: c, H: h}
}

// LCHToRGB converts an LCH colour back to 8-bit sRGB.
func LCHToRGB(lch LCH) RGB {
	hRad := lch.H * (math.Pi / 180.0)
	return LabToRGB(Lab{
		L: lch.L,
		A: lch.C * math.Cos(hRad),
		B: lch.C * math.Sin(hRad),
	})
}

// labF is the CIE Lab forward companding function.
func labF(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	return t/(3*delta*delta) + 4.0/29.0
}

// labFInv is the inverse of labF.
func labFInv(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta {
		return t * t * t
	}
	return 3 * delta * delta * (t - 4.0/29.0)
}
