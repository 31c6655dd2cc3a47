package colour

import "math"

// Blend composites a foreground colour with opacity alpha over an opaque
// background, producing the effective opaque colour a viewer perceives:
// alpha*fg + (1-alpha)*bg per channel, rounded to nearest integer.
// alpha is clamped to [0, 1]; 1 returns the foreground exactly and 0 the
// background exactly.
//
// Layered stacks (real DOM stacking contexts) are handled by folding Blend
// from the bottom layer upward, each result becoming the background for the
// next layer.
func Blend(fg, bg RGB, alpha float64) RGB {
	a := clamp01(alpha)
	if a == 1 {
		return fg
	}
	if a == 0 {
		return bg
	}

	return RGB{
		R: blendChannel(fg.R, bg.R, a),
		G: blendChannel(fg.G, bg.G, a),
		B: blendChannel(fg.B, bg.B, a),
	}
}

func blendChannel(fg, bg uint8, alpha float64) uint8 {
	v := alpha*float64(fg) + (1-alpha)*float64(bg)
	return uint8(math.Round(v))
}
