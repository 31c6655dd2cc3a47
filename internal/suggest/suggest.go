// Package suggest finds the minimal-magnitude lightness adjustment that
// brings a failing colour pair up to a target WCAG contrast ratio.
//
// The search runs in OKLCH space because its lightness axis is perceptually
// uniform: a fixed step in L reads as the same visual change at any hue or
// chroma, so the candidate with the smallest |delta L| really is the least
// noticeable fix. Hue and chroma are held fixed throughout.
package suggest

import (
	"math"
	"sort"

	"github.com/tintlint/tintlint/internal/colour"
	"github.com/tintlint/tintlint/internal/contrast"
)

// Direction tags which way a suggestion moved the colour.
type Direction string

const (
	DirectionLighter  Direction = "lighter"
	DirectionDarker   Direction = "darker"
	DirectionOriginal Direction = "original"
)

// Side names which colour of the pair a suggestion adjusts.
type Side string

const (
	SideForeground Side = "foreground"
	SideBackground Side = "background"
)

// Search bounds: at most maxIterations halvings, or stop once the bracket
// is narrower than convergence. Bounds runtime and precision
// deterministically (well under a millisecond per call).
const (
	maxIterations = 20
	convergence   = 0.001
)

// Suggestion is one candidate colour: the adjusted value, the contrast
// ratio it achieves against the fixed counterpart, the direction it moved
// and how far it moved as a percentage of the lightness range.
type Suggestion struct {
	Colour        colour.RGB `json:"colour"`
	Hex           string     `json:"hex"`
	Ratio         float64    `json:"ratio"`
	Direction     Direction  `json:"direction"`
	ChangePercent float64    `json:"change_percent"`
}

// SideResult holds the candidates found for one side of the pair, sorted
// ascending by magnitude of change. Best is the smallest, or nil when the
// target is unreachable by lightness alone from this side. An absent best
// is an expected outcome, not an error.
type SideResult struct {
	Side       Side         `json:"side"`
	Candidates []Suggestion `json:"candidates,omitempty"`
	Best       *Suggestion  `json:"best,omitempty"`
}

// Result is the full outcome for a pair: both sides searched
// independently, plus the overall recommendation.
type Result struct {
	Target         float64     `json:"target"`
	Ratio          float64     `json:"ratio"`
	AlreadyPassing bool        `json:"already_passing"`
	Foreground     SideResult  `json:"foreground"`
	Background     SideResult  `json:"background"`
	Best           *Suggestion `json:"best,omitempty"`
	BestSide       Side        `json:"best_side,omitempty"`
}

// Options tunes policy knobs of the search. The zero value gives the
// defaults.
type Options struct {
	// Prefer breaks ties when both sides offer an equally small change.
	// Defaults to SideForeground, matching the first-checked-wins order of
	// the reference behaviour; treat it as policy, not an invariant.
	Prefer Side
}

// Suggest searches for the minimal lightness adjustments that bring the
// pair up to the threshold for the given level and text size.
func Suggest(fg, bg colour.RGB, level contrast.Level, size contrast.TextSize) Result {
	return SuggestTarget(fg, bg, contrast.Required(level, size), Options{})
}

// SuggestTarget is Suggest with an explicit target ratio and options.
func SuggestTarget(fg, bg colour.RGB, target float64, opts Options) Result {
	if opts.Prefer == "" {
		opts.Prefer = SideForeground
	}

	result := Result{
		Target: target,
		Ratio:  contrast.Ratio(fg, bg),
	}

	// A pair that already meets the target gets no proposals.
	if result.Ratio >= target {
		result.AlreadyPassing = true
		return result
	}

	result.Foreground = searchSide(SideForeground, fg, bg, target)
	result.Background = searchSide(SideBackground, bg, fg, target)

	result.Best, result.BestSide = pickOverall(result.Foreground, result.Background, opts.Prefer)

	return result
}

// searchSide adjusts one colour of the pair while the other stays fixed,
// trying a lighter and a darker search independently.
func searchSide(side Side, adjust, fixed colour.RGB, target float64) SideResult {
	ok := colour.RGBToOKLCH(adjust)
	res := SideResult{Side: side}

	if s := searchLighter(ok, fixed, target); s != nil {
		res.Candidates = append(res.Candidates, *s)
	}
	if s := searchDarker(ok, fixed, target); s != nil {
		res.Candidates = append(res.Candidates, *s)
	}

	sort.Slice(res.Candidates, func(i, j int) bool {
		return res.Candidates[i].ChangePercent < res.Candidates[j].ChangePercent
	})

	if len(res.Candidates) > 0 {
		res.Best = &res.Candidates[0]
	}

	return res
}

// searchLighter brackets [l0, 1] and converges on the smallest lightness
// >= l0 that still meets the target, minimising the visual change.
func searchLighter(ok colour.OKLCH, fixed colour.RGB, target float64) *Suggestion {
	lo, hi := ok.L, 1.0

	for i := 0; i < maxIterations && hi-lo > convergence; i++ {
		mid := (lo + hi) / 2
		if ratioAt(ok, mid, fixed) >= target {
			hi = mid
		} else {
			lo = mid
		}
	}

	return validate(ok, hi, fixed, target, DirectionLighter)
}

// searchDarker brackets [0, l0] and converges on the largest lightness
// <= l0 that still meets the target.
func searchDarker(ok colour.OKLCH, fixed colour.RGB, target float64) *Suggestion {
	lo, hi := 0.0, ok.L

	for i := 0; i < maxIterations && hi-lo > convergence; i++ {
		mid := (lo + hi) / 2
		if ratioAt(ok, mid, fixed) >= target {
			lo = mid
		} else {
			hi = mid
		}
	}

	return validate(ok, lo, fixed, target, DirectionDarker)
}

// ratioAt evaluates the contrast a candidate lightness achieves against
// the fixed counterpart, through the same 8-bit quantisation the returned
// colour will carry.
func ratioAt(ok colour.OKLCH, lightness float64, fixed colour.RGB) float64 {
	candidate := colour.OKLCHToRGB(colour.OKLCH{L: lightness, C: ok.C, H: ok.H})
	return contrast.Ratio(candidate, fixed)
}

// validate re-checks the converged lightness against the target and
// discards it when the target was unreachable from this direction (for
// example AAA against a counterpart whose own luminance makes the required
// ratio geometrically impossible).
func validate(ok colour.OKLCH, lightness float64, fixed colour.RGB, target float64, dir Direction) *Suggestion {
	candidate := colour.OKLCHToRGB(colour.OKLCH{L: lightness, C: ok.C, H: ok.H})
	ratio := contrast.Ratio(candidate, fixed)
	if ratio < target {
		return nil
	}

	return &Suggestion{
		Colour:        candidate,
		Hex:           candidate.Hex(),
		Ratio:         ratio,
		Direction:     dir,
		ChangePercent: math.Abs(lightness-ok.L) * 100,
	}
}

// pickOverall chooses between the two sides' best candidates by smaller
// percent change; prefer wins ties.
func pickOverall(fg, bg SideResult, prefer Side) (*Suggestion, Side) {
	switch {
	case fg.Best == nil && bg.Best == nil:
		return nil, ""
	case fg.Best == nil:
		return bg.Best, SideBackground
	case bg.Best == nil:
		return fg.Best, SideForeground
	}

	if fg.Best.ChangePercent == bg.Best.ChangePercent {
		if prefer == SideBackground {
			return bg.Best, SideBackground
		}
		return fg.Best, SideForeground
	}
	if fg.Best.ChangePercent < bg.Best.ChangePercent {
		return fg.Best, SideForeground
	}
	return bg.Best, SideBackground
}
