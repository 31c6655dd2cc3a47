// Package contrast implements the WCAG 2.2 contrast ratio calculation and
// classifies colour pairs against the AA/AAA thresholds.
package contrast

import (
	"github.com/tintlint/tintlint/internal/colour"
)

// Level is a WCAG conformance level.
type Level string

// TextSize distinguishes normal text from large text (>=18pt regular or
// >=14pt bold), which is subject to relaxed thresholds.
type TextSize string

const (
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"

	SizeNormal TextSize = "normal"
	SizeLarge  TextSize = "large"
)

// WCAG 2.2 minimum contrast ratios.
const (
	ThresholdAANormal  = 4.5
	ThresholdAALarge   = 3.0
	ThresholdAAUI      = 3.0
	ThresholdAAANormal = 7.0
	ThresholdAAALarge  = 4.5
)

// Required returns the minimum ratio for a level and text size.
func Required(level Level, size TextSize) float64 {
	if level == LevelAAA {
		if size == SizeLarge {
			return ThresholdAAALarge
		}
		return ThresholdAAANormal
	}
	if size == SizeLarge {
		return ThresholdAALarge
	}
	return ThresholdAANormal
}

// Score is the primary classification of a contrast ratio. Scores are
// ordered and monotonic in the ratio: fail < aa-large < aa < aaa.
type Score string

const (
	ScoreFail    Score = "fail"
	ScoreAALarge Score = "aa-large"
	ScoreAA      Score = "aa"
	ScoreAAA     Score = "aaa"
)

// Ratio calculates the WCAG contrast ratio between two colours:
// (L1 + 0.05) / (L2 + 0.05) with L1 the lighter relative luminance.
// Symmetric by construction; the result lies in [1, 21].
// https://www.w3.org/TR/WCAG22/#dfn-contrast-ratio.
func Ratio(fg, bg colour.RGB) float64 {
	l1 := colour.Luminance(fg)
	l2 := colour.Luminance(bg)

	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// Classify maps a ratio onto its Score, most strict first. An AAA-large
// pass without an AA-normal pass does not get its own tier here; it shows
// up only in the per-cell breakdown of Result.
func Classify(ratio float64) Score {
	switch {
	case ratio >= ThresholdAAANormal:
		return ScoreAAA
	case ratio >= ThresholdAANormal:
		return ScoreAA
	case ratio >= ThresholdAALarge:
		return ScoreAALarge
	default:
		return ScoreFail
	}
}

// Result is the full compliance picture for one colour pair: the ratio,
// the primary score and an independent pass/fail per (level x size) cell.
// Derived, never stored; recompute from the colours on demand.
type Result struct {
	Ratio     float64 `json:"ratio"`
	Score     Score   `json:"score"`
	AANormal  bool    `json:"aa_normal"`
	AALarge   bool    `json:"aa_large"`
	AAUI      bool    `json:"aa_ui"`
	AAANormal bool    `json:"aaa_normal"`
	AAALarge  bool    `json:"aaa_large"`
}

// Analyze computes the contrast ratio of a pair and evaluates every
// threshold cell against it.
func Analyze(fg, bg colour.RGB) Result {
	ratio := Ratio(fg, bg)

	return Result{
		Ratio:     ratio,
		Score:     Classify(ratio),
		AANormal:  ratio >= ThresholdAANormal,
		AALarge:   ratio >= ThresholdAALarge,
		AAUI:      ratio >= ThresholdAAUI,
		AAANormal: ratio >= ThresholdAAANormal,
		AAALarge:  ratio >= ThresholdAAALarge,
	}
}

// Passes reports whether the result meets the given level and size.
func (r Result) Passes(level Level, size TextSize) bool {
	return r.Ratio >= Required(level, size)
}

// Gap returns how far a ratio falls short of the required threshold for a
// level and size. Never negative; 0 means the pair passes.
func Gap(ratio float64, level Level, size TextSize) float64 {
	gap := Required(level, size) - ratio
	if gap < 0 {
		return 0
	}
	return gap
}
