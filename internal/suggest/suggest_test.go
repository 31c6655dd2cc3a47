package suggest

import (
	"testing"

	"github.com/tintlint/tintlint/internal/colour"
	"github.com/tintlint/tintlint/internal/contrast"
)

func TestSuggestAlreadyPassing(t *testing.T) {
	black := colour.RGB{R: 0, G: 0, B: 0}
	white := colour.RGB{R: 255, G: 255, B: 255}

	result := Suggest(black, white, contrast.LevelAA, contrast.SizeNormal)

	if !result.AlreadyPassing {
		t.Fatal("black on white passes AA, expected AlreadyPassing")
	}
	if result.Best != nil {
		t.Errorf("expected no recommendation, got %+v", result.Best)
	}
	if len(result.Foreground.Candidates) != 0 || len(result.Background.Candidates) != 0 {
		t.Error("expected no candidates for an already passing pair")
	}
}

// Every returned suggestion, re-analyzed against its fixed counterpart,
// must meet the target it was asked for.
func TestSuggestionsMeetTarget(t *testing.T) {
	tests := []struct {
		name  string
		fg    colour.RGB
		bg    colour.RGB
		level contrast.Level
		size  contrast.TextSize
	}{
		{"grey on white AA", colour.RGB{R: 119, G: 119, B: 119}, colour.RGB{R: 255, G: 255, B: 255}, contrast.LevelAA, contrast.SizeNormal},
		{"orange on white AA", colour.RGB{R: 255, G: 85, B: 0}, colour.RGB{R: 255, G: 255, B: 255}, contrast.LevelAA, contrast.SizeNormal},
		{"blue on black AAA", colour.RGB{R: 40, G: 40, B: 160}, colour.RGB{R: 0, G: 0, B: 0}, contrast.LevelAAA, contrast.SizeNormal},
		{"light grey on white large", colour.RGB{R: 180, G: 180, B: 180}, colour.RGB{R: 255, G: 255, B: 255}, contrast.LevelAA, contrast.SizeLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := contrast.Required(tt.level, tt.size)
			result := Suggest(tt.fg, tt.bg, tt.level, tt.size)

			if result.AlreadyPassing {
				t.Fatalf("pair unexpectedly passes already (ratio %v)", result.Ratio)
			}
			if result.Best == nil {
				t.Fatal("expected at least one side to produce a suggestion")
			}

			for _, s := range result.Foreground.Candidates {
				if got := contrast.Ratio(s.Colour, tt.bg); got < target {
					t.Errorf("foreground candidate %v achieves %v, target %v", s.Colour, got, target)
				}
			}
			for _, s := range result.Background.Candidates {
				if got := contrast.Ratio(tt.fg, s.Colour); got < target {
					t.Errorf("background candidate %v achieves %v, target %v", s.Colour, got, target)
				}
			}
		})
	}
}

// Candidates within a side are sorted by magnitude of change and the
// smallest is exposed as the side's best.
func TestCandidatesSortedByChange(t *testing.T) {
	fg := colour.RGB{R: 130, G: 130, B: 130}
	bg := colour.RGB{R: 255, G: 255, B: 255}

	result := Suggest(fg, bg, contrast.LevelAA, contrast.SizeNormal)

	for _, side := range []SideResult{result.Foreground, result.Background} {
		for i := 1; i < len(side.Candidates); i++ {
			if side.Candidates[i-1].ChangePercent > side.Candidates[i].ChangePercent {
				t.Errorf("%s candidates not sorted by change", side.Side)
			}
		}
		if len(side.Candidates) > 0 && side.Best.ChangePercent != side.Candidates[0].ChangePercent {
			t.Errorf("%s best is not the smallest change", side.Side)
		}
	}
}

// Suggestions hold hue and chroma fixed; only OKLCH lightness moves.
func TestSuggestionsPreserveHue(t *testing.T) {
	fg := colour.RGB{R: 220, G: 120, B: 60}
	bg := colour.RGB{R: 255, G: 255, B: 255}
	orig := colour.RGBToOKLCH(fg)

	result := Suggest(fg, bg, contrast.LevelAA, contrast.SizeNormal)
	for _, s := range result.Foreground.Candidates {
		ok := colour.RGBToOKLCH(s.Colour)
		hueDiff := ok.H - orig.H
		if hueDiff > 180 {
			hueDiff -= 360
		}
		if hueDiff < -180 {
			hueDiff += 360
		}
		if hueDiff > 3 || hueDiff < -3 {
			t.Errorf("candidate %v drifted hue from %v to %v", s.Colour, orig.H, ok.H)
		}
	}
}

// A target that no lightness can reach from either side yields no
// suggestions at all, which is an absent result rather than an error.
func TestSuggestUnreachableTarget(t *testing.T) {
	grey := colour.RGB{R: 123, G: 123, B: 123}

	result := Suggest(grey, grey, contrast.LevelAAA, contrast.SizeNormal)

	if result.AlreadyPassing {
		t.Fatal("identical colours cannot pass AAA")
	}
	if result.Foreground.Best != nil || result.Background.Best != nil {
		t.Errorf("expected no reachable fix, got fg=%+v bg=%+v",
			result.Foreground.Best, result.Background.Best)
	}
	if result.Best != nil {
		t.Errorf("expected no overall recommendation, got %+v", result.Best)
	}
}

// One side being stuck must not suppress the other side's result.
func TestSuggestOneSidedResult(t *testing.T) {
	// Mid grey against itself at AA: only lighter fixes are reachable,
	// and both sides can reach them, so at minimum the recommendation
	// exists and meets the target.
	grey := colour.RGB{R: 100, G: 100, B: 100}

	result := Suggest(grey, grey, contrast.LevelAA, contrast.SizeNormal)
	if result.Best == nil {
		t.Fatal("expected a recommendation for AA from mid grey")
	}
	if result.Best.Ratio < contrast.ThresholdAANormal {
		t.Errorf("recommendation achieves %v, want >= 4.5", result.Best.Ratio)
	}
}

// With identical colours on both sides the candidates are symmetric, so
// the tie-break policy decides the recommended side.
func TestSuggestTieBreak(t *testing.T) {
	grey := colour.RGB{R: 100, G: 100, B: 100}
	target := contrast.ThresholdAANormal

	byDefault := SuggestTarget(grey, grey, target, Options{})
	if byDefault.BestSide != SideForeground {
		t.Errorf("default tie-break side = %v, want foreground", byDefault.BestSide)
	}

	preferBg := SuggestTarget(grey, grey, target, Options{Prefer: SideBackground})
	if preferBg.BestSide != SideBackground {
		t.Errorf("tie-break with Prefer background = %v, want background", preferBg.BestSide)
	}
}

func TestSuggestDirectionTags(t *testing.T) {
	// Dark text on white: the fix must darken the foreground further or
	// keep it reachable by lightening the background.
	fg := colour.RGB{R: 119, G: 119, B: 119}
	bg := colour.RGB{R: 255, G: 255, B: 255}

	result := Suggest(fg, bg, contrast.LevelAA, contrast.SizeNormal)

	if result.Foreground.Best == nil {
		t.Fatal("expected a foreground fix")
	}
	if result.Foreground.Best.Direction != DirectionDarker {
		t.Errorf("foreground fix direction = %v, want darker", result.Foreground.Best.Direction)
	}
}
