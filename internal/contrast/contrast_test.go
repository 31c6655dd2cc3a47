package contrast

import (
	"math"
	"testing"

	"github.com/tintlint/tintlint/internal/colour"
)

func TestRatioAnchors(t *testing.T) {
	black := colour.RGB{R: 0, G: 0, B: 0}
	white := colour.RGB{R: 255, G: 255, B: 255}
	grey := colour.RGB{R: 128, G: 128, B: 128}

	if got := Ratio(black, white); math.Abs(got-21) > 0.01 {
		t.Errorf("Ratio(black, white) = %v, want ~21", got)
	}
	if got := Ratio(grey, grey); got != 1 {
		t.Errorf("Ratio(grey, grey) = %v, want 1", got)
	}
}

func TestRatioSymmetric(t *testing.T) {
	pairs := [][2]colour.RGB{
		{{R: 0, G: 0, B: 0}, {R: 255, G: 255, B: 255}},
		{{R: 96, G: 96, B: 96}, {R: 255, G: 255, B: 255}},
		{{R: 255, G: 85, B: 0}, {R: 0, G: 0, B: 128}},
		{{R: 17, G: 34, B: 51}, {R: 204, G: 221, B: 238}},
	}

	for _, p := range pairs {
		if Ratio(p[0], p[1]) != Ratio(p[1], p[0]) {
			t.Errorf("Ratio(%v, %v) not symmetric", p[0], p[1])
		}
	}
}

func TestRatioBounds(t *testing.T) {
	colours := []colour.RGB{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
		{R: 123, G: 45, B: 67},
	}

	for _, a := range colours {
		for _, b := range colours {
			r := Ratio(a, b)
			if r < 1 || r > 21 {
				t.Errorf("Ratio(%v, %v) = %v, outside [1, 21]", a, b, r)
			}
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		ratio float64
		want  Score
	}{
		{21, ScoreAAA},
		{7.0, ScoreAAA},
		{6.99, ScoreAA},
		{5.9, ScoreAA},
		{4.5, ScoreAA},
		{4.49, ScoreAALarge},
		{3.9, ScoreAALarge},
		{3.0, ScoreAALarge},
		{2.99, ScoreFail},
		{1.3, ScoreFail},
		{1.0, ScoreFail},
	}

	for _, tt := range tests {
		if got := Classify(tt.ratio); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.ratio, got, tt.want)
		}
	}
}

// Classification must only move upward as the ratio increases.
func TestClassifyMonotonic(t *testing.T) {
	rank := map[Score]int{ScoreFail: 0, ScoreAALarge: 1, ScoreAA: 2, ScoreAAA: 3}

	prev := ScoreFail
	for ratio := 1.0; ratio <= 21.0; ratio += 0.05 {
		got := Classify(ratio)
		if rank[got] < rank[prev] {
			t.Fatalf("score regressed from %v to %v at ratio %v", prev, got, ratio)
		}
		prev = got
	}
}

func TestAnalyze(t *testing.T) {
	fg := colour.RGB{R: 96, G: 96, B: 96}
	bg := colour.RGB{R: 255, G: 255, B: 255}

	result := Analyze(fg, bg)
	if result.Ratio < 4.5 || result.Ratio >= 7 {
		t.Fatalf("Analyze ratio = %v, want in [4.5, 7)", result.Ratio)
	}
	if result.Score != ScoreAA {
		t.Errorf("Analyze score = %v, want %v", result.Score, ScoreAA)
	}

	if !result.AANormal || !result.AALarge || !result.AAUI || !result.AAALarge {
		t.Errorf("per-cell breakdown wrong for ratio %v: %+v", result.Ratio, result)
	}
	if result.AAANormal {
		t.Errorf("AAA normal should fail at ratio %v", result.Ratio)
	}

	if !result.Passes(LevelAA, SizeNormal) {
		t.Error("pair should pass AA normal")
	}
	if result.Passes(LevelAAA, SizeNormal) {
		t.Error("pair should fail AAA normal")
	}
}

func TestRequired(t *testing.T) {
	tests := []struct {
		level Level
		size  TextSize
		want  float64
	}{
		{LevelAA, SizeNormal, 4.5},
		{LevelAA, SizeLarge, 3.0},
		{LevelAAA, SizeNormal, 7.0},
		{LevelAAA, SizeLarge, 4.5},
	}

	for _, tt := range tests {
		if got := Required(tt.level, tt.size); got != tt.want {
			t.Errorf("Required(%v, %v) = %v, want %v", tt.level, tt.size, got, tt.want)
		}
	}
}

func TestGap(t *testing.T) {
	if got := Gap(3.2, LevelAA, SizeNormal); math.Abs(got-1.3) > 1e-9 {
		t.Errorf("Gap(3.2, AA, normal) = %v, want 1.3", got)
	}
	if got := Gap(5.0, LevelAA, SizeNormal); got != 0 {
		t.Errorf("Gap must never be negative, got %v", got)
	}
	if got := Gap(4.5, LevelAA, SizeNormal); got != 0 {
		t.Errorf("Gap at exact threshold = %v, want 0", got)
	}
}
