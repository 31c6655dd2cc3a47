package colour

import "testing"

func TestBlend(t *testing.T) {
	tests := []struct {
		name  string
		fg    RGB
		bg    RGB
		alpha float64
		want  RGB
	}{
		{"half red over blue", RGB{255, 0, 0}, RGB{0, 0, 255}, 0.5, RGB{128, 0, 128}},
		{"opaque returns foreground", RGB{10, 20, 30}, RGB{200, 200, 200}, 1, RGB{10, 20, 30}},
		{"transparent returns background", RGB{10, 20, 30}, RGB{200, 200, 200}, 0, RGB{200, 200, 200}},
		{"dark overlay", RGB{0, 0, 0}, RGB{255, 255, 255}, 0.25, RGB{191, 191, 191}},
		{"alpha clamped above one", RGB{1, 2, 3}, RGB{9, 9, 9}, 1.5, RGB{1, 2, 3}},
		{"alpha clamped below zero", RGB{1, 2, 3}, RGB{9, 9, 9}, -0.5, RGB{9, 9, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blend(tt.fg, tt.bg, tt.alpha); got != tt.want {
				t.Errorf("Blend(%v, %v, %v) = %v, want %v", tt.fg, tt.bg, tt.alpha, got, tt.want)
			}
		})
	}
}

// Blending iteratively against a stack of layers composites each result as
// the background for the next layer up, the way nested translucent
// elements paint.
func TestBlendLayerStack(t *testing.T) {
	base := RGB{255, 255, 255}
	mid := Blend(RGB{0, 0, 0}, base, 0.5)  // -> {128, 128, 128}
	top := Blend(RGB{255, 0, 0}, mid, 0.5) // -> {192, 64, 64}
	want := RGB{192, 64, 64}

	if top != want {
		t.Errorf("stacked blend = %v, want %v", top, want)
	}
}
