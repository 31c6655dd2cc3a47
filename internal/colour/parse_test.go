package colour

import "testing"

func TestParseSupportedGrammars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGB
	}{
		{"hex with hash", "#FF5500", RGB{255, 85, 0}},
		{"hex without hash", "ff5500", RGB{255, 85, 0}},
		{"hex short form", "#f50", RGB{255, 85, 0}},
		{"hex with alpha ignored", "#ff550080", RGB{255, 85, 0}},
		{"hex uppercase short", "#F50", RGB{255, 85, 0}},
		{"rgb legacy", "rgb(255, 85, 0)", RGB{255, 85, 0}},
		{"rgba legacy with alpha", "rgba(255, 85, 0, 0.5)", RGB{255, 85, 0}},
		{"rgb modern", "rgb(255 85 0)", RGB{255, 85, 0}},
		{"rgb modern with percent alpha", "rgb(255 85 0 / 50%)", RGB{255, 85, 0}},
		{"rgb modern with alpha", "rgb(255 85 0 / 0.5)", RGB{255, 85, 0}},
		{"rgb uppercase keyword", "RGB(255, 85, 0)", RGB{255, 85, 0}},
		{"hsl legacy", "hsl(20, 100%, 50%)", RGB{255, 85, 0}},
		{"hsl legacy bare numbers", "hsl(20, 100, 50)", RGB{255, 85, 0}},
		{"hsl modern with deg", "hsl(20deg 100% 50%)", RGB{255, 85, 0}},
		{"hsla with alpha", "hsla(20, 100%, 50%, 0.8)", RGB{255, 85, 0}},
		{"hsl achromatic ignores hue", "hsl(123, 0%, 50%)", RGB{128, 128, 128}},
		{"color srgb", "color(srgb 1 0.3333333 0)", RGB{255, 85, 0}},
		{"color srgb with alpha", "color(srgb 1 0 0 / 0.5)", RGB{255, 0, 0}},
		{"oklch round trip of red", "oklch(0.6279553606145515 0.25768330773615683 29.2338851923426)", RGB{255, 0, 0}},
		{"oklch percentage lightness", "oklch(100% 0 0)", RGB{255, 255, 255}},
		{"oklch with deg", "oklch(0 0 120deg)", RGB{0, 0, 0}},
		{"lab black", "lab(0 0 0)", RGB{0, 0, 0}},
		{"lab white percentage", "lab(100% 0 0)", RGB{255, 255, 255}},
		{"lch black", "lch(0 0 0)", RGB{0, 0, 0}},
		{"named colour", "white", RGB{255, 255, 255}},
		{"named colour mixed case", "RebeccaPurple", RGB{102, 51, 153}},
		{"named colour uppercase", "TOMATO", RGB{255, 99, 71}},
		{"surrounding whitespace", "  #ff5500  ", RGB{255, 85, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if !ok {
				t.Fatalf("Parse(%q) did not match, want %v", tt.input, tt.want)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not a colour", "not-a-color"},
		{"empty string", ""},
		{"whitespace only", "   "},
		{"hex wrong length", "#ff55"},
		{"hex bad digit", "#ff55zz"},
		{"rgb channel out of range", "rgb(300, 0, 0)"},
		{"rgb missing channel", "rgb(255, 85)"},
		{"rgb mixed separators", "rgb(255, 85 0)"},
		{"rgb alpha out of range", "rgb(255 85 0 / 1.5)"},
		{"hsl saturation out of range", "hsl(20, 150%, 50%)"},
		{"hsl lightness out of range", "hsl(20, 100%, 150%)"},
		{"color srgb channel above one", "color(srgb 1.5 0 0)"},
		{"color unsupported space", "color(display-p3 1 0 0)"},
		{"oklch lightness above one", "oklch(1.5 0.1 120)"},
		{"lab lightness above hundred", "lab(150 0 0)"},
		{"lch negative chroma", "lch(50 -10 0)"},
		{"unknown name", "notacolour"},
		{"css variable", "var(--accent)"},
		{"trailing garbage", "#ff5500 extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := Parse(tt.input); ok {
				t.Errorf("Parse(%q) = %v, want no match", tt.input, got)
			}
		})
	}
}

// Every named colour in the table must survive a hex round trip through
// the parser.
func TestParseNamedMatchesHex(t *testing.T) {
	names := []string{"black", "white", "red", "lime", "blue", "teal", "salmon", "rebeccapurple"}

	for _, name := range names {
		rgb, ok := Parse(name)
		if !ok {
			t.Fatalf("Parse(%q) did not match", name)
		}

		round, ok := Parse(rgb.Hex())
		if !ok || round != rgb {
			t.Errorf("Parse(%q) hex round trip = %v, want %v", name, round, rgb)
		}
	}
}
