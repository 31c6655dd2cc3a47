package colour

import (
	"regexp"
	"strconv"
	"strings"
)

// Parse turns a free-form CSS colour string into an RGB value. The second
// return value reports whether the input matched a supported grammar; a
// false result is an expected outcome (bad user input, an unsupported
// computed style), never an error.
//
// Supported grammars, tried in order: hex (3/6/8 digits, # optional),
// rgb()/rgba() in legacy comma and modern space syntax, hsl()/hsla(),
// color(srgb ...), oklch(), lab(), lch() and CSS named colours. Alpha
// components are validated and discarded; compositing is explicit via
// Blend. Function keywords and colour names match case-insensitively.
func Parse(input string) (RGB, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return RGB{}, false
	}

	for _, parse := range parsers {
		if rgb, ok := parse(s); ok {
			return rgb, true
		}
	}

	return RGB{}, false
}

// parsers is the grammar priority chain. Prefixes are distinct, so at most
// one grammar can match any given input.
var parsers = []func(string) (RGB, bool){
	parseHex,
	parseRGBFunc,
	parseHSLFunc,
	parseColorFunc,
	parseOKLCHFunc,
	parseLabFunc,
	parseLCHFunc,
	parseNamed,
}

var (
	hexRe = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

	// Legacy comma syntax and modern space syntax, kept as separate
	// patterns so mixed separators do not slip through.
	rgbLegacyRe = regexp.MustCompile(`(?i)^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*([0-9.]+%?)\s*)?\)$`)
	rgbModernRe = regexp.MustCompile(`(?i)^rgba?\(\s*(\d{1,3})\s+(\d{1,3})\s+(\d{1,3})\s*(?:/\s*([0-9.]+%?)\s*)?\)$`)

	hslLegacyRe = regexp.MustCompile(`(?i)^hsla?\(\s*(-?[0-9.]+)(?:deg)?\s*,\s*([0-9.]+)%?\s*,\s*([0-9.]+)%?\s*(?:,\s*([0-9.]+%?)\s*)?\)$`)
	hslModernRe = regexp.MustCompile(`(?i)^hsla?\(\s*(-?[0-9.]+)(?:deg)?\s+([0-9.]+)%?\s+([0-9.]+)%?\s*(?:/\s*([0-9.]+%?)\s*)?\)$`)

	colorSRGBRe = regexp.MustCompile(`(?i)^color\(\s*srgb\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s*(?:/\s*([0-9.]+%?)\s*)?\)$`)

	oklchRe = regexp.MustCompile(`(?i)^oklch\(\s*([0-9.]+)(%?)\s+([0-9.]+)\s+(-?[0-9.]+)(?:deg)?\s*(?:/\s*([0-9.]+%?)\s*)?\)$`)

	labRe = regexp.MustCompile(`(?i)^lab\(\s*([0-9.]+)(%?)\s+(-?[0-9.]+)\s+(-?[0-9.]+)\s*(?:/\s*([0-9.]+%?)\s*)?\)$`)
	lchRe = regexp.MustCompile(`(?i)^lch\(\s*([0-9.]+)(%?)\s+([0-9.]+)\s+(-?[0-9.]+)(?:deg)?\s*(?:/\s*([0-9.]+%?)\s*)?\)$`)
)

// parseHex handles 3, 6 and 8 digit hex colours with an optional leading #.
// The 8-digit form carries alpha, which is validated and discarded.
func parseHex(s string) (RGB, bool) {
	m := hexRe.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, false
	}

	digits := m[1]
	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}

	r, _ := strconv.ParseUint(digits[0:2], 16, 8) //nolint:errcheck // regex guarantees hex digits
	g, _ := strconv.ParseUint(digits[2:4], 16, 8) //nolint:errcheck
	b, _ := strconv.ParseUint(digits[4:6], 16, 8) //nolint:errcheck

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, true
}

// parseRGBFunc handles rgb()/rgba() in both syntaxes. Channels are
// integers in [0, 255].
func parseRGBFunc(s string) (RGB, bool) {
	m := rgbLegacyRe.FindStringSubmatch(s)
	if m == nil {
		m = rgbModernRe.FindStringSubmatch(s)
	}
	if m == nil {
		return RGB{}, false
	}

	r, okR := parseChannel(m[1])
	g, okG := parseChannel(m[2])
	b, okB := parseChannel(m[3])
	if !okR || !okG || !okB || !validAlpha(m[4]) {
		return RGB{}, false
	}

	return RGB{R: r, G: g, B: b}, true
}

// parseHSLFunc handles hsl()/hsla(). Hue wraps modulo 360; saturation and
// lightness must lie in [0, 100].
func parseHSLFunc(s string) (RGB, bool) {
	m := hslLegacyRe.FindStringSubmatch(s)
	if m == nil {
		m = hslModernRe.FindStringSubmatch(s)
	}
	if m == nil {
		return RGB{}, false
	}

	h, errH := strconv.ParseFloat(m[1], 64)
	sat, errS := strconv.ParseFloat(m[2], 64)
	l, errL := strconv.ParseFloat(m[3], 64)
	if errH != nil || errS != nil || errL != nil || !validAlpha(m[4]) {
		return RGB{}, false
	}
	if sat < 0 || sat > 100 || l < 0 || l > 100 {
		return RGB{}, false
	}

	return HSLToRGB(NewHSL(h, sat, l)), true
}

// parseColorFunc handles color(srgb r g b [/ alpha]) with channels in [0, 1].
func parseColorFunc(s string) (RGB, bool) {
	m := colorSRGBRe.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, false
	}

	r, errR := strconv.ParseFloat(m[1], 64)
	g, errG := strconv.ParseFloat(m[2], 64)
	b, errB := strconv.ParseFloat(m[3], 64)
	if errR != nil || errG != nil || errB != nil || !validAlpha(m[4]) {
		return RGB{}, false
	}
	if r > 1 || g > 1 || b > 1 {
		return RGB{}, false
	}

	return RGB{R: round8(r), G: round8(g), B: round8(b)}, true
}

// parseOKLCHFunc handles oklch(l c h). Lightness is a bare float in [0, 1]
// or a percentage; hue may carry a deg suffix.
func parseOKLCHFunc(s string) (RGB, bool) {
	m := oklchRe.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, false
	}

	l, errL := strconv.ParseFloat(m[1], 64)
	c, errC := strconv.ParseFloat(m[3], 64)
	h, errH := strconv.ParseFloat(m[4], 64)
	if errL != nil || errC != nil || errH != nil || !validAlpha(m[5]) {
		return RGB{}, false
	}
	if m[2] == "%" {
		l /= 100
	}
	if l < 0 || l > 1 {
		return RGB{}, false
	}

	return OKLCHToRGB(OKLCH{L: l, C: c, H: wrapHue(h)}), true
}

// parseLabFunc handles lab(l a b) with lightness as a percentage or bare
// value in [0, 100].
func parseLabFunc(s string) (RGB, bool) {
	m := labRe.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, false
	}

	l, errL := strconv.ParseFloat(m[1], 64)
	a, errA := strconv.ParseFloat(m[3], 64)
	b, errB := strconv.ParseFloat(m[4], 64)
	if errL != nil || errA != nil || errB != nil || !validAlpha(m[5]) {
		return RGB{}, false
	}
	if l > 100 {
		return RGB{}, false
	}

	return LabToRGB(Lab{L: l, A: a, B: b}), true
}

// parseLCHFunc handles lch(l c h), same lightness conventions as lab().
func parseLCHFunc(s string) (RGB, bool) {
	m := lchRe.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, false
	}

	l, errL := strconv.ParseFloat(m[1], 64)
	c, errC := strconv.ParseFloat(m[3], 64)
	h, errH := strconv.ParseFloat(m[4], 64)
	if errL != nil || errC != nil || errH != nil || !validAlpha(m[5]) {
		return RGB{}, false
	}
	if l > 100 {
		return RGB{}, false
	}

	return LCHToRGB(LCH{L: l, C: c, H: wrapHue(h)}), true
}

// parseChannel parses an integer rgb channel and range-checks it.
func parseChannel(s string) (uint8, bool) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil || v > 255 {
		return 0, false
	}
	return uint8(v), true
}

// validAlpha reports whether an optional alpha component is well formed:
// empty, a float in [0, 1], or a percentage in [0, 100]. The value itself
// is discarded by the parser.
func validAlpha(s string) bool {
	if s == "" {
		return true
	}

	limit := 1.0
	if strings.HasSuffix(s, "%") {
		s = strings.TrimSuffix(s, "%")
		limit = 100.0
	}

	v, err := strconv.ParseFloat(s, 64)
	return err == nil && v >= 0 && v <= limit
}
