package colour

import (
	"strings"

	"golang.org/x/image/colornames"
)

// cssExtras covers CSS Color 4 keywords missing from the SVG 1.1 set that
// colornames was generated from.
var cssExtras = map[string]RGB{
	"rebeccapurple": {R: 102, G: 51, B: 153},
}

// parseNamed resolves a CSS named colour, case-insensitively.
func parseNamed(s string) (RGB, bool) {
	name := strings.ToLower(s)

	if rgb, ok := cssExtras[name]; ok {
		return rgb, true
	}

	c, ok := colornames.Map[name]
	if !ok {
		return RGB{}, false
	}

	return RGB{R: c.R, G: c.G, B: c.B}, true
}
