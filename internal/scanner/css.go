package scanner

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// CSS scanning pairs the text colour of each rule block against the
// background declared in the same block. Extraction is regex based; a
// stylesheet is treated as flat rule blocks, which covers the common case
// of design-token and component stylesheets.
var (
	ruleRe = regexp.MustCompile(`(?s)([^{}]+)\{([^{}]*)\}`)
	declRe = regexp.MustCompile(`([a-zA-Z-]+)\s*:\s*([^;]+)[;\n]?`)
)

// foreground/background property names considered when pairing a rule.
var (
	fgProps = []string{"color"}
	bgProps = []string{"background-color", "background"}
)

// ScanCSS extracts colour/background pairs from a stylesheet and checks
// each one. Rules without both a parseable text colour and a parseable
// background are skipped and counted.
func ScanCSS(r io.Reader, opts Options) (*Report, error) {
	opts = opts.withDefaults()

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read stylesheet: %w", err)
	}

	report := newReport(opts)
	for _, rule := range ruleRe.FindAllStringSubmatch(string(content), -1) {
		selector := strings.TrimSpace(rule[1])
		decls := parseDeclarations(rule[2])

		fgValue, hasFg := firstDeclaration(decls, fgProps)
		bgValue, hasBg := firstDeclaration(decls, bgProps)
		if !hasFg || !hasBg {
			continue
		}

		el := Element{
			Label:      selector,
			Foreground: fgValue,
			Background: Layer{Colour: bgValue},
		}

		finding, ok := checkElement(el, opts)
		if !ok {
			report.Skipped++
			continue
		}
		report.add(finding)
	}

	return report, nil
}

// parseDeclarations splits a rule body into property/value pairs. Later
// declarations win, matching the cascade within a block.
func parseDeclarations(body string) map[string]string {
	decls := make(map[string]string)
	for _, m := range declRe.FindAllStringSubmatch(body, -1) {
		prop := strings.ToLower(strings.TrimSpace(m[1]))
		decls[prop] = strings.TrimSpace(m[2])
	}
	return decls
}

// firstDeclaration returns the value of the first property present.
func firstDeclaration(decls map[string]string, props []string) (string, bool) {
	for _, p := range props {
		if v, ok := decls[p]; ok {
			return v, true
		}
	}
	return "", false
}
