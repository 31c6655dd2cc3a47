// Package scanner checks rendered colour pairs in bulk: stylesheet rules or
// exported element records are fed through the parser, the alpha
// compositor and the contrast engine, and every failing pair is reported
// with remediation suggestions.
package scanner

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"

	"github.com/tintlint/tintlint/internal/colour"
	"github.com/tintlint/tintlint/internal/contrast"
	"github.com/tintlint/tintlint/internal/suggest"
)

// Options controls a scan run.
type Options struct {
	Level contrast.Level
	Size  contrast.TextSize

	// Suggestions attaches remediation proposals to failing findings.
	Suggestions bool

	Logger hclog.Logger
}

func (o Options) withDefaults() Options {
	if o.Level == "" {
		o.Level = contrast.LevelAA
	}
	if o.Size == "" {
		o.Size = contrast.SizeNormal
	}
	if o.Logger == nil {
		o.Logger = hclog.NewNullLogger()
	}
	return o
}

// Layer is one painted background with its own opacity, as found walking
// up a stacking context.
type Layer struct {
	Colour string  `json:"colour"`
	Alpha  float64 `json:"alpha"`
}

// Element is one scannable record: a piece of rendered text, its colour,
// and the background layers behind it from nearest to furthest. Opacity
// applies to the foreground text; zero means fully opaque.
type Element struct {
	Label      string  `json:"label"`
	Foreground string  `json:"foreground"`
	Opacity    float64 `json:"opacity,omitempty"`
	Background Layer   `json:"background"`
	Layers     []Layer `json:"layers,omitempty"`
}

// Finding is the outcome for one element or rule: the effective opaque
// pair after compositing, its contrast result, and a suggestion when the
// pair fails the requested cell.
type Finding struct {
	Label      string          `json:"label"`
	Foreground colour.RGB      `json:"foreground"`
	Background colour.RGB      `json:"background"`
	Result     contrast.Result `json:"result"`
	Gap        float64         `json:"gap"`
	Passed     bool            `json:"passed"`
	Suggestion *suggest.Result `json:"suggestion,omitempty"`
}

// Report is the aggregate outcome of a scan.
type Report struct {
	Level    contrast.Level    `json:"level"`
	Size     contrast.TextSize `json:"size"`
	Findings []Finding         `json:"findings"`
	Failures int               `json:"failures"`
	Skipped  int               `json:"skipped"`
}

// ScanJSON reads a JSON array of Elements and checks every record.
// Records with unparseable colours are skipped and counted; a skip is an
// expected outcome, never an error.
func ScanJSON(r io.Reader, opts Options) (*Report, error) {
	opts = opts.withDefaults()

	var elements []Element
	if err := json.NewDecoder(r).Decode(&elements); err != nil {
		return nil, fmt.Errorf("failed to decode scan input: %w", err)
	}

	report := newReport(opts)
	for _, el := range elements {
		finding, ok := checkElement(el, opts)
		if !ok {
			report.Skipped++
			continue
		}
		report.add(finding)
	}

	return report, nil
}

// checkElement flattens an element's layer stack and analyses the
// resulting opaque pair.
func checkElement(el Element, opts Options) (Finding, bool) {
	fg, ok := colour.Parse(el.Foreground)
	if !ok {
		opts.Logger.Debug("skipping element, unparseable foreground",
			"label", el.Label, "value", el.Foreground)
		return Finding{}, false
	}

	bg, ok := flattenBackground(el, opts.Logger)
	if !ok {
		return Finding{}, false
	}

	// Semi-transparent text composites over the flattened background.
	if el.Opacity > 0 && el.Opacity < 1 {
		opts.Logger.Debug("compositing foreground opacity",
			"label", el.Label, "opacity", el.Opacity)
		fg = colour.Blend(fg, bg, el.Opacity)
	}

	return newFinding(el.Label, fg, bg, opts), true
}

// flattenBackground folds the element's background layers bottom-up
// through the compositor. The deepest layer is composited first, and each
// result becomes the background for the layer above it. A missing stack
// bottom defaults to white, matching how browsers paint the canvas.
func flattenBackground(el Element, logger hclog.Logger) (colour.RGB, bool) {
	effective := colour.RGB{R: 255, G: 255, B: 255}

	for i := len(el.Layers) - 1; i >= 0; i-- {
		layer := el.Layers[i]
		rgb, ok := colour.Parse(layer.Colour)
		if !ok {
			logger.Debug("skipping element, unparseable layer",
				"label", el.Label, "value", layer.Colour)
			return colour.RGB{}, false
		}
		effective = colour.Blend(rgb, effective, layerAlpha(layer))
	}

	rgb, ok := colour.Parse(el.Background.Colour)
	if !ok {
		logger.Debug("skipping element, unparseable background",
			"label", el.Label, "value", el.Background.Colour)
		return colour.RGB{}, false
	}

	return colour.Blend(rgb, effective, layerAlpha(el.Background)), true
}

// layerAlpha treats an unset alpha as fully opaque.
func layerAlpha(l Layer) float64 {
	if l.Alpha == 0 {
		return 1
	}
	return l.Alpha
}

func newReport(opts Options) *Report {
	return &Report{Level: opts.Level, Size: opts.Size}
}

func (r *Report) add(f Finding) {
	r.Findings = append(r.Findings, f)
	if !f.Passed {
		r.Failures++
	}
}

func newFinding(label string, fg, bg colour.RGB, opts Options) Finding {
	result := contrast.Analyze(fg, bg)

	finding := Finding{
		Label:      label,
		Foreground: fg,
		Background: bg,
		Result:     result,
		Gap:        contrast.Gap(result.Ratio, opts.Level, opts.Size),
		Passed:     result.Passes(opts.Level, opts.Size),
	}

	if !finding.Passed && opts.Suggestions {
		s := suggest.Suggest(fg, bg, opts.Level, opts.Size)
		finding.Suggestion = &s
	}

	return finding
}
