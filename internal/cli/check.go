package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tintlint/tintlint/internal/colour"
	"github.com/tintlint/tintlint/internal/contrast"
)

// checkOutput is the JSON shape of a single pair check.
type checkOutput struct {
	Foreground colourJSON        `json:"foreground"`
	Background colourJSON        `json:"background"`
	Level      contrast.Level    `json:"level"`
	Size       contrast.TextSize `json:"size"`
	Result     contrast.Result   `json:"result"`
	Gap        float64           `json:"gap"`
	Passed     bool              `json:"passed"`
}

func newCheckCmd(g *globalOptions) *cobra.Command {
	var (
		checkLevel  string
		checkSize   string
		checkFormat string
		checkAlpha  float64
	)

	cmd := &cobra.Command{
		Use:   "check <foreground> <background>",
		Short: "Check a colour pair against WCAG contrast thresholds",
		Long: `Check computes the WCAG 2.2 contrast ratio of a foreground/background
pair and evaluates it against every AA/AAA threshold cell.

The command exits non-zero when the pair fails the requested level and
text size, so it can gate CI pipelines.

Examples:
  # Check body text colours for AA
  tintlint check "#606060" white

  # Large heading text only needs 3:1
  tintlint check "rgb(120, 120, 120)" "#fafafa" --size large

  # Semi-transparent text: composite before checking
  tintlint check "#333" "#fff" --alpha 0.8

  # Machine-readable output
  tintlint check "oklch(0.6 0.15 250)" white --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, size, err := parseLevelSize(checkLevel, checkSize)
			if err != nil {
				return err
			}
			if err := validFormat(checkFormat); err != nil {
				return err
			}

			fg, err := parseColourArg("foreground", args[0])
			if err != nil {
				return err
			}
			bg, err := parseColourArg("background", args[1])
			if err != nil {
				return err
			}

			if checkAlpha < 0 || checkAlpha > 1 {
				return fmt.Errorf("alpha must be between 0 and 1, got %v", checkAlpha)
			}
			if checkAlpha < 1 {
				g.logger().Debug("compositing foreground over background", "alpha", checkAlpha)
				fg = colour.Blend(fg, bg, checkAlpha)
			}

			result := contrast.Analyze(fg, bg)
			out := checkOutput{
				Foreground: newColourJSON(fg),
				Background: newColourJSON(bg),
				Level:      level,
				Size:       size,
				Result:     result,
				Gap:        contrast.Gap(result.Ratio, level, size),
				Passed:     result.Passes(level, size),
			}

			if checkFormat == formatJSON {
				if err := writeJSON(cmd.OutOrStdout(), out); err != nil {
					return err
				}
			} else {
				printCheck(cmd, g, out)
			}

			if !out.Passed {
				return fmt.Errorf("contrast %.2f:1 fails %s %s text (requires %.1f:1)",
					result.Ratio, level, size, contrast.Required(level, size))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&checkLevel, "level", "l", "AA", "conformance level (AA, AAA)")
	cmd.Flags().StringVarP(&checkSize, "size", "s", "normal", "text size (normal, large)")
	cmd.Flags().StringVarP(&checkFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().Float64VarP(&checkAlpha, "alpha", "a", 1, "foreground opacity, composited before checking")

	return cmd
}

// printCheck renders the human-readable report: swatches when the output
// is a terminal, the ratio and score, and the per-cell threshold table.
func printCheck(cmd *cobra.Command, g *globalOptions, out checkOutput) {
	w := cmd.OutOrStdout()

	if g.swatchesEnabled() {
		fmt.Fprintf(w, "%s %s  foreground\n", colour.Preview(out.Foreground.RGB, 8), out.Foreground.Hex)
		fmt.Fprintf(w, "%s %s  background\n", colour.Preview(out.Background.RGB, 8), out.Background.Hex)
		fmt.Fprintf(w, "\n%s\n\n", colour.PairPreview(out.Foreground.RGB, out.Background.RGB, "The quick brown fox"))
	} else {
		fmt.Fprintf(w, "foreground: %s\nbackground: %s\n\n", out.Foreground.Hex, out.Background.Hex)
	}

	fmt.Fprintf(w, "Ratio: %.2f:1   Score: %s\n\n", out.Result.Ratio, out.Result.Score)

	table := NewTable([]string{"Level", "Normal", "Large"})
	table.AddRow([]string{"AA", passFail(out.Result.AANormal), passFail(out.Result.AALarge)})
	table.AddRow([]string{"AAA", passFail(out.Result.AAANormal), passFail(out.Result.AAALarge)})
	fmt.Fprint(w, table.Render())

	fmt.Fprintf(w, "\nAA UI components: %s\n", passFail(out.Result.AAUI))

	if out.Gap > 0 {
		fmt.Fprintf(w, "\nShort of %s %s by %.2f. Try: tintlint suggest %q %q --level %s --size %s\n",
			out.Level, out.Size, out.Gap, out.Foreground.Hex, out.Background.Hex, out.Level, out.Size)
	}
}

// parseLevelSize validates the --level and --size flag values.
func parseLevelSize(level, size string) (contrast.Level, contrast.TextSize, error) {
	var l contrast.Level
	switch level {
	case "AA", "aa":
		l = contrast.LevelAA
	case "AAA", "aaa":
		l = contrast.LevelAAA
	default:
		return "", "", fmt.Errorf("unsupported level %q (expected AA or AAA)", level)
	}

	var s contrast.TextSize
	switch size {
	case "normal":
		s = contrast.SizeNormal
	case "large":
		s = contrast.SizeLarge
	default:
		return "", "", fmt.Errorf("unsupported size %q (expected normal or large)", size)
	}

	return l, s, nil
}
