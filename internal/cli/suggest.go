package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tintlint/tintlint/internal/colour"
	"github.com/tintlint/tintlint/internal/contrast"
	"github.com/tintlint/tintlint/internal/suggest"
)

func newSuggestCmd(g *globalOptions) *cobra.Command {
	var (
		suggestLevel  string
		suggestSize   string
		suggestFormat string
		suggestPrefer string
	)

	cmd := &cobra.Command{
		Use:   "suggest <foreground> <background>",
		Short: "Propose minimal colour fixes for a failing pair",
		Long: `Suggest searches OKLCH lightness space for the smallest adjustment to
either colour that reaches the required contrast ratio, preserving each
colour's hue and chroma. Both a lighter and a darker candidate are tried
per side; the overall recommendation is the least visible change.

Examples:
  # Fix body text that fails AA
  tintlint suggest "#777" "#fff"

  # Aim for AAA instead
  tintlint suggest "#777" "#fff" --level AAA

  # Prefer adjusting the background on ties
  tintlint suggest "#777" "#eee" --prefer background`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, size, err := parseLevelSize(suggestLevel, suggestSize)
			if err != nil {
				return err
			}
			if err := validFormat(suggestFormat); err != nil {
				return err
			}

			prefer, err := parsePrefer(suggestPrefer)
			if err != nil {
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

			target := contrast.Required(level, size)
			g.logger().Debug("searching for suggestions",
				"target", target, "prefer", prefer)

			result := suggest.SuggestTarget(fg, bg, target, suggest.Options{Prefer: prefer})

			if suggestFormat == formatJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}

			printSuggestions(cmd, g, fg, bg, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&suggestLevel, "level", "l", "AA", "conformance level (AA, AAA)")
	cmd.Flags().StringVarP(&suggestSize, "size", "s", "normal", "text size (normal, large)")
	cmd.Flags().StringVarP(&suggestFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().StringVar(&suggestPrefer, "prefer", "foreground", "side to prefer on ties (foreground, background)")

	return cmd
}

func parsePrefer(s string) (suggest.Side, error) {
	switch s {
	case "foreground", "fg":
		return suggest.SideForeground, nil
	case "background", "bg":
		return suggest.SideBackground, nil
	default:
		return "", fmt.Errorf("unsupported side %q (expected foreground or background)", s)
	}
}

func printSuggestions(cmd *cobra.Command, g *globalOptions, fg, bg colour.RGB, result suggest.Result) {
	w := cmd.OutOrStdout()

	if result.AlreadyPassing {
		fmt.Fprintf(w, "Pair already meets the target: %.2f:1 >= %.1f:1. Nothing to change.\n",
			result.Ratio, result.Target)
		return
	}

	fmt.Fprintf(w, "Current ratio %.2f:1, target %.1f:1.\n\n", result.Ratio, result.Target)

	printSide(w, g, "Adjust foreground (against "+bg.Hex()+")", bg, result.Foreground, true)
	printSide(w, g, "Adjust background (under "+fg.Hex()+")", fg, result.Background, false)

	if result.Best == nil {
		fmt.Fprintln(w, "No lightness-only fix reaches the target from either side.")
		return
	}

	fmt.Fprintf(w, "Recommended: %s %s (%s, %.1f%% lightness change, %.2f:1)\n",
		result.BestSide, result.Best.Hex, result.Best.Direction,
		result.Best.ChangePercent, result.Best.Ratio)
}

// printSide lists one side's candidates. adjustedIsFg controls which slot
// of the pair preview the candidate fills.
func printSide(w io.Writer, g *globalOptions, title string, fixed colour.RGB, side suggest.SideResult, adjustedIsFg bool) {
	fmt.Fprintf(w, "%s:\n", title)

	if len(side.Candidates) == 0 {
		fmt.Fprintln(w, "  no reachable fix")
		fmt.Fprintln(w)
		return
	}

	for _, c := range side.Candidates {
		line := fmt.Sprintf("  %-8s %s  %.2f:1  %5.1f%% change", c.Direction, c.Hex, c.Ratio, c.ChangePercent)
		if g.swatchesEnabled() {
			pairFg, pairBg := c.Colour, fixed
			if !adjustedIsFg {
				pairFg, pairBg = fixed, c.Colour
			}
			line += "  " + colour.PairPreview(pairFg, pairBg, "Sample")
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)
}
