package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tintlint/tintlint/internal/colour"
)

// convertOutput is the JSON shape of a colour conversion.
type convertOutput struct {
	Input string       `json:"input"`
	Hex   string       `json:"hex"`
	RGB   colour.RGB   `json:"rgb"`
	HSL   colour.HSL   `json:"hsl"`
	OKLCH colour.OKLCH `json:"oklch"`
	Lab   colour.Lab   `json:"lab"`
	LCH   colour.LCH   `json:"lch"`
}

func newConvertCmd(g *globalOptions) *cobra.Command {
	var (
		convertTo     string
		convertFormat string
	)

	cmd := &cobra.Command{
		Use:   "convert <colour>",
		Short: "Convert a colour between notations",
		Long: `Convert parses a colour in any supported notation and prints it in the
requested space, or in all of them.

Examples:
  tintlint convert "#ff5500"
  tintlint convert "hsl(20, 100%, 50%)" --to oklch
  tintlint convert rebeccapurple --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validFormat(convertFormat); err != nil {
				return err
			}
			if convertTo != "all" && !knownSpace(convertTo) {
				return fmt.Errorf("unsupported target space %q", convertTo)
			}

			rgb, err := parseColourArg("input", args[0])
			if err != nil {
				return err
			}

			out := convertOutput{
				Input: args[0],
				Hex:   rgb.Hex(),
				RGB:   rgb,
				HSL:   colour.RGBToHSL(rgb),
				OKLCH: colour.RGBToOKLCH(rgb),
				Lab:   colour.RGBToLab(rgb),
				LCH:   colour.RGBToLCH(rgb),
			}

			if convertFormat == formatJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}

			w := cmd.OutOrStdout()
			if g.swatchesEnabled() {
				fmt.Fprintf(w, "%s %s\n\n", colour.Preview(rgb, 8), out.Hex)
			}

			renderings := []struct {
				space string
				value string
			}{
				{"hex", out.Hex},
				{"rgb", out.RGB.String()},
				{"hsl", out.HSL.String()},
				{"oklch", out.OKLCH.String()},
				{"lab", out.Lab.String()},
				{"lch", out.LCH.String()},
			}

			for _, r := range renderings {
				if convertTo != "all" && convertTo != r.space {
					continue
				}
				if convertTo == "all" {
					fmt.Fprintf(w, "%-6s %s\n", r.space, r.value)
				} else {
					fmt.Fprintln(w, r.value)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&convertTo, "to", "t", "all", "target space (all, hex, rgb, hsl, oklch, lab, lch)")
	cmd.Flags().StringVarP(&convertFormat, "format", "f", "text", "output format (text, json)")

	return cmd
}

func knownSpace(s string) bool {
	switch s {
	case "hex", "rgb", "hsl", "oklch", "lab", "lch":
		return true
	}
	return false
}
