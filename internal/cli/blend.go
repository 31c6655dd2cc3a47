package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tintlint/tintlint/internal/colour"
)

// blendOutput is the JSON shape of a compositing result.
type blendOutput struct {
	Foreground colourJSON `json:"foreground"`
	Background colourJSON `json:"background"`
	Alpha      float64    `json:"alpha"`
	Result     colourJSON `json:"result"`
}

func newBlendCmd(g *globalOptions) *cobra.Command {
	var (
		blendAlpha  float64
		blendFormat string
	)

	cmd := &cobra.Command{
		Use:   "blend <foreground> <background>",
		Short: "Composite a semi-transparent colour over a background",
		Long: `Blend computes the effective opaque colour of a foreground with partial
opacity painted over an opaque background. Stack several layers by
feeding each result back in as the next background.

Examples:
  tintlint blend red blue --alpha 0.5
  tintlint blend "rgba(0, 0, 0, 0.87)" "#fafafa" --alpha 0.87`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validFormat(blendFormat); err != nil {
				return err
			}
			if blendAlpha < 0 || blendAlpha > 1 {
				return fmt.Errorf("alpha must be between 0 and 1, got %v", blendAlpha)
			}

			fg, err := parseColourArg("foreground", args[0])
			if err != nil {
				return err
			}
			bg, err := parseColourArg("background", args[1])
			if err != nil {
				return err
			}

			result := colour.Blend(fg, bg, blendAlpha)

			if blendFormat == formatJSON {
				return writeJSON(cmd.OutOrStdout(), blendOutput{
					Foreground: newColourJSON(fg),
					Background: newColourJSON(bg),
					Alpha:      blendAlpha,
					Result:     newColourJSON(result),
				})
			}

			w := cmd.OutOrStdout()
			if g.swatchesEnabled() {
				fmt.Fprintf(w, "%s %s over %s %s at %.2f\n",
					colour.Preview(fg, 4), fg.Hex(), colour.Preview(bg, 4), bg.Hex(), blendAlpha)
				fmt.Fprintf(w, "%s %s  %s\n", colour.Preview(result, 8), result.Hex(), result.String())
			} else {
				fmt.Fprintf(w, "%s  %s\n", result.Hex(), result.String())
			}
			return nil
		},
	}

	cmd.Flags().Float64VarP(&blendAlpha, "alpha", "a", 1, "foreground opacity in [0, 1]")
	cmd.Flags().StringVarP(&blendFormat, "format", "f", "text", "output format (text, json)")

	return cmd
}
