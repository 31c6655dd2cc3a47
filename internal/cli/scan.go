package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tintlint/tintlint/internal/scanner"
)

func newScanCmd(g *globalOptions) *cobra.Command {
	var (
		scanLevel   string
		scanSize    string
		scanFormat  string
		scanType    string
		scanSuggest bool
	)

	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "Scan a stylesheet or exported styles for contrast violations",
		Long: `Scan checks colour pairs in bulk and reports every failing pair.

Two input shapes are supported:

  css   a stylesheet; each rule block declaring both a text colour and a
        background is checked
  json  an array of element records with foreground, background and
        optional ancestor layers; semi-transparent layers are flattened
        through the compositor before checking

The input type is inferred from the file extension and can be forced
with --type. Use "-" to read from stdin. Unparseable values are skipped,
not fatal.

Examples:
  tintlint scan styles.css
  tintlint scan page-styles.json --suggest
  cat tokens.css | tintlint scan - --type css --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, size, err := parseLevelSize(scanLevel, scanSize)
			if err != nil {
				return err
			}
			if err := validFormat(scanFormat); err != nil {
				return err
			}

			in, kind, err := openScanInput(args[0], scanType)
			if err != nil {
				return err
			}
			defer in.Close()

			opts := scanner.Options{
				Level:       level,
				Size:        size,
				Suggestions: scanSuggest,
				Logger:      g.logger(),
			}

			var report *scanner.Report
			switch kind {
			case "css":
				report, err = scanner.ScanCSS(in, opts)
			case "json":
				report, err = scanner.ScanJSON(in, opts)
			default:
				return fmt.Errorf("unsupported input type %q (expected css or json)", kind)
			}
			if err != nil {
				return err
			}

			if scanFormat == formatJSON {
				if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
					return err
				}
			} else {
				printReport(cmd, report)
			}

			if report.Failures > 0 {
				return fmt.Errorf("%d of %d checked pairs fail %s %s",
					report.Failures, len(report.Findings), level, size)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&scanLevel, "level", "l", "AA", "conformance level (AA, AAA)")
	cmd.Flags().StringVarP(&scanSize, "size", "s", "normal", "text size (normal, large)")
	cmd.Flags().StringVarP(&scanFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().StringVarP(&scanType, "type", "t", "", "input type (css, json); inferred from extension when empty")
	cmd.Flags().BoolVar(&scanSuggest, "suggest", false, "attach fix suggestions to failing pairs")

	return cmd
}

// openScanInput resolves the input reader and type. "-" reads stdin, in
// which case --type is required.
func openScanInput(path, forced string) (io.ReadCloser, string, error) {
	kind := forced
	if path == "-" {
		if kind == "" {
			return nil, "", fmt.Errorf("--type is required when reading from stdin")
		}
		return io.NopCloser(os.Stdin), kind, nil
	}

	if kind == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".css":
			kind = "css"
		case ".json":
			kind = "json"
		default:
			return nil, "", fmt.Errorf("cannot infer input type from %q, pass --type", path)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open input: %w", err)
	}
	return f, kind, nil
}

func printReport(cmd *cobra.Command, report *scanner.Report) {
	w := cmd.OutOrStdout()

	table := NewTable([]string{"Status", "Label", "Pair", "Ratio", "Score"})
	for _, f := range report.Findings {
		table.AddRow([]string{
			passFail(f.Passed),
			f.Label,
			f.Foreground.Hex() + " on " + f.Background.Hex(),
			fmt.Sprintf("%.2f:1", f.Result.Ratio),
			string(f.Result.Score),
		})
	}
	fmt.Fprint(w, table.Render())

	fmt.Fprintf(w, "\n%d checked, %d failing, %d skipped (%s %s)\n",
		len(report.Findings), report.Failures, report.Skipped, report.Level, report.Size)

	for _, f := range report.Findings {
		if f.Suggestion == nil || f.Suggestion.Best == nil {
			continue
		}
		fmt.Fprintf(w, "  %s: use %s %s (%.2f:1)\n",
			f.Label, f.Suggestion.BestSide, f.Suggestion.Best.Hex, f.Suggestion.Best.Ratio)
	}
}
