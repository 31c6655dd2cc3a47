// Package cli provides the command-line interface for tintlint.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tintlint/tintlint/internal/version"
)

// globalOptions carries the persistent flags shared by every subcommand.
type globalOptions struct {
	verbose bool
	noColor bool
}

// NewRootCmd builds the full command tree. Tests construct their own tree
// so runs stay independent.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "tintlint",
		Short: "WCAG colour contrast checker and fixer",
		Long: `Tintlint checks colour pairs against the WCAG 2.2 contrast thresholds,
proposes minimal perceptual fixes for failing pairs, and scans stylesheets
or exported element styles for contrast violations.

Colours are accepted in any common CSS notation: hex, rgb()/rgba(),
hsl()/hsla(), color(srgb ...), oklch(), lab(), lch() and named colours.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable coloured output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newSuggestCmd(opts))
	rootCmd.AddCommand(newConvertCmd(opts))
	rootCmd.AddCommand(newBlendCmd(opts))
	rootCmd.AddCommand(newScanCmd(opts))

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newVersionCmd prints detailed version information.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

// logger returns an hclog logger honouring the global flags. Debug level
// output only appears under --verbose.
func (g *globalOptions) logger() hclog.Logger {
	level := hclog.Warn
	if g.verbose {
		level = hclog.Debug
	}

	colorMode := hclog.AutoColor
	if g.noColor {
		colorMode = hclog.ColorOff
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "tintlint",
		Level:  level,
		Output: os.Stderr,
		Color:  colorMode,
	})
}

// swatchesEnabled reports whether ANSI swatch previews should be printed:
// stdout must be a terminal and colour output must not be disabled.
func (g *globalOptions) swatchesEnabled() bool {
	return !g.noColor && term.IsTerminal(int(os.Stdout.Fd()))
}
