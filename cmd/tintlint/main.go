// Tintlint - WCAG colour contrast checker
//
// Tintlint checks colour pairs against WCAG 2.2 contrast thresholds,
// proposes perceptually minimal fixes for failing pairs, and scans
// stylesheets for contrast violations.
package main

import (
	"github.com/tintlint/tintlint/internal/cli"
)

func main() {
	cli.Execute()
}
