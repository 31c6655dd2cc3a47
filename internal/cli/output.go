package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/tintlint/tintlint/internal/colour"
)

// Output formats shared by the subcommands.
const (
	formatText = "text"
	formatJSON = "json"
)

// colourJSON pairs a colour's hex rendering with its channel values in
// JSON output.
type colourJSON struct {
	Hex string     `json:"hex"`
	RGB colour.RGB `json:"rgb"`
}

func newColourJSON(rgb colour.RGB) colourJSON {
	return colourJSON{Hex: rgb.Hex(), RGB: rgb}
}

// writeJSON renders v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// parseColourArg parses a CLI colour argument, turning a parse miss into a
// user-facing error naming the argument.
func parseColourArg(name, value string) (colour.RGB, error) {
	rgb, ok := colour.Parse(value)
	if !ok {
		return colour.RGB{}, fmt.Errorf("unrecognised %s colour: %q", name, value)
	}
	return rgb, nil
}

var (
	passText = color.New(color.FgGreen).SprintFunc()
	failText = color.New(color.FgRed, color.Bold).SprintFunc()
)

// passFail renders a boolean cell as a coloured pass/fail word.
func passFail(ok bool) string {
	if ok {
		return passText("pass")
	}
	return failText("fail")
}

// validFormat rejects unknown --format values.
func validFormat(format string) error {
	if format != formatText && format != formatJSON {
		return fmt.Errorf("unsupported format %q (expected text or json)", format)
	}
	return nil
}
