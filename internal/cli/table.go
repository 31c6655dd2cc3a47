package cli

import (
	"regexp"
	"strings"
)

// Table is a simple column-aligned text table with dynamic widths.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2,
	}
}

// AddRow adds a row to the table, padded or truncated to the header count.
func (t *Table) AddRow(row []string) {
	normalised := make([]string, len(t.headers))
	copy(normalised, row)
	t.rows = append(t.rows, normalised)
}

// Render formats the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := displayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			b.WriteString(cell)
			if i < len(cells)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-displayWidth(cell)+t.padding))
			}
		}
		b.WriteString("\n")
	}

	writeRow(t.headers)
	for _, row := range t.rows {
		writeRow(row)
	}

	return b.String()
}

var ansiEscapeRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// displayWidth is the printed width of a cell, ignoring ANSI colour codes.
func displayWidth(s string) int {
	return len(ansiEscapeRe.ReplaceAllString(s, ""))
}
