package ui

import (
	"io"
	"regexp"
	"strings"

	"github.com/cli/go-gh/v2/pkg/tableprinter"
	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/mattn/go-runewidth"
)

const fallbackWidth = 80

// Table renders rows as aligned columns on a terminal and as tab-separated
// values when output is redirected.
type Table struct {
	out   io.Writer
	isTTY bool
	width int
}

// NewTable builds a Table against the terminal resolved from the
// environment.
func NewTable() *Table {
	t := term.FromEnv()
	width, _, err := t.Size()
	if err != nil || width <= 0 {
		width = fallbackWidth
	}
	return &Table{
		out:   t.Out(),
		isTTY: t.IsTerminalOutput(),
		width: width,
	}
}

func newTable(out io.Writer, isTTY bool, width int) *Table {
	return &Table{out: out, isTTY: isTTY, width: width}
}

// Render writes one table. On a terminal the last column flexes: it is
// scrubbed of excess whitespace and truncated to the column width; earlier
// columns always render in full. Headers are dropped in TSV mode.
func (t *Table) Render(headers []string, rows [][]string) error {
	printer := tableprinter.New(t.out, t.isTTY, t.width)
	printer.AddHeader(headers)
	for _, row := range rows {
		for i, cell := range row {
			if i == len(row)-1 && t.isTTY {
				printer.AddField(scrubCell(cell), tableprinter.WithTruncate(truncateCell))
				continue
			}
			printer.AddField(cell, tableprinter.WithTruncate(nil))
		}
		printer.EndRow()
	}
	return printer.Render()
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// scrubCell collapses whitespace runs to single spaces so a multi-line
// title stays on one table row.
func scrubCell(s string) string {
	return whitespaceRE.ReplaceAllString(strings.TrimSpace(s), " ")
}

// truncateCell shortens a cell to the column width without splitting
// double-width runes.
func truncateCell(width int, s string) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}
