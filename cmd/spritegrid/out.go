package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bradfitz/iter"
	"github.com/common-nighthawk/go-figure"
	"github.com/gookit/color"

	"badc0de.net/pkg/go-spritegrid/spritegrid"
)

const (
	rowLabelWidth = 6
	cellWidth     = 12
)

var headerStyle = color.New(color.FgCyan, color.OpBold)

func paint(s string, colorize bool) string {
	if !colorize {
		return s
	}
	return headerStyle.Sprint(s)
}

func printBanner(w io.Writer) {
	fmt.Fprintln(w, figure.NewFigure("spritegrid", "", true).String())
}

func printRect(w io.Writer, r spritegrid.Rect, asJSON bool) error {
	if !asJSON {
		_, err := fmt.Fprintln(w, r)
		return err
	}
	return json.NewEncoder(w).Encode(r)
}

// fitColumns is how many table columns fit in termCols characters; at least one.
func fitColumns(termCols uint) int {
	n := (int(termCols) - rowLabelWidth) / cellWidth
	if n < 1 {
		return 1
	}
	return n
}

// printTable prints the x,y offsets of the first rows x cols cells, one grid
// row per line, with column and row indices as headers.
func printTable(w io.Writer, cfg spritegrid.Config, rows, cols int, colorize bool) {
	if rows <= 0 || cols <= 0 {
		return
	}
	calc := cfg.Calculator()

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", rowLabelWidth))
	for col := range iter.N(cols) {
		b.WriteString(paint(fmt.Sprintf("%*s", cellWidth, fmt.Sprintf("c%d", col)), colorize))
	}
	fmt.Fprintln(w, strings.TrimRight(b.String(), " "))

	for row := range iter.N(rows) {
		b.Reset()
		b.WriteString(paint(fmt.Sprintf("%-*s", rowLabelWidth, fmt.Sprintf("r%d", row)), colorize))
		for col := range iter.N(cols) {
			r := calc(row, col)
			b.WriteString(fmt.Sprintf("%*s", cellWidth, fmt.Sprintf("%d,%d", r.X, r.Y)))
		}
		fmt.Fprintln(w, b.String())
	}
}
