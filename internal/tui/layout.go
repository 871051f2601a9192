package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type rect struct {
	x, y, width, height int
}

const (
	padding    = 1
	infoHeight = 3
)

// layout is where every part of the frame goes for a given terminal size.
type layout struct {
	outer rect
	info  rect
	grid  rect
	help  rect
}

// computeLayout centers the grid inside the terminal with the info row above
// it and the help text below. ok is false when the terminal is too small to
// hold the frame.
func computeLayout(width, height, rows, columns, cellWidth, cellHeight int) (l layout, ok bool) {
	var (
		gridWidth  = cellWidth*columns + 2*padding
		gridHeight = cellHeight*rows + 2*padding
		helpHeight = len(helpLines)
	)

	l.outer = rect{0, 0, width, height}
	inner := rect{1, 1, width - 2, height - 2}

	needWidth := max(gridWidth, maxWidth(alignOn(helpLines, ":")))
	needHeight := infoHeight + gridHeight + helpHeight
	if inner.width < needWidth || inner.height < needHeight {
		return l, false
	}

	top := inner.y + (inner.height-needHeight)/2
	left := inner.x + (inner.width-gridWidth)/2

	l.info = rect{left, top, gridWidth, infoHeight}
	l.grid = rect{left, top + infoHeight, gridWidth, gridHeight}
	l.help = rect{inner.x, l.grid.y + gridHeight, inner.width, helpHeight}
	return l, true
}

// cellRect is the screen area of the cell at row, column inside the grid.
func (l layout) cellRect(row, column, cellWidth, cellHeight int) rect {
	return rect{
		x:      l.grid.x + padding + column*cellWidth,
		y:      l.grid.y + padding + row*cellHeight,
		width:  cellWidth,
		height: cellHeight,
	}
}

// centered returns a width x height rect in the middle of r.
func (r rect) centered(width, height int) rect {
	width, height = min(width, r.width), min(height, r.height)
	return rect{
		x:      r.x + (r.width-width)/2,
		y:      r.y + (r.height-height)/2,
		width:  width,
		height: height,
	}
}

// alignOn pads every line so that the first occurrence of sep lines up
// across all of them.
func alignOn(lines []string, sep string) []string {
	var (
		firsts = make([]string, len(lines))
		rests  = make([]string, len(lines))
		left   int
		right  int
	)
	for i, line := range lines {
		first, rest, found := strings.Cut(line, sep)
		if found {
			rest = sep + rest
		}
		firsts[i], rests[i] = first, rest
		left = max(left, runewidth.StringWidth(first))
		right = max(right, runewidth.StringWidth(rest))
	}

	aligned := make([]string, len(lines))
	for i := range lines {
		aligned[i] = runewidth.FillLeft(firsts[i], left) + runewidth.FillRight(rests[i], right)
	}
	return aligned
}

func maxWidth(lines []string) int {
	w := 0
	for _, line := range lines {
		w = max(w, runewidth.StringWidth(line))
	}
	return w
}
