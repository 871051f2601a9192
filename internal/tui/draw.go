package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

type boxChars struct {
	topLeft, topRight, bottomLeft, bottomRight rune
	horizontal, vertical                       rune
}

var (
	rounded = boxChars{'╭', '╮', '╰', '╯', '─', '│'}
	thick   = boxChars{'┏', '┓', '┗', '┛', '━', '┃'}
)

func fill(screen tcell.Screen, r rect, style tcell.Style) {
	for y := r.y; y < r.y+r.height; y++ {
		for x := r.x; x < r.x+r.width; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func drawBox(screen tcell.Screen, r rect, chars boxChars, style tcell.Style) {
	if r.width < 2 || r.height < 2 {
		return
	}
	right, bottom := r.x+r.width-1, r.y+r.height-1
	for x := r.x + 1; x < right; x++ {
		screen.SetContent(x, r.y, chars.horizontal, nil, style)
		screen.SetContent(x, bottom, chars.horizontal, nil, style)
	}
	for y := r.y + 1; y < bottom; y++ {
		screen.SetContent(r.x, y, chars.vertical, nil, style)
		screen.SetContent(right, y, chars.vertical, nil, style)
	}
	screen.SetContent(r.x, r.y, chars.topLeft, nil, style)
	screen.SetContent(right, r.y, chars.topRight, nil, style)
	screen.SetContent(r.x, bottom, chars.bottomLeft, nil, style)
	screen.SetContent(right, bottom, chars.bottomRight, nil, style)
}

// drawText writes text centered within width columns starting at x,
// truncating it when it does not fit.
func drawText(screen tcell.Screen, x, y, width int, text string, style tcell.Style) {
	if width <= 0 {
		return
	}
	if runewidth.StringWidth(text) > width {
		text = runewidth.Truncate(text, width, "")
	}
	x += (width - runewidth.StringWidth(text)) / 2
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// gauge is a bordered bar filled in proportion to ratio with a label in the
// middle.
type gauge struct {
	*tview.Box
	ratio float64
	label string
	style tcell.Style
}

func newGauge() *gauge {
	return &gauge{
		Box:   tview.NewBox(),
		style: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack).Bold(true),
	}
}

func (g *gauge) Draw(screen tcell.Screen) {
	g.Box.DrawForSubclass(screen, g)
	x, y, width, height := g.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	filled := int(g.ratio*float64(width) + 0.5)
	row := y + height/2
	for i := range width {
		screen.SetContent(x+i, row, ' ', nil, g.style.Reverse(i < filled))
	}

	start := x + (width-runewidth.StringWidth(g.label))/2
	for _, r := range g.label {
		screen.SetContent(start, row, r, nil, g.style.Reverse(start-x < filled))
		start += runewidth.RuneWidth(r)
	}
}
