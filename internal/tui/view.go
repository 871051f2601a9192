package tui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/vancomm/sweep/internal/game"
	"github.com/vancomm/sweep/internal/mines"
)

const (
	bomb = "💣"
	flag = "⛳"
)

// view draws a game onto a screen. It keeps the tview widgets between frames
// and only refreshes their content.
type view struct {
	game       *game.Game
	cellWidth  int
	cellHeight int

	frame *tview.Box
	info  *tview.Flex
	flags *gauge
	mines *tview.TextView
	help  *tview.TextView
}

func newView(g *game.Game, cellWidth, cellHeight int) *view {
	v := &view{
		game:       g,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
	}

	v.frame = tview.NewBox()
	v.frame.SetBorder(true).
		SetTitle(" Minesweeper ").
		SetTitleColor(tcell.ColorLightYellow).
		SetBorderAttributes(tcell.AttrBold)

	v.flags = newGauge()
	v.flags.SetBorder(true).
		SetTitle(" " + flag + " ").
		SetTitleColor(tcell.ColorFuchsia)

	v.mines = tview.NewTextView().SetTextAlign(tview.AlignCenter)
	v.mines.SetBorder(true).
		SetTitle(" " + bomb + " ").
		SetTitleColor(tcell.ColorLightYellow)

	v.info = tview.NewFlex().
		AddItem(v.flags, 0, 1, false).
		AddItem(v.mines, 0, 1, false)

	v.help = tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetWrap(false).
		SetText(strings.Join(alignOn(helpLines, ":"), "\n"))

	return v
}

func (v *view) draw(screen tcell.Screen) error {
	screen.Clear()
	width, height := screen.Size()

	v.frame.SetRect(0, 0, width, height)
	v.frame.Draw(screen)

	board := v.game.Board()
	l, ok := computeLayout(width, height, board.Rows(), board.Columns(), v.cellWidth, v.cellHeight)
	if !ok {
		drawText(screen, 1, height/2, width-2, "terminal too small",
			tcell.StyleDefault.Foreground(tcell.ColorRed))
		return nil
	}

	available := board.AvailableFlags()
	v.flags.label = strconv.Itoa(available)
	v.flags.ratio = 0
	if total := board.MineTotal(); total > 0 {
		v.flags.ratio = float64(available) / float64(total)
	}
	v.mines.SetText(strconv.Itoa(board.MineTotal()))

	v.info.SetRect(l.info.x, l.info.y, l.info.width, l.info.height)
	v.info.Draw(screen)
	v.help.SetRect(l.help.x, l.help.y, l.help.width, l.help.height)
	v.help.Draw(screen)

	drawBox(screen, l.grid, rounded, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	for i := range board.Len() {
		tile, err := board.TileAt(i)
		if err != nil {
			return err
		}
		c := mines.CoordinateOf(i, board.Columns())
		v.drawCell(screen, l.cellRect(c.Row, c.Column, v.cellWidth, v.cellHeight), i, tile)
	}

	if v.game.Lost() || v.game.Won() {
		v.drawBanner(screen, l.grid)
	}
	return nil
}

func (v *view) drawCell(screen tcell.Screen, r rect, index int, tile mines.Tile) {
	var (
		active = index == v.game.Active()
		border = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
		text   = tcell.StyleDefault
	)
	switch {
	case active:
		border = border.Foreground(tcell.ColorDarkCyan).Bold(true)
	case v.game.Lost() && tile.Mine():
		border = border.Foreground(tcell.ColorRed)
	}

	switch {
	case tile.Exposed() && tile.Mine():
		text = text.Foreground(tcell.ColorLightYellow).Background(tcell.ColorBlack)
	case tile.Exposed():
		text = text.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	case active:
		text = text.Foreground(tcell.ColorBlack).Background(tcell.ColorDarkCyan)
	default:
		text = text.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	}

	inner := rect{r.x + 1, r.y + 1, r.width - 2, r.height - 2}
	fill(screen, inner, text)
	drawBox(screen, r, rounded, border)
	drawText(screen, inner.x, inner.y+inner.height/2, inner.width, cellText(tile), text)
}

func cellText(tile mines.Tile) string {
	switch {
	case tile.Flagged():
		return flag
	case tile.Exposed() && tile.Mine():
		return bomb
	case tile.Exposed() && tile.AdjacentMines() > 0:
		return strconv.Itoa(tile.AdjacentMines())
	default:
		return " "
	}
}

func (v *view) drawBanner(screen tcell.Screen, grid rect) {
	var (
		area  = grid.centered(20, 3)
		text  = "You won!"
		color = tcell.ColorLightGreen
	)
	if v.game.Lost() {
		text, color = "You lose!", tcell.ColorDarkMagenta
	}

	fill(screen, area, tcell.StyleDefault)
	drawBox(screen, area, thick, tcell.StyleDefault.Foreground(color).Bold(true))
	drawText(screen, area.x+1, area.y+area.height/2, area.width-2, text, tcell.StyleDefault.Bold(true))
}
