package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/vancomm/sweep/internal/game"
)

// commandFor maps a key press to a game command. Unbound keys map to
// [game.None].
func commandFor(ev *tcell.EventKey) game.Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.MoveUp
	case tcell.KeyDown:
		return game.MoveDown
	case tcell.KeyLeft:
		return game.MoveLeft
	case tcell.KeyRight:
		return game.MoveRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Quit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			return game.MoveUp
		case 'j':
			return game.MoveDown
		case 'h':
			return game.MoveLeft
		case 'l':
			return game.MoveRight
		case ' ':
			return game.Expose
		case 'f':
			return game.Flag
		case 'r':
			return game.Restart
		case 'q':
			return game.Quit
		}
	}
	return game.None
}

var helpLines = []string{
	"movement: hjkl / ← ↓ ↑ →",
	"expose tile: spacebar",
	"flag tile: f",
	"new game: r",
	"quit: q",
}
