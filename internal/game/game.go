package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/sweep/internal/mines"
)

var Log = logrus.New()

type Params struct {
	Rows, Columns, Mines int
}

// Game is a board plus everything the player interacts with around it: the
// active cell and whether a mine has gone off.
type Game struct {
	id     uuid.UUID
	params Params
	opts   []mines.Option
	board  *mines.Board
	active int
	lost   bool
}

// New starts a game. opts are handed to [mines.New] for this board and for
// every board created by [Restart].
func New(p Params, opts ...mines.Option) (*Game, error) {
	g := &Game{params: p, opts: opts}
	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) reset() error {
	board, err := mines.New(g.params.Rows, g.params.Columns, g.params.Mines, g.opts...)
	if err != nil {
		return fmt.Errorf("unable to create board: %w", err)
	}
	g.id = uuid.New()
	g.board = board
	g.active = 0
	g.lost = false

	Log.WithFields(g.fields()).Info("new game")
	return nil
}

func (g *Game) fields() logrus.Fields {
	return logrus.Fields{
		"game_id": g.id.String(),
		"rows":    g.params.Rows,
		"columns": g.params.Columns,
		"mines":   g.params.Mines,
	}
}

func (g *Game) ID() uuid.UUID {
	return g.id
}

func (g *Game) Params() Params {
	return g.params
}

// Board exposes the underlying board for rendering. Callers must not mutate
// it directly.
func (g *Game) Board() *mines.Board {
	return g.board
}

// Active is the row-major index of the cursor.
func (g *Game) Active() int {
	return g.active
}

func (g *Game) ActiveCoordinate() mines.Coordinate {
	return mines.CoordinateOf(g.active, g.board.Columns())
}

func (g *Game) Lost() bool {
	return g.lost
}

func (g *Game) Won() bool {
	return !g.lost && g.board.HasWon()
}

func (g *Game) Over() bool {
	return g.lost || g.board.HasWon()
}

func (g *Game) Outcome() Outcome {
	switch {
	case g.lost:
		return Lost
	case g.board.HasWon():
		return Won
	default:
		return Playing
	}
}

// Apply performs cmd and reports the resulting outcome. Errors come from the
// board and mean the game state can no longer be trusted.
func (g *Game) Apply(cmd Command) (Outcome, error) {
	var (
		columns = g.board.Columns()
		row     = g.active / columns
		col     = g.active % columns
	)

	switch cmd {
	case None:
	case MoveUp:
		if row > 0 {
			g.active -= columns
		}
	case MoveDown:
		if row < g.board.Rows()-1 {
			g.active += columns
		}
	case MoveLeft:
		if col > 0 {
			g.active--
		}
	case MoveRight:
		if col < columns-1 {
			g.active++
		}
	case Flag:
		if g.Over() {
			break
		}
		if _, err := g.board.Flag(g.ActiveCoordinate()); err != nil {
			return g.Outcome(), err
		}
		g.logIfOver(cmd)
	case Expose:
		if err := g.expose(); err != nil {
			return g.Outcome(), err
		}
		g.logIfOver(cmd)
	case Restart:
		if err := g.reset(); err != nil {
			return g.Outcome(), err
		}
	case Quit:
		Log.WithFields(g.fields()).Info("quit")
		return Quitting, nil
	default:
		return g.Outcome(), fmt.Errorf("unknown command %s", cmd)
	}

	return g.Outcome(), nil
}

func (g *Game) expose() error {
	if g.Over() {
		return nil
	}
	c := g.ActiveCoordinate()
	tile, err := g.board.Tile(c)
	if err != nil {
		return err
	}
	if tile.Flagged() {
		return nil
	}

	hit, err := g.board.Expose(c)
	if err != nil {
		return err
	}
	if hit {
		g.lost = true
		if err := g.board.ExposeAll(); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) logIfOver(cmd Command) {
	if o := g.Outcome(); o != Playing {
		Log.WithFields(g.fields()).
			WithField("command", cmd.String()).
			WithField("active", g.ActiveCoordinate()).
			Infof("game %s", o)
	}
}
