package game

import (
	"io"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/sweep/internal/mines"
)

func TestMain(m *testing.M) {
	Log.SetOutput(io.Discard)
	mines.Log.SetOutput(io.Discard)
	m.Run()
}

// centerMine is a 3x3 game with a single mine in the middle.
func centerMine(t *testing.T) *Game {
	t.Helper()
	g, err := New(Params{Rows: 3, Columns: 3, Mines: 1}, mines.WithMines(4))
	require.NoError(t, err)
	return g
}

func apply(t *testing.T, g *Game, cmds ...Command) Outcome {
	t.Helper()
	var (
		o   Outcome
		err error
	)
	for _, cmd := range cmds {
		o, err = g.Apply(cmd)
		require.NoError(t, err, "command %s", cmd)
	}
	return o
}

func TestNewRejectsInvalidParams(t *testing.T) {
	_, err := New(Params{Rows: 2, Columns: 2, Mines: 5})
	assert.ErrorIs(t, err, mines.ErrInvalidConfig)
}

func TestMovementIsClamped(t *testing.T) {
	g := centerMine(t)

	apply(t, g, MoveUp, MoveLeft)
	assert.Equal(t, 0, g.Active())

	apply(t, g, MoveRight, MoveRight, MoveRight)
	assert.Equal(t, mines.Coordinate{Row: 0, Column: 2}, g.ActiveCoordinate())

	apply(t, g, MoveDown, MoveDown, MoveDown)
	assert.Equal(t, mines.Coordinate{Row: 2, Column: 2}, g.ActiveCoordinate())

	apply(t, g, MoveLeft, MoveUp)
	assert.Equal(t, mines.Coordinate{Row: 1, Column: 1}, g.ActiveCoordinate())
}

func TestMovementOnNonSquareBoard(t *testing.T) {
	g, err := New(Params{Rows: 2, Columns: 5, Mines: 0})
	require.NoError(t, err)

	apply(t, g, MoveDown, MoveDown)
	assert.Equal(t, 5, g.Active())

	for range 10 {
		apply(t, g, MoveRight)
	}
	assert.Equal(t, 9, g.Active())
}

func TestExposeMineLosesAndRevealsBoard(t *testing.T) {
	g := centerMine(t)

	apply(t, g, MoveRight)
	apply(t, g, Flag)
	apply(t, g, MoveDown)
	o := apply(t, g, Expose)

	assert.Equal(t, Lost, o)
	assert.True(t, g.Lost())
	assert.False(t, g.Won())
	assert.True(t, g.Over())

	for i := range g.Board().Len() {
		tile, err := g.Board().TileAt(i)
		require.NoError(t, err)
		if i == 1 {
			assert.True(t, tile.Flagged())
			continue
		}
		assert.True(t, tile.Exposed(), "tile %d", i)
	}
}

func TestLossRevealsFlaggedMines(t *testing.T) {
	g, err := New(Params{Rows: 1, Columns: 3, Mines: 2}, mines.WithMines(0, 2))
	require.NoError(t, err)

	apply(t, g, Flag, MoveRight, MoveRight)
	assert.Equal(t, Lost, apply(t, g, Expose))

	for i := range g.Board().Len() {
		tile, err := g.Board().TileAt(i)
		require.NoError(t, err)
		assert.True(t, tile.Exposed(), "tile %d", i)
	}
	first, err := g.Board().TileAt(0)
	require.NoError(t, err)
	assert.True(t, first.Flagged())
	assert.Equal(t, 1, g.Board().Exposed())
}

func TestExposeIgnoredOnFlaggedCell(t *testing.T) {
	g := centerMine(t)

	apply(t, g, MoveDown, MoveRight, Flag)
	o := apply(t, g, Expose)

	assert.Equal(t, Playing, o)
	tile, err := g.Board().Tile(mines.Coordinate{Row: 1, Column: 1})
	require.NoError(t, err)
	assert.False(t, tile.Exposed())
}

func TestWinThenIgnoreInput(t *testing.T) {
	g := centerMine(t)

	for i := range 9 {
		if i == 4 {
			continue
		}
		g.active = i
		assert.Equal(t, Playing, apply(t, g, Expose))
	}

	g.active = 4
	assert.Equal(t, Playing, apply(t, g, Flag, Flag))
	assert.Equal(t, Won, apply(t, g, Flag))
	assert.True(t, g.Won())
	assert.False(t, g.Lost())

	assert.Equal(t, Won, apply(t, g, Flag, Expose))
	assert.Equal(t, 0, g.Board().AvailableFlags(), "flag ignored after the game is over")
}

func TestRestart(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	g, err := New(Params{Rows: 4, Columns: 4, Mines: 3}, mines.WithRand(r))
	require.NoError(t, err)
	id := g.ID()
	board := g.Board()

	apply(t, g, MoveDown, Flag)
	o := apply(t, g, Restart)

	assert.Equal(t, Playing, o)
	assert.NotEqual(t, id, g.ID())
	assert.NotSame(t, board, g.Board())
	assert.Equal(t, 0, g.Active())
	assert.Equal(t, 3, g.Board().AvailableFlags())
	assert.Equal(t, Params{Rows: 4, Columns: 4, Mines: 3}, g.Params())
}

func TestQuit(t *testing.T) {
	g := centerMine(t)
	assert.Equal(t, Quitting, apply(t, g, Quit))
}

func TestUnknownCommand(t *testing.T) {
	g := centerMine(t)
	_, err := g.Apply(Command(99))
	assert.EqualError(t, err, "unknown command Command(99)")
}
