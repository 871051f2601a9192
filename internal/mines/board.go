package mines

import (
	"fmt"
	"math"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

// Board owns every tile of one game. It is not safe for concurrent use: a
// single game loop is expected to drive it.
type Board struct {
	tiles         []Tile
	rows, columns int
	mineTotal     int

	flagged          int
	correctlyFlagged int
	// exposed counts safe tiles only; an exposed mine never moves the
	// game towards a win.
	exposed int
}

type options struct {
	rand  Rand
	mines []int
	fixed bool
}

type Option func(*options)

// WithRand makes the board draw its mine positions from r.
func WithRand(r Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

// WithMines places mines at exactly the given row-major indices instead of
// sampling them.
func WithMines(indices ...int) Option {
	return func(o *options) {
		o.mines = indices
		o.fixed = true
	}
}

// New builds a rows x columns board holding mineTotal mines.
func New(rows, columns, mineTotal int, opts ...Option) (*Board, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if rows <= 0 {
		return nil, &ConfigError{"rows", rows, "must be greater than zero"}
	}
	if columns <= 0 {
		return nil, &ConfigError{"columns", columns, "must be greater than zero"}
	}
	if rows > math.MaxInt/columns {
		return nil, &ConfigError{"columns", columns, fmt.Sprintf("grid of %d rows is too large", rows)}
	}
	ntiles := rows * columns
	if mineTotal < 0 || mineTotal > ntiles {
		return nil, &ConfigError{
			"mines", mineTotal, fmt.Sprintf("must be within [0, %d]", ntiles),
		}
	}

	mined := make([]bool, ntiles)
	if o.fixed {
		if len(o.mines) != mineTotal {
			return nil, &ConfigError{
				"mines", len(o.mines), fmt.Sprintf("fixed placement must list %d indices", mineTotal),
			}
		}
		for _, i := range o.mines {
			if i < 0 || i >= ntiles {
				return nil, &ConfigError{"mine index", i, "out of range"}
			}
			if mined[i] {
				return nil, &ConfigError{"mine index", i, "listed twice"}
			}
			mined[i] = true
		}
	} else {
		if o.rand == nil {
			o.rand = NewRand()
		}
		for _, i := range sample(o.rand, ntiles, mineTotal) {
			mined[i] = true
		}
	}

	tiles := make([]Tile, ntiles)
	for i := range tiles {
		neighbors := Adjacent(CoordinateOf(i, columns), rows, columns)
		var adjacentMines uint8
		for _, j := range neighbors {
			if mined[j] {
				adjacentMines++
			}
		}
		invariant(adjacentMines <= 8,
			"tile %d has %d adjacent mines", i, adjacentMines)

		tiles[i] = Tile{
			neighbors:     neighbors,
			mine:          mined[i],
			adjacentMines: adjacentMines,
		}
	}

	b := &Board{
		tiles:     tiles,
		rows:      rows,
		columns:   columns,
		mineTotal: mineTotal,
	}

	Log.WithFields(logrus.Fields{
		"rows":    rows,
		"columns": columns,
		"mines":   mineTotal,
		"fixed":   o.fixed,
	}).Debug("board created")

	return b, nil
}

func (b *Board) Rows() int {
	return b.rows
}

func (b *Board) Columns() int {
	return b.columns
}

func (b *Board) MineTotal() int {
	return b.mineTotal
}

// Len is the number of tiles on the board.
func (b *Board) Len() int {
	return len(b.tiles)
}

// Exposed is the number of exposed tiles that are not mines.
func (b *Board) Exposed() int {
	return b.exposed
}

// Flagged is the number of flagged tiles.
func (b *Board) Flagged() int {
	return b.flagged
}

func (b *Board) index(c Coordinate) (int, error) {
	if !inBounds(c, b.rows, b.columns) {
		return 0, &TileNotFoundError{Coordinate: c, Index: -1}
	}
	return IndexOf(c, b.columns), nil
}

// Tile returns a copy of the tile at c.
func (b *Board) Tile(c Coordinate) (Tile, error) {
	i, err := b.index(c)
	if err != nil {
		return Tile{}, err
	}
	return b.tiles[i], nil
}

// TileAt returns a copy of the tile at row-major index i.
func (b *Board) TileAt(i int) (Tile, error) {
	if i < 0 || i >= len(b.tiles) {
		return Tile{}, &TileNotFoundError{Coordinate: CoordinateOf(i, b.columns), Index: i}
	}
	return b.tiles[i], nil
}

// Expose uncovers the tile at c and reports whether it was a mine. A safe
// tile with no adjacent mines also uncovers its whole zero region together
// with the numbered tiles bordering it. The flood fill leaves flagged tiles
// covered, but a mine is uncovered whether or not it carries a flag.
func (b *Board) Expose(c Coordinate) (hitMine bool, err error) {
	start, err := b.index(c)
	if err != nil {
		return false, err
	}

	if t := &b.tiles[start]; t.mine {
		b.expose(t)
		Log.WithField("coordinate", c).Debug("mine exposed")
		return true, nil
	}

	var (
		queue   deque.Deque[int]
		visited = make([]bool, len(b.tiles))
		before  = b.exposed
	)
	queue.PushBack(start)
	for queue.Len() != 0 {
		i := queue.PopFront()
		if visited[i] {
			continue
		}
		visited[i] = true

		t := &b.tiles[i]
		if t.mine {
			continue
		}
		b.expose(t)
		if t.adjacentMines == 0 {
			for _, j := range t.neighbors {
				if !visited[j] {
					queue.PushBack(j)
				}
			}
		}
	}

	Log.WithFields(logrus.Fields{
		"coordinate": c,
		"uncovered":  b.exposed - before,
	}).Debug("tiles exposed")

	return false, nil
}

// expose uncovers a single tile. Mines are uncovered even under a flag; safe
// flagged tiles stay covered.
func (b *Board) expose(t *Tile) {
	if t.exposed {
		return
	}
	if t.mine {
		t.exposed = true
		return
	}
	if t.flagged {
		return
	}
	t.exposed = true
	b.exposed++
	invariant(b.exposed+b.correctlyFlagged <= len(b.tiles),
		"exposed (%d) + correctly flagged (%d) exceeds %d tiles",
		b.exposed, b.correctlyFlagged, len(b.tiles))
}

// ExposeAll uncovers every mine and every safe tile that is not flagged. It is
// used to reveal the board once a game is lost.
func (b *Board) ExposeAll() error {
	for i := range b.tiles {
		b.expose(&b.tiles[i])
	}
	Log.WithField("exposed", b.exposed).Debug("board revealed")
	return nil
}

// Flag toggles the flag on the tile at c and returns its new flag state.
// Removing a flag always succeeds. Placing one is refused once every mine has
// a flag or when the tile is already exposed; the returned state then stays
// false.
func (b *Board) Flag(c Coordinate) (bool, error) {
	i, err := b.index(c)
	if err != nil {
		return false, err
	}

	t := &b.tiles[i]
	switch {
	case t.flagged:
		t.flagged = false
		b.flagged--
		if t.mine {
			b.correctlyFlagged--
		}
	case b.flagged < b.mineTotal && !t.exposed:
		t.flagged = true
		b.flagged++
		if t.mine {
			b.correctlyFlagged++
		}
	}
	b.checkFlags()

	return t.flagged, nil
}

func (b *Board) checkFlags() {
	invariant(0 <= b.flagged && b.flagged <= b.mineTotal,
		"flagged count %d outside [0, %d]", b.flagged, b.mineTotal)
	invariant(0 <= b.correctlyFlagged && b.correctlyFlagged <= b.flagged,
		"correctly flagged count %d outside [0, %d]", b.correctlyFlagged, b.flagged)
}

// HasWon reports whether every safe tile is exposed and every mine flagged.
func (b *Board) HasWon() bool {
	n := b.exposed + b.correctlyFlagged
	invariant(n <= len(b.tiles),
		"exposed (%d) + correctly flagged (%d) exceeds %d tiles",
		b.exposed, b.correctlyFlagged, len(b.tiles))
	return n == len(b.tiles)
}

// AvailableFlags is the number of flags that can still be placed.
func (b *Board) AvailableFlags() int {
	n := b.mineTotal - b.flagged
	invariant(n >= 0, "flagged count %d exceeds mine total %d", b.flagged, b.mineTotal)
	return n
}
