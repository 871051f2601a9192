package mines

import "slices"

// Tile is a single cell of a [Board]. Values handed out by the board are
// copies, so collaborators can read them freely between moves.
type Tile struct {
	neighbors     []int
	mine          bool
	exposed       bool
	flagged       bool
	adjacentMines uint8
}

func (t Tile) Mine() bool {
	return t.mine
}

func (t Tile) Exposed() bool {
	return t.exposed
}

func (t Tile) Flagged() bool {
	return t.flagged
}

// AdjacentMines is the number of mines among the tile's neighbors.
func (t Tile) AdjacentMines() int {
	return int(t.adjacentMines)
}

// Neighbors returns the row-major indices of the surrounding tiles.
func (t Tile) Neighbors() []int {
	return slices.Clone(t.neighbors)
}
