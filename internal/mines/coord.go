package mines

import "fmt"

// Coordinate addresses a tile by row and column.
type Coordinate struct {
	Row, Column int
}

// Coordinate implements [fmt.Stringer]
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Column)
}

// IndexOf maps c onto row-major storage. It does no bounds checking.
func IndexOf(c Coordinate, columns int) int {
	return c.Row*columns + c.Column
}

// CoordinateOf is the inverse of [IndexOf].
func CoordinateOf(index, columns int) Coordinate {
	return Coordinate{Row: index / columns, Column: index % columns}
}

func inBounds(c Coordinate, rows, columns int) bool {
	return 0 <= c.Row && c.Row < rows && 0 <= c.Column && c.Column < columns
}
