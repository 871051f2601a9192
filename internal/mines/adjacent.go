package mines

// Adjacent returns the row-major indices of the up to 8 tiles surrounding c,
// skipping positions that fall outside a rows x columns grid.
func Adjacent(c Coordinate, rows, columns int) []int {
	var (
		fromRow, toRow = max(0, c.Row-1), min(c.Row+1, rows-1)
		fromCol, toCol = max(0, c.Column-1), min(c.Column+1, columns-1)
		indices        = make([]int, 0, 8)
	)
	for r := fromRow; r <= toRow; r++ {
		for col := fromCol; col <= toCol; col++ {
			if r == c.Row && col == c.Column {
				continue
			}
			indices = append(indices, IndexOf(Coordinate{r, col}, columns))
		}
	}
	return indices
}
