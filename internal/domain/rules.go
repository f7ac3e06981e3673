package domain

// step pairs tried from every occupied cell, in scan order
var directions = [...]struct{ rowStep, colStep int }{
	{1, 1},
	{1, -1},
	{-1, -1},
	{-1, 1},
}

// CheckWin scans the whole board column by column and reports the owner of
// the first four-in-a-row it meets.
func (b *Board) CheckWin() GameResult {
	for i := 0; i < Columns; i++ {
		for j := 0; j < Rows; j++ {
			player := b.cells[i][j]
			if player == Empty {
				continue
			}
			for _, d := range directions {
				// only start where a run of four fits both ways
				if !inBounds(i+(ToWin-1)*d.colStep, j+(ToWin-1)*d.rowStep) {
					continue
				}
				if b.checkLine(i, j, d.rowStep, d.colStep) {
					return Win(player)
				}
			}
		}
	}
	return InProgress
}

// checkLine reports whether the column line, the row line or the diagonal
// starting at (i, j) holds ToWin equal tokens. Callers guarantee the
// furthest cell is inside the board.
func (b *Board) checkLine(i, j, rowStep, colStep int) bool {
	return b.run(i, j, 0, rowStep) ||
		b.run(i, j, colStep, rowStep) ||
		b.run(i, j, colStep, 0)
}

func (b *Board) run(i, j, dc, dr int) bool {
	start := b.cells[i][j]
	for k := 1; k < ToWin; k++ {
		if b.cells[i+k*dc][j+k*dr] != start {
			return false
		}
	}
	return true
}
