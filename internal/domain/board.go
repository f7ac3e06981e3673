package domain

// Board is indexed [column][row]; row 0 is the top row and Rows-1 the bottom.
type Board struct {
	cells [Columns][Rows]PlayerID
}

func NewBoard() *Board {
	return &Board{}
}

func inBounds(column, row int) bool {
	return column >= 0 && column < Columns && row >= 0 && row < Rows
}

// Cell returns Empty for coordinates outside the grid.
func (b *Board) Cell(column, row int) PlayerID {
	if !inBounds(column, row) {
		return Empty
	}
	return b.cells[column][row]
}

func IsValidMove(b *Board, column int) bool {
	if column < 0 || column >= Columns {
		return false
	}

	// the column is full once its top cell is taken
	return b.cells[column][0] == Empty
}

// DropToken lets a token fall into column and returns the row it lands on.
// A rejected drop leaves the board untouched.
func (b *Board) DropToken(column int, player PlayerID) (int, error) {
	if column < 0 || column >= Columns || !player.Valid() {
		return -1, ErrInvalidMove
	}
	if b.cells[column][0] != Empty {
		return -1, ErrColumnFull
	}

	// walk up from the bottom until the first free cell
	row := Rows - 1
	for b.cells[column][row] != Empty {
		row--
	}
	b.cells[column][row] = player

	return row, nil
}

// ColumnHeight is the number of tokens stacked in column.
func (b *Board) ColumnHeight(column int) int {
	if column < 0 || column >= Columns {
		return 0
	}
	height := 0
	for row := Rows - 1; row >= 0 && b.cells[column][row] != Empty; row-- {
		height++
	}
	return height
}

func (b *Board) IsFull() bool {
	for c := 0; c < Columns; c++ {
		if b.cells[c][0] == Empty {
			return false
		}
	}

	return true
}

// Clone returns an independent copy, handed to renderers so they never
// observe later moves.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

func (b *Board) ValidMoves() []int {
	validMoves := []int{}
	for col := 0; col < Columns; col++ {
		if IsValidMove(b, col) {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}
