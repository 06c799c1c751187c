package game

// BoardCells is the number of cells in a 9x9 sudoku grid, stored flat
// in row-major order. A zero cell is empty.
const (
	BoardSize  = 9
	BoardCells = BoardSize * BoardSize
)

// Board is an 81-cell sudoku grid. The wire format is the flat slice
// itself, matching what clients exchange in NewGame payloads.
type Board []int

// NewBoard returns an empty board.
func NewBoard() Board {
	return make(Board, BoardCells)
}

// Clone returns an independent copy so callers can hold boards outside
// the coordinator's locks.
func (b Board) Clone() Board {
	if b == nil {
		return nil
	}
	out := make(Board, len(b))
	copy(out, b)
	return out
}

// Cell returns the value at (row, col).
func (b Board) Cell(row, col int) int {
	return b[row*BoardSize+col]
}

// SetCell writes value at (row, col).
func (b Board) SetCell(row, col, value int) {
	b[row*BoardSize+col] = value
}

// InBounds reports whether (row, col) addresses a cell on the grid.
func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}
