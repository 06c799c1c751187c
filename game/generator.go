package game

import (
	"math/rand"
	"time"
)

// BoardGenerator produces a fresh board for one player at game start.
// The coordinator treats it as opaque and enforces no contract on
// uniqueness or solvability.
type BoardGenerator func() Board

// DefaultClueCount is how many givens a generated puzzle keeps.
const DefaultClueCount = 32

// GenerateBoard builds a fully valid solved grid by randomized
// backtracking, then blanks cells until DefaultClueCount givens remain.
func GenerateBoard() Board {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	board := NewBoard()
	fillBoard(board, 0, r)

	positions := r.Perm(BoardCells)
	remove := BoardCells - DefaultClueCount
	for _, pos := range positions[:remove] {
		board[pos] = 0
	}
	return board
}

// fillBoard completes the grid from cell idx onward, trying candidate
// values in shuffled order.
func fillBoard(b Board, idx int, r *rand.Rand) bool {
	if idx == BoardCells {
		return true
	}
	candidates := r.Perm(BoardSize)
	for _, c := range candidates {
		v := c + 1
		if !placementOK(b, idx, v) {
			continue
		}
		b[idx] = v
		if fillBoard(b, idx+1, r) {
			return true
		}
		b[idx] = 0
	}
	return false
}

// placementOK reports whether value v may be placed at flat index idx
// without repeating in its row, column, or 3x3 box.
func placementOK(b Board, idx, v int) bool {
	row, col := idx/BoardSize, idx%BoardSize

	for c := 0; c < BoardSize; c++ {
		if b[row*BoardSize+c] == v {
			return false
		}
	}
	for r := 0; r < BoardSize; r++ {
		if b[r*BoardSize+col] == v {
			return false
		}
	}
	boxRow, boxCol := (row/3)*3, (col/3)*3
	for r := boxRow; r < boxRow+3; r++ {
		for c := boxCol; c < boxCol+3; c++ {
			if b[r*BoardSize+c] == v {
				return false
			}
		}
	}
	return true
}
