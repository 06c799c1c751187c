package game

import "testing"

func TestGenerateBoardShape(t *testing.T) {
	board := GenerateBoard()

	if len(board) != BoardCells {
		t.Fatalf("board has %d cells, want %d", len(board), BoardCells)
	}
	clues := 0
	for i, v := range board {
		if v < 0 || v > 9 {
			t.Fatalf("cell %d holds %d, want 0..9", i, v)
		}
		if v != 0 {
			clues++
		}
	}
	if clues != DefaultClueCount {
		t.Errorf("board has %d clues, want %d", clues, DefaultClueCount)
	}
}

func TestGenerateBoardHasNoConflicts(t *testing.T) {
	board := GenerateBoard()

	check := func(label string, cells []int) {
		seen := make(map[int]bool)
		for _, idx := range cells {
			v := board[idx]
			if v == 0 {
				continue
			}
			if seen[v] {
				t.Errorf("%s repeats %d", label, v)
			}
			seen[v] = true
		}
	}

	for r := 0; r < BoardSize; r++ {
		cells := make([]int, BoardSize)
		for c := 0; c < BoardSize; c++ {
			cells[c] = r*BoardSize + c
		}
		check("row", cells)
	}
	for c := 0; c < BoardSize; c++ {
		cells := make([]int, BoardSize)
		for r := 0; r < BoardSize; r++ {
			cells[r] = r*BoardSize + c
		}
		check("column", cells)
	}
	for box := 0; box < 9; box++ {
		baseRow, baseCol := (box/3)*3, (box%3)*3
		var cells []int
		for r := baseRow; r < baseRow+3; r++ {
			for c := baseCol; c < baseCol+3; c++ {
				cells = append(cells, r*BoardSize+c)
			}
		}
		check("box", cells)
	}
}

func TestPlacementOK(t *testing.T) {
	b := NewBoard()
	b.SetCell(0, 0, 5)

	tests := []struct {
		name string
		idx  int
		v    int
		want bool
	}{
		{"same row", 8, 5, false},
		{"same column", 72, 5, false},
		{"same box", 10, 5, false},
		{"unrelated cell", 40, 5, true},
		{"different value", 1, 6, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := placementOK(b, tt.idx, tt.v); got != tt.want {
				t.Errorf("placementOK(%d, %d) = %v, want %v", tt.idx, tt.v, got, tt.want)
			}
		})
	}
}

func TestBoardClone(t *testing.T) {
	b := NewBoard()
	b.SetCell(4, 4, 9)

	c := b.Clone()
	c.SetCell(4, 4, 1)
	if b.Cell(4, 4) != 9 {
		t.Error("clone shares backing storage")
	}

	var nilBoard Board
	if nilBoard.Clone() != nil {
		t.Error("cloning a nil board should stay nil")
	}
}
