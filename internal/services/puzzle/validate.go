package puzzle

import (
	"github.com/sudokumaster/sudokumaster/internal/model"
)

// FindConflicts returns the coordinates of other cells in the same row,
// column or 3x3 box holding the same value as the cell at pos. It is a
// pure function over the board; a value can be conflict-free by sudoku
// rules and still differ from the generated solution.
func FindConflicts(board *model.Board, pos model.Position) []model.Position {
	if !pos.InRange() {
		return nil
	}
	value := board.Value(pos)
	if value == 0 {
		return nil
	}

	var conflicts []model.Position
	seen := make(map[model.Position]bool)

	add := func(p model.Position) {
		if p == pos || seen[p] {
			return
		}
		if board.Value(p) == value {
			seen[p] = true
			conflicts = append(conflicts, p)
		}
	}

	for i := 0; i < model.GridSize; i++ {
		add(model.Position{Row: pos.Row, Col: i})
		add(model.Position{Row: i, Col: pos.Col})
	}
	origin := pos.BoxOrigin()
	for r := origin.Row; r < origin.Row+model.BoxSize; r++ {
		for c := origin.Col; c < origin.Col+model.BoxSize; c++ {
			add(model.Position{Row: r, Col: c})
		}
	}

	return conflicts
}

// IsComplete reports whether the board equals the solution cell for
// cell. The check is full equality, not merely "no zeros".
func IsComplete(board *model.Board, solution model.Grid) bool {
	return board.Cells == solution
}

// IncorrectCells returns the non-given cells whose value differs from
// the solution, empty cells included.
func IncorrectCells(board *model.Board, solution model.Grid) []model.Position {
	var incorrect []model.Position
	for row := 0; row < model.GridSize; row++ {
		for col := 0; col < model.GridSize; col++ {
			pos := model.Position{Row: row, Col: col}
			if board.IsGiven(pos) {
				continue
			}
			if board.Value(pos) != solution.Get(pos) {
				incorrect = append(incorrect, pos)
			}
		}
	}
	return incorrect
}

// IsValidSolution reports whether every row, column and 3x3 box of the
// grid is a permutation of 1-9.
func IsValidSolution(grid model.Grid) bool {
	for i := 0; i < model.GridSize; i++ {
		var rowMask, colMask int
		for j := 0; j < model.GridSize; j++ {
			rowMask |= digitBit(grid[i][j])
			colMask |= digitBit(grid[j][i])
		}
		if rowMask != fullMask || colMask != fullMask {
			return false
		}
	}
	for boxRow := 0; boxRow < model.GridSize; boxRow += model.BoxSize {
		for boxCol := 0; boxCol < model.GridSize; boxCol += model.BoxSize {
			var mask int
			for r := boxRow; r < boxRow+model.BoxSize; r++ {
				for c := boxCol; c < boxCol+model.BoxSize; c++ {
					mask |= digitBit(grid[r][c])
				}
			}
			if mask != fullMask {
				return false
			}
		}
	}
	return true
}

// fullMask has bits 1-9 set
const fullMask = 0b1111111110

func digitBit(value int) int {
	if value < 1 || value > model.GridSize {
		return 0
	}
	return 1 << value
}
