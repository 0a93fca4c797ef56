package puzzle

import (
	"github.com/sudokumaster/sudokumaster/internal/model"
)

// Hint describes a revealable cell and its solution value
type Hint struct {
	Pos   model.Position
	Value int
}

// NextHint returns the first empty non-given cell in row-major order
// together with its solution value. It does not mutate the board; the
// caller applies the hint as a separate explicit write.
func NextHint(board *model.Board, solution model.Grid) (Hint, error) {
	for row := 0; row < model.GridSize; row++ {
		for col := 0; col < model.GridSize; col++ {
			pos := model.Position{Row: row, Col: col}
			if board.IsEmpty(pos) && !board.IsGiven(pos) {
				return Hint{Pos: pos, Value: solution.Get(pos)}, nil
			}
		}
	}
	return Hint{}, model.ErrNoEmptyCells
}

// HintAt returns the solution value for a specific empty, non-given cell
func HintAt(board *model.Board, solution model.Grid, pos model.Position) (Hint, error) {
	if !pos.InRange() {
		return Hint{}, model.ErrOutOfRange
	}
	if board.IsGiven(pos) {
		return Hint{}, model.ErrImmutableCell
	}
	if !board.IsEmpty(pos) {
		return Hint{}, model.ErrNoEmptyCells
	}
	return Hint{Pos: pos, Value: solution.Get(pos)}, nil
}
