package puzzle

import (
	"log/slog"

	"github.com/sudokumaster/sudokumaster/internal/dependencies/random"
	"github.com/sudokumaster/sudokumaster/internal/model"
)

// generationAttempts bounds the retry loop around the backtracking
// search. A single attempt always succeeds from an empty grid, but a
// failed search must surface as a recoverable error rather than a crash.
const generationAttempts = 3

// Engine generates and carves puzzles. It holds no game state; the
// session owns the solution/board pair and the engine operates on it.
type Engine struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new puzzle engine
func New(rnd random.Random, logger *slog.Logger) *Engine {
	return &Engine{
		random: rnd,
		logger: logger,
	}
}

// GenerateSolution produces a fully filled grid where every row, column
// and 3x3 box is a permutation of 1-9, via randomized backtracking over
// cells in row-major order with shuffled digit candidates.
func (e *Engine) GenerateSolution() (model.Grid, error) {
	for attempt := 1; attempt <= generationAttempts; attempt++ {
		var grid model.Grid
		if e.fill(&grid, 0) {
			return grid, nil
		}
		e.logger.Warn("backtracking search exhausted",
			slog.Int("attempt", attempt),
		)
	}
	return model.Grid{}, model.ErrGenerationFailed
}

// fill places digits from cell index idx onward, backtracking on dead ends
func (e *Engine) fill(grid *model.Grid, idx int) bool {
	if idx == model.GridSize*model.GridSize {
		return true
	}
	row, col := idx/model.GridSize, idx%model.GridSize

	candidates := [model.GridSize]int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	e.random.Shuffle(model.GridSize, func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, value := range candidates {
		if allowed(grid, row, col, value) {
			grid[row][col] = value
			if e.fill(grid, idx+1) {
				return true
			}
			grid[row][col] = 0
		}
	}
	return false
}

// allowed checks the placed values in the same row, column and box
func allowed(grid *model.Grid, row, col, value int) bool {
	for i := 0; i < model.GridSize; i++ {
		if grid[row][i] == value || grid[i][col] == value {
			return false
		}
	}
	boxRow, boxCol := (row/model.BoxSize)*model.BoxSize, (col/model.BoxSize)*model.BoxSize
	for r := boxRow; r < boxRow+model.BoxSize; r++ {
		for c := boxCol; c < boxCol+model.BoxSize; c++ {
			if grid[r][c] == value {
				return false
			}
		}
	}
	return true
}

// Carve copies the solution into a board with every cell given, then
// clears randomly chosen cells until the empty-cell target is reached.
// The target is clamped so at least MinimumGivens cells remain. The
// carved puzzle is not guaranteed to be uniquely solvable; the solution
// used for validation always exists and matches the input.
func (e *Engine) Carve(solution model.Grid, target int) *model.Board {
	if target > model.MaxEmptyCells {
		target = model.MaxEmptyCells
	}
	if target < 0 {
		target = 0
	}

	board := model.NewBoardFromSolution(solution)

	positions := make([]model.Position, 0, model.GridSize*model.GridSize)
	for row := 0; row < model.GridSize; row++ {
		for col := 0; col < model.GridSize; col++ {
			positions = append(positions, model.Position{Row: row, Col: col})
		}
	}
	e.random.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})

	for _, pos := range positions[:target] {
		board.Clear(pos)
	}

	return board
}
