package model

// Board is the player-visible working grid for a game. Cells holds the
// current values, Given marks pre-filled cells that the player cannot
// edit, and Hinted marks cells revealed via hints (display styling only).
type Board struct {
	Cells  Grid
	Given  [GridSize][GridSize]bool
	Hinted [GridSize][GridSize]bool
}

// NewBoardFromSolution creates a board that is a full copy of the
// solution with every cell marked as given. Carving clears cells from it.
func NewBoardFromSolution(solution Grid) *Board {
	b := &Board{Cells: solution}
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			b.Given[row][col] = true
		}
	}
	return b
}

// Value returns the value at the given position
func (b *Board) Value(pos Position) int {
	return b.Cells.Get(pos)
}

// IsGiven returns true if the cell is a pre-filled, immutable cell
func (b *Board) IsGiven(pos Position) bool {
	return pos.InRange() && b.Given[pos.Row][pos.Col]
}

// IsHinted returns true if the cell was revealed via a hint
func (b *Board) IsHinted(pos Position) bool {
	return pos.InRange() && b.Hinted[pos.Row][pos.Col]
}

// IsEmpty returns true if the cell at the given position is empty
func (b *Board) IsEmpty(pos Position) bool {
	return b.Cells.Get(pos) == 0
}

// IsFull returns true if all cells are filled
func (b *Board) IsFull() bool {
	return b.Cells.IsFull()
}

// FilledCount returns the number of non-empty cells
func (b *Board) FilledCount() int {
	return b.Cells.FilledCount()
}

// GivenCount returns the number of given cells
func (b *Board) GivenCount() int {
	count := 0
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if b.Given[row][col] {
				count++
			}
		}
	}
	return count
}

// GivenPositions returns the coordinates of all given cells in row-major order
func (b *Board) GivenPositions() []Position {
	var positions []Position
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if b.Given[row][col] {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}
	return positions
}

// Clear empties a cell and removes its given and hinted flags
func (b *Board) Clear(pos Position) {
	if !pos.InRange() {
		return
	}
	b.Cells[pos.Row][pos.Col] = 0
	b.Given[pos.Row][pos.Col] = false
	b.Hinted[pos.Row][pos.Col] = false
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	copied := *b
	return &copied
}
