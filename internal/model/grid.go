package model

// GridSize is the side length of a sudoku grid
const GridSize = 9

// BoxSize is the side length of a 3x3 box
const BoxSize = 3

// Position identifies a cell on the grid
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Grid is a 9x9 sudoku grid in row-major order, 0 means empty
type Grid [GridSize][GridSize]int

// Get returns the value at the given position, or 0 if out of range
func (g *Grid) Get(pos Position) int {
	if !pos.InRange() {
		return 0
	}
	return g[pos.Row][pos.Col]
}

// Set places a value at the given position
func (g *Grid) Set(pos Position, value int) {
	if pos.InRange() {
		g[pos.Row][pos.Col] = value
	}
}

// IsFull returns true if all cells are filled
func (g *Grid) IsFull() bool {
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if g[row][col] == 0 {
				return false
			}
		}
	}
	return true
}

// FilledCount returns the number of non-empty cells
func (g *Grid) FilledCount() int {
	count := 0
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if g[row][col] != 0 {
				count++
			}
		}
	}
	return count
}

// EmptyCount returns the number of empty cells
func (g *Grid) EmptyCount() int {
	return GridSize*GridSize - g.FilledCount()
}

// InRange returns true if the position is within the 9x9 grid
func (p Position) InRange() bool {
	return p.Row >= 0 && p.Row < GridSize && p.Col >= 0 && p.Col < GridSize
}

// BoxOrigin returns the top-left position of the 3x3 box containing p
func (p Position) BoxOrigin() Position {
	return Position{
		Row: (p.Row / BoxSize) * BoxSize,
		Col: (p.Col / BoxSize) * BoxSize,
	}
}
