package model

// Difficulty selects how many cells are carved out of a new puzzle
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// MinimumGivens is the fewest givens a carved puzzle may keep. 17 is the
// theoretical minimum for a uniquely solvable sudoku; carving never goes
// below it even though uniqueness itself is not guaranteed.
const MinimumGivens = 17

// MaxEmptyCells is the most cells carving may remove
const MaxEmptyCells = GridSize*GridSize - MinimumGivens

// MaxMistakes is the mistake limit surfaced to the presentation layer.
// The engine counts mistakes; enforcing the limit is the caller's call.
const MaxMistakes = 5

// CarveTargets maps each difficulty to its empty-cell count. The values
// are tunable policy, not a structural requirement.
type CarveTargets map[Difficulty]int

// DefaultCarveTargets returns the standard difficulty table
func DefaultCarveTargets() CarveTargets {
	return CarveTargets{
		DifficultyEasy:   30,
		DifficultyMedium: 40,
		DifficultyHard:   50,
		DifficultyExpert: 58,
	}
}

// Valid returns true for a known difficulty level
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert:
		return true
	}
	return false
}
