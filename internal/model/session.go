package model

import "time"

// GameID uniquely identifies a game session
type GameID string

// GameState represents the current phase of a session
type GameState string

const (
	GameStatePlaying   GameState = "playing"   // Accepting moves and hints
	GameStateCompleted GameState = "completed" // Board matches the solution
	GameStateAbandoned GameState = "abandoned" // Game was cancelled
)

// Session owns one solution/board pair and the per-game counters.
// The solution and the given-cell set are fixed at creation; the board
// mutates through player input and hint reveals.
type Session struct {
	ID         GameID
	State      GameState
	Difficulty Difficulty

	Solution Grid
	Board    *Board

	// EmptyCellTarget is the empty-cell count requested at carve time
	EmptyCellTarget int

	Mistakes       int
	HintsUsed      int
	ElapsedSeconds int

	StartedAt time.Time
	UpdatedAt time.Time
}

// Stats is the completion record handed to the score collaborator
type Stats struct {
	TimeSeconds int
	Mistakes    int
	HintsUsed   int
	FilledCells int
	EmptyCells  int // Empty-cell count at game start
}

// Stats returns the session's completion statistics
func (s *Session) Stats() Stats {
	return Stats{
		TimeSeconds: s.ElapsedSeconds,
		Mistakes:    s.Mistakes,
		HintsUsed:   s.HintsUsed,
		FilledCells: s.Board.FilledCount(),
		EmptyCells:  s.EmptyCellTarget,
	}
}

// IsFinished returns true once the session left the playing state
func (s *Session) IsFinished() bool {
	return s.State == GameStateCompleted || s.State == GameStateAbandoned
}
