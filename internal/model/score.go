package model

import "time"

// ScoreID uniquely identifies a recorded score
type ScoreID string

// Score is a completed-game record persisted alongside the player's name
type Score struct {
	ID          ScoreID
	PlayerName  string
	TimeSeconds int
	Mistakes    int
	HintsUsed   int
	FilledCells int
	EmptyCells  int
	Date        time.Time
}
