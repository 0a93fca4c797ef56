package redis

import (
	"fmt"

	"github.com/sudokumaster/sudokumaster/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "sudoku"

// gameKey returns the Redis key for a game session
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// scoreKey returns the Redis key for a recorded score
func scoreKey(id model.ScoreID) string {
	return fmt.Sprintf("%s:score:%s", keyPrefix, id)
}

// scoresIndexKey returns the Redis key for the SET of all score keys
func scoresIndexKey() string {
	return fmt.Sprintf("%s:idx:scores", keyPrefix)
}
