package model

import "errors"

// Common errors used across the application
var (
	// Engine errors
	ErrOutOfRange       = errors.New("coordinate out of range")
	ErrImmutableCell    = errors.New("cell is a given and cannot be changed")
	ErrNoEmptyCells     = errors.New("no empty cells left")
	ErrInvalidValue     = errors.New("value must be between 0 and 9")
	ErrGenerationFailed = errors.New("solution generation failed")

	// Session errors
	ErrGameNotFound      = errors.New("game not found")
	ErrGameComplete      = errors.New("game is already complete")
	ErrGameAbandoned     = errors.New("game has been abandoned")
	ErrInvalidDifficulty = errors.New("invalid difficulty level")

	// Scoring errors
	ErrGameNotComplete = errors.New("game is not complete")
)
