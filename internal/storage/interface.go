package storage

import (
	"context"

	"github.com/sudokumaster/sudokumaster/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Game session operations
	SaveGame(ctx context.Context, session *model.Session) error
	GetGame(ctx context.Context, id model.GameID) (*model.Session, error)
	DeleteGame(ctx context.Context, id model.GameID) error

	// Score operations
	SaveScore(ctx context.Context, score *model.Score) error
	ListScores(ctx context.Context) ([]*model.Score, error)
}
