package scoring

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/sudokumaster/sudokumaster/internal/dependencies/clock"
	"github.com/sudokumaster/sudokumaster/internal/dependencies/random"
	"github.com/sudokumaster/sudokumaster/internal/model"
	"github.com/sudokumaster/sudokumaster/internal/storage"
)

const scoreIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// AnonymousPlayer is recorded when no name is supplied
const AnonymousPlayer = "Anonymous"

// Service records and lists completed-game scores
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new scoring service
func New(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// Record persists a score for a completed session under the supplied
// player name. The session must have reached the completed state.
func (s *Service) Record(ctx context.Context, session *model.Session, playerName string) (*model.Score, error) {
	if session.State != model.GameStateCompleted {
		return nil, model.ErrGameNotComplete
	}

	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		playerName = AnonymousPlayer
	}

	stats := session.Stats()
	score := &model.Score{
		ID:          model.ScoreID(s.random.String(8, scoreIDAlphabet)),
		PlayerName:  playerName,
		TimeSeconds: stats.TimeSeconds,
		Mistakes:    stats.Mistakes,
		HintsUsed:   stats.HintsUsed,
		FilledCells: stats.FilledCells,
		EmptyCells:  stats.EmptyCells,
		Date:        s.clock.Now(),
	}

	if err := s.storage.SaveScore(ctx, score); err != nil {
		return nil, err
	}

	s.logger.Info("score recorded",
		slog.String("score_id", string(score.ID)),
		slog.String("player", playerName),
		slog.Int("time_seconds", score.TimeSeconds),
	)

	return score, nil
}

// List returns all recorded scores, best time first, ties broken by date
func (s *Service) List(ctx context.Context) ([]*model.Score, error) {
	scores, err := s.storage.ListScores(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].TimeSeconds != scores[j].TimeSeconds {
			return scores[i].TimeSeconds < scores[j].TimeSeconds
		}
		return scores[i].Date.Before(scores[j].Date)
	})

	return scores, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Record(ctx context.Context, session *model.Session, playerName string) (*model.Score, error)
	List(ctx context.Context) ([]*model.Score, error)
}

var _ ServiceInterface = (*Service)(nil)
