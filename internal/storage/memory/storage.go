package memory

import (
	"context"
	"sync"

	"github.com/sudokumaster/sudokumaster/internal/model"
	"github.com/sudokumaster/sudokumaster/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	games  map[model.GameID]*model.Session
	scores []*model.Score
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games: make(map[model.GameID]*model.Session),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game session operations

func (s *Storage) SaveGame(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[session.ID] = cloneSession(session)
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return cloneSession(session), nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

// Score operations

func (s *Storage) SaveScore(ctx context.Context, score *model.Score) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *score
	s.scores = append(s.scores, &copied)
	return nil
}

func (s *Storage) ListScores(ctx context.Context) ([]*model.Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.Score, 0, len(s.scores))
	for _, score := range s.scores {
		copied := *score
		result = append(result, &copied)
	}
	return result, nil
}

// cloneSession copies a session so callers cannot mutate stored state
func cloneSession(session *model.Session) *model.Session {
	copied := *session
	copied.Board = session.Board.Clone()
	return &copied
}
