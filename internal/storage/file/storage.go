// Package file persists games and scores as JSON documents under a data
// directory, mirroring the desktop original's save files and score table.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/sudokumaster/sudokumaster/internal/model"
	"github.com/sudokumaster/sudokumaster/internal/storage"
)

const (
	gamesDir   = "games"
	scoresFile = "scores.json"
	gameExt    = ".json"
)

// Storage is a filesystem implementation of the storage interface
type Storage struct {
	mu  sync.Mutex
	dir string
}

// New creates a file storage rooted at dir, creating it if needed
func New(dir string) (*Storage, error) {
	if err := os.MkdirAll(filepath.Join(dir, gamesDir), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Storage{dir: dir}, nil
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) gamePath(id model.GameID) string {
	return filepath.Join(s.dir, gamesDir, string(id)+gameExt)
}

func (s *Storage) scoresPath() string {
	return filepath.Join(s.dir, scoresFile)
}

// Game session operations

func (s *Storage) SaveGame(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(s.gamePath(session.ID), data)
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.gamePath(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode save file: %w", err)
	}
	return &session, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.gamePath(id))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Score operations

func (s *Storage) SaveScore(ctx context.Context, score *model.Score) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	scores, err := s.readScores()
	if err != nil {
		return err
	}

	copied := *score
	scores = append(scores, &copied)

	data, err := json.MarshalIndent(scores, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(s.scoresPath(), data)
}

func (s *Storage) ListScores(ctx context.Context) ([]*model.Score, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readScores()
}

func (s *Storage) readScores() ([]*model.Score, error) {
	data, err := os.ReadFile(s.scoresPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []*model.Score{}, nil
		}
		return nil, err
	}

	var scores []*model.Score
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, fmt.Errorf("decode scores file: %w", err)
	}
	return scores, nil
}

// writeFileAtomic writes via a temp file and rename so a crash mid-write
// never leaves a truncated document behind.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
