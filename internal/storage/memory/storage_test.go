package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/sudokumaster/sudokumaster/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func testSession(id model.GameID) *model.Session {
	solution := model.Grid{}
	solution[0][0] = 5
	board := model.NewBoardFromSolution(solution)
	board.Clear(model.Position{Row: 0, Col: 1})

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return &model.Session{
		ID:              id,
		State:           model.GameStatePlaying,
		Difficulty:      model.DifficultyMedium,
		Solution:        solution,
		Board:           board,
		EmptyCellTarget: 40,
		StartedAt:       now,
		UpdatedAt:       now,
	}
}

// Game session tests

func (s *StorageSuite) TestSaveAndGetGame() {
	session := testSession("GAME12345678")

	err := s.storage.SaveGame(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "GAME12345678")
	s.Require().NoError(err)
	s.Equal(session.ID, retrieved.ID)
	s.Equal(session.Solution, retrieved.Solution)
	s.Equal(session.Board.Cells, retrieved.Board.Cells)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestDeleteGame() {
	session := testSession("GAME12345678")
	_ = s.storage.SaveGame(s.ctx, session)

	err := s.storage.DeleteGame(s.ctx, "GAME12345678")
	s.Require().NoError(err)

	_, err = s.storage.GetGame(s.ctx, "GAME12345678")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestSaveGameOverwrites() {
	session := testSession("GAME12345678")
	_ = s.storage.SaveGame(s.ctx, session)

	session.Mistakes = 3
	_ = s.storage.SaveGame(s.ctx, session)

	retrieved, err := s.storage.GetGame(s.ctx, "GAME12345678")
	s.Require().NoError(err)
	s.Equal(3, retrieved.Mistakes)
}

func (s *StorageSuite) TestMutatingRetrievedGameDoesNotAffectStored() {
	session := testSession("GAME12345678")
	_ = s.storage.SaveGame(s.ctx, session)

	retrieved, _ := s.storage.GetGame(s.ctx, "GAME12345678")
	retrieved.Mistakes = 99
	retrieved.Board.Cells.Set(model.Position{Row: 0, Col: 1}, 7)

	fresh, err := s.storage.GetGame(s.ctx, "GAME12345678")
	s.Require().NoError(err)
	s.Equal(0, fresh.Mistakes)
	s.True(fresh.Board.IsEmpty(model.Position{Row: 0, Col: 1}))
}

func (s *StorageSuite) TestMutatingSavedGameDoesNotAffectStored() {
	session := testSession("GAME12345678")
	_ = s.storage.SaveGame(s.ctx, session)

	session.Board.Cells.Set(model.Position{Row: 0, Col: 1}, 7)

	fresh, err := s.storage.GetGame(s.ctx, "GAME12345678")
	s.Require().NoError(err)
	s.True(fresh.Board.IsEmpty(model.Position{Row: 0, Col: 1}))
}

// Score tests

func (s *StorageSuite) TestSaveAndListScores() {
	score := &model.Score{
		ID:          "score001",
		PlayerName:  "Alice",
		TimeSeconds: 300,
		Date:        time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	err := s.storage.SaveScore(s.ctx, score)
	s.Require().NoError(err)

	scores, err := s.storage.ListScores(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(scores, 1)
	s.Equal("Alice", scores[0].PlayerName)
	s.Equal(300, scores[0].TimeSeconds)
}

func (s *StorageSuite) TestListScoresEmpty() {
	scores, err := s.storage.ListScores(s.ctx)
	s.Require().NoError(err)
	s.Empty(scores)
}

func (s *StorageSuite) TestMutatingListedScoreDoesNotAffectStored() {
	score := &model.Score{ID: "score001", PlayerName: "Alice"}
	_ = s.storage.SaveScore(s.ctx, score)

	scores, _ := s.storage.ListScores(s.ctx)
	scores[0].PlayerName = "Mallory"

	fresh, err := s.storage.ListScores(s.ctx)
	s.Require().NoError(err)
	s.Equal("Alice", fresh[0].PlayerName)
}
