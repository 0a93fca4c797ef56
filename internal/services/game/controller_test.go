package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/sudokumaster/sudokumaster/internal/dependencies/mocks"
	"github.com/sudokumaster/sudokumaster/internal/model"
	"github.com/sudokumaster/sudokumaster/internal/services/puzzle"
	"github.com/sudokumaster/sudokumaster/internal/storage/memory"
	"github.com/sudokumaster/sudokumaster/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	engine     *puzzle.Engine
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.engine = puzzle.New(s.random, testutil.NopLogger())
	s.controller = NewController(s.storage, s.engine, model.DefaultCarveTargets(), s.clock, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

// newGame creates a medium game with a fixed ID. The mock random's no-op
// shuffle carves the first 40 cells in row-major order, so rows 0-3 and
// the start of row 4 are empty and editable.
func (s *ControllerSuite) newGame() *model.Session {
	s.random.QueueString("GAME12345678")
	session, err := s.controller.CreateGame(s.ctx, model.DifficultyMedium, 0)
	s.Require().NoError(err)
	return session
}

// CreateGame tests

func (s *ControllerSuite) TestCreateGameSucceeds() {
	session := s.newGame()

	s.Equal(model.GameID("GAME12345678"), session.ID)
	s.Equal(model.GameStatePlaying, session.State)
	s.Equal(model.DifficultyMedium, session.Difficulty)
	s.Equal(40, session.EmptyCellTarget)
	s.Equal(41, session.Board.FilledCount())
	s.Equal(0, session.Mistakes)
	s.Equal(0, session.HintsUsed)
	s.Equal(0, session.ElapsedSeconds)
}

func (s *ControllerSuite) TestCreateGameSolutionIsValid() {
	session := s.newGame()

	s.True(puzzle.IsValidSolution(session.Solution))
}

func (s *ControllerSuite) TestCreateGameBoardMatchesSolutionOnGivens() {
	session := s.newGame()

	for _, pos := range session.Board.GivenPositions() {
		s.Equal(session.Solution.Get(pos), session.Board.Value(pos))
	}
}

func (s *ControllerSuite) TestCreateGameInvalidDifficultyFails() {
	_, err := s.controller.CreateGame(s.ctx, "nightmare", 0)
	s.ErrorIs(err, model.ErrInvalidDifficulty)
}

func (s *ControllerSuite) TestCreateGameEmptyCellOverride() {
	s.random.QueueString("GAME12345678")
	session, err := s.controller.CreateGame(s.ctx, model.DifficultyEasy, 25)
	s.Require().NoError(err)

	s.Equal(25, session.EmptyCellTarget)
	s.Equal(25, session.Board.Cells.EmptyCount())
}

func (s *ControllerSuite) TestCreateGameOverrideClampsToMinimumGivens() {
	s.random.QueueString("GAME12345678")
	session, err := s.controller.CreateGame(s.ctx, model.DifficultyEasy, 80)
	s.Require().NoError(err)

	s.Equal(model.MaxEmptyCells, session.EmptyCellTarget)
	s.Equal(model.MinimumGivens, session.Board.GivenCount())
}

func (s *ControllerSuite) TestCreateGameIsPersisted() {
	session := s.newGame()

	retrieved, err := s.controller.GetGame(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(session.ID, retrieved.ID)
	s.Equal(session.Solution, retrieved.Solution)
}

// SubmitValue tests

func (s *ControllerSuite) TestSubmitCorrectValue() {
	session := s.newGame()
	pos := model.Position{Row: 0, Col: 0}

	result, err := s.controller.SubmitValue(s.ctx, session.ID, pos, session.Solution.Get(pos))
	s.Require().NoError(err)

	s.True(result.Correct)
	s.False(result.Complete)
	s.Equal(0, result.Mistakes)

	updated, _ := s.controller.GetGame(s.ctx, session.ID)
	s.Equal(session.Solution.Get(pos), updated.Board.Value(pos))
}

func (s *ControllerSuite) TestSubmitIncorrectValueCountsMistake() {
	session := s.newGame()
	pos := model.Position{Row: 0, Col: 0}
	wrong := session.Solution.Get(pos)%9 + 1

	result, err := s.controller.SubmitValue(s.ctx, session.ID, pos, wrong)
	s.Require().NoError(err)

	s.False(result.Correct)
	s.Equal(1, result.Mistakes)

	// The wrong value still lands on the board
	updated, _ := s.controller.GetGame(s.ctx, session.ID)
	s.Equal(wrong, updated.Board.Value(pos))
	s.Equal(1, updated.Mistakes)
}

func (s *ControllerSuite) TestSubmitZeroClearsWithoutMistake() {
	session := s.newGame()
	pos := model.Position{Row: 0, Col: 0}
	wrong := session.Solution.Get(pos)%9 + 1

	_, err := s.controller.SubmitValue(s.ctx, session.ID, pos, wrong)
	s.Require().NoError(err)

	result, err := s.controller.SubmitValue(s.ctx, session.ID, pos, 0)
	s.Require().NoError(err)

	s.True(result.Correct)
	s.Equal(1, result.Mistakes)

	updated, _ := s.controller.GetGame(s.ctx, session.ID)
	s.True(updated.Board.IsEmpty(pos))
}

func (s *ControllerSuite) TestSubmitToGivenCellFails() {
	session := s.newGame()
	pos := model.Position{Row: 4, Col: 4}
	s.Require().True(session.Board.IsGiven(pos))

	_, err := s.controller.SubmitValue(s.ctx, session.ID, pos, 5)
	s.ErrorIs(err, model.ErrImmutableCell)

	// A failed submission leaves the session untouched
	updated, _ := s.controller.GetGame(s.ctx, session.ID)
	s.Equal(session.Solution.Get(pos), updated.Board.Value(pos))
	s.Equal(0, updated.Mistakes)
}

func (s *ControllerSuite) TestSubmitOutOfRangeFails() {
	session := s.newGame()

	_, err := s.controller.SubmitValue(s.ctx, session.ID, model.Position{Row: 9, Col: 0}, 5)
	s.ErrorIs(err, model.ErrOutOfRange)

	_, err = s.controller.SubmitValue(s.ctx, session.ID, model.Position{Row: 0, Col: -1}, 5)
	s.ErrorIs(err, model.ErrOutOfRange)
}

func (s *ControllerSuite) TestSubmitInvalidValueFails() {
	session := s.newGame()
	pos := model.Position{Row: 0, Col: 0}

	_, err := s.controller.SubmitValue(s.ctx, session.ID, pos, 10)
	s.ErrorIs(err, model.ErrInvalidValue)

	_, err = s.controller.SubmitValue(s.ctx, session.ID, pos, -1)
	s.ErrorIs(err, model.ErrInvalidValue)
}

func (s *ControllerSuite) TestSubmitToUnknownGameFails() {
	_, err := s.controller.SubmitValue(s.ctx, "nonexistent", model.Position{}, 5)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestSubmitOverwritingSameCellCountsEachMistake() {
	session := s.newGame()
	pos := model.Position{Row: 0, Col: 0}
	correct := session.Solution.Get(pos)

	_, err := s.controller.SubmitValue(s.ctx, session.ID, pos, correct%9+1)
	s.Require().NoError(err)
	result, err := s.controller.SubmitValue(s.ctx, session.ID, pos, (correct+1)%9+1)
	s.Require().NoError(err)

	s.Equal(2, result.Mistakes)
}

func (s *ControllerSuite) TestCompletingBoardFinishesGame() {
	session := s.newGame()

	result := s.fillBoard(session)

	s.True(result.Complete)

	updated, _ := s.controller.GetGame(s.ctx, session.ID)
	s.Equal(model.GameStateCompleted, updated.State)
}

func (s *ControllerSuite) TestSubmitAfterCompletionFails() {
	session := s.newGame()
	s.fillBoard(session)

	_, err := s.controller.SubmitValue(s.ctx, session.ID, model.Position{Row: 0, Col: 0}, 1)
	s.ErrorIs(err, model.ErrGameComplete)
}

// RevealHint tests

func (s *ControllerSuite) TestHintRevealsFirstEmptyCell() {
	session := s.newGame()

	result, err := s.controller.RevealHint(s.ctx, session.ID, nil)
	s.Require().NoError(err)

	s.Equal(model.Position{Row: 0, Col: 0}, result.Pos)
	s.Equal(session.Solution.Get(result.Pos), result.Value)
	s.Equal(1, result.HintsUsed)

	updated, _ := s.controller.GetGame(s.ctx, session.ID)
	s.Equal(result.Value, updated.Board.Value(result.Pos))
	s.True(updated.Board.IsHinted(result.Pos))
	s.Equal(1, updated.HintsUsed)
}

func (s *ControllerSuite) TestHintSkipsFilledCells() {
	session := s.newGame()
	first := model.Position{Row: 0, Col: 0}

	_, err := s.controller.SubmitValue(s.ctx, session.ID, first, session.Solution.Get(first))
	s.Require().NoError(err)

	result, err := s.controller.RevealHint(s.ctx, session.ID, nil)
	s.Require().NoError(err)
	s.Equal(model.Position{Row: 0, Col: 1}, result.Pos)
}

func (s *ControllerSuite) TestHintAtSpecificCell() {
	session := s.newGame()
	pos := model.Position{Row: 2, Col: 3}

	result, err := s.controller.RevealHint(s.ctx, session.ID, &pos)
	s.Require().NoError(err)

	s.Equal(pos, result.Pos)
	s.Equal(session.Solution.Get(pos), result.Value)
}

func (s *ControllerSuite) TestHintAtGivenCellFails() {
	session := s.newGame()
	pos := model.Position{Row: 4, Col: 4}

	_, err := s.controller.RevealHint(s.ctx, session.ID, &pos)
	s.ErrorIs(err, model.ErrImmutableCell)
}

func (s *ControllerSuite) TestHintAtFilledCellFails() {
	session := s.newGame()
	pos := model.Position{Row: 0, Col: 0}

	_, err := s.controller.SubmitValue(s.ctx, session.ID, pos, session.Solution.Get(pos))
	s.Require().NoError(err)

	_, err = s.controller.RevealHint(s.ctx, session.ID, &pos)
	s.ErrorIs(err, model.ErrNoEmptyCells)
}

func (s *ControllerSuite) TestSubmitOverHintClearsHintedFlag() {
	session := s.newGame()

	result, err := s.controller.RevealHint(s.ctx, session.ID, nil)
	s.Require().NoError(err)

	_, err = s.controller.SubmitValue(s.ctx, session.ID, result.Pos, result.Value)
	s.Require().NoError(err)

	updated, _ := s.controller.GetGame(s.ctx, session.ID)
	s.False(updated.Board.IsHinted(result.Pos))
	s.Equal(1, updated.HintsUsed)
}

func (s *ControllerSuite) TestHintOnLastCellCompletesGame() {
	session := s.newGame()
	last := s.lastEmptyCell(session)

	// Fill everything except one cell, then hint it
	for row := 0; row < model.GridSize; row++ {
		for col := 0; col < model.GridSize; col++ {
			pos := model.Position{Row: row, Col: col}
			if pos == last || !session.Board.IsEmpty(pos) {
				continue
			}
			_, err := s.controller.SubmitValue(s.ctx, session.ID, pos, session.Solution.Get(pos))
			s.Require().NoError(err)
		}
	}

	result, err := s.controller.RevealHint(s.ctx, session.ID, nil)
	s.Require().NoError(err)

	s.Equal(last, result.Pos)
	s.True(result.Complete)

	updated, _ := s.controller.GetGame(s.ctx, session.ID)
	s.Equal(model.GameStateCompleted, updated.State)
}

// Conflicts tests

func (s *ControllerSuite) TestConflictsReportsDuplicates() {
	session := s.newGame()

	// Copy a given value into an empty cell in the same row
	source := model.Position{Row: 4, Col: 4}
	target := model.Position{Row: 4, Col: 0}
	s.Require().True(session.Board.IsGiven(source))
	s.Require().True(session.Board.IsEmpty(target))

	_, err := s.controller.SubmitValue(s.ctx, session.ID, target, session.Board.Value(source))
	s.Require().NoError(err)

	conflicts, err := s.controller.Conflicts(s.ctx, session.ID, target)
	s.Require().NoError(err)
	s.Contains(conflicts, source)
}

func (s *ControllerSuite) TestConflictsOutOfRangeFails() {
	session := s.newGame()

	_, err := s.controller.Conflicts(s.ctx, session.ID, model.Position{Row: 0, Col: 9})
	s.ErrorIs(err, model.ErrOutOfRange)
}

// CheckSolution tests

func (s *ControllerSuite) TestCheckSolutionReportsIncorrectCells() {
	session := s.newGame()
	pos := model.Position{Row: 0, Col: 0}
	wrong := session.Solution.Get(pos)%9 + 1

	_, err := s.controller.SubmitValue(s.ctx, session.ID, pos, wrong)
	s.Require().NoError(err)

	result, err := s.controller.CheckSolution(s.ctx, session.ID)
	s.Require().NoError(err)

	s.False(result.Solved)
	s.Contains(result.IncorrectCells, pos)
}

func (s *ControllerSuite) TestCheckSolutionSolvedGame() {
	session := s.newGame()
	s.fillBoard(session)

	result, err := s.controller.CheckSolution(s.ctx, session.ID)
	s.Require().NoError(err)

	s.True(result.Solved)
	s.Empty(result.IncorrectCells)
}

// AbandonGame tests

func (s *ControllerSuite) TestAbandonGame() {
	session := s.newGame()

	err := s.controller.AbandonGame(s.ctx, session.ID)
	s.Require().NoError(err)

	updated, _ := s.controller.GetGame(s.ctx, session.ID)
	s.Equal(model.GameStateAbandoned, updated.State)
}

func (s *ControllerSuite) TestSubmitToAbandonedGameFails() {
	session := s.newGame()
	_ = s.controller.AbandonGame(s.ctx, session.ID)

	_, err := s.controller.SubmitValue(s.ctx, session.ID, model.Position{Row: 0, Col: 0}, 1)
	s.ErrorIs(err, model.ErrGameAbandoned)
}

func (s *ControllerSuite) TestAbandonCompletedGameIsNoop() {
	session := s.newGame()
	s.fillBoard(session)

	err := s.controller.AbandonGame(s.ctx, session.ID)
	s.Require().NoError(err)

	updated, _ := s.controller.GetGame(s.ctx, session.ID)
	s.Equal(model.GameStateCompleted, updated.State)
}

// Elapsed time tests

func (s *ControllerSuite) TestElapsedTimeAccruesBetweenMoves() {
	session := s.newGame()
	pos := model.Position{Row: 0, Col: 0}

	s.clock.Advance(30 * time.Second)
	_, err := s.controller.SubmitValue(s.ctx, session.ID, pos, session.Solution.Get(pos))
	s.Require().NoError(err)

	s.clock.Advance(15 * time.Second)
	_, err = s.controller.SubmitValue(s.ctx, session.ID, model.Position{Row: 0, Col: 1}, session.Solution.Get(model.Position{Row: 0, Col: 1}))
	s.Require().NoError(err)

	updated, _ := s.controller.GetGame(s.ctx, session.ID)
	s.Equal(45, updated.ElapsedSeconds)
}

func (s *ControllerSuite) TestResumeSkipsIdleTime() {
	session := s.newGame()
	pos := model.Position{Row: 0, Col: 0}

	s.clock.Advance(10 * time.Second)
	_, err := s.controller.SubmitValue(s.ctx, session.ID, pos, session.Solution.Get(pos))
	s.Require().NoError(err)

	// A long gap while the game sits saved must not count as play time
	s.clock.Advance(2 * time.Hour)
	_, err = s.controller.ResumeGame(s.ctx, session.ID)
	s.Require().NoError(err)

	s.clock.Advance(5 * time.Second)
	next := model.Position{Row: 0, Col: 1}
	_, err = s.controller.SubmitValue(s.ctx, session.ID, next, session.Solution.Get(next))
	s.Require().NoError(err)

	updated, _ := s.controller.GetGame(s.ctx, session.ID)
	s.Equal(15, updated.ElapsedSeconds)
}

func (s *ControllerSuite) TestResumeCompletedGameFails() {
	session := s.newGame()
	s.fillBoard(session)

	_, err := s.controller.ResumeGame(s.ctx, session.ID)
	s.ErrorIs(err, model.ErrGameComplete)
}

// fillBoard submits the solution value into every empty cell and
// returns the final move's result
func (s *ControllerSuite) fillBoard(session *model.Session) *SubmitResult {
	var result *SubmitResult
	for row := 0; row < model.GridSize; row++ {
		for col := 0; col < model.GridSize; col++ {
			pos := model.Position{Row: row, Col: col}
			if !session.Board.IsEmpty(pos) {
				continue
			}
			var err error
			result, err = s.controller.SubmitValue(s.ctx, session.ID, pos, session.Solution.Get(pos))
			s.Require().NoError(err)
		}
	}
	return result
}

// lastEmptyCell returns the final empty cell in row-major order
func (s *ControllerSuite) lastEmptyCell(session *model.Session) model.Position {
	var last model.Position
	for row := 0; row < model.GridSize; row++ {
		for col := 0; col < model.GridSize; col++ {
			pos := model.Position{Row: row, Col: col}
			if session.Board.IsEmpty(pos) {
				last = pos
			}
		}
	}
	return last
}
