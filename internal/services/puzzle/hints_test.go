package puzzle

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/sudokumaster/sudokumaster/internal/model"
)

type HintsSuite struct {
	suite.Suite
	solution model.Grid
	board    *model.Board
}

func TestHintsSuite(t *testing.T) {
	suite.Run(t, new(HintsSuite))
}

func (s *HintsSuite) SetupTest() {
	s.solution = testSolution()
	s.board = model.NewBoardFromSolution(s.solution)
}

// NextHint tests

func (s *HintsSuite) TestNextHintPicksFirstEmptyCellRowMajor() {
	s.board.Clear(model.Position{Row: 3, Col: 7})
	s.board.Clear(model.Position{Row: 1, Col: 2})
	s.board.Clear(model.Position{Row: 1, Col: 5})

	hint, err := NextHint(s.board, s.solution)
	s.Require().NoError(err)

	s.Equal(model.Position{Row: 1, Col: 2}, hint.Pos)
	s.Equal(s.solution.Get(hint.Pos), hint.Value)
}

func (s *HintsSuite) TestNextHintFullBoardFails() {
	_, err := NextHint(s.board, s.solution)
	s.ErrorIs(err, model.ErrNoEmptyCells)
}

func (s *HintsSuite) TestNextHintDoesNotMutateBoard() {
	pos := model.Position{Row: 0, Col: 4}
	s.board.Clear(pos)

	_, err := NextHint(s.board, s.solution)
	s.Require().NoError(err)

	s.True(s.board.IsEmpty(pos))
}

// HintAt tests

func (s *HintsSuite) TestHintAtEmptyCell() {
	pos := model.Position{Row: 5, Col: 5}
	s.board.Clear(pos)

	hint, err := HintAt(s.board, s.solution, pos)
	s.Require().NoError(err)

	s.Equal(pos, hint.Pos)
	s.Equal(s.solution.Get(pos), hint.Value)
}

func (s *HintsSuite) TestHintAtOutOfRangeFails() {
	_, err := HintAt(s.board, s.solution, model.Position{Row: -1, Col: 0})
	s.ErrorIs(err, model.ErrOutOfRange)

	_, err = HintAt(s.board, s.solution, model.Position{Row: 0, Col: 9})
	s.ErrorIs(err, model.ErrOutOfRange)
}

func (s *HintsSuite) TestHintAtGivenCellFails() {
	_, err := HintAt(s.board, s.solution, model.Position{Row: 0, Col: 0})
	s.ErrorIs(err, model.ErrImmutableCell)
}

func (s *HintsSuite) TestHintAtFilledCellFails() {
	pos := model.Position{Row: 6, Col: 2}
	s.board.Clear(pos)
	s.board.Cells.Set(pos, 1)

	_, err := HintAt(s.board, s.solution, pos)
	s.ErrorIs(err, model.ErrNoEmptyCells)
}
