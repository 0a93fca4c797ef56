package game

import (
	"context"
	"log/slog"

	"github.com/sudokumaster/sudokumaster/internal/dependencies/clock"
	"github.com/sudokumaster/sudokumaster/internal/dependencies/random"
	"github.com/sudokumaster/sudokumaster/internal/model"
	"github.com/sudokumaster/sudokumaster/internal/services/puzzle"
	"github.com/sudokumaster/sudokumaster/internal/storage"
)

const gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Controller manages game sessions: creation, moves, hints and the
// playing -> completed/abandoned state machine. Every mutation loads the
// session from storage, applies the change and saves it back; failed
// calls leave the stored session untouched.
type Controller struct {
	storage      storage.Storage
	engine       *puzzle.Engine
	carveTargets model.CarveTargets
	clock        clock.Clock
	random       random.Random
	logger       *slog.Logger
}

// NewController creates a new game controller
func NewController(
	storage storage.Storage,
	engine *puzzle.Engine,
	carveTargets model.CarveTargets,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:      storage,
		engine:       engine,
		carveTargets: carveTargets,
		clock:        clock,
		random:       random,
		logger:       logger,
	}
}

// SubmitResult reports the outcome of a submitted value
type SubmitResult struct {
	Correct  bool
	Complete bool
	Mistakes int
}

// HintResult reports an applied hint
type HintResult struct {
	Pos       model.Position
	Value     int
	HintsUsed int
	Complete  bool
}

// CheckResult reports a full-board solution check
type CheckResult struct {
	Solved         bool
	IncorrectCells []model.Position
}

// CreateGame generates a solution, carves a puzzle at the given
// difficulty and persists the new session. emptyCells overrides the
// difficulty's carve target when positive (the desktop original exposed
// this as a slider); it is clamped to the minimum-givens floor.
func (c *Controller) CreateGame(ctx context.Context, difficulty model.Difficulty, emptyCells int) (*model.Session, error) {
	if !difficulty.Valid() {
		return nil, model.ErrInvalidDifficulty
	}

	target := c.carveTargets[difficulty]
	if emptyCells > 0 {
		target = emptyCells
	}
	if target > model.MaxEmptyCells {
		target = model.MaxEmptyCells
	}

	solution, err := c.engine.GenerateSolution()
	if err != nil {
		return nil, err
	}
	board := c.engine.Carve(solution, target)

	now := c.clock.Now()
	session := &model.Session{
		ID:              model.GameID(c.random.String(12, gameIDAlphabet)),
		State:           model.GameStatePlaying,
		Difficulty:      difficulty,
		Solution:        solution,
		Board:           board,
		EmptyCellTarget: target,
		StartedAt:       now,
		UpdatedAt:       now,
	}

	if err := c.storage.SaveGame(ctx, session); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(session.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(session.ID)),
		slog.String("difficulty", string(difficulty)),
		slog.Int("empty_cells", target),
	)

	return session, nil
}

// GetGame retrieves a session by ID
func (c *Controller) GetGame(ctx context.Context, id model.GameID) (*model.Session, error) {
	return c.storage.GetGame(ctx, id)
}

// SubmitValue writes a value into a non-given cell. Value 0 clears the
// cell and never counts as a mistake. Correct means the value equals the
// solution at that coordinate; an incorrect non-zero value increments
// the mistake counter. Completing the board transitions the session to
// the completed state.
func (c *Controller) SubmitValue(ctx context.Context, id model.GameID, pos model.Position, value int) (*SubmitResult, error) {
	session, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.validatePlaying(session); err != nil {
		return nil, err
	}

	if !pos.InRange() {
		return nil, model.ErrOutOfRange
	}
	if value < 0 || value > model.GridSize {
		return nil, model.ErrInvalidValue
	}
	if session.Board.IsGiven(pos) {
		return nil, model.ErrImmutableCell
	}

	session.Board.Cells.Set(pos, value)
	// A manual write replaces any earlier hint reveal at this cell
	session.Board.Hinted[pos.Row][pos.Col] = false

	correct := value == 0 || value == session.Solution.Get(pos)
	if !correct {
		session.Mistakes++
	}

	result := &SubmitResult{
		Correct:  correct,
		Mistakes: session.Mistakes,
	}

	c.touch(session)
	if puzzle.IsComplete(session.Board, session.Solution) {
		session.State = model.GameStateCompleted
		result.Complete = true
		c.logger.Info("game completed",
			slog.String("game_id", string(session.ID)),
			slog.Int("mistakes", session.Mistakes),
			slog.Int("hints_used", session.HintsUsed),
			slog.Int("elapsed_seconds", session.ElapsedSeconds),
		)
	}

	if err := c.storage.SaveGame(ctx, session); err != nil {
		return nil, err
	}
	return result, nil
}

// RevealHint fills in an empty non-given cell with its solution value,
// marks it hint-revealed and increments the hints-used counter. With no
// position given, the first empty cell in row-major order is chosen.
// A hint filling the last cell completes the game.
func (c *Controller) RevealHint(ctx context.Context, id model.GameID, pos *model.Position) (*HintResult, error) {
	session, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.validatePlaying(session); err != nil {
		return nil, err
	}

	var hint puzzle.Hint
	if pos != nil {
		hint, err = puzzle.HintAt(session.Board, session.Solution, *pos)
	} else {
		hint, err = puzzle.NextHint(session.Board, session.Solution)
	}
	if err != nil {
		return nil, err
	}

	session.Board.Cells.Set(hint.Pos, hint.Value)
	session.Board.Hinted[hint.Pos.Row][hint.Pos.Col] = true
	session.HintsUsed++

	result := &HintResult{
		Pos:       hint.Pos,
		Value:     hint.Value,
		HintsUsed: session.HintsUsed,
	}

	c.touch(session)
	if puzzle.IsComplete(session.Board, session.Solution) {
		session.State = model.GameStateCompleted
		result.Complete = true
	}

	if err := c.storage.SaveGame(ctx, session); err != nil {
		return nil, err
	}
	return result, nil
}

// Conflicts returns the cells sharing the value at pos within its row,
// column or box. Informational; no state is mutated.
func (c *Controller) Conflicts(ctx context.Context, id model.GameID, pos model.Position) ([]model.Position, error) {
	session, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if !pos.InRange() {
		return nil, model.ErrOutOfRange
	}
	return puzzle.FindConflicts(session.Board, pos), nil
}

// CheckSolution compares the board against the solution and returns the
// incorrect non-given cells. Informational; no state is mutated.
func (c *Controller) CheckSolution(ctx context.Context, id model.GameID) (*CheckResult, error) {
	session, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	return &CheckResult{
		Solved:         puzzle.IsComplete(session.Board, session.Solution),
		IncorrectCells: puzzle.IncorrectCells(session.Board, session.Solution),
	}, nil
}

// AbandonGame ends a session prematurely. Finished sessions are left as-is.
func (c *Controller) AbandonGame(ctx context.Context, id model.GameID) error {
	session, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return err
	}
	if session.IsFinished() {
		return nil
	}

	session.State = model.GameStateAbandoned
	c.touch(session)

	c.logger.Info("game abandoned",
		slog.String("game_id", string(id)),
	)

	return c.storage.SaveGame(ctx, session)
}

// validatePlaying rejects moves against finished sessions
func (c *Controller) validatePlaying(session *model.Session) error {
	switch session.State {
	case model.GameStateCompleted:
		return model.ErrGameComplete
	case model.GameStateAbandoned:
		return model.ErrGameAbandoned
	}
	return nil
}

// touch accrues elapsed play time since the last activity and updates
// the modification timestamp. ResumeGame resets the activity marker so a
// reloaded game does not absorb the idle gap.
func (c *Controller) touch(session *model.Session) {
	now := c.clock.Now()
	session.ElapsedSeconds += int(now.Sub(session.UpdatedAt).Seconds())
	session.UpdatedAt = now
}

// ResumeGame marks a loaded session as active again without counting the
// time it spent saved. Counters and the board are untouched.
func (c *Controller) ResumeGame(ctx context.Context, id model.GameID) (*model.Session, error) {
	session, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.validatePlaying(session); err != nil {
		return nil, err
	}

	session.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, difficulty model.Difficulty, emptyCells int) (*model.Session, error)
	GetGame(ctx context.Context, id model.GameID) (*model.Session, error)
	SubmitValue(ctx context.Context, id model.GameID, pos model.Position, value int) (*SubmitResult, error)
	RevealHint(ctx context.Context, id model.GameID, pos *model.Position) (*HintResult, error)
	Conflicts(ctx context.Context, id model.GameID, pos model.Position) ([]model.Position, error)
	CheckSolution(ctx context.Context, id model.GameID) (*CheckResult, error)
	AbandonGame(ctx context.Context, id model.GameID) error
	ResumeGame(ctx context.Context, id model.GameID) (*model.Session, error)
}

var _ ControllerInterface = (*Controller)(nil)
