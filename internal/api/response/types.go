package response

import (
	"time"

	"github.com/sudokumaster/sudokumaster/internal/model"
	"github.com/sudokumaster/sudokumaster/internal/services/game"
)

// Cell represents a single board cell in API responses
type Cell struct {
	Value  int  `json:"value"`
	Given  bool `json:"given"`
	Hinted bool `json:"hinted,omitempty"`
}

// Game represents a game session in API responses. The solution grid is
// deliberately absent; correctness is only observable through moves,
// hints and the check endpoint.
type Game struct {
	ID             string     `json:"id"`
	State          string     `json:"state"`
	Difficulty     string     `json:"difficulty"`
	Board          [][]Cell   `json:"board"`
	EmptyCells     int        `json:"empty_cells"`
	FilledCells    int        `json:"filled_cells"`
	Mistakes       int        `json:"mistakes"`
	MaxMistakes    int        `json:"max_mistakes"`
	HintsUsed      int        `json:"hints_used"`
	ElapsedSeconds int        `json:"elapsed_seconds"`
	StartedAt      time.Time  `json:"started_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// GameFromModel converts a session to a response Game
func GameFromModel(s *model.Session) Game {
	board := make([][]Cell, model.GridSize)
	for row := 0; row < model.GridSize; row++ {
		board[row] = make([]Cell, model.GridSize)
		for col := 0; col < model.GridSize; col++ {
			pos := model.Position{Row: row, Col: col}
			board[row][col] = Cell{
				Value:  s.Board.Value(pos),
				Given:  s.Board.IsGiven(pos),
				Hinted: s.Board.IsHinted(pos),
			}
		}
	}

	return Game{
		ID:             string(s.ID),
		State:          string(s.State),
		Difficulty:     string(s.Difficulty),
		Board:          board,
		EmptyCells:     s.EmptyCellTarget,
		FilledCells:    s.Board.FilledCount(),
		Mistakes:       s.Mistakes,
		MaxMistakes:    model.MaxMistakes,
		HintsUsed:      s.HintsUsed,
		ElapsedSeconds: s.ElapsedSeconds,
		StartedAt:      s.StartedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// Position represents a cell coordinate in API responses
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PositionsFromModel converts model positions
func PositionsFromModel(positions []model.Position) []Position {
	result := make([]Position, 0, len(positions))
	for _, p := range positions {
		result = append(result, Position{Row: p.Row, Col: p.Col})
	}
	return result
}

// MoveResult is the response for a submitted value
type MoveResult struct {
	Correct  bool `json:"correct"`
	Complete bool `json:"complete"`
	Mistakes int  `json:"mistakes"`
	Game     Game `json:"game"`
}

// MoveResultFromModel builds a MoveResult
func MoveResultFromModel(r *game.SubmitResult, s *model.Session) MoveResult {
	return MoveResult{
		Correct:  r.Correct,
		Complete: r.Complete,
		Mistakes: r.Mistakes,
		Game:     GameFromModel(s),
	}
}

// HintResult is the response for a revealed hint
type HintResult struct {
	Row       int  `json:"row"`
	Col       int  `json:"col"`
	Value     int  `json:"value"`
	HintsUsed int  `json:"hints_used"`
	Complete  bool `json:"complete"`
	Game      Game `json:"game"`
}

// HintResultFromModel builds a HintResult
func HintResultFromModel(r *game.HintResult, s *model.Session) HintResult {
	return HintResult{
		Row:       r.Pos.Row,
		Col:       r.Pos.Col,
		Value:     r.Value,
		HintsUsed: r.HintsUsed,
		Complete:  r.Complete,
		Game:      GameFromModel(s),
	}
}

// CheckResult is the response for a solution check
type CheckResult struct {
	Solved         bool       `json:"solved"`
	IncorrectCells []Position `json:"incorrect_cells"`
}

// ConflictsResult is the response for a conflict query
type ConflictsResult struct {
	Conflicts []Position `json:"conflicts"`
}

// Score represents a recorded score in API responses
type Score struct {
	ID          string    `json:"id"`
	PlayerName  string    `json:"player_name"`
	TimeSeconds int       `json:"time_seconds"`
	Mistakes    int       `json:"mistakes"`
	HintsUsed   int       `json:"hints_used"`
	FilledCells int       `json:"filled_cells"`
	EmptyCells  int       `json:"empty_cells"`
	Date        time.Time `json:"date"`
}

// ScoreFromModel converts a model.Score
func ScoreFromModel(s *model.Score) Score {
	return Score{
		ID:          string(s.ID),
		PlayerName:  s.PlayerName,
		TimeSeconds: s.TimeSeconds,
		Mistakes:    s.Mistakes,
		HintsUsed:   s.HintsUsed,
		FilledCells: s.FilledCells,
		EmptyCells:  s.EmptyCells,
		Date:        s.Date,
	}
}

// ScoreList is the response for a score listing
type ScoreList struct {
	Scores []Score `json:"scores"`
}

// ScoreListFromModel converts a slice of model scores
func ScoreListFromModel(scores []*model.Score) ScoreList {
	result := ScoreList{Scores: make([]Score, 0, len(scores))}
	for _, s := range scores {
		result.Scores = append(result.Scores, ScoreFromModel(s))
	}
	return result
}
