package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Game:
		o.printGame(v)
	case MoveResult:
		o.printMoveResult(v)
	case HintResult:
		o.printHintResult(v)
	case CheckResult:
		o.printCheckResult(v)
	case ConflictsResult:
		o.printConflictsResult(v)
	case ScoreList:
		o.printScoreList(v)
	case Score:
		o.printScore(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Cell response type (matches API)
type Cell struct {
	Value  int  `json:"value"`
	Given  bool `json:"given"`
	Hinted bool `json:"hinted,omitempty"`
}

// Game response type
type Game struct {
	ID             string    `json:"id"`
	State          string    `json:"state"`
	Difficulty     string    `json:"difficulty"`
	Board          [][]Cell  `json:"board"`
	EmptyCells     int       `json:"empty_cells"`
	FilledCells    int       `json:"filled_cells"`
	Mistakes       int       `json:"mistakes"`
	MaxMistakes    int       `json:"max_mistakes"`
	HintsUsed      int       `json:"hints_used"`
	ElapsedSeconds int       `json:"elapsed_seconds"`
	StartedAt      time.Time `json:"started_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Position response type
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MoveResult response type
type MoveResult struct {
	Correct  bool `json:"correct"`
	Complete bool `json:"complete"`
	Mistakes int  `json:"mistakes"`
	Game     Game `json:"game"`
}

// HintResult response type
type HintResult struct {
	Row       int  `json:"row"`
	Col       int  `json:"col"`
	Value     int  `json:"value"`
	HintsUsed int  `json:"hints_used"`
	Complete  bool `json:"complete"`
	Game      Game `json:"game"`
}

// CheckResult response type
type CheckResult struct {
	Solved         bool       `json:"solved"`
	IncorrectCells []Position `json:"incorrect_cells"`
}

// ConflictsResult response type
type ConflictsResult struct {
	Conflicts []Position `json:"conflicts"`
}

// Score response type
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

// ScoreList response type
type ScoreList struct {
	Scores []Score `json:"scores"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("State: %s\n", g.State)
	fmt.Printf("Difficulty: %s\n", g.Difficulty)
	fmt.Printf("Mistakes: %d/%d\n", g.Mistakes, g.MaxMistakes)
	fmt.Printf("Hints Used: %d\n", g.HintsUsed)
	fmt.Printf("Time: %s\n", formatDuration(g.ElapsedSeconds))
	fmt.Println()
	o.printBoard(g.Board)
}

func (o *Output) printBoard(board [][]Cell) {
	if len(board) == 0 {
		return
	}

	// Print column headers
	fmt.Print("    ")
	for col := 0; col < len(board[0]); col++ {
		if col > 0 && col%3 == 0 {
			fmt.Print("  ")
		}
		fmt.Printf(" %d ", col)
	}
	fmt.Println()

	for row := 0; row < len(board); row++ {
		if row%3 == 0 {
			fmt.Println("   +---------+---------+---------+")
		}
		fmt.Printf(" %d |", row)
		for col := 0; col < len(board[row]); col++ {
			if col > 0 && col%3 == 0 {
				fmt.Print("|")
			}
			cell := board[row][col]
			if cell.Value == 0 {
				fmt.Print(" . ")
			} else {
				fmt.Printf(" %d ", cell.Value)
			}
		}
		fmt.Println("|")
	}
	fmt.Println("   +---------+---------+---------+")
}

func (o *Output) printMoveResult(m MoveResult) {
	if m.Correct {
		fmt.Println("Correct!")
	} else {
		fmt.Printf("Incorrect (%d/%d mistakes)\n", m.Mistakes, m.Game.MaxMistakes)
	}

	if m.Complete {
		fmt.Println("Puzzle complete!")
	}

	fmt.Println()
	o.printBoard(m.Game.Board)
}

func (o *Output) printHintResult(h HintResult) {
	fmt.Printf("Hint: cell (%d, %d) is %d\n", h.Row, h.Col, h.Value)
	fmt.Printf("Hints Used: %d\n", h.HintsUsed)

	if h.Complete {
		fmt.Println("Puzzle complete!")
	}

	fmt.Println()
	o.printBoard(h.Game.Board)
}

func (o *Output) printCheckResult(c CheckResult) {
	if c.Solved {
		fmt.Println("Solved!")
		return
	}

	if len(c.IncorrectCells) == 0 {
		fmt.Println("No mistakes so far, keep going")
		return
	}

	fmt.Printf("Incorrect cells (%d):\n", len(c.IncorrectCells))
	for _, p := range c.IncorrectCells {
		fmt.Printf("  - (%d, %d)\n", p.Row, p.Col)
	}
}

func (o *Output) printConflictsResult(c ConflictsResult) {
	if len(c.Conflicts) == 0 {
		fmt.Println("No conflicts")
		return
	}

	fmt.Printf("Conflicts (%d):\n", len(c.Conflicts))
	for _, p := range c.Conflicts {
		fmt.Printf("  - (%d, %d)\n", p.Row, p.Col)
	}
}

func (o *Output) printScoreList(l ScoreList) {
	if len(l.Scores) == 0 {
		fmt.Println("No scores recorded")
		return
	}

	fmt.Printf("Scores (%d):\n", len(l.Scores))
	for i, s := range l.Scores {
		fmt.Printf("  %d. %s - %s (%d mistakes, %d hints) on %s\n",
			i+1, s.PlayerName, formatDuration(s.TimeSeconds),
			s.Mistakes, s.HintsUsed, s.Date.Format("2006-01-02"))
	}
}

func (o *Output) printScore(s Score) {
	fmt.Printf("Score recorded for %s\n", s.PlayerName)
	fmt.Printf("Time: %s\n", formatDuration(s.TimeSeconds))
	fmt.Printf("Mistakes: %d\n", s.Mistakes)
	fmt.Printf("Hints Used: %d\n", s.HintsUsed)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}

func formatDuration(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
