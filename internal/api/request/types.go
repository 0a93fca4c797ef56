package request

// CreateGameRequest is the request body for starting a new game.
// EmptyCells overrides the difficulty's carve target when positive.
type CreateGameRequest struct {
	Difficulty string `json:"difficulty"`
	EmptyCells int    `json:"empty_cells,omitempty"`
}

// MoveRequest is the request body for submitting a value. Value 0 clears
// the cell.
type MoveRequest struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Value int `json:"value"`
}

// HintRequest is the request body for revealing a hint. Without a target
// the first empty cell in row-major order is chosen.
type HintRequest struct {
	Row *int `json:"row,omitempty"`
	Col *int `json:"col,omitempty"`
}

// RecordScoreRequest is the request body for recording a score
type RecordScoreRequest struct {
	PlayerName string `json:"player_name"`
}
