package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sudokumaster/sudokumaster/internal/api/request"
	"github.com/sudokumaster/sudokumaster/internal/api/response"
	"github.com/sudokumaster/sudokumaster/internal/model"
	"github.com/sudokumaster/sudokumaster/internal/services/game"
	"github.com/sudokumaster/sudokumaster/internal/services/scoring"
)

// ScoreHandler handles score-related endpoints
type ScoreHandler struct {
	gameController *game.Controller
	scoringService *scoring.Service
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(gameController *game.Controller, scoringService *scoring.Service) *ScoreHandler {
	return &ScoreHandler{
		gameController: gameController,
		scoringService: scoringService,
	}
}

// Record handles POST /api/v1/games/{id}/score
func (h *ScoreHandler) Record(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	// An empty body records the score anonymously
	var req request.RecordScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	session, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	score, err := h.scoringService.Record(r.Context(), session, req.PlayerName)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.ScoreFromModel(score))
}

// List handles GET /api/v1/scores
func (h *ScoreHandler) List(w http.ResponseWriter, r *http.Request) {
	scores, err := h.scoringService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ScoreListFromModel(scores))
}
