package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sudokumaster/sudokumaster/internal/api/request"
	"github.com/sudokumaster/sudokumaster/internal/api/response"
	"github.com/sudokumaster/sudokumaster/internal/model"
	"github.com/sudokumaster/sudokumaster/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController *game.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller) *GameHandler {
	return &GameHandler{
		gameController: gameController,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	// An empty body starts a default medium game
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	difficulty := model.Difficulty(req.Difficulty)
	if req.Difficulty == "" {
		difficulty = model.DifficultyMedium
	}

	session, err := h.gameController.CreateGame(r.Context(), difficulty, req.EmptyCells)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(session))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	session, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(session))
}

// Resume handles POST /api/v1/games/{id}/resume
func (h *GameHandler) Resume(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	session, err := h.gameController.ResumeGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(session))
}

// Move handles POST /api/v1/games/{id}/moves
func (h *GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	var req request.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	pos := model.Position{Row: req.Row, Col: req.Col}
	result, err := h.gameController.SubmitValue(r.Context(), id, pos, req.Value)
	if err != nil {
		WriteError(w, err)
		return
	}

	session, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MoveResultFromModel(result, session))
}

// Hint handles POST /api/v1/games/{id}/hints
func (h *GameHandler) Hint(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	// An empty body asks for the next hint in row-major order
	var req request.HintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	var pos *model.Position
	if req.Row != nil || req.Col != nil {
		if req.Row == nil || req.Col == nil {
			WriteError(w, NewInvalidRequestError("row and col must be supplied together"))
			return
		}
		pos = &model.Position{Row: *req.Row, Col: *req.Col}
	}

	result, err := h.gameController.RevealHint(r.Context(), id, pos)
	if err != nil {
		WriteError(w, err)
		return
	}

	session, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.HintResultFromModel(result, session))
}

// Conflicts handles GET /api/v1/games/{id}/conflicts?row=R&col=C
func (h *GameHandler) Conflicts(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	row, err := strconv.Atoi(r.URL.Query().Get("row"))
	if err != nil {
		WriteError(w, NewInvalidRequestError("row must be an integer"))
		return
	}
	col, err := strconv.Atoi(r.URL.Query().Get("col"))
	if err != nil {
		WriteError(w, NewInvalidRequestError("col must be an integer"))
		return
	}

	conflicts, err := h.gameController.Conflicts(r.Context(), id, model.Position{Row: row, Col: col})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ConflictsResult{
		Conflicts: response.PositionsFromModel(conflicts),
	})
}

// Check handles POST /api/v1/games/{id}/check
func (h *GameHandler) Check(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	result, err := h.gameController.CheckSolution(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CheckResult{
		Solved:         result.Solved,
		IncorrectCells: response.PositionsFromModel(result.IncorrectCells),
	})
}

// Abandon handles DELETE /api/v1/games/{id}
func (h *GameHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	if err := h.gameController.AbandonGame(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
