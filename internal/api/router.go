package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sudokumaster/sudokumaster/internal/api/handler"
	"github.com/sudokumaster/sudokumaster/internal/api/middleware"
	"github.com/sudokumaster/sudokumaster/internal/services/game"
	"github.com/sudokumaster/sudokumaster/internal/services/scoring"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
	ScoringService *scoring.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.GameController)
	scoreHandler := handler.NewScoreHandler(cfg.GameController, cfg.ScoringService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Game routes
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", gameHandler.Abandon).Methods(http.MethodDelete)
	api.HandleFunc("/games/{id}/resume", gameHandler.Resume).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/moves", gameHandler.Move).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/hints", gameHandler.Hint).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/conflicts", gameHandler.Conflicts).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}/check", gameHandler.Check).Methods(http.MethodPost)

	// Score routes
	api.HandleFunc("/games/{id}/score", scoreHandler.Record).Methods(http.MethodPost)
	api.HandleFunc("/scores", scoreHandler.List).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
