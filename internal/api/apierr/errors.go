package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sudokumaster/sudokumaster/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeOutOfRange        = "OUT_OF_RANGE"
	CodeImmutableCell     = "IMMUTABLE_CELL"
	CodeNoEmptyCells      = "NO_EMPTY_CELLS"
	CodeInvalidValue      = "INVALID_VALUE"
	CodeInvalidDifficulty = "INVALID_DIFFICULTY"
	CodeGenerationFailed  = "GENERATION_FAILED"
	CodeGameNotFound      = "GAME_NOT_FOUND"
	CodeGameComplete      = "GAME_COMPLETE"
	CodeGameAbandoned     = "GAME_ABANDONED"
	CodeGameNotComplete   = "GAME_NOT_COMPLETE"
	CodeInternalError     = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrOutOfRange):
		return &httpError{http.StatusBadRequest, APIError{CodeOutOfRange, "Row and column must be between 0 and 8"}}
	case errors.Is(err, model.ErrImmutableCell):
		return &httpError{http.StatusConflict, APIError{CodeImmutableCell, "Cell is a given and cannot be changed"}}
	case errors.Is(err, model.ErrNoEmptyCells):
		return &httpError{http.StatusConflict, APIError{CodeNoEmptyCells, "No empty cells left"}}
	case errors.Is(err, model.ErrInvalidValue):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidValue, "Value must be between 0 and 9"}}
	case errors.Is(err, model.ErrInvalidDifficulty):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDifficulty, "Difficulty must be easy, medium, hard or expert"}}
	case errors.Is(err, model.ErrGenerationFailed):
		return &httpError{http.StatusInternalServerError, APIError{CodeGenerationFailed, "Puzzle generation failed, try again"}}
	case errors.Is(err, model.ErrGameComplete):
		return &httpError{http.StatusConflict, APIError{CodeGameComplete, "Game is already complete"}}
	case errors.Is(err, model.ErrGameAbandoned):
		return &httpError{http.StatusConflict, APIError{CodeGameAbandoned, "Game has been abandoned"}}
	case errors.Is(err, model.ErrGameNotComplete):
		return &httpError{http.StatusConflict, APIError{CodeGameNotComplete, "Game is not complete"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
