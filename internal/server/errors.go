package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/career-recommender/internal/history"
	"github.com/jonathan/career-recommender/internal/ranking"
)

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid username or password"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrHistoryDisabled is returned by history endpoints when no store is configured
var ErrHistoryDisabled = errors.New("history is disabled")

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var credErr *ErrInvalidCredentials
	var validationErr *ErrValidation

	switch {
	case errors.As(err, &credErr):
		return http.StatusUnauthorized
	case errors.As(err, &validationErr), errors.Is(err, ranking.ErrInvalidTopK):
		return http.StatusBadRequest
	case errors.Is(err, history.ErrNotFound), errors.Is(err, ErrHistoryDisabled):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
