// Package apierr maps service errors to HTTP status codes and the flat
// {"error": "..."} JSON body the wheel frontend expects.
package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ostapdev/teamwheel/internal/model"
)

// ErrorResponse is the JSON body for every API error
type ErrorResponse struct {
	Error string `json:"error"`
}

// httpError combines an HTTP status code with a message
type httpError struct {
	status  int
	message string
}

func (e *httpError) Error() string {
	return e.message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.message})
}

func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrNotAuthenticated):
		return &httpError{http.StatusUnauthorized, "Not logged in"}
	case errors.Is(err, model.ErrAlreadySpunToday):
		return &httpError{http.StatusForbidden, "Ви вже крутили сьогодні! Спробуйте взавтра."}
	case errors.Is(err, model.ErrForbidden):
		return &httpError{http.StatusForbidden, "Доступ запрещен"}
	case errors.Is(err, model.ErrValidation):
		return &httpError{http.StatusBadRequest, err.Error()}
	case errors.Is(err, model.ErrAccountNotFound):
		return &httpError{http.StatusNotFound, "Пользователь не найден"}
	case errors.Is(err, model.ErrTeamNotFound):
		return &httpError{http.StatusNotFound, "Команда не найдена"}
	case errors.Is(err, model.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, "Неверный пароль"}
	default:
		return &httpError{http.StatusInternalServerError, "Internal server error"}
	}
}

// NewInvalidRequestError creates a 400 error with the given message
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, message}
}

// NewForbiddenError creates a 403 error with the given message
func NewForbiddenError(message string) error {
	return &httpError{http.StatusForbidden, message}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, "Internal server error"}
}
