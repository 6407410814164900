package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/khuynh22/financial-tracker/internal/models"
)

// badRequestError marks request-shape problems detected in the handler layer
type badRequestError struct{ msg string }

func (e *badRequestError) Error() string { return e.msg }

func errBadRequest(msg string) error { return &badRequestError{msg: msg} }

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto HTTP status codes. Anything unmapped is
// an internal error and its detail stays out of the response.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *models.ValidationError
	var badReq *badRequestError
	switch {
	case errors.Is(err, models.ErrInvalidDate), errors.As(err, &validationErr), errors.As(err, &badReq):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
