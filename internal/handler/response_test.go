package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khuynh22/financial-tracker/internal/models"
)

func TestWriteErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid date", models.ErrInvalidDate, http.StatusBadRequest},
		{"wrapped invalid date", fmt.Errorf("record snapshot: %w", models.ErrInvalidDate), http.StatusBadRequest},
		{"validation", &models.ValidationError{Field: "amount_due", Reason: "must be a number"}, http.StatusBadRequest},
		{"bad request", errBadRequest("invalid request body"), http.StatusBadRequest},
		{"not found", models.ErrNotFound, http.StatusNotFound},
		{"credentials", models.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unknown", fmt.Errorf("db exploded"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tt.err)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestWriteErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, fmt.Errorf("pq: connection refused"))
	assert.NotContains(t, rec.Body.String(), "pq:")
}
