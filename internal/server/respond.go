package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/medparse/bloodlab/internal/common"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// respondError maps pipeline errors onto HTTP statuses. Client-side problems
// come back as 4xx, upstream extraction failures as 502/504.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, common.ErrInvalidInput),
		errors.Is(err, common.ErrUnsupportedCancerType):
		status = http.StatusBadRequest
	case errors.Is(err, common.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, common.ErrUnsupportedFile):
		status = http.StatusUnsupportedMediaType
	case errors.Is(err, common.ErrNotBloodTest),
		errors.Is(err, common.ErrZeroLymphocytes):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, common.ErrExtractionParse):
		status = http.StatusBadGateway
	case errors.Is(err, common.ErrExtractionTimeout):
		status = http.StatusGatewayTimeout
	}
	if status == http.StatusInternalServerError {
		slog.Error("internal error", "error", err)
		respondJSON(w, status, errorBody{Error: "internal error"})
		return
	}
	respondJSON(w, status, errorBody{Error: err.Error()})
}
