package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"equiprent-backend/internal/logger"
	"equiprent-backend/internal/repository"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps service errors onto HTTP status codes. Missing rows
// become 404; everything else defaults to the given status.
func writeError(w http.ResponseWriter, status int, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		status = http.StatusNotFound
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
