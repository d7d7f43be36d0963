// Package envelope writes the {success, message, data} response shape shared
// by every API endpoint.
package envelope

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func WriteJSON(w http.ResponseWriter, logger *slog.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func WriteData(w http.ResponseWriter, logger *slog.Logger, status int, message string, data any) {
	WriteJSON(w, logger, status, Response{Success: true, Message: message, Data: data})
}

func WriteError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	WriteJSON(w, logger, status, Response{Success: false, Message: message})
}
