package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/maxandsherry/storefront/internal/envelope"
)

type healthResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

type descriptor struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// versionLabel renders "1.0.0 (Trial)" style labels; suffix is appended to the
// edition name and the bare version is used when there is no edition.
func versionLabel(version, edition, suffix string) string {
	if edition == "" {
		return version
	}
	return fmt.Sprintf("%s (%s%s)", version, edition, suffix)
}

func handleHealth(logger *slog.Logger, version, edition string, now func() time.Time) http.HandlerFunc {
	label := versionLabel(version, edition, "")
	return func(w http.ResponseWriter, r *http.Request) {
		envelope.WriteJSON(w, logger, http.StatusOK, healthResponse{
			Success:   true,
			Message:   "Max and Sherry API is running",
			Version:   label,
			Timestamp: now().UTC(),
		})
	}
}

func handleRoot(logger *slog.Logger, version, edition string) http.HandlerFunc {
	label := versionLabel(version, edition, " Version")
	return func(w http.ResponseWriter, r *http.Request) {
		envelope.WriteJSON(w, logger, http.StatusOK, descriptor{
			Message: "Welcome to Max and Sherry API",
			Version: label,
			Endpoints: map[string]string{
				"menu":   "/api/menu",
				"orders": "/api/orders",
				"health": "/api/health",
			},
		})
	}
}
