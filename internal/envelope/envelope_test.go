package envelope

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteData(t *testing.T) {
	tests := []struct {
		name    string
		message string
		data    any
		want    string
	}{
		{"with message", "Order placed successfully", map[string]int{"id": 1000}, `{"success":true,"message":"Order placed successfully","data":{"id":1000}}`},
		{"empty list", "", []string{}, `{"success":true,"data":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteData(rec, slog.Default(), http.StatusOK, tt.message, tt.data)

			if rec.Header().Get("Content-Type") != "application/json" {
				t.Errorf("unexpected content type %q", rec.Header().Get("Content-Type"))
			}
			if got := rec.Body.String(); got != tt.want+"\n" {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, slog.Default(), http.StatusNotFound, "Item not found")

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "{\"success\":false,\"message\":\"Item not found\"}\n" {
		t.Errorf("unexpected body %s", got)
	}
}
