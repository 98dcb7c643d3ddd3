package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"prados-hq/legalhub/pkg/api/types"
)

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().With("component", "api").Warn("response encode failed", "error", err)
	}
}

// WriteError writes the {"detail": ...} error envelope.
func WriteError(w http.ResponseWriter, status int, detail string) {
	WriteJSON(w, status, types.ErrorResponse{Detail: detail})
}
