package api

import (
	"log/slog"
	"net/http"

	"prados-hq/legalhub/pkg/api/types"
	"prados-hq/legalhub/pkg/assistant"
	"prados-hq/legalhub/pkg/history"
	"prados-hq/legalhub/pkg/providers"
)

// HealthInfo is the deployment diagnostics reported by /api/health.
type HealthInfo struct {
	// CORSRaw is the CORS_ORIGINS environment value as received.
	CORSRaw string

	// CORSOrigins is the effective allow-list after merging defaults.
	CORSOrigins []string
}

// Handlers holds the endpoint implementations and their dependencies.
type Handlers struct {
	assistant *assistant.Assistant
	chat      providers.ChatProvider
	speech    providers.SpeechProvider
	store     history.Storage
	health    HealthInfo
	logger    *slog.Logger
}

// NewHandlers wires the endpoint set. The history store may be nil; the
// messages endpoints then report 503.
func NewHandlers(a *assistant.Assistant, chat providers.ChatProvider, speech providers.SpeechProvider, store history.Storage, health HealthInfo) *Handlers {
	return &Handlers{
		assistant: a,
		chat:      chat,
		speech:    speech,
		store:     store,
		health:    health,
		logger:    slog.Default().With("component", "api"),
	}
}

// Root serves the API banner.
func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, types.RootResponse{
		Message: "Prados de Paraíso Legal Hub API",
	})
}

// Health reports service status and deployment diagnostics.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	// The raw value reads "*" when CORS_ORIGINS was never set, matching
	// what the frontend's diagnostics page has always displayed.
	raw := h.health.CORSRaw
	if raw == "" {
		raw = "*"
	}

	WriteJSON(w, http.StatusOK, types.HealthResponse{
		Status:               "ok",
		CORSOrigins:          raw,
		CORSOriginsParsed:    h.health.CORSOrigins,
		OpenAIConfigured:     h.chat.IsConfigured(),
		ElevenLabsConfigured: h.speech.IsConfigured(),
		HistoryEnabled:       h.store != nil,
	})
}

// Liveness answers process liveness probes.
func (h *Handlers) Liveness(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

// Readiness answers readiness probes. The service is ready as soon as it is
// serving; unconfigured providers degrade endpoints, not the process.
func (h *Handlers) Readiness(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
