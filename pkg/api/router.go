package api

import "net/http"

// Routes builds the request mux. Method-qualified patterns give non-matching
// methods a 405 without per-handler checks.
func (h *Handlers) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/{$}", h.Root)
	mux.HandleFunc("GET /api/health", h.Health)

	mux.HandleFunc("POST /api/tts", h.TTS)
	mux.HandleFunc("POST /api/text-chat", h.TextChat)
	mux.HandleFunc("POST /api/voice-chat", h.VoiceChat)
	mux.HandleFunc("POST /api/voice-agent", h.VoiceAgent)

	mux.HandleFunc("GET /api/messages", h.ListMessages)
	mux.HandleFunc("POST /api/messages", h.AppendMessage)

	mux.HandleFunc("GET /health", h.Liveness)
	mux.HandleFunc("GET /ready", h.Readiness)

	return mux
}
