package api

import (
	"encoding/json"
	"io"
	"net/http"

	"prados-hq/legalhub/pkg/api/types"
)

// TTS synthesizes speech for a text snippet with the default voice.
func (h *Handlers) TTS(w http.ResponseWriter, r *http.Request) {
	var req types.TTSRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	result, err := h.assistant.Speak(r.Context(), req.Text)
	if err != nil {
		HandleError(w, h.logger, err)
		return
	}

	WriteJSON(w, http.StatusOK, types.TTSResponse{
		Audio:  result.Audio,
		Format: result.Format,
	})
}

// TextChat answers a typed legal question, optionally with audio.
func (h *Handlers) TextChat(w http.ResponseWriter, r *http.Request) {
	var req types.TextChatRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	result, err := h.assistant.TextChat(r.Context(), req.SessionID, req.Text)
	if err != nil {
		HandleError(w, h.logger, err)
		return
	}

	resp := types.TextChatResponse{
		UserText:   result.UserText,
		AIResponse: result.AIResponse,
	}
	if result.AudioURL != "" {
		resp.AudioURL = &result.AudioURL
		resp.Format = &result.Format
	}
	WriteJSON(w, http.StatusOK, resp)
}

func decodeJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}
