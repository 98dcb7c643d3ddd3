package api

import (
	"io"
	"net/http"

	"prados-hq/legalhub/pkg/api/types"
)

// maxMemoryBytes bounds how much of a multipart upload is held in memory
// before spilling to disk. The overall request size cap is enforced by the
// server's MaxBytesReader.
const maxMemoryBytes = 10 << 20

// VoiceChat transcribes an uploaded recording, answers it and returns the
// spoken reply.
func (h *Handlers) VoiceChat(w http.ResponseWriter, r *http.Request) {
	audio, filename, ok := h.readAudioUpload(w, r)
	if !ok {
		return
	}

	result, err := h.assistant.VoiceChat(r.Context(), r.FormValue("session_id"), audio, filename)
	if err != nil {
		HandleError(w, h.logger, err)
		return
	}

	WriteJSON(w, http.StatusOK, types.VoiceChatResponse{
		TranscribedText: result.TranscribedText,
		AIResponse:      result.AIResponse,
		AudioURL:        result.AudioURL,
		Format:          result.Format,
	})
}

// VoiceAgent answers an uploaded recording with a named agent's persona
// and voice.
func (h *Handlers) VoiceAgent(w http.ResponseWriter, r *http.Request) {
	audio, filename, ok := h.readAudioUpload(w, r)
	if !ok {
		return
	}

	agentID := r.FormValue("agent_id")
	if agentID == "" {
		WriteError(w, http.StatusBadRequest, "agent_id is required")
		return
	}

	result, err := h.assistant.AgentChat(r.Context(), r.FormValue("session_id"), audio, filename, agentID)
	if err != nil {
		HandleError(w, h.logger, err)
		return
	}

	WriteJSON(w, http.StatusOK, types.AgentChatResponse{
		TranscribedText: result.TranscribedText,
		AgentResponse:   result.AgentResponse,
		AudioURL:        result.AudioURL,
		Format:          result.Format,
		VoiceUsed:       result.VoiceUsed,
	})
}

// readAudioUpload extracts the "audio" multipart file. On failure it writes
// the error response and returns ok=false.
func (h *Handlers) readAudioUpload(w http.ResponseWriter, r *http.Request) (data []byte, filename string, ok bool) {
	if err := r.ParseMultipartForm(maxMemoryBytes); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid multipart form")
		return nil, "", false
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "audio file is required")
		return nil, "", false
	}
	defer file.Close()

	data, err = io.ReadAll(file)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Could not read audio upload")
		return nil, "", false
	}
	if len(data) == 0 {
		WriteError(w, http.StatusBadRequest, "audio file is empty")
		return nil, "", false
	}

	return data, header.Filename, true
}
