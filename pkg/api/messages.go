package api

import (
	"net/http"
	"strconv"
	"time"

	"prados-hq/legalhub/pkg/api/types"
	"prados-hq/legalhub/pkg/history"
)

const maxListLimit = 500

// ListMessages returns recorded transcript messages, newest first. The
// session and limit query parameters narrow the listing.
func (h *Handlers) ListMessages(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		WriteError(w, http.StatusServiceUnavailable, "History is not enabled")
		return
	}

	filter := history.ListFilter{
		SessionID: r.URL.Query().Get("session"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 || limit > maxListLimit {
			WriteError(w, http.StatusBadRequest, "limit must be a positive integer up to 500")
			return
		}
		filter.Limit = limit
	}

	messages, err := h.store.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("listing history failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Could not list messages")
		return
	}

	records := make([]types.MessageRecord, 0, len(messages))
	for _, m := range messages {
		records = append(records, types.MessageRecord{
			ID:          m.ID,
			SessionID:   m.SessionID,
			Role:        m.Role,
			Content:     m.Content,
			AudioFormat: m.AudioFormat,
			CreatedAt:   m.CreatedAt.Format(time.RFC3339),
		})
	}

	WriteJSON(w, http.StatusOK, types.MessagesResponse{
		Messages: records,
		Count:    len(records),
	})
}

// AppendMessage stores one transcript message directly, for clients that
// keep their own conversation state.
func (h *Handlers) AppendMessage(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		WriteError(w, http.StatusServiceUnavailable, "History is not enabled")
		return
	}

	var req types.AppendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	msg := &history.Message{
		SessionID: req.SessionID,
		Role:      req.Role,
		Content:   req.Content,
	}
	if err := msg.Validate(); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.Store(r.Context(), msg); err != nil {
		h.logger.Error("storing message failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Could not store message")
		return
	}

	WriteJSON(w, http.StatusCreated, types.AppendMessageResponse{
		ID:        msg.ID,
		CreatedAt: msg.CreatedAt.Format(time.RFC3339),
	})
}
