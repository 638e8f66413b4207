package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"oceanpanel/internal/assistant"
)

// NewChatHandler returns POST /api/chat handler. Validation failures are
// rejected locally; an upstream model failure maps to 502 and is never
// retried here.
func NewChatHandler(asst *assistant.Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if asst == nil {
			writeError(w, http.StatusServiceUnavailable, "assistant is not configured")
			return
		}

		var req struct {
			Topic    string `json:"topic"`
			Question string `json:"question"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		answer, err := asst.Ask(r.Context(), req.Topic, req.Question)
		if err != nil {
			switch {
			case errors.Is(err, assistant.ErrEmptyQuestion):
				writeError(w, http.StatusBadRequest, "question is required")
			case errors.Is(err, assistant.ErrUnknownTopic):
				writeError(w, http.StatusBadRequest, "unknown topic")
			default:
				writeError(w, http.StatusBadGateway, "assistant is unavailable")
			}
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
	}
}
