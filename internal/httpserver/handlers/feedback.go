package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"oceanpanel/internal/service"
)

// NewFeedbackListHandler returns GET /api/feedback handler.
func NewFeedbackListHandler(board *service.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"comments": board.List(),
		})
	}
}

// NewFeedbackPostHandler returns POST /api/feedback handler.
func NewFeedbackPostHandler(board *service.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Topic       string `json:"topic"`
			FullName    string `json:"full_name"`
			Institution string `json:"institution"`
			Message     string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		comment, err := board.Add(req.Topic, req.FullName, req.Institution, req.Message)
		if err != nil {
			if errors.Is(err, service.ErrMissingFields) {
				writeError(w, http.StatusBadRequest, "name and message are required")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to store feedback")
			return
		}
		writeJSON(w, http.StatusCreated, comment)
	}
}
