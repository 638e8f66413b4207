package handlers

import "net/http"

// NewHealthHandler returns the GET /health handler used by deployment
// liveness checks.
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "oceanpanel",
		})
	}
}
