package handlers

import (
	"net/http"

	"oceanpanel/internal/service"
)

// NewTeamHandler returns GET /api/team handler.
func NewTeamHandler(panel *service.Panel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"team": panel.Team(),
		})
	}
}

// NewInstrumentsHandler returns GET /api/instruments handler with optional
// category= filter.
func NewInstrumentsHandler(panel *service.Panel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"instruments": panel.Instruments(r.URL.Query().Get("category")),
		})
	}
}

// NewReferencesHandler returns GET /api/references handler.
func NewReferencesHandler(panel *service.Panel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"references": panel.References(),
		})
	}
}
