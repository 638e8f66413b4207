package handlers

import (
	"net/http"

	"oceanpanel/internal/service"
)

// NewArgoHandler returns GET /api/argo handler: Rrs spectra from the
// hyperspectral floats, with an optional float= WMO filter.
func NewArgoHandler(panel *service.Panel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"profiles": panel.ArgoProfiles(r.URL.Query().Get("float")),
		})
	}
}
