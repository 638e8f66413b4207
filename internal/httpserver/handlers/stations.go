package handlers

import (
	"errors"
	"net/http"
	"strings"

	"oceanpanel/internal/dataset"
	"oceanpanel/internal/service"
)

// NewStationsHandler returns GET /api/stations handler. Supports region= and
// from=/to= (YYYY-MM-DD) filters.
func NewStationsHandler(panel *service.Panel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		from, err := parseDate(q.Get("from"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid from date, expected YYYY-MM-DD")
			return
		}
		to, err := parseDate(q.Get("to"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid to date, expected YYYY-MM-DD")
			return
		}
		stations := panel.Stations(dataset.StationFilter{
			Region: q.Get("region"),
			From:   from,
			To:     to,
		})
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"stations": stations,
		})
	}
}

// NewStationByIDHandler returns GET /api/stations/{id} handler.
func NewStationByIDHandler(panel *service.Panel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/stations/")
		if id == "" || strings.Contains(id, "/") {
			writeError(w, http.StatusNotFound, "station not found")
			return
		}
		detail, err := panel.Station(id)
		if err != nil {
			if errors.Is(err, service.ErrStationNotFound) {
				writeError(w, http.StatusNotFound, "station not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to fetch station")
			return
		}
		writeJSON(w, http.StatusOK, detail)
	}
}
