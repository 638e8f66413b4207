package handlers

import (
	"errors"
	"net/http"

	"oceanpanel/internal/service"
)

// NewMatchupsHandler returns GET /api/matchups handler. Supports station=,
// from= and to= filters.
func NewMatchupsHandler(panel *service.Panel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, ok := matchupFilter(w, r)
		if !ok {
			return
		}
		filter.Algorithm = r.URL.Query().Get("algorithm")
		rows, err := panel.Matchups(filter)
		if err != nil {
			if errors.Is(err, service.ErrUnknownAlgorithm) {
				writeError(w, http.StatusBadRequest, "unknown algorithm")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to fetch matchups")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"matchups": rows,
		})
	}
}

// NewMatchupStatsHandler returns GET /api/matchups/stats handler. algorithm=
// selects one product; omitted means both.
func NewMatchupStatsHandler(panel *service.Panel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, ok := matchupFilter(w, r)
		if !ok {
			return
		}
		results, err := panel.MatchupStats(r.URL.Query().Get("algorithm"), filter)
		if err != nil {
			if errors.Is(err, service.ErrUnknownAlgorithm) {
				writeError(w, http.StatusBadRequest, "unknown algorithm")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to compute statistics")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"results": results,
		})
	}
}

// NewTimeSeriesHandler returns GET /api/matchups/timeseries handler.
func NewTimeSeriesHandler(panel *service.Panel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"points": panel.TimeSeries(),
		})
	}
}

// NewErrorMapHandler returns GET /api/matchups/errors handler. algorithm= is
// required.
func NewErrorMapHandler(panel *service.Panel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		points, err := panel.ErrorMap(r.URL.Query().Get("algorithm"))
		if err != nil {
			if errors.Is(err, service.ErrUnknownAlgorithm) {
				writeError(w, http.StatusBadRequest, "unknown algorithm")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to compute error map")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"points": points,
		})
	}
}

func matchupFilter(w http.ResponseWriter, r *http.Request) (service.MatchupFilter, bool) {
	q := r.URL.Query()
	from, err := parseDate(q.Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from date, expected YYYY-MM-DD")
		return service.MatchupFilter{}, false
	}
	to, err := parseDate(q.Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to date, expected YYYY-MM-DD")
		return service.MatchupFilter{}, false
	}
	return service.MatchupFilter{
		StationID: q.Get("station"),
		From:      from,
		To:        to,
	}, true
}
