package httpserver

import (
	"net/http"

	"github.com/rs/cors"
)

// Routes groups handlers. Nil entries are simply not registered, which keeps
// tests free to wire only what they exercise.
type Routes struct {
	// HTML pages.
	Home          http.HandlerFunc
	Team          http.HandlerFunc
	Methodologies http.HandlerFunc
	Analysis      http.HandlerFunc
	References    http.HandlerFunc
	Chat          http.HandlerFunc

	// JSON API.
	Stations      http.HandlerFunc
	StationByID   http.HandlerFunc
	Matchups      http.HandlerFunc
	MatchupStats  http.HandlerFunc
	TimeSeries    http.HandlerFunc
	ErrorMap      http.HandlerFunc
	Argo          http.HandlerFunc
	TeamAPI       http.HandlerFunc
	Instruments   http.HandlerFunc
	ReferencesAPI http.HandlerFunc
	ChatAPI       http.HandlerFunc
	FeedbackList  http.HandlerFunc
	FeedbackPost  http.HandlerFunc
	Health        http.HandlerFunc

	// Static assets (stylesheet, images).
	Static http.Handler
}

// NewRouter registers endpoints and wraps the mux with CORS for the API.
func NewRouter(routes Routes, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()

	if routes.Home != nil {
		mux.Handle("/", method(http.MethodGet, routes.Home))
	}
	if routes.Team != nil {
		mux.Handle("/team", method(http.MethodGet, routes.Team))
	}
	if routes.Methodologies != nil {
		mux.Handle("/methodologies", method(http.MethodGet, routes.Methodologies))
	}
	if routes.Analysis != nil {
		mux.Handle("/analysis", method(http.MethodGet, routes.Analysis))
	}
	if routes.References != nil {
		mux.Handle("/references", method(http.MethodGet, routes.References))
	}
	if routes.Chat != nil {
		mux.Handle("/chat", method(http.MethodGet, routes.Chat))
	}

	if routes.Stations != nil {
		mux.Handle("/api/stations", method(http.MethodGet, routes.Stations))
	}
	if routes.StationByID != nil {
		mux.Handle("/api/stations/", method(http.MethodGet, routes.StationByID))
	}
	if routes.Matchups != nil {
		mux.Handle("/api/matchups", method(http.MethodGet, routes.Matchups))
	}
	if routes.MatchupStats != nil {
		mux.Handle("/api/matchups/stats", method(http.MethodGet, routes.MatchupStats))
	}
	if routes.TimeSeries != nil {
		mux.Handle("/api/matchups/timeseries", method(http.MethodGet, routes.TimeSeries))
	}
	if routes.ErrorMap != nil {
		mux.Handle("/api/matchups/errors", method(http.MethodGet, routes.ErrorMap))
	}
	if routes.Argo != nil {
		mux.Handle("/api/argo", method(http.MethodGet, routes.Argo))
	}
	if routes.TeamAPI != nil {
		mux.Handle("/api/team", method(http.MethodGet, routes.TeamAPI))
	}
	if routes.Instruments != nil {
		mux.Handle("/api/instruments", method(http.MethodGet, routes.Instruments))
	}
	if routes.ReferencesAPI != nil {
		mux.Handle("/api/references", method(http.MethodGet, routes.ReferencesAPI))
	}
	if routes.ChatAPI != nil {
		mux.Handle("/api/chat", method(http.MethodPost, routes.ChatAPI))
	}
	if routes.FeedbackList != nil || routes.FeedbackPost != nil {
		mux.HandleFunc("/api/feedback", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				if routes.FeedbackList != nil {
					routes.FeedbackList(w, r)
					return
				}
			case http.MethodPost:
				if routes.FeedbackPost != nil {
					routes.FeedbackPost(w, r)
					return
				}
			}
			w.Header().Set("Allow", "GET, POST")
			w.WriteHeader(http.StatusMethodNotAllowed)
		})
	}
	if routes.Health != nil {
		mux.Handle("/health", method(http.MethodGet, routes.Health))
	}
	if routes.Static != nil {
		mux.Handle("/static/", routes.Static)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(mux)
}

func method(expected string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != expected {
			w.Header().Set("Allow", expected)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		handler(w, r)
	}
}
