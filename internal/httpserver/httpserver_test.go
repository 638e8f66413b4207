package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"oceanpanel/internal/assistant"
	"oceanpanel/internal/dataset"
	"oceanpanel/internal/httpserver"
	"oceanpanel/internal/httpserver/handlers"
	"oceanpanel/internal/service"
	"oceanpanel/internal/web"
)

type fakeCompleter struct {
	calls  int
	answer string
	err    error
}

func (f *fakeCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func newTestHandler(t *testing.T, fake *fakeCompleter) http.Handler {
	t.Helper()
	logger := zap.NewNop()

	data, err := dataset.Load(logger)
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	renderer, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	panel := service.NewPanel(data, logger)
	board := service.NewBoard()
	asst := assistant.New(fake, time.Second, logger)
	pages := handlers.NewPages(renderer, panel, true, logger)

	routes := httpserver.Routes{
		Home:          pages.Home,
		Team:          pages.Team,
		Methodologies: pages.Methodologies,
		Analysis:      pages.Analysis,
		References:    pages.References,
		Chat:          pages.Chat,

		Stations:      handlers.NewStationsHandler(panel),
		StationByID:   handlers.NewStationByIDHandler(panel),
		Matchups:      handlers.NewMatchupsHandler(panel),
		MatchupStats:  handlers.NewMatchupStatsHandler(panel),
		TimeSeries:    handlers.NewTimeSeriesHandler(panel),
		ErrorMap:      handlers.NewErrorMapHandler(panel),
		Argo:          handlers.NewArgoHandler(panel),
		TeamAPI:       handlers.NewTeamHandler(panel),
		Instruments:   handlers.NewInstrumentsHandler(panel),
		ReferencesAPI: handlers.NewReferencesHandler(panel),
		ChatAPI:       handlers.NewChatHandler(asst),
		FeedbackList:  handlers.NewFeedbackListHandler(board),
		FeedbackPost:  handlers.NewFeedbackPostHandler(board),
		Health:        handlers.NewHealthHandler(),

		Static: web.StaticHandler(),
	}
	return httpserver.NewRouter(routes, []string{"*"})
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestPagesRender(t *testing.T) {
	handler := newTestHandler(t, &fakeCompleter{answer: "ok"})

	for _, path := range []string{"/", "/team", "/methodologies", "/analysis", "/references", "/chat"} {
		rec := get(t, handler, path)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, rec.Code)
			continue
		}
		body := rec.Body.String()
		if !strings.Contains(body, "</html>") {
			t.Errorf("GET %s: truncated or empty HTML", path)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Errorf("GET %s content type = %q", path, ct)
		}
	}
}

func TestUnknownPathIs404(t *testing.T) {
	handler := newTestHandler(t, &fakeCompleter{})
	if rec := get(t, handler, "/no-such-page"); rec.Code != http.StatusNotFound {
		t.Errorf("GET /no-such-page = %d, want 404", rec.Code)
	}
}

func TestMethodGuard(t *testing.T) {
	handler := newTestHandler(t, &fakeCompleter{})
	rec := postJSON(t, handler, "/team", "{}")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /team = %d, want 405", rec.Code)
	}
}

func TestStationsAPI(t *testing.T) {
	handler := newTestHandler(t, &fakeCompleter{})

	rec := get(t, handler, "/api/stations?region=Norwegian%20Sea")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/stations = %d", rec.Code)
	}
	var resp struct {
		Stations []struct {
			ID     string `json:"id"`
			Region string `json:"region"`
		} `json:"stations"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Stations) == 0 {
		t.Fatal("no stations returned")
	}
	for _, st := range resp.Stations {
		if st.Region != "Norwegian Sea" {
			t.Errorf("station %s region = %q", st.ID, st.Region)
		}
	}

	if rec := get(t, handler, "/api/stations?from=yesterday"); rec.Code != http.StatusBadRequest {
		t.Errorf("bad from date = %d, want 400", rec.Code)
	}
}

func TestStationByID(t *testing.T) {
	handler := newTestHandler(t, &fakeCompleter{})

	rec := get(t, handler, "/api/stations/9A")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/stations/9A = %d", rec.Code)
	}
	var detail struct {
		Station struct {
			ID string `json:"id"`
		} `json:"station"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if detail.Station.ID != "9A" {
		t.Errorf("station id = %q", detail.Station.ID)
	}

	if rec := get(t, handler, "/api/stations/unknown"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown station = %d, want 404", rec.Code)
	}
}

func TestMatchupStatsAPI(t *testing.T) {
	handler := newTestHandler(t, &fakeCompleter{})

	rec := get(t, handler, "/api/matchups/stats")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/matchups/stats = %d", rec.Code)
	}
	var resp struct {
		Results []struct {
			Algorithm string `json:"algorithm"`
			Stats     *struct {
				N  int     `json:"n"`
				R2 float64 `json:"r2"`
			} `json:"stats"`
		} `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("results = %d, want 2", len(resp.Results))
	}
	for _, res := range resp.Results {
		if res.Stats == nil {
			t.Errorf("%s: missing stats", res.Algorithm)
			continue
		}
		if res.Stats.R2 < 0 || res.Stats.R2 > 1 {
			t.Errorf("%s: r2 = %v", res.Algorithm, res.Stats.R2)
		}
	}

	if rec := get(t, handler, "/api/matchups/stats?algorithm=oc5"); rec.Code != http.StatusBadRequest {
		t.Errorf("unknown algorithm = %d, want 400", rec.Code)
	}
}

func TestErrorMapRequiresAlgorithm(t *testing.T) {
	handler := newTestHandler(t, &fakeCompleter{})

	if rec := get(t, handler, "/api/matchups/errors"); rec.Code != http.StatusBadRequest {
		t.Errorf("missing algorithm = %d, want 400", rec.Code)
	}
	if rec := get(t, handler, "/api/matchups/errors?algorithm=nn"); rec.Code != http.StatusOK {
		t.Errorf("nn error map = %d, want 200", rec.Code)
	}
}

func TestArgoAPI(t *testing.T) {
	handler := newTestHandler(t, &fakeCompleter{})

	rec := get(t, handler, "/api/argo?float=7901133")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/argo = %d", rec.Code)
	}
	var resp struct {
		Profiles []struct {
			FloatWMO string `json:"float_wmo"`
			Points   []struct {
				Wavelength float64 `json:"wavelength_nm"`
				Rrs        float64 `json:"rrs_sr"`
			} `json:"points"`
		} `json:"profiles"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Profiles) == 0 {
		t.Fatal("no profiles returned")
	}
	for _, p := range resp.Profiles {
		if p.FloatWMO != "7901133" {
			t.Errorf("profile float = %q, want 7901133", p.FloatWMO)
		}
		if len(p.Points) == 0 {
			t.Error("profile carries no spectrum points")
		}
	}
}

func TestAnalysisPageCarriesArgoSection(t *testing.T) {
	handler := newTestHandler(t, &fakeCompleter{})

	rec := get(t, handler, "/analysis")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /analysis = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "BGC-Argo float analysis") {
		t.Error("analysis page misses the float radiometry section")
	}
	if !strings.Contains(body, "5906995") || !strings.Contains(body, "7901133") {
		t.Error("analysis page misses the campaign float WMO numbers")
	}
}

func TestChatSuccess(t *testing.T) {
	fake := &fakeCompleter{answer: "the CTD profiles the water column"}
	handler := newTestHandler(t, fake)

	rec := postJSON(t, handler, "/api/chat", `{"topic":"methodology","question":"what does the CTD do?"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /api/chat = %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["answer"] != fake.answer {
		t.Errorf("answer = %q", resp["answer"])
	}
	if fake.calls != 1 {
		t.Errorf("completer calls = %d, want 1", fake.calls)
	}
}

func TestChatEmptyQuestion(t *testing.T) {
	fake := &fakeCompleter{answer: "ok"}
	handler := newTestHandler(t, fake)

	rec := postJSON(t, handler, "/api/chat", `{"topic":"methodology","question":"  "}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty question = %d, want 400", rec.Code)
	}
	if fake.calls != 0 {
		t.Errorf("completer called %d times for an empty question", fake.calls)
	}
}

func TestChatUpstreamFailure(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("model overloaded")}
	handler := newTestHandler(t, fake)

	rec := postJSON(t, handler, "/api/chat", `{"topic":"references","question":"what is a matchup?"}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("upstream failure = %d, want 502", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["error"] == "" {
		t.Error("502 body carries no error message")
	}

	// The failure is contained: pages keep serving.
	if rec := get(t, handler, "/"); rec.Code != http.StatusOK {
		t.Errorf("GET / after chat failure = %d, want 200", rec.Code)
	}
}

func TestFeedbackRoundTrip(t *testing.T) {
	handler := newTestHandler(t, &fakeCompleter{})

	rec := postJSON(t, handler, "/api/feedback",
		`{"topic":"chat","full_name":"Ada","institution":"AE","message":"nice work"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /api/feedback = %d: %s", rec.Code, rec.Body.String())
	}

	rec = get(t, handler, "/api/feedback")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/feedback = %d", rec.Code)
	}
	var resp struct {
		Comments []struct {
			FullName string `json:"full_name"`
			Message  string `json:"message"`
		} `json:"comments"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Comments) != 1 || resp.Comments[0].FullName != "Ada" {
		t.Errorf("comments = %+v", resp.Comments)
	}

	if rec := postJSON(t, handler, "/api/feedback", `{"message":""}`); rec.Code != http.StatusBadRequest {
		t.Errorf("missing fields = %d, want 400", rec.Code)
	}
}

func TestHealthAndStatic(t *testing.T) {
	handler := newTestHandler(t, &fakeCompleter{})

	rec := get(t, handler, "/health")
	if rec.Code != http.StatusOK {
		t.Errorf("GET /health = %d", rec.Code)
	}
	var health map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if health["status"] != "ok" || health["service"] != "oceanpanel" {
		t.Errorf("health = %v", health)
	}

	rec = get(t, handler, "/static/style.css")
	if rec.Code != http.StatusOK {
		t.Errorf("GET /static/style.css = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "topbar") {
		t.Error("stylesheet looks wrong")
	}
}
