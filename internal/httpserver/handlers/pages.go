package handlers

import (
	"bytes"
	"io"
	"net/http"

	"go.uber.org/zap"

	"oceanpanel/internal/dataset"
	"oceanpanel/internal/models"
	"oceanpanel/internal/service"
)

// Renderer executes a named page template. Implemented by the web package.
type Renderer interface {
	Render(w io.Writer, page string, data interface{}) error
}

// Pages serves the server-rendered HTML. Templates are rendered into a buffer
// first so a rendering failure becomes a clean 500 instead of a torn page.
type Pages struct {
	renderer    Renderer
	panel       *service.Panel
	chatEnabled bool
	logger      *zap.Logger
}

func NewPages(renderer Renderer, panel *service.Panel, chatEnabled bool, logger *zap.Logger) *Pages {
	return &Pages{renderer: renderer, panel: panel, chatEnabled: chatEnabled, logger: logger}
}

func (p *Pages) render(w http.ResponseWriter, page string, data interface{}) {
	var buf bytes.Buffer
	if err := p.renderer.Render(&buf, page, data); err != nil {
		p.logger.Error("page render failed", zap.String("page", page), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// Home renders GET /. The root pattern matches every unregistered path, so
// anything else is a 404.
func (p *Pages) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	p.render(w, "home", struct {
		Title         string
		Summary       dataset.Summary
		Stations      []models.Station
		Abbreviations map[string]string
	}{
		Title:         "The Project",
		Summary:       p.panel.Summary(),
		Stations:      p.panel.Stations(dataset.StationFilter{}),
		Abbreviations: p.panel.Abbreviations(),
	})
}

// Team renders GET /team.
func (p *Pages) Team(w http.ResponseWriter, r *http.Request) {
	p.render(w, "team", struct {
		Title string
		Team  []models.TeamMember
	}{
		Title: "Team",
		Team:  p.panel.Team(),
	})
}

type instrumentGroup struct {
	Label       string
	Instruments []models.Instrument
}

// Methodologies renders GET /methodologies with instruments grouped by
// platform category.
func (p *Pages) Methodologies(w http.ResponseWriter, r *http.Request) {
	groups := []instrumentGroup{
		{Label: "In-situ sensors", Instruments: p.panel.Instruments(models.CategoryInSitu)},
		{Label: "Inline systems", Instruments: p.panel.Instruments(models.CategoryInline)},
		{Label: "Satellites", Instruments: p.panel.Instruments(models.CategorySatellite)},
		{Label: "Autonomous platforms", Instruments: p.panel.Instruments(models.CategoryAutonomous)},
		{Label: "Drones", Instruments: p.panel.Instruments(models.CategoryDrone)},
	}
	p.render(w, "methodologies", struct {
		Title  string
		Groups []instrumentGroup
	}{
		Title:  "Methodologies",
		Groups: groups,
	})
}

// Analysis renders GET /analysis: regression statistics for both products and
// the chlorophyll time series.
func (p *Pages) Analysis(w http.ResponseWriter, r *http.Request) {
	results, err := p.panel.MatchupStats("", service.MatchupFilter{})
	if err != nil {
		p.logger.Error("statistics failed", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	p.render(w, "analysis", struct {
		Title   string
		Results []service.AlgorithmStats
		Points  []service.TimeSeriesPoint
		Argo    []models.ArgoProfile
	}{
		Title:   "Data Analysis",
		Results: results,
		Points:  p.panel.TimeSeries(),
		Argo:    p.panel.ArgoProfiles(""),
	})
}

// References renders GET /references.
func (p *Pages) References(w http.ResponseWriter, r *http.Request) {
	p.render(w, "references", struct {
		Title      string
		References []models.Reference
	}{
		Title:      "References",
		References: p.panel.References(),
	})
}

// Chat renders GET /chat. The form is disabled when no assistant is
// configured.
func (p *Pages) Chat(w http.ResponseWriter, r *http.Request) {
	p.render(w, "chat", struct {
		Title   string
		Enabled bool
	}{
		Title:   "Ask",
		Enabled: p.chatEnabled,
	})
}
