// Package service assembles the view models served by the HTTP layer from the
// immutable dataset. All derived numbers (headline metrics, regression
// statistics, error maps) are computed here, never in handlers or templates.
package service

import (
	"errors"
	"math"
	"time"

	"go.uber.org/zap"

	"oceanpanel/internal/dataset"
	"oceanpanel/internal/models"
	"oceanpanel/internal/stats"
)

// Algorithm labels for the satellite chlorophyll products.
const (
	AlgorithmOC4ME = "oc4me"
	AlgorithmNN    = "nn"
)

// ErrUnknownAlgorithm is returned for algorithm values other than the two
// products carried by the matchup table.
var ErrUnknownAlgorithm = errors.New("service: unknown algorithm")

// ErrStationNotFound is returned when a station ID does not exist.
var ErrStationNotFound = errors.New("service: station not found")

// Panel serves the read-only dashboard content.
type Panel struct {
	data   *dataset.Dataset
	logger *zap.Logger
}

func NewPanel(data *dataset.Dataset, logger *zap.Logger) *Panel {
	return &Panel{data: data, logger: logger}
}

// MatchupView is a matchup row with missing retrievals as nulls instead of
// NaN, which has no JSON representation.
type MatchupView struct {
	StationID string    `json:"station_id"`
	Date      time.Time `json:"date"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	OC4ME     *float64  `json:"chl_oc4me"`
	NN        *float64  `json:"chl_nn"`
	InSitu    *float64  `json:"chl_insitu"`
}

// StationDetail combines one station with its matchup rows.
type StationDetail struct {
	Station  models.Station `json:"station"`
	Matchups []MatchupView  `json:"matchups"`
}

// AlgorithmStats carries the regression summary for one satellite product
// against the in-situ reference. Insufficient is set instead of a summary
// when fewer than the minimum valid pairs remain after the filter.
type AlgorithmStats struct {
	Algorithm    string         `json:"algorithm"`
	Insufficient bool           `json:"insufficient,omitempty"`
	Stats        *stats.Summary `json:"stats,omitempty"`
}

// TimeSeriesPoint is one date on the chlorophyll evolution chart.
type TimeSeriesPoint struct {
	StationID string    `json:"station_id"`
	Date      time.Time `json:"date"`
	OC4ME     *float64  `json:"chl_oc4me"`
	NN        *float64  `json:"chl_nn"`
	InSitu    *float64  `json:"chl_insitu"`
}

// ErrorPoint is one station on the geographic error map: the signed percent
// difference of one satellite product against the in-situ value.
type ErrorPoint struct {
	StationID     string    `json:"station_id"`
	Date          time.Time `json:"date"`
	Lat           float64   `json:"lat"`
	Lon           float64   `json:"lon"`
	RelativeError float64   `json:"relative_error_pct"`
}

// MatchupFilter narrows the matchup selection for statistics and listings.
// Algorithm restricts listings to rows where that product has a retrieval.
type MatchupFilter struct {
	StationID string
	Algorithm string
	From      time.Time
	To        time.Time
}

// Summary returns the Home page headline metrics.
func (p *Panel) Summary() dataset.Summary {
	return p.data.Summarize()
}

// Stations lists stations matching the filter, in campaign order.
func (p *Panel) Stations(f dataset.StationFilter) []models.Station {
	return p.data.FilterStations(f)
}

// Station returns one station with its matchup rows.
func (p *Panel) Station(id string) (StationDetail, error) {
	st, ok := p.data.Station(id)
	if !ok {
		return StationDetail{}, ErrStationNotFound
	}
	return StationDetail{
		Station:  st,
		Matchups: toViews(p.data.FilterMatchups(id, time.Time{}, time.Time{})),
	}, nil
}

// Matchups lists matchup rows matching the filter.
func (p *Panel) Matchups(f MatchupFilter) ([]MatchupView, error) {
	rows := p.data.FilterMatchups(f.StationID, f.From, f.To)
	if f.Algorithm == "" {
		return toViews(rows), nil
	}
	if f.Algorithm != AlgorithmOC4ME && f.Algorithm != AlgorithmNN {
		return nil, ErrUnknownAlgorithm
	}
	kept := rows[:0]
	for _, m := range rows {
		if !math.IsNaN(estimate(m, f.Algorithm)) {
			kept = append(kept, m)
		}
	}
	return toViews(kept), nil
}

// MatchupStats computes the regression summary of one or both satellite
// products against the in-situ reference, over the filtered matchups.
// An empty algorithm selects both products.
func (p *Panel) MatchupStats(algorithm string, f MatchupFilter) ([]AlgorithmStats, error) {
	algorithms, err := resolveAlgorithms(algorithm)
	if err != nil {
		return nil, err
	}
	rows := p.data.FilterMatchups(f.StationID, f.From, f.To)

	out := make([]AlgorithmStats, 0, len(algorithms))
	for _, alg := range algorithms {
		ref := make([]float64, len(rows))
		est := make([]float64, len(rows))
		for i, m := range rows {
			ref[i] = m.InSitu
			est[i] = estimate(m, alg)
		}
		summary, ok := stats.Summarize(ref, est)
		entry := AlgorithmStats{Algorithm: alg}
		if ok {
			entry.Stats = &summary
		} else {
			entry.Insufficient = true
		}
		out = append(out, entry)
	}
	return out, nil
}

// TimeSeries returns the chlorophyll evolution along the campaign track, one
// point per matchup row in date order.
func (p *Panel) TimeSeries() []TimeSeriesPoint {
	rows := p.data.FilterMatchups("", time.Time{}, time.Time{})
	out := make([]TimeSeriesPoint, 0, len(rows))
	for _, m := range rows {
		out = append(out, TimeSeriesPoint{
			StationID: m.StationID,
			Date:      m.Date,
			OC4ME:     nullable(m.OC4ME),
			NN:        nullable(m.NN),
			InSitu:    nullable(m.InSitu),
		})
	}
	return out
}

// ErrorMap returns the geographic error distribution of one satellite product.
// Stations where either value is missing are left off the map.
func (p *Panel) ErrorMap(algorithm string) ([]ErrorPoint, error) {
	if algorithm != AlgorithmOC4ME && algorithm != AlgorithmNN {
		return nil, ErrUnknownAlgorithm
	}
	rows := p.data.FilterMatchups("", time.Time{}, time.Time{})
	out := make([]ErrorPoint, 0, len(rows))
	for _, m := range rows {
		est := estimate(m, algorithm)
		if math.IsNaN(est) || math.IsNaN(m.InSitu) {
			continue
		}
		rel := stats.RelativeError(m.InSitu, est)
		if math.IsNaN(rel) {
			continue
		}
		out = append(out, ErrorPoint{
			StationID:     m.StationID,
			Date:          m.Date,
			Lat:           m.Lat,
			Lon:           m.Lon,
			RelativeError: rel,
		})
	}
	return out, nil
}

// ArgoProfiles returns the hyperspectral float radiometry, optionally for one
// float WMO number. An unknown float yields an empty list, not an error.
func (p *Panel) ArgoProfiles(wmo string) []models.ArgoProfile {
	return p.data.FilterArgo(wmo)
}

// Team returns the biography cards in their fixed order.
func (p *Panel) Team() []models.TeamMember {
	return p.data.Team
}

// Instruments returns instrument cards, optionally for one category.
func (p *Panel) Instruments(category string) []models.Instrument {
	return p.data.InstrumentsByCategory(category)
}

// References returns the bibliography in its fixed order.
func (p *Panel) References() []models.Reference {
	return p.data.References
}

// Abbreviations returns the measurement abbreviation glossary.
func (p *Panel) Abbreviations() map[string]string {
	return p.data.Abbreviations
}

func resolveAlgorithms(algorithm string) ([]string, error) {
	switch algorithm {
	case "":
		return []string{AlgorithmOC4ME, AlgorithmNN}, nil
	case AlgorithmOC4ME, AlgorithmNN:
		return []string{algorithm}, nil
	default:
		return nil, ErrUnknownAlgorithm
	}
}

func estimate(m models.Matchup, algorithm string) float64 {
	if algorithm == AlgorithmNN {
		return m.NN
	}
	return m.OC4ME
}

func toViews(rows []models.Matchup) []MatchupView {
	out := make([]MatchupView, 0, len(rows))
	for _, m := range rows {
		out = append(out, MatchupView{
			StationID: m.StationID,
			Date:      m.Date,
			Lat:       m.Lat,
			Lon:       m.Lon,
			OC4ME:     nullable(m.OC4ME),
			NN:        nullable(m.NN),
			InSitu:    nullable(m.InSitu),
		})
	}
	return out
}

func nullable(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
