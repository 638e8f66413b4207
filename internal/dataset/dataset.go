// Package dataset is the read-only content store bundled with the binary:
// station metadata, satellite/in-situ matchups, instrument cards, team
// biographies and the bibliography. Everything is loaded once at startup and
// never mutated.
package dataset

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"oceanpanel/internal/models"
)

// Dataset holds the immutable campaign content. Safe for concurrent reads.
type Dataset struct {
	Stations      []models.Station
	Matchups      []models.Matchup
	ArgoProfiles  []models.ArgoProfile
	Instruments   []models.Instrument
	Team          []models.TeamMember
	References    []models.Reference
	Abbreviations map[string]string

	stationsByID map[string]models.Station
}

// Summary is the headline metric row on the Home page, computed from the
// loaded content rather than hard-coded.
type Summary struct {
	Stations   int `json:"stations"`
	Regions    int `json:"regions"`
	PeriodDays int `json:"period_days"`
	Platforms  int `json:"platforms"`
	Matchups   int `json:"matchups"`
}

// StationFilter narrows station listings. Zero values mean "no constraint".
type StationFilter struct {
	Region string
	From   time.Time
	To     time.Time
}

// Load assembles the dataset from the embedded tables. Malformed records are
// logged and skipped; a dataset that ends up empty is still returned, so a
// content problem degrades to empty pages rather than a failed startup.
func Load(logger *zap.Logger) (*Dataset, error) {
	ds := &Dataset{
		Instruments:   instrumentTable(),
		Team:          teamTable(),
		References:    referenceTable(),
		Abbreviations: abbreviationTable(),
		stationsByID:  make(map[string]models.Station),
	}

	for _, rec := range stationTable() {
		st, err := rec.toStation()
		if err != nil {
			logger.Warn("skipping malformed station record",
				zap.String("id", rec.id), zap.Error(err))
			continue
		}
		ds.Stations = append(ds.Stations, st)
		ds.stationsByID[st.ID] = st
	}
	sort.Slice(ds.Stations, func(i, j int) bool {
		return ds.Stations[i].Date.Before(ds.Stations[j].Date)
	})

	matchups, err := loadMatchups()
	if err != nil {
		return nil, fmt.Errorf("dataset: load matchups: %w", err)
	}
	for _, m := range matchups {
		if _, ok := ds.stationsByID[m.StationID]; !ok {
			// Display anomaly only; the row still renders on charts.
			logger.Warn("matchup references unknown station", zap.String("station_id", m.StationID))
		}
		ds.Matchups = append(ds.Matchups, m)
	}

	ds.ArgoProfiles, err = loadArgoProfiles()
	if err != nil {
		return nil, fmt.Errorf("dataset: load argo profiles: %w", err)
	}

	return ds, nil
}

// FilterArgo returns float radiometry profiles, optionally restricted to one
// float WMO number. Unknown floats yield an empty slice.
func (d *Dataset) FilterArgo(wmo string) []models.ArgoProfile {
	if wmo == "" {
		return d.ArgoProfiles
	}
	out := make([]models.ArgoProfile, 0, len(d.ArgoProfiles))
	for _, p := range d.ArgoProfiles {
		if p.FloatWMO == wmo {
			out = append(out, p)
		}
	}
	return out
}

// Station looks up one station by ID.
func (d *Dataset) Station(id string) (models.Station, bool) {
	st, ok := d.stationsByID[id]
	return st, ok
}

// FilterStations returns stations matching the filter, in date order.
func (d *Dataset) FilterStations(f StationFilter) []models.Station {
	out := make([]models.Station, 0, len(d.Stations))
	for _, st := range d.Stations {
		if f.Region != "" && !strings.EqualFold(st.Region, f.Region) {
			continue
		}
		if !f.From.IsZero() && st.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && st.Date.After(f.To) {
			continue
		}
		out = append(out, st)
	}
	return out
}

// FilterMatchups returns matchups restricted to an optional station and date
// window, in date order.
func (d *Dataset) FilterMatchups(stationID string, from, to time.Time) []models.Matchup {
	out := make([]models.Matchup, 0, len(d.Matchups))
	for _, m := range d.Matchups {
		if stationID != "" && m.StationID != stationID {
			continue
		}
		if !from.IsZero() && m.Date.Before(from) {
			continue
		}
		if !to.IsZero() && m.Date.After(to) {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Summarize computes the Home page headline metrics.
func (d *Dataset) Summarize() Summary {
	regions := make(map[string]struct{})
	categories := make(map[string]struct{})
	var first, last time.Time
	for _, st := range d.Stations {
		regions[st.Region] = struct{}{}
		if first.IsZero() || st.Date.Before(first) {
			first = st.Date
		}
		if last.IsZero() || st.Date.After(last) {
			last = st.Date
		}
	}
	for _, in := range d.Instruments {
		categories[in.Category] = struct{}{}
	}

	days := 0
	if !first.IsZero() {
		days = int(last.Sub(first).Hours()/24) + 1
	}
	return Summary{
		Stations:   len(d.Stations),
		Regions:    len(regions),
		PeriodDays: days,
		Platforms:  len(categories),
		Matchups:   len(d.Matchups),
	}
}

// InstrumentsByCategory returns instrument cards, optionally restricted to one
// category. Unknown categories yield an empty slice.
func (d *Dataset) InstrumentsByCategory(category string) []models.Instrument {
	if category == "" {
		return d.Instruments
	}
	out := make([]models.Instrument, 0, len(d.Instruments))
	for _, in := range d.Instruments {
		if strings.EqualFold(in.Category, category) {
			out = append(out, in)
		}
	}
	return out
}

// region maps the raw location label to one of the three campaign basins.
func region(location string) string {
	switch location {
	case "Norwegian Sea", "Iceland Basin", "Reykjavik, Iceland":
		return "Norwegian Sea"
	case "North Atlantic Ocean", "Atlantic Ocean":
		return "North Atlantic"
	default:
		return "Mediterranean Sea"
	}
}
