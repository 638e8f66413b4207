package models

import "time"

// Matchup pairs satellite chlorophyll retrievals with the coincident in-situ
// measurement at one station. Values are mg m⁻³, precomputed outside this
// system; a NaN marks a retrieval that is missing for that station.
type Matchup struct {
	StationID string    `json:"station_id"`
	Date      time.Time `json:"date"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	OC4ME     float64   `json:"chl_oc4me"`
	NN        float64   `json:"chl_nn"`
	InSitu    float64   `json:"chl_insitu"`
}
