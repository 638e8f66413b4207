package models

import "time"

// Station is one sampling station of the campaign. Loaded once at startup,
// never mutated afterwards.
type Station struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Date         time.Time `json:"date"`
	Lat          float64   `json:"lat"`
	Lon          float64   `json:"lon"`
	Location     string    `json:"location"`
	Region       string    `json:"region"`
	Measurements []string  `json:"measurements"`
}
