package models

// Instrument categories shown on the Methodologies page.
const (
	CategoryInSitu     = "in-situ"
	CategoryInline     = "inline"
	CategorySatellite  = "satellite"
	CategoryAutonomous = "autonomous"
	CategoryDrone      = "drone"
)

// Instrument is one static card on the Methodologies page.
type Instrument struct {
	Name         string   `json:"name"`
	Manufacturer string   `json:"manufacturer"`
	Category     string   `json:"category"`
	Measures     string   `json:"measures"`
	Specs        []string `json:"specs"`
	Summary      string   `json:"summary"`
	Image        string   `json:"image,omitempty"`
}
