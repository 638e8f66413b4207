package models

import "time"

// RrsPoint is one wavelength sample of a remote sensing reflectance spectrum.
// Rrs is in sr⁻¹.
type RrsPoint struct {
	Wavelength float64 `json:"wavelength_nm"`
	Rrs        float64 `json:"rrs_sr"`
}

// ArgoProfile is one radiometry profile from a hyperspectral BGC-Argo float:
// the Rrs spectrum derived from its upward light measurements near the
// surface. Precomputed outside this system and bundled with the binary.
type ArgoProfile struct {
	FloatWMO string     `json:"float_wmo"`
	Date     time.Time  `json:"date"`
	Points   []RrsPoint `json:"points"`
}
