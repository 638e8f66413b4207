package dataset

import (
	"fmt"
	"time"

	"oceanpanel/internal/models"
)

// stationRecord mirrors Supplementary Table 1 of the campaign final report.
// Dates are day/month/year as printed in the report and parsed at load.
type stationRecord struct {
	id           string
	name         string
	date         string
	lat          float64
	lon          float64
	location     string
	measurements []string
}

func (r stationRecord) toStation() (models.Station, error) {
	d, err := time.Parse("2/1/2006", r.date)
	if err != nil {
		return models.Station{}, fmt.Errorf("parse date %q: %w", r.date, err)
	}
	if r.lat < -90 || r.lat > 90 {
		return models.Station{}, fmt.Errorf("latitude %v out of range", r.lat)
	}
	if r.lon < -180 || r.lon > 180 {
		return models.Station{}, fmt.Errorf("longitude %v out of range", r.lon)
	}
	return models.Station{
		ID:           r.id,
		Name:         r.name,
		Date:         d,
		Lat:          r.lat,
		Lon:          r.lon,
		Location:     r.location,
		Region:       region(r.location),
		Measurements: r.measurements,
	}, nil
}

func stationTable() []stationRecord {
	return []stationRecord{
		{"1", "Station 1", "23/4/2025", 69.90, 12.86, "Norwegian Sea",
			[]string{"HPLC Chl-a*", "Fluorimetric Chl-a", "Absorption Chl-a", "SPM*", "POC*", "SBE CTD", "Drone data"}},
		{"2", "Station 2", "24/4/2025", 69.81, 8.54, "Norwegian Sea",
			[]string{"Fluorimetric Chl-a", "Absorption Chl-a", "Absorption CDOM*", "SPM*", "POC*", "SBE CTD", "Drone data"}},
		{"4", "Station 4", "25/4/2025", 69.61, 1.91, "Norwegian Sea",
			[]string{"HPLC Chl-a*", "Fluorimetric Chl-a", "Absorption Chl-a", "Absorption CDOM*", "SPM*", "POC*", "SBE CTD", "Drone data"}},
		{"5", "Station 5", "26/4/2025", 69.27, 1.64, "Norwegian Sea",
			[]string{"Absorption Chl-a", "Absorption CDOM*", "SPM*", "POC*", "SBE CTD"}},
		{"6", "Station 6", "26/4/2025", 69.01, 1.53, "Norwegian Sea",
			[]string{"HPLC Chl-a*", "Fluorimetric Chl-a", "Absorption Chl-a", "SPM*", "POC*", "SBE CTD", "Drone data"}},
		{"7", "Station 7", "28/4/2025", 67.99, -7.10, "Norwegian Sea",
			[]string{"HPLC Chl-a*", "Fluorimetric Chl-a", "Absorption Chl-a", "Absorption CDOM*", "SPM*", "SBE CTD", "Drone data"}},
		{"8", "Station 8", "29/4/2025", 67.39, -11.86, "Iceland Basin",
			[]string{"HPLC Chl-a*", "Fluorimetric Chl-a", "Absorption Chl-a", "Absorption CDOM*", "SPM*", "POC*"}},
		{"9A", "Station 9A", "1/5/2025", 66.88, -18.03, "Iceland Basin",
			[]string{"HPLC Chl-a*", "Fluorimetric Chl-a", "Absorption Chl-a", "Absorption CDOM*", "SPM*", "POC*"}},
		{"9B", "Station 9B", "1/5/2025", 66.80, -18.28, "Iceland Basin",
			[]string{"HPLC Chl-a*", "Fluorimetric Chl-a", "Absorption Chl-a", "Absorption CDOM*", "SPM*", "POC*"}},
		{"10", "Station 10", "2/5/2025", 66.71, -20.85, "Iceland Basin",
			[]string{"HPLC Chl-a*", "Fluorimetric Chl-a", "SPM*"}},
		{"11A.2", "Station 11A.2", "3/5/2025", 66.28, -21.31, "Reykjavik, Iceland",
			[]string{"HPLC Chl-a*", "Fluorimetric Chl-a", "Absorption Chl-a", "Absorption CDOM*", "SPM*", "POC*", "Drone data", "Satellite data"}},
		{"11B", "Station 11B", "3/5/2025", 66.27, -22.69, "Reykjavik, Iceland",
			[]string{"HPLC Chl-a*", "Fluorimetric Chl-a", "Absorption Chl-a", "Absorption CDOM*", "SPM*", "POC*", "Drone data", "Satellite data"}},
		{"12", "Station 12", "10/5/2025", 61.99, -18.20, "North Atlantic Ocean",
			[]string{"HPLC Chl-a*", "Fluorimetric Chl-a (x3)", "Absorption Chl-a", "Absorption CDOM*", "SPM*", "POC*", "SBE CTD", "Drone data"}},
		{"13", "Station 13", "11/5/2025", 60.23, -17.27, "North Atlantic Ocean",
			[]string{"HPLC Chl-a (5m)*", "Fluorimetric Chl-a (x3)", "Absorption Chl-a", "Absorption CDOM*", "SPM*", "POC*", "SBE CTD", "Drone data"}},
		{"14", "Station 14", "12/5/2025", 59.28, -16.49, "North Atlantic Ocean",
			[]string{"HPLC Chl-a (x3)*", "Fluorimetric Chl-a (x3)", "Absorption Chl-a", "SPM*", "POC*", "SBE CTD", "Drone data"}},
		{"Int", "Station Int", "13/5/2025", 57.44, -15.47, "North Atlantic Ocean",
			[]string{"Fluorimetric Chl-a (x3)", "Absorption Chl-a", "SPM*", "POC*", "Drone data", "Satellite data"}},
		{"15", "Station 15", "14/5/2025", 54.88, -16.95, "North Atlantic Ocean",
			[]string{"HPLC Chl-a (2m)*", "Fluorimetric Chl-a (x3)", "Absorption Chl-a", "SPM*", "POC*", "SBE CTD", "Drone data", "Satellite data"}},
		{"16", "Station 16", "15/5/2025", 53.35, -16.38, "North Atlantic Ocean",
			[]string{"HPLC Chl-a (2m)*", "Fluorimetric Chl-a (x3)", "Absorption Chl-a", "Absorption CDOM*", "SPM*", "POC*", "SBE CTD", "Drone data"}},
		{"17", "Station 17", "16/5/2025", 51.52, -17.17, "North Atlantic Ocean",
			[]string{"HPLC Chl-a*", "Fluorimetric Chl-a (x3)", "Absorption Chl-a", "SPM*", "POC*", "SBE CTD", "Drone data"}},
		{"18", "Station 18", "18/5/2025", 48.83, -16.37, "North Atlantic Ocean",
			[]string{"HPLC Chl-a (3m)*", "Fluorimetric Chl-a (x3)", "Absorption Chl-a", "Absorption CDOM*", "SPM*", "POC*", "SBE CTD", "Drone data"}},
		{"19", "Station 19", "20/5/2025", 45.06, -12.35, "North Atlantic Ocean",
			[]string{"Absorption Chl-a", "Absorption CDOM*", "SPM*", "POC*", "SBE CTD", "Drone data"}},
		{"20", "Station 20", "22/5/2025", 41.53, -9.11, "North Atlantic Ocean",
			[]string{"HPLC Chl-a*", "Fluorimetric Chl-a (x3)", "Absorption Chl-a", "Absorption CDOM*", "SPM*", "POC*", "SBE CTD", "Drone data", "Satellite data"}},
		{"21", "Station 21", "23/5/2025", 38.54, -10.53, "Atlantic Ocean",
			[]string{"HPLC Chl-a*", "Fluorimetric Chl-a (x3)", "Absorption Chl-a", "Absorption CDOM*", "SPM*", "POC*", "SBE CTD", "Drone data"}},
		{"22", "Station 22", "24/5/2025", 36.13, -10.53, "Atlantic Ocean",
			[]string{"HPLC Chl-a*", "Fluorimetric Chl-a (x3)", "Absorption Chl-a", "Absorption CDOM*", "SPM*", "POC*", "SBE CTD", "Drone data", "Satellite data"}},
		{"23", "Station 23", "25/5/2025", 36.97, -7.17, "Mediterranean Sea",
			[]string{"SPM*", "SBE CTD", "Drone data", "Satellite data"}},
		{"24", "Station 24", "26/5/2025", 35.81, -6.85, "Mediterranean Sea",
			[]string{"HPLC Chl-a*", "Fluorimetric Chl-a (x3)", "Absorption Chl-a", "Absorption CDOM*", "SPM*", "POC*", "SBE CTD", "Drone data"}},
		{"25", "Station 25", "27/5/2025", 35.92, -4.84, "Mediterranean Sea",
			[]string{"HPLC Chl-a*", "Fluorimetric Chl-a (x3)", "SPM*", "SBE CTD", "Drone data", "Satellite data"}},
		{"26", "Station 26", "28/5/2025", 35.65, -0.04, "Mediterranean Sea",
			[]string{"Absorption Chl-a", "Absorption CDOM*", "SPM*", "POC*", "SBE CTD"}},
		{"27", "Station 27", "29/5/2025", 37.60, 0.15, "Mediterranean Sea",
			[]string{"HPLC Chl-a*", "Absorption Chl-a", "Absorption CDOM*", "SPM*", "POC*", "SBE CTD"}},
		{"28", "Station 28", "30/5/2025", 38.88, 2.92, "Mediterranean Sea",
			[]string{"Absorption Chl-a", "Absorption CDOM*", "SPM*", "POC*", "SBE CTD"}},
		{"30", "Station 30", "2/6/2025", 41.21, 5.75, "Nice, France",
			[]string{"HPLC Chl-a*", "Absorption Chl-a", "Absorption CDOM*", "SPM*", "POC*", "SBE CTD"}},
	}
}

func abbreviationTable() map[string]string {
	return map[string]string{
		"HPLC":    "High-Performance Liquid Chromatography",
		"Chl-a":   "Chlorophyll-a",
		"TSPM":    "Total Suspended Particulate Matter",
		"Fluor":   "Fluorimetric",
		"Abs":     "Absorption",
		"CDOM":    "Colored Dissolved Organic Matter",
		"SPM":     "Suspended Particulate Matter",
		"POC":     "Particulate Organic Carbon",
		"SBE CTD": "Sea-Bird Electronics Conductivity-Temperature-Depth sensor",
		"Sat":     "Satellite",
	}
}
