package dataset

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"oceanpanel/internal/models"
)

//go:embed argo_rrs.csv
var argoCSV string

// loadArgoProfiles parses the bundled float radiometry table and groups the
// per-wavelength rows into one spectrum per (float, profile date). Profiles
// come out ordered by float then date, points by wavelength.
func loadArgoProfiles() ([]models.ArgoProfile, error) {
	r := csv.NewReader(strings.NewReader(argoCSV))
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, nil
	}

	type key struct {
		wmo  string
		date time.Time
	}
	grouped := make(map[key][]models.RrsPoint)
	order := make([]key, 0)

	for i, row := range rows[1:] {
		if len(row) != 4 {
			return nil, fmt.Errorf("row %d: expected 4 columns, got %d", i+2, len(row))
		}
		date, err := time.Parse("2006-01-02", row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		wavelength, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: wavelength: %w", i+2, err)
		}
		rrs, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: rrs: %w", i+2, err)
		}
		if rrs < 0 {
			return nil, fmt.Errorf("row %d: negative reflectance %v", i+2, rrs)
		}

		k := key{wmo: row[0], date: date}
		if _, seen := grouped[k]; !seen {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], models.RrsPoint{Wavelength: wavelength, Rrs: rrs})
	}

	sort.Slice(order, func(i, j int) bool {
		if order[i].wmo != order[j].wmo {
			return order[i].wmo < order[j].wmo
		}
		return order[i].date.Before(order[j].date)
	})

	out := make([]models.ArgoProfile, 0, len(order))
	for _, k := range order {
		points := grouped[k]
		sort.Slice(points, func(i, j int) bool { return points[i].Wavelength < points[j].Wavelength })
		out = append(out, models.ArgoProfile{FloatWMO: k.wmo, Date: k.date, Points: points})
	}
	return out, nil
}
