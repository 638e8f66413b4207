package dataset

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"oceanpanel/internal/models"
)

//go:embed matchups.csv
var matchupCSV string

// loadMatchups parses the bundled matchup table. An empty numeric cell marks a
// retrieval that was not available for that station and becomes NaN so the
// statistics layer can drop the pair.
func loadMatchups() ([]models.Matchup, error) {
	r := csv.NewReader(strings.NewReader(matchupCSV))
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, nil
	}

	out := make([]models.Matchup, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != 7 {
			return nil, fmt.Errorf("row %d: expected 7 columns, got %d", i+2, len(row))
		}
		date, err := time.Parse("2006-01-02", row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		lat, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: lat: %w", i+2, err)
		}
		lon, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: lon: %w", i+2, err)
		}
		oc4me, err := parseChl(row[4])
		if err != nil {
			return nil, fmt.Errorf("row %d: oc4me: %w", i+2, err)
		}
		nn, err := parseChl(row[5])
		if err != nil {
			return nil, fmt.Errorf("row %d: nn: %w", i+2, err)
		}
		insitu, err := parseChl(row[6])
		if err != nil {
			return nil, fmt.Errorf("row %d: insitu: %w", i+2, err)
		}

		out = append(out, models.Matchup{
			StationID: row[0],
			Date:      date,
			Lat:       lat,
			Lon:       lon,
			OC4ME:     oc4me,
			NN:        nn,
			InSitu:    insitu,
		})
	}
	return out, nil
}

func parseChl(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(cell, 64)
}
