package service

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"oceanpanel/internal/dataset"
)

func newTestPanel(t *testing.T) *Panel {
	t.Helper()
	ds, err := dataset.Load(zap.NewNop())
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	return NewPanel(ds, zap.NewNop())
}

func TestMatchupStatsBothAlgorithms(t *testing.T) {
	panel := newTestPanel(t)

	results, err := panel.MatchupStats("", MatchupFilter{})
	if err != nil {
		t.Fatalf("MatchupStats: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	for _, res := range results {
		if res.Insufficient {
			t.Errorf("%s: unexpected insufficient flag", res.Algorithm)
			continue
		}
		if res.Stats.N < 3 {
			t.Errorf("%s: n = %d, want >= 3", res.Algorithm, res.Stats.N)
		}
		if res.Stats.R2 < 0 || res.Stats.R2 > 1 {
			t.Errorf("%s: r2 = %v outside [0, 1]", res.Algorithm, res.Stats.R2)
		}
		if res.Stats.RMSE <= 0 {
			t.Errorf("%s: rmse = %v, want > 0", res.Algorithm, res.Stats.RMSE)
		}
	}
}

func TestMatchupStatsUnknownAlgorithm(t *testing.T) {
	panel := newTestPanel(t)

	if _, err := panel.MatchupStats("oc5", MatchupFilter{}); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Fatalf("err = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestMatchupStatsNarrowFilterInsufficient(t *testing.T) {
	panel := newTestPanel(t)

	// One station has at most a couple of matchup rows.
	results, err := panel.MatchupStats(AlgorithmOC4ME, MatchupFilter{StationID: "10"})
	if err != nil {
		t.Fatalf("MatchupStats: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if !results[0].Insufficient {
		t.Error("expected insufficient flag for a single-station filter")
	}
	if results[0].Stats != nil {
		t.Error("stats should be nil when insufficient")
	}
}

func TestMatchupsNullableValues(t *testing.T) {
	panel := newTestPanel(t)

	// Station 10 has no NN retrieval in the bundled table.
	rows, err := panel.Matchups(MatchupFilter{StationID: "10"})
	if err != nil {
		t.Fatalf("Matchups: %v", err)
	}
	if len(rows) == 0 {
		t.Fatal("no matchups for station 10")
	}
	for _, m := range rows {
		if m.NN != nil {
			t.Errorf("station 10 NN = %v, want nil", *m.NN)
		}
		if m.OC4ME == nil || m.InSitu == nil {
			t.Error("station 10 OC4ME and in-situ should be present")
		}
	}
}

func TestMatchupsAlgorithmFilter(t *testing.T) {
	panel := newTestPanel(t)

	all, err := panel.Matchups(MatchupFilter{})
	if err != nil {
		t.Fatalf("Matchups: %v", err)
	}
	nn, err := panel.Matchups(MatchupFilter{Algorithm: AlgorithmNN})
	if err != nil {
		t.Fatalf("Matchups: %v", err)
	}
	if len(nn) >= len(all) {
		t.Errorf("nn rows = %d, all rows = %d, want fewer nn", len(nn), len(all))
	}
	for _, m := range nn {
		if m.NN == nil {
			t.Errorf("station %s kept without an NN retrieval", m.StationID)
		}
	}

	if _, err := panel.Matchups(MatchupFilter{Algorithm: "oc5"}); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("err = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestErrorMapSkipsMissingRetrievals(t *testing.T) {
	panel := newTestPanel(t)

	oc4me, err := panel.ErrorMap(AlgorithmOC4ME)
	if err != nil {
		t.Fatalf("ErrorMap: %v", err)
	}
	nn, err := panel.ErrorMap(AlgorithmNN)
	if err != nil {
		t.Fatalf("ErrorMap: %v", err)
	}
	if len(oc4me) == 0 || len(nn) == 0 {
		t.Fatal("empty error maps")
	}
	// The NN product has missing retrievals, so its map is strictly smaller.
	if len(nn) >= len(oc4me) {
		t.Errorf("nn points = %d, oc4me points = %d, want fewer nn", len(nn), len(oc4me))
	}
	for _, pt := range nn {
		if pt.StationID == "10" || pt.StationID == "23" {
			t.Errorf("station %s has no NN retrieval but appears on the map", pt.StationID)
		}
	}

	if _, err := panel.ErrorMap(""); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("empty algorithm err = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestTimeSeriesInDateOrder(t *testing.T) {
	panel := newTestPanel(t)

	points := panel.TimeSeries()
	if len(points) == 0 {
		t.Fatal("no time series points")
	}
	for i := 1; i < len(points); i++ {
		if points[i].Date.Before(points[i-1].Date) {
			t.Errorf("points not in date order at index %d", i)
		}
	}
}

func TestArgoProfilesFilter(t *testing.T) {
	panel := newTestPanel(t)

	all := panel.ArgoProfiles("")
	if len(all) == 0 {
		t.Fatal("no argo profiles")
	}
	one := panel.ArgoProfiles("5906995")
	if len(one) == 0 || len(one) >= len(all) {
		t.Fatalf("float filter returned %d of %d profiles", len(one), len(all))
	}
	for _, p := range one {
		if p.FloatWMO != "5906995" {
			t.Errorf("profile float = %q", p.FloatWMO)
		}
	}
	if got := panel.ArgoProfiles("none"); len(got) != 0 {
		t.Errorf("unknown float returned %d profiles", len(got))
	}
}

func TestStationDetail(t *testing.T) {
	panel := newTestPanel(t)

	detail, err := panel.Station("12")
	if err != nil {
		t.Fatalf("Station: %v", err)
	}
	if detail.Station.ID != "12" {
		t.Errorf("station id = %q", detail.Station.ID)
	}
	if len(detail.Matchups) == 0 {
		t.Error("station 12 should carry matchup rows")
	}

	if _, err := panel.Station("nope"); !errors.Is(err, ErrStationNotFound) {
		t.Errorf("err = %v, want ErrStationNotFound", err)
	}
}

func TestStationsDateFilter(t *testing.T) {
	panel := newTestPanel(t)

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	got := panel.Stations(dataset.StationFilter{From: from})
	if len(got) != 1 {
		t.Fatalf("stations from June = %d, want 1", len(got))
	}
	if got[0].ID != "30" {
		t.Errorf("station id = %q, want 30", got[0].ID)
	}
}
