package dataset

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/Ray-Gizzy/2024Fall-projects-Olympic-Effect/internal/analysis"
	"github.com/Ray-Gizzy/2024Fall-projects-Olympic-Effect/internal/config"
)

func metricTable(rel []int, metric string, vals []float64) dataframe.DataFrame {
	return dataframe.New(
		series.New(rel, series.Int, analysis.RelativeYearColumn),
		series.New(vals, series.Float, metric),
	)
}

func testCountries() []config.Country {
	return []config.Country{
		{Name: "Australia", Tag: "AUS", Suffix: "_AUS", HostYear: 2000},
		{Name: "China", Tag: "CHI", Suffix: "_CHI", HostYear: 2008},
	}
}

func TestMergeAnchorsOnFirstMetric(t *testing.T) {
	tables := map[string]CountryTables{
		"GDP": {
			"AUS": metricTable([]int{-1, 0, 1}, "GDP", []float64{10, 20, 30}),
			"CHI": metricTable([]int{-1, 0, 1}, "GDP", []float64{1, 2, 3}),
		},
		"FDI": {
			// Covers only part of the anchor range, and one extra year
			// the anchor does not have.
			"AUS": metricTable([]int{0, 1, 2}, "FDI", []float64{5, 6, 7}),
			"CHI": metricTable([]int{-1, 0, 1}, "FDI", []float64{8, 9, 10}),
		},
	}

	merged, skips, err := Merge([]string{"GDP", "FDI"}, tables, testCountries())
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if len(skips) != 0 {
		t.Fatalf("unexpected skips: %v", skips)
	}
	if merged.Nrow() != 3 {
		t.Fatalf("anchor rows = %d, want 3 (relative year 2 must not add a row)", merged.Nrow())
	}
	for _, col := range []string{"GDP_AUS", "GDP_CHI", "FDI_AUS", "FDI_CHI"} {
		if !analysis.HasColumn(merged, col) {
			t.Fatalf("column %q missing, have %v", col, merged.Names())
		}
	}
	// FDI_AUS has no observation at relative year -1, so the joined cell
	// must be missing.
	rel := merged.Col(analysis.RelativeYearColumn).Float()
	fdi := merged.Col("FDI_AUS").Float()
	for i, r := range rel {
		if r == -1 && !math.IsNaN(fdi[i]) {
			t.Fatalf("FDI_AUS at relative year -1 = %v, want NaN", fdi[i])
		}
		if r == 0 && fdi[i] != 5 {
			t.Fatalf("FDI_AUS at relative year 0 = %v, want 5", fdi[i])
		}
	}
}

func TestMergeSkipsMissingTables(t *testing.T) {
	tables := map[string]CountryTables{
		"GDP": {
			"AUS": metricTable([]int{0, 1}, "GDP", []float64{1, 2}),
		},
	}

	merged, skips, err := Merge([]string{"GDP", "FDI"}, tables, testCountries())
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if !analysis.HasColumn(merged, "GDP_AUS") {
		t.Fatalf("anchor column missing, have %v", merged.Names())
	}
	// CHI has no GDP table and the FDI metric is absent entirely.
	if len(skips) != 2 {
		t.Fatalf("skips = %v, want 2 entries", skips)
	}
}

func TestMergeSkipsTableWithoutMetricColumn(t *testing.T) {
	tables := map[string]CountryTables{
		"GDP": {
			"AUS": metricTable([]int{0, 1}, "GDP", []float64{1, 2}),
			"CHI": metricTable([]int{0, 1}, "SomethingElse", []float64{1, 2}),
		},
	}

	merged, skips, err := Merge([]string{"GDP"}, tables, testCountries())
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if analysis.HasColumn(merged, "GDP_CHI") {
		t.Fatalf("GDP_CHI should have been skipped")
	}
	if len(skips) != 1 || skips[0].Country != "CHI" {
		t.Fatalf("skips = %v, want one CHI entry", skips)
	}
}

func TestMergeNoMetrics(t *testing.T) {
	_, _, err := Merge(nil, map[string]CountryTables{}, testCountries())
	if !errors.Is(err, analysis.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMergeNothingMergeable(t *testing.T) {
	_, _, err := Merge([]string{"GDP"}, map[string]CountryTables{}, testCountries())
	if !errors.Is(err, analysis.ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
}
