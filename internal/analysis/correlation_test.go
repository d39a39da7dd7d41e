package analysis

import (
	"encoding/json"
	"math"
	"math/rand"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/require"

	"github.com/Ray-Gizzy/2024Fall-projects-Olympic-Effect/internal/config"
)

func frameOf(cols map[string][]float64, order []string) dataframe.DataFrame {
	ss := make([]series.Series, 0, len(order))
	for _, name := range order {
		ss = append(ss, series.New(cols[name], series.Float, name))
	}
	return dataframe.New(ss...)
}

func TestCorrelateIdenticalColumns(t *testing.T) {
	df := frameOf(map[string][]float64{
		"A": {1, 2, 3, 4},
		"B": {1, 2, 3, 4},
	}, []string{"A", "B"})

	m, err := Correlate(df, []string{"A", "B"}, nil)
	require.NoError(t, err)
	require.InDelta(t, 1.0, m.At(0, 1), 1e-12)
	require.InDelta(t, 1.0, m.At(0, 0), 1e-12)
	require.Equal(t, m.At(0, 1), m.At(1, 0))
}

func TestCorrelatePerfectInverse(t *testing.T) {
	df := frameOf(map[string][]float64{
		"A": {1, 2, 3, 4},
		"B": {8, 6, 4, 2},
	}, []string{"A", "B"})

	m, err := Correlate(df, []string{"A", "B"}, nil)
	require.NoError(t, err)
	require.InDelta(t, -1.0, m.At(0, 1), 1e-12)
}

func TestCorrelateZeroVarianceIsNaN(t *testing.T) {
	df := frameOf(map[string][]float64{
		"A": {1, 2, 3, 4},
		"B": {5, 5, 5, 5},
	}, []string{"A", "B"})

	m, err := Correlate(df, []string{"A", "B"}, nil)
	require.NoError(t, err)
	require.True(t, math.IsNaN(m.At(0, 1)))
}

func TestCorrelateMissingColumn(t *testing.T) {
	df := frameOf(map[string][]float64{"A": {1, 2}}, []string{"A"})
	_, err := Correlate(df, []string{"A", "Nope"}, nil)
	require.ErrorIs(t, err, ErrMissingColumn)
}

func TestCorrelatePairwiseCompleteSkipsMissing(t *testing.T) {
	df := frameOf(map[string][]float64{
		"A": {1, 2, math.NaN(), 4, 5},
		"B": {2, 4, 100, 8, 10},
	}, []string{"A", "B"})

	m, err := Correlate(df, []string{"A", "B"}, nil)
	require.NoError(t, err)
	require.InDelta(t, 1.0, m.At(0, 1), 1e-12)
}

func TestCorrelateWindowFiltersRows(t *testing.T) {
	ss := []series.Series{
		series.New([]int{-10, -1, 0, 1, 10}, series.Int, RelativeYearColumn),
		// Inside the window A and B move together; the outliers at the
		// edges would break the correlation if included.
		series.New([]float64{100, 1, 2, 3, -100}, series.Float, "A"),
		series.New([]float64{-100, 2, 4, 6, 100}, series.Float, "B"),
	}
	df := dataframe.New(ss...)

	m, err := Correlate(df, []string{"A", "B"}, &config.Window{From: -5, To: 5})
	require.NoError(t, err)
	require.InDelta(t, 1.0, m.At(0, 1), 1e-12)
}

func TestCorrelateUncorrelatedNoise(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 500
	a := make([]float64, n)
	b := make([]float64, n)
	for i := range a {
		a[i] = rng.NormFloat64()
		b[i] = rng.NormFloat64()
	}
	df := frameOf(map[string][]float64{"A": a, "B": b}, []string{"A", "B"})

	m, err := Correlate(df, []string{"A", "B"}, nil)
	require.NoError(t, err)
	require.Less(t, math.Abs(m.At(0, 1)), 0.2)
}

func TestCountryMatricesSkipsThinGroups(t *testing.T) {
	df := frameOf(map[string][]float64{
		"GDP_per_capita_AUS": {1, 2, 3},
		"FDI_AUS":            {2, 4, 6},
		"GDP_per_capita_CHI": {1, 2, 3},
	}, []string{"GDP_per_capita_AUS", "FDI_AUS", "GDP_per_capita_CHI"})

	groups := []config.MetricGroup{
		{Name: "Economic", Metrics: []string{"GDP_per_capita", "FDI"}},
	}
	countries := []config.Country{
		{Name: "Australia", Tag: "AUS", Suffix: "_AUS", HostYear: 2000},
		{Name: "China", Tag: "CHI", Suffix: "_CHI", HostYear: 2008},
	}

	set, err := CountryMatrices(df, groups, countries, nil)
	require.NoError(t, err)
	require.Len(t, set.Entries, 1)
	require.Equal(t, "AUS", set.Entries[0].Country)
	require.Len(t, set.Skipped, 1)
	require.Equal(t, "CHI", set.Skipped[0].Country)
	require.Equal(t, "Economic", set.Skipped[0].Group)
}

func TestHighlightsExtremalPairs(t *testing.T) {
	set := &MatrixSet{Entries: []GroupMatrix{{
		Country: "AUS",
		Group:   "Economic",
		Matrix: &Matrix{
			Columns: []string{"A", "B", "C"},
			Values: [][]float64{
				{1, 0.9, -0.5},
				{0.9, 1, 0.1},
				{-0.5, 0.1, 1},
			},
		},
	}}}

	hs := Highlights(set, "AUS")
	require.Len(t, hs, 1)
	require.Equal(t, PairCorr{A: "A", B: "B", R: 0.9}, hs[0].Strongest)
	require.Equal(t, PairCorr{A: "A", B: "C", R: -0.5}, hs[0].Weakest)
}

func TestHighlightsSkipsSingleColumnMatrix(t *testing.T) {
	set := &MatrixSet{Entries: []GroupMatrix{{
		Country: "CHI",
		Group:   "Environmental",
		Matrix:  &Matrix{Columns: []string{"MtCO2e_CHI"}, Values: [][]float64{{1}}},
	}}}
	require.Empty(t, Highlights(set, "CHI"))
}

func TestHighlightsSkipsAllNaNMatrix(t *testing.T) {
	nan := math.NaN()
	set := &MatrixSet{Entries: []GroupMatrix{{
		Country: "AUS",
		Group:   "Economic",
		Matrix: &Matrix{
			Columns: []string{"A", "B"},
			Values:  [][]float64{{1, nan}, {nan, 1}},
		},
	}}}
	require.Empty(t, Highlights(set, "AUS"))
}

func TestMatrixJSONRendersNaNAsNull(t *testing.T) {
	m := &Matrix{
		Columns: []string{"A", "B"},
		Values:  [][]float64{{1, math.NaN()}, {math.NaN(), 1}},
	}
	b, err := json.Marshal(m)
	require.NoError(t, err)
	require.Contains(t, string(b), "null")
	require.NotContains(t, string(b), "NaN")
}

func TestPairCorrelationUndefined(t *testing.T) {
	df := frameOf(map[string][]float64{
		"A": {1, 2, 3},
		"B": {5, 5, 5},
	}, []string{"A", "B"})

	_, err := PairCorrelation(df, "A", "B")
	require.ErrorIs(t, err, ErrUndefinedCorrelation)
}

func TestPairCorrelationMissingColumn(t *testing.T) {
	df := frameOf(map[string][]float64{"A": {1, 2}}, []string{"A"})
	_, err := PairCorrelation(df, "A", "B")
	require.ErrorIs(t, err, ErrMissingColumn)
}
