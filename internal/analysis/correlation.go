package analysis

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/Ray-Gizzy/2024Fall-projects-Olympic-Effect/internal/config"
)

// Matrix is a symmetric Pearson correlation matrix over named columns.
// Cells are NaN where the coefficient is undefined (zero variance or fewer
// than two paired observations).
type Matrix struct {
	Columns []string
	Values  [][]float64 // row-major, Values[i][j]
}

// At returns the coefficient for the (i, j) column pair.
func (m *Matrix) At(i, j int) float64 { return m.Values[i][j] }

// MarshalJSON serializes undefined cells as null; NaN has no JSON encoding.
func (m Matrix) MarshalJSON() ([]byte, error) {
	rows := make([][]*float64, len(m.Values))
	for i, row := range m.Values {
		rows[i] = make([]*float64, len(row))
		for j := range row {
			if !math.IsNaN(row[j]) {
				v := row[j]
				rows[i][j] = &v
			}
		}
	}
	return json.Marshal(struct {
		Columns []string     `json:"columns"`
		Values  [][]*float64 `json:"values"`
	}{m.Columns, rows})
}

// GroupMatrix is one computed matrix tagged with its country and metric group.
type GroupMatrix struct {
	Country string  `json:"country"` // country tag, e.g. "AUS"
	Group   string  `json:"group"`
	Matrix  *Matrix `json:"matrix"`
}

// Skip records a (country, group) pair that could not be correlated.
type Skip struct {
	Country string `json:"country"`
	Group   string `json:"group"`
	Reason  string `json:"reason"`
}

// MatrixSet holds every computed group matrix plus the pairs that were
// skipped because too few of the group's metrics resolved to columns.
type MatrixSet struct {
	Entries []GroupMatrix `json:"entries"`
	Skipped []Skip        `json:"skipped,omitempty"`
}

// ForCountry returns the computed matrices for one country tag, in the
// configured group order.
func (s *MatrixSet) ForCountry(tag string) []GroupMatrix {
	var out []GroupMatrix
	for _, e := range s.Entries {
		if e.Country == tag {
			out = append(out, e)
		}
	}
	return out
}

// Correlate computes the pairwise Pearson correlation matrix over exactly the
// given columns. If window is non-nil, rows are first filtered to the
// inclusive Relative Year range. Coefficients use pairwise-complete
// observations: rows where either value is missing are dropped per pair.
func Correlate(df dataframe.DataFrame, columns []string, window *config.Window) (*Matrix, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("correlate: no columns requested: %w", ErrInvalidInput)
	}
	for _, c := range columns {
		if !HasColumn(df, c) {
			return nil, fmt.Errorf("correlate: column %q: %w", c, ErrMissingColumn)
		}
	}
	if window != nil {
		if !HasColumn(df, RelativeYearColumn) {
			return nil, fmt.Errorf("correlate: window requested but column %q: %w", RelativeYearColumn, ErrMissingColumn)
		}
		df = df.Filter(dataframe.F{Colname: RelativeYearColumn, Comparator: series.GreaterEq, Comparando: window.From}).
			Filter(dataframe.F{Colname: RelativeYearColumn, Comparator: series.LessEq, Comparando: window.To})
		if df.Error() != nil {
			return nil, fmt.Errorf("correlate: window filter: %w", df.Error())
		}
	}

	vals := make([][]float64, len(columns))
	for i, c := range columns {
		vals[i] = df.Col(c).Float()
	}
	n := len(columns)
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			r := pearson(vals[i], vals[j])
			out[i][j] = r
			out[j][i] = r
		}
	}
	return &Matrix{Columns: append([]string(nil), columns...), Values: out}, nil
}

// pearson computes the Pearson coefficient over pairwise-complete
// observations, NaN when undefined. Results are clamped to [-1, 1] against
// floating-point drift.
func pearson(x, y []float64) float64 {
	var n, sumX, sumY, sumXX, sumYY, sumXY float64
	for i := 0; i < len(x) && i < len(y); i++ {
		a, b := x[i], y[i]
		if math.IsNaN(a) || math.IsNaN(b) {
			continue
		}
		n++
		sumX += a
		sumY += b
		sumXX += a * a
		sumYY += b * b
		sumXY += a * b
	}
	if n < 2 {
		return math.NaN()
	}
	denom := math.Sqrt((n*sumXX - sumX*sumX) * (n*sumYY - sumY*sumY))
	if denom == 0 {
		return math.NaN()
	}
	r := (n*sumXY - sumX*sumY) / denom
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r
}

// CountryMatrices computes one correlation matrix per (country, metric group)
// pair over the merged table. Group metrics resolve to columns as
// {metric}{suffix}; a group where fewer than two metrics resolve is skipped
// for that country and recorded in the result, not treated as an error.
func CountryMatrices(df dataframe.DataFrame, groups []config.MetricGroup, countries []config.Country, window *config.Window) (*MatrixSet, error) {
	set := &MatrixSet{}
	for _, country := range countries {
		for _, group := range groups {
			var cols []string
			for _, metric := range group.Metrics {
				col := MetricColumn(metric, country)
				if HasColumn(df, col) {
					cols = append(cols, col)
				}
			}
			if len(cols) < 2 {
				set.Skipped = append(set.Skipped, Skip{
					Country: country.Tag,
					Group:   group.Name,
					Reason:  fmt.Sprintf("only %d of %d metrics present in merged data", len(cols), len(group.Metrics)),
				})
				continue
			}
			m, err := Correlate(df, cols, window)
			if err != nil {
				return nil, fmt.Errorf("correlate %s/%s: %w", country.Tag, group.Name, err)
			}
			set.Entries = append(set.Entries, GroupMatrix{Country: country.Tag, Group: group.Name, Matrix: m})
		}
	}
	return set, nil
}

// PairCorr is a single correlation pair result.
type PairCorr struct {
	A string  `json:"a"`
	B string  `json:"b"`
	R float64 `json:"r"`
}

// Highlight reports the strongest and weakest off-diagonal coefficient of one
// group matrix.
type Highlight struct {
	Group     string   `json:"group"`
	Strongest PairCorr `json:"strongest"`
	Weakest   PairCorr `json:"weakest"`
}

// Highlights extracts the extremal off-diagonal coefficients per group matrix
// for one country. The diagonal is excluded. Matrices with fewer than two
// columns, or with no finite off-diagonal cell, produce no highlight.
func Highlights(set *MatrixSet, countryTag string) []Highlight {
	var out []Highlight
	for _, e := range set.Entries {
		if e.Country != countryTag || e.Matrix == nil || len(e.Matrix.Columns) < 2 {
			continue
		}
		m := e.Matrix
		var hi, lo PairCorr
		found := false
		for i := 0; i < len(m.Columns); i++ {
			for j := i + 1; j < len(m.Columns); j++ {
				r := m.Values[i][j]
				if math.IsNaN(r) {
					continue
				}
				p := PairCorr{A: m.Columns[i], B: m.Columns[j], R: r}
				if !found {
					hi, lo = p, p
					found = true
					continue
				}
				if r > hi.R {
					hi = p
				}
				if r < lo.R {
					lo = p
				}
			}
		}
		if !found {
			continue
		}
		out = append(out, Highlight{Group: e.Group, Strongest: hi, Weakest: lo})
	}
	return out
}

// PairCorrelation computes the Pearson coefficient between two columns over
// the whole table (no window). An undefined coefficient is an error here,
// unlike the NaN cells inside matrices, because a single-pair query has no
// useful partial result.
func PairCorrelation(df dataframe.DataFrame, colA, colB string) (float64, error) {
	for _, c := range []string{colA, colB} {
		if !HasColumn(df, c) {
			return 0, fmt.Errorf("pair correlation: column %q: %w", c, ErrMissingColumn)
		}
	}
	r := pearson(df.Col(colA).Float(), df.Col(colB).Float())
	if math.IsNaN(r) {
		return 0, fmt.Errorf("pair correlation %s ~ %s: %w", colA, colB, ErrUndefinedCorrelation)
	}
	return r, nil
}
