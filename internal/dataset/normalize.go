package dataset

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/Ray-Gizzy/2024Fall-projects-Olympic-Effect/internal/analysis"
)

// NormalizeOptions controls how a raw country table is prepared.
type NormalizeOptions struct {
	// Rename maps raw export headers to canonical column names, applied
	// after header whitespace trimming.
	Rename map[string]string
	// HostYear is the zero point of the Relative Year axis.
	HostYear int
	// Metric is the column growth rates are computed on.
	Metric string
}

// Normalize prepares one country's table for cross-country comparison: trims
// and renames headers, sorts ascending by Year when the export is
// newest-first, attaches the Growth Rate (%) column, and derives
// Relative Year = Year - HostYear. It returns a new frame; the input is left
// untouched.
//
// Growth rate is always computed before Relative Year, on the ascending
// order, because GrowthRates assumes its input is time-sorted.
func Normalize(df dataframe.DataFrame, opt NormalizeOptions) (dataframe.DataFrame, error) {
	if opt.Metric == "" {
		return dataframe.DataFrame{}, fmt.Errorf("normalize: no metric column given: %w", analysis.ErrInvalidInput)
	}
	if df.Nrow() == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("normalize: empty table: %w", analysis.ErrInvalidInput)
	}

	out := df.Copy()
	names := out.Names()
	trimmed := make([]string, len(names))
	for i, n := range names {
		trimmed[i] = strings.TrimSpace(n)
	}
	if err := out.SetNames(trimmed...); err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("normalize: trim headers: %w", err)
	}
	for from, to := range opt.Rename {
		if analysis.HasColumn(out, from) {
			out = out.Rename(to, from)
			if out.Error() != nil {
				return dataframe.DataFrame{}, fmt.Errorf("normalize: rename %q: %w", from, out.Error())
			}
		}
	}

	if !analysis.HasColumn(out, analysis.YearColumn) {
		return dataframe.DataFrame{}, fmt.Errorf("normalize: column %q: %w", analysis.YearColumn, analysis.ErrMissingColumn)
	}
	if !analysis.HasColumn(out, opt.Metric) {
		return dataframe.DataFrame{}, fmt.Errorf("normalize: column %q: %w", opt.Metric, analysis.ErrMissingColumn)
	}

	years := out.Col(analysis.YearColumn).Float()
	for i, y := range years {
		if math.IsNaN(y) {
			return dataframe.DataFrame{}, fmt.Errorf("normalize: non-numeric Year at row %d: %w", i, analysis.ErrInvalidInput)
		}
	}
	// Exports frequently arrive newest-first; growth rates need ascending
	// order, so this check must run before GrowthRates.
	if len(years) > 1 && years[0] > years[len(years)-1] {
		out = out.Arrange(dataframe.Sort(analysis.YearColumn))
		if out.Error() != nil {
			return dataframe.DataFrame{}, fmt.Errorf("normalize: sort by year: %w", out.Error())
		}
		years = out.Col(analysis.YearColumn).Float()
	}

	growth, err := analysis.GrowthRates(out.Col(opt.Metric).Float())
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("normalize %q: %w", opt.Metric, err)
	}
	out = out.Mutate(series.New(growth, series.Float, analysis.GrowthRateColumn))
	if out.Error() != nil {
		return dataframe.DataFrame{}, fmt.Errorf("normalize: attach growth rate: %w", out.Error())
	}

	rel := make([]int, len(years))
	for i, y := range years {
		rel[i] = int(y) - opt.HostYear
	}
	out = out.Mutate(series.New(rel, series.Int, analysis.RelativeYearColumn))
	if out.Error() != nil {
		return dataframe.DataFrame{}, fmt.Errorf("normalize: attach relative year: %w", out.Error())
	}
	return out, nil
}
