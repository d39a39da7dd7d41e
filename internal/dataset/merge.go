package dataset

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"

	"github.com/Ray-Gizzy/2024Fall-projects-Olympic-Effect/internal/analysis"
	"github.com/Ray-Gizzy/2024Fall-projects-Olympic-Effect/internal/config"
)

// SkipReport records a metric/country table left out of the merge.
type SkipReport struct {
	Metric  string
	Country string // country tag, empty when the whole metric is absent
	Reason  string
}

func (s SkipReport) String() string {
	if s.Country == "" {
		return fmt.Sprintf("merge: %s: %s", s.Metric, s.Reason)
	}
	return fmt.Sprintf("merge: %s (%s): %s", s.Metric, s.Country, s.Reason)
}

// Merge builds the wide comparison table: one row per Relative Year, one
// column {metric}{suffix} per metric/country pair.
//
// The metrics slice fixes the iteration order, and with it the anchor: the
// first merged table's Relative Year set is the base every later table is
// left-joined onto, so years present only in later tables never add rows.
// That anchoring is a deliberate property of the study, not an accident.
// Unmatched join rows carry missing values, never errors. Tables missing the
// metric column are skipped and reported.
func Merge(metrics []string, tables map[string]CountryTables, countries []config.Country) (dataframe.DataFrame, []SkipReport, error) {
	if len(metrics) == 0 {
		return dataframe.DataFrame{}, nil, fmt.Errorf("merge: no metrics given: %w", analysis.ErrInvalidInput)
	}
	var merged dataframe.DataFrame
	var skips []SkipReport
	first := true
	for _, metric := range metrics {
		countryTables, ok := tables[metric]
		if !ok {
			skips = append(skips, SkipReport{Metric: metric, Reason: "no tables loaded"})
			continue
		}
		for _, country := range countries {
			t, ok := countryTables[country.Tag]
			if !ok {
				skips = append(skips, SkipReport{Metric: metric, Country: country.Tag, Reason: "no table for country"})
				continue
			}
			if !analysis.HasColumn(t, analysis.RelativeYearColumn) || !analysis.HasColumn(t, metric) {
				skips = append(skips, SkipReport{
					Metric:  metric,
					Country: country.Tag,
					Reason:  fmt.Sprintf("column %q or %q absent (%v)", analysis.RelativeYearColumn, metric, analysis.ErrMissingColumn),
				})
				continue
			}
			slim := t.Select([]string{analysis.RelativeYearColumn, metric}).Rename(analysis.MetricColumn(metric, country), metric)
			if slim.Error() != nil {
				return dataframe.DataFrame{}, skips, fmt.Errorf("merge %s (%s): %w", metric, country.Tag, slim.Error())
			}
			if first {
				merged = slim
				first = false
				continue
			}
			merged = merged.LeftJoin(slim, analysis.RelativeYearColumn)
			if merged.Error() != nil {
				return dataframe.DataFrame{}, skips, fmt.Errorf("merge %s (%s): join: %w", metric, country.Tag, merged.Error())
			}
		}
	}
	if first {
		return dataframe.DataFrame{}, skips, fmt.Errorf("merge: no mergeable tables: %w", analysis.ErrMissingColumn)
	}
	return merged, skips, nil
}
