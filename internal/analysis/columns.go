package analysis

import (
	"github.com/go-gota/gota/dataframe"

	"github.com/Ray-Gizzy/2024Fall-projects-Olympic-Effect/internal/config"
)

// Canonical column names shared by the normalization and correlation stages.
const (
	// YearColumn is the calendar-year column every raw table must carry.
	YearColumn = "Year"
	// GrowthRateColumn holds year-over-year percentage growth of the metric.
	GrowthRateColumn = "Growth Rate (%)"
	// RelativeYearColumn is Year minus the host year; the cross-country join
	// key and the axis correlation windows are expressed in.
	RelativeYearColumn = "Relative Year"
)

// MetricColumn is the merged-table column name for one metric in one country.
// All column resolution goes through here so the naming scheme lives in one
// place.
func MetricColumn(metric string, c config.Country) string {
	return metric + c.Suffix
}

// HasColumn reports whether the frame carries a column with the given name.
func HasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}
