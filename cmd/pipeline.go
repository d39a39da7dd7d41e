package cmd

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"

	cfgpkg "github.com/Ray-Gizzy/2024Fall-projects-Olympic-Effect/internal/config"
	"github.com/Ray-Gizzy/2024Fall-projects-Olympic-Effect/internal/dataset"
)

// buildMergedTable runs the shared load/normalize/merge pipeline and returns
// the wide comparison table plus any per-table skip notes.
func buildMergedTable(c *cfgpkg.Config) (dataframe.DataFrame, []string, error) {
	tables, err := dataset.LoadAll(c)
	if err != nil {
		return dataframe.DataFrame{}, nil, fmt.Errorf("load datasets: %w", err)
	}
	metrics := make([]string, 0, len(c.Metrics))
	for _, m := range c.Metrics {
		metrics = append(metrics, m.Name)
	}
	merged, skips, err := dataset.Merge(metrics, tables, c.Countries)
	if err != nil {
		return dataframe.DataFrame{}, nil, err
	}
	notes := make([]string, 0, len(skips))
	for _, s := range skips {
		notes = append(notes, s.String())
	}
	return merged, notes, nil
}
