// Package dataset loads the cleaned per-country metric tables and prepares
// them for cross-country comparison: renaming raw headers, deriving growth
// rates and the host-year-relative axis, and merging everything into one wide
// table keyed by Relative Year.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"

	"github.com/Ray-Gizzy/2024Fall-projects-Olympic-Effect/internal/analysis"
	"github.com/Ray-Gizzy/2024Fall-projects-Olympic-Effect/internal/config"
)

// CountryTables holds one metric's normalized table per country tag.
type CountryTables map[string]dataframe.DataFrame

// LoadCSV reads a cleaned CSV export into a frame.
func LoadCSV(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	df := dataframe.ReadCSV(f)
	if df.Error() != nil {
		return dataframe.DataFrame{}, fmt.Errorf("read dataset %s: %w", filepath.Base(path), df.Error())
	}
	if df.Nrow() == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("dataset %s has no rows: %w", filepath.Base(path), analysis.ErrInvalidInput)
	}
	return df, nil
}

// LoadAll loads and normalizes every configured metric file, keyed by metric
// name then country tag. File paths are resolved against cfg.DataDir.
func LoadAll(cfg *config.Config) (map[string]CountryTables, error) {
	out := make(map[string]CountryTables, len(cfg.Metrics))
	for _, m := range cfg.Metrics {
		tables := make(CountryTables, len(m.Files))
		for tag, rel := range m.Files {
			country, err := analysis.ResolveCountry(cfg.Countries, tag)
			if err != nil {
				return nil, fmt.Errorf("metric %q references unconfigured country: %w", m.Name, err)
			}
			df, err := LoadCSV(filepath.Join(cfg.DataDir, rel))
			if err != nil {
				return nil, fmt.Errorf("metric %q (%s): %w", m.Name, tag, err)
			}
			norm, err := Normalize(df, NormalizeOptions{
				Rename:   m.Rename,
				HostYear: country.HostYear,
				Metric:   m.Name,
			})
			if err != nil {
				return nil, fmt.Errorf("metric %q (%s): %w", m.Name, tag, err)
			}
			tables[tag] = norm
		}
		out[m.Name] = tables
	}
	return out, nil
}
