package analysis

import (
	"fmt"
	"strings"

	"github.com/go-gota/gota/dataframe"

	"github.com/Ray-Gizzy/2024Fall-projects-Olympic-Effect/internal/config"
)

// SelectCombination resolves a user-supplied combination key against the
// configured set.
func SelectCombination(combos []config.Combination, key string) (config.Combination, error) {
	key = strings.TrimSpace(key)
	for _, c := range combos {
		if c.Key == key {
			return c, nil
		}
	}
	return config.Combination{}, fmt.Errorf("combination %q: %w", key, ErrInvalidSelection)
}

// ResolveCountry resolves a user-supplied country tag (case-insensitive)
// against the configured countries.
func ResolveCountry(countries []config.Country, tag string) (config.Country, error) {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	for _, c := range countries {
		if c.Tag == tag {
			return c, nil
		}
	}
	return config.Country{}, fmt.Errorf("country %q: %w", tag, ErrInvalidSelection)
}

// ComboResult is the correlation of one predefined metric pair for one
// country.
type ComboResult struct {
	Key         string  `json:"key"`
	Description string  `json:"description"`
	Country     string  `json:"country"` // country tag
	MetricA     string  `json:"metric_a"`
	MetricB     string  `json:"metric_b"`
	R           float64 `json:"r"`
}

// AnalyzeCombination computes the correlation for one predefined combination
// in one country. Missing merged columns surface as ErrMissingColumn; an
// undefined coefficient as ErrUndefinedCorrelation.
func AnalyzeCombination(df dataframe.DataFrame, combo config.Combination, country config.Country) (*ComboResult, error) {
	if len(combo.Metrics) != 2 {
		return nil, fmt.Errorf("combination %q has %d metrics, want 2: %w", combo.Key, len(combo.Metrics), ErrInvalidInput)
	}
	colA := MetricColumn(combo.Metrics[0], country)
	colB := MetricColumn(combo.Metrics[1], country)
	r, err := PairCorrelation(df, colA, colB)
	if err != nil {
		return nil, fmt.Errorf("combination %q for %s: %w", combo.Key, country.Tag, err)
	}
	return &ComboResult{
		Key:         combo.Key,
		Description: combo.Description,
		Country:     country.Tag,
		MetricA:     combo.Metrics[0],
		MetricB:     combo.Metrics[1],
		R:           r,
	}, nil
}

// AllCombinations computes every combination for every country whose columns
// resolve in the merged table. Pairs that cannot be computed are reported in
// the returned notes and skipped; they never abort the rest.
func AllCombinations(df dataframe.DataFrame, combos []config.Combination, countries []config.Country) ([]ComboResult, []string) {
	var results []ComboResult
	var notes []string
	for _, combo := range combos {
		for _, country := range countries {
			res, err := AnalyzeCombination(df, combo, country)
			if err != nil {
				notes = append(notes, err.Error())
				continue
			}
			results = append(results, *res)
		}
	}
	return results, notes
}
