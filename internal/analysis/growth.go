package analysis

import (
	"fmt"
	"math"
)

// GrowthRates computes period-over-period percentage growth for a value
// sequence already sorted ascending by time. The result has the same length
// as the input; the input is not modified.
//
// The first element is always 0 (there is no prior observation). When the
// previous value is exactly 0 the rate is also reported as 0: the division
// is undefined there, and the source datasets treat a resumption from zero
// as flat rather than infinite growth. This conflates "no prior data" with
// "growth from zero" and is kept as documented behavior.
func GrowthRates(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("growth rates: empty value sequence: %w", ErrInvalidInput)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("growth rates: non-numeric value at index %d: %w", i, ErrInvalidInput)
		}
	}
	out := make([]float64, len(values))
	for i := 1; i < len(values); i++ {
		prev := values[i-1]
		if prev == 0 {
			continue
		}
		out[i] = (values[i] - prev) / prev * 100
	}
	return out, nil
}
