package analysis

import "errors"

var (
	// ErrInvalidInput marks empty tables or non-numeric values where a
	// numeric sequence is required.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingColumn marks a requested column absent from a table. Group
	// and combination resolution treat it as a per-item skip, not a fatal
	// failure; only a missing Year column aborts a pipeline run.
	ErrMissingColumn = errors.New("missing column")

	// ErrUndefinedCorrelation marks a pair correlation that cannot be
	// computed (zero variance or fewer than two paired observations).
	// Inside matrices the same condition surfaces as a NaN cell instead.
	ErrUndefinedCorrelation = errors.New("undefined correlation")

	// ErrInvalidSelection marks an unrecognized combination key or country
	// tag supplied by the user.
	ErrInvalidSelection = errors.New("invalid selection")
)
