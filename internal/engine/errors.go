package engine

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Validation errors. Compute never returns these; they are reported by Params.Validate
// and the parsing helpers so that bad input is rejected before it reaches the engine.
var (
	// ErrUnknownFuelType indicates a fuel type outside {diesel, gasoline}.
	ErrUnknownFuelType = constError("unknown fuel type")

	// ErrNegativeValue indicates a negative distance, count, horizon or price.
	ErrNegativeValue = constError("negative value")

	// ErrNonFinite indicates a NaN or infinite numeric input.
	ErrNonFinite = constError("non-finite value")

	// ErrInvalidHorizon indicates a usage period or sweep horizon outside the supported
	// range.
	ErrInvalidHorizon = constError("horizon out of range")
)
