package greenops

import (
	"math"
	"strings"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Conversion errors, comparable with errors.Is.
var (
	// ErrInvalidUnit indicates an unrecognized carbon unit.
	ErrInvalidUnit = constError("invalid carbon unit")

	// ErrNegativeValue indicates a negative carbon value.
	ErrNegativeValue = constError("negative carbon value")

	// ErrCalculationOverflow indicates an Inf/NaN input or a conversion that overflows.
	ErrCalculationOverflow = constError("calculation overflow")
)

// massUnit is one recognized carbon unit.
type massUnit struct {
	symbol string
	toKg   float64
}

// units maps lower-cased unit names, with and without the CO2e suffix, to their unit.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var units = map[string]massUnit{
	"g":      {"g", GramsToKg},
	"gco2e":  {"g", GramsToKg},
	"kg":     {"kg", KgToKg},
	"kgco2e": {"kg", KgToKg},
	"t":      {"t", TonsToKg},
	"tco2e":  {"t", TonsToKg},
	"lb":     {"lb", PoundsToKg},
	"lbco2e": {"lb", PoundsToKg},
}

func lookupUnit(unit string) (massUnit, bool) {
	u, ok := units[strings.ToLower(strings.TrimSpace(unit))]
	return u, ok
}

func checkMass(value float64) error {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return ErrCalculationOverflow
	}
	if value < 0 {
		return ErrNegativeValue
	}
	return nil
}

// NormalizeToKg converts a carbon quantity in unit to kilograms.
//
// Recognized units: g, kg, t, lb and their CO2e variants, case-insensitive.
func NormalizeToKg(value float64, unit string) (float64, error) {
	if err := checkMass(value); err != nil {
		return 0, err
	}

	u, ok := lookupUnit(unit)
	if !ok {
		return 0, ErrInvalidUnit
	}

	kg := value * u.toKg
	if math.IsInf(kg, 0) {
		return 0, ErrCalculationOverflow
	}
	return kg, nil
}

// ConvertFromKg converts kg into unit; the inverse of NormalizeToKg.
func ConvertFromKg(kg float64, unit string) (float64, error) {
	if err := checkMass(kg); err != nil {
		return 0, err
	}

	u, ok := lookupUnit(unit)
	if !ok {
		return 0, ErrInvalidUnit
	}
	return kg / u.toKg, nil
}

// UnitSymbol returns the canonical symbol for unit ("kgCO2e" -> "kg"), or "" if the unit
// is not recognized.
func UnitSymbol(unit string) string {
	u, _ := lookupUnit(unit)
	return u.symbol
}

// IsRecognizedUnit reports whether unit is a supported carbon unit.
func IsRecognizedUnit(unit string) bool {
	_, ok := lookupUnit(unit)
	return ok
}
