// Package greenops turns avoided CO2 into displayable figures.
//
// It converts carbon masses between units, formats them for the calculator's locale, and
// expresses them as relatable equivalencies: trees absorbing the CO2 over the usage
// horizon, tree seedlings grown for ten years, km driven by an average car, and days of
// home electricity.
package greenops

import "fmt"

// EquivalencyType represents a category of carbon emission equivalency.
type EquivalencyType int

const (
	// EquivalencyHorizonTrees is the number of trees that would absorb the CO2 over the
	// fleet's usage horizon. It is computed by the TCO engine and passed in.
	EquivalencyHorizonTrees EquivalencyType = iota

	// EquivalencyCarKmDriven converts CO2e to km driven by an average passenger car.
	EquivalencyCarKmDriven

	// EquivalencyTreeSeedlings converts CO2e to tree seedlings grown for 10 years.
	EquivalencyTreeSeedlings

	// EquivalencyHomeDays converts CO2e to days of average home electricity use.
	EquivalencyHomeDays
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyHorizonTrees:
		return "HorizonTrees"
	case EquivalencyCarKmDriven:
		return "CarKmDriven"
	case EquivalencyTreeSeedlings:
		return "TreeSeedlings"
	case EquivalencyHomeDays:
		return "HomeDays"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// CarbonInput is an avoided-emissions figure with its unit.
type CarbonInput struct {
	// Value is the numeric carbon emission amount.
	Value float64 `json:"value"`

	// Unit is the measurement unit (g, kg, t, lb and their CO2e variants).
	Unit string `json:"unit"`
}

// EquivalencyResult represents a single calculated equivalency.
type EquivalencyResult struct {
	Type EquivalencyType `json:"type"`

	// Value is the raw calculated equivalency value.
	Value float64 `json:"value"`

	// FormattedValue is the display-ready string.
	FormattedValue string `json:"formatted_value"`

	// Label is the descriptive phrase (e.g., "km driven").
	Label string `json:"label"`
}

// EquivalencyOutput contains all equivalency results for display.
type EquivalencyOutput struct {
	// InputKg is the normalized input value in kilograms CO2e.
	InputKg float64 `json:"input_kg"`

	// FormattedMass is InputKg formatted by FormatMass.
	FormattedMass string `json:"formatted_mass"`

	// Results contains calculated equivalencies in priority order.
	Results []EquivalencyResult `json:"results"`

	// DisplayText is the full prose format for CLI/TUI output.
	DisplayText string `json:"display_text"`

	// CompactText is the abbreviated format for constrained outputs.
	CompactText string `json:"compact_text"`

	IsEmpty bool `json:"is_empty"`
}
