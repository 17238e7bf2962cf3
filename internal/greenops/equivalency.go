package greenops

import (
	"fmt"
	"math"

	"github.com/rshade/fleettco/internal/locale"
)

// Calculate expresses avoided CO2 as relatable equivalencies.
//
// horizonTrees is the tree count computed by the TCO engine for the fleet's usage horizon;
// it is reported first and rounded to a whole tree. The EPA figures (km driven by an
// average car, tree seedlings grown for ten years, days of home electricity) follow.
//
// A normalization failure returns an empty output and the error. Masses below
// MinEquivalencyThresholdKg return an empty output with InputKg and FormattedMass set.
func Calculate(input CarbonInput, horizonTrees float64) (EquivalencyOutput, error) {
	kg, err := NormalizeToKg(input.Value, input.Unit)
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}, err
	}
	if math.IsNaN(horizonTrees) || math.IsInf(horizonTrees, 0) || horizonTrees < 0 {
		horizonTrees = 0
	}

	out := EquivalencyOutput{InputKg: kg, FormattedMass: FormatMass(kg)}
	if kg < MinEquivalencyThresholdKg {
		out.IsEmpty = true
		return out, nil
	}

	out.Results = []EquivalencyResult{
		newResult(EquivalencyHorizonTrees, horizonTrees, "trees absorbing it over the period"),
		newResult(EquivalencyCarKmDriven, kg/EPAKmDrivenFactor, "km driven by an average car"),
		newResult(EquivalencyTreeSeedlings, kg/EPATreeSeedlingFactor, "tree seedlings grown for 10 years"),
		newResult(EquivalencyHomeDays, kg/EPAHomeDayFactor, "days of home electricity"),
	}

	r := out.Results
	out.DisplayText = fmt.Sprintf(
		"%s of CO2 avoided: as much as ~%s trees absorb over the period, ~%s km driven by an average car or ~%s days of home electricity",
		out.FormattedMass, r[0].FormattedValue, r[1].FormattedValue, r[3].FormattedValue)
	out.CompactText = fmt.Sprintf("(≈ %s trees, %s home days)", r[0].FormattedValue, r[3].FormattedValue)
	return out, nil
}

func newResult(t EquivalencyType, v float64, label string) EquivalencyResult {
	return EquivalencyResult{
		Type:           t,
		Value:          v,
		FormattedValue: formatEquivalencyValue(v),
		Label:          label,
	}
}

// formatEquivalencyValue abbreviates values from LargeNumberThreshold up and rounds the rest
// to a grouped integer.
func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return locale.FormatNumber(int64(math.Round(v)))
}
