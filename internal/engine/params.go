package engine

import (
	"fmt"
	"math"
)

// Params is one snapshot of calculator input. It is passed by value and never mutated by
// the engine.
type Params struct {
	// MonthlyMileage is km driven per vehicle per month.
	MonthlyMileage float64 `json:"monthly_mileage" yaml:"monthly_mileage"`

	// UsageYears is the planning horizon.
	UsageYears int `json:"usage_years" yaml:"usage_years"`

	FleetSize int `json:"fleet_size" yaml:"fleet_size"`

	// FuelCost is the price per litre of the selected combustion fuel.
	FuelCost float64 `json:"fuel_cost" yaml:"fuel_cost"`

	// EnergyCost is the price per kWh for the electric fleet.
	EnergyCost float64 `json:"energy_cost" yaml:"energy_cost"`

	FuelType FuelType `json:"fuel_type" yaml:"fuel_type"`
}

// Default calculator inputs.
const (
	DefaultMonthlyMileage = 3000
	DefaultUsageYears     = 3
	DefaultFleetSize      = 3
	DefaultEnergyCost     = 0.73
)

// MaxUsageYears is the longest planning horizon Validate accepts.
const MaxUsageYears = 50

// DefaultParams returns the calculator defaults: 3000 km/month, 3 years, 3 diesel vehicles.
func DefaultParams() Params {
	return Params{
		MonthlyMileage: DefaultMonthlyMileage,
		UsageYears:     DefaultUsageYears,
		FleetSize:      DefaultFleetSize,
		FuelCost:       DefaultDieselCost,
		EnergyCost:     DefaultEnergyCost,
		FuelType:       FuelDiesel,
	}
}

// WithFuelType returns a copy of p switched to fuel type f, with the fuel price reset to
// the default for f.
func (p Params) WithFuelType(f FuelType) Params {
	p.FuelType = f
	p.FuelCost = DefaultFuelCost(f)
	return p
}

// Validate checks that every numeric input is finite and non-negative, that UsageYears is
// at most MaxUsageYears and that the fuel type resolves to a combustion profile.
func (p Params) Validate() error {
	if !p.FuelType.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownFuelType, string(p.FuelType))
	}

	floats := []struct {
		name  string
		value float64
	}{
		{"monthly mileage", p.MonthlyMileage},
		{"fuel cost", p.FuelCost},
		{"energy cost", p.EnergyCost},
	}
	for _, f := range floats {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s: %w", f.name, ErrNonFinite)
		}
		if f.value < 0 {
			return fmt.Errorf("%s %v: %w", f.name, f.value, ErrNegativeValue)
		}
	}

	if p.UsageYears < 0 {
		return fmt.Errorf("usage years %d: %w", p.UsageYears, ErrNegativeValue)
	}
	if p.UsageYears > MaxUsageYears {
		return fmt.Errorf("%w: usage years %d (max %d)", ErrInvalidHorizon, p.UsageYears, MaxUsageYears)
	}
	if p.FleetSize < 0 {
		return fmt.Errorf("fleet size %d: %w", p.FleetSize, ErrNegativeValue)
	}

	return nil
}
