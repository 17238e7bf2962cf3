// Package engine computes fleet Total Cost of Ownership (TCO) comparisons between a
// combustion fleet and the electric reference fleet.
//
// The engine is a set of pure functions over an immutable reference table. Every call reads
// only its Params snapshot and the table, and returns a freshly allocated Result, so callers
// may invoke it concurrently without coordination.
package engine

import (
	"fmt"
	"strings"
)

// VehicleClass is the key of the reference table.
type VehicleClass string

const (
	// ClassDiesel is the diesel combustion baseline.
	ClassDiesel VehicleClass = "diesel"
	// ClassGasoline is the gasoline combustion baseline.
	ClassGasoline VehicleClass = "gasoline"
	// ClassElectric is the electric reference vehicle every baseline is compared against.
	ClassElectric VehicleClass = "electric"
)

// CO2AbsorptionPerTreeKgPerYear is the kg of CO2 a single tree absorbs in one year.
const CO2AbsorptionPerTreeKgPerYear = 22.0

// Display color tags passed through to chart renderers.
const (
	colorCombustion = "#ef4444"
	colorElectric   = "#2dd4bf"
)

// VehicleProfile is the reference data for one vehicle class.
type VehicleProfile struct {
	Class VehicleClass `json:"class"`

	// Efficiency is km per litre for combustion classes and km per kWh for electric.
	Efficiency float64 `json:"efficiency"`

	// MaintenancePerKm is the maintenance cost per km driven.
	MaintenancePerKm float64 `json:"maintenance_per_km"`

	// AcquisitionCost is the purchase price of one vehicle.
	AcquisitionCost float64 `json:"acquisition_cost"`

	// CO2KgPerLitre is zero for the electric class.
	CO2KgPerLitre float64 `json:"co2_kg_per_litre,omitempty"`

	DisplayName string `json:"display_name"`
	ChartColor  string `json:"chart_color"`
}

// IsCombustion reports whether the profile burns fuel.
func (p VehicleProfile) IsCombustion() bool {
	return p.Class != ClassElectric
}

// EfficiencyUnit returns the unit of Efficiency for display.
func (p VehicleProfile) EfficiencyUnit() string {
	if p.IsCombustion() {
		return "km/l"
	}
	return "km/kWh"
}

//nolint:gochecknoglobals // Immutable reference table; only copies leave the package.
var profiles = map[VehicleClass]VehicleProfile{
	ClassDiesel: {
		Class:            ClassDiesel,
		Efficiency:       3.5,
		MaintenancePerKm: 0.45,
		AcquisitionCost:  350000,
		CO2KgPerLitre:    2.68,
		DisplayName:      "Diesel",
		ChartColor:       colorCombustion,
	},
	ClassGasoline: {
		Class:            ClassGasoline,
		Efficiency:       7,
		MaintenancePerKm: 0.35,
		AcquisitionCost:  300000,
		CO2KgPerLitre:    2.31,
		DisplayName:      "Gasoline",
		ChartColor:       colorCombustion,
	},
	ClassElectric: {
		Class:            ClassElectric,
		Efficiency:       2,
		MaintenancePerKm: 0.15,
		AcquisitionCost:  650000,
		DisplayName:      "Electric",
		ChartColor:       colorElectric,
	},
}

// Profile returns the reference profile for class.
func Profile(class VehicleClass) (VehicleProfile, bool) {
	p, ok := profiles[class]
	return p, ok
}

// Profiles returns every reference profile in table order: diesel, gasoline, electric.
func Profiles() []VehicleProfile {
	return []VehicleProfile{
		profiles[ClassDiesel],
		profiles[ClassGasoline],
		profiles[ClassElectric],
	}
}

// FuelType selects the combustion baseline. The zero value resolves to diesel.
type FuelType string

const (
	// FuelDiesel selects the diesel profile.
	FuelDiesel FuelType = "diesel"
	// FuelGasoline selects the gasoline profile.
	FuelGasoline FuelType = "gasoline"
)

// Default fuel prices per litre, used when the fuel type is switched.
const (
	DefaultDieselCost   = 6.18
	DefaultGasolineCost = 6.25
)

// ParseFuelType parses a fuel type name. It accepts "diesel", "gasoline" and the
// Portuguese "gasolina", case-insensitively.
func ParseFuelType(s string) (FuelType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "diesel":
		return FuelDiesel, nil
	case "gasoline", "gasolina":
		return FuelGasoline, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFuelType, s)
	}
}

// IsValid reports whether f names a defined combustion fuel. The zero value is valid.
func (f FuelType) IsValid() bool {
	switch f {
	case "", FuelDiesel, FuelGasoline:
		return true
	}
	return false
}

// Class returns the vehicle class the fuel type resolves to.
func (f FuelType) Class() VehicleClass {
	if f == FuelGasoline {
		return ClassGasoline
	}
	return ClassDiesel
}

// DisplayName returns the profile display name for the fuel type.
func (f FuelType) DisplayName() string {
	return profiles[f.Class()].DisplayName
}

// String returns the canonical name.
func (f FuelType) String() string {
	return string(f.Class())
}

// DefaultFuelCost returns the default price per litre for the fuel type.
func DefaultFuelCost(f FuelType) float64 {
	if f.Class() == ClassGasoline {
		return DefaultGasolineCost
	}
	return DefaultDieselCost
}
