package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/fleettco/internal/config"
	"github.com/rshade/fleettco/internal/engine"
	"github.com/rshade/fleettco/internal/locale"
)

// ParamFlags holds the calculator parameter flags shared by calculate, sweep and tui.
// Prices are kept as text so that pt-BR input such as "6,18" is accepted.
// Exported for testing.
type ParamFlags struct {
	Mileage     float64
	Years       int
	Fleet       int
	FuelType    string
	FuelPrice   string
	EnergyPrice string
}

// bindParamFlags registers the parameter flags on cmd. Defaults are resolved at run time
// from the configuration, so unset flags are left empty here.
func bindParamFlags(cmd *cobra.Command, f *ParamFlags) {
	cmd.Flags().Float64Var(&f.Mileage, "mileage", 0, "km driven per vehicle per month (default from config)")
	cmd.Flags().IntVar(&f.Years, "years", 0, "usage period in years (default from config)")
	cmd.Flags().IntVar(&f.Fleet, "fleet", 0, "number of vehicles (default from config)")
	cmd.Flags().StringVar(&f.FuelType, "fuel-type", "", "combustion baseline: diesel or gasoline (default from config)")
	cmd.Flags().StringVar(&f.FuelPrice, "fuel-price", "", "fuel price per litre, e.g. 6,18 (default from config)")
	cmd.Flags().StringVar(&f.EnergyPrice, "energy-price", "", "energy price per kWh, e.g. 0,73 (default from config)")
}

// ResolveParams builds calculator parameters from the configured defaults and the flags
// the user set explicitly. The result is validated.
// Exported for testing.
func ResolveParams(cmd *cobra.Command, f ParamFlags, defaults config.DefaultsConfig) (engine.Params, error) {
	fuel := defaults.Fuel()
	if cmd.Flags().Changed("fuel-type") {
		parsed, err := engine.ParseFuelType(f.FuelType)
		if err != nil {
			return engine.Params{}, fmt.Errorf("--fuel-type: %w", err)
		}
		fuel = parsed
	}

	p := defaults.Params(fuel)
	if cmd.Flags().Changed("mileage") {
		p.MonthlyMileage = f.Mileage
	}
	if cmd.Flags().Changed("years") {
		p.UsageYears = f.Years
	}
	if cmd.Flags().Changed("fleet") {
		p.FleetSize = f.Fleet
	}
	if cmd.Flags().Changed("fuel-price") {
		v, err := locale.ParseNumber(f.FuelPrice)
		if err != nil {
			return engine.Params{}, fmt.Errorf("--fuel-price: %w", err)
		}
		p.FuelCost = v
	}
	if cmd.Flags().Changed("energy-price") {
		v, err := locale.ParseNumber(f.EnergyPrice)
		if err != nil {
			return engine.Params{}, fmt.Errorf("--energy-price: %w", err)
		}
		p.EnergyCost = v
	}

	if err := p.Validate(); err != nil {
		return engine.Params{}, fmt.Errorf("invalid parameters: %w", err)
	}
	return p, nil
}
