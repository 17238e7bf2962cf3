package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/fleettco/internal/config"
	"github.com/rshade/fleettco/internal/engine"
	"github.com/rshade/fleettco/internal/logging"
	"github.com/rshade/fleettco/internal/tui"
)

// CalculateParams holds the parameters for the calculate command execution.
// Exported for testing.
type CalculateParams struct {
	Params      ParamFlags
	Output      OutputOptions
	Interactive bool
}

// NewCalculateCmd creates the "calculate" command: one TCO comparison for the given
// parameters.
//
// Flags left unset fall back to the defaults section of the configuration. Output goes
// through RenderCalculationOutput:
//   - --output json|ndjson: structured report
//   - --output table on a terminal: styled boxes
//   - --output table elsewhere, or --plain: aligned text
//   - --interactive: the calculator seeded with the resolved parameters
func NewCalculateCmd() *cobra.Command {
	var params CalculateParams

	cmd := &cobra.Command{
		Use:     "calculate",
		Aliases: []string{"calc"},
		Short:   "Compare a combustion fleet with an electric fleet",
		Long: `Computes the total cost of ownership of a diesel or gasoline fleet and of the
equivalent electric fleet over the usage period: acquisition, energy and maintenance
costs, CO2 avoided and the per-period summary table.

Prices accept both "6.18" and the Brazilian "6,18".`,
		Example: `  # Default scenario (from config)
  fleettco calculate

  # Gasoline fleet with explicit prices
  fleettco calculate --fuel-type gasoline --fuel-price 6,25 --energy-price 0,73

  # JSON report with CO2 in tonnes
  fleettco calculate --output json --co2-unit t`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeCalculate(cmd, params)
		},
	}

	bindParamFlags(cmd, &params.Params)
	bindOutputFlags(cmd, &params.Output)
	bindStyleFlags(cmd, &params.Output)
	cmd.Flags().StringVar(&params.Output.CO2Unit, "co2-unit", "", "unit for CO2 figures: g, kg, t or lb (default from config)")
	cmd.Flags().BoolVar(&params.Interactive, "interactive", false, "open the interactive calculator when stdout is a terminal")

	return cmd
}

func executeCalculate(cmd *cobra.Command, params CalculateParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	cfg := config.GetGlobalConfig()

	p, err := ResolveParams(cmd, params.Params, cfg.Defaults)
	if err != nil {
		return err
	}

	mode := tui.DetectOutputMode(params.Output.Plain, params.Output.NoColor, params.Interactive)
	if mode == tui.OutputModeInteractive && tui.IsTerminal(stdoutFile(cmd)) {
		return runCalculatorTUI(ctx, p, cfg.Defaults)
	}

	format, err := params.Output.resolveFormat(cfg)
	if err != nil {
		return err
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "cli").
		Str("operation", "calculate").
		Str("fuel_type", p.FuelType.String()).
		Float64("monthly_mileage", p.MonthlyMileage).
		Int("usage_years", p.UsageYears).
		Int("fleet_size", p.FleetSize).
		Msg("computing fleet TCO")

	start := time.Now()
	result := engine.Compute(p)

	report, err := NewCalculationReport(p, result, params.Output.resolveCO2Unit(cfg))
	if err != nil {
		return err
	}

	log.Info().
		Ctx(ctx).
		Str("component", "cli").
		Str("operation", "calculate").
		Float64("total_savings", result.TotalSavings).
		Float64("co2_savings_kg", result.CO2SavingsKg).
		Dur("duration", time.Since(start)).
		Msg("fleet TCO computed")

	return RenderCalculationOutput(cmd.OutOrStdout(), format, params.Output, report)
}
