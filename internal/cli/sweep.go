package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/fleettco/internal/config"
	"github.com/rshade/fleettco/internal/engine"
	"github.com/rshade/fleettco/internal/logging"
)

const defaultSweepYears = 10

// SweepReport is the structured form of a horizon sweep.
type SweepReport struct {
	Params         engine.Params         `json:"params"`
	Points         []engine.HorizonPoint `json:"points"`
	BreakEvenYears int                   `json:"break_even_years,omitempty"`
	BreaksEven     bool                  `json:"breaks_even"`
}

// NewSweepCmd creates the "sweep" command, which computes the comparison for every usage
// period from 1 to --max-years and reports the break-even horizon.
func NewSweepCmd() *cobra.Command {
	var (
		flags    ParamFlags
		output   OutputOptions
		maxYears int
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compare both fleets over every usage period up to a horizon",
		Long: `Computes the full comparison for usage periods of 1, 2, ... --max-years years and
prints the totals per horizon together with the first horizon at which the electric
fleet costs no more than the combustion fleet. --years is ignored.`,
		Example: `  # Break-even over the next 10 years
  fleettco sweep

  # 20-year sweep for a gasoline fleet as NDJSON
  fleettco sweep --fuel-type gasoline --max-years 20 --output ndjson`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeSweep(cmd, flags, output, maxYears)
		},
	}

	bindParamFlags(cmd, &flags)
	bindOutputFlags(cmd, &output)
	cmd.Flags().IntVar(&maxYears, "max-years", defaultSweepYears, "longest usage period to compute")

	return cmd
}

func executeSweep(cmd *cobra.Command, flags ParamFlags, output OutputOptions, maxYears int) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	cfg := config.GetGlobalConfig()

	p, err := ResolveParams(cmd, flags, cfg.Defaults)
	if err != nil {
		return err
	}
	format, err := output.resolveFormat(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	points, err := engine.Sweep(ctx, p, maxYears)
	if err != nil {
		return err
	}

	report := SweepReport{Params: p, Points: points}
	report.BreakEvenYears, report.BreaksEven = engine.BreakEven(points)

	log.Info().
		Ctx(ctx).
		Str("component", "cli").
		Str("operation", "sweep").
		Int("max_years", maxYears).
		Bool("breaks_even", report.BreaksEven).
		Int("break_even_years", report.BreakEvenYears).
		Dur("duration", time.Since(start)).
		Msg("horizon sweep computed")

	w := cmd.OutOrStdout()
	switch format {
	case config.FormatJSON:
		return writeJSON(w, report)
	case config.FormatNDJSON:
		return writeNDJSON(w, points)
	default:
		return renderPlainSweep(w, p.FuelType, points)
	}
}
