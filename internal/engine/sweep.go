package engine

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/fleettco/internal/logging"
)

// MaxSweepYears bounds the horizon sweep.
const MaxSweepYears = MaxUsageYears

// HorizonPoint is the full-horizon TCO of both fleets for one usage period.
type HorizonPoint struct {
	Years               int     `json:"years"`
	CombustionTotalCost float64 `json:"combustion_total_cost"`
	ElectricTotalCost   float64 `json:"electric_total_cost"`
	TotalSavings        float64 `json:"total_savings"`
	CO2SavingsKg        float64 `json:"co2_savings_kg"`
}

// Sweep computes the comparison for every horizon from 1 to maxYears, overriding
// p.UsageYears. Horizons are computed concurrently; the returned points are ordered by
// ascending year.
//
// Sweep returns ErrInvalidHorizon when maxYears is outside [1, MaxSweepYears], and the
// context error if ctx is canceled before all horizons complete.
func Sweep(ctx context.Context, p Params, maxYears int) ([]HorizonPoint, error) {
	log := logging.FromContext(ctx)
	start := time.Now()

	if maxYears < 1 || maxYears > MaxSweepYears {
		return nil, fmt.Errorf("%w: got %d (max %d)", ErrInvalidHorizon, maxYears, MaxSweepYears)
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "sweep").
		Int("max_years", maxYears).
		Str("fuel_type", p.FuelType.String()).
		Msg("starting horizon sweep")

	// Each goroutine owns one index, so no locking is needed.
	points := make([]HorizonPoint, maxYears)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i := 0; i < maxYears; i++ {
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			snapshot := p
			snapshot.UsageYears = i + 1
			r := Compute(snapshot)
			points[i] = HorizonPoint{
				Years:               snapshot.UsageYears,
				CombustionTotalCost: r.CombustionTotalCost,
				ElectricTotalCost:   r.ElectricTotalCost,
				TotalSavings:        r.TotalSavings,
				CO2SavingsKg:        r.CO2SavingsKg,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "sweep").
		Dur("duration_ms", time.Since(start)).
		Msg("horizon sweep complete")

	return points, nil
}

// BreakEven returns the first horizon at which the electric fleet is no more expensive
// than the combustion fleet. ok is false if no point breaks even.
func BreakEven(points []HorizonPoint) (int, bool) {
	for _, pt := range points {
		if pt.TotalSavings >= 0 {
			return pt.Years, true
		}
	}
	return 0, false
}
