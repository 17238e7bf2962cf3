package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/fleettco/internal/engine"
)

func TestSession_StartsWithoutResult(t *testing.T) {
	s := NewSession(engine.DefaultParams())

	assert.Nil(t, s.Result)
	assert.False(t, s.IsStale())
	_, ok := s.ComputedParams()
	assert.False(t, ok)
}

func TestSession_Calculate(t *testing.T) {
	s := NewSession(engine.DefaultParams()).Calculate()

	require.NotNil(t, s.Result)
	assert.Equal(t, engine.Compute(engine.DefaultParams()), *s.Result)
	computed, ok := s.ComputedParams()
	assert.True(t, ok)
	assert.Equal(t, engine.DefaultParams(), computed)
	assert.False(t, s.IsStale())
}

func TestSession_EditKeepsLastResult(t *testing.T) {
	calculated := NewSession(engine.DefaultParams()).Calculate()

	p := calculated.Params
	p.FleetSize = 10
	edited := calculated.WithParams(p)

	assert.Same(t, calculated.Result, edited.Result, "editing must not recompute")
	assert.True(t, edited.IsStale())
	assert.Equal(t, 10, edited.Params.FleetSize)
	assert.Equal(t, 3, calculated.Params.FleetSize, "receiver must not change")

	recalculated := edited.Calculate()
	assert.False(t, recalculated.IsStale())
	assert.Greater(t, recalculated.Result.TotalFleetDistanceKm, calculated.Result.TotalFleetDistanceKm)
}

func TestSession_WithFuelTypeResetsPrice(t *testing.T) {
	s := NewSession(engine.DefaultParams())
	p := s.Params
	p.FuelCost = 9.99
	s = s.WithParams(p)

	s = s.WithFuelType(engine.FuelGasoline, engine.DefaultGasolineCost)
	assert.Equal(t, engine.FuelGasoline, s.Params.FuelType)
	assert.InDelta(t, 6.25, s.Params.FuelCost, 1e-9)
}

func TestSession_Reset(t *testing.T) {
	s := NewSession(engine.DefaultParams()).Calculate()
	p := s.Params
	p.MonthlyMileage = 100
	s = s.WithParams(p)

	reset := s.Reset(engine.DefaultParams())
	assert.Nil(t, reset.Result)
	assert.Equal(t, engine.DefaultParams(), reset.Params)
	assert.False(t, reset.IsStale())
}
