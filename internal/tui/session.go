package tui

import "github.com/rshade/fleettco/internal/engine"

// Session is the calculator state: the parameters being edited and the result of the last
// explicit calculation. Every transition returns a new Session; the receiver is never
// modified.
//
// Editing parameters does not recompute. Result keeps describing the parameters it was
// computed from (ComputedParams) until the next Calculate.
type Session struct {
	Params engine.Params
	Result *engine.Result

	computed engine.Params
}

// NewSession starts a session with p and no result.
func NewSession(p engine.Params) Session {
	return Session{Params: p}
}

// Calculate computes the result for the current parameters.
func (s Session) Calculate() Session {
	r := engine.Compute(s.Params)
	return Session{Params: s.Params, Result: &r, computed: s.Params}
}

// WithParams replaces the parameters and keeps the last result.
func (s Session) WithParams(p engine.Params) Session {
	return Session{Params: p, Result: s.Result, computed: s.computed}
}

// WithFuelType switches the fuel type and resets the fuel price to price, the default
// price for f.
func (s Session) WithFuelType(f engine.FuelType, price float64) Session {
	p := s.Params.WithFuelType(f)
	p.FuelCost = price
	return s.WithParams(p)
}

// Reset returns a session with defaults and no result.
func (s Session) Reset(defaults engine.Params) Session {
	return NewSession(defaults)
}

// ComputedParams returns the parameters Result was computed from, and false when there is
// no result yet.
func (s Session) ComputedParams() (engine.Params, bool) {
	return s.computed, s.Result != nil
}

// IsStale reports whether the parameters changed since the last calculation.
func (s Session) IsStale() bool {
	return s.Result != nil && s.Params != s.computed
}
