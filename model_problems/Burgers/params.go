package Burgers

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidParameter = errors.New("burgers: invalid parameter")

/*
ClampPolicy bounds the state after every step. Runs without clamping can
diverge when dt is too large for the local wave speed; clamping hides that
divergence behind a fixed range, so it is an explicit choice and never a
default.
*/
type ClampPolicy struct {
	Enabled  bool
	Min, Max float64
}

var (
	ClampNone   = ClampPolicy{}
	ClampWide   = ClampPolicy{Enabled: true, Min: -1000, Max: 1000}
	ClampNarrow = ClampPolicy{Enabled: true, Min: -10, Max: 10}
)

// NewClampPolicy parses "none", "wide", "narrow" or explicit bounds "min:max"
func NewClampPolicy(label string) (cp ClampPolicy, err error) {
	label = strings.ToLower(strings.TrimSpace(label))
	switch label {
	case "", "none", "off":
		return ClampNone, nil
	case "wide":
		return ClampWide, nil
	case "narrow":
		return ClampNarrow, nil
	}
	splits := strings.Split(label, ":")
	if len(splits) != 2 {
		err = fmt.Errorf("clamp %q: want none, wide, narrow or min:max: %w", label, ErrInvalidParameter)
		return
	}
	cp.Enabled = true
	if cp.Min, err = strconv.ParseFloat(splits[0], 64); err != nil {
		err = fmt.Errorf("clamp %q: %v: %w", label, err, ErrInvalidParameter)
		return
	}
	if cp.Max, err = strconv.ParseFloat(splits[1], 64); err != nil {
		err = fmt.Errorf("clamp %q: %v: %w", label, err, ErrInvalidParameter)
		return
	}
	err = cp.Validate()
	return
}

func (cp ClampPolicy) Validate() error {
	if cp.Enabled && !(cp.Min <= cp.Max) {
		return fmt.Errorf("clamp bounds [%v,%v]: %w", cp.Min, cp.Max, ErrInvalidParameter)
	}
	return nil
}

func (cp ClampPolicy) Print() string {
	if !cp.Enabled {
		return "none"
	}
	return fmt.Sprintf("[%g,%g]", cp.Min, cp.Max)
}

// Params configures a single run. Steps is the number of stored time levels,
// including the initial condition.
type Params struct {
	DT     float64
	Steps  int
	U0     float64 // Shock magnitude seeded at Source
	Source int
	Clamp  ClampPolicy
	Flux   FluxType
}

func DefaultParams() Params {
	return Params{
		DT:    0.01,
		Steps: 500,
		U0:    1,
		Flux:  FLUX_Godunov,
	}
}

// Validate checks p against a domain of N nodes or cells
func (p Params) Validate(N int) error {
	switch {
	case N < 1:
		return fmt.Errorf("domain size %d: %w", N, ErrInvalidParameter)
	case !(p.DT > 0) || math.IsInf(p.DT, 0):
		return fmt.Errorf("dt=%v must be positive: %w", p.DT, ErrInvalidParameter)
	case p.Steps < 1:
		return fmt.Errorf("steps=%d < 1: %w", p.Steps, ErrInvalidParameter)
	case p.Source < 0 || p.Source >= N:
		return fmt.Errorf("source=%d outside [0,%d): %w", p.Source, N, ErrInvalidParameter)
	case math.IsNaN(p.U0) || math.IsInf(p.U0, 0):
		return fmt.Errorf("u0=%v: %w", p.U0, ErrInvalidParameter)
	}
	if int(p.Flux) >= len(FluxPrintNames) {
		return fmt.Errorf("flux %d: %w", p.Flux, ErrUnknownFlux)
	}
	return p.Clamp.Validate()
}
