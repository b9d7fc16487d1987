package Burgers

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

/*
The 1D inviscid Burgers' equation in conservative (flux) form:
				∂u/∂t + ∂/∂x [ ½ u² ] = 0

At an interface between a left state u_L and a right state u_R the exact
Riemann solution is either a shock or a rarefaction.

	Shock Case: (u_L > u_R), the shock propagates at the Rankine-Hugoniot speed
				s = (u_L + u_R) / 2
				u* = u_L,  if s > 0
				u* = u_R,  if s <= 0

	Rarefaction Case: (u_L <= u_R), the entropy condition gives:
				u* = u_L,  if u_L >= 0
				u* = u_R,  if u_R <= 0
				u* = 0,    if u_L < 0 < u_R (sonic point)

Godunov Flux (Exact Riemann Solver)
				F* = ½ (u*)²

Rusanov Flux (local Lax-Friedrichs / HLL with a single wave speed)
				F* = ½ (F_L + F_R) - ½ |s| (u_R - u_L)
where:
				F_L = ½ u_L², F_R = ½ u_R²
				s   = max(|u_L|, |u_R|)

On a graph the same interface flux is used across every edge, F(u_i, u_j) being
the flux leaving node i toward node j.
*/

var ErrUnknownFlux = errors.New("burgers: unknown flux type")

// FluxFunc is a numerical flux between a left and a right state
type FluxFunc func(uL, uR float64) float64

type FluxType uint8

const (
	FLUX_Godunov FluxType = iota
	FLUX_Rusanov
)

var (
	FluxNames = map[string]FluxType{
		"godunov": FLUX_Godunov,
		"rusanov": FLUX_Rusanov,
	}
	FluxPrintNames = []string{"Godunov", "Rusanov"}
)

func (ft FluxType) Print() (txt string) {
	if int(ft) >= len(FluxPrintNames) {
		return fmt.Sprintf("FluxType(%d)", ft)
	}
	txt = FluxPrintNames[ft]
	return
}

func NewFluxType(label string) (ft FluxType, err error) {
	var ok bool
	if label == "" {
		return FLUX_Godunov, nil
	}
	if ft, ok = FluxNames[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("flux %q: %w", label, ErrUnknownFlux)
	}
	return
}

func (ft FluxType) Func() FluxFunc {
	switch ft {
	case FLUX_Rusanov:
		return Rusanov
	default:
		return Godunov
	}
}

// F is the physical flux f(u) = u²/2
func F(u float64) float64 {
	return 0.5 * u * u
}

func Godunov(uL, uR float64) float64 {
	if uL <= uR {
		switch {
		case uL >= 0:
			return F(uL)
		case uR <= 0:
			return F(uR)
		default:
			return 0
		}
	}
	// Shock
	if s := 0.5 * (uL + uR); s > 0 {
		return F(uL)
	}
	return F(uR)
}

func Rusanov(uL, uR float64) float64 {
	s := math.Max(math.Abs(uL), math.Abs(uR))
	return 0.5*(F(uL)+F(uR)) - 0.5*s*(uR-uL)
}
