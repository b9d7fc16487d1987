package Burgers

import (
	"gonum.org/v1/gonum/floats"
)

/*
ExactRiemann evaluates the entropy solution of Burgers' equation for the step
uL | uR located at x0, at time t.

	uL > uR:  a shock moving at s = (uL+uR)/2
	uL <= uR: a rarefaction fan u = (x-x0)/t between uL t and uR t
*/
func ExactRiemann(x []float64, x0, uL, uR, t float64) (u []float64) {
	if t <= 0 {
		return StepIC(x, x0, uL, uR)
	}
	u = make([]float64, len(x))
	if uL > uR {
		xs := x0 + 0.5*(uL+uR)*t
		for i, xi := range x {
			if xi < xs {
				u[i] = uL
			} else {
				u[i] = uR
			}
		}
		return
	}
	for i, xi := range x {
		xi = (xi - x0) / t
		switch {
		case xi <= uL:
			u[i] = uL
		case xi >= uR:
			u[i] = uR
		default:
			u[i] = xi
		}
	}
	return
}

// L1Error is the cell weighted L1 distance between two grid functions
func L1Error(u, uExact []float64, dx float64) float64 {
	return floats.Distance(u, uExact, 1) * dx
}
