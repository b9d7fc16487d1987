package Burgers

// ShockIC is zero everywhere except u0 at source
func ShockIC(N, source int, u0 float64) (u []float64) {
	u = make([]float64, N)
	if source >= 0 && source < N {
		u[source] = u0
	}
	return
}

// StepIC is the Riemann step: uL for x < x0, uR otherwise
func StepIC(x []float64, x0, uL, uR float64) (u []float64) {
	u = make([]float64, len(x))
	for i, xi := range x {
		if xi < x0 {
			u[i] = uL
		} else {
			u[i] = uR
		}
	}
	return
}
