/*
Package metrics reduces a state history (one row per time level, one column
per node) to the summary numbers used to compare shock propagation across
topologies.

A node is shocked at a time level when its state exceeds the threshold
epsilon.
*/
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/notargets/netshock/network"
	"github.com/notargets/netshock/utils"
)

// ShockedFraction returns, per time level, the fraction of nodes above eps
func ShockedFraction(history *mat.Dense, eps float64) (frac []float64) {
	if history == nil {
		return nil
	}
	T, N := history.Dims()
	frac = make([]float64, T)
	for t := 0; t < T; t++ {
		frac[t] = float64(utils.Count(history.RawRowView(t), utils.Greater, eps, false)) / float64(N)
	}
	return
}

/*
StabilizationTime is k*dt for the smallest k such that every later level t >= k
has |frac[t] - frac[last]| <= tol*|frac[last]|. A sequence that is constant
from level k on returns exactly k*dt.
*/
func StabilizationTime(frac []float64, dt, tol float64) float64 {
	if len(frac) == 0 {
		return 0
	}
	var (
		last  = frac[len(frac)-1]
		bound = tol * math.Abs(last)
		k     = len(frac) - 1
	)
	for k > 0 && math.Abs(frac[k-1]-last) <= bound {
		k--
	}
	return float64(k) * dt
}

/*
PropagationSpeed is the least squares slope of the mean source distance of
the shocked nodes against time. Shocked nodes without a path to the source
carry no distance and are left out of the mean; levels with no usable node are
skipped. With fewer than two usable levels the speed is zero.
*/
func PropagationSpeed(history *mat.Dense, dist []int, eps, dt float64) (speed float64) {
	if history == nil {
		return 0
	}
	var (
		T, _    = history.Dims()
		times   []float64
		meanDst []float64
	)
	for t := 0; t < T; t++ {
		var (
			sum   float64
			count int
		)
		for _, i := range utils.Find(history.RawRowView(t), utils.Greater, eps, false) {
			if dist[i] == network.Unreachable {
				continue
			}
			sum += float64(dist[i])
			count++
		}
		if count == 0 {
			continue
		}
		times = append(times, float64(t)*dt)
		meanDst = append(meanDst, sum/float64(count))
	}
	if len(times) < 2 {
		return 0
	}
	_, speed = stat.LinearRegression(times, meanDst, nil, false)
	return
}

// TransitionSharpness is the largest forward difference rate of frac
func TransitionSharpness(frac []float64, dt float64) (sharp float64) {
	if len(frac) < 2 {
		return 0
	}
	sharp = math.Inf(-1)
	for t := 0; t+1 < len(frac); t++ {
		if rate := (frac[t+1] - frac[t]) / dt; rate > sharp {
			sharp = rate
		}
	}
	return
}

// Summary bundles the metrics of one run
type Summary struct {
	Stabilization float64
	Speed         float64
	Sharpness     float64
	FinalFraction float64
}

// Evaluate computes every metric for a history seeded at the source whose
// distances are dist
func Evaluate(history *mat.Dense, dist []int, eps, tol, dt float64) (s Summary) {
	frac := ShockedFraction(history, eps)
	if len(frac) == 0 {
		return
	}
	s = Summary{
		Stabilization: StabilizationTime(frac, dt, tol),
		Speed:         PropagationSpeed(history, dist, eps, dt),
		Sharpness:     TransitionSharpness(frac, dt),
		FinalFraction: frac[len(frac)-1],
	}
	return
}
