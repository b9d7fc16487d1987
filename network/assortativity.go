package network

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"
)

// Assortativity is the Pearson correlation between the degrees at the two
// ends of every edge, each edge counted in both orientations. Graphs without
// edges or with a single degree value have zero assortativity.
func (g *Graph) Assortativity() (r float64) {
	var (
		deg  = g.Degrees()
		x, y = make([]float64, 0, 2*len(g.Edges)), make([]float64, 0, 2*len(g.Edges))
	)
	if len(g.Edges) == 0 {
		return 0
	}
	for _, e := range g.Edges {
		du, dv := float64(deg[e[0]]), float64(deg[e[1]])
		x = append(x, du, dv)
		y = append(y, dv, du)
	}
	if stat.Variance(x, nil) == 0 {
		return 0
	}
	r = stat.Correlation(x, y, nil)
	return
}

type RewireOptions struct {
	Target      float64 // Desired assortativity
	Tolerance   float64 // Stop once |r - Target| <= Tolerance
	MaxAttempts int     // Bound on double edge swap proposals
}

func DefaultRewireOptions(target float64) RewireOptions {
	return RewireOptions{
		Target:      target,
		Tolerance:   0.01,
		MaxAttempts: 20000,
	}
}

/*
Rewire drives the assortativity of a copy of g toward opts.Target with double
edge swaps: two edges (a,b) and (c,d) with four distinct endpoints become (a,d)
and (c,b) when neither new edge exists yet. A swap is kept only when it moves
the realized assortativity closer to the target, so the working graph is always
the best seen. The degree sequence is invariant under swaps, which leaves only
the cross term of the correlation to update per proposal.

Rewire never fails: when no swap is possible it returns the unmodified copy.
All draws come from rng, so a fixed seed reproduces the result.
*/
func Rewire(g *Graph, opts RewireOptions, rng *rand.Rand) (best *Graph, r float64) {
	var (
		E   = len(g.Edges)
		deg = g.Degrees()
		ac  = newAssortativityCalc(g, deg)
	)
	best = g.Clone()
	r = ac.value()
	if E < 2 || ac.degenerate() {
		return
	}
	gap := math.Abs(r - opts.Target)
	for attempt := 0; attempt < opts.MaxAttempts && gap > opts.Tolerance; attempt++ {
		k1, k2 := rng.IntN(E), rng.IntN(E)
		if k1 == k2 {
			continue
		}
		a, b := best.Edges[k1][0], best.Edges[k1][1]
		c, d := best.Edges[k2][0], best.Edges[k2][1]
		// Orientation of the second edge picks which of the two possible swaps is proposed
		if rng.IntN(2) == 1 {
			c, d = d, c
		}
		if a == c || a == d || b == c || b == d {
			continue
		}
		if best.HasEdge(a, d) || best.HasEdge(c, b) {
			continue
		}
		delta := float64(deg[a]*deg[d]+deg[c]*deg[b]) - float64(deg[a]*deg[b]+deg[c]*deg[d])
		rNew := ac.valueWith(delta)
		if newGap := math.Abs(rNew - opts.Target); newGap < gap {
			best.replaceEdge(k1, a, d)
			best.replaceEdge(k2, c, b)
			ac.accept(delta)
			r, gap = rNew, newGap
		}
	}
	return
}

// assortativityCalc holds the degree moments that survive edge swaps
type assortativityCalc struct {
	m        float64 // Edge ends, 2E
	mean     float64 // Degree mean over edge ends
	variance float64 // Population variance over edge ends
	cross    float64 // Sum over edges of deg(u)*deg(v)
}

func newAssortativityCalc(g *Graph, deg []int) (ac *assortativityCalc) {
	ac = &assortativityCalc{m: 2 * float64(len(g.Edges))}
	if len(g.Edges) == 0 {
		return
	}
	var s1, s2 float64
	for _, e := range g.Edges {
		du, dv := float64(deg[e[0]]), float64(deg[e[1]])
		s1 += du + dv
		s2 += du*du + dv*dv
		ac.cross += du * dv
	}
	ac.mean = s1 / ac.m
	ac.variance = s2/ac.m - ac.mean*ac.mean
	return
}

func (ac *assortativityCalc) degenerate() bool {
	return ac.m == 0 || ac.variance <= 0
}

func (ac *assortativityCalc) value() float64 {
	return ac.valueWith(0)
}

func (ac *assortativityCalc) valueWith(delta float64) float64 {
	if ac.degenerate() {
		return 0
	}
	return (2*(ac.cross+delta)/ac.m - ac.mean*ac.mean) / ac.variance
}

func (ac *assortativityCalc) accept(delta float64) {
	ac.cross += delta
}
