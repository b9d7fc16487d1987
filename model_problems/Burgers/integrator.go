package Burgers

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/netshock/utils"
)

/*
Integrator advances a state vector with the explicit conservative update

	Graph:  u_next[i] = u[i] - dt Σ_{j∈N(i)} ( F(u[i],u[j]) - F(u[j],u[i]) )
	Grid1D: u_next[i] = u[i] - dt/dx ( F(u[i],u[i+1]) - F(u[i-1],u[i]) ),  0 < i < N-1

Every step reads only the previous level and writes a separate buffer. There
is no time step control; the caller owns stability through dt or the clamp
policy.
*/
type Integrator struct {
	Topo Topology
	P    Params
	flux FluxFunc
}

func NewIntegrator(topo Topology, p Params) (it *Integrator) {
	it = &Integrator{
		Topo: topo,
		P:    p,
		flux: p.Flux.Func(),
	}
	return
}

// Step writes the next level computed from uPrev into uNext. The two slices
// must not alias.
func (it *Integrator) Step(uPrev, uNext []float64) {
	switch it.Topo.Kind {
	case GRAPH:
		it.stepGraph(uPrev, uNext)
	case GRID1D:
		it.stepGrid(uPrev, uNext)
	}
	if cp := it.P.Clamp; cp.Enabled {
		utils.Clamp(uNext, cp.Min, cp.Max)
	}
}

func (it *Integrator) stepGraph(uPrev, uNext []float64) {
	var (
		adj  = it.Topo.Graph
		dt   = it.P.DT
		flux = it.flux
	)
	for i := 0; i < adj.N; i++ {
		var (
			ui  = uPrev[i]
			net float64
		)
		for _, j := range adj.Neighbors(i) {
			if j == i {
				continue
			}
			uj := uPrev[j]
			net += flux(ui, uj) - flux(uj, ui)
		}
		uNext[i] = ui - dt*net
	}
}

func (it *Integrator) stepGrid(uPrev, uNext []float64) {
	var (
		N      = it.Topo.Grid.N
		lambda = it.P.DT / it.Topo.Grid.DX
		flux   = it.flux
	)
	if N == 0 {
		return
	}
	uNext[0] = uPrev[0]
	uNext[N-1] = uPrev[N-1]
	if N < 3 {
		return
	}
	// The right face flux of cell i is the left face flux of cell i+1
	fLeft := flux(uPrev[0], uPrev[1])
	for i := 1; i < N-1; i++ {
		fRight := flux(uPrev[i], uPrev[i+1])
		uNext[i] = uPrev[i] - lambda*(fRight-fLeft)
		fLeft = fRight
	}
}

/*
Run integrates from u0 for P.Steps-1 steps and returns the P.Steps x N history,
row t holding the state after t steps. Row 0 is a copy of u0. A nil history is
returned when the domain is empty, u0 does not match it or Steps < 1.
*/
func (it *Integrator) Run(u0 []float64) (history *mat.Dense) {
	var (
		N = it.Topo.N()
		T = it.P.Steps
	)
	if N == 0 || T < 1 || len(u0) != N {
		return nil
	}
	history = mat.NewDense(T, N, nil)
	history.SetRow(0, u0)
	for t := 1; t < T; t++ {
		it.Step(history.RawRowView(t-1), history.RawRowView(t))
	}
	return
}

// RunShock seeds P.U0 at P.Source and runs
func (it *Integrator) RunShock() *mat.Dense {
	return it.Run(ShockIC(it.Topo.N(), it.P.Source, it.P.U0))
}

// TotalMass is the conserved quantity Σ u
func TotalMass(u []float64) float64 {
	return floats.Sum(u)
}

// CFLNumber is dt max|u| / dx, the Courant number of the grid scheme
func CFLNumber(u []float64, dt, dx float64) float64 {
	if dx <= 0 {
		return math.Inf(1)
	}
	return dt * utils.MaxAbs(u) / dx
}
