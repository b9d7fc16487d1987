package Burgers

import (
	"github.com/notargets/netshock/network"
)

type TopologyKind uint8

const (
	GRAPH TopologyKind = iota
	GRID1D
)

func (tk TopologyKind) Print() string {
	switch tk {
	case GRAPH:
		return "Graph"
	case GRID1D:
		return "Grid1D"
	}
	return "Unknown"
}

/*
Grid1D is a uniform finite volume grid of N cells over [XMin, XMax]. Cell i
is centered at XMin + (i+½)DX. The first and last cells are boundary cells and
keep their initial values.
*/
type Grid1D struct {
	N          int
	XMin, XMax float64
	DX         float64
}

func NewGrid1D(xmin, xmax float64, N int) (g Grid1D) {
	g = Grid1D{
		N:    N,
		XMin: xmin,
		XMax: xmax,
	}
	if N > 0 {
		g.DX = (xmax - xmin) / float64(N)
	}
	return
}

// X returns the cell centers
func (g Grid1D) X() (x []float64) {
	x = make([]float64, g.N)
	for i := range x {
		x[i] = g.XMin + (float64(i)+0.5)*g.DX
	}
	return
}

// Topology is the tagged domain variant the integrator runs on
type Topology struct {
	Kind  TopologyKind
	Graph *network.Adjacency // Set for GRAPH
	Grid  Grid1D             // Set for GRID1D
}

func NewGraphTopology(adj *network.Adjacency) Topology {
	return Topology{Kind: GRAPH, Graph: adj}
}

func NewGridTopology(grid Grid1D) Topology {
	return Topology{Kind: GRID1D, Grid: grid}
}

// N is the number of nodes or cells
func (t Topology) N() int {
	switch t.Kind {
	case GRAPH:
		if t.Graph == nil {
			return 0
		}
		return t.Graph.N
	case GRID1D:
		return t.Grid.N
	}
	return 0
}
