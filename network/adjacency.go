package network

import (
	"sort"

	"github.com/james-bowman/sparse"
)

/*
Adjacency is a read-only neighbor index in compressed sparse row form: the
neighbors of vertex i are Index[Offsets[i]:Offsets[i+1]], sorted ascending.
It is built once per topology and shared by every trial that integrates on it.
*/
type Adjacency struct {
	N       int
	Offsets []int // Dimension N+1
	Index   []int
}

func NewAdjacency(g *Graph) (adj *Adjacency) {
	adj = &Adjacency{
		N:       g.N,
		Offsets: make([]int, g.N+1),
	}
	if g.N == 0 || len(g.Edges) == 0 {
		return
	}
	// Symmetric connectivity matrix, rows of the CSR form are the neighbor lists
	SpA := sparse.NewDOK(g.N, g.N)
	for _, e := range g.Edges {
		if e[0] == e[1] {
			continue
		}
		SpA.Set(e[0], e[1], 1)
		SpA.Set(e[1], e[0], 1)
	}
	raw := SpA.ToCSR().RawMatrix()
	copy(adj.Offsets, raw.Indptr)
	adj.Index = make([]int, len(raw.Ind))
	copy(adj.Index, raw.Ind)
	for i := 0; i < adj.N; i++ {
		sort.Ints(adj.Neighbors(i))
	}
	return
}

func (adj *Adjacency) Neighbors(i int) []int {
	return adj.Index[adj.Offsets[i]:adj.Offsets[i+1]]
}

func (adj *Adjacency) Degree(i int) int {
	return adj.Offsets[i+1] - adj.Offsets[i]
}

func (adj *Adjacency) NumEdges() int {
	return len(adj.Index) / 2
}
