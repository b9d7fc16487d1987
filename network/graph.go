package network

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/notargets/netshock/types"
)

var (
	ErrInvalidParameter = errors.New("network: invalid parameter")
	ErrUnknownGraphKind = errors.New("network: unknown graph kind")
)

/*
Graph is an undirected simple graph over the vertices 0..N-1. Edges are stored
in canonical order [u,v] with u < v; self loops and repeated edges are dropped
on insertion, so the edge list is always a set.
*/
type Graph struct {
	N     int
	Edges [][2]int
	index types.EdgeSet
}

func NewGraph(N int) (g *Graph) {
	g = &Graph{
		N:     N,
		index: make(types.EdgeSet),
	}
	return
}

// AddEdge inserts the edge u-v, returning false for loops, repeats and
// vertices outside the graph
func (g *Graph) AddEdge(u, v int) bool {
	if u == v || u < 0 || v < 0 || u >= g.N || v >= g.N {
		return false
	}
	if g.index.Has(u, v) {
		return false
	}
	g.index.Add(u, v)
	g.Edges = append(g.Edges, canonical(u, v))
	return true
}

func (g *Graph) HasEdge(u, v int) bool {
	return g.index.Has(u, v)
}

func (g *Graph) NumEdges() int { return len(g.Edges) }

func (g *Graph) Clone() (gc *Graph) {
	gc = NewGraph(g.N)
	gc.Edges = make([][2]int, len(g.Edges))
	copy(gc.Edges, g.Edges)
	for k := range g.index {
		gc.index[k] = struct{}{}
	}
	return
}

func (g *Graph) Degrees() (deg []int) {
	deg = make([]int, g.N)
	for _, e := range g.Edges {
		deg[e[0]]++
		deg[e[1]]++
	}
	return
}

func (g *Graph) MeanDegree() float64 {
	if g.N == 0 {
		return 0
	}
	return 2 * float64(len(g.Edges)) / float64(g.N)
}

// replaceEdge swaps the edge stored at position k for u-v
func (g *Graph) replaceEdge(k, u, v int) {
	old := g.Edges[k]
	g.index.Remove(old[0], old[1])
	g.index.Add(u, v)
	g.Edges[k] = canonical(u, v)
}

// ToGonum returns the graph as a gonum simple graph with every vertex present,
// including isolated ones
func (g *Graph) ToGonum() (gg *simple.UndirectedGraph) {
	gg = newGonumGraph(g.N)
	for _, e := range g.Edges {
		gg.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
	}
	return
}

// FromGonum copies the edges of gg among vertices 0..N-1
func FromGonum(N int, gg *simple.UndirectedGraph) (g *Graph) {
	g = NewGraph(N)
	edges := gg.Edges()
	for edges.Next() {
		e := edges.Edge()
		g.AddEdge(int(e.From().ID()), int(e.To().ID()))
	}
	g.sortEdges()
	return
}

// sortEdges puts the edge list in lexical order; map backed sources yield
// edges in random order and edge positions drive the rewiring draws
func (g *Graph) sortEdges() {
	sort.Slice(g.Edges, func(i, j int) bool {
		a, b := g.Edges[i], g.Edges[j]
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		return a[1] < b[1]
	})
}

func canonical(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}
