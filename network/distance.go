package network

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

const Unreachable = -1

// Distances returns the hop count from source to every vertex, Unreachable
// for vertices in another component
func (g *Graph) Distances(source int) []int {
	return BFSDistances(g.ToGonum(), g.N, source)
}

// BFSDistances walks gg breadth first from source. gg is only read, so one
// converted graph may serve concurrent callers.
func BFSDistances(gg *simple.UndirectedGraph, N, source int) (dist []int) {
	dist = make([]int, N)
	for i := range dist {
		dist[i] = Unreachable
	}
	if source < 0 || source >= N {
		return
	}
	var bf traverse.BreadthFirst
	bf.Walk(gg, simple.Node(source), func(n graph.Node, d int) bool {
		dist[n.ID()] = d
		return false
	})
	return
}
