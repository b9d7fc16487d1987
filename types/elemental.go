package types

import (
	"fmt"
	"math"
)

/*
EdgeKey is an always positive number that stores an undirected edge's vertices
as indices in a way that can be compared and hashed.
An edge between vertices [4] and [0] will always be stored as [0,4], in the
ascending order of the index values
*/
type EdgeKey uint64

func NewEdgeKey(verts [2]int) (packed EdgeKey) {
	// This packs two index coordinates into two 32 bit unsigned integers to act as a hash and an indirect access method
	var (
		limit = math.MaxUint32
	)
	for _, vert := range verts {
		if vert < 0 || vert > limit {
			panic(fmt.Errorf("unable to pack two ints into a uint64, have %d and %d as inputs",
				verts[0], verts[1]))
		}
	}
	var i1, i2 int
	if verts[0] <= verts[1] {
		i1, i2 = verts[0], verts[1]
	} else {
		i1, i2 = verts[1], verts[0]
	}
	packed = EdgeKey(i1 + i2<<32)
	return
}

func (ek EdgeKey) GetVertices(rev bool) (verts [2]int) {
	var (
		enTmp EdgeKey
	)
	enTmp = ek >> 32
	verts[1] = int(enTmp)
	verts[0] = int(ek - enTmp*(1<<32))
	if rev {
		verts[0], verts[1] = verts[1], verts[0]
	}
	return
}

// EdgeSet is a membership index over undirected edges
type EdgeSet map[EdgeKey]struct{}

func (es EdgeSet) Add(u, v int) { es[NewEdgeKey([2]int{u, v})] = struct{}{} }

func (es EdgeSet) Remove(u, v int) { delete(es, NewEdgeKey([2]int{u, v})) }

func (es EdgeSet) Has(u, v int) (ok bool) {
	_, ok = es[NewEdgeKey([2]int{u, v})]
	return
}
