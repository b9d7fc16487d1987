package network

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"gonum.org/v1/gonum/graph/graphs/gen"
	"gonum.org/v1/gonum/graph/simple"
)

type GraphKind uint8

const (
	ERDOS_RENYI GraphKind = iota
	BARABASI_ALBERT
	MODULAR
	ASSORTATIVE
)

var (
	GraphKindNames = map[string]GraphKind{
		"er":          ERDOS_RENYI,
		"ba":          BARABASI_ALBERT,
		"modular":     MODULAR,
		"assortative": ASSORTATIVE,
	}
	GraphKindPrintNames = []string{"Erdos-Renyi", "Barabasi-Albert", "Modular", "Assortative (rewired BA)"}
	GraphKindLabels     = []string{"er", "ba", "modular", "assortative"}
)

func (gk GraphKind) Print() (txt string) {
	if int(gk) >= len(GraphKindPrintNames) {
		return fmt.Sprintf("GraphKind(%d)", gk)
	}
	txt = GraphKindPrintNames[gk]
	return
}

func NewGraphKind(label string) (gk GraphKind, err error) {
	var ok bool
	if gk, ok = GraphKindNames[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("graph kind %q: %w", label, ErrUnknownGraphKind)
	}
	return
}

/*
GeneratorSpec holds everything needed to draw one random graph of a given kind.
Only the fields relevant to Kind are read:

	ERDOS_RENYI      Nodes, P
	BARABASI_ALBERT  Nodes, M
	MODULAR          Nodes, Communities, PIn, POut
	ASSORTATIVE      Nodes, M, Rewire
*/
type GeneratorSpec struct {
	Kind        GraphKind
	Nodes       int
	P           float64 // Edge probability
	M           int     // Edges added per new node
	Communities int
	PIn, POut   float64
	Rewire      RewireOptions
}

func (gs GeneratorSpec) Validate() (err error) {
	if gs.Nodes < 1 {
		return fmt.Errorf("nodes=%d < 1: %w", gs.Nodes, ErrInvalidParameter)
	}
	switch gs.Kind {
	case ERDOS_RENYI:
		err = checkProbability("p", gs.P)
	case BARABASI_ALBERT, ASSORTATIVE:
		if gs.M < 1 || gs.M >= gs.Nodes {
			err = fmt.Errorf("attach=%d must be in [1,%d): %w", gs.M, gs.Nodes, ErrInvalidParameter)
		}
	case MODULAR:
		if gs.Communities < 1 || gs.Communities > gs.Nodes {
			return fmt.Errorf("communities=%d must be in [1,%d]: %w",
				gs.Communities, gs.Nodes, ErrInvalidParameter)
		}
		if err = checkProbability("pIn", gs.PIn); err != nil {
			return
		}
		err = checkProbability("pOut", gs.POut)
	default:
		err = fmt.Errorf("graph kind %d: %w", gs.Kind, ErrUnknownGraphKind)
	}
	return
}

// Generate draws a graph using rng as the only source of randomness
func (gs GeneratorSpec) Generate(rng *rand.Rand) (g *Graph, err error) {
	if err = gs.Validate(); err != nil {
		return
	}
	switch gs.Kind {
	case ERDOS_RENYI:
		g, err = ErdosRenyi(gs.Nodes, gs.P, rng)
	case BARABASI_ALBERT:
		g, err = BarabasiAlbert(gs.Nodes, gs.M, rng)
	case MODULAR:
		g, err = Modular(gs.Nodes, gs.Communities, gs.PIn, gs.POut, rng)
	case ASSORTATIVE:
		if g, err = BarabasiAlbert(gs.Nodes, gs.M, rng); err != nil {
			return
		}
		g, _ = Rewire(g, gs.Rewire, rng)
	}
	return
}

// ErdosRenyi draws a G(n,p) graph
func ErdosRenyi(n int, p float64, rng *rand.Rand) (g *Graph, err error) {
	if n < 1 {
		return nil, fmt.Errorf("ErdosRenyi: n=%d: %w", n, ErrInvalidParameter)
	}
	if err = checkProbability("p", p); err != nil {
		return
	}
	// Gnp allocates its own nodes, ids 0..n-1 on an empty graph
	gg := simple.NewUndirectedGraph()
	if err = gen.Gnp(gg, n, p, rng); err != nil {
		return nil, fmt.Errorf("ErdosRenyi: %w", err)
	}
	g = FromGonum(n, gg)
	return
}

// BarabasiAlbert grows a preferential attachment graph, each new vertex
// attaching m edges
func BarabasiAlbert(n, m int, rng *rand.Rand) (g *Graph, err error) {
	if m < 1 || n <= m {
		return nil, fmt.Errorf("BarabasiAlbert: n=%d m=%d: %w", n, m, ErrInvalidParameter)
	}
	gg := newGonumGraph(n)
	if err = gen.PreferentialAttachment(gg, n, m, rng); err != nil {
		return nil, fmt.Errorf("BarabasiAlbert: %w", err)
	}
	g = FromGonum(n, gg)
	return
}

/*
Modular draws a stochastic block model: vertices are split into contiguous
communities of (nearly) equal size, vertex i belonging to community
i*communities/n. Pairs inside a community connect with probability pIn, pairs
across communities with probability pOut. Pairs are visited in ascending order,
so a fixed rng state gives a fixed graph.
*/
func Modular(n, communities int, pIn, pOut float64, rng *rand.Rand) (g *Graph, err error) {
	if n < 1 || communities < 1 || communities > n {
		return nil, fmt.Errorf("Modular: n=%d communities=%d: %w", n, communities, ErrInvalidParameter)
	}
	if err = checkProbability("pIn", pIn); err != nil {
		return
	}
	if err = checkProbability("pOut", pOut); err != nil {
		return
	}
	g = NewGraph(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p := pOut
			if Community(i, n, communities) == Community(j, n, communities) {
				p = pIn
			}
			if rng.Float64() < p {
				g.AddEdge(i, j)
			}
		}
	}
	return
}

// Community returns the block index Modular assigns to vertex i
func Community(i, n, communities int) int {
	return i * communities / n
}

func newGonumGraph(n int) (gg *simple.UndirectedGraph) {
	gg = simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		gg.AddNode(simple.Node(i))
	}
	return
}

func checkProbability(name string, p float64) error {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return fmt.Errorf("%s=%v not in [0,1]: %w", name, p, ErrInvalidParameter)
	}
	return nil
}
