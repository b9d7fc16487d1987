package ensemble

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/stat"

	"github.com/notargets/netshock/metrics"
	"github.com/notargets/netshock/model_problems/Burgers"
	"github.com/notargets/netshock/network"
	"github.com/notargets/netshock/utils"
)

var ErrInvalidConfig = errors.New("ensemble: invalid configuration")

// Generator draws the topology for a trial from rng
type Generator func(rng *rand.Rand) (*network.Graph, error)

// SpecGenerator adapts a GeneratorSpec to a Generator
func SpecGenerator(gs network.GeneratorSpec) Generator {
	return gs.Generate
}

type Config struct {
	Trials        int
	Workers       int    // Zero uses every CPU
	Seed          uint64 // Trial n draws from PCG(Seed, n+1); a shared topology from PCG(Seed, 0)
	FreshTopology bool   // Draw a new graph per trial instead of sharing one
	Epsilon       float64
	Tolerance     float64
	Params        Burgers.Params // Source is drawn per trial
	Verbose       bool
}

func (cfg Config) Validate() error {
	if cfg.Trials < 1 {
		return fmt.Errorf("trials=%d < 1: %w", cfg.Trials, ErrInvalidConfig)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("workers=%d < 0: %w", cfg.Workers, ErrInvalidConfig)
	}
	if cfg.Tolerance < 0 {
		return fmt.Errorf("tolerance=%v < 0: %w", cfg.Tolerance, ErrInvalidConfig)
	}
	// Source is drawn later, any single node domain validates the rest
	p := cfg.Params
	p.Source = 0
	if err := p.Validate(1); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

type TrialResult struct {
	Trial         int
	Source        int
	Nodes, Edges  int
	Assortativity float64
	Finite        bool // False when the history diverged
	metrics.Summary
}

// Stats is the mean and standard error of one metric over all trials
type Stats struct {
	Mean, StdErr float64
}

type Result struct {
	Trials        []TrialResult
	Stabilization Stats
	Speed         Stats
	Sharpness     Stats
	FinalFraction Stats
	Assortativity Stats
	Diverged      int
}

// topology is one graph prepared for integration, read only once built
type topology struct {
	graph  *network.Graph
	gonum  *simple.UndirectedGraph
	topo   Burgers.Topology
	assort float64
}

func newTopology(g *network.Graph) (tp *topology) {
	tp = &topology{
		graph:  g,
		gonum:  g.ToGonum(),
		topo:   Burgers.NewGraphTopology(network.NewAdjacency(g)),
		assort: g.Assortativity(),
	}
	return
}

/*
Run executes cfg.Trials independent trials and aggregates their metrics. Each
trial depends only on its own random stream, so the result does not depend on
the number of workers. Trials are split into contiguous partitions, one
goroutine per partition, and aggregation happens after every partition is done.
*/
func Run(cfg Config, gen Generator) (res *Result, err error) {
	if err = cfg.Validate(); err != nil {
		return
	}
	if gen == nil {
		return nil, fmt.Errorf("nil generator: %w", ErrInvalidConfig)
	}
	var shared *topology
	if !cfg.FreshTopology {
		var g *network.Graph
		if g, err = gen(rand.New(rand.NewPCG(cfg.Seed, 0))); err != nil {
			return nil, fmt.Errorf("shared topology: %w", err)
		}
		shared = newTopology(g)
	}
	var (
		NP     = utils.ParallelDegree(cfg.Workers, cfg.Trials)
		pm     = utils.NewPartitionMap(NP, cfg.Trials)
		trials = make([]TrialResult, cfg.Trials)
		errs   = make([]error, NP)
		wg     = sync.WaitGroup{}
	)
	if cfg.Verbose {
		fmt.Printf("Running %d trials on %d go routines\n", cfg.Trials, NP)
	}
	for np := 0; np < NP; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(np)
			for n := kMin; n < kMax; n++ {
				if trials[n], errs[np] = runTrial(cfg, n, gen, shared); errs[np] != nil {
					return
				}
			}
		}(np)
	}
	wg.Wait()
	if err = errors.Join(errs...); err != nil {
		return
	}
	res = Aggregate(trials)
	if cfg.Verbose {
		for _, tr := range trials {
			fmt.Printf("trial %4d: source = %5d, stab = %8.4f, speed = %8.4f, sharp = %8.4f, final = %6.4f\n",
				tr.Trial, tr.Source, tr.Stabilization, tr.Speed, tr.Sharpness, tr.FinalFraction)
		}
		fmt.Println(utils.GetMemUsage())
	}
	return
}

func runTrial(cfg Config, n int, gen Generator, shared *topology) (tr TrialResult, err error) {
	var (
		rng = rand.New(rand.NewPCG(cfg.Seed, uint64(n)+1))
		tp  = shared
	)
	if tp == nil {
		var g *network.Graph
		if g, err = gen(rng); err != nil {
			return tr, fmt.Errorf("trial %d: %w", n, err)
		}
		tp = newTopology(g)
	}
	N := tp.graph.N
	if N == 0 {
		return tr, fmt.Errorf("trial %d: empty graph: %w", n, ErrInvalidConfig)
	}
	p := cfg.Params
	p.Source = rng.IntN(N)
	H := Burgers.NewIntegrator(tp.topo, p).RunShock()
	dist := network.BFSDistances(tp.gonum, N, p.Source)
	tr = TrialResult{
		Trial:         n,
		Source:        p.Source,
		Nodes:         N,
		Edges:         tp.graph.NumEdges(),
		Assortativity: tp.assort,
		Finite:        utils.IsFinite(H),
		Summary:       metrics.Evaluate(H, dist, cfg.Epsilon, cfg.Tolerance, p.DT),
	}
	return
}

// Aggregate computes the mean and standard error of every metric
func Aggregate(trials []TrialResult) (res *Result) {
	var (
		n                              = len(trials)
		stab, speed, sharp, final, ast = make([]float64, n), make([]float64, n), make([]float64, n),
			make([]float64, n), make([]float64, n)
	)
	res = &Result{Trials: trials}
	for i, tr := range trials {
		stab[i], speed[i], sharp[i] = tr.Stabilization, tr.Speed, tr.Sharpness
		final[i], ast[i] = tr.FinalFraction, tr.Assortativity
		if !tr.Finite {
			res.Diverged++
		}
	}
	res.Stabilization = NewStats(stab)
	res.Speed = NewStats(speed)
	res.Sharpness = NewStats(sharp)
	res.FinalFraction = NewStats(final)
	res.Assortativity = NewStats(ast)
	return
}

func NewStats(x []float64) (s Stats) {
	switch len(x) {
	case 0:
		return
	case 1:
		s.Mean = x[0]
		return
	}
	mean, std := stat.MeanStdDev(x, nil)
	s = Stats{
		Mean:   mean,
		StdErr: stat.StdErr(std, float64(len(x))),
	}
	return
}

func (s Stats) Print() string {
	return fmt.Sprintf("%10.5f ± %-9.5f", s.Mean, s.StdErr)
}
