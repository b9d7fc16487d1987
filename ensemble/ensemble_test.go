package ensemble

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/netshock/model_problems/Burgers"
	"github.com/notargets/netshock/network"
)

func testConfig() Config {
	p := Burgers.DefaultParams()
	p.DT = 0.02
	p.Steps = 60
	return Config{
		Trials:    12,
		Seed:      42,
		Epsilon:   1.e-3,
		Tolerance: 0.05,
		Params:    p,
	}
}

func TestRun(t *testing.T) {
	gen := SpecGenerator(network.GeneratorSpec{Kind: network.ERDOS_RENYI, Nodes: 50, P: 0.08})
	{ // Worker count does not change any trial
		cfg := testConfig()
		var results []*Result
		for _, workers := range []int{1, 3, 5, 12} {
			cfg.Workers = workers
			res, err := Run(cfg, gen)
			require.NoError(t, err)
			results = append(results, res)
		}
		for _, res := range results[1:] {
			assert.Equal(t, results[0].Trials, res.Trials)
			assert.Equal(t, results[0].Speed, res.Speed)
		}
		res := results[0]
		require.Len(t, res.Trials, cfg.Trials)
		for n, tr := range res.Trials {
			assert.Equal(t, n, tr.Trial)
			assert.True(t, tr.Source >= 0 && tr.Source < 50)
			assert.True(t, tr.Finite)
			assert.True(t, tr.FinalFraction > 0 && tr.FinalFraction <= 1)
		}
		assert.Equal(t, 0, res.Diverged)
	}
	{ // Shared topology is drawn once
		cfg := testConfig()
		res, err := Run(cfg, gen)
		require.NoError(t, err)
		for _, tr := range res.Trials {
			assert.Equal(t, res.Trials[0].Edges, tr.Edges)
			assert.Equal(t, res.Trials[0].Assortativity, tr.Assortativity)
		}
		assert.InDelta(t, 0., res.Assortativity.StdErr, 1.e-12)
	}
	{ // Fresh topology per trial, seeds are repeatable
		cfg := testConfig()
		cfg.FreshTopology = true
		res1, err := Run(cfg, gen)
		require.NoError(t, err)
		cfg.Workers = 4
		res2, err := Run(cfg, gen)
		require.NoError(t, err)
		assert.Equal(t, res1.Trials, res2.Trials)
		edges := map[int]bool{}
		for _, tr := range res1.Trials {
			edges[tr.Edges] = true
		}
		assert.Greater(t, len(edges), 1)
	}
}

func TestRunErrors(t *testing.T) {
	gen := SpecGenerator(network.GeneratorSpec{Kind: network.ERDOS_RENYI, Nodes: 10, P: 0.3})
	{
		cfg := testConfig()
		cfg.Trials = 0
		_, err := Run(cfg, gen)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	}
	{
		cfg := testConfig()
		cfg.Params.DT = -1
		_, err := Run(cfg, gen)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.ErrorIs(t, err, Burgers.ErrInvalidParameter)
	}
	{
		_, err := Run(testConfig(), nil)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	}
	{ // Generator failures surface from every worker
		boom := errors.New("boom")
		cfg := testConfig()
		cfg.FreshTopology = true
		cfg.Workers = 3
		_, err := Run(cfg, func(rng *rand.Rand) (*network.Graph, error) { return nil, boom })
		assert.ErrorIs(t, err, boom)
		cfg.FreshTopology = false
		_, err = Run(cfg, func(rng *rand.Rand) (*network.Graph, error) { return network.NewGraph(0), nil })
		assert.ErrorIs(t, err, ErrInvalidConfig)
	}
}

func TestStats(t *testing.T) {
	assert.Equal(t, Stats{}, NewStats(nil))
	assert.Equal(t, Stats{Mean: 3}, NewStats([]float64{3}))
	s := NewStats([]float64{1, 2, 3, 4})
	assert.InDelta(t, 2.5, s.Mean, 1.e-12)
	// Sample std dev sqrt(5/3) over sqrt(4)
	assert.InDelta(t, 0.6454972243679028, s.StdErr, 1.e-12)

	res := Aggregate([]TrialResult{{Finite: true}, {Finite: false}})
	assert.Equal(t, 1, res.Diverged)
}
