package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/netshock/network"
)

func TestShockedFraction(t *testing.T) {
	H := mat.NewDense(3, 4, []float64{
		1, 0, 0, 0,
		0.5, 0.5, 0.001, 0,
		0.3, 0.3, 0.3, -2,
	})
	assert.Equal(t, []float64{0.25, 0.5, 0.75}, ShockedFraction(H, 0.01))
	assert.Nil(t, ShockedFraction(nil, 0.01))
}

func TestStabilizationTime(t *testing.T) {
	dt := 0.1
	{ // Constant from level k on gives exactly k*dt
		k := 3
		frac := []float64{0, 0.2, 0.5, 0.7, 0.7, 0.7}
		assert.Equal(t, float64(k)*dt, StabilizationTime(frac, dt, 0))
		assert.Equal(t, float64(k)*dt, StabilizationTime(frac, dt, 0.01))
	}
	{ // Relative tolerance around the final value
		frac := []float64{0, 0.5, 0.985, 1.0, 0.99, 1.0}
		assert.Equal(t, 2*dt, StabilizationTime(frac, dt, 0.02))
		assert.Equal(t, 5*dt, StabilizationTime(frac, dt, 0))
	}
	{ // Collapse to zero needs exact agreement
		assert.Equal(t, 2*dt, StabilizationTime([]float64{0, 0.5, 0, 0}, dt, 0.5))
	}
	{
		assert.Equal(t, 0., StabilizationTime(nil, dt, 0.1))
		assert.Equal(t, 0., StabilizationTime([]float64{0.4, 0.4}, dt, 0))
	}
}

func TestTransitionSharpness(t *testing.T) {
	assert.InDelta(t, 1., TransitionSharpness([]float64{0, 0.1, 0.6, 0.7}, 0.5), 1.e-12)
	assert.InDelta(t, -0.4, TransitionSharpness([]float64{1, 0.8, 0.6}, 0.5), 1.e-12)
	assert.Equal(t, 0., TransitionSharpness([]float64{1}, 0.5))
}

func TestPropagationSpeed(t *testing.T) {
	var (
		N  = 6
		T  = 5
		dt = 0.25
		H  = mat.NewDense(T, N, nil)
		// Path 0-1-2-3-4 plus a vertex 5 in its own component
		dist = []int{0, 1, 2, 3, 4, network.Unreachable}
	)
	// Level t >= 1 has vertices 0..t-1 shocked, vertex 5 is always shocked
	for tt := 1; tt < T; tt++ {
		for i := 0; i < tt; i++ {
			H.Set(tt, i, 1)
		}
	}
	for tt := 0; tt < T; tt++ {
		H.Set(tt, 5, 1)
	}
	{ // Mean distance (t-1)/2 against time t*dt
		assert.InDelta(t, 0.5/dt, PropagationSpeed(H, dist, 0.5, dt), 1.e-12)
	}
	{ // Not enough usable levels
		assert.Equal(t, 0., PropagationSpeed(H.Slice(0, 2, 0, N).(*mat.Dense), dist, 0.5, dt))
		assert.Equal(t, 0., PropagationSpeed(nil, dist, 0.5, dt))
	}
	{
		s := Evaluate(H, dist, 0.5, 0, dt)
		assert.InDelta(t, 0.5/dt, s.Speed, 1.e-12)
		assert.Equal(t, 5./6., s.FinalFraction)
		assert.Equal(t, 4*dt, s.Stabilization)
		assert.InDelta(t, (1./6.)/dt, s.Sharpness, 1.e-12)
		assert.Equal(t, Summary{}, Evaluate(nil, dist, 0.5, 0, dt))
	}
}
