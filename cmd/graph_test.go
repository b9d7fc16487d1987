package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/netshock/InputParameters"
	"github.com/notargets/netshock/network"
)

func newTestGraphCmd(t *testing.T) *cobra.Command {
	viper.Reset()
	t.Cleanup(viper.Reset)
	cmd := &cobra.Command{Use: "graph"}
	addGraphFlags(cmd)
	cmd.Flags().String("kind", "er", "")
	return cmd
}

func TestGraphInput(t *testing.T) {
	{ // Defaults without flags or files
		cmd := newTestGraphCmd(t)
		require.NoError(t, viper.BindPFlags(cmd.Flags()))
		ip, err := graphInput(cmd)
		require.NoError(t, err)
		assert.Equal(t, InputParameters.NewInputParametersGraph(), ip)
	}
	{ // Flags that are set override the input file
		fileName := filepath.Join(t.TempDir(), "ba.yaml")
		require.NoError(t, os.WriteFile(fileName, []byte(`
Title: "BA network"
Kind: ba
Nodes: 300
Attach: 2
Trials: 5
`), 0644))
		cmd := newTestGraphCmd(t)
		require.NoError(t, cmd.Flags().Set("inputConditionsFile", fileName))
		require.NoError(t, cmd.Flags().Set("nodes", "64"))
		require.NoError(t, cmd.Flags().Set("pIn", "0.25"))
		require.NoError(t, cmd.Flags().Set("seed", "17"))
		require.NoError(t, viper.BindPFlags(cmd.Flags()))
		ip, err := graphInput(cmd)
		require.NoError(t, err)
		assert.Equal(t, "BA network", ip.Title)
		assert.Equal(t, "ba", ip.Kind)
		assert.Equal(t, 2, ip.Attach)
		assert.Equal(t, 5, ip.Trials)
		assert.Equal(t, 64, ip.Nodes)
		assert.Equal(t, 0.25, ip.PIn)
		assert.Equal(t, uint64(17), ip.Seed)
	}
	{
		cmd := newTestGraphCmd(t)
		require.NoError(t, cmd.Flags().Set("inputConditionsFile", filepath.Join(t.TempDir(), "missing.yaml")))
		_, err := graphInput(cmd)
		assert.Error(t, err)
	}
}

func smallGraphInput() *InputParameters.InputParametersGraph {
	ip := InputParameters.NewInputParametersGraph()
	ip.Nodes = 40
	ip.P = 0.1
	ip.Attach = 2
	ip.Communities = 2
	ip.PIn = 0.3
	ip.POut = 0.02
	ip.RewireMax = 500
	ip.Trials = 4
	ip.Workers = 2
	ip.Steps = 80
	ip.DT = 0.02
	return ip
}

func TestRunGraph(t *testing.T) {
	ip := smallGraphInput()
	res, err := RunGraph(ip, false)
	require.NoError(t, err)
	require.Len(t, res.Trials, ip.Trials)
	assert.Equal(t, 0, res.Diverged)
	printHeader()
	printSummary(ip.Kind, res)

	ip.Kind = "lattice"
	_, err = RunGraph(ip, false)
	assert.ErrorIs(t, err, network.ErrUnknownGraphKind)
}

func TestRunCompare(t *testing.T) {
	results, err := RunCompare(smallGraphInput(), false)
	require.NoError(t, err)
	require.Len(t, results, len(network.GraphKindLabels))
	for _, res := range results {
		assert.Len(t, res.Trials, 4)
	}
	// Same seed and kind give the same first row as a direct run
	ip := smallGraphInput()
	ip.Kind = network.GraphKindLabels[0]
	res, err := RunGraph(ip, false)
	require.NoError(t, err)
	assert.Equal(t, res.Trials, results[0].Trials)
}

func TestRun1D(t *testing.T) {
	ip := InputParameters.NewInputParameters1D()
	r1d, err := Run1D(ip)
	require.NoError(t, err)
	r1d.Print()
	assert.True(t, r1d.Finite)
	assert.InDelta(t, 0.4, r1d.FinalTime, 1.e-12)
	assert.InDelta(t, 0.4, r1d.CFL, 1.e-12)
	assert.Less(t, r1d.L1Error, 0.02)
	assert.InDelta(t, r1d.BoundaryFlux, r1d.MassChange, 1.e-9)

	ip.Cells = 0
	_, err = Run1D(ip)
	assert.Error(t, err)
}
