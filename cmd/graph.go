/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/netshock/InputParameters"
	"github.com/notargets/netshock/ensemble"
	"github.com/notargets/netshock/network"
)

// GraphCmd represents the graph command
var GraphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Ensemble of shock propagation trials on one kind of random network",
	Long: `
Draws a random network, seeds a shock at a random node and integrates Burgers'
equation across the edges, repeated over an ensemble of trials. Parameters come
from flags, the config file or a YAML input file (-I) like:

########################################
Title: "BA network"
Kind: ba            # er, ba, modular or assortative
Nodes: 500
Attach: 3
Trials: 40
Seed: 7
DT: 0.01
Steps: 500
Clamp: none         # none, wide, narrow or min:max
FluxType: Godunov   # or Rusanov
########################################

netshock graph --kind modular --communities 5 --pIn 0.1 --pOut 0.002`,
	PreRun: func(cmd *cobra.Command, args []string) {
		_ = viper.BindPFlags(cmd.Flags())
	},
	Run: func(cmd *cobra.Command, args []string) {
		ip, err := graphInput(cmd)
		exitOnError(err)
		verbose := viper.GetBool("verbose")
		if verbose {
			ip.Print()
		}
		res, err := RunGraph(ip, verbose)
		exitOnError(err)
		printHeader()
		printSummary(ip.Kind, res)
	},
}

func init() {
	rootCmd.AddCommand(GraphCmd)
	addGraphFlags(GraphCmd)
	GraphCmd.Flags().StringP("kind", "k", InputParameters.NewInputParametersGraph().Kind,
		fmt.Sprintf("network kind, one of %v", network.GraphKindLabels))
}

func addGraphFlags(cmd *cobra.Command) {
	ip := InputParameters.NewInputParametersGraph()
	cmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file with the run parameters, flags that are set override it")
	cmd.Flags().IntP("nodes", "n", ip.Nodes, "number of nodes")
	cmd.Flags().Float64("prob", ip.P, "Erdos-Renyi edge probability")
	cmd.Flags().Int("attach", ip.Attach, "Barabasi-Albert edges attached per new node")
	cmd.Flags().Int("communities", ip.Communities, "number of communities in the modular network")
	cmd.Flags().Float64("pIn", ip.PIn, "edge probability inside a community")
	cmd.Flags().Float64("pOut", ip.POut, "edge probability between communities")
	cmd.Flags().Float64("target", ip.Target, "target degree assortativity of the rewired network")
	cmd.Flags().IntP("trials", "t", ip.Trials, "number of trials in the ensemble")
	cmd.Flags().IntP("workers", "w", ip.Workers, "go routines running trials, 0 uses every CPU")
	cmd.Flags().Uint64("seed", ip.Seed, "random seed, equal seeds reproduce a run")
	cmd.Flags().Bool("fresh", ip.FreshTopology, "draw a new network for every trial")
	cmd.Flags().Float64("dt", ip.DT, "time step")
	cmd.Flags().Int("steps", ip.Steps, "number of stored time levels, including the initial condition")
	cmd.Flags().Float64("u0", ip.U0, "shock magnitude at the source node")
	cmd.Flags().Float64("eps", ip.Epsilon, "a node is shocked when u > eps")
	cmd.Flags().Float64("tol", ip.Tolerance, "relative tolerance for the stabilization time")
	cmd.Flags().String("clamp", ip.Clamp, "clamp policy: none, wide, narrow or min:max")
	cmd.Flags().String("flux", ip.FluxType, "numerical flux: Godunov or Rusanov")
}

func graphInput(cmd *cobra.Command) (ip *InputParameters.InputParametersGraph, err error) {
	ip = InputParameters.NewInputParametersGraph()
	if fileName, _ := cmd.Flags().GetString("inputConditionsFile"); len(fileName) != 0 {
		if err = readInputFile(fileName, ip.Parse); err != nil {
			return
		}
	}
	overlayString("kind", &ip.Kind)
	overlayInt("nodes", &ip.Nodes)
	overlayFloat64("prob", &ip.P)
	overlayInt("attach", &ip.Attach)
	overlayInt("communities", &ip.Communities)
	overlayFloat64("pIn", &ip.PIn)
	overlayFloat64("pOut", &ip.POut)
	overlayFloat64("target", &ip.Target)
	overlayInt("trials", &ip.Trials)
	overlayInt("workers", &ip.Workers)
	overlayUint64("seed", &ip.Seed)
	overlayBool("fresh", &ip.FreshTopology)
	overlayFloat64("dt", &ip.DT)
	overlayInt("steps", &ip.Steps)
	overlayFloat64("u0", &ip.U0)
	overlayFloat64("eps", &ip.Epsilon)
	overlayFloat64("tol", &ip.Tolerance)
	overlayString("clamp", &ip.Clamp)
	overlayString("flux", &ip.FluxType)
	return
}

func RunGraph(ip *InputParameters.InputParametersGraph, verbose bool) (res *ensemble.Result, err error) {
	var (
		gs  network.GeneratorSpec
		cfg ensemble.Config
	)
	if gs, err = ip.GeneratorSpec(); err != nil {
		return
	}
	if cfg, err = ip.EnsembleConfig(); err != nil {
		return
	}
	cfg.Verbose = verbose
	return ensemble.Run(cfg, ensemble.SpecGenerator(gs))
}

func printHeader() {
	fmt.Printf("%-26s %6s %22s %22s %22s %22s %22s %5s\n",
		"Network", "<k>", "Stabilization", "Speed", "Sharpness", "Final Fraction", "Assortativity", "Div")
}

func printSummary(label string, res *ensemble.Result) {
	var (
		meanDegree float64
		name       = label
	)
	if gk, err := network.NewGraphKind(label); err == nil {
		name = gk.Print()
	}
	for _, tr := range res.Trials {
		meanDegree += 2 * float64(tr.Edges) / float64(tr.Nodes)
	}
	meanDegree /= float64(len(res.Trials))
	fmt.Printf("%-26s %6.2f %s %s %s %s %s %5d\n",
		name, meanDegree, res.Stabilization.Print(), res.Speed.Print(), res.Sharpness.Print(),
		res.FinalFraction.Print(), res.Assortativity.Print(), res.Diverged)
}
