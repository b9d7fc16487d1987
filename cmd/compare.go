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
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/netshock/InputParameters"
	"github.com/notargets/netshock/ensemble"
	"github.com/notargets/netshock/network"
)

// CompareCmd represents the compare command
var CompareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Runs the same ensemble on every network kind",
	Long: `
Runs the graph ensemble once per network kind with identical parameters and
seed, printing one summary row per kind.

netshock compare --nodes 300 --trials 30`,
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
		results, err := RunCompare(ip, verbose)
		exitOnError(err)
		printHeader()
		for i, res := range results {
			printSummary(network.GraphKindLabels[i], res)
		}
	},
}

func init() {
	rootCmd.AddCommand(CompareCmd)
	addGraphFlags(CompareCmd)
}

// RunCompare returns one result per entry of network.GraphKindLabels, in order
func RunCompare(ip *InputParameters.InputParametersGraph, verbose bool) (results []*ensemble.Result, err error) {
	results = make([]*ensemble.Result, len(network.GraphKindLabels))
	for i, label := range network.GraphKindLabels {
		ipk := *ip
		ipk.Kind = label
		if results[i], err = RunGraph(&ipk, verbose); err != nil {
			return nil, err
		}
	}
	return
}
