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
	"github.com/notargets/netshock/model_problems/Burgers"
	"github.com/notargets/netshock/utils"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One Dimensional Riemann Problem for Burgers' Equation",
	Long: `
Executes the finite volume Burgers' solver on a uniform 1D grid from a Riemann
step and compares the final level with the exact solution,

netshock 1D --cells 400 --x0 0.3 --uL 1 --uR 0 --dt 0.001 --steps 401`,
	PreRun: func(cmd *cobra.Command, args []string) {
		_ = viper.BindPFlags(cmd.Flags())
	},
	Run: func(cmd *cobra.Command, args []string) {
		ip := InputParameters.NewInputParameters1D()
		if fileName, _ := cmd.Flags().GetString("inputConditionsFile"); len(fileName) != 0 {
			exitOnError(readInputFile(fileName, ip.Parse))
		}
		overlayInt("cells", &ip.Cells)
		overlayFloat64("xMin", &ip.XMin)
		overlayFloat64("xMax", &ip.XMax)
		overlayFloat64("x0", &ip.X0)
		overlayFloat64("uL", &ip.UL)
		overlayFloat64("uR", &ip.UR)
		overlayFloat64("dt", &ip.DT)
		overlayInt("steps", &ip.Steps)
		overlayString("clamp", &ip.Clamp)
		overlayString("flux", &ip.FluxType)
		if viper.GetBool("verbose") {
			ip.Print()
		}
		r1d, err := Run1D(ip)
		exitOnError(err)
		r1d.Print()
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	ip := InputParameters.NewInputParameters1D()
	OneDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file with the run parameters, flags that are set override it")
	OneDCmd.Flags().IntP("cells", "k", ip.Cells, "Number of cells in the grid")
	OneDCmd.Flags().Float64("xMin", ip.XMin, "Left end of the domain")
	OneDCmd.Flags().Float64("xMax", ip.XMax, "Right end of the domain")
	OneDCmd.Flags().Float64("x0", ip.X0, "Location of the initial discontinuity")
	OneDCmd.Flags().Float64("uL", ip.UL, "State left of the discontinuity")
	OneDCmd.Flags().Float64("uR", ip.UR, "State right of the discontinuity")
	OneDCmd.Flags().Float64("dt", ip.DT, "Time step - keep the reported CFL number at or below 1")
	OneDCmd.Flags().Int("steps", ip.Steps, "Number of stored time levels, including the initial condition")
	OneDCmd.Flags().String("clamp", ip.Clamp, "clamp policy: none, wide, narrow or min:max")
	OneDCmd.Flags().String("flux", ip.FluxType, "numerical flux: Godunov or Rusanov")
}

type Result1D struct {
	FinalTime    float64
	CFL          float64 // dt max|u| / dx of the initial condition
	L1Error      float64 // Final level against the exact solution
	MassChange   float64 // Integral of u, final minus initial
	BoundaryFlux float64 // Net inflow through the boundary faces while waves stay inside
	Finite       bool
}

func Run1D(ip *InputParameters.InputParameters1D) (r1d Result1D, err error) {
	var (
		grid Burgers.Grid1D
		p    Burgers.Params
	)
	if grid, err = ip.Grid(); err != nil {
		return
	}
	if p, err = ip.Params(); err != nil {
		return
	}
	var (
		x  = grid.X()
		u0 = Burgers.StepIC(x, ip.X0, ip.UL, ip.UR)
		H  = Burgers.NewIntegrator(Burgers.NewGridTopology(grid), p).Run(u0)
	)
	r1d.FinalTime = ip.FinalTime()
	r1d.CFL = Burgers.CFLNumber(u0, p.DT, grid.DX)
	r1d.Finite = utils.IsFinite(H)
	final := H.RawRowView(p.Steps - 1)
	r1d.L1Error = Burgers.L1Error(final, Burgers.ExactRiemann(x, ip.X0, ip.UL, ip.UR, r1d.FinalTime), grid.DX)
	r1d.MassChange = (Burgers.TotalMass(final) - Burgers.TotalMass(u0)) * grid.DX
	r1d.BoundaryFlux = r1d.FinalTime * (Burgers.F(ip.UL) - Burgers.F(ip.UR))
	return
}

func (r1d Result1D) Print() {
	if r1d.CFL > 1 {
		fmt.Printf("Warning: CFL number %8.4f is above 1, the solution may not be stable\n", r1d.CFL)
	}
	if !r1d.Finite {
		fmt.Printf("Warning: the solution diverged\n")
	}
	fmt.Printf("%8.5f\t\t= FinalTime\n", r1d.FinalTime)
	fmt.Printf("%8.5f\t\t= CFL\n", r1d.CFL)
	fmt.Printf("%12.5e\t\t= L1 Error\n", r1d.L1Error)
	fmt.Printf("%12.5e\t\t= Mass Change\n", r1d.MassChange)
	fmt.Printf("%12.5e\t\t= Mass Drift (change - boundary flux)\n", r1d.MassChange-r1d.BoundaryFlux)
}
