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
	"io/ioutil"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/SleepyBear319993/LBBM/InputParameters"
	"github.com/SleepyBear319993/LBBM/model_problems/LBM2D"
)

type ModelCavity struct {
	ICFile    string
	Graph     bool
	PlotSteps int
	Delay     time.Duration
	Profile   bool
}

// CavityCmd represents the cavity command
var CavityCmd = &cobra.Command{
	Use:   "cavity",
	Short: "Two dimensional lattice Boltzmann solver, lid driven cavity flow",
	Long:  `Two dimensional lattice Boltzmann solver, lid driven cavity flow`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("cavity called")
		mc := &ModelCavity{}
		mc.ICFile, _ = cmd.Flags().GetString("inputConditionsFile")
		mc.Graph, _ = cmd.Flags().GetBool("graph")
		ps, _ := cmd.Flags().GetInt("plotSteps")
		mc.PlotSteps = ps
		dr, _ := cmd.Flags().GetInt("delay")
		mc.Delay = time.Duration(time.Duration(dr) * time.Millisecond)
		mc.Profile, _ = cmd.Flags().GetBool("profile")
		sp := processCavityInput(mc, cmd)
		RunCavity(mc, sp)
	},
}

func processCavityInput(mc *ModelCavity, cmd *cobra.Command) (sp *InputParameters.SimParameters) {
	var (
		err error
	)
	// Flags supply the defaults; a YAML parameters file overrides them
	sp = &InputParameters.SimParameters{}
	sp.Nx, _ = cmd.Flags().GetInt("nx")
	sp.Ny, _ = cmd.Flags().GetInt("ny")
	sp.LidVelocity, _ = cmd.Flags().GetFloat64("lidVelocity")
	sp.Reynolds, _ = cmd.Flags().GetFloat64("reynolds")
	sp.MaxSteps, _ = cmd.Flags().GetInt("maxSteps")
	sp.Case, _ = cmd.Flags().GetString("case")
	if len(mc.ICFile) != 0 {
		var data []byte
		if data, err = ioutil.ReadFile(mc.ICFile); err != nil {
			panic(err)
		}
		if err = sp.Parse(data); err != nil {
			panic(err)
		}
	}
	sp.Print()
	return
}

func init() {
	rootCmd.AddCommand(CavityCmd)
	CavityCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Nx, Ny\n\t- LidVelocity\n\t- Reynolds")
	CavityCmd.Flags().IntP("nx", "x", 128, "lattice cells in the x direction")
	CavityCmd.Flags().IntP("ny", "y", 128, "lattice cells in the y direction")
	CavityCmd.Flags().Float64P("lidVelocity", "u", 0.1, "lid velocity U in lattice units")
	CavityCmd.Flags().Float64P("reynolds", "r", 100, "Reynolds number")
	CavityCmd.Flags().IntP("maxSteps", "m", 10000, "number of simulation steps to run")
	CavityCmd.Flags().String("case", "LidCavity", "case to run: LidCavity, ClosedBox or Periodic")
	CavityCmd.Flags().BoolP("graph", "g", false, "display the velocity magnitude field while computing")
	CavityCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	CavityCmd.Flags().IntP("plotSteps", "s", 100, "number of steps before plotting each frame")
	CavityCmd.Flags().Bool("profile", false, "write a CPU profile of the run")
}

func RunCavity(mc *ModelCavity, sp *InputParameters.SimParameters) {
	if mc.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	c, err := LBM2D.NewLBM(sp.Nx, sp.Ny, sp.LidVelocity, sp.Reynolds,
		LBM2D.NewCaseType(sp.Case), sp.MaxSteps, 0)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	pm := &InputParameters.PlotMeta{
		Plot:            mc.Graph,
		FieldMinP:       nil,
		FieldMaxP:       nil,
		FrameTime:       mc.Delay,
		StepsBeforePlot: mc.PlotSteps,
	}
	c.Solve(pm)
}
