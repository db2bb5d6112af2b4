package InputParameters

import (
	"fmt"
	"time"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type SimParameters struct {
	Title       string  `yaml:"Title"`
	Nx          int     `yaml:"Nx"`
	Ny          int     `yaml:"Ny"`
	LidVelocity float64 `yaml:"LidVelocity"` // Characteristic velocity U in lattice units
	Reynolds    float64 `yaml:"Reynolds"`
	MaxSteps    int     `yaml:"MaxSteps"`
	Case        string  `yaml:"Case"` // LidCavity, ClosedBox or Periodic
}

func (sp *SimParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, sp)
}

func (sp *SimParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("[%d x %d]\t\t= Grid\n", sp.Nx, sp.Ny)
	fmt.Printf("%8.5f\t\t= LidVelocity\n", sp.LidVelocity)
	fmt.Printf("%8.2f\t\t= Reynolds\n", sp.Reynolds)
	fmt.Printf("[%d]\t\t\t= MaxSteps\n", sp.MaxSteps)
	fmt.Printf("[%s]\t\t= Case\n", sp.Case)
}

type PlotMeta struct {
	Plot            bool
	FieldMinP       *float64
	FieldMaxP       *float64
	FrameTime       time.Duration
	StepsBeforePlot int
}
