package LBM2D

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/SleepyBear319993/LBBM/InputParameters"
	"github.com/SleepyBear319993/LBBM/utils"
)

/*
	One simulation step advances the distribution field through three
	stages, each a data-parallel map over the grid:
		1) Collision relaxes every cell in place on the current buffer
		2) Streaming pulls the post-collision populations into the next buffer
		3) Boundary corrects the next buffer: bounce-back, then the moving lid
	after which the buffer roles swap. Streaming must observe the complete
	post-collision field and Boundary the complete post-streaming field, so
	each stage fans out one goroutine per partition bucket and a WaitGroup
	barrier holds the next stage until every bucket's pass has finished.
*/
type LBM struct {
	// Input parameters
	Title          string
	Case           CaseType
	MaxSteps       int
	Lattice        *Lattice
	State          *LatticeState
	ParallelDegree int // Number of go routines to use for the per-cell stage maps
	CellPartitions *utils.PartitionMap
	LidPartitions  *utils.PartitionMap
	// Count of cells that hit the rho<=0 zero-velocity fallback, a latent
	// symptom of instability
	DegenerateCells int64
	chart           ChartState
}

func NewLBM(nx, ny int, U, Re float64, Case CaseType, MaxSteps, ProcLimit int) (c *LBM, err error) {
	var (
		lat *Lattice
	)
	if lat, err = NewLattice(nx, ny, U, Re); err != nil {
		return
	}
	if Case != PERIODIC && (nx < 3 || ny < 3) {
		err = fmt.Errorf("case %s needs an interior, have nx=%d, ny=%d, need at least 3x3", Case.Print(), nx, ny)
		return
	}
	c = &LBM{
		Case:     Case,
		MaxSteps: MaxSteps,
		Lattice:  lat,
	}
	c.State = NewLatticeState(lat, Case.DefaultGeometry(nx, ny))
	c.SetParallelDegree(ProcLimit)
	return
}

func (c *LBM) SetParallelDegree(ProcLimit int) {
	var (
		nc = c.Lattice.NCells()
	)
	if ProcLimit != 0 {
		c.ParallelDegree = ProcLimit
	} else {
		c.ParallelDegree = runtime.NumCPU()
	}
	runtime.GOMAXPROCS(runtime.NumCPU())
	if c.ParallelDegree > nc {
		c.ParallelDegree = 1
	}
	c.CellPartitions = utils.NewPartitionMap(c.ParallelDegree, nc)
	c.LidPartitions = utils.NewPartitionMap(c.ParallelDegree, c.Lattice.Nx)
}

// Step advances the simulation by one time step. The WaitGroup barriers
// between the stage fan-outs are required for correctness: a stage reading
// a half-updated grid would use stale neighbor data.
func (c *LBM) Step() {
	var (
		pm    = c.CellPartitions
		NP    = pm.ParallelDegree
		wg    = sync.WaitGroup{}
		f     = c.State.Current()
		fNext = c.State.Next()
		degen = make([]int, NP)
	)
	for np := 0; np < NP; np++ {
		wg.Add(1)
		go func(np int) {
			cMin, cMax := pm.GetBucketRange(np)
			degen[np] = c.Collide(f, cMin, cMax)
			wg.Done()
		}(np)
	}
	wg.Wait()
	for np := 0; np < NP; np++ {
		wg.Add(1)
		go func(np int) {
			cMin, cMax := pm.GetBucketRange(np)
			if c.Case == PERIODIC {
				c.StreamPeriodic(f, fNext, cMin, cMax)
			} else {
				c.Stream(f, fNext, cMin, cMax)
			}
			wg.Done()
		}(np)
	}
	wg.Wait()
	if c.Case != PERIODIC {
		for np := 0; np < NP; np++ {
			wg.Add(1)
			go func(np int) {
				cMin, cMax := pm.GetBucketRange(np)
				c.BounceBack(fNext, cMin, cMax)
				wg.Done()
			}(np)
		}
		wg.Wait()
		if c.Case == LID_CAVITY {
			for np := 0; np < NP; np++ {
				wg.Add(1)
				go func(np int) {
					iMin, iMax := c.LidPartitions.GetBucketRange(np)
					c.MovingLid(fNext, iMin, iMax)
					wg.Done()
				}(np)
			}
			wg.Wait()
		}
	}
	for _, d := range degen {
		c.DegenerateCells += int64(d)
	}
	c.State.SwapBuffers()
}

// Run advances the simulation by numSteps steps.
func (c *LBM) Run(numSteps int) {
	for n := 0; n < numSteps; n++ {
		c.Step()
	}
}

func (c *LBM) Solve(pm *InputParameters.PlotMeta) {
	var (
		steps    int
		finished bool
		plotQ    = pm.Plot
	)
	c.PrintInitialization()
	elapsed := time.Duration(0)
	var start time.Time
	for !finished {
		start = time.Now()
		c.Step()
		elapsed += time.Now().Sub(start)
		steps++
		finished = steps >= c.MaxSteps
		if finished || steps%pm.StepsBeforePlot == 0 || steps == 1 {
			c.PrintUpdate(steps, plotQ, pm)
		}
	}
	c.PrintFinal(elapsed, steps)
}

func (c *LBM) PrintInitialization() {
	fmt.Printf("Lattice Boltzmann D2Q9, BGK collision\n")
	fmt.Printf("Solving %s\n", c.Case.Print())
	fmt.Printf("Using %d go routines in parallel\n", c.ParallelDegree)
	fmt.Printf("U = %8.5f, Re = %8.2f, Omega = %8.5f, Grid = %d x %d\n\n",
		c.Lattice.U, c.Lattice.Re, c.Lattice.Omega, c.Lattice.Nx, c.Lattice.Ny)
	fmt.Printf("Solving until step = %d\n", c.MaxSteps)
	fmt.Printf("    iter        mass    |u|_min    |u|_max   degen\n")
}

func (c *LBM) PrintUpdate(steps int, plotQ bool, pm *InputParameters.PlotMeta) {
	if plotQ {
		c.PlotSolution(pm)
	}
	speed := c.SpeedField()
	fmt.Printf("%8d%12.5e", steps, c.TotalMass())
	fmt.Printf("%11.4e%11.4e", floats.Min(speed), floats.Max(speed))
	fmt.Printf("%8d\n", c.DegenerateCells)
}

func (c *LBM) PrintFinal(elapsed time.Duration, steps int) {
	rate := float64(elapsed.Microseconds()) / (float64(c.Lattice.NCells() * steps))
	fmt.Printf("\nRate of execution = %8.5f us/(cell*iteration) over %d iterations\n", rate, steps)
}
