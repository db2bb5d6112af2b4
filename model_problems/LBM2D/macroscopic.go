package LBM2D

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/SleepyBear319993/LBBM/utils"
)

// Macroscopic reduces the current distribution buffer to per-cell density
// and velocity fields. Read-only on the buffer; call it only between
// completed steps, never while a stage is mutating solver state.
func (c *LBM) Macroscopic() (rho, ux, uy []float64) {
	var (
		f  = c.State.Current()
		nc = c.Lattice.NCells()
	)
	rho = make([]float64, nc)
	ux = make([]float64, nc)
	uy = make([]float64, nc)
	for cid := 0; cid < nc; cid++ {
		cell := f[Q*cid : Q*cid+Q]
		var r, mx, my float64
		for k := 0; k < Q; k++ {
			val := cell[k]
			r += val
			mx += val * float64(Cx[k])
			my += val * float64(Cy[k])
		}
		rho[cid] = r
		if r > utils.NODETOL {
			ux[cid] = mx / r
			uy[cid] = my / r
		} else if r <= 0 {
			c.DegenerateCells++
		}
	}
	return
}

// SpeedField produces the per-step artifact consumed by the external
// visualization reader: the velocity magnitude at every cell.
func (c *LBM) SpeedField() (speed []float64) {
	_, ux, uy := c.Macroscopic()
	speed = make([]float64, len(ux))
	for cid := range speed {
		speed[cid] = math.Hypot(ux[cid], uy[cid])
	}
	return
}

// TotalMass sums all populations over all cells and directions.
func (c *LBM) TotalMass() float64 {
	return floats.Sum(c.State.Current())
}
