package LBM2D

import (
	"encoding/binary"
	"os"
	"time"

	"github.com/notargets/avs/chart2d"
	"github.com/notargets/avs/geometry"
	utils2 "github.com/notargets/avs/utils"
	"gonum.org/v1/gonum/floats"

	"github.com/SleepyBear319993/LBBM/InputParameters"
)

type ChartState struct {
	chart *chart2d.Chart2D
	gm    *geometry.TriMesh
}

// PlotMesh builds the structured plotting mesh: one vertex per lattice
// cell, two triangles per grid quad.
func (c *LBM) PlotMesh() (gm geometry.TriMesh) {
	var (
		nx, ny = c.Lattice.Nx, c.Lattice.Ny
	)
	gm = geometry.TriMesh{
		XY:       make([]float32, 2*nx*ny),
		TriVerts: make([][3]int64, 0, 2*(nx-1)*(ny-1)),
	}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			cid := c.Lattice.CellIndex(i, j)
			gm.XY[2*cid] = float32(i)
			gm.XY[2*cid+1] = float32(j)
		}
	}
	for j := 0; j < ny-1; j++ {
		for i := 0; i < nx-1; i++ {
			var (
				v00 = int64(c.Lattice.CellIndex(i, j))
				v10 = int64(c.Lattice.CellIndex(i+1, j))
				v01 = int64(c.Lattice.CellIndex(i, j+1))
				v11 = int64(c.Lattice.CellIndex(i+1, j+1))
			)
			gm.TriVerts = append(gm.TriVerts,
				[3]int64{v00, v10, v11},
				[3]int64{v00, v11, v01})
		}
	}
	return
}

// PlotSolution renders the velocity magnitude field as a shaded vertex
// scalar over the structured mesh. The chart window is created on the
// first call and reused for subsequent frames.
func (c *LBM) PlotSolution(pm *InputParameters.PlotMeta) {
	var (
		nx, ny = c.Lattice.Nx, c.Lattice.Ny
		field  = c.SpeedField()
	)
	if c.chart.gm == nil {
		gm := c.PlotMesh()
		c.chart.gm = &gm
		c.chart.chart = chart2d.NewChart2D(0, float32(nx-1), 0, float32(ny-1),
			1024, 1024, utils2.WHITE, utils2.BLACK)
	}
	fMin, fMax := floats.Min(field), floats.Max(field)
	switch {
	case pm.FieldMinP != nil && pm.FieldMaxP != nil:
		fMin, fMax = *pm.FieldMinP, *pm.FieldMaxP
	case pm.FieldMinP != nil:
		fMin = *pm.FieldMinP
	case pm.FieldMaxP != nil:
		fMax = *pm.FieldMaxP
	}
	if fMax <= fMin { // uniform field, e.g. the at-rest initial condition
		fMax = fMin + 1.e-10
	}
	pField := make([]float32, len(field))
	for cid, val := range field {
		pField[cid] = float32(val)
	}
	vs := geometry.VertexScalar{
		TMesh:       c.chart.gm,
		FieldValues: pField,
	}
	c.chart.chart.AddShadedVertexScalar(&vs, float32(fMin), float32(fMax))
	time.Sleep(pm.FrameTime)
}

// SaveFieldFunction appends the velocity magnitude field to a binary file,
// little endian: an int64 nx, ny header on the first step, then the field
// as float32 per call.
func (c *LBM) SaveFieldFunction(fileName string, steps int) {
	var (
		field = c.SpeedField()
		file  *os.File
		err   error
	)
	if steps == 1 {
		file, err = os.Create(fileName)
	} else {
		file, err = os.OpenFile(fileName, os.O_APPEND|os.O_WRONLY, 0644)
	}
	if err != nil {
		panic(err)
	}
	defer file.Close()
	if steps == 1 {
		binary.Write(file, binary.LittleEndian, int64(c.Lattice.Nx))
		binary.Write(file, binary.LittleEndian, int64(c.Lattice.Ny))
	}
	fI := make([]float32, len(field))
	for cid, val := range field {
		fI[cid] = float32(val)
	}
	binary.Write(file, binary.LittleEndian, fI)
}
