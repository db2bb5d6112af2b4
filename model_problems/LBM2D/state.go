package LBM2D

// LatticeState owns the two distribution buffers and the solid mask. Cell
// storage is cell-major: the Q populations of cell (i,j) occupy
// f[Q*CellIndex(i,j) : Q*CellIndex(i,j)+Q]. The role flag cur selects which
// buffer is "current"; SwapBuffers toggles it in O(1) and is invoked
// exactly once per step, after the boundary stage has finished with the
// destination buffer.
type LatticeState struct {
	lat  *Lattice
	f    [2][]float64
	cur  int
	mask []bool
}

func NewLatticeState(lat *Lattice, geom Geometry) (s *LatticeState) {
	var (
		nc = lat.NCells()
	)
	s = &LatticeState{
		lat: lat,
	}
	s.f[0] = make([]float64, nc*Q)
	s.f[1] = make([]float64, nc*Q)
	s.mask = make([]bool, nc)
	// The equilibrium at uniform density 1 and zero velocity collapses to
	// the direction weights
	for cid := 0; cid < nc; cid++ {
		for k := 0; k < Q; k++ {
			s.f[0][Q*cid+k] = W[k]
		}
	}
	for j := 0; j < lat.Ny; j++ {
		for i := 0; i < lat.Nx; i++ {
			s.mask[lat.CellIndex(i, j)] = geom.IsSolid(i, j)
		}
	}
	return
}

// InitializeUniform overwrites the current buffer with the equilibrium
// distribution for a uniform density and velocity.
func (s *LatticeState) InitializeUniform(rho0, u0x, u0y float64) {
	var (
		f   = s.Current()
		feq = Equilibrium(rho0, u0x, u0y)
	)
	for cid := 0; cid < s.lat.NCells(); cid++ {
		copy(f[Q*cid:Q*cid+Q], feq[:])
	}
}

func (s *LatticeState) Current() []float64 {
	return s.f[s.cur]
}

func (s *LatticeState) Next() []float64 {
	return s.f[1-s.cur]
}

func (s *LatticeState) Mask() []bool {
	return s.mask
}

func (s *LatticeState) SwapBuffers() {
	s.cur = 1 - s.cur
}

// CopyDistribution returns a copy of the current buffer so that external
// consumers never alias solver-owned memory.
func (s *LatticeState) CopyDistribution() (f []float64) {
	f = make([]float64, len(s.Current()))
	copy(f, s.Current())
	return
}
