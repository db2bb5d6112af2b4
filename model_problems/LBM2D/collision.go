package LBM2D

// Equilibrium evaluates the D2Q9 equilibrium distribution for a given
// density and velocity:
//
//	cu_k  = 3*(c_k . u)
//	feq_k = w_k * rho * (1 + cu_k + 0.5*cu_k^2 - 1.5*|u|^2)
func Equilibrium(rho, ux, uy float64) (feq [Q]float64) {
	var (
		usqr = ux*ux + uy*uy
	)
	for k := 0; k < Q; k++ {
		cu := 3. * (float64(Cx[k])*ux + float64(Cy[k])*uy)
		feq[k] = W[k] * rho * (1. + cu + 0.5*cu*cu - 1.5*usqr)
	}
	return
}

// CellMacroscopic reduces one cell's populations to density and velocity.
// A non-positive density yields zero velocity instead of a division fault;
// degenerate reports that fallback.
func CellMacroscopic(cell []float64) (rho, ux, uy float64, degenerate bool) {
	for k := 0; k < Q; k++ {
		val := cell[k]
		rho += val
		ux += val * float64(Cx[k])
		uy += val * float64(Cy[k])
	}
	if rho > 0 {
		ux /= rho
		uy /= rho
	} else {
		ux, uy = 0, 0
		degenerate = true
	}
	return
}

// Collide relaxes every cell in [cMin,cMax) toward its local equilibrium,
// in place on f. Cells are fully independent - no neighbor reads - so the
// range is simply one partition bucket of the grid.
func (c *LBM) Collide(f []float64, cMin, cMax int) (degenerate int) {
	var (
		omega = c.Lattice.Omega
	)
	for cid := cMin; cid < cMax; cid++ {
		cell := f[Q*cid : Q*cid+Q]
		rho, ux, uy, degen := CellMacroscopic(cell)
		if degen {
			degenerate++
		}
		feq := Equilibrium(rho, ux, uy)
		for k := 0; k < Q; k++ {
			cell[k] = (1.-omega)*cell[k] + omega*feq[k]
		}
	}
	return
}
