package LBM2D

// BounceBack reflects populations at every masked cell in [cMin,cMax) by
// swapping each opposite direction pair, reversing all momentum at the
// wall. Direction 0 is untouched. Applying it twice restores the original
// values.
func (c *LBM) BounceBack(f []float64, cMin, cMax int) {
	var (
		mask = c.State.Mask()
	)
	for cid := cMin; cid < cMax; cid++ {
		if !mask[cid] {
			continue
		}
		cell := f[Q*cid : Q*cid+Q]
		cell[1], cell[3] = cell[3], cell[1]
		cell[2], cell[4] = cell[4], cell[2]
		cell[5], cell[7] = cell[7], cell[5]
		cell[6], cell[8] = cell[8], cell[6]
	}
}

// MovingLid enforces tangential velocity U and zero normal velocity on the
// row one cell below the top edge, for columns [iMin,iMax). The density is
// reconstructed from the populations known after streaming, then the three
// downward populations are set analytically (Zou-He):
//
//	rho = f0 + f1 + f3 + 2*(f2 + f5 + f6)
//	f4  = f2
//	f7  = f5 + 0.5*(f1 - f3) - 0.5*rho*U
//	f8  = f6 - 0.5*(f1 - f3) + 0.5*rho*U
//
// The correction is applied independent of the mask.
func (c *LBM) MovingLid(f []float64, iMin, iMax int) {
	var (
		lat = c.Lattice
		j   = lat.Ny - 2
		U   = lat.U
	)
	for i := iMin; i < iMax; i++ {
		cell := f[Q*lat.CellIndex(i, j) : Q*lat.CellIndex(i, j)+Q]
		rho := cell[0] + cell[1] + cell[3] + 2.*(cell[2]+cell[5]+cell[6])
		cell[4] = cell[2]
		cell[7] = cell[5] + 0.5*(cell[1]-cell[3]) - 0.5*rho*U
		cell[8] = cell[6] - 0.5*(cell[1]-cell[3]) + 0.5*rho*U
	}
}
