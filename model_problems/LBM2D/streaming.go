package LBM2D

// Stream advects populations one lattice spacing using the pull scheme:
// each interior cell reads direction k from the neighbor the population
// arrived from, offset by the negative of c_k. Cells on the outer grid
// border copy all Q values through unchanged, so the rim never exchanges
// mass with the domain exterior. Reads src only, writes dst only.
func (c *LBM) Stream(src, dst []float64, cMin, cMax int) {
	var (
		nx, ny = c.Lattice.Nx, c.Lattice.Ny
	)
	for cid := cMin; cid < cMax; cid++ {
		i, j := cid%nx, cid/nx
		if i > 0 && i < nx-1 && j > 0 && j < ny-1 {
			for k := 0; k < Q; k++ {
				ip, jp := i-Cx[k], j-Cy[k]
				dst[Q*cid+k] = src[Q*(ip+nx*jp)+k]
			}
		} else {
			copy(dst[Q*cid:Q*cid+Q], src[Q*cid:Q*cid+Q])
		}
	}
}

// StreamPeriodic is the wrap-around variant: the pull index wraps across
// the domain edges, making the pass a permutation of the whole field.
func (c *LBM) StreamPeriodic(src, dst []float64, cMin, cMax int) {
	var (
		nx, ny = c.Lattice.Nx, c.Lattice.Ny
	)
	for cid := cMin; cid < cMax; cid++ {
		i, j := cid%nx, cid/nx
		for k := 0; k < Q; k++ {
			ip, jp := (i-Cx[k]+nx)%nx, (j-Cy[k]+ny)%ny
			dst[Q*cid+k] = src[Q*(ip+nx*jp)+k]
		}
	}
}
