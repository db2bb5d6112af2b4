package LBM2D

import "fmt"

/*
	D2Q9 discrete velocity set:

		6   2   5
		  \ | /
		3 - 0 - 1
		  / | \
		7   4   8

	Direction 0 is the rest particle; (1,3), (2,4), (5,7) and (6,8) are
	mutually opposite pairs. The tables are fixed for the lifetime of the
	process and shared read-only by every stage.
*/
const Q = 9

var (
	Cx       = [Q]int{0, 1, 0, -1, 0, 1, -1, -1, 1}
	Cy       = [Q]int{0, 0, 1, 0, -1, 1, 1, -1, -1}
	Opposite = [Q]int{0, 3, 4, 1, 2, 7, 8, 5, 6}
	W        = [Q]float64{
		4. / 9.,
		1. / 9., 1. / 9., 1. / 9., 1. / 9.,
		1. / 36., 1. / 36., 1. / 36., 1. / 36.,
	}
)

// Lattice carries the fixed solver parameters: grid extents, the
// characteristic (lid) velocity U, the Reynolds number, and the BGK
// relaxation time and rate derived from them. Constructed once, never
// mutated afterwards.
type Lattice struct {
	Nx, Ny     int
	U, Re      float64
	Tau, Omega float64
}

func NewLattice(nx, ny int, U, Re float64) (lat *Lattice, err error) {
	if nx <= 0 || ny <= 0 {
		err = fmt.Errorf("grid extents must be positive, have nx=%d, ny=%d", nx, ny)
		return
	}
	visc := U * float64(nx) / Re // lattice-units kinematic viscosity
	tau := 3.*visc + 0.5
	omega := 1. / tau
	if !(omega > 0 && omega < 2) {
		err = fmt.Errorf("relaxation rate omega=%v is outside the stable range (0,2) for U=%v, Re=%v, nx=%d",
			omega, U, Re, nx)
		return
	}
	lat = &Lattice{
		Nx:    nx,
		Ny:    ny,
		U:     U,
		Re:    Re,
		Tau:   tau,
		Omega: omega,
	}
	return
}

func (lat *Lattice) CellIndex(i, j int) int {
	return i + lat.Nx*j
}

func (lat *Lattice) NCells() int {
	return lat.Nx * lat.Ny
}
