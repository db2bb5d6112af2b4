package LBM2D

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLattice(t *testing.T) {
	{ // Test omega derivation for the 4x4 reference scenario
		lat, err := NewLattice(4, 4, 0.1, 100)
		assert.NoError(t, err)
		assert.True(t, lat.Omega > 0 && lat.Omega < 2)
		// visc = 0.1*4/100 = 0.004, tau = 3*visc + 0.5 = 0.512
		assert.True(t, near(lat.Tau, 0.512, 1.e-12))
		assert.True(t, near(lat.Omega, 1./0.512, 1.e-12))
	}
	{ // Construction must fail fast and name the offending parameter
		_, err := NewLattice(0, 4, 0.1, 100)
		assert.Error(t, err)
		_, err = NewLattice(4, -1, 0.1, 100)
		assert.Error(t, err)
		_, err = NewLattice(4, 4, 0.1, 0) // omega collapses to zero
		assert.Error(t, err)
		_, err = NewLattice(4, 4, -1, 1) // negative viscosity
		assert.Error(t, err)
	}
	{ // Direction set: opposite pairs reverse both components, weights sum to one
		assert.Equal(t, [Q]int{0, 3, 4, 1, 2, 7, 8, 5, 6}, Opposite)
		for k := 0; k < Q; k++ {
			ko := Opposite[k]
			assert.Equal(t, -Cx[k], Cx[ko])
			assert.Equal(t, -Cy[k], Cy[ko])
			assert.Equal(t, k, Opposite[ko])
		}
		var sum float64
		for k := 0; k < Q; k++ {
			sum += W[k]
		}
		assert.True(t, near(sum, 1, 1.e-15))
	}
	{ // Case type labels round trip
		assert.Equal(t, LID_CAVITY, NewCaseType("LidCavity"))
		assert.Equal(t, CLOSED_BOX, NewCaseType("closedbox"))
		assert.Equal(t, PERIODIC, NewCaseType("Periodic"))
	}
}

func TestEquilibrium(t *testing.T) {
	{ // Equilibrium conserves the density and momentum it is built from
		f := []float64{0.44, 0.11, 0.13, 0.09, 0.12, 0.028, 0.031, 0.026, 0.024}
		rho, ux, uy, degen := CellMacroscopic(f)
		assert.False(t, degen)
		feq := Equilibrium(rho, ux, uy)
		var feqRho, feqMx, feqMy float64
		for k := 0; k < Q; k++ {
			feqRho += feq[k]
			feqMx += feq[k] * float64(Cx[k])
			feqMy += feq[k] * float64(Cy[k])
		}
		assert.True(t, near(feqRho, rho, 1.e-12))
		assert.True(t, near(feqMx, rho*ux, 1.e-12))
		assert.True(t, near(feqMy, rho*uy, 1.e-12))
	}
	{ // Collision leaves a cell already at equilibrium unchanged for any omega
		c, err := NewLBM(4, 4, 0.1, 100, LID_CAVITY, 1, 1)
		assert.NoError(t, err)
		for _, omega := range []float64{0.3, 1.0, 1.7, 1.99} {
			c.Lattice.Omega = omega
			feq := Equilibrium(1.05, 0.03, -0.02)
			f := c.State.Current()
			copy(f[0:Q], feq[:])
			c.Collide(f, 0, 1)
			assert.True(t, nearVec(feq[:], f[0:Q], 1.e-12))
		}
	}
}
