package LBM2D

import (
	"fmt"
	"strings"
)

// Geometry describes which lattice cells are solid walls. It is consulted
// once at initialization to build the mask; the mask never changes during a
// run.
type Geometry interface {
	IsSolid(i, j int) bool
}

// CavityWalls is the reference cavity geometry: left column, right column
// and floor are solid. The top row is left unmarked for the moving lid.
type CavityWalls struct {
	Nx int
}

func (g CavityWalls) IsSolid(i, j int) bool {
	return i == 0 || i == g.Nx-1 || j == 0
}

// OpenDomain has no solid cells; it pairs with periodic streaming.
type OpenDomain struct{}

func (OpenDomain) IsSolid(i, j int) bool {
	return false
}

type CaseType uint

const (
	LID_CAVITY CaseType = iota
	CLOSED_BOX
	PERIODIC
)

var (
	CaseNames = map[string]CaseType{
		"lidcavity": LID_CAVITY,
		"closedbox": CLOSED_BOX,
		"periodic":  PERIODIC,
	}
	CasePrintNames = []string{"Lid Driven Cavity", "Closed Box, lid inactive", "Periodic, no walls"}
)

func NewCaseType(label string) (ct CaseType) {
	var (
		ok  bool
		err error
	)
	if len(label) == 0 {
		err = fmt.Errorf("empty case type, must be one of %v", CaseNames)
		panic(err)
	}
	label = strings.ToLower(label)
	if ct, ok = CaseNames[label]; !ok {
		err = fmt.Errorf("unable to use case type named %s", label)
		panic(err)
	}
	return
}

func (ct CaseType) Print() (txt string) {
	txt = CasePrintNames[ct]
	return
}

func (ct CaseType) DefaultGeometry(nx, ny int) Geometry {
	switch ct {
	case PERIODIC:
		return OpenDomain{}
	default:
		return CavityWalls{Nx: nx}
	}
}
