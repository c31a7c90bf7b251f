// Package chem maps atom pairs to bond types and tabulated dissociation
// energies. The heuristics are deliberately coarse: a handful of element
// pairs with known diatomic behavior, everything else a single bond.
package chem

import (
	"github.com/atomlab/atomsim/internal/atom"
	"github.com/atomlab/atomsim/internal/logging"
)

// Tabulated dissociation energies in eV.
var bondEnergies = map[atom.BondType]float64{
	atom.Single:   4.5,
	atom.Double:   8.0,
	atom.Triple:   10.0,
	atom.Ionic:    5.0,
	atom.Metallic: 2.0,
	atom.Hydrogen: 0.2,
}

// Calculator determines bond types and looks up bond energies.
type Calculator struct {
	log logging.Logger
}

// NewCalculator builds a calculator; a nil logger disables diagnostics.
func NewCalculator(log logging.Logger) *Calculator {
	if log == nil {
		log = logging.NewNoOp()
	}
	return &Calculator{log: log}
}

// DetermineBondType picks a bond type for the atom pair from their atomic
// numbers. The result is symmetric in its arguments. First match wins:
// H-H, H-O, O-O, N-N, then a single-bond fallback.
func (c *Calculator) DetermineBondType(a, b *atom.Atom) atom.BondType {
	z1, z2 := a.AtomicNumber(), b.AtomicNumber()
	switch {
	case z1 == 1 && z2 == 1:
		return atom.Single
	case (z1 == 1 && z2 == 8) || (z1 == 8 && z2 == 1):
		return atom.Single
	case z1 == 8 && z2 == 8:
		return atom.Double
	case z1 == 7 && z2 == 7:
		return atom.Triple
	default:
		return atom.Single
	}
}

// BondEnergy returns the tabulated energy for the bond type in eV. Unknown
// types are logged and answered with 0.
func (c *Calculator) BondEnergy(t atom.BondType) float64 {
	e, ok := bondEnergies[t]
	if !ok {
		c.log.Warnf("no bond energy tabulated for type %d", int(t))
		return 0
	}
	return e
}
