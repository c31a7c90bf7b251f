// Package nuclear models binding energy and the two hardcoded reactions:
// U-235 fission and D-T fusion. Energy release comes from the mass defect
// between reactant and product rest masses via E = mc².
package nuclear

import (
	"math"

	"github.com/atomlab/atomsim/internal/logging"
	"github.com/atomlab/atomsim/internal/particle"
)

// Unit conversions.
const (
	AMUToKg  = 1.660539e-27  // atomic mass units to kilograms
	CSquared = 8.98755179e16 // c² in m²/s²
	JToEV    = 6.242e18      // Joules to electronvolts
)

// Isotope rest masses in AMU.
const (
	massU235    = 235.0439299
	massBa141   = 140.914411
	massKr92    = 91.926156
	massD       = 2.01410178
	massT       = 3.01604927
	massHe4     = 4.00260325
	massNeutron = 1.008665
)

// Reactor computes reaction energetics. It never spawns daughter particles;
// only the released energy is reported.
type Reactor struct {
	log logging.Logger
}

// NewReactor builds a reactor; a nil logger disables diagnostics.
func NewReactor(log logging.Logger) *Reactor {
	if log == nil {
		log = logging.NewNoOp()
	}
	return &Reactor{log: log}
}

// BindingEnergyPerNucleon evaluates the semi-empirical mass formula for a
// nucleus with atomic number z and mass number a, returning eV per nucleon.
// The total binding energy is clamped at zero before dividing by A.
func (r *Reactor) BindingEnergyPerNucleon(z, a int) float64 {
	if a == 0 {
		return 0
	}

	fA := float64(a)
	fZ := float64(z)

	// Liquid drop model terms, all in MeV.
	volume := 15.7 * fA
	surface := 17.8 * math.Pow(fA, 2.0/3.0)
	coulombic := 0.71 * fZ * (fZ - 1) / math.Cbrt(fA)
	asymmetry := 23.7 * (fA - 2*fZ) * (fA - 2*fZ) / fA

	pairing := 0.0
	switch {
	case a%2 == 0 && z%2 == 0:
		pairing = 11.2 / math.Sqrt(fA)
	case a%2 != 0 && z%2 != 0:
		pairing = -11.2 / math.Sqrt(fA)
	}

	bindingMeV := volume - surface - coulombic - asymmetry + pairing
	if bindingMeV < 0 {
		bindingMeV = 0
	}

	return bindingMeV / fA * 1e6
}

// SimulateFission computes the energy released by fissioning the given
// nucleus, in eV. Only neutron-induced U-235 fission is modeled:
//
//	n + U-235 → Ba-141 + Kr-92 + 3n
//
// The incident neutron enters the mass balance; without it the product
// masses exceed the reactant mass and no energy would be released. Any
// other nucleus is answered with 0 and a logged warning; the caller must
// treat 0 as "unsupported input", not as a zero-energy reaction.
func (r *Reactor) SimulateFission(n *particle.Particle) float64 {
	if n == nil || n.AtomicNumber != 92 || n.MassNumber != 235 {
		r.log.Warnf("fission only supported for U-235 (simplified model)")
		return 0
	}

	defect := (massU235 + massNeutron) - (massBa141 + massKr92 + 3*massNeutron)
	return r.massDefectEnergy(defect, "fission")
}

// SimulateFusion computes the energy released by fusing the pair, in eV.
// The unordered pair must be deuterium and tritium:
//
//	D + T → He-4 + n
//
// Anything else is answered with 0 and a logged warning.
func (r *Reactor) SimulateFusion(n1, n2 *particle.Particle) float64 {
	if n1 == nil || n2 == nil {
		r.log.Warnf("fusion requires two nuclei")
		return 0
	}

	hasD := isIsotope(n1, 1, 2) || isIsotope(n2, 1, 2)
	hasT := isIsotope(n1, 1, 3) || isIsotope(n2, 1, 3)
	if !hasD || !hasT {
		r.log.Warnf("fusion only supported for deuterium-tritium (simplified model)")
		return 0
	}

	defect := (massD + massT) - (massHe4 + massNeutron)
	return r.massDefectEnergy(defect, "fusion")
}

// massDefectEnergy converts a mass defect in AMU to eV. Non-positive
// defects are answered with 0; for the two modeled reactions the defect is
// always positive, the check exists for symmetry with the input guards.
func (r *Reactor) massDefectEnergy(defectAMU float64, reaction string) float64 {
	if defectAMU <= 0 {
		r.log.Warnf("%s resulted in non-positive mass defect, no energy released", reaction)
		return 0
	}
	joules := defectAMU * AMUToKg * CSquared
	ev := joules * JToEV
	r.log.Infof("%s: mass defect %.8f AMU, released %.4e eV", reaction, defectAMU, ev)
	return ev
}

func isIsotope(n *particle.Particle, z, a int) bool {
	return n.AtomicNumber == z && n.MassNumber == a
}
