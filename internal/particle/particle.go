// Package particle defines the base physical entity of the sandbox: a point
// particle with position, velocity, mass, and charge, specialized by kind
// into nuclei and electrons. Specialization is a tagged variant rather than
// a type hierarchy; callers dispatch on Kind.
package particle

import "gonum.org/v1/gonum/spatial/r3"

// Kind discriminates the particle variants.
type Kind int

const (
	Proton Kind = iota
	Neutron
	Electron
	Nucleus
)

func (k Kind) String() string {
	switch k {
	case Proton:
		return "proton"
	case Neutron:
		return "neutron"
	case Electron:
		return "electron"
	case Nucleus:
		return "nucleus"
	default:
		return "unknown"
	}
}

// Particle is a point mass with charge. The Z/A fields are meaningful only
// for Kind == Nucleus, OrbitalLevel only for Kind == Electron.
type Particle struct {
	Kind Kind

	Pos r3.Vec // meters
	Vel r3.Vec // m/s

	Mass   float64 // kg, strictly positive
	Charge float64 // Coulombs

	AtomicNumber int // Z, nucleus only
	MassNumber   int // A, nucleus only

	OrbitalLevel int // principal quantum number n, electron only
}

// NewNucleus builds a nucleus for the given atomic number Z and mass number
// A. Mass is Z protons plus A-Z neutrons; charge is Z elementary charges.
func NewNucleus(z, a int, pos r3.Vec) *Particle {
	return &Particle{
		Kind:         Nucleus,
		Pos:          pos,
		Mass:         float64(z)*ProtonMass + float64(a-z)*NeutronMass,
		Charge:       float64(z) * ElementaryCharge,
		AtomicNumber: z,
		MassNumber:   a,
	}
}

// NewElectron builds an electron at the given position and orbital level.
func NewElectron(pos r3.Vec, orbitalLevel int) *Particle {
	return &Particle{
		Kind:         Electron,
		Pos:          pos,
		Mass:         ElectronMass,
		Charge:       -ElementaryCharge,
		OrbitalLevel: orbitalLevel,
	}
}

// NewProton builds a free proton.
func NewProton(pos r3.Vec) *Particle {
	return &Particle{
		Kind:   Proton,
		Pos:    pos,
		Mass:   ProtonMass,
		Charge: ElementaryCharge,
	}
}

// NewNeutron builds a free neutron.
func NewNeutron(pos r3.Vec) *Particle {
	return &Particle{
		Kind: Neutron,
		Pos:  pos,
		Mass: NeutronMass,
	}
}

// Update advances the particle by one forward-Euler step under the given
// force: a = F/m, v += a*dt, x += v*dt. The caller guarantees Mass > 0 and
// a dt small enough for stability; no check is performed here.
func (p *Particle) Update(force r3.Vec, dt float64) {
	acc := r3.Scale(1.0/p.Mass, force)
	p.Vel = r3.Add(p.Vel, r3.Scale(dt, acc))
	p.Pos = r3.Add(p.Pos, r3.Scale(dt, p.Vel))
}
