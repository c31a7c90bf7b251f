// Package atom aggregates particles into atoms, bonds, and molecules.
package atom

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/atomlab/atomsim/internal/particle"
)

// Atom owns one nucleus and its electrons. Its position is defined by the
// nucleus; moving the atom rigidly translates the electrons with it.
type Atom struct {
	nucleus   *particle.Particle
	electrons []*particle.Particle
}

// New builds a neutral atom with atomic number z and mass number a at the
// given position. The nucleus and z electrons all start at pos with zero
// velocity; every electron begins in the ground orbital (n = 1).
func New(z, a int, pos r3.Vec) *Atom {
	at := &Atom{
		nucleus:   particle.NewNucleus(z, a, pos),
		electrons: make([]*particle.Particle, 0, z),
	}
	for i := 0; i < z; i++ {
		at.electrons = append(at.electrons, particle.NewElectron(pos, 1))
	}
	return at
}

// AtomicNumber returns Z.
func (a *Atom) AtomicNumber() int { return a.nucleus.AtomicNumber }

// MassNumber returns A.
func (a *Atom) MassNumber() int { return a.nucleus.MassNumber }

// Nucleus returns the nucleus particle.
func (a *Atom) Nucleus() *particle.Particle { return a.nucleus }

// Electrons returns the electron particles. The slice is shared; callers
// must not grow or shrink it.
func (a *Atom) Electrons() []*particle.Particle { return a.electrons }

// Position returns the nucleus position.
func (a *Atom) Position() r3.Vec { return a.nucleus.Pos }

// SetPosition moves the nucleus to pos and shifts every electron by the
// same delta. Setting the same position twice is a no-op the second time.
func (a *Atom) SetPosition(pos r3.Vec) {
	delta := r3.Sub(pos, a.nucleus.Pos)
	a.nucleus.Pos = pos
	for _, e := range a.electrons {
		e.Pos = r3.Add(e.Pos, delta)
	}
}

// AddElectron attaches an electron to the atom (ionization states).
func (a *Atom) AddElectron(e *particle.Particle) {
	a.electrons = append(a.electrons, e)
}

// RemoveElectron detaches the given electron, reporting whether it was
// present.
func (a *Atom) RemoveElectron(e *particle.Particle) bool {
	for i, cur := range a.electrons {
		if cur == e {
			a.electrons = append(a.electrons[:i], a.electrons[i+1:]...)
			return true
		}
	}
	return false
}
