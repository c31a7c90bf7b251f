// Package coulomb computes pairwise electrostatic forces over a flat
// particle list.
package coulomb

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/atomlab/atomsim/internal/particle"
)

// Constant is Coulomb's constant k_e in N·m²/C².
const Constant = 8.9875e9

// Epsilon is the coincidence cutoff: pairs closer than this contribute no
// force, avoiding the 1/r² singularity.
const Epsilon = 1e-9

// Solver accumulates Coulomb forces. Workers > 1 splits the pair loop
// across goroutines; the zero value solves serially.
type Solver struct {
	Workers int
}

// New returns a serial solver.
func New() *Solver {
	return &Solver{}
}

// Forces returns the total electrostatic force on each particle, indexed
// like the input. Particles are not mutated. Complexity is O(N²); each
// unordered pair is visited once and its force applied antisymmetrically.
func (s *Solver) Forces(particles []*particle.Particle) []r3.Vec {
	if s.Workers > 1 && len(particles) >= parallelThreshold {
		return s.forcesParallel(particles)
	}
	forces := make([]r3.Vec, len(particles))
	for i := 0; i < len(particles); i++ {
		for j := i + 1; j < len(particles); j++ {
			f, ok := pairForce(particles[i], particles[j])
			if !ok {
				continue
			}
			forces[i] = r3.Add(forces[i], f)
			forces[j] = r3.Sub(forces[j], f)
		}
	}
	return forces
}

// pairForce returns the force exerted on a by b. ok is false when the pair
// is closer than Epsilon and must be skipped.
func pairForce(a, b *particle.Particle) (r3.Vec, bool) {
	rVec := r3.Sub(a.Pos, b.Pos)
	dist := r3.Norm(rVec)
	if dist < Epsilon {
		return r3.Vec{}, false
	}
	magnitude := Constant * a.Charge * b.Charge / (dist * dist)
	return r3.Scale(magnitude/dist, rVec), true
}
