// Package engine orchestrates the sandbox simulation: it owns the atoms and
// molecules, gathers their particles each step, runs the Coulomb solve, and
// integrates the result.
package engine

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/atomlab/atomsim/internal/atom"
	"github.com/atomlab/atomsim/internal/coulomb"
	"github.com/atomlab/atomsim/internal/logging"
	"github.com/atomlab/atomsim/internal/particle"
)

// Engine holds the simulation state. Atoms and molecules only ever
// accumulate; there is no removal. An Engine is not safe for concurrent
// use: structural mutation must not interleave with Update.
type Engine struct {
	log    logging.Logger
	solver *coulomb.Solver

	atoms     []*atom.Atom
	molecules []*atom.Molecule
	seen      map[*atom.Atom]struct{}

	metrics   []Metric
	observers []Observer
}

// New builds an engine around the given solver. Nil arguments fall back to
// a serial solver and a no-op logger.
func New(solver *coulomb.Solver, log logging.Logger) *Engine {
	if solver == nil {
		solver = coulomb.New()
	}
	if log == nil {
		log = logging.NewNoOp()
	}
	return &Engine{
		log:    log,
		solver: solver,
		seen:   make(map[*atom.Atom]struct{}),
	}
}

// AddAtom registers an atom for simulation. Registering the same atom
// again, directly or through AddMolecule, is a no-op.
func (e *Engine) AddAtom(a *atom.Atom) {
	if _, ok := e.seen[a]; ok {
		return
	}
	e.seen[a] = struct{}{}
	e.atoms = append(e.atoms, a)
}

// AddMolecule registers a molecule and every atom it contains.
func (e *Engine) AddMolecule(m *atom.Molecule) {
	e.molecules = append(e.molecules, m)
	for _, a := range m.Atoms() {
		e.AddAtom(a)
	}
}

// AddMetric attaches a metric observed on every Run step.
func (e *Engine) AddMetric(m Metric) { e.metrics = append(e.metrics, m) }

// AddObserver attaches an observer notified on every Run step.
func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }

// Atoms returns the registered atoms, including those added via molecules.
func (e *Engine) Atoms() []*atom.Atom { return e.atoms }

// Molecules returns the registered molecules.
func (e *Engine) Molecules() []*atom.Molecule { return e.molecules }

// Particles flattens every atom into its nucleus followed by its electrons,
// in registration order.
func (e *Engine) Particles() []*particle.Particle {
	var all []*particle.Particle
	for _, a := range e.atoms {
		all = append(all, a.Nucleus())
		all = append(all, a.Electrons()...)
	}
	return all
}

// Update advances the simulation by one step: one Coulomb solve over all
// particles, then a forward-Euler integration of each. Runs to completion
// before returning; dt is caller-supplied and trusted.
func (e *Engine) Update(dt float64) {
	particles := e.Particles()
	forces := e.solver.Forces(particles)
	for i, p := range particles {
		p.Update(forces[i], dt)
	}
}

// KineticEnergy returns the total kinetic energy of all particles, in
// Joules.
func (e *Engine) KineticEnergy() float64 {
	ke := 0.0
	for _, p := range e.Particles() {
		v2 := r3.Dot(p.Vel, p.Vel)
		ke += 0.5 * p.Mass * v2
	}
	return ke
}

// Momentum returns the total linear momentum of all particles, in kg·m/s.
func (e *Engine) Momentum() r3.Vec {
	var total r3.Vec
	for _, p := range e.Particles() {
		total = r3.Add(total, r3.Scale(p.Mass, p.Vel))
	}
	return total
}
