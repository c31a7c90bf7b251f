package engine

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// KineticEnergy averages the system kinetic energy over a run.
type KineticEnergy struct {
	samples int
	total   float64
}

// NewKineticEnergy returns a fresh kinetic-energy metric.
func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{}
}

func (k *KineticEnergy) Name() string { return "kinetic_energy" }

func (k *KineticEnergy) Observe(e *Engine, t float64) {
	k.total += e.KineticEnergy()
	k.samples++
}

func (k *KineticEnergy) Value() float64 {
	if k.samples == 0 {
		return 0
	}
	return k.total / float64(k.samples)
}

func (k *KineticEnergy) Reset() {
	k.samples = 0
	k.total = 0
}

// MomentumDrift tracks the largest deviation of the total linear momentum
// from its initial value. The Coulomb solve applies forces in antisymmetric
// pairs, so drift should stay at floating-point noise.
type MomentumDrift struct {
	samples  int
	initial  r3.Vec
	maxDrift float64
}

// NewMomentumDrift returns a fresh momentum-drift metric.
func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{}
}

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) Observe(e *Engine, t float64) {
	p := e.Momentum()
	if m.samples == 0 {
		m.initial = p
	}
	m.samples++
	m.maxDrift = math.Max(m.maxDrift, r3.Norm(r3.Sub(p, m.initial)))
}

func (m *MomentumDrift) Value() float64 { return m.maxDrift }

func (m *MomentumDrift) Reset() {
	m.samples = 0
	m.initial = r3.Vec{}
	m.maxDrift = 0
}
