// Package orbital models hydrogen-like electron orbitals: level energies,
// transitions, and the wavelength/band of the associated photon.
package orbital

import (
	"math"

	"github.com/atomlab/atomsim/internal/atom"
	"github.com/atomlab/atomsim/internal/logging"
	"github.com/atomlab/atomsim/internal/particle"
)

// RydbergEV is the Rydberg constant in electronvolts.
const RydbergEV = 13.605693

// Band classifies a photon wavelength.
type Band int

const (
	Ultraviolet Band = iota
	Visible
	Infrared
)

func (b Band) String() string {
	switch b {
	case Ultraviolet:
		return "ultraviolet"
	case Visible:
		return "visible"
	case Infrared:
		return "infrared"
	default:
		return "unknown"
	}
}

// Model computes orbital energies and simulates electron transitions.
type Model struct {
	log logging.Logger
}

// NewModel builds an orbital model; a nil logger disables diagnostics.
func NewModel(log logging.Logger) *Model {
	if log == nil {
		log = logging.NewNoOp()
	}
	return &Model{log: log}
}

// OrbitalEnergy returns the energy in eV of level n for a hydrogen-like
// atom with atomic number z: E = -Rydberg · Z²/n². Levels below 1 are an
// error, logged and answered with 0.
func (m *Model) OrbitalEnergy(z, n int) float64 {
	if n <= 0 {
		m.log.Errorf("orbital level must be a positive integer, got %d", n)
		return 0
	}
	return -RydbergEV * float64(z*z) / float64(n*n)
}

// SimulateElectronJump moves the electron to newLevel and returns the
// photon energy ΔE = E(new) - E(current) in eV. Positive ΔE means
// absorption, negative means emission. An invalid target level leaves the
// electron untouched and returns 0.
func (m *Model) SimulateElectronJump(e *particle.Particle, a *atom.Atom, newLevel int) float64 {
	if e == nil || a == nil {
		m.log.Errorf("electron jump requires an electron and its atom")
		return 0
	}
	if newLevel <= 0 {
		m.log.Errorf("new orbital level must be a positive integer, got %d", newLevel)
		return 0
	}

	current := e.OrbitalLevel
	z := a.AtomicNumber()
	deltaE := m.OrbitalEnergy(z, newLevel) - m.OrbitalEnergy(z, current)

	e.OrbitalLevel = newLevel
	m.log.Infof("electron jumped from n=%d to n=%d (Z=%d), ΔE = %.4f eV", current, newLevel, z, deltaE)

	return deltaE
}

// EnergyToWavelengthNm converts a photon energy in eV to a wavelength in
// nanometers via λ = 1240/|ΔE|. A zero energy maps to +Inf.
func EnergyToWavelengthNm(deltaE float64) float64 {
	if deltaE == 0 {
		return math.Inf(1)
	}
	return 1240.0 / math.Abs(deltaE)
}

// ClassifyBand buckets a wavelength in nm into UV (<380), visible
// (380–750), or IR (>750).
func ClassifyBand(wavelengthNm float64) Band {
	switch {
	case wavelengthNm < 380.0:
		return Ultraviolet
	case wavelengthNm <= 750.0:
		return Visible
	default:
		return Infrared
	}
}
