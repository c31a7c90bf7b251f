package particle

// Physical constants in SI units.
const (
	ProtonMass       = 1.672e-27 // kg
	NeutronMass      = 1.674e-27 // kg
	ElectronMass     = 9.109e-31 // kg
	ElementaryCharge = 1.602e-19 // C
)
