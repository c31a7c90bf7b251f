package atom

// BondType enumerates the modeled bond varieties.
type BondType int

const (
	Single BondType = iota
	Double
	Triple
	Ionic
	Metallic
	Hydrogen
)

func (t BondType) String() string {
	switch t {
	case Single:
		return "single"
	case Double:
		return "double"
	case Triple:
		return "triple"
	case Ionic:
		return "ionic"
	case Metallic:
		return "metallic"
	case Hydrogen:
		return "hydrogen"
	default:
		return "unknown"
	}
}

// Bond links two atoms. The atom references and type are fixed at
// construction; the energy may be adjusted afterwards.
type Bond struct {
	A, B   *Atom
	Type   BondType
	Energy float64 // eV
}

// NewBond creates a bond between a and b.
func NewBond(a, b *Atom, t BondType, energy float64) *Bond {
	return &Bond{A: a, B: b, Type: t, Energy: energy}
}

// Molecule aggregates atoms and the bonds between them. It does not own the
// atoms and does not deduplicate; callers decide what sharing means.
type Molecule struct {
	atoms []*Atom
	bonds []*Bond
}

// NewMolecule returns an empty molecule.
func NewMolecule() *Molecule {
	return &Molecule{}
}

// AddAtom appends an atom to the molecule.
func (m *Molecule) AddAtom(a *Atom) {
	m.atoms = append(m.atoms, a)
}

// AddBond appends a bond to the molecule.
func (m *Molecule) AddBond(b *Bond) {
	m.bonds = append(m.bonds, b)
}

// Atoms returns the molecule's atoms.
func (m *Molecule) Atoms() []*Atom { return m.atoms }

// Bonds returns the molecule's bonds.
func (m *Molecule) Bonds() []*Bond { return m.bonds }
