// Package scene turns a config into a populated physics engine. It is the
// composition root for the core: the solver, bond calculator, and logger
// are constructed here and injected downwards.
package scene

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/atomlab/atomsim/internal/atom"
	"github.com/atomlab/atomsim/internal/chem"
	"github.com/atomlab/atomsim/internal/config"
	"github.com/atomlab/atomsim/internal/coulomb"
	"github.com/atomlab/atomsim/internal/engine"
	"github.com/atomlab/atomsim/internal/logging"
)

// Build constructs an engine containing the configured atoms and molecules.
// Bond types and energies are derived with the bond calculator rather than
// declared in the config.
func Build(cfg *config.Config, log logging.Logger) (*engine.Engine, error) {
	if log == nil {
		log = logging.NewNoOp()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	solver := &coulomb.Solver{Workers: cfg.Workers}
	eng := engine.New(solver, log)
	calc := chem.NewCalculator(log)

	atoms := make([]*atom.Atom, len(cfg.Atoms))
	for i, ac := range cfg.Atoms {
		pos := r3.Vec{X: ac.Position[0], Y: ac.Position[1], Z: ac.Position[2]}
		atoms[i] = atom.New(ac.Z, ac.A, pos)
	}

	inMolecule := make(map[int]bool)
	for mi, mc := range cfg.Molecules {
		mol := atom.NewMolecule()
		for _, idx := range mc.Atoms {
			mol.AddAtom(atoms[idx])
			inMolecule[idx] = true
		}
		for _, bc := range mc.Bonds {
			a, b := atoms[bc.A], atoms[bc.B]
			t := calc.DetermineBondType(a, b)
			bond := atom.NewBond(a, b, t, calc.BondEnergy(t))
			mol.AddBond(bond)
			log.Debugf("molecule %d: %s bond (%.2f eV) between Z=%d and Z=%d",
				mi, t, bond.Energy, a.AtomicNumber(), b.AtomicNumber())
		}
		eng.AddMolecule(mol)
	}

	for i, a := range atoms {
		if !inMolecule[i] {
			eng.AddAtom(a)
		}
	}

	total := len(eng.Particles())
	log.Infof("scene %q: %d atoms, %d molecules, %d particles",
		cfg.Name, len(eng.Atoms()), len(eng.Molecules()), total)

	if len(eng.Atoms()) == 0 {
		return nil, fmt.Errorf("scene %q contains no atoms", cfg.Name)
	}
	return eng, nil
}
