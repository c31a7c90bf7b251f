package atom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/atomlab/atomsim/internal/particle"
)

func TestNewAtomNeutral(t *testing.T) {
	pos := r3.Vec{X: 1, Y: 2, Z: 3}
	a := New(8, 16, pos)

	if a.AtomicNumber() != 8 || a.MassNumber() != 16 {
		t.Errorf("expected Z=8 A=16, got Z=%d A=%d", a.AtomicNumber(), a.MassNumber())
	}
	if len(a.Electrons()) != 8 {
		t.Fatalf("expected 8 electrons, got %d", len(a.Electrons()))
	}
	if a.Position() != pos {
		t.Errorf("expected position %+v, got %+v", pos, a.Position())
	}
	for i, e := range a.Electrons() {
		if e.Pos != pos {
			t.Errorf("electron %d: expected position %+v, got %+v", i, pos, e.Pos)
		}
		if r3.Norm(e.Vel) != 0 {
			t.Errorf("electron %d: expected zero velocity, got %+v", i, e.Vel)
		}
		if e.OrbitalLevel != 1 {
			t.Errorf("electron %d: expected ground orbital, got n=%d", i, e.OrbitalLevel)
		}
	}
}

func TestSetPositionRigidTranslation(t *testing.T) {
	a := New(1, 1, r3.Vec{})
	e := a.Electrons()[0]
	e.Pos = r3.Vec{X: 0.1, Y: 0.2} // displaced electron keeps its offset

	target := r3.Vec{X: 5, Y: -3, Z: 1}
	a.SetPosition(target)

	if a.Position() != target {
		t.Errorf("expected nucleus at %+v, got %+v", target, a.Position())
	}
	wantElectron := r3.Vec{X: 5.1, Y: -2.8, Z: 1}
	if r3.Norm(r3.Sub(e.Pos, wantElectron)) > 1e-12 {
		t.Errorf("expected electron at %+v, got %+v", wantElectron, e.Pos)
	}
}

func TestSetPositionIdempotent(t *testing.T) {
	a := New(6, 12, r3.Vec{X: 1})
	target := r3.Vec{X: 2, Y: 2}

	a.SetPosition(target)
	first := make([]r3.Vec, len(a.Electrons()))
	for i, e := range a.Electrons() {
		first[i] = e.Pos
	}

	a.SetPosition(target)
	if a.Position() != target {
		t.Errorf("second SetPosition moved nucleus to %+v", a.Position())
	}
	for i, e := range a.Electrons() {
		if r3.Norm(r3.Sub(e.Pos, first[i])) > 0 {
			t.Errorf("second SetPosition displaced electron %d by %e", i, r3.Norm(r3.Sub(e.Pos, first[i])))
		}
	}
}

func TestAddRemoveElectron(t *testing.T) {
	a := New(1, 1, r3.Vec{})
	extra := particle.NewElectron(r3.Vec{X: 1}, 2)

	a.AddElectron(extra)
	if len(a.Electrons()) != 2 {
		t.Fatalf("expected 2 electrons, got %d", len(a.Electrons()))
	}

	if !a.RemoveElectron(extra) {
		t.Error("expected removal to succeed")
	}
	if len(a.Electrons()) != 1 {
		t.Errorf("expected 1 electron after removal, got %d", len(a.Electrons()))
	}
	if a.RemoveElectron(extra) {
		t.Error("expected second removal to fail")
	}
}

func TestNucleusMassPositive(t *testing.T) {
	// Integration divides by mass, so even a bare proton must be positive.
	a := New(1, 1, r3.Vec{})
	if a.Nucleus().Mass <= 0 {
		t.Errorf("nucleus mass must be positive, got %e", a.Nucleus().Mass)
	}
	if math.IsNaN(a.Nucleus().Mass) {
		t.Error("nucleus mass is NaN")
	}
}

func TestMoleculeAggregation(t *testing.T) {
	o := New(8, 16, r3.Vec{})
	h1 := New(1, 1, r3.Vec{X: 1})
	h2 := New(1, 1, r3.Vec{X: -1})

	m := NewMolecule()
	m.AddAtom(o)
	m.AddAtom(h1)
	m.AddAtom(h2)
	m.AddBond(NewBond(o, h1, Single, 4.5))
	m.AddBond(NewBond(o, h2, Single, 4.5))

	if len(m.Atoms()) != 3 {
		t.Errorf("expected 3 atoms, got %d", len(m.Atoms()))
	}
	if len(m.Bonds()) != 2 {
		t.Errorf("expected 2 bonds, got %d", len(m.Bonds()))
	}

	// Duplicates are permitted at the molecule level.
	m.AddAtom(o)
	if len(m.Atoms()) != 4 {
		t.Errorf("molecule should not deduplicate atoms, got %d", len(m.Atoms()))
	}
}

func TestBondEnergyMutable(t *testing.T) {
	a := New(1, 1, r3.Vec{})
	b := New(1, 1, r3.Vec{X: 1})

	bond := NewBond(a, b, Single, 4.5)
	bond.Energy = 3.9

	if bond.Energy != 3.9 {
		t.Errorf("expected updated energy 3.9, got %f", bond.Energy)
	}
	if bond.A != a || bond.B != b || bond.Type != Single {
		t.Error("bond atoms and type must be fixed at construction")
	}
}

func TestBondTypeString(t *testing.T) {
	tests := []struct {
		t    BondType
		want string
	}{
		{Single, "single"},
		{Double, "double"},
		{Triple, "triple"},
		{Ionic, "ionic"},
		{Metallic, "metallic"},
		{Hydrogen, "hydrogen"},
		{BondType(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("BondType(%d).String() = %q, want %q", tt.t, got, tt.want)
		}
	}
}
