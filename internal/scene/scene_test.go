package scene

import (
	"testing"

	"github.com/atomlab/atomsim/internal/atom"
	"github.com/atomlab/atomsim/internal/config"
)

func TestBuildH2O(t *testing.T) {
	eng, err := Build(config.GetPreset("h2o"), nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if len(eng.Atoms()) != 3 {
		t.Errorf("expected 3 atoms, got %d", len(eng.Atoms()))
	}
	if len(eng.Molecules()) != 1 {
		t.Fatalf("expected 1 molecule, got %d", len(eng.Molecules()))
	}

	// O nucleus + 8 electrons, 2x (H nucleus + 1 electron).
	if len(eng.Particles()) != 13 {
		t.Errorf("expected 13 particles, got %d", len(eng.Particles()))
	}

	bonds := eng.Molecules()[0].Bonds()
	if len(bonds) != 2 {
		t.Fatalf("expected 2 bonds, got %d", len(bonds))
	}
	for i, b := range bonds {
		if b.Type != atom.Single {
			t.Errorf("bond %d: expected single O-H bond, got %s", i, b.Type)
		}
		if b.Energy != 4.5 {
			t.Errorf("bond %d: expected 4.5 eV, got %f", i, b.Energy)
		}
	}
}

func TestBuildMixedScene(t *testing.T) {
	eng, err := Build(config.GetPreset("mixed"), nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	// 3 molecule atoms + 2 free atoms, all in the flat list.
	if len(eng.Atoms()) != 5 {
		t.Errorf("expected 5 atoms, got %d", len(eng.Atoms()))
	}
	if len(eng.Molecules()) != 1 {
		t.Errorf("expected 1 molecule, got %d", len(eng.Molecules()))
	}
}

func TestBuildEmptySceneFails(t *testing.T) {
	cfg := config.Default()
	cfg.Name = "empty"

	if _, err := Build(cfg, nil); err == nil {
		t.Error("expected error for scene without atoms")
	}
}

func TestBuildInvalidConfigFails(t *testing.T) {
	cfg := config.Default()
	cfg.Atoms = []config.AtomConfig{{Z: 2, A: 1}}

	if _, err := Build(cfg, nil); err == nil {
		t.Error("expected validation error for A < Z")
	}
}

func TestBuildAtomPositions(t *testing.T) {
	eng, err := Build(config.GetPreset("h2o"), nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	h1 := eng.Atoms()[1]
	pos := h1.Position()
	if pos.X != 1.0 || pos.Y != 0.5 || pos.Z != 0 {
		t.Errorf("expected first hydrogen at (1, 0.5, 0), got %+v", pos)
	}
}
