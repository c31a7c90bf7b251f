package nuclear

import (
	"testing"

	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/atomlab/atomsim/internal/particle"
)

func TestBindingEnergyIron(t *testing.T) {
	g := NewWithT(t)
	r := NewReactor(nil)

	// Fe-56 sits near the peak of the binding energy curve, ~8.8 MeV
	// per nucleon.
	ev := r.BindingEnergyPerNucleon(26, 56)
	g.Expect(ev).To(BeNumerically("~", 8.799e6, 1e4))
}

func TestBindingEnergyCurveShape(t *testing.T) {
	g := NewWithT(t)
	r := NewReactor(nil)

	iron := r.BindingEnergyPerNucleon(26, 56)
	uranium := r.BindingEnergyPerNucleon(92, 235)
	helium := r.BindingEnergyPerNucleon(2, 4)

	g.Expect(iron).To(BeNumerically(">", uranium))
	g.Expect(iron).To(BeNumerically(">", helium))
	g.Expect(uranium).To(BeNumerically(">", 0))
}

func TestBindingEnergyEdgeCases(t *testing.T) {
	g := NewWithT(t)
	r := NewReactor(nil)

	g.Expect(r.BindingEnergyPerNucleon(0, 0)).To(BeZero())
	// Light odd-odd nuclei drive the formula negative; the total is
	// clamped at zero.
	g.Expect(r.BindingEnergyPerNucleon(1, 1)).To(BeZero())
}

func TestFissionU235(t *testing.T) {
	g := NewWithT(t)
	r := NewReactor(nil)

	n := particle.NewNucleus(92, 235, r3.Vec{})
	ev := r.SimulateFission(n)

	g.Expect(ev).To(BeNumerically("~", 1.733e8, 1e6))
}

func TestFissionUnsupportedIsotope(t *testing.T) {
	g := NewWithT(t)
	r := NewReactor(nil)

	tests := []struct{ z, a int }{
		{1, 1},
		{92, 238},
		{94, 239},
	}
	for _, tt := range tests {
		n := particle.NewNucleus(tt.z, tt.a, r3.Vec{})
		g.Expect(r.SimulateFission(n)).To(Equal(0.0), "Z=%d A=%d", tt.z, tt.a)
	}
	g.Expect(r.SimulateFission(nil)).To(Equal(0.0))
}

func TestFusionDT(t *testing.T) {
	g := NewWithT(t)
	r := NewReactor(nil)

	d := particle.NewNucleus(1, 2, r3.Vec{})
	tr := particle.NewNucleus(1, 3, r3.Vec{X: 1})

	ev := r.SimulateFusion(d, tr)
	g.Expect(ev).To(BeNumerically("~", 1.759e7, 1e5))

	// Unordered pair: swapping arguments changes nothing.
	g.Expect(r.SimulateFusion(tr, d)).To(Equal(ev))
}

func TestFusionUnsupportedPair(t *testing.T) {
	g := NewWithT(t)
	r := NewReactor(nil)

	d := particle.NewNucleus(1, 2, r3.Vec{})
	h := particle.NewNucleus(1, 1, r3.Vec{})
	he := particle.NewNucleus(2, 4, r3.Vec{})

	g.Expect(r.SimulateFusion(d, d)).To(Equal(0.0), "D-D is not modeled")
	g.Expect(r.SimulateFusion(h, he)).To(Equal(0.0))
	g.Expect(r.SimulateFusion(d, nil)).To(Equal(0.0))
}
