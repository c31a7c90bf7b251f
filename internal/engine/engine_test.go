package engine_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/atomlab/atomsim/internal/atom"
	"github.com/atomlab/atomsim/internal/engine"
)

var _ = Describe("Engine", func() {
	var eng *engine.Engine

	BeforeEach(func() {
		eng = engine.New(nil, nil)
	})

	Describe("registration", func() {
		It("deduplicates atoms added twice", func() {
			a := atom.New(1, 1, r3.Vec{})
			eng.AddAtom(a)
			eng.AddAtom(a)

			Expect(eng.Atoms()).To(HaveLen(1))
		})

		It("registers molecule atoms into the flat list", func() {
			o := atom.New(8, 16, r3.Vec{})
			h1 := atom.New(1, 1, r3.Vec{X: 1, Y: 0.5})
			h2 := atom.New(1, 1, r3.Vec{X: -1, Y: 0.5})

			mol := atom.NewMolecule()
			mol.AddAtom(o)
			mol.AddAtom(h1)
			mol.AddAtom(h2)
			eng.AddMolecule(mol)

			Expect(eng.Atoms()).To(HaveLen(3))
			Expect(eng.Molecules()).To(HaveLen(1))
		})

		It("counts an atom once when added directly and via a molecule", func() {
			a := atom.New(1, 1, r3.Vec{})
			eng.AddAtom(a)

			mol := atom.NewMolecule()
			mol.AddAtom(a)
			eng.AddMolecule(mol)

			Expect(eng.Atoms()).To(HaveLen(1))
		})
	})

	Describe("Particles", func() {
		It("flattens each atom into nucleus plus electrons", func() {
			eng.AddAtom(atom.New(8, 16, r3.Vec{}))
			eng.AddAtom(atom.New(1, 1, r3.Vec{X: 1}))

			// 1 nucleus + 8 electrons, then 1 nucleus + 1 electron.
			Expect(eng.Particles()).To(HaveLen(11))
		})
	})

	Describe("Update", func() {
		It("accelerates particles under cross-atom forces", func() {
			eng.AddAtom(atom.New(1, 1, r3.Vec{X: -0.5}))
			eng.AddAtom(atom.New(1, 1, r3.Vec{X: 0.5}))

			Expect(eng.KineticEnergy()).To(BeZero())
			eng.Update(1e-3)
			Expect(eng.KineticEnergy()).To(BeNumerically(">", 0))
		})

		It("leaves a lone atom at rest", func() {
			// Nucleus and electron are coincident, so the pair is
			// skipped by the solver's epsilon guard.
			a := atom.New(1, 1, r3.Vec{X: 2})
			eng.AddAtom(a)

			eng.Update(1e-3)
			Expect(a.Position()).To(Equal(r3.Vec{X: 2}))
		})
	})

	Describe("Run", func() {
		BeforeEach(func() {
			eng.AddAtom(atom.New(1, 1, r3.Vec{X: -0.5}))
			eng.AddAtom(atom.New(1, 1, r3.Vec{X: 0.5}))
		})

		It("records one frame per step plus the initial state", func() {
			result, err := eng.Run(context.Background(), engine.Config{Dt: 0.01, Duration: 0.1})
			Expect(err).NotTo(HaveOccurred())

			Expect(result.StepsTaken).To(Equal(10))
			Expect(result.Times).To(HaveLen(11))
			Expect(result.Frames).To(HaveLen(11))
			Expect(result.Frames[0]).To(HaveLen(2))
		})

		It("evaluates attached metrics", func() {
			eng.AddMetric(engine.NewKineticEnergy())
			eng.AddMetric(engine.NewMomentumDrift())

			result, err := eng.Run(context.Background(), engine.Config{Dt: 0.01, Duration: 0.1})
			Expect(err).NotTo(HaveOccurred())

			Expect(result.Metrics).To(HaveKey("kinetic_energy"))
			Expect(result.Metrics).To(HaveKey("momentum_drift"))
		})

		It("keeps total momentum near zero from a cold start", func() {
			result, err := eng.Run(context.Background(), engine.Config{Dt: 1e-3, Duration: 0.05})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.StepsTaken).To(Equal(50))

			// Forces come in antisymmetric pairs; starting from rest
			// the momentum stays at floating-point noise.
			Expect(r3.Norm(eng.Momentum())).To(BeNumerically("<", 1e-30))
		})

		It("rejects non-positive stepping parameters", func() {
			_, err := eng.Run(context.Background(), engine.Config{Dt: 0, Duration: 1})
			Expect(err).To(HaveOccurred())

			_, err = eng.Run(context.Background(), engine.Config{Dt: 0.01, Duration: -1})
			Expect(err).To(HaveOccurred())
		})

		It("stops when the context is canceled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			result, err := eng.Run(ctx, engine.Config{Dt: 0.01, Duration: 1})
			Expect(err).To(MatchError(context.Canceled))
			Expect(result).NotTo(BeNil())
		})
	})

	Describe("observers", func() {
		It("notifies on every step", func() {
			eng.AddAtom(atom.New(1, 1, r3.Vec{}))

			count := 0
			eng.AddObserver(observerFunc(func(e *engine.Engine, t float64) { count++ }))

			_, err := eng.Run(context.Background(), engine.Config{Dt: 0.01, Duration: 0.1})
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(10))
		})
	})
})

type observerFunc func(e *engine.Engine, t float64)

func (f observerFunc) OnStep(e *engine.Engine, t float64) { f(e, t) }
