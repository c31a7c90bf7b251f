package engine

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Config parameterizes a Run.
type Config struct {
	Dt       float64
	Duration float64
}

// Result captures a completed run: the atom trajectory plus final metric
// values. Frames[i][j] is the position of atom j at Times[i].
type Result struct {
	Times      []float64
	Frames     [][]r3.Vec
	Metrics    map[string]float64
	StepsTaken int
}

// Metric accumulates a scalar over a run.
type Metric interface {
	Name() string
	Observe(e *Engine, t float64)
	Value() float64
	Reset()
}

// Observer is notified after every step of a run.
type Observer interface {
	OnStep(e *Engine, t float64)
}

// Run drives the engine for cfg.Duration at fixed cfg.Dt, recording the
// atom trajectory. The context is checked every step; on cancellation the
// partial result is returned with the context's error.
func (e *Engine) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Times:   make([]float64, 0, steps+1),
		Frames:  make([][]r3.Vec, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range e.metrics {
		m.Reset()
	}

	t := 0.0
	result.Times = append(result.Times, t)
	result.Frames = append(result.Frames, e.snapshot())

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		for _, m := range e.metrics {
			m.Observe(e, t)
		}
		for _, obs := range e.observers {
			obs.OnStep(e, t)
		}

		e.Update(cfg.Dt)
		t += cfg.Dt
		result.StepsTaken++

		result.Times = append(result.Times, t)
		result.Frames = append(result.Frames, e.snapshot())
	}

	for _, m := range e.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (cfg Config) validate() error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}

// snapshot copies the current atom positions.
func (e *Engine) snapshot() []r3.Vec {
	frame := make([]r3.Vec, len(e.atoms))
	for i, a := range e.atoms {
		frame[i] = a.Position()
	}
	return frame
}
