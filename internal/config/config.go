// Package config loads and saves scene/run configuration in YAML, and
// carries the built-in scene presets.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.001
	DefaultDuration = 1.0
	DefaultWorkers  = 1
	DefaultLogLevel = "info"
)

// Config describes a full simulation run: the scene contents plus the
// stepping parameters.
type Config struct {
	Name     string  `yaml:"name"`
	Dt       float64 `yaml:"dt"`
	Duration float64 `yaml:"duration"`
	Workers  int     `yaml:"workers"`
	LogLevel string  `yaml:"log_level"`

	Atoms     []AtomConfig     `yaml:"atoms"`
	Molecules []MoleculeConfig `yaml:"molecules"`
}

// AtomConfig places one atom in the scene.
type AtomConfig struct {
	Z        int        `yaml:"z"`
	A        int        `yaml:"a"`
	Position [3]float64 `yaml:"position"`
}

// MoleculeConfig groups previously declared atoms (by index into the atoms
// list) and bonds them. Bond type and energy come from the bond calculator
// at build time.
type MoleculeConfig struct {
	Atoms []int        `yaml:"atoms"`
	Bonds []BondConfig `yaml:"bonds"`
}

// BondConfig bonds two atoms by their indices in the top-level atoms list.
type BondConfig struct {
	A int `yaml:"a"`
	B int `yaml:"b"`
}

// Default returns an empty scene with default stepping parameters.
func Default() *Config {
	return &Config{
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Workers:  DefaultWorkers,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads a YAML config from path, applying defaults for omitted
// stepping parameters.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks structural consistency: positive stepping parameters,
// physical Z/A, and in-range atom indices in molecules.
func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", c.Duration)
	}
	for i, a := range c.Atoms {
		if a.Z < 0 {
			return fmt.Errorf("atom %d: atomic number must be non-negative, got %d", i, a.Z)
		}
		if a.A < a.Z {
			return fmt.Errorf("atom %d: mass number %d below atomic number %d", i, a.A, a.Z)
		}
	}
	for i, m := range c.Molecules {
		for _, idx := range m.Atoms {
			if idx < 0 || idx >= len(c.Atoms) {
				return fmt.Errorf("molecule %d: atom index %d out of range", i, idx)
			}
		}
		for _, b := range m.Bonds {
			if b.A < 0 || b.A >= len(c.Atoms) || b.B < 0 || b.B >= len(c.Atoms) {
				return fmt.Errorf("molecule %d: bond indices (%d,%d) out of range", i, b.A, b.B)
			}
		}
	}
	return nil
}
