package config

import "sort"

// Presets are the built-in demonstration scenes.
var Presets = map[string]*Config{
	"h2o": {
		Name: "h2o", Dt: 0.001, Duration: 1.0, Workers: 1, LogLevel: "info",
		Atoms: []AtomConfig{
			{Z: 8, A: 16, Position: [3]float64{0, 0, 0}},
			{Z: 1, A: 1, Position: [3]float64{1.0, 0.5, 0}},
			{Z: 1, A: 1, Position: [3]float64{-1.0, 0.5, 0}},
		},
		Molecules: []MoleculeConfig{
			{Atoms: []int{0, 1, 2}, Bonds: []BondConfig{{A: 0, B: 1}, {A: 0, B: 2}}},
		},
	},
	"hydrogen": {
		Name: "hydrogen", Dt: 0.001, Duration: 2.0, Workers: 1, LogLevel: "info",
		Atoms: []AtomConfig{
			{Z: 1, A: 1, Position: [3]float64{-0.5, 0, 0}},
			{Z: 1, A: 1, Position: [3]float64{0.5, 0, 0}},
		},
		Molecules: []MoleculeConfig{
			{Atoms: []int{0, 1}, Bonds: []BondConfig{{A: 0, B: 1}}},
		},
	},
	"uranium": {
		Name: "uranium", Dt: 0.001, Duration: 1.0, Workers: 1, LogLevel: "info",
		Atoms: []AtomConfig{
			{Z: 92, A: 235, Position: [3]float64{5.0, 0, 0}},
		},
	},
	"dt-plasma": {
		Name: "dt-plasma", Dt: 0.001, Duration: 1.0, Workers: 1, LogLevel: "info",
		Atoms: []AtomConfig{
			{Z: 1, A: 2, Position: [3]float64{-1.0, 0, 0}},
			{Z: 1, A: 3, Position: [3]float64{1.0, 0, 0}},
		},
	},
	"mixed": {
		Name: "mixed", Dt: 0.001, Duration: 1.0, Workers: 1, LogLevel: "info",
		Atoms: []AtomConfig{
			{Z: 8, A: 16, Position: [3]float64{0, 0, 0}},
			{Z: 1, A: 1, Position: [3]float64{1.0, 0.5, 0}},
			{Z: 1, A: 1, Position: [3]float64{-1.0, 0.5, 0}},
			{Z: 6, A: 12, Position: [3]float64{3.0, 0, 0}},
			{Z: 7, A: 14, Position: [3]float64{-3.0, 0, 0}},
		},
		Molecules: []MoleculeConfig{
			{Atoms: []int{0, 1, 2}, Bonds: []BondConfig{{A: 0, B: 1}, {A: 0, B: 2}}},
		},
	},
}

// GetPreset returns the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
