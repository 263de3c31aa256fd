package config

import (
	"fmt"
	"sort"
)

// Preset names one of the prototype iterations.
type Preset string

const (
	// PresetStatic draws a single square that never moves.
	PresetStatic Preset = "static"
	// PresetDrift moves at unit speed with no controller input and a wider torus.
	PresetDrift Preset = "drift"
	// PresetPilot is the controller-driven tuning.
	PresetPilot Preset = "pilot"
)

var presets = map[Preset]func(*Config){
	PresetStatic: func(cfg *Config) {
		cfg.Sim.Speed = 0
		cfg.Sim.RotationSpeed = 0
	},
	PresetDrift: func(cfg *Config) {
		cfg.Sim.Speed = 1
		cfg.Sim.RotationSpeed = 0
		cfg.Sim.WrapBound = 1.2
	},
	PresetPilot: func(cfg *Config) {
		cfg.Sim.Speed = 0.4
		cfg.Sim.RotationSpeed = 1.5
		cfg.Sim.WrapBound = 1.05
	},
}

// Presets lists the known preset names in sorted order.
func Presets() []Preset {
	names := make([]Preset, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// ApplyPreset overrides the motion constants of cfg with the named preset.
// An empty name leaves cfg unchanged.
func ApplyPreset(cfg *Config, name Preset) error {
	if name == "" {
		return nil
	}
	apply, ok := presets[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	apply(cfg)
	return nil
}
