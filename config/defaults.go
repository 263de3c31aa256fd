package config

import (
	_ "embed"

	"github.com/plus3/drift/sim"
)

//go:embed defaults/drift.yaml
var defaultYAML []byte

// Default returns the built-in configuration: one red square steered by the
// first controller's first axis in a 400x400 window.
func Default() Config {
	return Config{
		Window: Window{
			Title:        "rustgametest",
			Width:        400,
			Height:       400,
			ExitOnEscape: true,
			SRGB:         false,
			Backend:      "auto",
			TPS:          60,
		},
		Sim: sim.DefaultConfig(),
		Entities: []sim.Entity{
			{Position: sim.Vector2{X: 0, Y: 0}, Rotation: 0, Color: sim.Red},
		},
		Log: Log{
			Level:      "info",
			Format:     "text",
			Timestamps: true,
		},
		Debug: Debug{
			Overlay:       false,
			HistoryFrames: 120,
		},
	}
}
