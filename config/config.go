// Package config provides YAML-based configuration loading, prototype presets
// and live reloading for drift.
package config

import (
	"github.com/plus3/drift/sim"
)

// Config is the complete, file-backed configuration of a drift session.
type Config struct {
	Window   Window       `yaml:"window"`
	Sim      sim.Config   `yaml:"sim"`
	Entities []sim.Entity `yaml:"entities"`
	Log      Log          `yaml:"log"`
	Debug    Debug        `yaml:"debug"`
}

// Window describes the platform window.
type Window struct {
	Title        string `yaml:"title"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	ExitOnEscape bool   `yaml:"exit_on_escape"`
	SRGB         bool   `yaml:"srgb"`
	// Backend selects the graphics library: auto, opengl, directx or metal.
	Backend string `yaml:"backend"`
	// TPS is the number of update events per second.
	TPS int `yaml:"tps"`
}

type Log struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"` // text, json or logfmt
	Timestamps bool   `yaml:"timestamps"`
}

type Debug struct {
	Overlay       bool `yaml:"overlay"`
	HistoryFrames int  `yaml:"history_frames"`
}
