package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrUnknownPreset is returned for preset names that do not exist.
	ErrUnknownPreset = errors.New("unknown preset")
)

var backends = []string{"auto", "opengl", "directx", "metal"}

var logFormats = []string{"text", "json", "logfmt"}

// Validate reports the first problem found in cfg.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("%w: window.tps must be positive", ErrInvalidConfig)
	}
	if !contains(backends, c.Window.Backend) {
		return fmt.Errorf("%w: window.backend must be one of %s", ErrInvalidConfig, strings.Join(backends, ", "))
	}

	if c.Sim.WrapBound <= 0 {
		return fmt.Errorf("%w: sim.wrap_bound must be positive", ErrInvalidConfig)
	}
	if c.Sim.ViewportNormalization <= 0 {
		return fmt.Errorf("%w: sim.viewport_normalization must be positive", ErrInvalidConfig)
	}
	if c.Sim.EntityRadius <= 0 {
		return fmt.Errorf("%w: sim.entity_radius must be positive", ErrInvalidConfig)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q: %v", ErrInvalidConfig, c.Log.Level, err)
	}
	if !contains(logFormats, c.Log.Format) {
		return fmt.Errorf("%w: log.format must be one of %s", ErrInvalidConfig, strings.Join(logFormats, ", "))
	}
	if c.Debug.HistoryFrames < 0 {
		return fmt.Errorf("%w: debug.history_frames must not be negative", ErrInvalidConfig)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
