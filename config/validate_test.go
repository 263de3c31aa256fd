package config_test

import (
	"testing"

	"github.com/plus3/drift/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.NoError(t, func() error { cfg := config.Default(); return cfg.Validate() }())

	tests := []struct {
		name   string
		modify func(*config.Config)
	}{
		{"zero width", func(c *config.Config) { c.Window.Width = 0 }},
		{"negative height", func(c *config.Config) { c.Window.Height = -1 }},
		{"zero tps", func(c *config.Config) { c.Window.TPS = 0 }},
		{"unknown backend", func(c *config.Config) { c.Window.Backend = "vulkan" }},
		{"zero wrap bound", func(c *config.Config) { c.Sim.WrapBound = 0 }},
		{"zero normalization", func(c *config.Config) { c.Sim.ViewportNormalization = 0 }},
		{"negative radius", func(c *config.Config) { c.Sim.EntityRadius = -0.1 }},
		{"unknown log level", func(c *config.Config) { c.Log.Level = "loud" }},
		{"unknown log format", func(c *config.Config) { c.Log.Format = "xml" }},
		{"negative history", func(c *config.Config) { c.Debug.HistoryFrames = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestApplyPreset(t *testing.T) {
	t.Run("static", func(t *testing.T) {
		cfg := config.Default()
		require.NoError(t, config.ApplyPreset(&cfg, config.PresetStatic))
		assert.Equal(t, 0.0, cfg.Sim.Speed)
		assert.Equal(t, 0.0, cfg.Sim.RotationSpeed)
	})

	t.Run("drift", func(t *testing.T) {
		cfg := config.Default()
		require.NoError(t, config.ApplyPreset(&cfg, config.PresetDrift))
		assert.Equal(t, 1.0, cfg.Sim.Speed)
		assert.Equal(t, 1.2, cfg.Sim.WrapBound)
	})

	t.Run("pilot matches defaults", func(t *testing.T) {
		cfg := config.Default()
		require.NoError(t, config.ApplyPreset(&cfg, config.PresetPilot))
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("empty name is a no-op", func(t *testing.T) {
		cfg := config.Default()
		require.NoError(t, config.ApplyPreset(&cfg, ""))
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := config.Default()
		assert.ErrorIs(t, config.ApplyPreset(&cfg, "turbo"), config.ErrUnknownPreset)
	})

	assert.Equal(t, []config.Preset{config.PresetDrift, config.PresetPilot, config.PresetStatic}, config.Presets())
}
