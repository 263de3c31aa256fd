package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/plus3/drift/config"
)

// newLogger builds the root logger from cfg. Every logger it returns carries
// a fresh run id.
func newLogger(w io.Writer, cfg config.Log) (*log.Logger, string, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, "", fmt.Errorf("log level: %w", err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: cfg.Timestamps,
		Prefix:          "drift",
		Level:           level,
	})

	switch cfg.Format {
	case "json":
		logger.SetFormatter(log.JSONFormatter)
	case "logfmt":
		logger.SetFormatter(log.LogfmtFormatter)
	default:
		logger.SetFormatter(log.TextFormatter)
	}

	runID := uuid.NewString()
	return logger.With("run", runID), runID, nil
}

// loadConfig resolves the effective configuration from the global flags.
func loadConfig() (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, source, err
	}
	if err := config.ApplyPreset(&cfg, config.Preset(flagPreset)); err != nil {
		return cfg, source, err
	}
	return cfg, source, nil
}
