package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plus3/drift/config"
	"github.com/plus3/drift/debugui"
	"github.com/plus3/drift/loop"
	"github.com/plus3/drift/platform"
	"github.com/plus3/drift/sim"
)

var (
	flagWatch bool
	flagDebug bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window and run until it is closed.

Controls:
  Gamepad 0, axis 0 - Turn (configurable with sim.steering)
  Esc               - Quit (when window.exit_on_escape is set)

Examples:
  drift play
  drift play --preset drift
  drift play --config ./my-drift.yaml --watch
  drift play --debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the sim section when the config file changes")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show the Dear ImGui debug overlay")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	logger, _, err := newLogger(os.Stderr, cfg.Log)
	if err != nil {
		return err
	}
	logger.Info("loaded config", "source", source, "preset", flagPreset, "entities", len(cfg.Entities))

	world := sim.NewWorld(cfg.Sim, cfg.Entities...)
	scheduler := loop.NewScheduler(world)
	scheduler.Register(loop.SimulationSystem{})

	var opts []platform.Option

	if flagDebug || cfg.Debug.Overlay {
		backend := debugui.NewBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
		scheduler.Register(debugui.Default(scheduler, cfg.Debug.HistoryFrames))
		opts = append(opts, platform.WithOverlay(backend))
	}

	if flagWatch {
		if source == config.EmbeddedSource {
			return fmt.Errorf("--watch needs a config file, none was found")
		}
		watcher, err := config.NewWatcher(source, logger.With("component", "watcher"), config.WithPreset(config.Preset(flagPreset)))
		if err != nil {
			return err
		}
		defer watcher.Close()
		go func() {
			for err := range watcher.Errors {
				logger.Warn("config reload failed", "error", err)
			}
		}()
		opts = append(opts, platform.WithReloads(watcher.Updates))
	}

	driver := loop.NewDriver(scheduler, logger.With("component", "driver"))
	game := platform.NewGame(driver, cfg.Window, logger.With("component", "platform"), opts...)

	if err := platform.Run(game); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	stats := scheduler.GetStats()
	logger.Info("window closed", "frames", stats.Frames, "simulated", stats.SimulatedTime)
	return nil
}
