package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/plus3/drift/loop"
	"github.com/plus3/drift/sim"
)

var (
	flagDuration time.Duration
	flagSteer    float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the world headless in real time and print a report",
	Long: `Run the configured world without a window at window.tps updates per
second for the given duration, holding the steering axis at a constant value.
A markdown report of the final state is written to stdout.

Examples:
  drift simulate --duration 5s
  drift simulate --duration 10s --steer 0.5 --preset drift`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().DurationVar(&flagDuration, "duration", 5*time.Second, "How long to run")
	simulateCmd.Flags().Float64Var(&flagSteer, "steer", 0, "Constant value of the steering axis")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagDuration <= 0 {
		return fmt.Errorf("--duration must be positive, got %v", flagDuration)
	}

	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	logger, runID, err := newLogger(os.Stderr, cfg.Log)
	if err != nil {
		return err
	}
	logger.Info("simulating", "config", source, "duration", flagDuration, "tps", cfg.Window.TPS, "steer", flagSteer)

	world := sim.NewWorld(cfg.Sim, cfg.Entities...)
	world.SetAxis(cfg.Sim.Steering.Device, cfg.Sim.Steering.Axis, flagSteer)

	scheduler := loop.NewScheduler(world)
	scheduler.Register(loop.SimulationSystem{})

	progress := logger.With("component", "simulate")
	tps := uint64(cfg.Window.TPS)
	scheduler.Register(loop.SystemFunc(func(frame *loop.Frame) {
		if frame.Index%tps != 0 || frame.World.Len() == 0 {
			return
		}
		e := frame.World.Entity(0)
		progress.Debug("tick", "frame", frame.Index, "x", e.Position.X, "y", e.Position.Y, "rotation", e.Rotation)
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, flagDuration)
	defer cancel()

	start := time.Now()
	scheduler.Run(ctx, time.Second/time.Duration(cfg.Window.TPS))
	wall := time.Since(start)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render("drift simulate"))
	fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("%v · %s", flagDuration, runID)))

	driver := loop.NewDriver(scheduler, logger.With("component", "driver"))
	report := loop.NewReport(runID, "simulate", driver, wall, 0)
	return report.Generate(out)
}
