package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/plus3/drift/loop"
	"github.com/plus3/drift/sim"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Run an input script headless and print a report",
	Long: `Replay a YAML input script against a fresh world without opening a
window. Render events are recorded by an in-memory surface. A markdown report of
the final state is written to stdout.

Examples:
  drift replay scripts/turn.yaml
  drift replay scripts/turn.yaml --preset drift`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	logger, runID, err := newLogger(os.Stderr, cfg.Log)
	if err != nil {
		return err
	}

	script, err := loop.LoadScript(path)
	if err != nil {
		return err
	}
	logger.Info("replaying", "script", path, "config", source, "updates", script.UpdateCount())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	world := sim.NewWorld(cfg.Sim, cfg.Entities...)
	scheduler := loop.NewScheduler(world)
	scheduler.Register(loop.SimulationSystem{})
	driver := loop.NewDriver(scheduler, logger.With("component", "driver"))

	recorder := &sim.Recorder{}
	start := time.Now()
	if err := driver.Pump(ctx, script.Source(), recorder); err != nil {
		return err
	}
	wall := time.Since(start)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render("drift replay"))
	fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("%s · %s", path, runID)))

	report := loop.NewReport(runID, path, driver, wall, len(recorder.Calls))
	return report.Generate(out)
}
