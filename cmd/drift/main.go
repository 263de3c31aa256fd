// drift is a minimal 2D game: coloured squares steered by a controller axis
// across a wrapping playfield.
//
// Usage:
//
//	drift play               - Open the game window
//	drift replay <script>    - Run an input script headless and print a report
//	drift simulate           - Run headless in real time and print a report
//	drift config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>   - Config file (default: ~/.drift/drift.yaml, then ./configs/drift.yaml)
//	--preset <name>   - Motion preset: static, drift, pilot
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagPreset string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "drift",
	Short: "drift - steer squares around a wrapping playfield",
	Long: `drift opens a window and draws one or more squares that move forward
continuously and turn with the first analog stick of the first gamepad.
Squares leaving one edge of the playfield re-enter from the opposite edge.

Examples:
  drift play
  drift play --preset static
  drift play --config ./my-drift.yaml --watch --debug
  drift replay scripts/turn.yaml
  drift simulate --duration 5s --steer 0.5
  drift config --preset drift`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Motion preset: static, drift, pilot")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
