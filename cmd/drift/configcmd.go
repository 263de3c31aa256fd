package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plus3/drift/config"
)

var flagListPresets bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration drift would run with, after applying the
config search order and any --preset, as YAML.

Examples:
  drift config
  drift config --preset static
  drift config --presets`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagListPresets, "presets", false, "List available presets instead")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if flagListPresets {
		for _, p := range config.Presets() {
			fmt.Fprintln(out, p)
		}
		return nil
	}

	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
