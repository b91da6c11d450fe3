package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/rocket-run/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the game config that 'rocket play' would use, after the search
order and the --difficulty preset are applied. The output is valid YAML
and can be saved as a starting point for a custom config.

Search order:
  1. --config <path>
  2. ~/.rocket/configs/rocket.yaml
  3. ./configs/rocket.yaml
  4. Built-in defaults

Examples:
  rocket config > ~/.rocket/configs/rocket.yaml
  rocket config --difficulty hard
  rocket config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults and ignore config files")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.GetDefaultYAML("rocket"))
		return err
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
