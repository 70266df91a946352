package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shipshoot/internal/config"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML.

Save it to ~/.shipshoot/configs/shipshoot.yaml (or ./configs/shipshoot.yaml)
and edit the keys you want to change; missing keys keep their defaults.

Examples:
  shipshoot config > ~/.shipshoot/configs/shipshoot.yaml
  shipshoot config --check ./my-shipshoot.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate a config file instead of printing the default")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagCheck == "" {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	if _, err := config.LoadShipShoot(flagCheck); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: ok\n", flagCheck)
}
