package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bobby-glide/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the config file and flags are applied.

Search order: --config, ~/.bobby/config.yaml, ./configs/bobby.yaml, built-in default.

Examples:
  bobby config
  bobby config --default > ~/.bobby/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in default file instead")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigDefault {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	if path := config.UserConfigPath(); path != "" {
		fmt.Printf("# user config: %s\n", path)
	}
	_, err = os.Stdout.Write(data)
	return err
}
