package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connect4/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after applying the config file and
CONNECT4_* environment overrides, as YAML.

The output can be saved to ~/.connect4/config.yaml and edited.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		data, err := config.Marshal(appConfig)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}
