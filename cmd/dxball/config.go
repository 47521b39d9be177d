package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dxball/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration dxball would run with, after the config file
and command line flags are applied. The output is valid YAML and can be
saved as ~/.dxball/config.yaml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}
