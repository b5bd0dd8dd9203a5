package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-quoridor/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a game would start with, after the config
file, the preset and any flags are applied. With --defaults the embedded
default file is printed instead, ready to copy to ~/.quoridor/configs/.`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded default config file")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.GetDefaultYAML())
		return err
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	data, err := config.Marshal(settings)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
