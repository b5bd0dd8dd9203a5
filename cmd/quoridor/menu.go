package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-quoridor/internal/config"
	"github.com/vovakirdan/tui-quoridor/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant and preset interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a game.
After a game ends, you return to the menu.

Examples:
  quoridor menu
  quoridor menu --config ./my-quoridor.yaml`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(settings, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config
		if result.Quit {
			return nil
		}

		chosen := settings
		chosen.Players.Layout = append([]config.PawnLayout(nil), settings.Players.Layout...)
		if result.Preset != "" {
			config.ApplyPreset(&chosen, result.Preset)
		}
		if err := play(result.GameID, chosen, cfg); err != nil {
			return err
		}
	}
}
