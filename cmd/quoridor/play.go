package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-quoridor/internal/config"
	"github.com/vovakirdan/tui-quoridor/internal/core"
	"github.com/vovakirdan/tui-quoridor/internal/platform/tui"
	"github.com/vovakirdan/tui-quoridor/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start a game of the given variant (default: quoridor).

Controls:
  Arrows/hjkl   - Move the cursor
  Enter/Space   - Select a pawn, move it, or place a wall
  Tab           - Wall mode on/off
  R             - Rotate the wall
  Esc           - Cancel the current action
  P             - Pass the turn
  Ctrl+D        - Debug: any pawn may act
  N             - New game
  ?             - Full help
  Q/Ctrl+C      - Quit

Examples:
  quoridor play
  quoridor play quoridor4 --walls 3
  quoridor play --size 7 --config ./my-quoridor.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// runtimeConfig sizes the runtime config to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "quoridor"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'quoridor list' to see them", gameID)
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	return play(gameID, settings, runtimeConfig())
}

// play runs one game in the terminal.
func play(gameID string, settings config.QuoridorConfig, cfg core.RuntimeConfig) error {
	logger, closer, err := newLogger(settings, io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	game, err := registry.Create(gameID, settings, logger)
	if err != nil {
		return err
	}
	logger.Info("game started", "variant", gameID, "size", settings.Board.Size, "players", settings.PlayerCount())

	if err := tui.Run(game, cfg); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	logger.Info("game closed", "state", game.State().Status)
	return nil
}
