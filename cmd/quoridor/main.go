// quoridor is a terminal Quoridor game with scripted replays.
//
// Usage:
//
//	quoridor play [variant]    - Play a game (default: quoridor)
//	quoridor menu              - Pick a variant and preset interactively
//	quoridor list              - List variants and presets
//	quoridor replay <script>   - Run a scripted game and print the result
//	quoridor config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--preset <name>     - classic, four or small
//	--size/--players/--walls/--debug - Override single settings
//	--log-level <level> - debug, info, warn or error
//	--fps <rate>        - Input tick rate (default: 30)
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-quoridor/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagPreset   string
	flagSize     int
	flagPlayers  int
	flagWalls    int
	flagDebug    bool
	flagLogLevel string
	flagFPS      int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quoridor",
	Short: "Quoridor - race your pawn across the board, walls in the way",
	Long: `Quoridor in your terminal. Each player races a pawn to the far side
of the board and may spend a turn placing a wall instead of moving.
A wall may never cut a pawn off from its goal.

Available commands:
  play     - Play a game directly
  menu     - Interactive setup picker
  list     - Show variants and presets
  replay   - Run a scripted game
  config   - Print the effective configuration

Examples:
  quoridor play
  quoridor play quoridor4
  quoridor play --preset small
  quoridor replay game.yaml --log-level debug`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Preset: classic, four, small")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Board size (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagPlayers, "players", 0, "Player count, 2 or 4 (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagWalls, "walls", 0, "Walls per player (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Let any player act on any turn")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Input tick rate (ticks per second)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings loads the config file and applies the preset and the
// flags that were set explicitly, in that order.
func loadSettings(cmd *cobra.Command) (config.QuoridorConfig, error) {
	settings, err := config.LoadQuoridor(flagConfig)
	if err != nil {
		return settings, err
	}
	if flagPreset != "" {
		preset, err := config.ParsePreset(flagPreset)
		if err != nil {
			return settings, err
		}
		config.ApplyPreset(&settings, preset)
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		settings.Board.Size = flagSize
	}
	if flags.Changed("players") {
		settings.Players.Count = flagPlayers
		settings.Players.Layout = nil
	}
	if flags.Changed("walls") {
		settings.Players.WallsEach = flagWalls
	}
	if flags.Changed("debug") {
		settings.Rules.Debug = flagDebug
	}
	if flags.Changed("log-level") {
		settings.Logging.Level = flagLogLevel
	}
	return settings, settings.Validate()
}

// newLogger builds the game logger. Interactive play owns the terminal,
// so logs go to the configured file or nowhere.
func newLogger(settings config.QuoridorConfig, fallback io.Writer) (*log.Logger, io.Closer, error) {
	w := fallback
	var closer io.Closer = nopCloser{}
	if settings.Logging.File != "" {
		f, err := os.OpenFile(settings.Logging.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "quoridor",
	})
	if settings.Logging.Level != "" {
		level, err := log.ParseLevel(strings.ToLower(settings.Logging.Level))
		if err != nil {
			closer.Close()
			return nil, nil, err
		}
		logger.SetLevel(level)
	}
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
