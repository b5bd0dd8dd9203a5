package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-quoridor/internal/games/quoridor"
)

var flagBoard bool

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Run a scripted game and print the final state",
	Long: `Replay a YAML script of commands against a fresh game. Each step may
state the outcome it expects ("ok" or an error code such as
WOULD_BLOCK_PATH); the replay stops at the first step that differs.

The report with the final snapshot is printed as YAML. Logs go to stderr.

Example script:
  name: opening
  config:
    board: {size: 5}
  steps:
    - op: move
      pawn: 0
      to: {x: 2, y: 1}
    - op: wall
      orientation: h
      x: 0
      y: 2
    - op: move
      pawn: 1
      to: {x: 2, y: 2}
      expect: not_your_turn`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagBoard, "board", true, "Also print the final board")
}

func runReplay(cmd *cobra.Command, args []string) error {
	script, err := quoridor.LoadScript(args[0])
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		script.Config.Logging.Level = flagLogLevel
	}
	logger, closer, err := newLogger(script.Config, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	report, runErr := script.Run(quoridor.WithLogger(logger))
	if report == nil {
		return runErr
	}

	out := cmd.OutOrStdout()
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if _, err := out.Write(data); err != nil {
		return err
	}
	if flagBoard {
		fmt.Fprintln(out)
		fmt.Fprintln(out, quoridor.RenderASCII(report.Controller))
	}

	if errors.Is(runErr, quoridor.ErrExpectationFailed) {
		logger.Error("replay diverged", "err", runErr)
	}
	return runErr
}
