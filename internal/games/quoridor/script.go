package quoridor

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-quoridor/internal/config"
	"github.com/vovakirdan/tui-quoridor/internal/games/quoridor/core"
)

// ErrExpectationFailed is returned by Script.Run when a step's outcome
// differs from its expectation.
var ErrExpectationFailed = errors.New("script expectation failed")

// Script operations.
const (
	OpMove         = "move"
	OpMoveAt       = "move-at"
	OpStartMove    = "start-move"
	OpCancelMove   = "cancel-move"
	OpStartWall    = "start-wall"
	OpWall         = "wall"
	OpCompleteWall = "complete-wall"
	OpEndTurn      = "end-turn"
	OpResize       = "resize"
	OpReset        = "reset"
	OpDebug        = "debug"
)

// outcomeOK is the outcome of a step that was accepted.
const outcomeOK = "ok"

// Script is a recorded game: a setup and a list of commands to replay.
type Script struct {
	Name   string                `yaml:"name"`
	Config config.QuoridorConfig `yaml:"config"`
	Steps  []Step                `yaml:"steps"`
}

// Step is a single scripted command. Which fields matter depends on Op.
type Step struct {
	Op          string        `yaml:"op"`
	Pawn        int           `yaml:"pawn,omitempty"`
	Player      *int          `yaml:"player,omitempty"` // Wall placer override, debug only
	From        *config.Point `yaml:"from,omitempty"`
	To          *config.Point `yaml:"to,omitempty"`
	Orientation string        `yaml:"orientation,omitempty"`
	X           int           `yaml:"x,omitempty"`
	Y           int           `yaml:"y,omitempty"`
	Success     bool          `yaml:"success,omitempty"`
	Size        int           `yaml:"size,omitempty"`
	On          bool          `yaml:"on,omitempty"`
	// Expect is "ok" (or empty) for an accepted command, otherwise the
	// error code the command must be rejected with.
	Expect string `yaml:"expect,omitempty"`
}

// StepOutcome records what happened to one step.
type StepOutcome struct {
	Index   int    `yaml:"index"`
	Op      string `yaml:"op"`
	Outcome string `yaml:"outcome"`
	Error   string `yaml:"error,omitempty"`
}

// Report is the result of running a script.
type Report struct {
	Name     string        `yaml:"name"`
	Steps    []StepOutcome `yaml:"steps"`
	Final    Snapshot      `yaml:"final"`
	Executed int           `yaml:"executed"`
	// Controller is the game after the last executed step.
	Controller *Controller `yaml:"-"`
}

// ParseScript decodes a script. Config fields left out keep their defaults.
func ParseScript(data []byte) (*Script, error) {
	s := &Script{Config: config.DefaultQuoridorConfig()}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if err := s.Config.Validate(); err != nil {
		return nil, fmt.Errorf("script config: %w", err)
	}
	for i, st := range s.Steps {
		if err := st.check(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}
	return s, nil
}

// LoadScript reads and decodes a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	return ParseScript(data)
}

func (st Step) check() error {
	switch st.Op {
	case OpMove:
		if st.To == nil {
			return fmt.Errorf("%s needs to", st.Op)
		}
	case OpMoveAt:
		if st.From == nil || st.To == nil {
			return fmt.Errorf("%s needs from and to", st.Op)
		}
	case OpWall:
		if _, ok := core.ParseOrientation(st.Orientation); !ok {
			return fmt.Errorf("unknown orientation %q", st.Orientation)
		}
	case OpStartMove, OpCancelMove, OpStartWall, OpCompleteWall,
		OpEndTurn, OpResize, OpReset, OpDebug:
	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}
	return nil
}

// expected normalizes Expect to "ok" or an error code.
func (st Step) expected() string {
	e := strings.ToUpper(strings.TrimSpace(st.Expect))
	e = strings.ReplaceAll(e, "-", "_")
	if e == "" || e == "OK" {
		return outcomeOK
	}
	return e
}

// Run replays the script on a fresh controller. It stops at the first
// step whose outcome does not match its expectation and returns the
// report so far together with ErrExpectationFailed.
func (s *Script) Run(opts ...Option) (*Report, error) {
	cfg, err := ConfigFromSettings(s.Config)
	if err != nil {
		return nil, err
	}
	c, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}

	report := &Report{Name: s.Name, Controller: c}
	for i, st := range s.Steps {
		stepErr := apply(c, st)
		out := StepOutcome{Index: i, Op: st.Op, Outcome: outcomeOK}
		if stepErr != nil {
			out.Outcome = string(core.CodeOf(stepErr))
			out.Error = stepErr.Error()
		}
		report.Steps = append(report.Steps, out)
		report.Executed++

		if want := st.expected(); want != out.Outcome {
			report.Final = c.Snapshot()
			return report, fmt.Errorf("%w: step %d (%s): want %s, got %s",
				ErrExpectationFailed, i, st.Op, want, out.Outcome)
		}
	}
	report.Final = c.Snapshot()
	return report, nil
}

func apply(c *Controller, st Step) error {
	switch st.Op {
	case OpMove:
		return c.TryMovePawn(st.Pawn, core.C(st.To.X, st.To.Y))
	case OpMoveAt:
		return c.TryMovePawnAt(core.C(st.From.X, st.From.Y), core.C(st.To.X, st.To.Y))
	case OpStartMove:
		return c.TryStartMove(st.Pawn)
	case OpCancelMove:
		return c.CancelMove()
	case OpStartWall:
		if st.Player != nil {
			return c.TryStartWallPlacementAs(*st.Player)
		}
		return c.TryStartWallPlacement()
	case OpWall:
		o, _ := core.ParseOrientation(st.Orientation)
		if st.Player == nil || c.State().Kind == core.StatePlacingWall {
			return c.PlaceWall(o, st.X, st.Y)
		}
		if err := c.TryStartWallPlacementAs(*st.Player); err != nil {
			return err
		}
		if err := c.PlaceWall(o, st.X, st.Y); err != nil {
			_ = c.CompleteWallPlacement(false)
			return err
		}
		return nil
	case OpCompleteWall:
		return c.CompleteWallPlacement(st.Success)
	case OpEndTurn:
		return c.EndTurn()
	case OpResize:
		return c.UpdateGridConfiguration(st.Size)
	case OpReset:
		c.Reset()
		return nil
	case OpDebug:
		c.SetDebug(st.On)
		return nil
	}
	return fmt.Errorf("unknown op %q", st.Op)
}
