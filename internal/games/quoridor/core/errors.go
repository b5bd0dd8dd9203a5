package core

import (
	"errors"
	"fmt"
)

// Code identifies the kind of a rule violation.
type Code string

const (
	CodeOutOfBounds       Code = "OUT_OF_BOUNDS"
	CodeOverlap           Code = "OVERLAP"
	CodeWouldCrossWall    Code = "WOULD_CROSS_WALL"
	CodeWouldBlockPath    Code = "WOULD_BLOCK_PATH"
	CodeInsufficientWalls Code = "INSUFFICIENT_WALLS"
	CodeNotYourTurn       Code = "NOT_YOUR_TURN"
	CodeWrongAction       Code = "WRONG_ACTION"
	CodeGameAlreadyOver   Code = "GAME_ALREADY_OVER"
	CodeNoPawnAtPosition  Code = "NO_PAWN_AT_POSITION"
	CodeInvalidMoveTarget Code = "INVALID_MOVE_TARGET"
	CodeInvalidConfig     Code = "INVALID_CONFIG"
)

// Sentinel errors, one per Code. A *RuleError matches the sentinel of its
// code under errors.Is.
var (
	ErrOutOfBounds       = errors.New("out of bounds")
	ErrOverlap           = errors.New("wall overlaps an existing wall")
	ErrWouldCrossWall    = errors.New("wall would cross an existing wall")
	ErrWouldBlockPath    = errors.New("wall would block a pawn's last path")
	ErrInsufficientWalls = errors.New("no walls remaining")
	ErrNotYourTurn       = errors.New("not your turn")
	ErrWrongAction       = errors.New("action not allowed now")
	ErrGameAlreadyOver   = errors.New("game already over")
	ErrNoPawnAtPosition  = errors.New("no pawn at position")
	ErrInvalidMoveTarget = errors.New("invalid move target")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

var sentinels = map[Code]error{
	CodeOutOfBounds:       ErrOutOfBounds,
	CodeOverlap:           ErrOverlap,
	CodeWouldCrossWall:    ErrWouldCrossWall,
	CodeWouldBlockPath:    ErrWouldBlockPath,
	CodeInsufficientWalls: ErrInsufficientWalls,
	CodeNotYourTurn:       ErrNotYourTurn,
	CodeWrongAction:       ErrWrongAction,
	CodeGameAlreadyOver:   ErrGameAlreadyOver,
	CodeNoPawnAtPosition:  ErrNoPawnAtPosition,
	CodeInvalidMoveTarget: ErrInvalidMoveTarget,
	CodeInvalidConfig:     ErrInvalidConfig,
}

// RuleError describes why a query or command was rejected.
type RuleError struct {
	Code    Code
	Message string
	// Pawn is the pawn the error refers to, or -1. WouldBlockPath names
	// the first pawn left without a path.
	Pawn int
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is reports whether target is the sentinel for this error's code.
func (e *RuleError) Is(target error) bool {
	return sentinels[e.Code] == target
}

// Unwrap returns the sentinel for this error's code.
func (e *RuleError) Unwrap() error {
	return sentinels[e.Code]
}

// NewError builds a RuleError with a formatted message that refers to no
// particular pawn.
func NewError(code Code, format string, args ...any) *RuleError {
	return &RuleError{Code: code, Message: fmt.Sprintf(format, args...), Pawn: -1}
}

// CodeOf extracts the rule code from err, or "" when err carries none.
func CodeOf(err error) Code {
	var re *RuleError
	if errors.As(err, &re) {
		return re.Code
	}
	for code, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return ""
}
