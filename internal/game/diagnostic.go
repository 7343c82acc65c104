package game

import (
	"errors"
	"fmt"
)

var ErrUnknownMove = errors.New("unknown move")

// DiagnosticKind classifies a recoverable input problem.
type DiagnosticKind string

const (
	DiagInvalidMove DiagnosticKind = "invalid_move"
	DiagInvalidSide DiagnosticKind = "invalid_side"
)

// Diagnostic reports bad input that was tolerated. Scoring continues,
// the offending value contributes nothing.
type Diagnostic struct {
	Kind  DiagnosticKind `json:"kind"`
	Value string         `json:"value"`
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case DiagInvalidMove:
		return fmt.Sprintf("invalid move %q", d.Value)
	case DiagInvalidSide:
		return fmt.Sprintf("invalid winner %q", d.Value)
	default:
		return fmt.Sprintf("%s %q", d.Kind, d.Value)
	}
}
