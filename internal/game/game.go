package game

import (
	"fmt"
	"strings"
)

// Move - a hand played in one round
type Move string

const (
	Rock     Move = "rock"
	Paper    Move = "paper"
	Scissors Move = "scissors"
)

// Moves lists the recognized moves in point order.
var Moves = []Move{Rock, Paper, Scissors}

// Valid reports whether m is one of rock, paper or scissors.
func (m Move) Valid() bool {
	return m == Rock || m == Paper || m == Scissors
}

func (m Move) String() string {
	return string(m)
}

// ParseMove accepts a move name in any case, surrounding spaces ignored.
func ParseMove(s string) (Move, error) {
	m := Move(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMove, s)
	}
	return m, nil
}

// Side - one of the two match participants
type Side string

const (
	Player1 Side = "player1"
	Player2 Side = "player2"
)

// Label is the human readable name used in reports.
func (s Side) Label() string {
	switch s {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return string(s)
	}
}

// Outcome - result of a single round
type Outcome string

const (
	OutcomePlayer1 Outcome = "player1"
	OutcomePlayer2 Outcome = "player2"
	OutcomeTie     Outcome = "tie"
)

// Winner returns the winning side of a non-tied round.
func (o Outcome) Winner() (Side, bool) {
	switch o {
	case OutcomePlayer1:
		return Player1, true
	case OutcomePlayer2:
		return Player2, true
	default:
		return "", false
	}
}

// MatchResult - comparison of the final totals
type MatchResult string

const (
	ResultPlayer1Wins MatchResult = "player1_wins"
	ResultPlayer2Wins MatchResult = "player2_wins"
	ResultTie         MatchResult = "tie"
)

// Scores holds the running totals of both sides.
type Scores struct {
	Player1 int `json:"player1"`
	Player2 int `json:"player2"`
}
