package match

import (
	"errors"
	"fmt"
	"strings"

	"rps_match/internal/game"
)

var (
	ErrLengthMismatch = errors.New("players have a different number of moves")
	ErrTooManyRounds  = errors.New("too many rounds")
)

// Sequence holds the moves of both players, one pair per round.
type Sequence struct {
	Player1 []game.Move `json:"player1"`
	Player2 []game.Move `json:"player2"`
}

// DefaultSequence is the predefined five round match.
func DefaultSequence() Sequence {
	return Sequence{
		Player1: []game.Move{game.Scissors, game.Paper, game.Scissors, game.Rock, game.Rock},
		Player2: []game.Move{game.Rock, game.Rock, game.Paper, game.Scissors, game.Paper},
	}
}

func (s Sequence) Rounds() int {
	return len(s.Player1)
}

// Validate checks both sides have the same length and only recognized moves.
func (s Sequence) Validate() error {
	if err := s.validateLengths(); err != nil {
		return err
	}
	for i := range s.Player1 {
		if !s.Player1[i].Valid() {
			return fmt.Errorf("round %d, player1: %w: %q", i+1, game.ErrUnknownMove, s.Player1[i])
		}
		if !s.Player2[i].Valid() {
			return fmt.Errorf("round %d, player2: %w: %q", i+1, game.ErrUnknownMove, s.Player2[i])
		}
	}
	return nil
}

func (s Sequence) validateLengths() error {
	if len(s.Player1) != len(s.Player2) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(s.Player1), len(s.Player2))
	}
	return nil
}

// SplitMoves is ParseMoves without the name check: items are trimmed and
// lowercased, unknown names are kept as they are.
func SplitMoves(list string) []game.Move {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	moves := make([]game.Move, 0, len(parts))
	for _, p := range parts {
		moves = append(moves, game.Move(strings.ToLower(strings.TrimSpace(p))))
	}
	return moves
}

// ParseMoves splits a comma separated list such as "rock, paper,scissors".
// An empty string is an empty list.
func ParseMoves(list string) ([]game.Move, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	parts := strings.Split(list, ",")
	moves := make([]game.Move, 0, len(parts))
	for i, p := range parts {
		m, err := game.ParseMove(p)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// ParseSequence builds a validated sequence from two move name lists.
func ParseSequence(player1, player2 []string) (Sequence, error) {
	var seq Sequence
	for i, s := range player1 {
		m, err := game.ParseMove(s)
		if err != nil {
			return Sequence{}, fmt.Errorf("round %d, player1: %w", i+1, err)
		}
		seq.Player1 = append(seq.Player1, m)
	}
	for i, s := range player2 {
		m, err := game.ParseMove(s)
		if err != nil {
			return Sequence{}, fmt.Errorf("round %d, player2: %w", i+1, err)
		}
		seq.Player2 = append(seq.Player2, m)
	}
	if err := seq.Validate(); err != nil {
		return Sequence{}, err
	}
	return seq, nil
}
