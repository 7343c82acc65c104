package match

import (
	"errors"
	"testing"

	"rps_match/internal/game"
)

func TestParseMoves(t *testing.T) {
	moves, err := ParseMoves("rock, Paper ,scissors")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	want := []game.Move{game.Rock, game.Paper, game.Scissors}
	if len(moves) != len(want) {
		t.Fatalf("got %v; want %v", moves, want)
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Fatalf("move %d = %s; want %s", i, moves[i], want[i])
		}
	}

	if moves, err := ParseMoves("  "); err != nil || len(moves) != 0 {
		t.Fatalf("ParseMoves(blank) = %v, %v; want empty", moves, err)
	}

	if _, err := ParseMoves("rock,,paper"); !errors.Is(err, game.ErrUnknownMove) {
		t.Fatalf("ParseMoves with empty item error = %v; want unknown move", err)
	}
}

func TestParseSequence(t *testing.T) {
	seq, err := ParseSequence([]string{"rock", "paper"}, []string{"scissors", "ROCK"})
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}
	if seq.Rounds() != 2 || seq.Player2[1] != game.Rock {
		t.Fatalf("unexpected sequence %+v", seq)
	}

	if _, err := ParseSequence([]string{"rock"}, []string{"spock"}); !errors.Is(err, game.ErrUnknownMove) {
		t.Fatalf("error = %v; want unknown move", err)
	}
	if _, err := ParseSequence([]string{"rock"}, nil); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("error = %v; want length mismatch", err)
	}
}

func TestDefaultSequenceIsValid(t *testing.T) {
	seq := DefaultSequence()
	if err := seq.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if seq.Rounds() != 5 {
		t.Fatalf("rounds = %d; want 5", seq.Rounds())
	}
}

func TestSplitMovesKeepsUnknownNames(t *testing.T) {
	moves := SplitMoves(" Rock,lizard ")
	if len(moves) != 2 || moves[0] != game.Rock || moves[1] != game.Move("lizard") {
		t.Fatalf("SplitMoves = %v; want [rock lizard]", moves)
	}
	if moves := SplitMoves(""); len(moves) != 0 {
		t.Fatalf("SplitMoves(\"\") = %v; want empty", moves)
	}
}
