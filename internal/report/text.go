package report

import (
	"fmt"
	"io"
	"strings"

	"rps_match/internal/game"
	"rps_match/internal/match"
)

var separator = strings.Repeat("-", 30)

// WriteRound prints one round block.
func WriteRound(w io.Writer, r match.Round) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Round %d:\n", r.Number)
	fmt.Fprintf(&b, "%s plays: %s\n", game.Player1.Label(), r.Player1)
	fmt.Fprintf(&b, "%s plays: %s\n", game.Player2.Label(), r.Player2)

	if winner, ok := r.Outcome.Winner(); ok {
		fmt.Fprintf(&b, "%s wins this round!\n", winner.Label())
		for _, d := range r.Diagnostics {
			fmt.Fprintf(&b, "Warning: %s\n", d)
		}
		fmt.Fprintf(&b, "Scores: %s\n", formatScores(r.Scores))
	} else {
		b.WriteString("It's a tie!\n")
	}
	b.WriteString(separator + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteFinal prints the final scores and the match winner.
func WriteFinal(w io.Writer, rep *match.Report) error {
	_, err := fmt.Fprintf(w, "Final Scores: %s\n%s\n", formatScores(rep.Scores), ResultLine(rep.Result))
	return err
}

// Write prints a complete report.
func Write(w io.Writer, rep *match.Report) error {
	for _, r := range rep.Rounds {
		if err := WriteRound(w, r); err != nil {
			return err
		}
	}
	return WriteFinal(w, rep)
}

func ResultLine(res game.MatchResult) string {
	switch res {
	case game.ResultPlayer1Wins:
		return game.Player1.Label() + " wins!"
	case game.ResultPlayer2Wins:
		return game.Player2.Label() + " wins!"
	default:
		return "It's a tie!"
	}
}

func formatScores(s game.Scores) string {
	return fmt.Sprintf("%s: %d, %s: %d", game.Player1.Label(), s.Player1, game.Player2.Label(), s.Player2)
}
