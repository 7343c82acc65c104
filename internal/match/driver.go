package match

import (
	"fmt"
	"log/slog"

	"rps_match/internal/game"
	"rps_match/internal/metrics"
)

// Round is the record of one resolved round.
type Round struct {
	Number      int               `json:"number"`
	Player1     game.Move         `json:"player1"`
	Player2     game.Move         `json:"player2"`
	Outcome     game.Outcome      `json:"outcome"`
	Points      int               `json:"points"`
	Scores      game.Scores       `json:"scores"`
	Diagnostics []game.Diagnostic `json:"diagnostics,omitempty"`
}

// Report is the outcome of a whole match.
type Report struct {
	Rounds []Round          `json:"rounds"`
	Scores game.Scores      `json:"scores"`
	Result game.MatchResult `json:"result"`
}

// RoundFunc is called after every round, in order.
type RoundFunc func(Round) error

// Driver plays matches. It keeps no state between matches; each Play owns
// its own scorer.
type Driver struct {
	log       *slog.Logger
	maxRounds int
	lenient   bool
}

// NewDriver creates a driver. maxRounds <= 0 means no limit.
func NewDriver(log *slog.Logger, maxRounds int) *Driver {
	if log == nil {
		log = slog.Default()
	}
	return &Driver{log: log.With("component", "match"), maxRounds: maxRounds}
}

func (d *Driver) MaxRounds() int {
	return d.maxRounds
}

// Lenient returns a copy of d that plays unrecognized moves instead of
// rejecting the sequence. Such a round resolves as Resolve decides, scores
// nothing for the bad move and carries an invalid_move diagnostic.
func (d *Driver) Lenient() *Driver {
	cp := *d
	cp.lenient = true
	return &cp
}

// Play validates seq and plays it round by round. onRound may be nil; an
// error from it stops the match and is returned.
func (d *Driver) Play(seq Sequence, onRound RoundFunc) (*Report, error) {
	check := seq.Validate
	if d.lenient {
		check = seq.validateLengths
	}
	if err := check(); err != nil {
		return nil, err
	}
	if d.maxRounds > 0 && seq.Rounds() > d.maxRounds {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyRounds, seq.Rounds(), d.maxRounds)
	}

	scorer := game.NewScorer()
	report := &Report{Rounds: make([]Round, 0, seq.Rounds())}

	for i := range seq.Player1 {
		r := d.playRound(scorer, i+1, seq.Player1[i], seq.Player2[i])
		report.Rounds = append(report.Rounds, r)

		if onRound != nil {
			if err := onRound(r); err != nil {
				return nil, fmt.Errorf("round %d: %w", r.Number, err)
			}
		}
	}

	report.Scores = scorer.CurrentScores()
	report.Result = scorer.MatchResult()
	metrics.MatchesTotal.WithLabelValues(string(report.Result)).Inc()

	d.log.Info("match finished",
		"rounds", len(report.Rounds),
		"player1", report.Scores.Player1,
		"player2", report.Scores.Player2,
		"result", report.Result,
	)
	return report, nil
}

func (d *Driver) playRound(scorer *game.Scorer, n int, m1, m2 game.Move) Round {
	r := Round{
		Number:  n,
		Player1: m1,
		Player2: m2,
		Outcome: game.Resolve(m1, m2),
	}

	if winner, ok := r.Outcome.Winner(); ok {
		move := m1
		if winner == game.Player2 {
			move = m2
		}
		before := scorer.CurrentScores()
		r.Diagnostics = scorer.RecordRoundWin(winner, move)
		after := scorer.CurrentScores()
		r.Points = (after.Player1 - before.Player1) + (after.Player2 - before.Player2)
	}
	r.Scores = scorer.CurrentScores()

	for _, diag := range r.Diagnostics {
		metrics.DiagnosticsTotal.WithLabelValues(string(diag.Kind)).Inc()
		d.log.Warn("scoring diagnostic", "round", n, "kind", diag.Kind, "value", diag.Value)
	}
	metrics.RoundsTotal.WithLabelValues(string(r.Outcome)).Inc()

	d.log.Debug("round resolved",
		"round", n,
		"player1_move", m1,
		"player2_move", m2,
		"outcome", r.Outcome,
		"points", r.Points,
	)
	return r
}
