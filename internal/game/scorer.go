package game

// pointValues - points earned by the winning move
var pointValues = map[Move]int{
	Rock:     1,
	Paper:    2,
	Scissors: 3,
}

// PointValue returns the points a round won with m is worth.
// Unrecognized moves are worth 0 and come back with a diagnostic.
func PointValue(m Move) (int, *Diagnostic) {
	if p, ok := pointValues[m]; ok {
		return p, nil
	}
	return 0, &Diagnostic{Kind: DiagInvalidMove, Value: string(m)}
}

// Scorer accumulates the totals of one match. The zero value is a fresh
// scorer with both totals at zero. Not safe for concurrent use; a match
// has a single owner.
type Scorer struct {
	scores Scores
}

func NewScorer() *Scorer {
	return &Scorer{}
}

// RecordRoundWin credits side with the point value of move.
// An unknown side leaves the totals untouched. Every tolerated problem is
// returned as a diagnostic, in the order it was found.
func (s *Scorer) RecordRoundWin(side Side, move Move) []Diagnostic {
	var diags []Diagnostic

	points, d := PointValue(move)
	if d != nil {
		diags = append(diags, *d)
	}

	switch side {
	case Player1:
		s.scores.Player1 += points
	case Player2:
		s.scores.Player2 += points
	default:
		diags = append(diags, Diagnostic{Kind: DiagInvalidSide, Value: string(side)})
	}

	return diags
}

func (s *Scorer) CurrentScores() Scores {
	return s.scores
}

// MatchResult compares the current totals. Equal totals are a tie.
func (s *Scorer) MatchResult() MatchResult {
	switch {
	case s.scores.Player1 > s.scores.Player2:
		return ResultPlayer1Wins
	case s.scores.Player2 > s.scores.Player1:
		return ResultPlayer2Wins
	default:
		return ResultTie
	}
}
