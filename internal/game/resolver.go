package game

// beats maps a move to the move it defeats.
var beats = map[Move]Move{
	Rock:     Scissors,
	Paper:    Rock,
	Scissors: Paper,
}

// Resolve decides the outcome of a round where player 1 plays a and
// player 2 plays b. Any distinct pair that is not a winning pair for
// player 1 goes to player 2, unrecognized moves included; callers
// validate input with ParseMove or Move.Valid first.
func Resolve(a, b Move) Outcome {
	if a == b {
		return OutcomeTie
	}
	if beats[a] == b {
		return OutcomePlayer1
	}
	return OutcomePlayer2
}
