package ws

import "rps_match/internal/game"

// client → server
type PlayPayload struct {
	Player1 []string `json:"player1"`
	Player2 []string `json:"player2"`
}

// server → client
type ResultPayload struct {
	Rounds int              `json:"rounds"`
	Scores game.Scores      `json:"scores"`
	Result game.MatchResult `json:"result"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
