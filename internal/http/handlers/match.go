package handlers

import (
	"net/http"

	"rps_match/internal/game"
	"rps_match/internal/match"

	"github.com/gin-gonic/gin"
)

// MatchRequest represents a match to play, one move per round per player
type MatchRequest struct {
	Player1 []string `json:"player1"`
	Player2 []string `json:"player2"`
}

// MoveInfo describes a move and what winning with it is worth
type MoveInfo struct {
	Move   game.Move `json:"move"`
	Beats  game.Move `json:"beats"`
	Points int       `json:"points"`
}

// ResolveResponse is the outcome of a single round
type ResolveResponse struct {
	Player1 game.Move    `json:"player1"`
	Player2 game.Move    `json:"player2"`
	Outcome game.Outcome `json:"outcome"`
	Points  int          `json:"points"`
}

// Moves lists the recognized moves
func (h *Handler) Moves(c *gin.Context) {
	moves := make([]MoveInfo, 0, len(game.Moves))
	for _, m := range game.Moves {
		points, _ := game.PointValue(m)
		info := MoveInfo{Move: m, Points: points}
		for _, other := range game.Moves {
			if game.Resolve(m, other) == game.OutcomePlayer1 {
				info.Beats = other
			}
		}
		moves = append(moves, info)
	}

	c.JSON(http.StatusOK, gin.H{
		"moves":      moves,
		"max_rounds": h.Driver.MaxRounds(),
	})
}

// Resolve decides a single round without scoring a match
func (h *Handler) Resolve(c *gin.Context) {
	m1, err := game.ParseMove(c.Query("player1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "player1: " + err.Error()})
		return
	}
	m2, err := game.ParseMove(c.Query("player2"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "player2: " + err.Error()})
		return
	}

	resp := ResolveResponse{Player1: m1, Player2: m2, Outcome: game.Resolve(m1, m2)}
	if winner, ok := resp.Outcome.Winner(); ok {
		move := m1
		if winner == game.Player2 {
			move = m2
		}
		resp.Points, _ = game.PointValue(move)
	}

	c.JSON(http.StatusOK, resp)
}

// PlayMatch plays the submitted sequence and returns the full report
func (h *Handler) PlayMatch(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	seq, err := match.ParseSequence(req.Player1, req.Player2)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	h.play(c, seq)
}

// PlayDefault plays the predefined five round match
func (h *Handler) PlayDefault(c *gin.Context) {
	h.play(c, match.DefaultSequence())
}

func (h *Handler) play(c *gin.Context, seq match.Sequence) {
	rep, err := h.Driver.Play(seq, nil)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rep)
}
