package handlers

import (
	"errors"
	"net/http"

	"rps_match/internal/game"
	"rps_match/internal/match"
)

type Handler struct {
	Driver *match.Driver
}

func NewHandler(driver *match.Driver) *Handler {
	return &Handler{Driver: driver}
}

// statusFor maps match and parse errors to a response code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrUnknownMove),
		errors.Is(err, match.ErrLengthMismatch),
		errors.Is(err, match.ErrTooManyRounds):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
