package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rps_match/internal/config"
	"rps_match/internal/game"
	"rps_match/internal/match"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T, rateLimit int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		AppVersion:           "test",
		MaxRounds:            10,
		APIRateLimit:         rateLimit,
		APIRateWindowSeconds: 60,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := gin.New()
	RegisterRoutes(r, cfg, match.NewDriver(log, cfg.MaxRounds), log)
	return r
}

func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func repeat(move string, n int) []string {
	moves := make([]string, n)
	for i := range moves {
		moves[i] = move
	}
	return moves
}

func TestPlayMatch(t *testing.T) {
	r := newTestRouter(t, 100)

	w := do(r, nethttp.MethodPost, "/api/v1/matches", map[string][]string{
		"player1": {"scissors", "paper", "scissors", "rock", "rock"},
		"player2": {"rock", "rock", "paper", "scissors", "paper"},
	})
	if w.Code != nethttp.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var rep match.Report
	if err := json.Unmarshal(w.Body.Bytes(), &rep); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rep.Rounds) != 5 || rep.Scores != (game.Scores{Player1: 6, Player2: 3}) || rep.Result != game.ResultPlayer1Wins {
		t.Fatalf("unexpected report: %+v", rep)
	}
}

func TestPlayDefaultMatch(t *testing.T) {
	r := newTestRouter(t, 100)

	w := do(r, nethttp.MethodGet, "/api/v1/matches/default", nil)
	if w.Code != nethttp.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"result":"player1_wins"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestPlayMatchRejectsBadInput(t *testing.T) {
	r := newTestRouter(t, 100)

	cases := []struct {
		name string
		body any
	}{
		{"unknown move", map[string][]string{"player1": {"rock"}, "player2": {"spock"}}},
		{"length mismatch", map[string][]string{"player1": {"rock", "paper"}, "player2": {"rock"}}},
		{"too many rounds", map[string][]string{"player1": repeat("rock", 11), "player2": repeat("paper", 11)}},
		{"wrong shape", map[string]string{"player1": "rock"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(r, nethttp.MethodPost, "/api/v1/matches", tc.body)
			if w.Code != nethttp.StatusBadRequest {
				t.Fatalf("expected 400 got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestResolveEndpoint(t *testing.T) {
	r := newTestRouter(t, 100)

	w := do(r, nethttp.MethodGet, "/api/v1/resolve?player1=rock&player2=paper", nil)
	if w.Code != nethttp.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var resp struct {
		Outcome game.Outcome `json:"outcome"`
		Points  int          `json:"points"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Outcome != game.OutcomePlayer2 || resp.Points != 2 {
		t.Fatalf("resolve = %+v; want player2 with 2 points", resp)
	}

	if w := do(r, nethttp.MethodGet, "/api/v1/resolve?player1=rock&player2=well", nil); w.Code != nethttp.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestMovesEndpoint(t *testing.T) {
	r := newTestRouter(t, 100)

	w := do(r, nethttp.MethodGet, "/api/v1/moves", nil)
	if w.Code != nethttp.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var resp struct {
		Moves []struct {
			Move   game.Move `json:"move"`
			Beats  game.Move `json:"beats"`
			Points int       `json:"points"`
		} `json:"moves"`
		MaxRounds int `json:"max_rounds"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Moves) != 3 || resp.MaxRounds != 10 {
		t.Fatalf("unexpected moves response: %+v", resp)
	}
	if resp.Moves[0].Move != game.Rock || resp.Moves[0].Beats != game.Scissors || resp.Moves[0].Points != 1 {
		t.Fatalf("unexpected rock entry: %+v", resp.Moves[0])
	}
}

func TestHealthEndpoints(t *testing.T) {
	r := newTestRouter(t, 100)

	for _, path := range []string{"/health", "/healthz", "/readyz"} {
		if w := do(r, nethttp.MethodGet, path, nil); w.Code != nethttp.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, w.Code)
		}
	}
}

func TestAPIRateLimited(t *testing.T) {
	r := newTestRouter(t, 1)

	if w := do(r, nethttp.MethodGet, "/api/v1/moves", nil); w.Code != nethttp.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if w := do(r, nethttp.MethodGet, "/api/v1/moves", nil); w.Code != nethttp.StatusTooManyRequests {
		t.Fatalf("expected 429 got %d", w.Code)
	}
	// health checks are not limited
	if w := do(r, nethttp.MethodGet, "/health", nil); w.Code != nethttp.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
}
