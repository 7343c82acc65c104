package ws

import (
	"log/slog"
	"net/http"

	"rps_match/internal/match"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// HandleWS upgrades the request and serves a session on the request
// goroutine. An empty allowedOrigin accepts any origin.
func HandleWS(driver *match.Driver, allowedOrigin string, log *slog.Logger) gin.HandlerFunc {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if allowedOrigin == "" {
				return true
			}
			return r.Header.Get("Origin") == allowedOrigin
		},
	}

	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Warn("ws upgrade error", "error", err)
			return
		}

		NewSession(conn, driver, log).Run()
	}
}
