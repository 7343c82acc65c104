package http

import (
	"log/slog"

	"rps_match/internal/config"
	"rps_match/internal/http/handlers"
	"rps_match/internal/http/middleware"
	"rps_match/internal/match"
	"rps_match/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config, driver *match.Driver, log *slog.Logger) {
	h := handlers.NewHandler(driver)
	healthHandler := handlers.NewHealthHandler(cfg.AppVersion, middleware.PingRedis)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(cfg.APIRateLimit, cfg.APIRateWindow()))
	registerAPIRoutes(v1, h)

	// Streaming matches
	r.GET("/ws", ws.HandleWS(driver, cfg.AllowedOrigin, log))
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler) {
	api.GET("/moves", h.Moves)
	api.GET("/resolve", h.Resolve)

	api.POST("/matches", h.PlayMatch)
	api.GET("/matches/default", h.PlayDefault)
}
