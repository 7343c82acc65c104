package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"rps_match/internal/logger"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

// InitRedisRateLimiter initializes a shared Redis client used by the middleware.
// Provide addr (host:port), password and db index. If addr is empty or the
// ping fails, redisClient stays nil and RateLimit uses process memory.
func InitRedisRateLimiter(addr, password string, db int) bool {
	if addr == "" {
		return false
	}
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis rate limiter disabled", "addr", addr, "error", err)
		_ = client.Close()
		return false
	}
	redisClient = client
	logger.Info("redis rate limiter enabled", "addr", addr)
	return true
}

func RedisEnabled() bool {
	return redisClient != nil
}

// PingRedis checks the limiter backend, nil when Redis is not in use.
func PingRedis(ctx context.Context) error {
	if redisClient == nil {
		return nil
	}
	return redisClient.Ping(ctx).Err()
}

// CloseRedisRateLimiter releases the shared client.
func CloseRedisRateLimiter() {
	if redisClient == nil {
		return
	}
	_ = redisClient.Close()
	redisClient = nil
}

func rateLimitKey(window time.Duration, ident string) string {
	return "rl:" + strconv.FormatInt(int64(window.Seconds()), 10) + ":" + ident
}

// incrWindow counts one hit on key. Any key left without a TTL, by a failed
// EXPIRE or otherwise, gets one here, so a client is never blocked for good.
func incrWindow(ctx context.Context, client *redis.Client, key string, window time.Duration) (int64, error) {
	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	if _, err := client.Pipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.Incr(ctx, key)
		ttl = p.TTL(ctx, key)
		return nil
	}); err != nil {
		return 0, err
	}

	if ttl.Val() < 0 {
		if err := client.Expire(ctx, key, window).Err(); err != nil {
			return 0, fmt.Errorf("expire %s: %w", key, err)
		}
	}
	return incr.Val(), nil
}

// RedisRateLimit implements a fixed-window rate limiter using Redis INCR/EXPIRE.
// key format: rl:<window_seconds>:<identifier>
func RedisRateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		client := redisClient
		if client == nil {
			c.Next()
			return
		}

		key := rateLimitKey(window, c.ClientIP())

		val, err := incrWindow(c.Request.Context(), client, key, window)
		if err != nil {
			// on Redis error, fail-open (allow) but set header
			c.Header("X-RateLimit-Error", "redis-error")
			c.Next()
			return
		}

		if !allow(c, int(val), maxRequests, window) {
			return
		}
		c.Next()
	}
}
