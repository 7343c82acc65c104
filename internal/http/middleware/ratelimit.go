package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"rps_match/internal/metrics"

	"github.com/gin-gonic/gin"
)

type clientInfo struct {
	start time.Time
	count int
}

type memoryLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientInfo
	lastSweep time.Time
}

// hit counts one request for ident and returns the count inside the
// current window. At most once per window it drops clients whose window
// has expired.
func (l *memoryLimiter) hit(ident string, window time.Duration, now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > window {
		for k, ci := range l.clients {
			if now.Sub(ci.start) > window {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}

	ci, ok := l.clients[ident]
	if !ok || now.Sub(ci.start) > window {
		l.clients[ident] = &clientInfo{start: now, count: 1}
		return 1
	}
	ci.count++
	return ci.count
}

// SimpleRateLimit blocks clients that send more than maxRequests per window.
// State is kept in process memory, per returned handler.
func SimpleRateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	l := &memoryLimiter{clients: make(map[string]*clientInfo)}

	return func(c *gin.Context) {
		count := l.hit(c.ClientIP(), window, time.Now())
		if !allow(c, count, maxRequests, window) {
			return
		}
		c.Next()
	}
}

// RateLimit uses Redis when InitRedisRateLimiter connected, the in-memory
// limiter otherwise.
func RateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	mem := SimpleRateLimit(maxRequests, window)
	red := RedisRateLimit(maxRequests, window)

	return func(c *gin.Context) {
		if RedisEnabled() {
			red(c)
			return
		}
		mem(c)
	}
}

// allow sets the limit headers and aborts with 429 once count exceeds max.
func allow(c *gin.Context, count, maxRequests int, window time.Duration) bool {
	endpoint := c.FullPath()
	c.Header("X-RateLimit-Limit", strconv.Itoa(maxRequests))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(max(0, maxRequests-count)))

	if count > maxRequests {
		metrics.RLBlocked.WithLabelValues(endpoint).Inc()
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error":       "rate limit exceeded",
			"retry_after": int(window.Seconds()),
		})
		return false
	}

	metrics.RLRequests.WithLabelValues(endpoint).Inc()
	return true
}
