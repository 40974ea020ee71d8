package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/tkstudio/site-backend/internal/response"
)

// RateLimiter is a Redis-backed fixed-window limiter keyed by client IP.
// It guards credential endpoints and public inquiry creation against abuse.
type RateLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	log    zerolog.Logger
}

// NewRateLimiter creates a RateLimiter (e.g., 30 requests per minute).
func NewRateLimiter(rdb *redis.Client, limit int, window time.Duration, log zerolog.Logger) *RateLimiter {
	return &RateLimiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		log:    log.With().Str("component", "rate_limiter").Logger(),
	}
}

// Middleware returns a Gin middleware that rate-limits requests by IP.
// Redis failures fail open.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := rl.windowKey(c.ClientIP(), time.Now())

		count, err := rl.rdb.Incr(ctx, key).Result()
		if err != nil {
			rl.log.Warn().Err(err).Msg("rate limit check failed, allowing request")
			c.Next()
			return
		}
		if count == 1 {
			if err := rl.rdb.Expire(ctx, key, rl.window).Err(); err != nil {
				rl.log.Warn().Err(err).Msg("rate limit expire failed")
			}
		}

		if count > int64(rl.limit) {
			response.AbortFail(c, http.StatusTooManyRequests, "Too many requests")
			return
		}

		c.Next()
	}
}

// windowKey buckets a client IP into the current fixed window. All requests
// within one window share a counter key.
func (rl *RateLimiter) windowKey(ip string, now time.Time) string {
	return fmt.Sprintf("ratelimit:%s:%d", ip, now.Unix()/int64(rl.window.Seconds()))
}
