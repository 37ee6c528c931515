package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/relief-map-backend/internal/domain/entity"
	"github.com/marcos-nsantos/relief-map-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/relief-map-backend/internal/pkg/httputil"
)

const rateLimitWindow = time.Minute

// RateLimiter is a sliding-window limiter in Redis. It keys on the map
// session when one is attached, since many browsers can share an address,
// and on the client IP otherwise.
type RateLimiter struct {
	client *redis.Client
	limit  int
	logger *zap.Logger
}

func NewRateLimiter(client *redis.Client, cfg config.RateLimitConfig, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{client: client, limit: cfg.RequestsPerMin, logger: logger}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := limiterKey(c)

		count, err := rl.record(c.Request.Context(), key, time.Now())
		if err != nil {
			// Fail open.
			rl.logger.Warn("rate limiter unavailable", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(max(rl.limit-count, 0)))

		if count > rl.limit {
			c.Header("Retry-After", strconv.Itoa(int(rateLimitWindow.Seconds())))
			httputil.ErrorWithCode(c, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

func limiterKey(c *gin.Context) string {
	if s, ok := c.Get(SessionKey); ok {
		return "ratelimit:session:" + s.(*entity.MapSession).ID
	}
	return "ratelimit:ip:" + c.ClientIP()
}

// record adds one hit at now and returns the hits inside the window.
func (rl *RateLimiter) record(ctx context.Context, key string, now time.Time) (int, error) {
	nowNs := now.UnixNano()
	windowStart := nowNs - rateLimitWindow.Nanoseconds()

	pipe := rl.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(nowNs), Member: nowNs})
	card := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, rateLimitWindow)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("recording hit for %s: %w", key, err)
	}
	return int(card.Val()), nil
}
