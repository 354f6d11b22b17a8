package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
	"github.com/shrawan-shakya/shakya-gallery-sub000/utils"
)

// RateCounter counts hits on a key inside a fixed window
type RateCounter interface {
	Hit(ctx context.Context, key string, window time.Duration) (count int64, resetAt time.Time, err error)
}

// RedisRateCounter keeps fixed-window counters in Redis
type RedisRateCounter struct {
	client redis.Cmdable
}

func NewRedisRateCounter(client redis.Cmdable) *RedisRateCounter {
	return &RedisRateCounter{client: client}
}

func (r *RedisRateCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	resetKey := key + ":resetAt"

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, time.Time{}, err
	}

	// First request → set expiry and stable resetAt
	if count == 1 {
		resetAt := time.Now().Add(window)
		pipe := r.client.TxPipeline()
		pipe.Expire(ctx, key, window)
		pipe.Set(ctx, resetKey, resetAt.Unix(), window)
		if _, err := pipe.Exec(ctx); err != nil {
			return 0, time.Time{}, err
		}
		return count, resetAt, nil
	}

	resetAtUnix, err := r.client.Get(ctx, resetKey).Int64()
	if err != nil {
		resetAtUnix = time.Now().Add(window).Unix()
	}
	return count, time.Unix(resetAtUnix, 0), nil
}

// RateLimiter allows maxRequests per client IP, method and route within window.
// When the counter is unreachable the request is let through.
func RateLimiter(counter RateCounter, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()

		count, resetAt, err := counter.Hit(c.Request.Context(), key, window)
		if err != nil {
			utils.Log.Warnf("[rate-limit] counter unavailable: %v", err)
			c.Next()
			return
		}

		remaining := maxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}

		resetInSeconds := int(time.Until(resetAt).Seconds())
		if resetInSeconds < 0 {
			resetInSeconds = 0
		}

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        resetAt,
			ResetInSeconds: resetInSeconds,
		}

		c.Set(models.RateLimitContextKey, rate)
		c.Header("X-RateLimit-Limit", strconv.Itoa(maxRequests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if int(count) > maxRequests {
			c.Header("Retry-After", strconv.Itoa(resetInSeconds))
			c.JSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    rate,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
