package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitOptions configures the per-IP fixed window.
type RateLimitOptions struct {
	Max    int
	Window time.Duration
}

// RateLimit returns a middleware enforcing a per-IP request ceiling on
// unauthenticated traffic. Authenticated owners bypass the limit; a
// Redis outage fails open.
func RateLimit(rdb *redis.Client, opts RateLimitOptions) gin.HandlerFunc {
	if opts.Max <= 0 {
		opts.Max = 50
	}
	if opts.Window <= 0 {
		opts.Window = time.Second
	}

	return func(c *gin.Context) {
		if IsAuthenticated(c) {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if ip == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		windowKey := time.Now().UnixNano() / int64(opts.Window)
		key := fmt.Sprintf("folio:rate_limit:%s:%d", ip, windowKey)

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			rdb.PExpire(ctx, key, opts.Window+time.Second)
		}

		if count > int64(opts.Max) {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Envelope{
				Status:  false,
				Message: "Too many requests",
			})
			return
		}

		c.Next()
	}
}
