package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arvemy/YUScheduler/backend/pkg/redis"
	"github.com/arvemy/YUScheduler/backend/pkg/response"
)

// RateLimit limits each client IP to limit requests per window on the
// route it is attached to. A nil rdb disables limiting, and a Redis error
// fails open: losing the limiter must never take the endpoint down.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			response.TooManyRequests(c, "Too many requests. Please slow down and try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}
