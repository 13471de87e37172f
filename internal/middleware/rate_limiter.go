package middleware

import (
	"net/http"
	"strconv"
	"time"

	"shopchat/internal/cache"
	"shopchat/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimiter allows maxRequests per window for each client ip, method and route
func RateLimiter(counter cache.Counter, maxRequests int, window time.Duration, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()

		count, resetAt, err := counter.Incr(c.Request.Context(), key, window)
		if err != nil {
			// counter errors let the request through
			log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable")
			c.Next()
			return
		}

		remaining := maxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}
		resetIn := int(time.Until(resetAt).Seconds())
		if resetIn < 0 {
			resetIn = 0
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(maxRequests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		if int(count) > maxRequests {
			c.Header("Retry-After", strconv.Itoa(resetIn))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, model.Error("Too many requests"))
			return
		}

		c.Next()
	}
}
