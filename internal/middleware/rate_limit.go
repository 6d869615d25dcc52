package middleware

import (
	"context"
	"time"

	"vyronex/internal/utils"
	"vyronex/pkg/logger"

	"github.com/gin-gonic/gin"
)

// WindowCounter counts hits in a fixed time window.
type WindowCounter interface {
	IncrementWindow(ctx context.Context, key string, window time.Duration) (int64, error)
}

// SubmissionRateLimit caps form submissions per client IP. A nil counter
// or a counter error lets the request through.
func SubmissionRateLimit(counter WindowCounter, limit int, window time.Duration, log *logger.Logger, onLimited gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if counter == nil || limit <= 0 {
			c.Next()
			return
		}

		key := utils.CacheRateLimitPrefix + c.FullPath() + ":" + c.ClientIP()
		hits, err := counter.IncrementWindow(c.Request.Context(), key, window)
		if err != nil {
			log.WithContext(c.Request.Context()).WithError(err).Warn("Rate limit counter unavailable")
			c.Next()
			return
		}

		if hits > int64(limit) {
			onLimited(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
