package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/metrics"
)

type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimit caps hits per client IP and route inside a fixed window. When
// the counter is unavailable the request goes through.
func RateLimit(counter Counter, max int, window time.Duration, m *metrics.Collector, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP() + "|" + c.Request.Method + " " + c.FullPath()

		n, err := counter.Incr(c.Request.Context(), key, window)
		if err != nil {
			log.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}

		if n > int64(max) {
			if m != nil {
				m.RateLimited.Inc()
			}
			c.Header("Retry-After", retryAfter(window))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httperr.HTTPError{
				Code:    "rate_limited",
				Message: "Demasiadas solicitudes. Intente nuevamente en unos minutos.",
			})
			return
		}
		c.Next()
	}
}

func retryAfter(window time.Duration) string {
	s := int64(window.Seconds())
	if s < 1 {
		s = 1
	}
	return strconv.FormatInt(s, 10)
}
