package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"pulseboard/internal/infrastructure/metrics"
)

// Metrics observes request latency labelled by the matched route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.ObserveHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
