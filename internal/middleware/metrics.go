package middleware

import (
	"strconv"
	"time"

	ktmetrics "ketotrack/backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics is a gin middleware that records Prometheus metrics for HTTP
// requests.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		method := c.Request.Method

		// FullPath returns the route template, which keeps label cardinality
		// bounded. For unmatched routes fall back to the raw path.
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		latency := time.Since(start)

		if ktmetrics.HTTPRequestCounter != nil {
			ktmetrics.HTTPRequestCounter.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		}
		if ktmetrics.HTTPRequestDuration != nil {
			ktmetrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(latency.Seconds())
		}
	}
}
