package middleware

import (
	"strconv"
	"time"

	"islamicdashboard/utils"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request counts, latency and in-flight requests.
// Paths are labelled by route template to keep cardinality bounded.
func MetricsMiddleware(m *utils.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.HTTPInFlight.Inc()
		defer m.HTTPInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
