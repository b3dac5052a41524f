package metrics

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// GinMiddleware records request count and latency for every route.
func GinMiddleware(m *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if strings.TrimSpace(route) == "" {
			route = "unknown"
		}
		m.Observe(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
