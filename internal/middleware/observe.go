package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Observe logs each request and records its latency.
func (mw Middleware) Observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)

		mw.metrics.ObserveHTTP(route, c.Request.Method, strconv.Itoa(status), elapsed)
		mw.l.Infof(c.Request.Context(), "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, elapsed)
	}
}
