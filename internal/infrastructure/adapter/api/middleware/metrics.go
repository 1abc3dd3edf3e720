package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jbdata/ledger-engine/internal/domain/port/metrics"
)

// Metrics records every request under its route template
func Metrics(recorder metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		recorder.HTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
