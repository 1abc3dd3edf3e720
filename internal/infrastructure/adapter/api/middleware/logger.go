package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/jbdata/ledger-engine/internal/domain/port/core"
)

// Logger middleware logs every request once it has been served
func Logger(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		statusCode := c.Writer.Status()
		fields := map[string]any{
			"method":     method,
			"path":       path,
			"status":     statusCode,
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
			"request_id": RequestIDFrom(c),
			"user_agent": c.Request.UserAgent(),
		}
		if principal, ok := PrincipalFrom(c); ok {
			fields["principal_id"] = principal.ID
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		switch {
		case statusCode >= 500:
			logger.Error("Request failed", fields)
		case statusCode >= 400:
			logger.Warn("Request rejected", fields)
		default:
			logger.Info("Request processed", fields)
		}
	}
}
