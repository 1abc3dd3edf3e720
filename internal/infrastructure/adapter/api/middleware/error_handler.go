package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/jbdata/ledger-engine/internal/domain/error"
	coreport "github.com/jbdata/ledger-engine/internal/domain/port/core"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/api/dto"
)

// ErrorHandler middleware recovers from panics and returns the failure envelope
func ErrorHandler(logger coreport.Logger, timeProvider coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": RequestIDFrom(c),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
					errs.CodeInternalServer,
					"Internal server error",
					"",
					timeProvider.Now(),
				))
			}
		}()

		c.Next()
	}
}
