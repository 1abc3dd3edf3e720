package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jbdata/ledger-engine/internal/domain/entity"
	errs "github.com/jbdata/ledger-engine/internal/domain/error"
	"github.com/jbdata/ledger-engine/internal/domain/port/auth"
	coreport "github.com/jbdata/ledger-engine/internal/domain/port/core"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/api/dto"
)

const principalKey = "principal"

// RequireAdmin rejects requests without a principal (401) or without the admin role (403)
func RequireAdmin(resolver auth.PrincipalResolver, logger coreport.Logger, timeProvider coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := resolver.Resolve(c.Request)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				errs.CodeUnauthorized, "Unauthorized", "", timeProvider.Now(),
			))
			return
		}

		if !principal.IsAdmin() {
			logger.Warn("Non-admin principal rejected", map[string]any{
				"principal_id": principal.ID,
				"role":         principal.Role,
				"path":         c.Request.URL.Path,
			})
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				errs.CodeForbidden, "Forbidden: admin access required", "", timeProvider.Now(),
			))
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// PrincipalFrom returns the principal stored by RequireAdmin
func PrincipalFrom(c *gin.Context) (entity.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return entity.Principal{}, false
	}
	principal, ok := v.(entity.Principal)
	return principal, ok
}
