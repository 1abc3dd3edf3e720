package handler

import (
	"github.com/gin-gonic/gin"

	errs "github.com/jbdata/ledger-engine/internal/domain/error"
	coreport "github.com/jbdata/ledger-engine/internal/domain/port/core"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/api/dto"
)

// responder writes the JSON envelopes shared by all handlers
type responder struct {
	timeProvider coreport.TimeProvider
	exposeErrors bool
}

func (r responder) success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dto.NewSuccessResponse(message, data, r.timeProvider.Now()))
}

// failure writes the failure envelope. The error detail is only included when exposeErrors is set.
func (r responder) failure(c *gin.Context, status int, err error, message string) {
	detail := ""
	if r.exposeErrors && err != nil {
		detail = err.Error()
	}
	if err != nil {
		_ = c.Error(err)
	}
	c.JSON(status, dto.NewErrorResponse(errs.ErrorCode(err), message, detail, r.timeProvider.Now()))
}
