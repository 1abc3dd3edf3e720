package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/jbdata/ledger-engine/internal/domain/error"
	coreport "github.com/jbdata/ledger-engine/internal/domain/port/core"
	"github.com/jbdata/ledger-engine/internal/domain/port/usecase"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/api/dto"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/api/middleware"
)

// TransactionHandler serves the admin transaction endpoints
type TransactionHandler struct {
	queryService    usecase.TransactionQueryUseCase
	deliveryService usecase.DeliveryUseCase
	exportService   usecase.ExportUseCase
	logger          coreport.Logger
	respond         responder
}

// NewTransactionHandler creates a new transaction handler instance.
// exposeErrors adds the underlying error text to failure responses.
func NewTransactionHandler(
	queryService usecase.TransactionQueryUseCase,
	deliveryService usecase.DeliveryUseCase,
	exportService usecase.ExportUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	exposeErrors bool,
) *TransactionHandler {
	return &TransactionHandler{
		queryService:    queryService,
		deliveryService: deliveryService,
		exportService:   exportService,
		logger:          logger,
		respond:         responder{timeProvider: timeProvider, exposeErrors: exposeErrors},
	}
}

// ListTransactions handles GET /api/v1/transactions
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var query dto.ListTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		// Every field is a raw string; the domain clamps whatever arrives
		h.logger.Warn("Unreadable listing query", map[string]any{
			"error": err.Error(),
		})
	}

	result, err := h.queryService.ListTransactions(c.Request.Context(), query.ToParams())
	if err != nil {
		h.logger.Error("Error fetching transactions", map[string]any{
			"error": err.Error(),
		})
		h.respond.failure(c, http.StatusInternalServerError, err, "Failed to fetch transactions")
		return
	}

	h.respond.success(c, http.StatusOK, "", dto.NewListTransactionsData(result))
}

// ExportPendingOrders handles GET /api/v1/transactions/export-pending
func (h *TransactionHandler) ExportPendingOrders(c *gin.Context) {
	result, err := h.exportService.ExportPendingOrders(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrExportInProgress):
			h.respond.failure(c, http.StatusConflict, err, "An export is already in progress.")
		case errs.IsEmptyBatchError(err):
			h.respond.failure(c, http.StatusNotFound, err, "No pending orders found to export.")
		default:
			h.respond.failure(c, http.StatusInternalServerError, err, "Failed to export orders.")
		}
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+result.FileName)
	c.Data(http.StatusOK, "text/csv", result.Content)
}

// UpdateDeliveryStatus handles PATCH /api/v1/transactions/:reference/delivery
func (h *TransactionHandler) UpdateDeliveryStatus(c *gin.Context) {
	var body dto.DeliveryUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respond.failure(c, http.StatusBadRequest, errors.Join(errs.ErrInvalidRequest, err), "Invalid request body.")
		return
	}

	req := usecase.DeliveryRequest{
		Reference:      c.Param("reference"),
		DeliveryStatus: body.DeliveryStatus,
		FailureReason:  body.FailureReason,
	}
	if principal, ok := middleware.PrincipalFrom(c); ok {
		req.ActorID = principal.ID
	}

	updated, err := h.deliveryService.SetDeliveryStatus(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.IsNotFoundError(err):
			h.respond.failure(c, http.StatusNotFound, err, "Transaction not found.")
		case errs.IsValidationError(err):
			h.respond.failure(c, http.StatusBadRequest, err, "Invalid delivery status.")
		case errs.IsConflictError(err):
			h.respond.failure(c, http.StatusConflict, err, "Delivery status change not allowed.")
		default:
			h.logger.Error("Update delivery status error", map[string]any{
				"reference": req.Reference,
				"error":     err.Error(),
			})
			h.respond.failure(c, http.StatusInternalServerError, err, "Failed to update delivery status.")
		}
		return
	}

	h.respond.success(c, http.StatusOK,
		"Order marked as "+string(updated.DeliveryStatus),
		dto.NewTransactionResponse(updated),
	)
}
