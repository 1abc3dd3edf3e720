package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jbdata/ledger-engine/internal/domain/port/auth"
	coreport "github.com/jbdata/ledger-engine/internal/domain/port/core"
	"github.com/jbdata/ledger-engine/internal/domain/port/metrics"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/api/handler"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/api/middleware"
)

// Dependencies groups everything the router needs
type Dependencies struct {
	TransactionHandler *handler.TransactionHandler
	HealthHandler      *handler.HealthHandler
	Resolver           auth.PrincipalResolver
	Recorder           metrics.Recorder
	MetricsHandler     http.Handler // nil disables /metrics
	MetricsPath        string
	TimeProvider       coreport.TimeProvider
	Logger             coreport.Logger
}

// NewRouter builds the gin engine with global middlewares and every route
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	SetupMiddlewares(router, deps)
	SetupRoutes(router, deps)
	return router
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, deps Dependencies) {
	router.GET("/health", deps.HealthHandler.Health)

	if deps.MetricsHandler != nil {
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		router.GET(path, gin.WrapH(deps.MetricsHandler))
	}

	api := router.Group("/api/v1")
	transactions := api.Group("/transactions")
	transactions.Use(middleware.RequireAdmin(deps.Resolver, deps.Logger, deps.TimeProvider))
	{
		// GET /api/v1/transactions
		transactions.GET("", deps.TransactionHandler.ListTransactions)

		// GET /api/v1/transactions/export-pending
		transactions.GET("/export-pending", deps.TransactionHandler.ExportPendingOrders)

		// PATCH /api/v1/transactions/:reference/delivery
		transactions.PATCH("/:reference/delivery", deps.TransactionHandler.UpdateDeliveryStatus)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, deps Dependencies) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(deps.Logger, deps.TimeProvider))
	router.Use(middleware.Logger(deps.Logger))
	router.Use(middleware.Metrics(deps.Recorder))
}
