package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jbdata/ledger-engine/internal/domain/entity"
	"github.com/jbdata/ledger-engine/internal/domain/port/metrics"
	"github.com/jbdata/ledger-engine/internal/domain/port/usecase"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/api/handler"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/api/middleware"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/auth"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/logger"
	timeprovider "github.com/jbdata/ledger-engine/internal/infrastructure/adapter/time"
	mockmetrics "github.com/jbdata/ledger-engine/mocks/port/metrics"
	mockusecase "github.com/jbdata/ledger-engine/mocks/port/usecase"
)

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

type testRouter struct {
	engine   *gin.Engine
	query    *mockusecase.MockTransactionQueryUseCase
	delivery *mockusecase.MockDeliveryUseCase
}

func newRouter(t *testing.T, pingErr error) testRouter {
	return newRouterWithRecorder(t, pingErr, metrics.NoopRecorder{})
}

func newRouterWithRecorder(t *testing.T, pingErr error, recorder metrics.Recorder) testRouter {
	t.Helper()
	gin.SetMode(gin.TestMode)

	query := mockusecase.NewMockTransactionQueryUseCase(t)
	delivery := mockusecase.NewMockDeliveryUseCase(t)
	export := mockusecase.NewMockExportUseCase(t)

	clock := timeprovider.NewRealTimeProvider()
	noop := logger.NewNoopLogger()

	engine := NewRouter(Dependencies{
		TransactionHandler: handler.NewTransactionHandler(query, delivery, export, clock, noop, false),
		HealthHandler:      handler.NewHealthHandler(stubPinger{err: pingErr}, clock, noop),
		Resolver:           auth.NewHeaderResolver("", ""),
		Recorder:           recorder,
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("ledger_up 1\n"))
		}),
		TimeProvider: clock,
		Logger:       noop,
	})

	return testRouter{engine: engine, query: query, delivery: delivery}
}

func request(method, target, body string, headers map[string]string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

var adminHeaders = map[string]string{"X-Principal-Id": "ops-1", "X-Principal-Role": "admin"}

func TestRouter_AdminGuard(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
		wantCode   string
	}{
		{name: "No principal", headers: nil, wantStatus: http.StatusUnauthorized, wantCode: `"code":4010`},
		{name: "Reseller principal", headers: map[string]string{"X-Principal-Id": "r-1", "X-Principal-Role": "reseller"}, wantStatus: http.StatusForbidden, wantCode: `"code":4030`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			r := newRouter(t, nil)
			rec := httptest.NewRecorder()

			// Act
			r.engine.ServeHTTP(rec, request(http.MethodGet, "/api/v1/transactions", "", tt.headers))

			// Assert
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
			r.query.AssertNotCalled(t, "ListTransactions", mock.Anything, mock.Anything)
		})
	}

	t.Run("Admin reaches the handler", func(t *testing.T) {
		r := newRouter(t, nil)
		r.query.EXPECT().ListTransactions(mock.Anything, mock.Anything).Return(&usecase.ListResult{}, nil)
		rec := httptest.NewRecorder()

		r.engine.ServeHTTP(rec, request(http.MethodGet, "/api/v1/transactions", "", adminHeaders))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Delivery update carries the acting admin", func(t *testing.T) {
		r := newRouter(t, nil)
		r.delivery.EXPECT().SetDeliveryStatus(mock.Anything, mock.MatchedBy(func(req usecase.DeliveryRequest) bool {
			return req.ActorID == "ops-1" && req.Reference == "PAY-5"
		})).Return(&entity.Transaction{Reference: "PAY-5", DeliveryStatus: entity.DeliveryProcessing}, nil)
		rec := httptest.NewRecorder()

		r.engine.ServeHTTP(rec, request(http.MethodPatch, "/api/v1/transactions/PAY-5/delivery", `{"deliveryStatus":"processing"}`, adminHeaders))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Order marked as processing")
	})
}

func TestRouter_Operational(t *testing.T) {
	t.Run("Health is public", func(t *testing.T) {
		r := newRouter(t, nil)
		rec := httptest.NewRecorder()

		r.engine.ServeHTTP(rec, request(http.MethodGet, "/health", "", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"database":"up"`)
	})

	t.Run("Health reports an unreachable database", func(t *testing.T) {
		r := newRouter(t, errors.New("connection refused"))
		rec := httptest.NewRecorder()

		r.engine.ServeHTTP(rec, request(http.MethodGet, "/health", "", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("Metrics are served", func(t *testing.T) {
		r := newRouter(t, nil)
		rec := httptest.NewRecorder()

		r.engine.ServeHTTP(rec, request(http.MethodGet, "/metrics", "", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "ledger_up 1")
	})

	t.Run("Request id is generated and echoed", func(t *testing.T) {
		r := newRouter(t, nil)
		rec := httptest.NewRecorder()

		r.engine.ServeHTTP(rec, request(http.MethodGet, "/health", "", nil))
		assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

		rec = httptest.NewRecorder()
		r.engine.ServeHTTP(rec, request(http.MethodGet, "/health", "", map[string]string{middleware.RequestIDHeader: "req-42"}))
		assert.Equal(t, "req-42", rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("Requests are recorded under their route template", func(t *testing.T) {
		recorder := mockmetrics.NewMockRecorder(t)
		recorder.EXPECT().HTTPRequest(http.MethodPatch, "/api/v1/transactions/:reference/delivery", http.StatusOK, mock.AnythingOfType("time.Duration")).Return().Once()
		r := newRouterWithRecorder(t, nil, recorder)
		r.delivery.EXPECT().SetDeliveryStatus(mock.Anything, mock.Anything).
			Return(&entity.Transaction{Reference: "PAY-5", DeliveryStatus: entity.DeliveryDelivered}, nil)
		rec := httptest.NewRecorder()

		r.engine.ServeHTTP(rec, request(http.MethodPatch, "/api/v1/transactions/PAY-5/delivery", `{"deliveryStatus":"delivered"}`, adminHeaders))

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Panics become a 500 envelope", func(t *testing.T) {
		r := newRouter(t, nil)
		r.query.EXPECT().ListTransactions(mock.Anything, mock.Anything).
			RunAndReturn(func(context.Context, entity.ListParams) (*usecase.ListResult, error) {
				panic("nil map")
			})
		rec := httptest.NewRecorder()

		r.engine.ServeHTTP(rec, request(http.MethodGet, "/api/v1/transactions", "", adminHeaders))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":5000`)
	})
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/api/v1/transactions", func(c *gin.Context) { c.Status(http.StatusOK) })
	wrapped := middleware.CORS([]string{"https://admin.example.com"}, "X-Principal-Id")(engine)

	req := request(http.MethodOptions, "/api/v1/transactions", "", map[string]string{
		"Origin":                         "https://admin.example.com",
		"Access-Control-Request-Method":  http.MethodGet,
		"Access-Control-Request-Headers": "X-Principal-Id",
	})
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	assert.Equal(t, "https://admin.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "X-Principal-Id")
}
