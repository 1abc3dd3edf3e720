package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/jbdata/ledger-engine/internal/domain/entity"
	"github.com/jbdata/ledger-engine/internal/domain/port/coordination"
	coreport "github.com/jbdata/ledger-engine/internal/domain/port/core"
	"github.com/jbdata/ledger-engine/internal/domain/port/event"
	metricsport "github.com/jbdata/ledger-engine/internal/domain/port/metrics"
	"github.com/jbdata/ledger-engine/internal/domain/usecase/analytics"
	"github.com/jbdata/ledger-engine/internal/domain/usecase/delivery"
	"github.com/jbdata/ledger-engine/internal/domain/usecase/export"
	transactionUseCase "github.com/jbdata/ledger-engine/internal/domain/usecase/transaction"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/api/handler"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/api/middleware"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/api/routes"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/auth"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/database"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/lock"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/logger"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/messaging"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/metrics"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/repository"
	timeProvider "github.com/jbdata/ledger-engine/internal/infrastructure/adapter/time"
	"github.com/jbdata/ledger-engine/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Production: cfg.Logger.Format == "json",
		Level:      cfg.Logger.Level,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Service stopped with error", map[string]any{
			"error": err.Error(),
		})
		_ = appLogger.Flush()
		os.Exit(1)
	}
	_ = appLogger.Flush()
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	for _, warning := range cfg.Warnings() {
		appLogger.Warn("Insecure configuration", map[string]any{"warning": warning})
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()

	// Metrics
	var (
		recorder     metricsport.Recorder = metricsport.NoopRecorder{}
		poolObserver database.PoolObserver
		metricsHTTP  http.Handler
	)
	if cfg.Metrics.Enabled {
		prom := metrics.NewPrometheusRecorder()
		recorder = prom
		poolObserver = prom
		metricsHTTP = prom.Handler()
	}

	// Database
	dbManager := database.NewManager(database.NewConfig(cfg.Database), poolObserver, appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	uow := dbManager.CreateUnitOfWork()
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), appLogger)

	// Export lock
	var exportLock coordination.ExportLock = lock.NoopExportLock{}
	if cfg.Redis.Enabled {
		redisClient, err := lock.NewRedisClient(ctx, cfg.Redis, appLogger)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		exportLock = lock.NewRedisExportLock(redisClient, cfg.Redis.KeyPrefix, cfg.Export.LockTTL, appLogger)
	}

	// Messaging
	var publisher event.DeliveryPublisher = messaging.NoopDeliveryPublisher{}
	var broker *messaging.Broker
	if cfg.RabbitMQ.Enabled {
		broker = messaging.NewBroker(messaging.Config{
			URL:               cfg.RabbitMQ.URL,
			ReconnectInterval: cfg.RabbitMQ.ReconnectInterval,
			ConnectTimeout:    cfg.RabbitMQ.ConnectTimeout,
		}, appLogger)
		broker.RegisterWorker(messaging.ExchangeWorker(cfg.RabbitMQ.DeliveryExchange))
		publisher = messaging.NewDeliveryPublisher(broker, cfg.RabbitMQ.DeliveryExchange)
	}

	// Use cases
	mode := entity.TransitionLoose
	if cfg.Delivery.StrictTransitions {
		mode = entity.TransitionStrict
	}

	aggregator := analytics.NewAggregator(transactionRepo, recorder, appLogger)
	queryService := transactionUseCase.NewQueryService(transactionRepo, aggregator, appLogger)
	deliveryService := delivery.NewService(uow, publisher, mode, tp, recorder, appLogger)
	exportService := export.NewService(uow, exportLock, tp, recorder, appLogger)
	ingestService := transactionUseCase.NewRecorder(transactionRepo, tp, recorder, appLogger)

	brokerDone := make(chan struct{})
	if broker != nil {
		consumer := messaging.NewIngestConsumer(messaging.IngestConsumerConfig{
			Queue:    cfg.RabbitMQ.IngestQueue,
			Prefetch: cfg.RabbitMQ.Prefetch,
			Timeout:  cfg.RabbitMQ.HandlerTimeout,
		}, ingestService, appLogger)
		broker.RegisterWorker(consumer.Run)

		go func() {
			defer close(brokerDone)
			_ = broker.Start(ctx)
		}()
	} else {
		close(brokerDone)
	}

	// HTTP
	router := routes.NewRouter(routes.Dependencies{
		TransactionHandler: handler.NewTransactionHandler(
			queryService, deliveryService, exportService, tp, appLogger, !cfg.IsProduction(),
		),
		HealthHandler:  handler.NewHealthHandler(dbManager, tp, appLogger),
		Resolver:       auth.NewHeaderResolver(cfg.Auth.PrincipalIDHeader, cfg.Auth.PrincipalRoleHeader),
		Recorder:       recorder,
		MetricsHandler: metricsHTTP,
		MetricsPath:    cfg.Metrics.Path,
		TimeProvider:   tp,
		Logger:         appLogger,
	})

	cors := middleware.CORS(cfg.Server.CORSOrigins, cfg.Auth.PrincipalIDHeader, cfg.Auth.PrincipalRoleHeader)
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           cors(router),
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"address":           server.Addr,
			"env":               cfg.Environment,
			"strictTransitions": cfg.Delivery.StrictTransitions,
			"redis":             cfg.Redis.Enabled,
			"rabbitmq":          cfg.RabbitMQ.Enabled,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		appLogger.Info("Shutting down server...", nil)
	case err := <-serverErr:
		stop()
		<-brokerDone
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	select {
	case <-brokerDone:
	case <-shutdownCtx.Done():
		appLogger.Warn("RabbitMQ broker did not stop before the shutdown deadline", nil)
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}
