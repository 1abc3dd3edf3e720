package messaging

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	coreport "github.com/jbdata/ledger-engine/internal/domain/port/core"
)

// ErrNotConnected is returned by Publish while the broker has no open connection
var ErrNotConnected = errors.New("rabbitmq connection is not open")

// WorkerFunc runs against a live connection until ctx is cancelled or the connection drops
type WorkerFunc func(ctx context.Context, conn *amqp.Connection) error

// Config holds the connection settings for the broker
type Config struct {
	URL               string
	ReconnectInterval time.Duration
	ConnectTimeout    time.Duration
}

// Broker keeps a RabbitMQ connection open and restarts registered workers on every reconnect
type Broker struct {
	config  Config
	logger  coreport.Logger
	mu      sync.RWMutex
	conn    *amqp.Connection
	workers []WorkerFunc
}

// NewBroker creates a new Broker
func NewBroker(config Config, logger coreport.Logger) *Broker {
	if config.ReconnectInterval <= 0 {
		config.ReconnectInterval = 5 * time.Second
	}
	if config.ConnectTimeout <= 0 {
		config.ConnectTimeout = 10 * time.Second
	}
	return &Broker{config: config, logger: logger}
}

// RegisterWorker stores a worker that is started every time the connection is (re)established
func (b *Broker) RegisterWorker(w WorkerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.workers = append(b.workers, w)
}

// Start blocks in the reconnect loop until ctx is cancelled
func (b *Broker) Start(ctx context.Context) error {
	b.logger.Info("Starting RabbitMQ broker", nil)
	defer b.logger.Info("RabbitMQ broker stopped", nil)

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		conn, err := amqp.DialConfig(b.config.URL, amqp.Config{
			Dial: amqp.DefaultDial(b.config.ConnectTimeout),
		})
		if err != nil {
			b.logger.Error("Connection to RabbitMQ failed", map[string]any{
				"error": err.Error(),
			})
			if !sleepContext(ctx, b.config.ReconnectInterval) {
				return ctx.Err()
			}
			continue
		}

		b.logger.Info("Connected to RabbitMQ", nil)
		connErrors := conn.NotifyClose(make(chan *amqp.Error, 1))
		workerCtx, cancel := context.WithCancel(ctx)
		b.startWorkers(workerCtx, conn)

		select {
		case <-ctx.Done():
			cancel()
			b.swapConn(nil)
			_ = conn.Close()
			return ctx.Err()
		case amqpErr := <-connErrors:
			cancel()
			b.swapConn(nil)
			b.logger.Error("RabbitMQ connection closed", map[string]any{
				"error": fmt.Sprint(amqpErr),
			})
		}

		if !sleepContext(ctx, b.config.ReconnectInterval) {
			return ctx.Err()
		}
	}
}

// Publish sends msg on a short-lived channel of the current connection
func (b *Broker) Publish(ctx context.Context, exchange, routingKey string, msg amqp.Publishing) error {
	b.mu.RLock()
	conn := b.conn
	b.mu.RUnlock()

	if conn == nil || conn.IsClosed() {
		return ErrNotConnected
	}

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	return ch.PublishWithContext(ctx, exchange, routingKey, false, false, msg)
}

func (b *Broker) startWorkers(ctx context.Context, conn *amqp.Connection) {
	b.mu.Lock()
	b.conn = conn
	workers := append([]WorkerFunc{}, b.workers...)
	b.mu.Unlock()

	for _, w := range workers {
		go func(w WorkerFunc) {
			err := w(ctx, conn)
			if err == nil || ctx.Err() != nil {
				return
			}
			b.logger.Error("RabbitMQ worker exited, reconnecting", map[string]any{
				"error": err.Error(),
			})
			// Closing the connection wakes the reconnect loop, which restarts every worker
			_ = conn.Close()
		}(w)
	}
}

func (b *Broker) swapConn(conn *amqp.Connection) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.conn = conn
}

// EnsureExchange declares a durable topic exchange
func EnsureExchange(conn *amqp.Connection, name string) error {
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	return ch.ExchangeDeclare(name, amqp.ExchangeTopic, true, false, false, false, nil)
}

// ExchangeWorker declares the exchange on every connect
func ExchangeWorker(name string) WorkerFunc {
	return func(_ context.Context, conn *amqp.Connection) error {
		if err := EnsureExchange(conn, name); err != nil {
			return fmt.Errorf("declare exchange %s: %w", name, err)
		}
		return nil
	}
}

func sleepContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
