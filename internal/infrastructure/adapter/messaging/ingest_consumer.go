package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"

	"github.com/jbdata/ledger-engine/internal/domain/entity"
	errs "github.com/jbdata/ledger-engine/internal/domain/error"
	coreport "github.com/jbdata/ledger-engine/internal/domain/port/core"
	"github.com/jbdata/ledger-engine/internal/domain/port/usecase"
)

const consumerTag = "ledger-ingest"

// Acknowledger settles a delivery; amqp.Delivery satisfies it
type Acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

// IngestConsumerConfig configures the ingestion consumer
type IngestConsumerConfig struct {
	Queue    string
	Prefetch int
	Timeout  time.Duration
}

// IngestConsumer records transactions published by the payment collaborator
type IngestConsumer struct {
	config IngestConsumerConfig
	ingest usecase.IngestUseCase
	logger coreport.Logger
}

// NewIngestConsumer creates a new IngestConsumer
func NewIngestConsumer(config IngestConsumerConfig, ingest usecase.IngestUseCase, logger coreport.Logger) *IngestConsumer {
	if config.Prefetch <= 0 {
		config.Prefetch = 10
	}
	if config.Timeout <= 0 {
		config.Timeout = 5 * time.Second
	}
	return &IngestConsumer{config: config, ingest: ingest, logger: logger}
}

// ingestMessage is the wire format of a payment record. Money accepts JSON numbers or numeric strings.
type ingestMessage struct {
	Reference    string         `json:"reference"`
	Status       string         `json:"status"`
	Amount       json.Number    `json:"amount"`
	BaseCost     json.Number    `json:"baseCost"`
	JBProfit     json.Number    `json:"JBProfit"`
	BundleName   string         `json:"bundleName"`
	Email        string         `json:"email"`
	Currency     string         `json:"currency"`
	ResellerCode string         `json:"resellerCode"`
	CreatedAt    string         `json:"createdAt"`
	Metadata     ingestMetadata `json:"metadata"`
}

type ingestMetadata struct {
	Network                  string              `json:"network"`
	PhoneNumberReceivingData string              `json:"phoneNumberReceivingData"`
	ResellerName             string              `json:"resellerName"`
	ResellerProfit           decimal.NullDecimal `json:"resellerProfit"`
	BundleData               json.RawMessage     `json:"bundleData"`
}

func (m ingestMessage) toRequest() usecase.IngestRequest {
	return usecase.IngestRequest{
		Reference:    m.Reference,
		Status:       m.Status,
		Amount:       m.Amount.String(),
		BaseCost:     m.BaseCost.String(),
		JBProfit:     m.JBProfit.String(),
		BundleName:   m.BundleName,
		Email:        m.Email,
		Currency:     m.Currency,
		ResellerCode: m.ResellerCode,
		CreatedAt:    m.CreatedAt,
		Metadata: entity.Metadata{
			Network:                  m.Metadata.Network,
			PhoneNumberReceivingData: m.Metadata.PhoneNumberReceivingData,
			ResellerName:             m.Metadata.ResellerName,
			ResellerProfit:           m.Metadata.ResellerProfit,
			BundleData:               m.Metadata.BundleData,
		},
	}
}

// Run consumes the ingest queue on conn until ctx is cancelled or the channel closes
func (c *IngestConsumer) Run(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(c.config.Queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", c.config.Queue, err)
	}
	if err := ch.Qos(c.config.Prefetch, 0, false); err != nil {
		return fmt.Errorf("set prefetch: %w", err)
	}

	messages, err := ch.Consume(
		c.config.Queue, // queue
		consumerTag,    // consumer
		false,          // autoAck
		false,          // exclusive
		false,          // noLocal
		false,          // noWait
		nil,            // args
	)
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.config.Queue, err)
	}

	c.logger.Info("Ingest consumer started", map[string]any{
		"queue":    c.config.Queue,
		"prefetch": c.config.Prefetch,
	})

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Stopping ingest consumer", nil)
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return errors.New("ingest queue channel closed")
			}
			if err := c.Handle(ctx, msg.Body, msg); err != nil {
				// Unsettled deliveries hold prefetch slots until the channel closes
				return err
			}
		}
	}
}

// Handle records one message and settles it.
// Malformed and invalid records are dropped, store failures are requeued, duplicates are acknowledged.
// The returned error only reports a failure to settle the delivery.
func (c *IngestConsumer) Handle(ctx context.Context, body []byte, ack Acknowledger) error {
	var msg ingestMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		c.logger.Error("Failed to decode ingest message", map[string]any{
			"body":  string(body),
			"error": err.Error(),
		})
		return ack.Nack(false, false)
	}

	opCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	recorded, err := c.ingest.RecordTransaction(opCtx, msg.toRequest())
	switch {
	case err == nil:
		if !recorded {
			c.logger.Info("Duplicate transaction, skipping", map[string]any{
				"reference": msg.Reference,
			})
		}
		return ack.Ack(false)
	case errs.IsValidationError(err):
		c.logger.Warn("Rejected ingest message", map[string]any{
			"reference": msg.Reference,
			"error":     err.Error(),
		})
		return ack.Nack(false, false)
	default:
		c.logger.Error("Failed to record transaction, requeueing", map[string]any{
			"reference": msg.Reference,
			"error":     err.Error(),
		})
		return ack.Nack(false, true)
	}
}
