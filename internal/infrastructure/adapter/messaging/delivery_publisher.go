package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jbdata/ledger-engine/internal/domain/port/event"
)

// Publisher sends a single message to an exchange
type Publisher interface {
	Publish(ctx context.Context, exchange, routingKey string, msg amqp.Publishing) error
}

// DeliveryPublisher emits delivery events as JSON on a topic exchange
type DeliveryPublisher struct {
	publisher Publisher
	exchange  string
}

var _ event.DeliveryPublisher = (*DeliveryPublisher)(nil)

// NewDeliveryPublisher creates a new DeliveryPublisher
func NewDeliveryPublisher(publisher Publisher, exchange string) *DeliveryPublisher {
	return &DeliveryPublisher{publisher: publisher, exchange: exchange}
}

// RoutingKey returns the routing key for a delivery status
func RoutingKey(status string) string {
	return "delivery." + status
}

// PublishDeliveryStatusChanged publishes evt with routing key delivery.<status>
func (p *DeliveryPublisher) PublishDeliveryStatusChanged(ctx context.Context, evt event.DeliveryStatusChanged) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal delivery event: %w", err)
	}

	err = p.publisher.Publish(ctx, p.exchange, RoutingKey(evt.DeliveryStatus), amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    evt.Reference,
		Timestamp:    evt.OccurredAt,
		Type:         "delivery.status_changed",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish delivery event: %w", err)
	}
	return nil
}

// NoopDeliveryPublisher drops events; used when RabbitMQ is disabled
type NoopDeliveryPublisher struct{}

// PublishDeliveryStatusChanged does nothing
func (NoopDeliveryPublisher) PublishDeliveryStatusChanged(context.Context, event.DeliveryStatusChanged) error {
	return nil
}
