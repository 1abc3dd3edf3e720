package event

import (
	"context"
	"time"
)

// DeliveryStatusChanged is emitted after a delivery update commits
type DeliveryStatusChanged struct {
	Reference      string     `json:"reference"`
	PreviousStatus string     `json:"previousStatus"`
	DeliveryStatus string     `json:"deliveryStatus"`
	FailureReason  *string    `json:"failureReason"`
	DeliveredAt    *time.Time `json:"deliveredAt"`
	Email          string     `json:"email,omitempty"`
	ChangedBy      string     `json:"changedBy,omitempty"`
	OccurredAt     time.Time  `json:"occurredAt"`
}

// DeliveryPublisher hands delivery events to the notification collaborator
type DeliveryPublisher interface {
	PublishDeliveryStatusChanged(ctx context.Context, evt DeliveryStatusChanged) error
}
