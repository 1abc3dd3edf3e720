package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/jbdata/ledger-engine/internal/domain/error"
)

// DeliveryStatus is the fulfilment state of a paid bundle
type DeliveryStatus string

// DeliveryStatus constants
const (
	DeliveryPending    DeliveryStatus = "pending"
	DeliveryProcessing DeliveryStatus = "processing"
	DeliveryDelivered  DeliveryStatus = "delivered"
	DeliveryFailed     DeliveryStatus = "failed"
)

// Valid reports whether s is a known delivery status
func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryPending, DeliveryProcessing, DeliveryDelivered, DeliveryFailed:
		return true
	}
	return false
}

// ParseDeliveryStatus validates raw input as a delivery status
func ParseDeliveryStatus(raw string) (DeliveryStatus, error) {
	s := DeliveryStatus(strings.TrimSpace(raw))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidDeliveryStatus, raw)
	}
	return s, nil
}

// TransitionMode selects how delivery updates are checked
type TransitionMode int

const (
	// TransitionLoose accepts any target state
	TransitionLoose TransitionMode = iota
	// TransitionStrict enforces the transition table and requires a successful payment
	TransitionStrict
)

// String returns the config name of the mode
func (m TransitionMode) String() string {
	if m == TransitionStrict {
		return "strict"
	}
	return "loose"
}

var deliveryTransitions = map[DeliveryStatus][]DeliveryStatus{
	DeliveryPending:    {DeliveryProcessing, DeliveryDelivered, DeliveryFailed},
	DeliveryProcessing: {DeliveryPending, DeliveryDelivered, DeliveryFailed},
	DeliveryFailed:     {DeliveryPending, DeliveryFailed},
	DeliveryDelivered:  {},
}

// CanTransition reports whether the strict table allows from -> to
func CanTransition(from, to DeliveryStatus) bool {
	for _, next := range deliveryTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CheckTransition returns nil when mode permits moving t to the target status
func (t *Transaction) CheckTransition(to DeliveryStatus, mode TransitionMode) error {
	if !to.Valid() {
		return fmt.Errorf("%w: %q", errs.ErrInvalidDeliveryStatus, to)
	}
	if mode == TransitionLoose {
		return nil
	}
	if t.Status != PaymentSuccess {
		return errs.NewDeliveryTransitionError(t.Reference, string(t.DeliveryStatus), string(to), errs.ErrPaymentNotSuccessful)
	}
	if !CanTransition(t.DeliveryStatus, to) {
		return errs.NewDeliveryTransitionError(t.Reference, string(t.DeliveryStatus), string(to), errs.ErrIllegalTransition)
	}
	return nil
}

// DeliveryUpdate is the set of fields written by a delivery status change
type DeliveryUpdate struct {
	Status        DeliveryStatus
	FailureReason *string
	DeliveredAt   *time.Time
}

// NewDeliveryUpdate derives the side effects of moving to status at now.
// An empty failure reason is stored as null.
func NewDeliveryUpdate(status DeliveryStatus, failureReason *string, now time.Time) DeliveryUpdate {
	update := DeliveryUpdate{Status: status}
	if failureReason != nil && *failureReason != "" {
		reason := *failureReason
		update.FailureReason = &reason
	}
	if status == DeliveryDelivered {
		delivered := now.UTC()
		update.DeliveredAt = &delivered
	}
	return update
}

// ApplyDelivery writes update onto t
func (t *Transaction) ApplyDelivery(update DeliveryUpdate) {
	t.DeliveryStatus = update.Status
	t.FailureReason = update.FailureReason
	t.DeliveredAt = update.DeliveredAt
}
