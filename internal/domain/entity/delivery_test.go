package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/jbdata/ledger-engine/internal/domain/error"
)

func TestParseDeliveryStatus(t *testing.T) {
	for _, raw := range []string{"pending", "processing", "delivered", "failed", " delivered "} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseDeliveryStatus(raw)
			assert.NoError(t, err)
		})
	}

	_, err := ParseDeliveryStatus("shipped")
	assert.ErrorIs(t, err, errs.ErrInvalidDeliveryStatus)
}

func TestNewDeliveryUpdate(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	reason := "number not on network"
	empty := ""

	t.Run("Delivered sets deliveredAt", func(t *testing.T) {
		update := NewDeliveryUpdate(DeliveryDelivered, nil, now)

		require.NotNil(t, update.DeliveredAt)
		assert.Equal(t, now, *update.DeliveredAt)
		assert.Nil(t, update.FailureReason)
	})

	t.Run("Failed keeps the supplied reason and clears deliveredAt", func(t *testing.T) {
		update := NewDeliveryUpdate(DeliveryFailed, &reason, now)

		assert.Nil(t, update.DeliveredAt)
		require.NotNil(t, update.FailureReason)
		assert.Equal(t, reason, *update.FailureReason)
	})

	t.Run("Empty reason is stored as null", func(t *testing.T) {
		update := NewDeliveryUpdate(DeliveryFailed, &empty, now)
		assert.Nil(t, update.FailureReason)
	})

	t.Run("Other statuses clear deliveredAt", func(t *testing.T) {
		for _, status := range []DeliveryStatus{DeliveryPending, DeliveryProcessing, DeliveryFailed} {
			assert.Nil(t, NewDeliveryUpdate(status, nil, now).DeliveredAt, status)
		}
	})

	t.Run("Apply overwrites previous side effects", func(t *testing.T) {
		delivered := now.Add(-time.Hour)
		tx := &Transaction{DeliveryStatus: DeliveryDelivered, DeliveredAt: &delivered}

		tx.ApplyDelivery(NewDeliveryUpdate(DeliveryPending, nil, now))

		assert.Equal(t, DeliveryPending, tx.DeliveryStatus)
		assert.Nil(t, tx.DeliveredAt)
		assert.Nil(t, tx.FailureReason)
	})
}

func TestCheckTransition(t *testing.T) {
	t.Run("Loose mode accepts any known target", func(t *testing.T) {
		tx := &Transaction{Reference: "R", Status: PaymentFailed, DeliveryStatus: DeliveryDelivered}

		assert.NoError(t, tx.CheckTransition(DeliveryPending, TransitionLoose))
		assert.ErrorIs(t, tx.CheckTransition("lost", TransitionLoose), errs.ErrInvalidDeliveryStatus)
	})

	t.Run("Strict mode table", func(t *testing.T) {
		testCases := []struct {
			from    DeliveryStatus
			to      DeliveryStatus
			allowed bool
		}{
			{DeliveryPending, DeliveryProcessing, true},
			{DeliveryPending, DeliveryDelivered, true},
			{DeliveryPending, DeliveryFailed, true},
			{DeliveryPending, DeliveryPending, false},
			{DeliveryProcessing, DeliveryDelivered, true},
			{DeliveryProcessing, DeliveryFailed, true},
			{DeliveryProcessing, DeliveryPending, true},
			{DeliveryFailed, DeliveryPending, true},
			{DeliveryFailed, DeliveryDelivered, false},
			{DeliveryDelivered, DeliveryPending, false},
			{DeliveryDelivered, DeliveryFailed, false},
		}

		for _, tc := range testCases {
			t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
				tx := &Transaction{Reference: "R", Status: PaymentSuccess, DeliveryStatus: tc.from}

				err := tx.CheckTransition(tc.to, TransitionStrict)

				if tc.allowed {
					assert.NoError(t, err)
					return
				}
				assert.ErrorIs(t, err, errs.ErrIllegalTransition)
				var transitionErr *errs.DeliveryTransitionError
				assert.True(t, errors.As(err, &transitionErr))
			})
		}
	})

	t.Run("Strict mode requires a successful payment", func(t *testing.T) {
		tx := &Transaction{Reference: "R", Status: PaymentPending, DeliveryStatus: DeliveryPending}

		assert.ErrorIs(t, tx.CheckTransition(DeliveryDelivered, TransitionStrict), errs.ErrPaymentNotSuccessful)
	})
}
