package delivery

import (
	"context"
	"time"

	"github.com/jbdata/ledger-engine/internal/domain/entity"
	coreport "github.com/jbdata/ledger-engine/internal/domain/port/core"
	"github.com/jbdata/ledger-engine/internal/domain/port/event"
	"github.com/jbdata/ledger-engine/internal/domain/port/metrics"
	"github.com/jbdata/ledger-engine/internal/domain/port/persistence"
	"github.com/jbdata/ledger-engine/internal/domain/port/usecase"
)

// Service applies operator delivery updates
type Service struct {
	uow          persistence.UnitOfWork
	publisher    event.DeliveryPublisher
	mode         entity.TransitionMode
	timeProvider coreport.TimeProvider
	recorder     metrics.Recorder
	logger       coreport.Logger
}

// NewService creates a new delivery Service
func NewService(
	uow persistence.UnitOfWork,
	publisher event.DeliveryPublisher,
	mode entity.TransitionMode,
	timeProvider coreport.TimeProvider,
	recorder metrics.Recorder,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		publisher:    publisher,
		mode:         mode,
		timeProvider: timeProvider,
		recorder:     recorder,
		logger:       logger,
	}
}

// SetDeliveryStatus moves the transaction identified by req.Reference to the requested status.
// deliveredAt is set only for delivered, failureReason is replaced by the supplied value or cleared.
func (s *Service) SetDeliveryStatus(ctx context.Context, req usecase.DeliveryRequest) (*entity.Transaction, error) {
	status, err := entity.ParseDeliveryStatus(req.DeliveryStatus)
	if err != nil {
		return nil, err
	}

	var (
		updated  *entity.Transaction
		previous entity.DeliveryStatus
	)

	err = s.uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		repo := s.uow.GetTransactionRepository(txCtx)

		current, err := repo.GetByReference(txCtx, req.Reference)
		if err != nil {
			return err
		}
		if err := current.CheckTransition(status, s.mode); err != nil {
			return err
		}
		previous = current.DeliveryStatus

		// Strict mode guards the write with the status it was checked against
		var expected entity.DeliveryStatus
		if s.mode == entity.TransitionStrict {
			expected = current.DeliveryStatus
		}

		update := entity.NewDeliveryUpdate(status, req.FailureReason, s.timeProvider.Now())
		if err := repo.UpdateDelivery(txCtx, req.Reference, expected, update); err != nil {
			return err
		}

		current.ApplyDelivery(update)
		current.UpdatedAt = s.timeProvider.Now()
		updated = current
		return nil
	})
	if err != nil {
		s.logger.Warn("Delivery update rejected", map[string]any{
			"reference":      req.Reference,
			"deliveryStatus": req.DeliveryStatus,
			"mode":           s.mode.String(),
			"error":          err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Delivery status updated", map[string]any{
		"reference": updated.Reference,
		"from":      previous,
		"to":        updated.DeliveryStatus,
		"actor":     req.ActorID,
	})
	s.recorder.DeliveryUpdated(string(updated.DeliveryStatus))
	s.publish(ctx, updated, previous, req.ActorID)

	return updated, nil
}

// publish is best effort; the update is already committed
func (s *Service) publish(ctx context.Context, tx *entity.Transaction, previous entity.DeliveryStatus, actor string) {
	evt := event.DeliveryStatusChanged{
		Reference:      tx.Reference,
		PreviousStatus: string(previous),
		DeliveryStatus: string(tx.DeliveryStatus),
		FailureReason:  tx.FailureReason,
		DeliveredAt:    tx.DeliveredAt,
		Email:          tx.Email,
		ChangedBy:      actor,
		OccurredAt:     s.timeProvider.Now().UTC().Truncate(time.Millisecond),
	}
	if err := s.publisher.PublishDeliveryStatusChanged(ctx, evt); err != nil {
		s.logger.Error("Failed to publish delivery event", map[string]any{
			"reference": tx.Reference,
			"error":     err.Error(),
		})
	}
}
