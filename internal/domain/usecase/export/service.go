package export

import (
	"context"
	"errors"
	"fmt"

	"github.com/jbdata/ledger-engine/internal/domain/entity"
	errs "github.com/jbdata/ledger-engine/internal/domain/error"
	"github.com/jbdata/ledger-engine/internal/domain/port/coordination"
	coreport "github.com/jbdata/ledger-engine/internal/domain/port/core"
	"github.com/jbdata/ledger-engine/internal/domain/port/metrics"
	"github.com/jbdata/ledger-engine/internal/domain/port/persistence"
	"github.com/jbdata/ledger-engine/internal/domain/port/usecase"
)

// Service claims every pending order and renders the batch as CSV
type Service struct {
	uow          persistence.UnitOfWork
	lock         coordination.ExportLock
	timeProvider coreport.TimeProvider
	recorder     metrics.Recorder
	logger       coreport.Logger
}

// NewService creates a new export Service
func NewService(
	uow persistence.UnitOfWork,
	lock coordination.ExportLock,
	timeProvider coreport.TimeProvider,
	recorder metrics.Recorder,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		lock:         lock,
		timeProvider: timeProvider,
		recorder:     recorder,
		logger:       logger,
	}
}

// ExportPendingOrders moves all successful pending orders to processing in one transaction
// and returns them as CSV. The claim covers exactly the ids read at the start of the
// transaction; if any of them can no longer be claimed the whole batch is rolled back.
// ErrNoPendingOrders is returned, with no state change, when nothing is pending.
func (s *Service) ExportPendingOrders(ctx context.Context) (*usecase.ExportResult, error) {
	release, err := s.lock.Acquire(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrExportInProgress) {
			s.recorder.ExportCompleted(metrics.ExportResultBusy, 0)
		} else {
			s.recorder.ExportCompleted(metrics.ExportResultFailed, 0)
		}
		return nil, err
	}
	defer func() {
		if relErr := release(context.WithoutCancel(ctx)); relErr != nil {
			s.logger.Warn("Failed to release export lock", map[string]any{
				"error": relErr.Error(),
			})
		}
	}()

	var result *usecase.ExportResult
	err = s.uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		repo := s.uow.GetTransactionRepository(txCtx)

		pending, err := repo.FindClaimable(txCtx)
		if err != nil {
			return fmt.Errorf("select pending orders: %w", err)
		}
		if len(pending) == 0 {
			return errs.ErrNoPendingOrders
		}

		ids := make([]uint64, len(pending))
		for i, tx := range pending {
			ids[i] = tx.ID
		}

		claimed, err := repo.MarkProcessing(txCtx, ids)
		if err != nil {
			return fmt.Errorf("claim pending orders: %w", err)
		}
		if claimed != int64(len(ids)) {
			return errs.NewClaimConflictError(len(ids), claimed)
		}

		content, err := FormatCSV(pending)
		if err != nil {
			return fmt.Errorf("format export: %w", err)
		}

		for _, tx := range pending {
			tx.DeliveryStatus = entity.DeliveryProcessing
		}
		result = &usecase.ExportResult{
			FileName: FileName(s.timeProvider.Now()),
			Content:  content,
			Claimed:  len(pending),
		}
		return nil
	})

	switch {
	case errs.IsEmptyBatchError(err):
		s.logger.Info("No pending orders to export", nil)
		s.recorder.ExportCompleted(metrics.ExportResultEmpty, 0)
		return nil, err
	case err != nil:
		fields := map[string]any{"error": err.Error()}
		var conflict *errs.ClaimConflictError
		if errors.As(err, &conflict) {
			fields = conflict.LogFields()
		}
		s.logger.Error("Export of pending orders failed", fields)
		s.recorder.ExportCompleted(metrics.ExportResultFailed, 0)
		return nil, err
	}

	s.logger.Info("Pending orders exported", map[string]any{
		"claimed":  result.Claimed,
		"fileName": result.FileName,
	})
	s.recorder.ExportCompleted(metrics.ExportResultClaimed, result.Claimed)
	return result, nil
}
