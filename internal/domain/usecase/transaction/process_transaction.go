package transaction

import (
	"context"
	"fmt"

	errs "github.com/jbdata/ledger-engine/internal/domain/error"
	coreport "github.com/jbdata/ledger-engine/internal/domain/port/core"
	"github.com/jbdata/ledger-engine/internal/domain/port/metrics"
	"github.com/jbdata/ledger-engine/internal/domain/port/persistence"
	"github.com/jbdata/ledger-engine/internal/domain/port/usecase"
)

// Recorder stores transactions delivered by the payment collaborator.
// It validates the record, skips references already in the ledger and creates the rest.
type Recorder struct {
	transactionRepo    persistence.TransactionRepository
	validator          *TransactionValidator
	idempotencyHandler *IdempotencyHandler
	timeProvider       coreport.TimeProvider
	recorder           metrics.Recorder
	logger             coreport.Logger
}

// NewRecorder creates a new Recorder
func NewRecorder(
	transactionRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	recorder metrics.Recorder,
	logger coreport.Logger,
) *Recorder {
	return &Recorder{
		transactionRepo:    transactionRepo,
		validator:          NewTransactionValidator(),
		idempotencyHandler: NewIdempotencyHandler(transactionRepo),
		timeProvider:       timeProvider,
		recorder:           recorder,
		logger:             logger,
	}
}

// RecordTransaction validates and stores req. Duplicates are reported with recorded=false and no error.
func (r *Recorder) RecordTransaction(ctx context.Context, req usecase.IngestRequest) (bool, error) {
	tx, err := r.validator.Build(req, r.timeProvider.Now())
	if err != nil {
		r.recorder.TransactionIngested(metrics.IngestResultRejected)
		return false, fmt.Errorf("invalid transaction: %w", err)
	}

	found, err := r.idempotencyHandler.AlreadyRecorded(ctx, tx.Reference)
	if err != nil {
		r.recorder.TransactionIngested(metrics.IngestResultFailed)
		return false, err
	}
	if found {
		r.recorder.TransactionIngested(metrics.IngestResultDuplicate)
		return false, nil
	}

	if err := r.transactionRepo.Create(ctx, tx); err != nil {
		// A concurrent delivery of the same reference lost the race on the unique index
		if errs.IsDuplicateTransactionError(err) {
			r.recorder.TransactionIngested(metrics.IngestResultDuplicate)
			return false, nil
		}
		r.recorder.TransactionIngested(metrics.IngestResultFailed)
		return false, fmt.Errorf("failed to record transaction: %w", err)
	}

	r.logger.Info("Transaction recorded", map[string]any{
		"reference":    tx.Reference,
		"status":       tx.Status,
		"amount":       tx.Amount.String(),
		"resellerCode": tx.ResellerCode,
	})
	r.recorder.TransactionIngested(metrics.IngestResultRecorded)
	return true, nil
}
