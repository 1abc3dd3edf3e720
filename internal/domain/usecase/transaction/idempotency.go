package transaction

import (
	"context"
	"fmt"

	"github.com/jbdata/ledger-engine/internal/domain/port/persistence"
)

// IdempotencyHandler detects records that were already ingested
type IdempotencyHandler struct {
	transactionRepo persistence.TransactionRepository
}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler(transactionRepo persistence.TransactionRepository) *IdempotencyHandler {
	return &IdempotencyHandler{
		transactionRepo: transactionRepo,
	}
}

// AlreadyRecorded reports whether reference is present in the ledger
func (h *IdempotencyHandler) AlreadyRecorded(ctx context.Context, reference string) (bool, error) {
	exists, err := h.transactionRepo.ExistsByReference(ctx, reference)
	if err != nil {
		return false, fmt.Errorf("failed to check if transaction exists: %w", err)
	}
	return exists, nil
}
