package analytics

import (
	"context"

	"github.com/jbdata/ledger-engine/internal/domain/entity"
	coreport "github.com/jbdata/ledger-engine/internal/domain/port/core"
	"github.com/jbdata/ledger-engine/internal/domain/port/metrics"
	"github.com/jbdata/ledger-engine/internal/domain/port/persistence"
)

// Result is either a computed summary or a degraded zero summary carrying the failure
type Result struct {
	Analytics entity.Analytics
	Degraded  bool
	Err       error
}

// Summary presents the result, marking degraded summaries with the error message
func (r Result) Summary() entity.AnalyticsSummary {
	summary := r.Analytics.Present()
	if r.Degraded {
		summary.Error = entity.AnalyticsDegradedMessage
	}
	return summary
}

// Aggregator computes analytics over the successful transactions of a filtered view
type Aggregator struct {
	transactionRepo persistence.TransactionRepository
	recorder        metrics.Recorder
	logger          coreport.Logger
}

// NewAggregator creates a new Aggregator
func NewAggregator(
	transactionRepo persistence.TransactionRepository,
	recorder metrics.Recorder,
	logger coreport.Logger,
) *Aggregator {
	return &Aggregator{
		transactionRepo: transactionRepo,
		recorder:        recorder,
		logger:          logger,
	}
}

// Compute never fails. Any store error produces a degraded result.
func (a *Aggregator) Compute(ctx context.Context, filter entity.TransactionFilter) Result {
	totals, err := a.transactionRepo.Aggregate(ctx, filter.WithStatus(entity.PaymentSuccess))
	if err != nil {
		a.logger.Error("Analytics aggregation failed", map[string]any{
			"error": err.Error(),
		})
		a.recorder.AnalyticsDegraded()
		return Result{Analytics: entity.ZeroAnalytics(), Degraded: true, Err: err}
	}

	return Result{Analytics: entity.ComputeAnalytics(totals)}
}
