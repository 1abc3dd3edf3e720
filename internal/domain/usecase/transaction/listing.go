package transaction

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jbdata/ledger-engine/internal/domain/entity"
	coreport "github.com/jbdata/ledger-engine/internal/domain/port/core"
	"github.com/jbdata/ledger-engine/internal/domain/port/persistence"
	"github.com/jbdata/ledger-engine/internal/domain/port/usecase"
	"github.com/jbdata/ledger-engine/internal/domain/usecase/analytics"
)

// QueryService lists transactions together with analytics over the filtered set
type QueryService struct {
	transactionRepo persistence.TransactionRepository
	aggregator      *analytics.Aggregator
	logger          coreport.Logger
}

// NewQueryService creates a new QueryService
func NewQueryService(
	transactionRepo persistence.TransactionRepository,
	aggregator *analytics.Aggregator,
	logger coreport.Logger,
) *QueryService {
	return &QueryService{
		transactionRepo: transactionRepo,
		aggregator:      aggregator,
		logger:          logger,
	}
}

// ListTransactions runs the page fetch, the count and the analytics concurrently.
// Fetch and count failures fail the request; analytics failures only degrade the summary.
func (s *QueryService) ListTransactions(ctx context.Context, params entity.ListParams) (*usecase.ListResult, error) {
	query := entity.ParseListQuery(params)

	var (
		rows   []*entity.Transaction
		total  int64
		result analytics.Result
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.transactionRepo.Find(gctx, query.Filter, query.Sort, query.Page)
		if err != nil {
			return fmt.Errorf("fetch transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = s.transactionRepo.Count(gctx, query.Filter)
		if err != nil {
			return fmt.Errorf("count transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		// Not gctx: a failed fetch must not show up as degraded analytics
		result = s.aggregator.Compute(ctx, query.Filter)
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to list transactions", map[string]any{
			"error": err.Error(),
			"page":  query.Page.Page,
			"limit": query.Page.Limit,
		})
		return nil, err
	}

	display := make([]entity.TransactionDisplay, 0, len(rows))
	for _, tx := range rows {
		display = append(display, tx.ToDisplay())
	}

	return &usecase.ListResult{
		Transactions: display,
		Analytics:    result.Summary(),
		Pagination:   entity.NewPagination(query.Page, total),
	}, nil
}
