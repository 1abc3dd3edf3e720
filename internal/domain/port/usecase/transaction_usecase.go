package usecase

import (
	"context"

	"github.com/jbdata/ledger-engine/internal/domain/entity"
)

// ListResult is a page of transactions with analytics over the whole filtered set
type ListResult struct {
	Transactions []entity.TransactionDisplay
	Analytics    entity.AnalyticsSummary
	Pagination   entity.Pagination
}

// ExportResult is the CSV snapshot of a claimed batch
type ExportResult struct {
	FileName string
	Content  []byte
	Claimed  int
}

// DeliveryRequest is an operator delivery update
type DeliveryRequest struct {
	Reference      string
	DeliveryStatus string
	FailureReason  *string
	ActorID        string
}

// IngestRequest is a validated payment record delivered by the ingestion collaborator
type IngestRequest struct {
	Reference    string
	Status       string
	Amount       string
	BaseCost     string
	JBProfit     string
	BundleName   string
	Email        string
	Currency     string
	ResellerCode string
	CreatedAt    string
	Metadata     entity.Metadata
}

// TransactionQueryUseCase lists the ledger
type TransactionQueryUseCase interface {
	ListTransactions(ctx context.Context, params entity.ListParams) (*ListResult, error)
}

// DeliveryUseCase drives the delivery state machine
type DeliveryUseCase interface {
	SetDeliveryStatus(ctx context.Context, req DeliveryRequest) (*entity.Transaction, error)
}

// ExportUseCase claims pending orders for offline fulfilment
type ExportUseCase interface {
	ExportPendingOrders(ctx context.Context) (*ExportResult, error)
}

// IngestUseCase records transactions from the payment collaborator
type IngestUseCase interface {
	// RecordTransaction stores req. recorded is false when the reference was already present.
	RecordTransaction(ctx context.Context, req IngestRequest) (recorded bool, err error)
}
