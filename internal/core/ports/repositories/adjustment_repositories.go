package repositories

import (
	"context"

	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
)

// AdjustmentReader defines read operations for adjustment requests
type AdjustmentReader interface {
	// FindAdjustmentByID retrieves a specific adjustment request.
	FindAdjustmentByID(ctx context.Context, adjustmentID string) (*domain.AdjustmentRequest, error)

	// FindAdjustmentsByInvoiceID retrieves all requests filed against an invoice.
	FindAdjustmentsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.AdjustmentRequest, error)

	// ListAdjustments retrieves requests in insertion order, optionally filtered by status.
	ListAdjustments(ctx context.Context, status *domain.AdjustmentStatus) ([]domain.AdjustmentRequest, error)
}

// AdjustmentWriter defines write operations for adjustment requests
type AdjustmentWriter interface {
	// SaveAdjustment persists a new pending request.
	SaveAdjustment(ctx context.Context, req domain.AdjustmentRequest) error
}

// AdjustmentRepositoryFacade combines all adjustment-related repository interfaces
type AdjustmentRepositoryFacade interface {
	AdjustmentReader
	AdjustmentWriter
}
