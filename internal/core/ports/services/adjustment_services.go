package services

import (
	"context"

	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	"github.com/SscSPs/edu_billing_ledger/internal/dto"
)

// AdjustmentReaderSvc defines read operations for adjustment requests.
type AdjustmentReaderSvc interface {
	// ListAdjustmentsForInvoice retrieves requests newest first by requestedAt.
	ListAdjustmentsForInvoice(ctx context.Context, invoiceID string) ([]domain.AdjustmentRequest, error)

	// ListPendingAdjustments retrieves every pending request in filing order.
	ListPendingAdjustments(ctx context.Context) ([]domain.AdjustmentRequest, error)

	// ListAdjustments retrieves requests in filing order, optionally filtered by status.
	ListAdjustments(ctx context.Context, status *domain.AdjustmentStatus) ([]domain.AdjustmentRequest, error)
}

// AdjustmentWriterSvc defines the two-stage request/decision workflow.
type AdjustmentWriterSvc interface {
	// CreateAdjustmentRequest files a pending request. It has no financial effect.
	CreateAdjustmentRequest(ctx context.Context, invoiceID string, req dto.CreateAdjustmentRequest, requesterUserID string) (*domain.AdjustmentRequest, error)

	// DecideAdjustment approves or rejects a pending request. Approval applies the
	// discount or issues the refund credit note atomically with the status change.
	DecideAdjustment(ctx context.Context, adjustmentID string, req dto.DecideAdjustmentRequest, deciderUserID string) (*domain.AdjustmentDecision, error)
}

// AdjustmentSvcFacade combines all adjustment-related service interfaces
type AdjustmentSvcFacade interface {
	AdjustmentReaderSvc
	AdjustmentWriterSvc
}
