package repositories

import (
	"context"

	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
)

// LedgerTx is the set of operations available inside a per-invoice unit of work.
// Writes become visible to other callers only when the unit of work commits.
type LedgerTx interface {
	// FindInvoiceForUpdate reads the locked invoice. Returns apperrors.ErrNotFound if absent.
	FindInvoiceForUpdate(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// UpdateInvoice overwrites the mutable fields (amounts, status, audit) of an invoice.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error

	// SavePayment appends a payment record.
	SavePayment(ctx context.Context, payment domain.Payment) error

	// FindAdjustmentForUpdate reads an adjustment request belonging to the locked invoice.
	FindAdjustmentForUpdate(ctx context.Context, adjustmentID string) (*domain.AdjustmentRequest, error)

	// UpdateAdjustment overwrites the workflow fields of an adjustment request.
	UpdateAdjustment(ctx context.Context, req domain.AdjustmentRequest) error

	// SaveCreditNote appends a credit note.
	SaveCreditNote(ctx context.Context, note domain.CreditNote) error
}

// TransactionManager serialises all amount-affecting work on one invoice.
type TransactionManager interface {
	// RunInInvoiceTx locks invoiceID, runs fn and commits its writes if fn returns nil.
	// Any error from fn discards every write made through tx.
	RunInInvoiceTx(ctx context.Context, invoiceID string, fn func(ctx context.Context, tx LedgerTx) error) error
}
