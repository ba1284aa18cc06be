package repositories

import (
	"context"

	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
)

// CreditNoteReader defines read operations for credit notes.
// Credit notes are only written through LedgerTx when a refund is approved.
type CreditNoteReader interface {
	// FindCreditNoteByID retrieves a specific credit note.
	FindCreditNoteByID(ctx context.Context, creditNoteID string) (*domain.CreditNote, error)

	// FindCreditNotesByInvoiceID retrieves all credit notes of an invoice.
	FindCreditNotesByInvoiceID(ctx context.Context, invoiceID string) ([]domain.CreditNote, error)
}
