package services

import (
	"context"
	"time"

	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
)

// CreditNoteIssuerSvc builds credit notes for approved refunds.
type CreditNoteIssuerSvc interface {
	// Issue constructs a credit note for an approved refund request. It does not persist it.
	Issue(invoice domain.Invoice, req domain.AdjustmentRequest, approvedBy string, now time.Time) domain.CreditNote
}

// CreditNoteReaderSvc defines read operations for credit notes.
type CreditNoteReaderSvc interface {
	// ListCreditNotesForInvoice retrieves every credit note of an invoice.
	ListCreditNotesForInvoice(ctx context.Context, invoiceID string) ([]domain.CreditNote, error)

	// GetCreditNote retrieves a specific credit note.
	GetCreditNote(ctx context.Context, creditNoteID string) (*domain.CreditNote, error)

	// RenderCreditNotePDF renders a printable credit note.
	RenderCreditNotePDF(ctx context.Context, creditNoteID string) ([]byte, error)
}

// CreditNoteSvcFacade combines all credit-note-related service interfaces
type CreditNoteSvcFacade interface {
	CreditNoteIssuerSvc
	CreditNoteReaderSvc
}

// CreditNoteRenderer turns a credit note into a document.
type CreditNoteRenderer interface {
	RenderCreditNote(ctx context.Context, note domain.CreditNote, invoice domain.Invoice) ([]byte, error)
}
