package services

import (
	"context"

	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	"github.com/SscSPs/edu_billing_ledger/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices. Every returned invoice
// carries its effective status.
type InvoiceReaderSvc interface {
	// GetInvoice retrieves a specific invoice. Returns apperrors.ErrNotFound if absent.
	GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves invoices in creation order. The status filter
	// matches the effective status.
	ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error)

	// GetTermSummary aggregates every invoice of a term.
	GetTermSummary(ctx context.Context, termID string) (*domain.TermSummary, error)
}

// InvoiceWriterSvc defines write operations for invoices.
type InvoiceWriterSvc interface {
	// CreateInvoice persists a new invoice with derived net amount and balance.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error)

	// UpdateInvoiceStatus overrides the stored status without touching amounts.
	UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, userID string) (*domain.Invoice, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
