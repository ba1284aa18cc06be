package repositories

import (
	"context"

	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
)

// PaymentReader defines read operations for payment data.
// Payments are written only through LedgerTx so the invoice totals move with them.
type PaymentReader interface {
	// FindPaymentsByInvoiceID retrieves all payments of an invoice in insertion order.
	FindPaymentsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.Payment, error)
}
