package services

import (
	"context"

	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	"github.com/SscSPs/edu_billing_ledger/internal/dto"
)

// PaymentReaderSvc defines read operations for payments.
type PaymentReaderSvc interface {
	// ListPaymentsForInvoice retrieves payments newest first by payment date.
	ListPaymentsForInvoice(ctx context.Context, invoiceID string) ([]domain.Payment, error)
}

// PaymentWriterSvc defines write operations for payments.
type PaymentWriterSvc interface {
	// RecordPayment appends a payment and updates the invoice in one unit of work.
	RecordPayment(ctx context.Context, invoiceID string, req dto.RecordPaymentRequest, recorderUserID string) (*domain.RecordedPayment, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
