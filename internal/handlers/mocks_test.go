package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/edu_billing_ledger/internal/core/ports/services"
	"github.com/SscSPs/edu_billing_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) GetTermSummary(ctx context.Context, termID string) (*domain.TermSummary, error) {
	args := m.Called(ctx, termID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TermSummary), args.Error(1)
}

func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, userID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, status, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) ListPaymentsForInvoice(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentService) RecordPayment(ctx context.Context, invoiceID string, req dto.RecordPaymentRequest, recorderUserID string) (*domain.RecordedPayment, error) {
	args := m.Called(ctx, invoiceID, req, recorderUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecordedPayment), args.Error(1)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Mock AdjustmentService ---
type MockAdjustmentService struct {
	mock.Mock
}

func (m *MockAdjustmentService) ListAdjustmentsForInvoice(ctx context.Context, invoiceID string) ([]domain.AdjustmentRequest, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdjustmentRequest), args.Error(1)
}

func (m *MockAdjustmentService) ListPendingAdjustments(ctx context.Context) ([]domain.AdjustmentRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdjustmentRequest), args.Error(1)
}

func (m *MockAdjustmentService) ListAdjustments(ctx context.Context, status *domain.AdjustmentStatus) ([]domain.AdjustmentRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdjustmentRequest), args.Error(1)
}

func (m *MockAdjustmentService) CreateAdjustmentRequest(ctx context.Context, invoiceID string, req dto.CreateAdjustmentRequest, requesterUserID string) (*domain.AdjustmentRequest, error) {
	args := m.Called(ctx, invoiceID, req, requesterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdjustmentRequest), args.Error(1)
}

func (m *MockAdjustmentService) DecideAdjustment(ctx context.Context, adjustmentID string, req dto.DecideAdjustmentRequest, deciderUserID string) (*domain.AdjustmentDecision, error) {
	args := m.Called(ctx, adjustmentID, req, deciderUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdjustmentDecision), args.Error(1)
}

var _ portssvc.AdjustmentSvcFacade = (*MockAdjustmentService)(nil)

// --- Mock CreditNoteService ---
type MockCreditNoteService struct {
	mock.Mock
}

func (m *MockCreditNoteService) Issue(invoice domain.Invoice, req domain.AdjustmentRequest, approvedBy string, now time.Time) domain.CreditNote {
	args := m.Called(invoice, req, approvedBy, now)
	return args.Get(0).(domain.CreditNote)
}

func (m *MockCreditNoteService) ListCreditNotesForInvoice(ctx context.Context, invoiceID string) ([]domain.CreditNote, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditNote), args.Error(1)
}

func (m *MockCreditNoteService) GetCreditNote(ctx context.Context, creditNoteID string) (*domain.CreditNote, error) {
	args := m.Called(ctx, creditNoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditNote), args.Error(1)
}

func (m *MockCreditNoteService) RenderCreditNotePDF(ctx context.Context, creditNoteID string) ([]byte, error) {
	args := m.Called(ctx, creditNoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

var _ portssvc.CreditNoteSvcFacade = (*MockCreditNoteService)(nil)
