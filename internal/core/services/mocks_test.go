package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/edu_billing_ledger/internal/apperrors"
	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/edu_billing_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/edu_billing_ledger/internal/core/services"
	"github.com/SscSPs/edu_billing_ledger/internal/dto"
	"github.com/SscSPs/edu_billing_ledger/internal/repositories/database/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInvoiceRepo struct {
	mock.Mock
}

func (m *MockInvoiceRepo) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepo) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepo) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) RunInInvoiceTx(ctx context.Context, invoiceID string, fn func(ctx context.Context, tx portsrepo.LedgerTx) error) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) RenderCreditNote(ctx context.Context, note domain.CreditNote, invoice domain.Invoice) ([]byte, error) {
	args := m.Called(ctx, note, invoice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

var errStorage = errors.New("storage offline")

func TestInvoiceService_PropagatesRepositoryErrors(t *testing.T) {
	repo := new(MockInvoiceRepo)
	tx := new(MockTxManager)
	svc := services.NewInvoiceService(repo, tx)
	ctx := context.Background()

	repo.On("FindInvoiceByID", ctx, "inv-1").Return(nil, errStorage).Once()
	repo.On("ListInvoices", ctx, mock.Anything).Return(nil, errStorage).Once()
	repo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(errStorage).Once()
	tx.On("RunInInvoiceTx", ctx, "inv-1").Return(errStorage).Once()

	_, err := svc.GetInvoice(ctx, "inv-1")
	assert.ErrorIs(t, err, errStorage)

	_, err = svc.ListInvoices(ctx, domain.InvoiceFilter{})
	assert.ErrorIs(t, err, errStorage)

	_, err = svc.CreateInvoice(ctx, dto.CreateInvoiceRequest{GrossAmount: dec("10")}, "u")
	assert.ErrorIs(t, err, errStorage)

	_, err = svc.UpdateInvoiceStatus(ctx, "inv-1", domain.InvoiceSent, "u")
	assert.ErrorIs(t, err, errStorage)

	repo.AssertExpectations(t)
	tx.AssertExpectations(t)
}

func TestPaymentService_ValidatesBeforeOpeningTx(t *testing.T) {
	repo := new(MockInvoiceRepo)
	tx := new(MockTxManager)
	svc := services.NewPaymentService(repo, nil, tx)

	_, err := svc.RecordPayment(context.Background(), "inv-1", dto.RecordPaymentRequest{Amount: dec("0"), Method: domain.PaymentCash}, "u")

	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	tx.AssertNotCalled(t, "RunInInvoiceTx", mock.Anything, mock.Anything)
}

func TestCreditNoteService_RenderCreditNotePDF(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	opts := []services.ServiceOption{services.WithClock(func() time.Time { return now })}
	repos := memory.NewRepositoryProvider(store)

	invoices := services.NewInvoiceService(repos.InvoiceRepo, repos.TxManager, opts...)
	inv, err := invoices.CreateInvoice(ctx, dto.CreateInvoiceRequest{TermID: "t1", GrossAmount: dec("400"), DueDate: now.AddDate(0, 1, 0)}, "admin")
	require.NoError(t, err)

	renderer := new(MockRenderer)
	notes := services.NewCreditNoteService(repos.CreditNoteRepo, repos.InvoiceRepo, renderer, opts...)
	adjustments := services.NewAdjustmentService(repos.InvoiceRepo, repos.AdjustmentRepo, repos.TxManager, notes, 0, opts...)

	adj, err := adjustments.CreateAdjustmentRequest(ctx, inv.InvoiceID, dto.CreateAdjustmentRequest{
		Type:         domain.AdjustmentRefund,
		RefundAmount: decPtr("100"),
	}, "staff")
	require.NoError(t, err)
	decision, err := adjustments.DecideAdjustment(ctx, adj.AdjustmentID, dto.DecideAdjustmentRequest{Decision: domain.AdjustmentApproved}, "approver")
	require.NoError(t, err)
	require.NotNil(t, decision.CreditNote)

	renderer.On("RenderCreditNote", ctx, *decision.CreditNote, mock.MatchedBy(func(i domain.Invoice) bool {
		return i.InvoiceID == inv.InvoiceID && i.Balance.Equal(dec("300"))
	})).Return([]byte("%PDF-1.4"), nil).Once()

	doc, err := notes.RenderCreditNotePDF(ctx, decision.CreditNote.CreditNoteID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), doc)

	renderer.On("RenderCreditNote", ctx, mock.Anything, mock.Anything).Return(nil, errStorage).Once()
	_, err = notes.RenderCreditNotePDF(ctx, decision.CreditNote.CreditNoteID)
	assert.ErrorIs(t, err, errStorage)

	_, err = notes.RenderCreditNotePDF(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	renderer.AssertExpectations(t)
}
