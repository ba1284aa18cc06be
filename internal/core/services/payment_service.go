package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/SscSPs/edu_billing_ledger/internal/apperrors"
	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/edu_billing_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/edu_billing_ledger/internal/core/ports/services"
	"github.com/SscSPs/edu_billing_ledger/internal/dto"
	"github.com/SscSPs/edu_billing_ledger/internal/metrics"
	"github.com/SscSPs/edu_billing_ledger/internal/utils/accounting"
)

type paymentService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceReader
	paymentRepo portsrepo.PaymentReader
	txManager   portsrepo.TransactionManager
}

// NewPaymentService creates the payment ledger service.
func NewPaymentService(invoiceRepo portsrepo.InvoiceReader, paymentRepo portsrepo.PaymentReader, txManager portsrepo.TransactionManager, options ...ServiceOption) portssvc.PaymentSvcFacade {
	return &paymentService{
		BaseService: newBaseService(options...),
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
	}
}

func (s *paymentService) RecordPayment(ctx context.Context, invoiceID string, req dto.RecordPaymentRequest, recorderUserID string) (*domain.RecordedPayment, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive, got %s", apperrors.ErrInvalidAmount, req.Amount)
	}
	if !req.Method.IsValid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, req.Method)
	}

	recordedBy := firstNonEmpty(req.RecordedBy, recorderUserID)
	var result domain.RecordedPayment
	err := s.txManager.RunInInvoiceTx(ctx, invoiceID, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		inv, err := tx.FindInvoiceForUpdate(ctx, invoiceID)
		if err != nil {
			return err
		}

		now := s.Now()
		date := req.Date
		if date.IsZero() {
			date = now
		}
		payment := domain.Payment{
			PaymentID:  s.NewID(),
			InvoiceID:  invoiceID,
			Amount:     req.Amount,
			Method:     req.Method,
			Reference:  req.Reference,
			Date:       date,
			RecordedBy: recordedBy,
			CreatedAt:  now,
		}

		owed := accounting.OutstandingBalance(inv.NetAmount, inv.AmountPaid)
		inv.AmountPaid = inv.AmountPaid.Add(req.Amount)
		inv.Recalculate()
		if inv.Balance.IsPositive() {
			inv.Status = domain.InvoicePartiallyPaid
		} else {
			inv.Status = domain.InvoicePaid
		}
		inv.LastUpdatedAt = now
		inv.LastUpdatedBy = recordedBy

		if err := tx.SavePayment(ctx, payment); err != nil {
			return err
		}
		if err := tx.UpdateInvoice(ctx, *inv); err != nil {
			return err
		}

		result = domain.RecordedPayment{
			Payment:     payment,
			Invoice:     inv.WithEffectiveStatus(now),
			Overpayment: accounting.Overpayment(owed, req.Amount),
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to record payment", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}

	metrics.PaymentsRecorded.WithLabelValues(string(req.Method)).Inc()
	metrics.AddAmount(metrics.PaymentAmount, req.Amount)
	if result.Overpayment.IsPositive() {
		metrics.Overpayments.Inc()
		s.LogWarn(ctx, "Payment exceeds outstanding balance; excess is not kept as credit",
			slog.String("invoice_id", invoiceID),
			slog.String("payment_id", result.Payment.PaymentID),
			slog.String("overpayment", result.Overpayment.String()))
	}
	s.LogInfo(ctx, "Payment recorded",
		slog.String("invoice_id", invoiceID),
		slog.String("payment_id", result.Payment.PaymentID),
		slog.String("amount", req.Amount.String()),
		slog.String("balance", result.Invoice.Balance.String()))
	return &result, nil
}

func (s *paymentService) ListPaymentsForInvoice(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	if _, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID); err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.FindPaymentsByInvoiceID(ctx, invoiceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("invoice_id", invoiceID))
		return nil, err
	}
	slices.SortStableFunc(payments, func(a, b domain.Payment) int {
		return b.Date.Compare(a.Date)
	})
	return payments, nil
}
