package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/edu_billing_ledger/internal/apperrors"
	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/edu_billing_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/edu_billing_ledger/internal/core/ports/services"
	"github.com/SscSPs/edu_billing_ledger/internal/dto"
	"github.com/SscSPs/edu_billing_ledger/internal/metrics"
	"github.com/shopspring/decimal"
)

type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	txManager   portsrepo.TransactionManager
}

// NewInvoiceService creates the invoice store service.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, txManager portsrepo.TransactionManager, options ...ServiceOption) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		BaseService: newBaseService(options...),
		invoiceRepo: invoiceRepo,
		txManager:   txManager,
	}
}

func (s *invoiceService) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	inv, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	out := inv.WithEffectiveStatus(s.Now())
	return &out, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, err
	}

	now := s.Now()
	result := make([]domain.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		inv = inv.WithEffectiveStatus(now)
		if filter.Status != nil && inv.Status != *filter.Status {
			continue
		}
		result = append(result, inv)
	}
	return result, nil
}

func (s *invoiceService) GetTermSummary(ctx context.Context, termID string) (*domain.TermSummary, error) {
	if termID == "" {
		return nil, fmt.Errorf("%w: term ID is required", apperrors.ErrValidation)
	}
	invoices, err := s.ListInvoices(ctx, domain.InvoiceFilter{TermID: &termID})
	if err != nil {
		return nil, err
	}
	summary := domain.NewTermSummary(termID, invoices)
	return &summary, nil
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	discount := decimal.Zero
	if req.DiscountAmount != nil {
		discount = *req.DiscountAmount
	}
	paid := decimal.Zero
	if req.AmountPaid != nil {
		paid = *req.AmountPaid
	}
	switch {
	case req.GrossAmount.IsNegative():
		return nil, fmt.Errorf("%w: gross amount must not be negative", apperrors.ErrInvalidAmount)
	case discount.IsNegative():
		return nil, fmt.Errorf("%w: discount amount must not be negative", apperrors.ErrInvalidAmount)
	case discount.GreaterThan(req.GrossAmount):
		return nil, fmt.Errorf("%w: discount %s exceeds gross amount %s", apperrors.ErrInvalidAmount, discount, req.GrossAmount)
	case paid.IsNegative():
		return nil, fmt.Errorf("%w: amount paid must not be negative", apperrors.ErrInvalidAmount)
	}

	status := domain.InvoiceDraft
	if req.Status != nil {
		status = *req.Status
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown invoice status %q", apperrors.ErrValidation, status)
	}

	createdBy := firstNonEmpty(req.CreatedBy, creatorUserID)
	now := s.Now()
	inv := domain.Invoice{
		InvoiceID:      s.NewID(),
		TermID:         req.TermID,
		PayerType:      req.PayerType,
		PayerID:        req.PayerID,
		PayerName:      req.PayerName,
		Description:    req.Description,
		GrossAmount:    req.GrossAmount,
		DiscountAmount: discount,
		AmountPaid:     paid,
		DueDate:        req.DueDate,
		Status:         status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     createdBy,
			LastUpdatedAt: now,
			LastUpdatedBy: createdBy,
		},
	}
	inv.Recalculate()

	if err := s.invoiceRepo.SaveInvoice(ctx, inv); err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("invoice_id", inv.InvoiceID))
		return nil, err
	}

	metrics.InvoicesCreated.WithLabelValues(string(inv.PayerType)).Inc()
	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", inv.InvoiceID),
		slog.String("term_id", inv.TermID),
		slog.String("net_amount", inv.NetAmount.String()))

	out := inv.WithEffectiveStatus(now)
	return &out, nil
}

func (s *invoiceService) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, userID string) (*domain.Invoice, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown invoice status %q", apperrors.ErrValidation, status)
	}

	var updated domain.Invoice
	err := s.txManager.RunInInvoiceTx(ctx, invoiceID, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		inv, err := tx.FindInvoiceForUpdate(ctx, invoiceID)
		if err != nil {
			return err
		}
		inv.Status = status
		inv.LastUpdatedAt = s.Now()
		inv.LastUpdatedBy = userID
		if err := tx.UpdateInvoice(ctx, *inv); err != nil {
			return err
		}
		updated = *inv
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update invoice status", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Invoice status overridden",
		slog.String("invoice_id", invoiceID),
		slog.String("status", string(status)))
	out := updated.WithEffectiveStatus(s.Now())
	return &out, nil
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
